package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

func newTestStore() *Store {
	return New()
}

func createUser(t *testing.T, s *Store, username string) models.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), models.User{
		Username: username,
		Password: "hashed",
	})
	if err != nil {
		t.Fatalf("CreateUser(%q): %v", username, err)
	}
	return u
}

func TestUserIDsMonotonicAcrossDeletes(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	a := createUser(t, s, "alice")
	b := createUser(t, s, "bob")
	if b.ID != a.ID+1 {
		t.Fatalf("expected sequential ids, got %d then %d", a.ID, b.ID)
	}

	if ok, err := s.DeleteUser(ctx, b.ID); err != nil || !ok {
		t.Fatalf("DeleteUser: ok=%v err=%v", ok, err)
	}

	c := createUser(t, s, "carol")
	if c.ID <= b.ID {
		t.Fatalf("id %d was reused after delete of %d", c.ID, b.ID)
	}
}

func TestGetUsersNewestFirst(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	createUser(t, s, "first")
	createUser(t, s, "second")
	third := createUser(t, s, "third")

	users, err := s.GetUsers(ctx)
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	if users[0].ID != third.ID {
		t.Fatalf("expected newest user first, got id %d", users[0].ID)
	}
	for i := 1; i < len(users); i++ {
		if users[i-1].ID < users[i].ID {
			t.Fatalf("users not in descending id order at index %d", i)
		}
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	s := newTestStore()
	createUser(t, s, "dup")

	_, err := s.CreateUser(context.Background(), models.User{Username: "dup"})
	if !errors.Is(err, storage.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestUpdateUserDuplicateUsername(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	createUser(t, s, "alice")
	bob := createUser(t, s, "bob")

	taken := "alice"
	_, err := s.UpdateUser(ctx, bob.ID, models.UserUpdate{Username: &taken})
	if !errors.Is(err, storage.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// The failed update must not have been applied.
	got, err := s.GetUser(ctx, bob.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Username != "bob" {
		t.Fatalf("rejected update leaked through: %q", got.Username)
	}

	// Keeping your own username is not a collision.
	own := "bob"
	if _, err := s.UpdateUser(ctx, bob.ID, models.UserUpdate{Username: &own}); err != nil {
		t.Fatalf("self-update rejected: %v", err)
	}
}

func TestUpdateUserPartialMerge(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	email := "dana@example.com"
	u, err := s.CreateUser(ctx, models.User{
		Username:    "dana",
		Password:    "hashed",
		Email:       &email,
		DisplayName: "Dana",
		Phone:       "123",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	newName := "Dana Updated"
	updated, err := s.UpdateUser(ctx, u.ID, models.UserUpdate{DisplayName: &newName})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	if updated.DisplayName != newName {
		t.Fatalf("display name not updated: %q", updated.DisplayName)
	}
	if updated.Phone != "123" {
		t.Fatalf("untouched field was lost: phone=%q", updated.Phone)
	}
	if updated.Email == nil || *updated.Email != email {
		t.Fatalf("untouched email was lost")
	}
	if updated.Password != "hashed" {
		t.Fatalf("password changed by unrelated update")
	}
}

func TestPasswordResetTokenSingleValidity(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	u := createUser(t, s, "eve")

	future := time.Now().Add(time.Hour).UnixMilli()
	if _, err := s.StorePasswordResetToken(ctx, u.ID, "token-one", future); err != nil {
		t.Fatalf("StorePasswordResetToken: %v", err)
	}
	if _, err := s.StorePasswordResetToken(ctx, u.ID, "token-two", future); err != nil {
		t.Fatalf("StorePasswordResetToken: %v", err)
	}

	if ok, _ := s.VerifyPasswordResetToken(ctx, u.ID, "token-one"); ok {
		t.Fatal("replaced token still verifies")
	}
	if ok, _ := s.VerifyPasswordResetToken(ctx, u.ID, "token-two"); !ok {
		t.Fatal("current token does not verify")
	}
}

func TestPasswordResetTokenExpiryPurge(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	u := createUser(t, s, "frank")

	past := time.Now().Add(-time.Minute).UnixMilli()
	if _, err := s.StorePasswordResetToken(ctx, u.ID, "stale", past); err != nil {
		t.Fatalf("StorePasswordResetToken: %v", err)
	}

	if ok, _ := s.VerifyPasswordResetToken(ctx, u.ID, "stale"); ok {
		t.Fatal("expired token verified")
	}

	// The expired token must be purged, not merely rejected.
	got, err := s.GetUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.ResetToken != nil {
		t.Fatal("expired token was not purged")
	}
}

func createCelebrity(t *testing.T, s *Store, name string) models.Celebrity {
	t.Helper()
	c, err := s.CreateCelebrity(context.Background(), models.Celebrity{
		Name:       name,
		Profession: "Singer",
		ImageURL:   "/img.jpg",
		Category:   "Concert",
		IsActive:   true,
	})
	if err != nil {
		t.Fatalf("CreateCelebrity(%q): %v", name, err)
	}
	return c
}

func TestCreateCelebrityWithIDConflict(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	c := createCelebrity(t, s, "first")
	_, err := s.CreateCelebrityWithID(ctx, models.Celebrity{Name: "clash"}, c.ID)
	if !errors.Is(err, storage.ErrIDConflict) {
		t.Fatalf("expected ErrIDConflict, got %v", err)
	}
}

func TestCreateCelebrityWithIDBumpsCounter(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	forced, err := s.CreateCelebrityWithID(ctx, models.Celebrity{Name: "vip"}, 115)
	if err != nil {
		t.Fatalf("CreateCelebrityWithID: %v", err)
	}
	if forced.ID != 115 {
		t.Fatalf("forced id not honored, got %d", forced.ID)
	}

	next := createCelebrity(t, s, "after-vip")
	if next.ID <= 115 {
		t.Fatalf("auto id %d collided with forced range", next.ID)
	}
}

func TestReassignCelebrityID(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	occupant, err := s.CreateCelebrityWithID(ctx, models.Celebrity{
		Name:       "occupant",
		Profession: "Actor",
		ImageURL:   "/a.jpg",
		Category:   "Red Carpet",
	}, 115)
	if err != nil {
		t.Fatalf("CreateCelebrityWithID: %v", err)
	}

	moved, err := s.ReassignCelebrityID(ctx, 115)
	if err != nil {
		t.Fatalf("ReassignCelebrityID: %v", err)
	}
	if moved.ID == occupant.ID {
		t.Fatal("record kept its old id")
	}
	if moved.Name != "occupant" {
		t.Fatalf("record data lost in move: %q", moved.Name)
	}

	if _, err := s.GetCelebrityByID(ctx, 115); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("old slot still occupied: %v", err)
	}

	if _, err := s.CreateCelebrityWithID(ctx, models.Celebrity{Name: "vip"}, 115); err != nil {
		t.Fatalf("freed slot not reusable: %v", err)
	}
}

func TestUpdateCelebrityFullReplace(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	desc := "original description"
	c, err := s.CreateCelebrity(ctx, models.Celebrity{
		Name:        "greta",
		Profession:  "Actor",
		ImageURL:    "/g.jpg",
		Category:    "Red Carpet",
		Description: &desc,
		IsElite:     true,
	})
	if err != nil {
		t.Fatalf("CreateCelebrity: %v", err)
	}

	updated, err := s.UpdateCelebrity(ctx, c.ID, models.Celebrity{
		Name:       "greta",
		Profession: "Director",
		ImageURL:   "/g2.jpg",
		Category:   "Street Style",
	})
	if err != nil {
		t.Fatalf("UpdateCelebrity: %v", err)
	}

	if updated.ID != c.ID {
		t.Fatalf("id changed on update: %d", updated.ID)
	}
	if updated.Description != nil {
		t.Fatal("full replace kept a field the payload omitted")
	}
	if updated.IsElite {
		t.Fatal("full replace kept elite flag the payload omitted")
	}
	if updated.Profession != "Director" {
		t.Fatalf("update not applied: %q", updated.Profession)
	}
}

func TestRBACIdempotentLinking(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	role, err := s.GetOrCreateRole(ctx, "editor", nil)
	if err != nil {
		t.Fatalf("GetOrCreateRole: %v", err)
	}
	again, err := s.GetOrCreateRole(ctx, "editor", nil)
	if err != nil {
		t.Fatalf("GetOrCreateRole second call: %v", err)
	}
	if again.ID != role.ID {
		t.Fatalf("get-or-create minted a second role: %d vs %d", again.ID, role.ID)
	}

	perm, err := s.GetOrCreatePermission(ctx, "content.write", nil)
	if err != nil {
		t.Fatalf("GetOrCreatePermission: %v", err)
	}

	link1, err := s.AddPermissionToRole(ctx, role.ID, perm.ID)
	if err != nil {
		t.Fatalf("AddPermissionToRole: %v", err)
	}
	link2, err := s.AddPermissionToRole(ctx, role.ID, perm.ID)
	if err != nil {
		t.Fatalf("AddPermissionToRole second call: %v", err)
	}
	if link1.ID != link2.ID {
		t.Fatalf("re-adding permission created a new link: %d vs %d", link1.ID, link2.ID)
	}

	u := createUser(t, s, "harriet")
	ur1, err := s.AssignRoleToUser(ctx, u.ID, role.ID)
	if err != nil {
		t.Fatalf("AssignRoleToUser: %v", err)
	}
	ur2, err := s.AssignRoleToUser(ctx, u.ID, role.ID)
	if err != nil {
		t.Fatalf("AssignRoleToUser second call: %v", err)
	}
	if ur1.ID != ur2.ID {
		t.Fatalf("re-assigning role created a new link: %d vs %d", ur1.ID, ur2.ID)
	}
}

func TestDeleteRoleCascades(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	role, _ := s.GetOrCreateRole(ctx, "temp", nil)
	perm, _ := s.GetOrCreatePermission(ctx, "temp.perm", nil)
	u := createUser(t, s, "ivan")

	if _, err := s.AddPermissionToRole(ctx, role.ID, perm.ID); err != nil {
		t.Fatalf("AddPermissionToRole: %v", err)
	}
	if _, err := s.AssignRoleToUser(ctx, u.ID, role.ID); err != nil {
		t.Fatalf("AssignRoleToUser: %v", err)
	}

	deleted, err := s.DeleteRole(ctx, role.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteRole: ok=%v err=%v", deleted, err)
	}

	if links, _ := s.GetRolePermissions(ctx, role.ID); len(links) != 0 {
		t.Fatalf("role permissions survived role delete: %d", len(links))
	}
	if links, _ := s.GetUserRoles(ctx, u.ID); len(links) != 0 {
		t.Fatalf("user roles survived role delete: %d", len(links))
	}
	// The permission itself is untouched.
	if _, err := s.GetPermissionByID(ctx, perm.ID); err != nil {
		t.Fatalf("permission deleted by role cascade: %v", err)
	}
}

func TestDeletePermissionCascades(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	role, _ := s.GetOrCreateRole(ctx, "keeper", nil)
	perm, _ := s.GetOrCreatePermission(ctx, "doomed", nil)
	if _, err := s.AddPermissionToRole(ctx, role.ID, perm.ID); err != nil {
		t.Fatalf("AddPermissionToRole: %v", err)
	}

	deleted, err := s.DeletePermission(ctx, perm.ID)
	if err != nil || !deleted {
		t.Fatalf("DeletePermission: ok=%v err=%v", deleted, err)
	}

	if links, _ := s.GetRolePermissions(ctx, role.ID); len(links) != 0 {
		t.Fatalf("role-permission links survived permission delete: %d", len(links))
	}
	if _, err := s.GetRoleByID(ctx, role.ID); err != nil {
		t.Fatalf("role deleted by permission cascade: %v", err)
	}
}

func TestActivitiesNewestFirstWithLimit(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	u := createUser(t, s, "julia")

	for i := 0; i < 60; i++ {
		if _, err := s.LogUserActivity(ctx, models.UserActivity{
			UserID:       u.ID,
			ActivityType: models.ActivityLogin,
		}); err != nil {
			t.Fatalf("LogUserActivity: %v", err)
		}
	}

	got, err := s.GetUserActivities(ctx, u.ID, 0)
	if err != nil {
		t.Fatalf("GetUserActivities: %v", err)
	}
	if len(got) != storage.DefaultActivityLimit {
		t.Fatalf("default limit not applied: %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].ID < got[i].ID {
			t.Fatalf("activities not newest-first at index %d", i)
		}
	}

	limited, err := s.GetUserActivities(ctx, u.ID, 5)
	if err != nil {
		t.Fatalf("GetUserActivities limited: %v", err)
	}
	if len(limited) != 5 {
		t.Fatalf("explicit limit not applied: %d", len(limited))
	}
}

func TestActivitiesByType(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	u := createUser(t, s, "karl")

	s.LogUserActivity(ctx, models.UserActivity{UserID: u.ID, ActivityType: models.ActivityLogin})
	s.LogUserActivity(ctx, models.UserActivity{UserID: u.ID, ActivityType: models.ActivitySignup})
	s.LogUserActivity(ctx, models.UserActivity{UserID: u.ID, ActivityType: models.ActivityLogin})

	logins, err := s.GetUserActivitiesByType(ctx, u.ID, models.ActivityLogin, 0)
	if err != nil {
		t.Fatalf("GetUserActivitiesByType: %v", err)
	}
	if len(logins) != 2 {
		t.Fatalf("expected 2 login rows, got %d", len(logins))
	}
	for _, a := range logins {
		if a.ActivityType != models.ActivityLogin {
			t.Fatalf("wrong type in filtered result: %q", a.ActivityType)
		}
	}
}

func TestPlanPartialUpdate(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	p, err := s.CreatePlan(ctx, models.Plan{
		Name:     "Insider",
		ImageURL: "/p.png",
		Price:    "$9.99",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	newPrice := "$7.99"
	updated, err := s.UpdatePlan(ctx, p.ID, models.PlanUpdate{Price: &newPrice})
	if err != nil {
		t.Fatalf("UpdatePlan: %v", err)
	}
	if updated.Price != newPrice {
		t.Fatalf("price not updated: %q", updated.Price)
	}
	if updated.Name != "Insider" || !updated.IsActive {
		t.Fatal("partial update clobbered untouched fields")
	}
}

func TestRefreshTokenLifecycle(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	u := createUser(t, s, "lena")

	tok := models.RefreshToken{
		UserID:    u.ID,
		TokenHash: "abc123",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if _, err := s.CreateRefreshToken(ctx, tok); err != nil {
		t.Fatalf("CreateRefreshToken: %v", err)
	}

	stored, err := s.GetRefreshTokenByHash(ctx, "abc123")
	if err != nil {
		t.Fatalf("GetRefreshTokenByHash: %v", err)
	}
	if stored.UserID != u.ID {
		t.Fatalf("wrong owner: %d", stored.UserID)
	}

	if err := s.RevokeRefreshToken(ctx, "abc123"); err != nil {
		t.Fatalf("RevokeRefreshToken: %v", err)
	}
	revoked, err := s.GetRefreshTokenByHash(ctx, "abc123")
	if err != nil {
		t.Fatalf("GetRefreshTokenByHash after revoke: %v", err)
	}
	if !revoked.Revoked {
		t.Fatal("token not marked revoked")
	}
}
