package seed

import (
	"context"
	"testing"

	"github.com/styleverse/styleverse-backend/internal/storage/memstore"
	"golang.org/x/crypto/bcrypt"
)

func TestRunIsIdempotent(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	if err := Run(ctx, store); err != nil {
		t.Fatalf("first run: %v", err)
	}

	celebs, _ := store.GetCelebrities(ctx)
	brands, _ := store.GetBrands(ctx)
	categories, _ := store.GetCategories(ctx)
	tournaments, _ := store.GetTournaments(ctx)
	plans, _ := store.GetPlans(ctx)
	products, _ := store.GetCelebrityProducts(ctx)
	blogs, _ := store.GetBlogs(ctx)
	roles, _ := store.GetRoles(ctx)
	perms, _ := store.GetPermissions(ctx)
	users, _ := store.GetUsers(ctx)

	if err := Run(ctx, store); err != nil {
		t.Fatalf("second run: %v", err)
	}

	check := func(name string, before, after int) {
		t.Helper()
		if before != after {
			t.Errorf("%s: %d rows after first run, %d after second", name, before, after)
		}
	}
	celebs2, _ := store.GetCelebrities(ctx)
	brands2, _ := store.GetBrands(ctx)
	categories2, _ := store.GetCategories(ctx)
	tournaments2, _ := store.GetTournaments(ctx)
	plans2, _ := store.GetPlans(ctx)
	products2, _ := store.GetCelebrityProducts(ctx)
	blogs2, _ := store.GetBlogs(ctx)
	roles2, _ := store.GetRoles(ctx)
	perms2, _ := store.GetPermissions(ctx)
	users2, _ := store.GetUsers(ctx)

	check("celebrities", len(celebs), len(celebs2))
	check("brands", len(brands), len(brands2))
	check("categories", len(categories), len(categories2))
	check("tournaments", len(tournaments), len(tournaments2))
	check("plans", len(plans), len(plans2))
	check("products", len(products), len(products2))
	check("blogs", len(blogs), len(blogs2))
	check("roles", len(roles), len(roles2))
	check("permissions", len(perms), len(perms2))
	check("users", len(users), len(users2))
}

func TestVIPCelebritySlot(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	if err := Run(ctx, store); err != nil {
		t.Fatalf("run: %v", err)
	}

	vip, err := store.GetCelebrityByID(ctx, vipCelebrityID)
	if err != nil {
		t.Fatalf("no celebrity at the VIP slot: %v", err)
	}
	if vip.Name != "Atif Aslam" {
		t.Errorf("VIP slot holds %q", vip.Name)
	}
	if !vip.IsElite {
		t.Error("VIP celebrity should carry the elite flag")
	}
	if vip.ManagerInfo == nil {
		t.Error("VIP celebrity should have booking contact info")
	}

	// Pre-seeded records stay intact even when one occupied the slot.
	celebs, _ := store.GetCelebrities(ctx)
	names := make(map[string]bool, len(celebs))
	for _, c := range celebs {
		names[c.Name] = true
	}
	for _, want := range []string{"Emma Stone", "Lionel Messi", "Taylor Swift"} {
		if !names[want] {
			t.Errorf("seeded celebrity %q missing", want)
		}
	}
}

func TestEliteMarkers(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	if err := Run(ctx, store); err != nil {
		t.Fatalf("run: %v", err)
	}

	celebs, _ := store.GetCelebrities(ctx)
	for _, c := range celebs {
		switch c.Name {
		case "Emma Stone", "Taylor Swift", "Atif Aslam":
			if !c.IsElite {
				t.Errorf("%s should be elite", c.Name)
			}
		case "Lionel Messi":
			if c.IsElite {
				t.Error("Lionel Messi should not be elite")
			}
		}
	}
}

func TestAdminUserProvisioned(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	if err := Run(ctx, store); err != nil {
		t.Fatalf("run: %v", err)
	}

	admin, err := store.GetUserByEmail(ctx, adminEmail)
	if err != nil {
		t.Fatalf("admin user missing: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(defaultPassword)); err != nil {
		t.Error("admin password hash does not match the default password")
	}

	userRoles, err := store.GetUserRoles(ctx, admin.ID)
	if err != nil {
		t.Fatalf("GetUserRoles: %v", err)
	}
	var hasSuperAdmin bool
	for _, ur := range userRoles {
		role, err := store.GetRoleByID(ctx, ur.RoleID)
		if err != nil {
			t.Fatalf("GetRoleByID: %v", err)
		}
		if role.Name == "Super Admin" {
			hasSuperAdmin = true
		}
	}
	if !hasSuperAdmin {
		t.Error("admin user lacks the Super Admin role")
	}
}

func TestRBACGrants(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	if err := Run(ctx, store); err != nil {
		t.Fatalf("run: %v", err)
	}

	roles, _ := store.GetRoles(ctx)
	byName := make(map[string]uint, len(roles))
	for _, r := range roles {
		byName[r.Name] = r.ID
	}

	editorPerms, err := store.GetRolePermissions(ctx, byName["editor"])
	if err != nil {
		t.Fatalf("GetRolePermissions: %v", err)
	}
	if len(editorPerms) != 2 {
		t.Errorf("editor should hold 2 permissions, has %d", len(editorPerms))
	}

	fanPerms, _ := store.GetRolePermissions(ctx, byName["Fan"])
	if len(fanPerms) != 1 {
		t.Errorf("Fan should hold 1 permission, has %d", len(fanPerms))
	}
}
