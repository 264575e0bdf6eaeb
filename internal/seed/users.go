package seed

import (
	"context"
	"errors"
	"log/slog"

	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail      = "admin@styleverse.example"
	defaultPassword = "change-me-on-first-login"
)

// seedRBAC ensures the built-in roles and permissions exist and links the
// content permissions to the editor roles.
func seedRBAC(ctx context.Context, store storage.Store) error {
	roleDefs := []struct{ name, description string }{
		{"Super Admin", "Full system access with all permissions"},
		{"admin", "Administrative panel access"},
		{"editor", "Can manage catalog content"},
		{"Celebrity", "Celebrity user with special privileges"},
		{"Fan", "Regular fan user"},
	}
	roles := make(map[string]models.Role, len(roleDefs))
	for _, def := range roleDefs {
		desc := def.description
		role, err := store.GetOrCreateRole(ctx, def.name, &desc)
		if err != nil {
			return err
		}
		roles[def.name] = role
	}

	permDefs := []struct{ name, description string }{
		{"content.read", "Read catalog content"},
		{"content.write", "Create and edit catalog content"},
		{"content.delete", "Delete catalog content"},
		{"users.manage", "Manage user accounts and roles"},
	}
	perms := make(map[string]models.Permission, len(permDefs))
	for _, def := range permDefs {
		desc := def.description
		p, err := store.GetOrCreatePermission(ctx, def.name, &desc)
		if err != nil {
			return err
		}
		perms[def.name] = p
	}

	grants := map[string][]string{
		"Super Admin": {"content.read", "content.write", "content.delete", "users.manage"},
		"admin":       {"content.read", "content.write", "content.delete", "users.manage"},
		"editor":      {"content.read", "content.write"},
		"Celebrity":   {"content.read"},
		"Fan":         {"content.read"},
	}
	for roleName, permNames := range grants {
		for _, permName := range permNames {
			if _, err := store.AddPermissionToRole(ctx, roles[roleName].ID, perms[permName].ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// seedAdminUser ensures the panel admin account exists, keyed by email, and
// holds the Super Admin role.
func seedAdminUser(ctx context.Context, store storage.Store) error {
	superAdmin, err := store.GetOrCreateRole(ctx, "Super Admin", nil)
	if err != nil {
		return err
	}

	admin, err := store.GetUserByEmail(ctx, adminEmail)
	if errors.Is(err, storage.ErrNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		username := "admin"
		if _, err := store.GetUserByUsername(ctx, username); err == nil {
			// The name is taken by someone else; fall back to the email.
			username = adminEmail
		}

		email := adminEmail
		admin, err = store.CreateUser(ctx, models.User{
			Username:      username,
			Password:      string(hash),
			Email:         &email,
			DisplayName:   "Admin User",
			AccountStatus: models.StatusActive,
			Source:        models.SourceLocal,
		})
		if err != nil {
			return err
		}
		slog.Info("created admin user", "id", admin.ID, "username", admin.Username)
	} else if err != nil {
		return err
	}

	_, err = store.AssignRoleToUser(ctx, admin.ID, superAdmin.ID)
	return err
}
