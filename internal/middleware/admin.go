package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/styleverse/styleverse-backend/internal/config"
	"github.com/styleverse/styleverse-backend/internal/dto"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

// AdminRequired grants access to:
// 1. Requests carrying the configured X-Admin-Token header
// 2. Authenticated users whose email is in ADMIN_EMAILS
// 3. Authenticated users holding the "admin" role
// It must run after Protected.
func AdminRequired(store storage.Store, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		userID := UserID(c)
		if userID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		user, err := store.GetUser(c.Context(), userID)
		if err == nil && user.Email != nil && contains(adminEmails, *user.Email) {
			return c.Next()
		}

		userRoles, err := store.GetUserRoles(c.Context(), userID)
		if err == nil {
			for _, ur := range userRoles {
				role, err := store.GetRoleByID(c.Context(), ur.RoleID)
				if err != nil {
					continue
				}
				if strings.EqualFold(role.Name, "admin") {
					return c.Next()
				}
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
