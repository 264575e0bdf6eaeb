package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/styleverse/styleverse-backend/internal/config"
	"github.com/styleverse/styleverse-backend/internal/dto"

	jwtware "github.com/gofiber/contrib/jwt"
)

// Protected accepts either a server-side session (browser clients) or a
// bearer JWT (API clients). The resolved user id lands in Locals.
func Protected(sessions *session.Store, cfg *config.Config) fiber.Handler {
	jwtHandler := jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})

	return func(c *fiber.Ctx) error {
		sess, err := sessions.Get(c)
		if err == nil {
			if uid, ok := sess.Get("user_id").(uint); ok && uid != 0 {
				c.Locals("session_user_id", uid)
				return c.Next()
			}
		}
		return jwtHandler(c)
	}
}

// UserID returns the authenticated user's id, from the session when present
// and otherwise from the JWT claims. Zero means unauthenticated.
func UserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("session_user_id").(uint); ok {
		return uid
	}
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return 0
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0
	}
	// Numeric JSON claims decode as float64.
	if sub, ok := claims["sub"].(float64); ok {
		return uint(sub)
	}
	return 0
}

// ClaimEmail returns the email claim of a JWT-authenticated request, empty
// for session-authenticated ones.
func ClaimEmail(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
