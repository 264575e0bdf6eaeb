package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/styleverse/styleverse-backend/internal/config"
)

func CORS(cfg *config.Config) fiber.Handler {
	allowCredentials := cfg.CORSOrigins != "" && cfg.CORSOrigins != "*"
	return cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept, X-Admin-Token",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
		AllowCredentials: allowCredentials,
	})
}
