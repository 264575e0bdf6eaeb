package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/styleverse/styleverse-backend/internal/dto"
)

type HealthHandler struct {
	backend string
	pingDB  func(ctx context.Context) error
}

// NewHealthHandler takes the active backend name ("postgres" or "memory")
// and an optional database ping; pingDB is nil for the memory backend.
func NewHealthHandler(backend string, pingDB func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{backend: backend, pingDB: pingDB}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	dbStatus := "n/a"
	if h.pingDB != nil {
		dbStatus = "ok"
		if err := h.pingDB(c.Context()); err != nil {
			dbStatus = "down"
		}
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Backend:   h.backend,
		DB:        dbStatus,
	})
}
