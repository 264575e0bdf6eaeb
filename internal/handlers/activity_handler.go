package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

type ActivityHandler struct {
	store storage.Store
}

func NewActivityHandler(store storage.Store) *ActivityHandler {
	return &ActivityHandler{store: store}
}

// UserActivities returns a user's audit rows newest-first, optionally
// filtered by ?type= and bounded by ?limit=.
func (h *ActivityHandler) UserActivities(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	limit := queryLimit(c)
	if activityType := c.Query("type"); activityType != "" {
		out, err := h.store.GetUserActivitiesByType(c.Context(), userID, activityType, limit)
		if err != nil {
			return internalError(c)
		}
		return c.JSON(out)
	}

	out, err := h.store.GetUserActivities(c.Context(), userID, limit)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

// RecentActivities is the admin-wide feed.
func (h *ActivityHandler) RecentActivities(c *fiber.Ctx) error {
	out, err := h.store.GetRecentActivities(c.Context(), queryLimit(c))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

func (h *ActivityHandler) DeleteUserActivities(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	if _, err := h.store.DeleteUserActivities(c.Context(), userID); err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"message": "Activities deleted"})
}

func queryLimit(c *fiber.Ctx) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
