package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

type PlanHandler struct {
	store storage.Store
}

func NewPlanHandler(store storage.Store) *PlanHandler {
	return &PlanHandler{store: store}
}

func (h *PlanHandler) List(c *fiber.Ctx) error {
	out, err := h.store.GetPlans(c.Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

func (h *PlanHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid plan id")
	}

	p, err := h.store.GetPlanByID(c.Context(), id)
	if err != nil {
		return storeError(c, err, "Plan not found")
	}
	return c.JSON(p)
}

func (h *PlanHandler) Create(c *fiber.Ctx) error {
	var p models.Plan
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if p.Name == "" || p.Price == "" {
		return badRequest(c, "name and price are required")
	}

	created, err := h.store.CreatePlan(c.Context(), p)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update merges non-nil fields onto the stored plan.
func (h *PlanHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid plan id")
	}

	var update models.PlanUpdate
	if err := c.BodyParser(&update); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.store.UpdatePlan(c.Context(), id, update)
	if err != nil {
		return storeError(c, err, "Plan not found")
	}
	return c.JSON(updated)
}

func (h *PlanHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid plan id")
	}

	deleted, err := h.store.DeletePlan(c.Context(), id)
	if err != nil {
		return internalError(c)
	}
	if !deleted {
		return notFound(c, "Plan not found")
	}
	return c.JSON(fiber.Map{"message": "Plan deleted"})
}
