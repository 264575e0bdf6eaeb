package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

type CategoryHandler struct {
	store storage.Store
}

func NewCategoryHandler(store storage.Store) *CategoryHandler {
	return &CategoryHandler{store: store}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.store.GetCategories(c.Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	cat, err := h.store.GetCategoryByID(c.Context(), id)
	if err != nil {
		return storeError(c, err, "Category not found")
	}
	return c.JSON(cat)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var cat models.Category
	if err := c.BodyParser(&cat); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if cat.Name == "" {
		return badRequest(c, "name is required")
	}

	created, err := h.store.CreateCategory(c.Context(), cat)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update is a full replace.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	var cat models.Category
	if err := c.BodyParser(&cat); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.store.UpdateCategory(c.Context(), id, cat)
	if err != nil {
		return storeError(c, err, "Category not found")
	}
	return c.JSON(updated)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	deleted, err := h.store.DeleteCategory(c.Context(), id)
	if err != nil {
		return internalError(c)
	}
	if !deleted {
		return notFound(c, "Category not found")
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}
