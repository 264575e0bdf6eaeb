package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

type ProductHandler struct {
	store storage.Store
}

func NewProductHandler(store storage.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// List returns all products, optionally filtered by ?celebrityId=.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if raw := c.Query("celebrityId"); raw != "" {
		celebrityID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return badRequest(c, "Invalid celebrityId")
		}
		out, err := h.store.GetCelebrityProductsByCelebrity(c.Context(), uint(celebrityID))
		if err != nil {
			return internalError(c)
		}
		return c.JSON(out)
	}

	out, err := h.store.GetCelebrityProducts(c.Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	p, err := h.store.GetCelebrityProductByID(c.Context(), id)
	if err != nil {
		return storeError(c, err, "Product not found")
	}
	return c.JSON(p)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var p models.CelebrityProduct
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if p.CelebrityID == 0 || p.Name == "" {
		return badRequest(c, "celebrityId and name are required")
	}

	if _, err := h.store.GetCelebrityByID(c.Context(), p.CelebrityID); err != nil {
		return storeError(c, err, "Celebrity not found")
	}

	created, err := h.store.CreateCelebrityProduct(c.Context(), p)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	var p models.CelebrityProduct
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.store.UpdateCelebrityProduct(c.Context(), id, p)
	if err != nil {
		return storeError(c, err, "Product not found")
	}
	return c.JSON(updated)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	deleted, err := h.store.DeleteCelebrityProduct(c.Context(), id)
	if err != nil {
		return internalError(c)
	}
	if !deleted {
		return notFound(c, "Product not found")
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
