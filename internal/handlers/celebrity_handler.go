package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

type CelebrityHandler struct {
	store storage.Store
}

func NewCelebrityHandler(store storage.Store) *CelebrityHandler {
	return &CelebrityHandler{store: store}
}

// List returns all celebrities, optionally filtered by ?category=.
func (h *CelebrityHandler) List(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		out, err := h.store.GetCelebritiesByCategory(c.Context(), category)
		if err != nil {
			return internalError(c)
		}
		return c.JSON(out)
	}

	out, err := h.store.GetCelebrities(c.Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

func (h *CelebrityHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid celebrity id")
	}

	celeb, err := h.store.GetCelebrityByID(c.Context(), id)
	if err != nil {
		return storeError(c, err, "Celebrity not found")
	}
	return c.JSON(celeb)
}

func (h *CelebrityHandler) Create(c *fiber.Ctx) error {
	var in models.CelebrityInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if in.Name == "" || in.Profession == "" || in.Category == "" {
		return badRequest(c, "name, profession and category are required")
	}

	celeb, err := in.Normalize()
	if err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.store.CreateCelebrity(c.Context(), celeb)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update is a full replace: fields missing from the payload revert to their
// defaults.
func (h *CelebrityHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid celebrity id")
	}

	var in models.CelebrityInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}

	celeb, err := in.Normalize()
	if err != nil {
		return badRequest(c, err.Error())
	}

	updated, err := h.store.UpdateCelebrity(c.Context(), id, celeb)
	if err != nil {
		return storeError(c, err, "Celebrity not found")
	}
	return c.JSON(updated)
}

func (h *CelebrityHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid celebrity id")
	}

	deleted, err := h.store.DeleteCelebrity(c.Context(), id)
	if err != nil {
		return internalError(c)
	}
	if !deleted {
		return notFound(c, "Celebrity not found")
	}
	return c.JSON(fiber.Map{"message": "Celebrity deleted"})
}

func (h *CelebrityHandler) Brands(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid celebrity id")
	}

	out, err := h.store.GetCelebrityBrands(c.Context(), id)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

func (h *CelebrityHandler) Outfits(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid celebrity id")
	}

	out, err := h.store.GetTournamentOutfitsByCelebrity(c.Context(), id)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

func (h *CelebrityHandler) Products(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid celebrity id")
	}

	out, err := h.store.GetCelebrityProductsByCelebrity(c.Context(), id)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}
