package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

type BrandHandler struct {
	store storage.Store
}

func NewBrandHandler(store storage.Store) *BrandHandler {
	return &BrandHandler{store: store}
}

func (h *BrandHandler) List(c *fiber.Ctx) error {
	out, err := h.store.GetBrands(c.Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

func (h *BrandHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid brand id")
	}

	brand, err := h.store.GetBrandByID(c.Context(), id)
	if err != nil {
		return storeError(c, err, "Brand not found")
	}
	return c.JSON(brand)
}

func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var b models.Brand
	if err := c.BodyParser(&b); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if b.Name == "" {
		return badRequest(c, "name is required")
	}

	created, err := h.store.CreateBrand(c.Context(), b)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// CreateAssociation links a celebrity to a brand with item-level detail.
func (h *BrandHandler) CreateAssociation(c *fiber.Ctx) error {
	var in models.CelebrityBrandInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if in.CelebrityID == 0 || in.BrandID == 0 {
		return badRequest(c, "celebrityId and brandId are required")
	}

	cb, err := in.Normalize()
	if err != nil {
		return badRequest(c, err.Error())
	}

	if _, err := h.store.GetCelebrityByID(c.Context(), in.CelebrityID); err != nil {
		return storeError(c, err, "Celebrity not found")
	}
	if _, err := h.store.GetBrandByID(c.Context(), in.BrandID); err != nil {
		return storeError(c, err, "Brand not found")
	}

	created, err := h.store.CreateCelebrityBrand(c.Context(), cb)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
