package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

type BlogHandler struct {
	store storage.Store
}

func NewBlogHandler(store storage.Store) *BlogHandler {
	return &BlogHandler{store: store}
}

func (h *BlogHandler) List(c *fiber.Ctx) error {
	out, err := h.store.GetBlogs(c.Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

func (h *BlogHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid blog id")
	}

	b, err := h.store.GetBlogByID(c.Context(), id)
	if err != nil {
		return storeError(c, err, "Blog not found")
	}
	return c.JSON(b)
}

func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var b models.Blog
	if err := c.BodyParser(&b); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if b.Title == "" || b.Content == "" {
		return badRequest(c, "title and content are required")
	}

	created, err := h.store.CreateBlog(c.Context(), b)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid blog id")
	}

	var b models.Blog
	if err := c.BodyParser(&b); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.store.UpdateBlog(c.Context(), id, b)
	if err != nil {
		return storeError(c, err, "Blog not found")
	}
	return c.JSON(updated)
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid blog id")
	}

	deleted, err := h.store.DeleteBlog(c.Context(), id)
	if err != nil {
		return internalError(c)
	}
	if !deleted {
		return notFound(c, "Blog not found")
	}
	return c.JSON(fiber.Map{"message": "Blog deleted"})
}
