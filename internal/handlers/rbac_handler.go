package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

type RBACHandler struct {
	store storage.Store
}

func NewRBACHandler(store storage.Store) *RBACHandler {
	return &RBACHandler{store: store}
}

func (h *RBACHandler) ListRoles(c *fiber.Ctx) error {
	out, err := h.store.GetRoles(c.Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

func (h *RBACHandler) GetRole(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid role id")
	}

	role, err := h.store.GetRoleByID(c.Context(), id)
	if err != nil {
		return storeError(c, err, "Role not found")
	}
	return c.JSON(role)
}

func (h *RBACHandler) CreateRole(c *fiber.Ctx) error {
	var role models.Role
	if err := c.BodyParser(&role); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if role.Name == "" {
		return badRequest(c, "name is required")
	}

	created, err := h.store.CreateRole(c.Context(), role)
	if err != nil {
		return storeError(c, err, "Role not found")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *RBACHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid role id")
	}

	var role models.Role
	if err := c.BodyParser(&role); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.store.UpdateRole(c.Context(), id, role)
	if err != nil {
		return storeError(c, err, "Role not found")
	}
	return c.JSON(updated)
}

// DeleteRole also removes the role's permission links and user assignments.
func (h *RBACHandler) DeleteRole(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid role id")
	}

	deleted, err := h.store.DeleteRole(c.Context(), id)
	if err != nil {
		return internalError(c)
	}
	if !deleted {
		return notFound(c, "Role not found")
	}
	return c.JSON(fiber.Map{"message": "Role deleted"})
}

func (h *RBACHandler) ListRolePermissions(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid role id")
	}

	if _, err := h.store.GetRoleByID(c.Context(), id); err != nil {
		return storeError(c, err, "Role not found")
	}

	links, err := h.store.GetRolePermissions(c.Context(), id)
	if err != nil {
		return internalError(c)
	}

	// Resolve links to full permission records for the admin UI.
	perms := make([]models.Permission, 0, len(links))
	for _, link := range links {
		p, err := h.store.GetPermissionByID(c.Context(), link.PermissionID)
		if err != nil {
			continue
		}
		perms = append(perms, p)
	}
	return c.JSON(perms)
}

func (h *RBACHandler) AddRolePermission(c *fiber.Ctx) error {
	roleID, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid role id")
	}

	var body struct {
		PermissionID uint `json:"permissionId"`
	}
	if err := c.BodyParser(&body); err != nil || body.PermissionID == 0 {
		return badRequest(c, "permissionId is required")
	}

	if _, err := h.store.GetRoleByID(c.Context(), roleID); err != nil {
		return storeError(c, err, "Role not found")
	}
	if _, err := h.store.GetPermissionByID(c.Context(), body.PermissionID); err != nil {
		return storeError(c, err, "Permission not found")
	}

	link, err := h.store.AddPermissionToRole(c.Context(), roleID, body.PermissionID)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (h *RBACHandler) RemoveRolePermission(c *fiber.Ctx) error {
	roleID, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid role id")
	}
	permissionID, err := parseID(c, "permissionId")
	if err != nil {
		return badRequest(c, "Invalid permission id")
	}

	removed, err := h.store.RemovePermissionFromRole(c.Context(), roleID, permissionID)
	if err != nil {
		return internalError(c)
	}
	if !removed {
		return notFound(c, "Permission is not linked to this role")
	}
	return c.JSON(fiber.Map{"message": "Permission removed from role"})
}

func (h *RBACHandler) ListPermissions(c *fiber.Ctx) error {
	out, err := h.store.GetPermissions(c.Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

func (h *RBACHandler) GetPermission(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid permission id")
	}

	p, err := h.store.GetPermissionByID(c.Context(), id)
	if err != nil {
		return storeError(c, err, "Permission not found")
	}
	return c.JSON(p)
}

func (h *RBACHandler) CreatePermission(c *fiber.Ctx) error {
	var p models.Permission
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if p.Name == "" {
		return badRequest(c, "name is required")
	}

	created, err := h.store.CreatePermission(c.Context(), p)
	if err != nil {
		return storeError(c, err, "Permission not found")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *RBACHandler) UpdatePermission(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid permission id")
	}

	var p models.Permission
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.store.UpdatePermission(c.Context(), id, p)
	if err != nil {
		return storeError(c, err, "Permission not found")
	}
	return c.JSON(updated)
}

// DeletePermission also removes the permission's role links.
func (h *RBACHandler) DeletePermission(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid permission id")
	}

	deleted, err := h.store.DeletePermission(c.Context(), id)
	if err != nil {
		return internalError(c)
	}
	if !deleted {
		return notFound(c, "Permission not found")
	}
	return c.JSON(fiber.Map{"message": "Permission deleted"})
}
