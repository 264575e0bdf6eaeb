package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/styleverse/styleverse-backend/internal/dto"
	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/services"
	"github.com/styleverse/styleverse-backend/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	store   storage.Store
	uploads *services.UploadService
}

func NewUserHandler(store storage.Store, uploads *services.UploadService) *UserHandler {
	return &UserHandler{store: store, uploads: uploads}
}

// List returns all users newest-first, without credential fields.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.store.GetUsers(c.Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(dto.NewUserResponses(users))
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	user, err := h.store.GetUser(c.Context(), id)
	if err != nil {
		return storeError(c, err, "User not found")
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Create accepts JSON or multipart form data. A profilePicture file part, when
// present, is uploaded and its URL stored on the account.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Username == "" || len(req.Password) < 8 {
		return badRequest(c, "username required and password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return internalError(c)
	}

	user := models.User{
		Username:      req.Username,
		Password:      string(hash),
		DisplayName:   req.DisplayName,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		Profession:    req.Profession,
		Description:   req.Description,
		Category:      req.Category,
		Instagram:     req.Instagram,
		Twitter:       req.Twitter,
		Youtube:       req.Youtube,
		Tiktok:        req.Tiktok,
		AccountStatus: req.AccountStatus,
		Source:        models.SourceLocal,
	}
	if req.Email != "" {
		email := req.Email
		user.Email = &email
	}

	if fh, err := c.FormFile("profilePicture"); err == nil && fh != nil {
		url, err := h.uploads.SaveImage(c.Context(), fh)
		if err != nil {
			slog.Error("profile picture upload failed", "error", err)
			return badRequest(c, "Failed to store profile picture")
		}
		user.ProfilePicture = url
	}

	created, err := h.store.CreateUser(c.Context(), user)
	if err != nil {
		return storeError(c, err, "User not found")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(created))
}

// Update merges non-nil JSON fields onto the stored user. A password in the
// payload is hashed before it reaches storage.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var update models.UserUpdate
	if err := c.BodyParser(&update); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if update.Password != nil {
		if len(*update.Password) < 8 {
			return badRequest(c, "password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return internalError(c)
		}
		hashed := string(hash)
		update.Password = &hashed
	}

	updated, err := h.store.UpdateUser(c.Context(), id, update)
	if err != nil {
		return storeError(c, err, "User not found")
	}
	return c.JSON(dto.NewUserResponse(updated))
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	deleted, err := h.store.DeleteUser(c.Context(), id)
	if err != nil {
		return internalError(c)
	}
	if !deleted {
		return notFound(c, "User not found")
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}

// Roles resolves the user's role links to full role records.
func (h *UserHandler) Roles(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	if _, err := h.store.GetUser(c.Context(), id); err != nil {
		return storeError(c, err, "User not found")
	}

	links, err := h.store.GetUserRoles(c.Context(), id)
	if err != nil {
		return internalError(c)
	}

	roles := make([]models.Role, 0, len(links))
	for _, link := range links {
		role, err := h.store.GetRoleByID(c.Context(), link.RoleID)
		if err != nil {
			continue
		}
		roles = append(roles, role)
	}
	return c.JSON(roles)
}

func (h *UserHandler) AssignRole(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req dto.AssignRoleRequest
	if err := c.BodyParser(&req); err != nil || req.RoleID == 0 {
		return badRequest(c, "roleId is required")
	}

	if _, err := h.store.GetUser(c.Context(), id); err != nil {
		return storeError(c, err, "User not found")
	}
	if _, err := h.store.GetRoleByID(c.Context(), req.RoleID); err != nil {
		return storeError(c, err, "Role not found")
	}

	link, err := h.store.AssignRoleToUser(c.Context(), id, req.RoleID)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (h *UserHandler) RemoveRole(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}
	roleID, err := parseID(c, "roleId")
	if err != nil {
		return badRequest(c, "Invalid role id")
	}

	removed, err := h.store.RemoveRoleFromUser(c.Context(), id, roleID)
	if err != nil {
		return internalError(c)
	}
	if !removed {
		return notFound(c, "Role is not assigned to this user")
	}
	return c.JSON(fiber.Map{"message": "Role removed from user"})
}

// AssignCelebrityRole grants the built-in "celebrity" role and, when a
// celebrityId is supplied, links the celebrity profile to the account.
func (h *UserHandler) AssignCelebrityRole(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req dto.AssignCelebrityRoleRequest
	_ = c.BodyParser(&req)

	if _, err := h.store.GetUser(c.Context(), id); err != nil {
		return storeError(c, err, "User not found")
	}

	desc := "Linked celebrity profile owner"
	role, err := h.store.GetOrCreateRole(c.Context(), "celebrity", &desc)
	if err != nil {
		return internalError(c)
	}

	link, err := h.store.AssignRoleToUser(c.Context(), id, role.ID)
	if err != nil {
		return internalError(c)
	}

	if req.CelebrityID != 0 {
		celeb, err := h.store.GetCelebrityByID(c.Context(), req.CelebrityID)
		if err != nil {
			return storeError(c, err, "Celebrity not found")
		}
		celeb.UserID = &id
		if _, err := h.store.UpdateCelebrity(c.Context(), celeb.ID, celeb); err != nil {
			return internalError(c)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(link)
}
