package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/styleverse/styleverse-backend/internal/dto"
	"github.com/styleverse/styleverse-backend/internal/middleware"
	"github.com/styleverse/styleverse-backend/internal/services"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

type AuthHandler struct {
	authService *services.AuthService
	sessions    *session.Store
	store       storage.Store
}

func NewAuthHandler(authService *services.AuthService, sessions *session.Store, store storage.Store) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, store: store}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return badRequest(c, err.Error())
	}

	if err := h.establishSession(c, user.ID); err != nil {
		return internalError(c)
	}

	resp, err := h.authService.TokenPair(c.Context(), user)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrAccountDisabled):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return internalError(c)
		}
	}

	if err := h.establishSession(c, user.ID); err != nil {
		return internalError(c)
	}

	resp, err := h.authService.TokenPair(c.Context(), user)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Google(c *fiber.Ctx) error {
	var req dto.GoogleSignInRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.authService.GoogleSignIn(c.Context(), req.IDToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Google sign-in failed",
		})
	}

	if err := h.establishSession(c, user.ID); err != nil {
		return internalError(c)
	}

	resp, err := h.authService.TokenPair(c.Context(), user)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(resp)
}

// CurrentUser returns the authenticated account.
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.store.GetUser(c.Context(), userID)
	if err != nil {
		return storeError(c, err, "User not found")
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return internalError(c)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	// Body is optional for session-only clients.
	_ = c.BodyParser(&req)

	userID := middleware.UserID(c)

	if sess, err := h.sessions.Get(c); err == nil {
		if err := sess.Destroy(); err != nil {
			slog.Error("failed to destroy session", "error", err)
		}
	}

	if userID != 0 {
		if err := h.authService.Logout(c.Context(), userID, req.RefreshToken); err != nil {
			return internalError(c)
		}
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return badRequest(c, "Email is required")
	}

	token, err := h.authService.ForgotPassword(c.Context(), req.Email)
	if err != nil {
		return internalError(c)
	}
	if token != "" {
		// Stand-in for a mail integration.
		slog.Info("password reset token issued", "email", req.Email)
	}
	return c.JSON(fiber.Map{"message": "If the email exists, a reset link has been sent"})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.authService.ResetPassword(c.Context(), &req); err != nil {
		if errors.Is(err, services.ErrInvalidResetToken) {
			return badRequest(c, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Password has been reset"})
}

func (h *AuthHandler) establishSession(c *fiber.Ctx, userID uint) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set("user_id", userID)
	return sess.Save()
}
