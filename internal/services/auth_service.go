package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/styleverse/styleverse-backend/internal/config"
	"github.com/styleverse/styleverse-backend/internal/dto"
	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrAccountDisabled    = errors.New("account is not active")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrUserNotFound       = errors.New("user not found")
)

const resetTokenTTL = time.Hour

type AuthService struct {
	store      storage.Store
	cfg        *config.Config
	googleJWKS *GoogleJWKSClient
}

func NewAuthService(store storage.Store, cfg *config.Config) *AuthService {
	return &AuthService{
		store:      store,
		cfg:        cfg,
		googleJWKS: NewGoogleJWKSClient(),
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (models.User, error) {
	if req.Username == "" || len(req.Password) < 8 {
		return models.User{}, errors.New("username required and password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, models.User{
		Username:    req.Username,
		Password:    string(hash),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Source:      models.SourceLocal,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logActivityDetail(ctx, user.ID, models.ActivitySignup, "User Registration", map[string]any{
		"method":   models.SourceLocal,
		"username": user.Username,
	})
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (models.User, error) {
	var (
		user models.User
		err  error
	)
	switch {
	case req.Email != "":
		user, err = s.store.GetUserByEmail(ctx, req.Email)
	case req.Username != "":
		user, err = s.store.GetUserByUsername(ctx, req.Username)
	default:
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		// Same error whether the user exists or not.
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	if user.AccountStatus == models.StatusSuspended || user.AccountStatus == models.StatusDeleted {
		return models.User{}, ErrAccountDisabled
	}

	s.logActivity(ctx, user.ID, models.ActivityLogin)
	return user, nil
}

// GoogleSignIn verifies the ID token and resolves it to a local account:
// by Google subject first, then by email (linking the account), otherwise a
// new user is created.
func (s *AuthService) GoogleSignIn(ctx context.Context, idToken string) (models.User, error) {
	if idToken == "" {
		return models.User{}, errors.New("id token is required")
	}

	claims, err := s.googleJWKS.VerifyToken(idToken, s.cfg.GoogleClientID)
	if err != nil {
		slog.Error("google token verification failed", "error", err)
		return models.User{}, fmt.Errorf("failed to verify Google ID token: %w", err)
	}

	googleID := claims.Sub

	if user, err := s.store.GetUserByGoogleID(ctx, googleID); err == nil {
		s.logActivity(ctx, user.ID, models.ActivityLogin)
		return user, nil
	}

	if claims.Email != "" {
		if user, err := s.store.GetUserByEmail(ctx, claims.Email); err == nil {
			update := models.UserUpdate{
				GoogleID: &googleID,
				Source:   ptr(models.SourceGoogle),
			}
			if claims.Name != "" && user.DisplayName == "" {
				update.DisplayName = &claims.Name
			}
			if claims.Picture != "" && user.ProfilePicture == "" {
				update.ProfilePicture = &claims.Picture
			}
			linked, err := s.store.UpdateUser(ctx, user.ID, update)
			if err != nil {
				return models.User{}, fmt.Errorf("failed to link Google account: %w", err)
			}
			s.logActivityDetail(ctx, linked.ID, models.ActivityLogin, "Google Account Linked", map[string]any{
				"method": models.SourceGoogle,
			})
			return linked, nil
		}
	}

	username, err := s.uniqueUsername(ctx, claims.Email, googleID)
	if err != nil {
		return models.User{}, err
	}

	newUser := models.User{
		Username:       username,
		GoogleID:       &googleID,
		DisplayName:    claims.Name,
		ProfilePicture: claims.Picture,
		Source:         models.SourceGoogle,
	}
	if claims.Email != "" {
		email := claims.Email
		newUser.Email = &email
	}

	user, err := s.store.CreateUser(ctx, newUser)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to create Google user: %w", err)
	}

	s.logActivityDetail(ctx, user.ID, models.ActivitySignup, "User Registration", map[string]any{
		"method":   models.SourceGoogle,
		"username": user.Username,
	})
	return user, nil
}

// uniqueUsername derives a username from the email local part and appends a
// numeric suffix until the name is free.
func (s *AuthService) uniqueUsername(ctx context.Context, email, googleID string) (string, error) {
	base := googleID
	if email != "" {
		base = strings.Split(email, "@")[0]
	}
	candidate := base
	for i := 1; i <= 100; i++ {
		if _, err := s.store.GetUserByUsername(ctx, candidate); errors.Is(err, storage.ErrNotFound) {
			return candidate, nil
		} else if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
	return "", errors.New("could not derive a free username")
}

func (s *AuthService) Refresh(ctx context.Context, rawToken string) (*dto.AuthResponse, error) {
	tokenHash := hashToken(rawToken)

	stored, err := s.store.GetRefreshTokenByHash(ctx, tokenHash)
	if err != nil || stored.Revoked {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.store.RevokeRefreshToken(ctx, tokenHash)
		return nil, ErrInvalidToken
	}

	// Rotation: the old token dies with its first use.
	if err := s.store.RevokeRefreshToken(ctx, tokenHash); err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, stored.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	return s.TokenPair(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, userID uint, rawToken string) error {
	if rawToken != "" {
		if err := s.store.RevokeRefreshToken(ctx, hashToken(rawToken)); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
	}
	s.logActivity(ctx, userID, models.ActivityLogout)
	return nil
}

// ForgotPassword issues a fresh reset token, replacing any outstanding one.
// The token is returned to the caller for delivery; an unknown email is not
// an error so the endpoint does not leak which addresses exist.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	token := uuid.NewString()
	expiresAt := time.Now().Add(resetTokenTTL).UnixMilli()
	if _, err := s.store.StorePasswordResetToken(ctx, user.ID, token, expiresAt); err != nil {
		return "", err
	}
	s.logActivity(ctx, user.ID, models.ActivityResetRequest)
	return token, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	if len(req.NewPassword) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return ErrInvalidResetToken
	}

	ok, err := s.store.VerifyPasswordResetToken(ctx, user.ID, req.Token)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if _, err := s.store.UpdateUserPassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}
	if _, err := s.store.ClearPasswordResetToken(ctx, user.ID); err != nil {
		return err
	}

	s.logActivity(ctx, user.ID, models.ActivityPasswordReset)
	return nil
}

// TokenPair issues a signed access token plus an opaque refresh token whose
// hash is persisted.
func (s *AuthService) TokenPair(ctx context.Context, user models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserResponse(user),
	}, nil
}

func (s *AuthService) generateAccessToken(user models.User) (string, error) {
	claims := jwtMapClaims(user, s.cfg.JWTAccessExpiry)
	return signHS256(claims, s.cfg.JWTSecret)
}

func (s *AuthService) generateRefreshToken(ctx context.Context, user models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}
	if _, err := s.store.CreateRefreshToken(ctx, record); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func (s *AuthService) logActivity(ctx context.Context, userID uint, activityType string) {
	s.logActivityDetail(ctx, userID, activityType, "", nil)
}

// logActivityDetail appends an audit row carrying an entity reference and a
// metadata blob; the admin activity views render both.
func (s *AuthService) logActivityDetail(ctx context.Context, userID uint, activityType, entityName string, metadata map[string]any) {
	row := models.UserActivity{
		UserID:       userID,
		ActivityType: activityType,
	}
	if entityName != "" {
		entityType := "auth"
		row.EntityType = &entityType
		row.EntityID = &userID
		row.EntityName = &entityName
	}
	if len(metadata) > 0 {
		if raw, err := json.Marshal(metadata); err == nil {
			row.Metadata = raw
		}
	}
	if _, err := s.store.LogUserActivity(ctx, row); err != nil {
		slog.Error("failed to log user activity", "error", err, "user_id", userID, "type", activityType)
	}
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}

func ptr[T any](v T) *T { return &v }
