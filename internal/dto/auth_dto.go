package dto

import "github.com/styleverse/styleverse-backend/internal/models"

type RegisterRequest struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	Email       *string `json:"email,omitempty"`
	DisplayName string  `json:"displayName,omitempty"`
}

// LoginRequest accepts either identifier; email wins when both are sent.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleSignInRequest struct {
	IDToken string `json:"idToken"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// UserResponse is the sanitized user shape. The password hash never leaves
// the server, reset token fields stay internal.
type UserResponse struct {
	ID             uint    `json:"id"`
	Username       string  `json:"username"`
	Email          *string `json:"email"`
	DisplayName    string  `json:"displayName,omitempty"`
	ProfilePicture string  `json:"profilePicture,omitempty"`
	FirstName      string  `json:"firstName,omitempty"`
	LastName       string  `json:"lastName,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	Profession     string  `json:"profession,omitempty"`
	Description    string  `json:"description,omitempty"`
	Category       string  `json:"category,omitempty"`
	Instagram      string  `json:"instagram,omitempty"`
	Twitter        string  `json:"twitter,omitempty"`
	Youtube        string  `json:"youtube,omitempty"`
	Tiktok         string  `json:"tiktok,omitempty"`
	AccountStatus  string  `json:"accountStatus"`
	Source         string  `json:"source"`
	CreatedAt      string  `json:"createdAt"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		DisplayName:    u.DisplayName,
		ProfilePicture: u.ProfilePicture,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Phone:          u.Phone,
		Profession:     u.Profession,
		Description:    u.Description,
		Category:       u.Category,
		Instagram:      u.Instagram,
		Twitter:        u.Twitter,
		Youtube:        u.Youtube,
		Tiktok:         u.Tiktok,
		AccountStatus:  u.AccountStatus,
		Source:         u.Source,
		CreatedAt:      u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Backend   string `json:"backend"`
	DB        string `json:"db"`
}
