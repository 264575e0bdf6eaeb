package models

import (
	"time"

	"github.com/google/uuid"
)

// Account status values for User.AccountStatus.
const (
	StatusActive    = "Active"
	StatusSuspended = "Suspended"
	StatusPending   = "Pending Verification"
	StatusDeleted   = "Deleted"
)

// Source values for User.Source.
const (
	SourceLocal  = "local"
	SourceGoogle = "google"
)

// User is an identity record. Password holds a bcrypt hash and is empty for
// accounts created through Google sign-in.
type User struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	Username          string  `gorm:"uniqueIndex;not null;size:255" json:"username"`
	Password          string  `json:"-"`
	Email             *string `gorm:"uniqueIndex;size:255" json:"email"`
	GoogleID          *string `gorm:"uniqueIndex;size:255" json:"-"`
	DisplayName       string  `json:"displayName"`
	ProfilePicture    string  `json:"profilePicture"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Phone             string  `json:"phone"`
	Profession        string  `json:"profession"`
	Description       string  `gorm:"type:text" json:"description"`
	Category          string  `json:"category"`
	Instagram         string  `json:"instagram"`
	Twitter           string  `json:"twitter"`
	Youtube           string  `json:"youtube"`
	Tiktok            string  `json:"tiktok"`
	AccountStatus     string  `gorm:"size:30;default:'Active';not null" json:"accountStatus"`
	Source            string  `gorm:"size:20;default:'local';not null" json:"source"`
	ResetToken        *string `json:"-"`
	ResetTokenExpires *int64  `json:"-"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// UserUpdate carries a partial user update; nil fields keep their prior
// values. Password, when set, must already be hashed by the caller.
type UserUpdate struct {
	Username       *string `json:"username"`
	Password       *string `json:"password"`
	Email          *string `json:"email"`
	GoogleID       *string `json:"googleId"`
	DisplayName    *string `json:"displayName"`
	ProfilePicture *string `json:"profilePicture"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Phone          *string `json:"phone"`
	Profession     *string `json:"profession"`
	Description    *string `json:"description"`
	Category       *string `json:"category"`
	Instagram      *string `json:"instagram"`
	Twitter        *string `json:"twitter"`
	Youtube        *string `json:"youtube"`
	Tiktok         *string `json:"tiktok"`
	AccountStatus  *string `json:"accountStatus"`
	Source         *string `json:"source"`
}

// Apply merges the non-nil fields of the update onto u.
func (up *UserUpdate) Apply(u *User) {
	if up.Username != nil {
		u.Username = *up.Username
	}
	if up.Password != nil {
		u.Password = *up.Password
	}
	if up.Email != nil {
		u.Email = up.Email
	}
	if up.GoogleID != nil {
		u.GoogleID = up.GoogleID
	}
	if up.DisplayName != nil {
		u.DisplayName = *up.DisplayName
	}
	if up.ProfilePicture != nil {
		u.ProfilePicture = *up.ProfilePicture
	}
	if up.FirstName != nil {
		u.FirstName = *up.FirstName
	}
	if up.LastName != nil {
		u.LastName = *up.LastName
	}
	if up.Phone != nil {
		u.Phone = *up.Phone
	}
	if up.Profession != nil {
		u.Profession = *up.Profession
	}
	if up.Description != nil {
		u.Description = *up.Description
	}
	if up.Category != nil {
		u.Category = *up.Category
	}
	if up.Instagram != nil {
		u.Instagram = *up.Instagram
	}
	if up.Twitter != nil {
		u.Twitter = *up.Twitter
	}
	if up.Youtube != nil {
		u.Youtube = *up.Youtube
	}
	if up.Tiktok != nil {
		u.Tiktok = *up.Tiktok
	}
	if up.AccountStatus != nil {
		u.AccountStatus = *up.AccountStatus
	}
	if up.Source != nil {
		u.Source = *up.Source
	}
}

// RefreshToken stores the SHA-256 hash of an issued refresh token.
type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	TokenHash string    `gorm:"uniqueIndex;not null;size:64" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}
