package models

import (
	"time"

	"gorm.io/datatypes"
)

// Common activity types. ActivityType is free-form; these are the ones the
// backend writes itself.
const (
	ActivityLogin         = "login"
	ActivitySignup        = "signup"
	ActivityLogout        = "logout"
	ActivityPasswordReset = "password_reset"
	ActivityResetRequest  = "password_reset_request"
)

// UserActivity is an append-only audit-log row. CreatedAt is always assigned
// by the server.
type UserActivity struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"userId"`
	ActivityType string         `gorm:"not null;size:100;index" json:"activityType"`
	EntityType   *string        `gorm:"size:100" json:"entityType"`
	EntityID     *uint          `json:"entityId"`
	EntityName   *string        `gorm:"size:255" json:"entityName"`
	Metadata     datatypes.JSON `json:"metadata"`
	CreatedAt    time.Time      `gorm:"index" json:"createdAt"`
}

// SystemLog stores batched ERROR+ slog records for later inspection.
type SystemLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Timestamp time.Time      `gorm:"not null;index" json:"timestamp"`
	Level     string         `gorm:"size:10;not null;index" json:"level"`
	Message   string         `gorm:"type:text" json:"message"`
	TraceID   string         `gorm:"size:36;index" json:"trace_id"`
	Error     string         `gorm:"type:text" json:"error"`
	Extra     datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"extra"`
	CreatedAt time.Time      `json:"created_at"`
}
