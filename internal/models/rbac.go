package models

// Role is a named grant bundle in the RBAC model.
type Role struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
}

// Permission is a named capability.
type Permission struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
}

// RolePermission records role membership of a permission. The (role,
// permission) pair is unique; re-adding returns the existing row.
type RolePermission struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RoleID       uint `gorm:"not null;index;uniqueIndex:idx_role_permission" json:"roleId"`
	PermissionID uint `gorm:"not null;uniqueIndex:idx_role_permission" json:"permissionId"`
}

// UserRole records role membership of a user. The (user, role) pair is
// unique; re-assigning returns the existing row.
type UserRole struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index;uniqueIndex:idx_user_role" json:"userId"`
	RoleID uint `gorm:"not null;uniqueIndex:idx_user_role" json:"roleId"`
}
