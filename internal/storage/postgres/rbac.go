package postgres

import (
	"context"

	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
	"gorm.io/gorm"
)

func (s *Store) GetRoles(ctx context.Context) ([]models.Role, error) {
	var out []models.Role
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) GetRoleByID(ctx context.Context, id uint) (models.Role, error) {
	var r models.Role
	if err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return models.Role{}, translate(err)
	}
	return r, nil
}

func (s *Store) CreateRole(ctx context.Context, r models.Role) (models.Role, error) {
	r.ID = 0
	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return models.Role{}, translate(err)
	}
	return r, nil
}

func (s *Store) GetOrCreateRole(ctx context.Context, name string, description *string) (models.Role, error) {
	var r models.Role
	err := s.db.WithContext(ctx).
		Where(models.Role{Name: name}).
		Attrs(models.Role{Description: description}).
		FirstOrCreate(&r).Error
	if err != nil {
		return models.Role{}, translate(err)
	}
	return r, nil
}

func (s *Store) UpdateRole(ctx context.Context, id uint, r models.Role) (models.Role, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Role{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return models.Role{}, err
	}
	if count == 0 {
		return models.Role{}, storage.ErrNotFound
	}
	r.ID = id
	if err := s.db.WithContext(ctx).Save(&r).Error; err != nil {
		return models.Role{}, translate(err)
	}
	return r, nil
}

// DeleteRole removes the role and cascades into role_permissions and
// user_roles inside one transaction.
func (s *Store) DeleteRole(ctx context.Context, id uint) (bool, error) {
	deleted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Role{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		if err := tx.Where("role_id = ?", id).Delete(&models.RolePermission{}).Error; err != nil {
			return err
		}
		return tx.Where("role_id = ?", id).Delete(&models.UserRole{}).Error
	})
	return deleted, err
}

func (s *Store) GetPermissions(ctx context.Context) ([]models.Permission, error) {
	var out []models.Permission
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) GetPermissionByID(ctx context.Context, id uint) (models.Permission, error) {
	var p models.Permission
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return models.Permission{}, translate(err)
	}
	return p, nil
}

func (s *Store) CreatePermission(ctx context.Context, p models.Permission) (models.Permission, error) {
	p.ID = 0
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.Permission{}, translate(err)
	}
	return p, nil
}

func (s *Store) GetOrCreatePermission(ctx context.Context, name string, description *string) (models.Permission, error) {
	var p models.Permission
	err := s.db.WithContext(ctx).
		Where(models.Permission{Name: name}).
		Attrs(models.Permission{Description: description}).
		FirstOrCreate(&p).Error
	if err != nil {
		return models.Permission{}, translate(err)
	}
	return p, nil
}

func (s *Store) UpdatePermission(ctx context.Context, id uint, p models.Permission) (models.Permission, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Permission{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return models.Permission{}, err
	}
	if count == 0 {
		return models.Permission{}, storage.ErrNotFound
	}
	p.ID = id
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return models.Permission{}, translate(err)
	}
	return p, nil
}

// DeletePermission removes the permission and its role_permissions rows.
func (s *Store) DeletePermission(ctx context.Context, id uint) (bool, error) {
	deleted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Permission{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Where("permission_id = ?", id).Delete(&models.RolePermission{}).Error
	})
	return deleted, err
}

func (s *Store) GetRolePermissions(ctx context.Context, roleID uint) ([]models.RolePermission, error) {
	var out []models.RolePermission
	err := s.db.WithContext(ctx).Where("role_id = ?", roleID).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) AddPermissionToRole(ctx context.Context, roleID, permissionID uint) (models.RolePermission, error) {
	var rp models.RolePermission
	err := s.db.WithContext(ctx).
		Where(models.RolePermission{RoleID: roleID, PermissionID: permissionID}).
		FirstOrCreate(&rp).Error
	if err != nil {
		return models.RolePermission{}, translate(err)
	}
	return rp, nil
}

func (s *Store) RemovePermissionFromRole(ctx context.Context, roleID, permissionID uint) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		Delete(&models.RolePermission{})
	return res.RowsAffected > 0, res.Error
}

func (s *Store) GetUserRoles(ctx context.Context, userID uint) ([]models.UserRole, error) {
	var out []models.UserRole
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func (s *Store) AssignRoleToUser(ctx context.Context, userID, roleID uint) (models.UserRole, error) {
	var ur models.UserRole
	err := s.db.WithContext(ctx).
		Where(models.UserRole{UserID: userID, RoleID: roleID}).
		FirstOrCreate(&ur).Error
	if err != nil {
		return models.UserRole{}, translate(err)
	}
	return ur, nil
}

func (s *Store) RemoveRoleFromUser(ctx context.Context, userID, roleID uint) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&models.UserRole{})
	return res.RowsAffected > 0, res.Error
}
