package memstore

import (
	"context"

	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

func (s *Store) GetRoles(ctx context.Context) ([]models.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Role, 0, len(s.roles))
	for _, id := range sortedIDs(s.roles) {
		out = append(out, s.roles[id])
	}
	return out, nil
}

func (s *Store) GetRoleByID(ctx context.Context, id uint) (models.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.roles[id]
	if !ok {
		return models.Role{}, storage.ErrNotFound
	}
	return r, nil
}

func (s *Store) CreateRole(ctx context.Context, r models.Role) (models.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.roles {
		if existing.Name == r.Name {
			return models.Role{}, storage.ErrDuplicate
		}
	}
	r.ID = next(&s.roleID)
	s.roles[r.ID] = r
	return r, nil
}

func (s *Store) GetOrCreateRole(ctx context.Context, name string, description *string) (models.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.roles {
		if existing.Name == name {
			return existing, nil
		}
	}
	r := models.Role{ID: next(&s.roleID), Name: name, Description: description}
	s.roles[r.ID] = r
	return r, nil
}

func (s *Store) UpdateRole(ctx context.Context, id uint, r models.Role) (models.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[id]; !ok {
		return models.Role{}, storage.ErrNotFound
	}
	r.ID = id
	s.roles[id] = r
	return r, nil
}

// DeleteRole removes the role and every join row referencing it. The whole
// cascade happens under one lock.
func (s *Store) DeleteRole(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[id]; !ok {
		return false, nil
	}
	delete(s.roles, id)
	for rpID, rp := range s.rolePermissions {
		if rp.RoleID == id {
			delete(s.rolePermissions, rpID)
		}
	}
	for urID, ur := range s.userRoles {
		if ur.RoleID == id {
			delete(s.userRoles, urID)
		}
	}
	return true, nil
}

func (s *Store) GetPermissions(ctx context.Context) ([]models.Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Permission, 0, len(s.permissions))
	for _, id := range sortedIDs(s.permissions) {
		out = append(out, s.permissions[id])
	}
	return out, nil
}

func (s *Store) GetPermissionByID(ctx context.Context, id uint) (models.Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.permissions[id]
	if !ok {
		return models.Permission{}, storage.ErrNotFound
	}
	return p, nil
}

func (s *Store) CreatePermission(ctx context.Context, p models.Permission) (models.Permission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.permissions {
		if existing.Name == p.Name {
			return models.Permission{}, storage.ErrDuplicate
		}
	}
	p.ID = next(&s.permissionID)
	s.permissions[p.ID] = p
	return p, nil
}

func (s *Store) GetOrCreatePermission(ctx context.Context, name string, description *string) (models.Permission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.permissions {
		if existing.Name == name {
			return existing, nil
		}
	}
	p := models.Permission{ID: next(&s.permissionID), Name: name, Description: description}
	s.permissions[p.ID] = p
	return p, nil
}

func (s *Store) UpdatePermission(ctx context.Context, id uint, p models.Permission) (models.Permission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.permissions[id]; !ok {
		return models.Permission{}, storage.ErrNotFound
	}
	p.ID = id
	s.permissions[id] = p
	return p, nil
}

// DeletePermission removes the permission and its role_permissions rows.
func (s *Store) DeletePermission(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.permissions[id]; !ok {
		return false, nil
	}
	delete(s.permissions, id)
	for rpID, rp := range s.rolePermissions {
		if rp.PermissionID == id {
			delete(s.rolePermissions, rpID)
		}
	}
	return true, nil
}

func (s *Store) GetRolePermissions(ctx context.Context, roleID uint) ([]models.RolePermission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RolePermission, 0)
	for _, id := range sortedIDs(s.rolePermissions) {
		if rp := s.rolePermissions[id]; rp.RoleID == roleID {
			out = append(out, rp)
		}
	}
	return out, nil
}

func (s *Store) AddPermissionToRole(ctx context.Context, roleID, permissionID uint) (models.RolePermission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rp := range s.rolePermissions {
		if rp.RoleID == roleID && rp.PermissionID == permissionID {
			return rp, nil
		}
	}
	rp := models.RolePermission{ID: next(&s.rolePermissionID), RoleID: roleID, PermissionID: permissionID}
	s.rolePermissions[rp.ID] = rp
	return rp, nil
}

func (s *Store) RemovePermissionFromRole(ctx context.Context, roleID, permissionID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, rp := range s.rolePermissions {
		if rp.RoleID == roleID && rp.PermissionID == permissionID {
			delete(s.rolePermissions, id)
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) GetUserRoles(ctx context.Context, userID uint) ([]models.UserRole, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.UserRole, 0)
	for _, id := range sortedIDs(s.userRoles) {
		if ur := s.userRoles[id]; ur.UserID == userID {
			out = append(out, ur)
		}
	}
	return out, nil
}

func (s *Store) AssignRoleToUser(ctx context.Context, userID, roleID uint) (models.UserRole, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ur := range s.userRoles {
		if ur.UserID == userID && ur.RoleID == roleID {
			return ur, nil
		}
	}
	ur := models.UserRole{ID: next(&s.userRoleID), UserID: userID, RoleID: roleID}
	s.userRoles[ur.ID] = ur
	return ur, nil
}

func (s *Store) RemoveRoleFromUser(ctx context.Context, userID, roleID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ur := range s.userRoles {
		if ur.UserID == userID && ur.RoleID == roleID {
			delete(s.userRoles, id)
			return true, nil
		}
	}
	return false, nil
}
