package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

func (s *Store) GetUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	// Newest accounts first.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *Store) GetUser(ctx context.Context, id uint) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (s *Store) GetUserByGoogleID(ctx context.Context, googleID string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return models.User{}, storage.ErrDuplicate
		}
		if user.Email != nil && existing.Email != nil && *existing.Email == *user.Email {
			return models.User{}, storage.ErrDuplicate
		}
		if user.GoogleID != nil && existing.GoogleID != nil && *existing.GoogleID == *user.GoogleID {
			return models.User{}, storage.ErrDuplicate
		}
	}
	user.ID = next(&s.userID)
	if user.AccountStatus == "" {
		user.AccountStatus = models.StatusActive
	}
	if user.Source == "" {
		user.Source = models.SourceLocal
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = user
	return user, nil
}

func (s *Store) UpdateUser(ctx context.Context, id uint, update models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	update.Apply(&u)
	// Unique columns stay unique across updates, same as on create.
	for otherID, existing := range s.users {
		if otherID == id {
			continue
		}
		if existing.Username == u.Username {
			return models.User{}, storage.ErrDuplicate
		}
		if u.Email != nil && existing.Email != nil && *existing.Email == *u.Email {
			return models.User{}, storage.ErrDuplicate
		}
		if u.GoogleID != nil && existing.GoogleID != nil && *existing.GoogleID == *u.GoogleID {
			return models.User{}, storage.ErrDuplicate
		}
	}
	u.UpdatedAt = time.Now()
	s.users[id] = u
	return u, nil
}

func (s *Store) DeleteUser(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

func (s *Store) UpdateUserPassword(ctx context.Context, userID uint, hash string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return false, nil
	}
	u.Password = hash
	u.UpdatedAt = time.Now()
	s.users[userID] = u
	return true, nil
}

func (s *Store) UpdateUserPasswordByEmail(ctx context.Context, email, hash string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range s.users {
		if u.Email != nil && *u.Email == email {
			u.Password = hash
			u.UpdatedAt = time.Now()
			s.users[id] = u
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) StorePasswordResetToken(ctx context.Context, userID uint, token string, expiresAt int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return false, nil
	}
	u.ResetToken = &token
	u.ResetTokenExpires = &expiresAt
	s.users[userID] = u
	return true, nil
}

func (s *Store) VerifyPasswordResetToken(ctx context.Context, userID uint, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok || u.ResetToken == nil || u.ResetTokenExpires == nil {
		return false, nil
	}
	if time.Now().UnixMilli() > *u.ResetTokenExpires {
		// Expired tokens are purged on sight.
		u.ResetToken = nil
		u.ResetTokenExpires = nil
		s.users[userID] = u
		return false, nil
	}
	return *u.ResetToken == token, nil
}

func (s *Store) ClearPasswordResetToken(ctx context.Context, userID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return false, nil
	}
	u.ResetToken = nil
	u.ResetTokenExpires = nil
	s.users[userID] = u
	return true, nil
}

func (s *Store) CreateRefreshToken(ctx context.Context, token models.RefreshToken) (models.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token.CreatedAt = time.Now()
	s.refreshTokens[token.TokenHash] = token
	return token, nil
}

func (s *Store) GetRefreshTokenByHash(ctx context.Context, hash string) (models.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.refreshTokens[hash]
	if !ok {
		return models.RefreshToken{}, storage.ErrNotFound
	}
	return t, nil
}

func (s *Store) RevokeRefreshToken(ctx context.Context, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.refreshTokens[hash]; ok {
		t.Revoked = true
		s.refreshTokens[hash] = t
	}
	return nil
}
