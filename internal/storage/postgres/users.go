package postgres

import (
	"context"
	"time"

	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

func (s *Store) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("id DESC").Find(&users).Error
	return users, err
}

func (s *Store) GetUser(ctx context.Context, id uint) (models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return models.User{}, translate(err)
	}
	return u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return models.User{}, translate(err)
	}
	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return models.User{}, translate(err)
	}
	return u, nil
}

func (s *Store) GetUserByGoogleID(ctx context.Context, googleID string) (models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "google_id = ?", googleID).Error; err != nil {
		return models.User{}, translate(err)
	}
	return u, nil
}

func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.AccountStatus == "" {
		user.AccountStatus = models.StatusActive
	}
	if user.Source == "" {
		user.Source = models.SourceLocal
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

func (s *Store) UpdateUser(ctx context.Context, id uint, update models.UserUpdate) (models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return models.User{}, translate(err)
	}
	update.Apply(&u)
	if err := s.db.WithContext(ctx).Save(&u).Error; err != nil {
		return models.User{}, translate(err)
	}
	return u, nil
}

func (s *Store) DeleteUser(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (s *Store) UpdateUserPassword(ctx context.Context, userID uint, hash string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).Update("password", hash)
	return res.RowsAffected > 0, res.Error
}

func (s *Store) UpdateUserPasswordByEmail(ctx context.Context, email, hash string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).Update("password", hash)
	return res.RowsAffected > 0, res.Error
}

func (s *Store) StorePasswordResetToken(ctx context.Context, userID uint, token string, expiresAt int64) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_token":         token,
			"reset_token_expires": expiresAt,
		})
	return res.RowsAffected > 0, res.Error
}

func (s *Store) VerifyPasswordResetToken(ctx context.Context, userID uint, token string) (bool, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", userID).Error; err != nil {
		return false, nil
	}
	if u.ResetToken == nil || u.ResetTokenExpires == nil {
		return false, nil
	}
	if time.Now().UnixMilli() > *u.ResetTokenExpires {
		// Expired tokens are purged on sight.
		if _, err := s.ClearPasswordResetToken(ctx, userID); err != nil {
			return false, err
		}
		return false, nil
	}
	return *u.ResetToken == token, nil
}

func (s *Store) ClearPasswordResetToken(ctx context.Context, userID uint) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_token":         nil,
			"reset_token_expires": nil,
		})
	return res.RowsAffected > 0, res.Error
}

func (s *Store) CreateRefreshToken(ctx context.Context, token models.RefreshToken) (models.RefreshToken, error) {
	if err := s.db.WithContext(ctx).Create(&token).Error; err != nil {
		return models.RefreshToken{}, translate(err)
	}
	return token, nil
}

func (s *Store) GetRefreshTokenByHash(ctx context.Context, hash string) (models.RefreshToken, error) {
	var t models.RefreshToken
	if err := s.db.WithContext(ctx).First(&t, "token_hash = ?", hash).Error; err != nil {
		return models.RefreshToken{}, translate(err)
	}
	return t, nil
}

func (s *Store) RevokeRefreshToken(ctx context.Context, hash string) error {
	return s.db.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("token_hash = ?", hash).Update("revoked", true).Error
}

var _ storage.Store = (*Store)(nil)
