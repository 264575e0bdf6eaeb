package postgres

import (
	"context"
	"time"

	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

func (s *Store) LogUserActivity(ctx context.Context, a models.UserActivity) (models.UserActivity, error) {
	a.ID = 0
	a.CreatedAt = time.Now()
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return models.UserActivity{}, translate(err)
	}
	return a, nil
}

func (s *Store) GetUserActivities(ctx context.Context, userID uint, limit int) ([]models.UserActivity, error) {
	if limit <= 0 {
		limit = storage.DefaultActivityLimit
	}
	var out []models.UserActivity
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (s *Store) GetUserActivitiesByType(ctx context.Context, userID uint, activityType string, limit int) ([]models.UserActivity, error) {
	if limit <= 0 {
		limit = storage.DefaultActivityLimit
	}
	var out []models.UserActivity
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND activity_type = ?", userID, activityType).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (s *Store) GetRecentActivities(ctx context.Context, limit int) ([]models.UserActivity, error) {
	if limit <= 0 {
		limit = storage.DefaultRecentLimit
	}
	var out []models.UserActivity
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (s *Store) DeleteUserActivities(ctx context.Context, userID uint) (bool, error) {
	res := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.UserActivity{})
	return res.RowsAffected > 0, res.Error
}
