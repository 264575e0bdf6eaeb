package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

func (s *Store) LogUserActivity(ctx context.Context, a models.UserActivity) (models.UserActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = next(&s.activityID)
	a.CreatedAt = time.Now()
	s.activities[a.ID] = a
	return a, nil
}

func (s *Store) GetUserActivities(ctx context.Context, userID uint, limit int) ([]models.UserActivity, error) {
	if limit <= 0 {
		limit = storage.DefaultActivityLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectActivities(limit, func(a models.UserActivity) bool {
		return a.UserID == userID
	}), nil
}

func (s *Store) GetUserActivitiesByType(ctx context.Context, userID uint, activityType string, limit int) ([]models.UserActivity, error) {
	if limit <= 0 {
		limit = storage.DefaultActivityLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectActivities(limit, func(a models.UserActivity) bool {
		return a.UserID == userID && a.ActivityType == activityType
	}), nil
}

func (s *Store) GetRecentActivities(ctx context.Context, limit int) ([]models.UserActivity, error) {
	if limit <= 0 {
		limit = storage.DefaultRecentLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectActivities(limit, func(models.UserActivity) bool { return true }), nil
}

func (s *Store) DeleteUserActivities(ctx context.Context, userID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := false
	for id, a := range s.activities {
		if a.UserID == userID {
			delete(s.activities, id)
			removed = true
		}
	}
	return removed, nil
}

var _ storage.Store = (*Store)(nil)

// collectActivities returns matching rows newest-first, truncated to limit.
// Ties on the timestamp fall back to id order, which is insertion order.
// Callers must hold at least the read lock.
func (s *Store) collectActivities(limit int, match func(models.UserActivity) bool) []models.UserActivity {
	out := make([]models.UserActivity, 0)
	for _, a := range s.activities {
		if match(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
