// Package postgres implements storage.Store on a GORM-managed PostgreSQL
// database. Multi-row effects (role cascades, id reassignment) run inside
// transactions.
package postgres

import (
	"errors"

	"github.com/styleverse/styleverse-backend/internal/storage"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// translate maps GORM's not-found error onto the storage sentinel.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return storage.ErrDuplicate
	}
	return err
}
