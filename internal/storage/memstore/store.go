// Package memstore implements storage.Store with plain in-process maps. It
// is the fallback backend when no database connection can be verified, and
// the backend used by tests and demos. Per-entity id counters advance
// monotonically and ids are never reused, even after deletes.
package memstore

import (
	"sort"
	"sync"

	"github.com/styleverse/styleverse-backend/internal/models"
)

type Store struct {
	mu sync.RWMutex

	users             map[uint]models.User
	celebrities       map[uint]models.Celebrity
	brands            map[uint]models.Brand
	celebrityBrands   map[uint]models.CelebrityBrand
	categories        map[uint]models.Category
	tournaments       map[uint]models.Tournament
	tournamentOutfits map[uint]models.TournamentOutfit
	plans             map[uint]models.Plan
	roles             map[uint]models.Role
	permissions       map[uint]models.Permission
	rolePermissions   map[uint]models.RolePermission
	userRoles         map[uint]models.UserRole
	activities        map[uint]models.UserActivity
	products          map[uint]models.CelebrityProduct
	blogs             map[uint]models.Blog
	refreshTokens     map[string]models.RefreshToken

	userID             uint
	celebrityID        uint
	brandID            uint
	celebrityBrandID   uint
	categoryID         uint
	tournamentID       uint
	tournamentOutfitID uint
	planID             uint
	roleID             uint
	permissionID       uint
	rolePermissionID   uint
	userRoleID         uint
	activityID         uint
	productID          uint
	blogID             uint
}

func New() *Store {
	return &Store{
		users:             make(map[uint]models.User),
		celebrities:       make(map[uint]models.Celebrity),
		brands:            make(map[uint]models.Brand),
		celebrityBrands:   make(map[uint]models.CelebrityBrand),
		categories:        make(map[uint]models.Category),
		tournaments:       make(map[uint]models.Tournament),
		tournamentOutfits: make(map[uint]models.TournamentOutfit),
		plans:             make(map[uint]models.Plan),
		roles:             make(map[uint]models.Role),
		permissions:       make(map[uint]models.Permission),
		rolePermissions:   make(map[uint]models.RolePermission),
		userRoles:         make(map[uint]models.UserRole),
		activities:        make(map[uint]models.UserActivity),
		products:          make(map[uint]models.CelebrityProduct),
		blogs:             make(map[uint]models.Blog),
		refreshTokens:     make(map[string]models.RefreshToken),

		userID:             1,
		celebrityID:        1,
		brandID:            1,
		celebrityBrandID:   1,
		categoryID:         1,
		tournamentID:       1,
		tournamentOutfitID: 1,
		planID:             1,
		roleID:             1,
		permissionID:       1,
		rolePermissionID:   1,
		userRoleID:         1,
		activityID:         1,
		productID:          1,
		blogID:             1,
	}
}

// next returns the current counter value and advances it. Callers must hold
// the write lock.
func next(counter *uint) uint {
	id := *counter
	*counter++
	return id
}

// bump makes sure counter stays strictly above a forced id so later creates
// never reuse it. Callers must hold the write lock.
func bump(counter *uint, id uint) {
	if id >= *counter {
		*counter = id + 1
	}
}

func sortedIDs[T any](m map[uint]T) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
