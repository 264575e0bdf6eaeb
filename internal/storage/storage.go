// Package storage defines the backend-agnostic repository contract. Two
// implementations exist: memstore (in-process maps, used when no database is
// reachable and in tests) and postgres (GORM). Callers depend only on Store.
package storage

import (
	"context"
	"errors"

	"github.com/styleverse/styleverse-backend/internal/models"
)

var (
	// ErrNotFound signals absence on point lookups.
	ErrNotFound = errors.New("record not found")
	// ErrIDConflict is returned by CreateCelebrityWithID when the id is taken.
	ErrIDConflict = errors.New("id already in use")
	// ErrDuplicate is returned when a unique column value is already taken.
	ErrDuplicate = errors.New("duplicate value for unique field")
)

// Default truncation limits for activity queries.
const (
	DefaultActivityLimit = 50
	DefaultRecentLimit   = 100
)

type Store interface {
	// Users. GetUsers returns newest-id-first.
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uint) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, id uint, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id uint) (bool, error)
	UpdateUserPassword(ctx context.Context, userID uint, hash string) (bool, error)
	UpdateUserPasswordByEmail(ctx context.Context, email, hash string) (bool, error)

	// Password reset tokens: one outstanding token per user; storing a new
	// one overwrites the old. Verify purges the token when expired.
	StorePasswordResetToken(ctx context.Context, userID uint, token string, expiresAt int64) (bool, error)
	VerifyPasswordResetToken(ctx context.Context, userID uint, token string) (bool, error)
	ClearPasswordResetToken(ctx context.Context, userID uint) (bool, error)

	// Refresh tokens.
	CreateRefreshToken(ctx context.Context, token models.RefreshToken) (models.RefreshToken, error)
	GetRefreshTokenByHash(ctx context.Context, hash string) (models.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, hash string) error

	// Celebrities.
	GetCelebrities(ctx context.Context) ([]models.Celebrity, error)
	GetCelebrityByID(ctx context.Context, id uint) (models.Celebrity, error)
	GetCelebrityByUserID(ctx context.Context, userID uint) (models.Celebrity, error)
	GetCelebritiesByCategory(ctx context.Context, category string) ([]models.Celebrity, error)
	CreateCelebrity(ctx context.Context, c models.Celebrity) (models.Celebrity, error)
	// CreateCelebrityWithID forces a specific id and fails with ErrIDConflict
	// when the slot is occupied.
	CreateCelebrityWithID(ctx context.Context, c models.Celebrity, id uint) (models.Celebrity, error)
	// ReassignCelebrityID atomically moves the record at id to a fresh auto
	// id, freeing the slot, and returns the moved record.
	ReassignCelebrityID(ctx context.Context, id uint) (models.Celebrity, error)
	// UpdateCelebrity replaces every mutable field; the id is kept.
	UpdateCelebrity(ctx context.Context, id uint, c models.Celebrity) (models.Celebrity, error)
	DeleteCelebrity(ctx context.Context, id uint) (bool, error)

	// Brands.
	GetBrands(ctx context.Context) ([]models.Brand, error)
	GetBrandByID(ctx context.Context, id uint) (models.Brand, error)
	CreateBrand(ctx context.Context, b models.Brand) (models.Brand, error)

	// Celebrity-brand associations.
	GetCelebrityBrands(ctx context.Context, celebrityID uint) ([]models.CelebrityBrand, error)
	CreateCelebrityBrand(ctx context.Context, cb models.CelebrityBrand) (models.CelebrityBrand, error)

	// Categories.
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id uint) (models.Category, error)
	CreateCategory(ctx context.Context, c models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, id uint, c models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id uint) (bool, error)

	// Tournaments and outfits.
	GetTournaments(ctx context.Context) ([]models.Tournament, error)
	GetTournamentByID(ctx context.Context, id uint) (models.Tournament, error)
	CreateTournament(ctx context.Context, t models.Tournament) (models.Tournament, error)
	GetTournamentOutfits(ctx context.Context) ([]models.TournamentOutfit, error)
	GetTournamentOutfitByID(ctx context.Context, id uint) (models.TournamentOutfit, error)
	GetTournamentOutfitsByCelebrity(ctx context.Context, celebrityID uint) ([]models.TournamentOutfit, error)
	GetTournamentOutfitsByTournament(ctx context.Context, tournamentID uint) ([]models.TournamentOutfit, error)
	CreateTournamentOutfit(ctx context.Context, o models.TournamentOutfit) (models.TournamentOutfit, error)

	// Plans.
	GetPlans(ctx context.Context) ([]models.Plan, error)
	GetPlanByID(ctx context.Context, id uint) (models.Plan, error)
	CreatePlan(ctx context.Context, p models.Plan) (models.Plan, error)
	UpdatePlan(ctx context.Context, id uint, update models.PlanUpdate) (models.Plan, error)
	DeletePlan(ctx context.Context, id uint) (bool, error)

	// RBAC. Deleting a role cascades into role_permissions and user_roles;
	// deleting a permission cascades into role_permissions.
	GetRoles(ctx context.Context) ([]models.Role, error)
	GetRoleByID(ctx context.Context, id uint) (models.Role, error)
	CreateRole(ctx context.Context, r models.Role) (models.Role, error)
	GetOrCreateRole(ctx context.Context, name string, description *string) (models.Role, error)
	UpdateRole(ctx context.Context, id uint, r models.Role) (models.Role, error)
	DeleteRole(ctx context.Context, id uint) (bool, error)
	GetPermissions(ctx context.Context) ([]models.Permission, error)
	GetPermissionByID(ctx context.Context, id uint) (models.Permission, error)
	CreatePermission(ctx context.Context, p models.Permission) (models.Permission, error)
	GetOrCreatePermission(ctx context.Context, name string, description *string) (models.Permission, error)
	UpdatePermission(ctx context.Context, id uint, p models.Permission) (models.Permission, error)
	DeletePermission(ctx context.Context, id uint) (bool, error)
	GetRolePermissions(ctx context.Context, roleID uint) ([]models.RolePermission, error)
	AddPermissionToRole(ctx context.Context, roleID, permissionID uint) (models.RolePermission, error)
	RemovePermissionFromRole(ctx context.Context, roleID, permissionID uint) (bool, error)
	GetUserRoles(ctx context.Context, userID uint) ([]models.UserRole, error)
	AssignRoleToUser(ctx context.Context, userID, roleID uint) (models.UserRole, error)
	RemoveRoleFromUser(ctx context.Context, userID, roleID uint) (bool, error)

	// Activity log. Lists are newest-first, truncated to limit (<=0 means
	// the default).
	LogUserActivity(ctx context.Context, a models.UserActivity) (models.UserActivity, error)
	GetUserActivities(ctx context.Context, userID uint, limit int) ([]models.UserActivity, error)
	GetUserActivitiesByType(ctx context.Context, userID uint, activityType string, limit int) ([]models.UserActivity, error)
	GetRecentActivities(ctx context.Context, limit int) ([]models.UserActivity, error)
	DeleteUserActivities(ctx context.Context, userID uint) (bool, error)

	// Celebrity products.
	GetCelebrityProducts(ctx context.Context) ([]models.CelebrityProduct, error)
	GetCelebrityProductByID(ctx context.Context, id uint) (models.CelebrityProduct, error)
	GetCelebrityProductsByCelebrity(ctx context.Context, celebrityID uint) ([]models.CelebrityProduct, error)
	CreateCelebrityProduct(ctx context.Context, p models.CelebrityProduct) (models.CelebrityProduct, error)
	UpdateCelebrityProduct(ctx context.Context, id uint, p models.CelebrityProduct) (models.CelebrityProduct, error)
	DeleteCelebrityProduct(ctx context.Context, id uint) (bool, error)

	// Blogs.
	GetBlogs(ctx context.Context) ([]models.Blog, error)
	GetBlogByID(ctx context.Context, id uint) (models.Blog, error)
	CreateBlog(ctx context.Context, b models.Blog) (models.Blog, error)
	UpdateBlog(ctx context.Context, id uint, b models.Blog) (models.Blog, error)
	DeleteBlog(ctx context.Context, id uint) (bool, error)
}
