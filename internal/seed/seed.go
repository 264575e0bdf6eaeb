// Package seed loads demo fixtures. Every seeder is idempotent: list seeds
// skip when the entity already has rows, named records go through
// get-or-create, so the process can run on every boot.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/styleverse/styleverse-backend/internal/storage"
)

// Run executes all seeders in dependency order.
func Run(ctx context.Context, store storage.Store) error {
	slog.Info("running seeders")

	steps := []struct {
		name string
		fn   func(context.Context, storage.Store) error
	}{
		{"rbac", seedRBAC},
		{"admin user", seedAdminUser},
		{"categories", seedCategories},
		{"brands", seedBrands},
		{"celebrities", seedCelebrities},
		{"celebrity brands", seedCelebrityBrands},
		{"tournaments", seedTournaments},
		{"plans", seedPlans},
		{"products", seedProducts},
		{"blogs", seedBlogs},
		{"vip celebrity", seedVIPCelebrity},
		{"elite markers", markEliteCelebrities},
	}

	for _, step := range steps {
		if err := step.fn(ctx, store); err != nil {
			return fmt.Errorf("seeder %s: %w", step.name, err)
		}
	}

	slog.Info("seeders completed")
	return nil
}

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }
