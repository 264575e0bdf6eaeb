package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/styleverse/styleverse-backend/internal/config"
	"github.com/styleverse/styleverse-backend/internal/handlers"
	"github.com/styleverse/styleverse-backend/internal/middleware"
	"github.com/styleverse/styleverse-backend/internal/storage"
)

// Handlers bundles every route handler for Setup.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Health     *handlers.HealthHandler
	User       *handlers.UserHandler
	Celebrity  *handlers.CelebrityHandler
	Brand      *handlers.BrandHandler
	Category   *handlers.CategoryHandler
	Tournament *handlers.TournamentHandler
	Plan       *handlers.PlanHandler
	Product    *handlers.ProductHandler
	Blog       *handlers.BlogHandler
	RBAC       *handlers.RBACHandler
	Activity   *handlers.ActivityHandler
}

func Setup(app *fiber.App, cfg *config.Config, store storage.Store, sessions *session.Store, h Handlers) {
	protected := middleware.Protected(sessions, cfg)
	adminOnly := middleware.AdminRequired(store, cfg)

	// Prometheus scrape endpoint and static assets sit outside /api.
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Static("/assets", cfg.AssetsDir)
	app.Static("/uploads", cfg.UploadsDir)

	// Auth — stricter rate limit: 10 req/min per IP.
	auth := app.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/google", h.Auth.Google)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password", h.Auth.ResetPassword)
	auth.Post("/logout", protected, h.Auth.Logout)
	auth.Get("/user", protected, h.Auth.CurrentUser)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP.
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Health)

	// Catalog reads are public; writes need an admin.
	api.Get("/celebrities", h.Celebrity.List)
	api.Get("/celebrities/:id", h.Celebrity.Get)
	api.Get("/celebrities/:id/brands", h.Celebrity.Brands)
	api.Get("/celebrities/:id/outfits", h.Celebrity.Outfits)
	api.Get("/celebrities/:id/products", h.Celebrity.Products)
	api.Post("/celebrities", protected, adminOnly, h.Celebrity.Create)
	api.Put("/celebrities/:id", protected, adminOnly, h.Celebrity.Update)
	api.Delete("/celebrities/:id", protected, adminOnly, h.Celebrity.Delete)

	api.Get("/brands", h.Brand.List)
	api.Get("/brands/:id", h.Brand.Get)
	api.Post("/brands", protected, adminOnly, h.Brand.Create)
	api.Post("/celebrity-brands", protected, adminOnly, h.Brand.CreateAssociation)

	api.Get("/categories", h.Category.List)
	api.Get("/categories/:id", h.Category.Get)
	api.Post("/categories", protected, adminOnly, h.Category.Create)
	api.Put("/categories/:id", protected, adminOnly, h.Category.Update)
	api.Delete("/categories/:id", protected, adminOnly, h.Category.Delete)

	api.Get("/tournaments", h.Tournament.List)
	api.Get("/tournaments/:id", h.Tournament.Get)
	api.Get("/tournaments/:id/outfits", h.Tournament.Outfits)
	api.Post("/tournaments", protected, adminOnly, h.Tournament.Create)
	api.Get("/tournament-outfits", h.Tournament.ListOutfits)
	api.Get("/tournament-outfits/:id", h.Tournament.GetOutfit)
	api.Post("/tournament-outfits", protected, adminOnly, h.Tournament.CreateOutfit)

	api.Get("/plans", h.Plan.List)
	api.Get("/plans/:id", h.Plan.Get)
	api.Post("/plans", protected, adminOnly, h.Plan.Create)
	api.Put("/plans/:id", protected, adminOnly, h.Plan.Update)
	api.Delete("/plans/:id", protected, adminOnly, h.Plan.Delete)

	api.Get("/products", h.Product.List)
	api.Get("/products/:id", h.Product.Get)
	api.Post("/products", protected, adminOnly, h.Product.Create)
	api.Put("/products/:id", protected, adminOnly, h.Product.Update)
	api.Delete("/products/:id", protected, adminOnly, h.Product.Delete)

	api.Get("/blogs", h.Blog.List)
	api.Get("/blogs/:id", h.Blog.Get)
	api.Post("/blogs", protected, adminOnly, h.Blog.Create)
	api.Put("/blogs/:id", protected, adminOnly, h.Blog.Update)
	api.Delete("/blogs/:id", protected, adminOnly, h.Blog.Delete)

	// User administration.
	users := api.Group("/users", protected, adminOnly)
	users.Get("/", h.User.List)
	users.Get("/:id", h.User.Get)
	users.Post("/", h.User.Create)
	users.Put("/:id", h.User.Update)
	users.Delete("/:id", h.User.Delete)
	users.Get("/:id/roles", h.User.Roles)
	users.Post("/:id/roles", h.User.AssignRole)
	users.Delete("/:id/roles/:roleId", h.User.RemoveRole)
	users.Post("/:id/assign-celebrity-role", h.User.AssignCelebrityRole)
	users.Get("/:id/activities", h.Activity.UserActivities)
	users.Delete("/:id/activities", h.Activity.DeleteUserActivities)

	roles := api.Group("/roles", protected, adminOnly)
	roles.Get("/", h.RBAC.ListRoles)
	roles.Get("/:id", h.RBAC.GetRole)
	roles.Post("/", h.RBAC.CreateRole)
	roles.Put("/:id", h.RBAC.UpdateRole)
	roles.Delete("/:id", h.RBAC.DeleteRole)
	roles.Get("/:id/permissions", h.RBAC.ListRolePermissions)
	roles.Post("/:id/permissions", h.RBAC.AddRolePermission)
	roles.Delete("/:id/permissions/:permissionId", h.RBAC.RemoveRolePermission)

	permissions := api.Group("/permissions", protected, adminOnly)
	permissions.Get("/", h.RBAC.ListPermissions)
	permissions.Get("/:id", h.RBAC.GetPermission)
	permissions.Post("/", h.RBAC.CreatePermission)
	permissions.Put("/:id", h.RBAC.UpdatePermission)
	permissions.Delete("/:id", h.RBAC.DeletePermission)

	admin := api.Group("/admin", protected, adminOnly)
	admin.Get("/activities", h.Activity.RecentActivities)
}
