package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/styleverse/styleverse-backend/internal/config"
	"github.com/styleverse/styleverse-backend/internal/database"
	"github.com/styleverse/styleverse-backend/internal/handlers"
	"github.com/styleverse/styleverse-backend/internal/logging"
	"github.com/styleverse/styleverse-backend/internal/middleware"
	"github.com/styleverse/styleverse-backend/internal/routes"
	"github.com/styleverse/styleverse-backend/internal/seed"
	"github.com/styleverse/styleverse-backend/internal/services"
	"github.com/styleverse/styleverse-backend/internal/storage"
	"github.com/styleverse/styleverse-backend/internal/storage/memstore"
	"github.com/styleverse/styleverse-backend/internal/storage/postgres"
	"gorm.io/gorm"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	// Storage backend: Postgres when reachable, in-memory otherwise.
	var (
		store        storage.Store
		db           *gorm.DB
		backend      = "memory"
		pgLogHandler *logging.PGHandler
		cleanupDone  chan struct{}
	)

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Warn("database unavailable, using in-memory storage", "error", err)
		store = memstore.New()
	} else {
		if err := database.Migrate(db); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
		store = postgres.New(db)
		backend = "postgres"

		// PostgreSQL log handler (ERROR+ async batch)
		pgLogHandler = logging.NewPGHandler(db)
		slog.SetDefault(slog.New(logging.NewMultiHandler(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
			pgLogHandler,
		)))

		cleanupDone = make(chan struct{})
		logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)
	}
	slog.Info("storage backend selected", "backend", backend)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Services
	authService := services.NewAuthService(store, cfg)
	uploadService, err := services.NewUploadService(context.Background(), cfg)
	if err != nil {
		slog.Error("upload service init failed", "error", err)
		os.Exit(1)
	}

	// Cookie sessions
	sessions := session.New(session.Config{
		Expiration:     cfg.SessionMaxAge,
		KeyLookup:      "cookie:styleverse_session",
		CookieSecure:   cfg.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: cfg.CookieSameSite,
	})

	// Handlers
	var pingDB func(ctx context.Context) error
	if db != nil {
		pingDB = func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	}

	h := routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService, sessions, store),
		Health:     handlers.NewHealthHandler(backend, pingDB),
		User:       handlers.NewUserHandler(store, uploadService),
		Celebrity:  handlers.NewCelebrityHandler(store),
		Brand:      handlers.NewBrandHandler(store),
		Category:   handlers.NewCategoryHandler(store),
		Tournament: handlers.NewTournamentHandler(store),
		Plan:       handlers.NewPlanHandler(store),
		Product:    handlers.NewProductHandler(store),
		Blog:       handlers.NewBlogHandler(store),
		RBAC:       handlers.NewRBACHandler(store),
		Activity:   handlers.NewActivityHandler(store),
	}

	// Seeding: always for the volatile memory backend, opt-in for Postgres.
	if backend == "memory" || cfg.RunSeeders {
		if err := seed.Run(context.Background(), store); err != nil {
			slog.Error("seeding failed", "error", err)
			os.Exit(1)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:               8 * 1024 * 1024,
		ErrorHandler:            customErrorHandler,
		EnableTrustedProxyCheck: cfg.TrustProxy,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	if cfg.SessionSecret != "" {
		// SESSION_SECRET must be a base64-encoded 32-byte key.
		app.Use(encryptcookie.New(encryptcookie.Config{Key: cfg.SessionSecret}))
	}
	app.Use(middleware.Metrics())
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, store, sessions, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if cleanupDone != nil {
		close(cleanupDone)
	}
	if pgLogHandler != nil {
		pgLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Error("database close error", "error", err)
			}
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
