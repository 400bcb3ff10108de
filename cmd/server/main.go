package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"

	"github.com/patitas-felices/shelter-portal/internal/config"
	"github.com/patitas-felices/shelter-portal/internal/database"
	"github.com/patitas-felices/shelter-portal/internal/handlers"
	"github.com/patitas-felices/shelter-portal/internal/logging"
	"github.com/patitas-felices/shelter-portal/internal/routes"
	"github.com/patitas-felices/shelter-portal/internal/services"
	"github.com/patitas-felices/shelter-portal/internal/session"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	// Optional .env for local development
	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.SessionSecret == "" {
		slog.Error("SESSION_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Services
	authService := services.NewAuthService(database.DB, cfg)
	animalService := services.NewAnimalService(database.DB)
	adoptionService := services.NewAdoptionService(database.DB)
	volunteerService := services.NewVolunteerService(database.DB)

	// Sessions
	sessions := session.NewManager(cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, sessions)
	catalogHandler := handlers.NewCatalogHandler(animalService)
	animalHandler := handlers.NewAnimalHandler(animalService)
	adoptionHandler := handlers.NewAdoptionHandler(adoptionService, animalService)
	dashboardHandler := handlers.NewDashboardHandler(animalService, adoptionService, volunteerService)
	healthHandler := handlers.NewHealthHandler()

	// Server-rendered views
	engine := html.New(cfg.TemplatesPath, ".html")
	engine.AddFunc("fecha", func(t time.Time) string { return t.Format("02/01/2006") })

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: errorHandler,
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
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "patitas_csrf",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		ContextKey:     "csrf_token",
	}))

	app.Static("/static", cfg.StaticPath)

	// Routes
	routes.Setup(app, sessions, authService,
		authHandler, catalogHandler, animalHandler, adoptionHandler, dashboardHandler, healthHandler)

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

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

// errorHandler is the page-level boundary: every unhandled error becomes a
// rendered apology page, with 5xx detail kept out of the response.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Ha ocurrido un error inesperado. Inténtalo de nuevo más tarde."
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		if code < 500 {
			message = e.Message
		}
	}

	switch code {
	case fiber.StatusNotFound:
		message = "La página que buscas no existe."
	case fiber.StatusForbidden:
		message = "No tienes permiso para acceder a esta página."
	}

	if code >= 500 {
		slog.Error("unhandled server error",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"error", err.Error())
	}

	if renderErr := c.Status(code).Render("pages/error", fiber.Map{
		"Title":   "Error",
		"Code":    code,
		"Message": message,
	}, "layouts/main"); renderErr != nil {
		return c.Status(code).SendString(message)
	}
	return nil
}
