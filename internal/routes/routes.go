package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/minibank/minibank/internal/account"
	"github.com/minibank/minibank/internal/config"
	"github.com/minibank/minibank/internal/docstore"
	"github.com/minibank/minibank/internal/middleware"
	"github.com/minibank/minibank/internal/notification"
	"github.com/minibank/minibank/internal/session"
)

const (
	idempotencyTTL    = 24 * time.Hour
	loginRateLimitMax = 5
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg      config.Config
	Store    docstore.Store
	Cache    *redis.Client
	Sessions session.Resolver
	Notifier notification.Notifier
	Logger   *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, idempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	repo := account.NewRepository(d.Store, d.Logger)
	svc := account.NewService(repo)
	handler := account.NewHandler(svc, d.Sessions, d.Notifier, d.Logger, d.Cfg.SessionTTL)

	app.Post("/register", handler.Register)
	if d.Cache != nil {
		app.Post("/login", middleware.LoginRateLimit(d.Cache, loginRateLimitMax), handler.Login)
	} else {
		app.Post("/login", handler.Login)
	}
	app.Get("/dashboard", handler.Dashboard)
	app.Get("/balance", handler.Balance)
	app.Post("/transfer", handler.Transfer)
	app.Get("/history", handler.History)
	app.Post("/logout", handler.Logout)
	app.Get("/check-session", handler.CheckSession)

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":    "OK",
			"message":   "Banking API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
			"endpoints": []string{
				"POST /register",
				"POST /login",
				"GET /dashboard",
				"GET /balance",
				"POST /transfer",
				"GET /history",
				"POST /logout",
				"GET /check-session",
			},
		})
	})

	return nil
}
