// Package routes defines the API routing configuration.
// It builds the fiber application, installs middleware and maps every
// HTTP route to its handler.
package routes

import (
	"relay/internal/config"
	"relay/internal/handlers"
	"relay/internal/middleware"
	"relay/internal/services/notification"
	"relay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// bodyLimit matches the 100kb JSON limit of the service this relay replaced.
const bodyLimit = 100 * 1024

// Dependencies are the services the routes need.
type Dependencies struct {
	Notifications *notification.Service
	// QRDir is served under Config.QRPublicPath in enriched mode.
	QRDir string
	// LimiterStorage shares rate-limit counters; nil keeps them in memory.
	LimiterStorage fiber.Storage
	// AccessLog toggles the per-request log line.
	AccessLog bool
}

// NewApp creates the fiber application with middleware and routes installed.
func NewApp(cfg config.Config, deps Dependencies) *fiber.App {
	errs := response.NewFormatter(cfg.ExposeErrors)

	app := fiber.New(fiber.Config{
		AppName:      "tenant-notification-relay",
		BodyLimit:    bodyLimit,
		ErrorHandler: middleware.ErrorHandler(errs),
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET,POST,HEAD,OPTIONS",
	}))
	if deps.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
		}))
	}

	SetupRoutes(app, cfg, deps, errs)
	return app
}

// SetupRoutes maps the relay endpoints. The QR routes only exist in
// enriched mode.
func SetupRoutes(app *fiber.App, cfg config.Config, deps Dependencies, errs response.Formatter) {
	notificationHandler := handlers.NewNotificationHandler(deps.Notifications, errs)

	api := app.Group("/api")
	api.Get("/health", handlers.HealthCheck)

	notifications := []fiber.Handler{notificationHandler.CreateNotification}
	if cfg.RateLimitMax > 0 {
		notifications = append([]fiber.Handler{
			middleware.RateLimit(cfg.RateLimitMax, cfg.RateLimitWin, deps.LimiterStorage),
		}, notifications...)
	}
	api.Post("/notifications", notifications...)

	if cfg.Mode == config.ModeEnriched {
		qrHandler := handlers.NewQRHandler(errs)
		api.Get("/qrcode/generate", qrHandler.GenerateQRData)

		app.Static(cfg.QRPublicPath, deps.QRDir, fiber.Static{
			Browse: false,
		})
	}
}
