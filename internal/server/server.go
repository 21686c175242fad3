// Package server assembles the Fiber application: global middleware, routes and the
// JSON error handler. Everything a handler needs is passed in through Deps when the app
// is built, so there is no package-level state to initialise or reset.
package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	// cors handles Cross-Origin Resource Sharing; the default config allows every origin
	"github.com/gofiber/fiber/v2/middleware/cors"
	// logger prints request details (method, path, status, duration) to stdout
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trentd187/player-roster/internal/config"
	"github.com/trentd187/player-roster/internal/handlers"
	"github.com/trentd187/player-roster/internal/metrics"
	"github.com/trentd187/player-roster/internal/middleware"
)

// AppName is reported by Fiber in its startup banner.
const AppName = "Player Roster API"

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Players handlers.PlayerLister
	Prober  handlers.DatabaseProber
	Metrics *metrics.Metrics
}

// New builds the Fiber app for cfg and deps. The returned app is ready to Listen;
// tests drive it with app.Test instead.
func New(cfg *config.Config, deps Deps) *fiber.App {
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}

	app := fiber.New(fiber.Config{
		AppName:      AppName,
		ErrorHandler: errorHandler,
	})

	// --- Global middleware ---
	// recover turns a handler panic into a 500 instead of killing the process.
	app.Use(recover.New())
	// requestid tags each request (X-Request-ID header + c.Locals) so access log
	// lines and handler error logs can be matched up.
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	// The API is read-only and unauthenticated, so any browser origin may call it.
	app.Use(cors.New())
	app.Use(middleware.Metrics(deps.Metrics))

	opts := handlers.Options{
		ExposeErrors: !cfg.IsProduction(),
		Metrics:      deps.Metrics,
	}

	// --- Routes ---
	app.Get("/health", handlers.HealthCheck(deps.Prober, cfg.HealthTimeout, opts))

	// /data and /api/data are aliases: one handler value, two paths.
	players := handlers.GetPlayers(deps.Players, opts)
	app.Get("/data", players)
	app.Get("/api/data", players)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))

	return app
}

// errorHandler keeps error responses JSON even for errors the handlers never see,
// such as unknown routes (404), wrong methods (405) and recovered panics (500).
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		log.Errorw("unhandled error", "error", err, "path", c.Path())
	}

	return c.Status(code).JSON(handlers.ErrorResponse{Error: msg})
}
