package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health states reported by GET /health.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// HealthResponse is the body of GET /health.
// Error is only present when the probe failed.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// HealthCheck handles GET /health.
// Unlike a plain liveness check, it proves the database is reachable: every call runs
// a fresh probe (nothing is cached), bounded by timeout.
//
//	200 {"status":"healthy","database":"connected"}
//	503 {"status":"unhealthy","database":"disconnected","error":"..."}
func HealthCheck(prober DatabaseProber, timeout time.Duration, opts Options) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()

		if err := prober.Probe(ctx); err != nil {
			logError(c, "health check failed", err)
			opts.Metrics.ObserveProbe(false)

			return c.Status(fiber.StatusServiceUnavailable).JSON(HealthResponse{
				Status:   StatusUnhealthy,
				Database: DatabaseDisconnected,
				Error:    opts.errorMessage(err),
			})
		}

		opts.Metrics.ObserveProbe(true)

		return c.JSON(HealthResponse{
			Status:   StatusHealthy,
			Database: DatabaseConnected,
		})
	}
}
