// Package handlers contains the HTTP route handler functions for the Player Roster API.
// Each handler corresponds to one API endpoint and is responsible for calling into the
// database layer and writing a JSON response.
//
// Handlers follow the "handler factory" pattern: each exported function takes its
// dependencies and returns a fiber.Handler. Dependencies are small interfaces, so the
// handlers can be exercised in tests without a real database.
package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/trentd187/player-roster/internal/metrics"
	"github.com/trentd187/player-roster/internal/models"
)

// genericErrorMessage replaces raw driver errors in responses when raw errors are hidden.
const genericErrorMessage = "internal server error"

// PlayerLister is the read side of the data access layer used by GetPlayers.
// *database.PlayerRepository satisfies it.
type PlayerLister interface {
	ListAll(ctx context.Context) ([]models.Player, error)
}

// DatabaseProber checks database reachability for HealthCheck.
// *database.Prober satisfies it.
type DatabaseProber interface {
	Probe(ctx context.Context) error
}

// Options carries the settings shared by every handler.
type Options struct {
	// ExposeErrors controls whether raw error text reaches the client.
	// When false the client gets genericErrorMessage and the detail is only logged.
	ExposeErrors bool
	// Metrics may be nil, in which case nothing is recorded.
	Metrics *metrics.Metrics
}

// errorMessage picks the text placed in the "error" field of a response body.
func (o Options) errorMessage(err error) string {
	if o.ExposeErrors {
		return err.Error()
	}
	return genericErrorMessage
}

// ErrorResponse is the body of every failed request outside /health.
type ErrorResponse struct {
	Error string `json:"error"`
}

// requestID returns the id assigned by the requestid middleware, or "" when that
// middleware is not installed (e.g. in handler unit tests).
func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

// logError writes one error-level line for a failed request.
func logError(c *fiber.Ctx, msg string, err error) {
	log.Errorw(msg, "error", err, "path", c.Path(), "request_id", requestID(c))
}
