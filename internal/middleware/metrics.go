// Package middleware contains HTTP middleware functions for the Player Roster API.
// Middleware sits between the HTTP server and route handlers: it runs on every
// request that passes through it, making it the right place for cross-cutting
// concerns like request accounting.
package middleware

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/player-roster/internal/metrics"
)

// unmatchedRoute labels requests that did not hit a registered route. Using the raw
// path instead would let any client create unbounded label values.
const unmatchedRoute = "unmatched"

// Metrics returns a middleware that counts every request in m.Requests,
// labelled by method, matched route pattern and final status code.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		// A handler error has not been turned into a response yet (the app's
		// ErrorHandler runs later), so take the status from a *fiber.Error when present.
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		// Unknown paths and methods still "match" the catch-all Use route, so
		// they are told apart by their status instead.
		route := unmatchedRoute
		if status != fiber.StatusNotFound && status != fiber.StatusMethodNotAllowed {
			route = c.Route().Path
		}

		m.Requests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()

		return err
	}
}
