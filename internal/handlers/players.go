package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/trentd187/player-roster/internal/models"
)

// PlayerResponse is the JSON shape of one player.
type PlayerResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NewPlayerResponse maps a database row to its response shape.
func NewPlayerResponse(p models.Player) PlayerResponse {
	return PlayerResponse{ID: p.ID, Name: p.Name}
}

// GetPlayers handles GET /data (and its alias GET /api/data).
// It returns every player as a JSON array ordered by id. An empty table is "[]".
// Any database failure becomes a 500 with an {"error": "..."} body.
func GetPlayers(players PlayerLister, opts Options) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := players.ListAll(c.UserContext())
		if err != nil {
			logError(c, "error retrieving players", err)
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
				Error: opts.errorMessage(err),
			})
		}

		// make with length 0 (not a nil slice) so an empty table encodes as [] not null
		resp := make([]PlayerResponse, 0, len(rows))
		for _, p := range rows {
			resp = append(resp, NewPlayerResponse(p))
		}

		log.Infow("retrieved players from database", "count", len(resp), "request_id", requestID(c))
		opts.Metrics.ObservePlayers(len(resp))

		return c.JSON(resp)
	}
}
