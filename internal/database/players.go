package database

import (
	"context"
	"fmt"

	"github.com/trentd187/player-roster/internal/models"
	"gorm.io/gorm"
)

// PlayerRepository reads rows from the players table.
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository wraps a GORM handle opened with Connect.
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// ListAll returns every player ordered by ascending id.
// The explicit ORDER BY keeps output stable between calls; the database's natural
// row order is not guaranteed. An empty table yields an empty, non-nil slice.
func (r *PlayerRepository) ListAll(ctx context.Context) ([]models.Player, error) {
	players := make([]models.Player, 0)

	// WithContext ties the query to the request so a disconnected client or a
	// shutdown cancels the query. GORM returns the pooled connection when Find returns,
	// on success and on error alike.
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}
