package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Prober checks that the database is reachable.
// It deliberately bypasses the GORM pool: every Probe dials a fresh connection,
// so an exhausted pool cannot hide (or fake) the real state of the server.
type Prober struct {
	DSN string
}

// NewProber returns a Prober that dials dsn.
func NewProber(dsn string) *Prober {
	return &Prober{DSN: dsn}
}

// Probe opens a connection, runs SELECT 1, and closes the connection again.
// ctx bounds both the dial and the query.
func (p *Prober) Probe(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, p.DSN)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	// Close with a fresh context: if ctx already expired we still want the
	// connection torn down cleanly.
	defer conn.Close(context.Background())

	var one int
	if err := conn.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("select 1: %w", err)
	}

	return nil
}
