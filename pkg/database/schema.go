package database

import (
	"context"
	"fmt"
)

// schema is applied on startup. Referential rules carry the capacity
// invariant's ownership model: tickets die with their showtime, while
// movies and halls cannot be removed while a showtime references them.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id           BIGSERIAL PRIMARY KEY,
		title        TEXT NOT NULL,
		description  TEXT,
		duration_min INTEGER NOT NULL CHECK (duration_min > 0),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS halls (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		capacity   INTEGER NOT NULL CHECK (capacity >= 1),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS showtimes (
		id         BIGSERIAL PRIMARY KEY,
		movie_id   BIGINT NOT NULL REFERENCES movies(id) ON DELETE RESTRICT,
		hall_id    BIGINT NOT NULL REFERENCES halls(id) ON DELETE RESTRICT,
		starts_at  TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id          BIGSERIAL PRIMARY KEY,
		showtime_id BIGINT NOT NULL REFERENCES showtimes(id) ON DELETE CASCADE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tickets_showtime_id ON tickets(showtime_id)`,
	`CREATE INDEX IF NOT EXISTS idx_showtimes_starts_at ON showtimes(starts_at)`,
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db PgxIface) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
