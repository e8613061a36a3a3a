package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS properties (
		id                   TEXT PRIMARY KEY,
		title                TEXT NOT NULL,
		description          TEXT NOT NULL,
		contact_name         TEXT NOT NULL,
		contact_number       TEXT NOT NULL,
		property_type        TEXT NOT NULL,
		district             TEXT NOT NULL,
		price                DOUBLE PRECISION NOT NULL CHECK (price >= 0),
		image                TEXT NOT NULL DEFAULT '',
		status               TEXT NOT NULL DEFAULT 'pending',
		request_type         TEXT NOT NULL DEFAULT 'add',
		original_property_id TEXT,
		posted_by_agent      TEXT NOT NULL,
		created_at           TIMESTAMPTZ NOT NULL,
		updated_at           TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_status_request ON properties (status, request_type)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_agent_created ON properties (posted_by_agent, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_district_lower ON properties (lower(district))`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id          TEXT PRIMARY KEY,
		property_id TEXT NOT NULL,
		user_id     TEXT NOT NULL,
		price       DOUBLE PRECISION NOT NULL,
		start_date  TIMESTAMPTZ NOT NULL,
		end_date    TIMESTAMPTZ NOT NULL CHECK (end_date >= start_date),
		status      TEXT NOT NULL DEFAULT 'pending',
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_property_start ON bookings (property_id, start_date)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id)`,
}

// EnsureSchema creates the properties and bookings tables and their indexes when they are missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
