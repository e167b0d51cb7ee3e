package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;

CREATE TABLE IF NOT EXISTS trips (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	trip_code TEXT UNIQUE NOT NULL,
	destination TEXT NOT NULL,
	party_size INT NOT NULL,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	checklist JSONB NOT NULL DEFAULT '[]',
	itinerary JSONB NOT NULL DEFAULT '[]',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate applies the schema. Statements are idempotent so it is safe to
// run on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
