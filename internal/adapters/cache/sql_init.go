package cache

import (
	"database/sql"
	"fmt"
)

// InitGeocodeSchema creates the geocode cache table if it does not exist.
// The statement is kept portable across SQLite and Postgres, so both the
// server (local SQLite) and dbtool (Postgres) use it.
func InitGeocodeSchema(db *sql.DB) error {
	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lon DOUBLE PRECISION NOT NULL,
        lat DOUBLE PRECISION NOT NULL
    );
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init geocode schema: create geocode_cache table: %w", err)
	}

	return nil
}
