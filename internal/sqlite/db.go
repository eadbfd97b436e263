package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection.
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema. Idempotent.
func (db *DB) RunMigrations() error {
	migration := `
-- Voyage routes
CREATE TABLE IF NOT EXISTS routes (
    id TEXT PRIMARY KEY,
    route_name TEXT NOT NULL,
    vessel_name TEXT NOT NULL,
    distance_nm REAL NOT NULL,
    fuel_consumed_mt REAL NOT NULL,
    ghg_intensity REAL NOT NULL,
    reference_ghg_intensity REAL NOT NULL,
    compliance_balance REAL NOT NULL,
    year INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_routes_vessel ON routes(vessel_name);
CREATE INDEX IF NOT EXISTS idx_routes_year ON routes(year);
CREATE INDEX IF NOT EXISTS idx_routes_created ON routes(created_at);

-- Per-vessel per-year compliance-balance banking
CREATE TABLE IF NOT EXISTS banking_records (
    id TEXT PRIMARY KEY,
    vessel_name TEXT NOT NULL,
    year INTEGER NOT NULL,
    banked_cb REAL NOT NULL,
    applied_cb REAL NOT NULL,
    remaining_cb REAL NOT NULL,
    created_at TIMESTAMP NOT NULL,
    version INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_banking_vessel ON banking_records(vessel_name);
CREATE INDEX IF NOT EXISTS idx_banking_year ON banking_records(year);
CREATE INDEX IF NOT EXISTS idx_banking_created ON banking_records(created_at);

-- Pools
CREATE TABLE IF NOT EXISTS pools (
    id TEXT PRIMARY KEY,
    pool_name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_pools_created ON pools(created_at);

-- Pool member contributions
CREATE TABLE IF NOT EXISTS pool_members (
    id TEXT PRIMARY KEY,
    pool_id TEXT NOT NULL,
    vessel_name TEXT NOT NULL,
    contribution_cb REAL NOT NULL,
    created_at TIMESTAMP NOT NULL,
    FOREIGN KEY (pool_id) REFERENCES pools(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_members_pool ON pool_members(pool_id);
CREATE INDEX IF NOT EXISTS idx_members_created ON pool_members(created_at);
`

	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
