package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// Users carry their plan/workout reference lists as JSON id arrays, and a
// workout carries its result history as a JSON array, mirroring the
// document shape the API exposes.
const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    tooltips BOOLEAN NOT NULL DEFAULT 1,
    plans TEXT NOT NULL DEFAULT '[]',
    workouts TEXT NOT NULL DEFAULT '[]'
);
`

const schemaPlans = `
CREATE TABLE IF NOT EXISTS plans (
    id TEXT PRIMARY KEY,
    plan_name TEXT NOT NULL,
    plan_memo TEXT NOT NULL,
    user_id TEXT NOT NULL
);
`

const schemaWorkouts = `
CREATE TABLE IF NOT EXISTS workouts (
    id TEXT PRIMARY KEY,
    category_title TEXT NOT NULL,
    target REAL NOT NULL,
    result TEXT NOT NULL DEFAULT '[]',
    notes TEXT NOT NULL DEFAULT '',
    user_id TEXT NOT NULL
);
`

// InitDB opens/creates the SQLite file and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	conn, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// SQLite tolerates few concurrent writers
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return conn, nil
}

func ensureSchema(conn *sql.DB) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{schemaUsers, schemaPlans, schemaWorkouts} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
