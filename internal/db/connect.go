package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:certification.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/certification?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

// The UNIQUE constraint on (quiz_content_id, user_id, enrollment_id,
// attempt_number) is the backstop that keeps racing submits from reusing an
// attempt number; the submission store retries the losing writer.

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS quiz_contents (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  passing_score REAL NOT NULL DEFAULT 0,
  questions_json TEXT NOT NULL,
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_submissions (
  id TEXT PRIMARY KEY,
  quiz_content_id TEXT NOT NULL REFERENCES quiz_contents(id) ON DELETE CASCADE,
  user_id TEXT NOT NULL,
  enrollment_id TEXT NOT NULL,
  score REAL NOT NULL DEFAULT 0,
  max_score REAL NOT NULL DEFAULT 0,
  percentage_score REAL NOT NULL DEFAULT 0,
  is_passed INTEGER NOT NULL DEFAULT 0,
  completed_at INTEGER,
  time_spent_seconds INTEGER NOT NULL DEFAULT 0,
  attempt_number INTEGER NOT NULL,
  created_by TEXT NOT NULL DEFAULT '',
  created_at INTEGER NOT NULL,
  UNIQUE (quiz_content_id, user_id, enrollment_id, attempt_number)
);

CREATE TABLE IF NOT EXISTS quiz_question_responses (
  id TEXT PRIMARY KEY,
  submission_id TEXT NOT NULL REFERENCES quiz_submissions(id) ON DELETE CASCADE,
  quiz_question_id TEXT NOT NULL,
  user_response_json TEXT NOT NULL,
  is_correct INTEGER NOT NULL DEFAULT 0,
  points_earned REAL NOT NULL DEFAULT 0,
  max_points REAL NOT NULL DEFAULT 0
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS quiz_contents (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  passing_score DOUBLE PRECISION NOT NULL DEFAULT 0,
  questions_json TEXT NOT NULL,
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_submissions (
  id TEXT PRIMARY KEY,
  quiz_content_id TEXT NOT NULL REFERENCES quiz_contents(id) ON DELETE CASCADE,
  user_id TEXT NOT NULL,
  enrollment_id TEXT NOT NULL,
  score DOUBLE PRECISION NOT NULL DEFAULT 0,
  max_score DOUBLE PRECISION NOT NULL DEFAULT 0,
  percentage_score DOUBLE PRECISION NOT NULL DEFAULT 0,
  is_passed BOOLEAN NOT NULL DEFAULT FALSE,
  completed_at BIGINT,
  time_spent_seconds INTEGER NOT NULL DEFAULT 0,
  attempt_number INTEGER NOT NULL,
  created_by TEXT NOT NULL DEFAULT '',
  created_at BIGINT NOT NULL,
  UNIQUE (quiz_content_id, user_id, enrollment_id, attempt_number)
);

CREATE TABLE IF NOT EXISTS quiz_question_responses (
  id TEXT PRIMARY KEY,
  submission_id TEXT NOT NULL REFERENCES quiz_submissions(id) ON DELETE CASCADE,
  quiz_question_id TEXT NOT NULL,
  user_response_json TEXT NOT NULL,
  is_correct BOOLEAN NOT NULL DEFAULT FALSE,
  points_earned DOUBLE PRECISION NOT NULL DEFAULT 0,
  max_points DOUBLE PRECISION NOT NULL DEFAULT 0
);
`
