package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // driver: sqlite
)

// schema mirrors the postgres quiz_questions table; options are a JSON array.
const schema = `
CREATE TABLE IF NOT EXISTS quiz_questions (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    category    TEXT    NOT NULL,
    position    INTEGER NOT NULL DEFAULT 0,
    question    TEXT    NOT NULL,
    options     TEXT    NOT NULL,
    answer      TEXT    NOT NULL,
    explanation TEXT
);

CREATE INDEX IF NOT EXISTS idx_quiz_questions_category_position
    ON quiz_questions (category, position);
`

// Open opens the SQLite file at path and makes sure the question table exists.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := "file:" + filepath.Clean(path) + "?_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return db, nil
}
