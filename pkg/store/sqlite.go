package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS slots (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLite keeps the slot as a row in an embedded sqlite database.
type SQLite struct {
	conn *sql.DB
	path string
	key  string
}

func sqlitePath(basePath string) string {
	if strings.HasSuffix(basePath, ".db") {
		return basePath
	}
	return filepath.Join(basePath, "studyboard.db")
}

// OpenSQLite opens (creating if needed) the database at path.
// The caller must Close it.
func OpenSQLite(path, key string) (*SQLite, error) {
	if key == "" {
		key = DefaultKey
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s", path))
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("store: ping database: %w", err)
	}
	if _, err := conn.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("store: set busy timeout: %w", err)
	}
	if _, err := conn.Exec(sqliteSchema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	return &SQLite{conn: conn, path: path, key: key}, nil
}

func (s *SQLite) Read(ctx context.Context) (string, bool, error) {
	var text string
	err := s.conn.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, s.key).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: read %s: %w", s.key, err)
	}
	return text, true, nil
}

func (s *SQLite) Write(ctx context.Context, text string) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO slots (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		s.key, text)
	if err != nil {
		return fmt.Errorf("store: write %s: %w", s.key, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *SQLite) Describe() string {
	return "sqlite " + s.path
}
