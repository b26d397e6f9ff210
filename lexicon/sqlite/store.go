// SPDX-License-Identifier: MIT
// Package: genling/lexicon/sqlite
//
// store.go — SQLite-backed lexicon store.

// Package sqlite persists generated lexicon entries in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/katalvlaran/genling/internal/platform/sqlitemigrate"
	"github.com/katalvlaran/genling/lexicon"
	"github.com/katalvlaran/genling/lexicon/sqlite/migrations"
)

// ErrAlreadyExists is returned by Add when the language already holds the
// stem in that script.
var ErrAlreadyExists = errors.New("lexicon store: entry already exists")

// Store persists lexicon entries keyed by (language, script, stem).
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens (creating if needed) the database at path and applies the
// embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	// modernc.org/sqlite runs each _pragma on every new connection.
	dsn := filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Add inserts one entry, failing with ErrAlreadyExists on a repeat.
func (s *Store) Add(ctx context.Context, language string, e lexicon.Entry) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	if err := validate(language, e); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO lexicon_entries (language, script, stem, word, created_at) VALUES (?, ?, ?, ?, ?)`,
		language, e.Script, e.Stem, e.Word, s.now().UTC().UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s/%s %q: %w", language, e.Script, e.Stem, ErrAlreadyExists)
		}
		return fmt.Errorf("add entry: %w", err)
	}
	return nil
}

// Put stores entries in one transaction, skipping ones already present,
// and returns how many rows were new.
func (s *Store) Put(ctx context.Context, language string, entries []lexicon.Entry) (int, error) {
	if err := s.check(ctx); err != nil {
		return 0, err
	}
	for _, e := range entries {
		if err := validate(language, e); err != nil {
			return 0, err
		}
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin put: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO lexicon_entries (language, script, stem, word, created_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare put: %w", err)
	}
	defer stmt.Close()

	created := s.now().UTC().UnixMilli()
	var inserted int
	for _, e := range entries {
		res, err := stmt.ExecContext(ctx, language, e.Script, e.Stem, e.Word, created)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("put %q: %w", e.Stem, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("put %q: %w", e.Stem, err)
		}
		inserted += int(n)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit put: %w", err)
	}
	return inserted, nil
}

// List returns entries of language in insertion order. An empty script
// lists every script; limit <= 0 lists everything.
func (s *Store) List(ctx context.Context, language, script string, limit int) ([]lexicon.Entry, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	query := `SELECT script, stem, word FROM lexicon_entries WHERE language = ?`
	args := []any{language}
	if script != "" {
		query += ` AND script = ?`
		args = append(args, script)
	}
	query += ` ORDER BY created_at, rowid`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var out []lexicon.Entry
	for rows.Next() {
		var e lexicon.Entry
		if err := rows.Scan(&e.Script, &e.Stem, &e.Word); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return out, nil
}

// Count returns the number of distinct stems stored for language.
func (s *Store) Count(ctx context.Context, language string) (int, error) {
	if err := s.check(ctx); err != nil {
		return 0, err
	}
	var n int
	if err := s.sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT stem) FROM lexicon_entries WHERE language = ?`, language,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

func (s *Store) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func validate(language string, e lexicon.Entry) error {
	switch {
	case strings.TrimSpace(language) == "":
		return fmt.Errorf("language is required")
	case strings.TrimSpace(e.Script) == "":
		return fmt.Errorf("script is required for stem %q", e.Stem)
	case e.Stem == "":
		return fmt.Errorf("stem is required")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
