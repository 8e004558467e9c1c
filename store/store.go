package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/b3jones/braid"
	"github.com/katalvlaran/b3jones/enumerate"
	"github.com/katalvlaran/b3jones/poly"
)

//go:embed schema.sql
var schemaSQL string

// ErrRunNotFound is returned when a run id does not exist.
var ErrRunNotFound = errors.New("store: run not found")

// Run describes a persisted enumeration.
type Run struct {
	ID        int64
	MaxLength int
	SignMode  string
	Total     int
}

// Store wraps a SQLite database holding runs and their records.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: connect to database: %w", err)
	}

	// SQLite has a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("store: execute %q: %w", p, err)
		}
	}
	return nil
}

// SaveRun stores recs as a new run in a single transaction and returns its id.
func (s *Store) SaveRun(ctx context.Context, maxLength int, signMode string, recs []enumerate.Record) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO runs (max_length, sign_mode, total) VALUES (?, ?, ?)",
		maxLength, signMode, len(recs))
	if err != nil {
		return 0, fmt.Errorf("store: insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO records (run_id, seq, length, word, jones, constant_coef) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("store: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range recs {
		if _, err := stmt.ExecContext(ctx,
			runID, i, r.Word.Len(), r.Word.String(), r.Jones.String(), r.Jones.Coef(0)); err != nil {
			return 0, fmt.Errorf("store: insert record %d (%v): %w", i, r.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit: %w", err)
	}
	return runID, nil
}

// GetRun returns the metadata of run id.
func (s *Store) GetRun(ctx context.Context, id int64) (Run, error) {
	var r Run
	err := s.db.QueryRowContext(ctx,
		"SELECT id, max_length, sign_mode, total FROM runs WHERE id = ?", id).
		Scan(&r.ID, &r.MaxLength, &r.SignMode, &r.Total)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("store: get run %d: %w", id, err)
	}
	return r, nil
}

// LoadRecords returns the records of run id in their original order.
func (s *Store) LoadRecords(ctx context.Context, id int64) ([]enumerate.Record, error) {
	run, err := s.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.queryRecords(ctx, run.Total,
		"SELECT word, jones FROM records WHERE run_id = ? ORDER BY seq", id)
}

// NonZeroConstant returns the records of run id whose Jones polynomial has a
// non-zero t⁰ coefficient, in their original order.
func (s *Store) NonZeroConstant(ctx context.Context, id int64) ([]enumerate.Record, error) {
	if _, err := s.GetRun(ctx, id); err != nil {
		return nil, err
	}
	return s.queryRecords(ctx, 0,
		"SELECT word, jones FROM records WHERE run_id = ? AND constant_coef != 0 ORDER BY seq", id)
}

func (s *Store) queryRecords(ctx context.Context, sizeHint int, query string, args ...any) ([]enumerate.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: query records: %w", err)
	}
	defer rows.Close()

	recs := make([]enumerate.Record, 0, sizeHint)
	for rows.Next() {
		var wordText, jonesText string
		if err := rows.Scan(&wordText, &jonesText); err != nil {
			return nil, fmt.Errorf("store: scan record: %w", err)
		}
		w, err := braid.ParseWord(wordText)
		if err != nil {
			return nil, fmt.Errorf("store: decode word %q: %w", wordText, err)
		}
		j, err := poly.Parse(jonesText)
		if err != nil {
			return nil, fmt.Errorf("store: decode jones of %q: %w", wordText, err)
		}
		recs = append(recs, enumerate.Record{Word: w, Jones: j})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate records: %w", err)
	}
	return recs, nil
}
