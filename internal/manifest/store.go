// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest records materialization runs in a SQLite database
// under the output root. The manifest is advisory: downstream tooling
// can ask what was generated and when, but a manifest failure never
// invalidates a completed run.
package manifest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const (
	manifestDir = ".docforge"
	dbFile      = "manifest.db"
)

// Store manages the run manifest database for one output root.
type Store struct {
	db *sql.DB
}

// Exists reports whether a manifest database has been created under
// outputDir. It never creates files, so read-only callers can check
// before opening.
func Exists(outputDir string) bool {
	_, err := os.Stat(filepath.Join(outputDir, manifestDir, dbFile))
	return err == nil
}

// Open opens or creates the manifest database at
// outputDir/.docforge/manifest.db, creating the schema if needed.
func Open(outputDir string) (*Store, error) {
	dir := filepath.Join(outputDir, manifestDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating manifest directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening manifest database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating manifest schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			config_name TEXT NOT NULL,
			config_path TEXT,
			output_dir TEXT NOT NULL,
			sections INTEGER NOT NULL,
			pages INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS pages (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			category TEXT NOT NULL,
			slug TEXT NOT NULL,
			title TEXT NOT NULL,
			url TEXT,
			path TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pages_run_id ON pages(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Run is one recorded materialization.
type Run struct {
	ID         int64
	ConfigName string
	ConfigPath string
	OutputDir  string
	Sections   int
	Pages      int
	StartedAt  string
	FinishedAt string
}

// PageRecord is one page file written during a run.
type PageRecord struct {
	Category string
	Slug     string
	Title    string
	URL      string
	Path     string
}

// Record stores a completed run and its page files in one transaction,
// returning the run ID.
func (s *Store) Record(ctx context.Context, run Run, pages []PageRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (config_name, config_path, output_dir, sections, pages, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ConfigName, run.ConfigPath, run.OutputDir,
		run.Sections, run.Pages, run.StartedAt, run.FinishedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO pages (run_id, category, slug, title, url, path) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing page insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range pages {
		if _, err := stmt.ExecContext(ctx, runID, p.Category, p.Slug, p.Title, p.URL, p.Path); err != nil {
			return 0, fmt.Errorf("inserting page %s: %w", p.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Recent returns the most recent runs, newest first. A limit of zero
// defaults to 10.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, config_name, config_path, output_dir, sections, pages, started_at, finished_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.ConfigName, &r.ConfigPath, &r.OutputDir,
			&r.Sections, &r.Pages, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// PagesForRun returns the page records for one run, in insertion order.
func (s *Store) PagesForRun(ctx context.Context, runID int64) ([]PageRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, slug, title, url, path FROM pages WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying pages: %w", err)
	}
	defer rows.Close()

	var pages []PageRecord
	for rows.Next() {
		var p PageRecord
		if err := rows.Scan(&p.Category, &p.Slug, &p.Title, &p.URL, &p.Path); err != nil {
			return nil, fmt.Errorf("scanning page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}
