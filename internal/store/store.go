// ============================================================================
// roteiro - Itinerary language toolkit
// ============================================================================
//
// Package:     store
// Description: SQLite run history for interpreted itineraries
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/roteiro/foundation/core/error"
	mdwlog "github.com/msto63/roteiro/foundation/core/log"
	"github.com/msto63/roteiro/foundation/roteiro/evaluator"
	"github.com/msto63/roteiro/pkg/core/version"
)

// Run is one recorded interpretation
type Run struct {
	ID         string               `json:"id"`
	SourcePath string               `json:"source_path"`
	SourceHash string               `json:"source_hash"`
	CreatedAt  time.Time            `json:"created_at"`
	Destino    string               `json:"destino"`
	Budget     int64                `json:"budget"`
	TotalCusto int64                `json:"total_custo"`
	Trip       *evaluator.TripState `json:"trip"`
}

// OverBudget reports whether the recorded cost exceeds the budget
func (r *Run) OverBudget() bool {
	return r.TotalCusto > r.Budget
}

// Filter narrows List results
type Filter struct {
	SourcePath string
	Destino    string
	Since      time.Time
	Limit      int
	Offset     int
}

// Config holds store settings
type Config struct {
	Path   string
	Logger *mdwlog.Logger
}

// DefaultConfig returns the default store configuration
func DefaultConfig() Config {
	return Config{
		Path: filepath.Join(os.Getenv("HOME"), ".local/share/roteiro/history.db"),
	}
}

// Store persists runs in SQLite
type Store struct {
	db     *sql.DB
	logger *mdwlog.Logger
	mu     sync.RWMutex
	now    func() time.Time
}

// Open opens or creates the history database at cfg.Path
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultConfig().Path
	}
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.GetDefault()
	}

	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, storageError(err, "failed to create database directory", "store.Open")
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, storageError(err, "failed to open database", "store.Open")
	}
	// sqlite3 in-memory databases are per connection
	db.SetMaxOpenConns(1)

	s := &Store{
		db:     db,
		logger: cfg.Logger.WithFields(mdwlog.Fields{"component": "roteiro-store", "path": cfg.Path}),
		now:    time.Now,
	}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	s.logger.Debug("Run history opened")
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			source_path TEXT NOT NULL,
			source_hash TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			destino TEXT,
			budget INTEGER NOT NULL,
			total_custo INTEGER NOT NULL,
			trip TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
		CREATE INDEX IF NOT EXISTS idx_runs_source_path ON runs(source_path);
		CREATE INDEX IF NOT EXISTS idx_runs_destino ON runs(destino);

		CREATE TABLE IF NOT EXISTS schema_info (
			version INTEGER NOT NULL
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return storageError(err, "failed to create schema", "store.initSchema")
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM schema_info`).Scan(&count); err != nil {
		return storageError(err, "failed to read schema version", "store.initSchema")
	}
	if count == 0 {
		if _, err := s.db.Exec(`INSERT INTO schema_info (version) VALUES (?)`, version.SchemaVersion); err != nil {
			return storageError(err, "failed to record schema version", "store.initSchema")
		}
	}
	return nil
}

// Save records a run of source at sourcePath. ID and CreatedAt are
// assigned when empty.
func (s *Store) Save(ctx context.Context, sourcePath, sourceHash string, trip *evaluator.TripState) (*Run, error) {
	if trip == nil {
		return nil, mdwerror.New("trip state is nil").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("store.Save")
	}

	run := &Run{
		ID:         uuid.New().String(),
		SourcePath: sourcePath,
		SourceHash: sourceHash,
		CreatedAt:  s.now().UTC(),
		Budget:     trip.Budget,
		TotalCusto: trip.TotalCusto,
		Trip:       trip.Clone(),
	}
	if trip.Destino != nil {
		run.Destino = *trip.Destino
	}

	tripJSON, err := json.Marshal(run.Trip)
	if err != nil {
		return nil, storageError(err, "failed to encode trip state", "store.Save")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source_path, source_hash, created_at, destino, budget, total_custo, trip)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.SourcePath, run.SourceHash, run.CreatedAt, run.Destino, run.Budget, run.TotalCusto, string(tripJSON))
	if err != nil {
		return nil, storageError(err, "failed to insert run", "store.Save")
	}

	s.logger.Debug("Run saved", mdwlog.Fields{"id": run.ID, "source": sourcePath})
	return run, nil
}

// Get returns the run with the given id. An unknown id yields NOT_FOUND.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_path, source_hash, created_at, destino, budget, total_custo, trip
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mdwerror.Newf("run %s not found", id).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("store.Get").
			WithDetail("id", id)
	}
	if err != nil {
		return nil, storageError(err, "failed to load run", "store.Get")
	}
	return run, nil
}

// List returns runs matching filter, newest first
func (s *Store) List(ctx context.Context, filter Filter) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, source_path, source_hash, created_at, destino, budget, total_custo, trip FROM runs WHERE 1=1`
	var args []interface{}

	if filter.SourcePath != "" {
		query += " AND source_path = ?"
		args = append(args, filter.SourcePath)
	}
	if filter.Destino != "" {
		query += " AND destino = ?"
		args = append(args, filter.Destino)
	}
	if !filter.Since.IsZero() {
		query += " AND created_at >= ?"
		args = append(args, filter.Since.UTC())
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(err, "failed to query runs", "store.List")
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, storageError(err, "failed to scan run", "store.List")
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "failed to iterate runs", "store.List")
	}
	return runs, nil
}

// Delete removes the run with the given id
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return storageError(err, "failed to delete run", "store.Delete")
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return mdwerror.Newf("run %s not found", id).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("store.Delete").
			WithDetail("id", id)
	}
	return nil
}

// Prune removes runs older than olderThan and returns how many were removed
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().UTC().Add(-olderThan)
	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, storageError(err, "failed to prune runs", "store.Prune")
	}
	deleted, _ := result.RowsAffected()

	if deleted > 0 {
		s.logger.Info("Pruned run history", mdwlog.Fields{"deleted": deleted, "cutoff": cutoff})
	}
	return deleted, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner) (*Run, error) {
	var (
		run      Run
		destino  sql.NullString
		tripJSON string
	)
	if err := row.Scan(&run.ID, &run.SourcePath, &run.SourceHash, &run.CreatedAt,
		&destino, &run.Budget, &run.TotalCusto, &tripJSON); err != nil {
		return nil, err
	}
	if destino.Valid {
		run.Destino = destino.String
	}

	trip := evaluator.NewTripState()
	if err := json.Unmarshal([]byte(tripJSON), trip); err != nil {
		return nil, fmt.Errorf("failed to decode trip state: %w", err)
	}
	run.Trip = trip
	return &run, nil
}

func storageError(err error, message, operation string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeStorageError).
		WithOperation(operation)
}
