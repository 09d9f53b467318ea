// Package history persists rendered run envelopes so earlier results can be
// listed, shown again and pruned.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/internal/report"
)

// Entry is one stored run
type Entry struct {
	RunID     string          `json:"run_id" yaml:"run_id"`
	Command   string          `json:"command" yaml:"command"`
	Schema    string          `json:"schema" yaml:"schema"`
	CreatedAt time.Time       `json:"created_at" yaml:"created_at"`
	Payload   json.RawMessage `json:"-" yaml:"-"`
}

// Envelope rebuilds the stored envelope with the payload decoded into
// generic values
func (e *Entry) Envelope() (report.Envelope, error) {
	var data interface{}
	if len(e.Payload) > 0 {
		if err := json.Unmarshal(e.Payload, &data); err != nil {
			return report.Envelope{}, mdwerror.Wrap(err, "corrupt history payload").
				WithCode(mdwerror.CodeDatabaseError).
				WithOperation("history.Entry.Envelope").
				WithDetail("run_id", e.RunID)
		}
	}
	return report.Envelope{
		RunID:     e.RunID,
		Command:   e.Command,
		Schema:    e.Schema,
		CreatedAt: e.CreatedAt,
		Data:      data,
	}, nil
}

// Store defines run persistence
type Store interface {
	Save(ctx context.Context, env report.Envelope) error
	List(ctx context.Context, limit int) ([]*Entry, error)
	Get(ctx context.Context, runID string) (*Entry, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// Config holds configuration for the SQLite store
type Config struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{Path: "./data/uvroot.db"}
}

// SQLiteStore implements Store using SQLite in WAL mode
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates the database file and its directory if needed
func Open(cfg Config) (*SQLiteStore, error) {
	if cfg.Path == "" {
		cfg = DefaultConfig()
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, dbError(err, "failed to create directory", "history.Open")
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, dbError(err, "failed to open database", "history.Open")
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize schema", "history.Open")
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		command TEXT NOT NULL,
		schema_version TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		payload TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_command ON runs(command);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save stores env. The data is kept as JSON.
func (s *SQLiteStore) Save(ctx context.Context, env report.Envelope) error {
	payload, err := json.Marshal(env.Data)
	if err != nil {
		return mdwerror.Wrap(err, "failed to encode run data").
			WithCode(mdwerror.CodeInternal).
			WithOperation("history.Save").
			WithDetail("run_id", env.RunID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, command, schema_version, created_at, payload) VALUES (?, ?, ?, ?, ?)`,
		env.RunID, env.Command, env.Schema, env.CreatedAt.UTC().UnixNano(), string(payload))
	if err != nil {
		return dbError(err, "failed to save run", "history.Save")
	}
	return nil
}

// List returns the newest runs first. limit <= 0 returns all.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT run_id, command, schema_version, created_at, payload FROM runs ORDER BY created_at DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "failed to query runs", "history.List")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, dbError(err, "failed to scan run", "history.List")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to read runs", "history.List")
	}
	return entries, nil
}

// Get returns one run or a NOT_FOUND error
func (s *SQLiteStore) Get(ctx context.Context, runID string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT run_id, command, schema_version, created_at, payload FROM runs WHERE run_id = ?`, runID)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(runID)
	}
	if err != nil {
		return nil, dbError(err, "failed to load run", "history.Get")
	}
	return e, nil
}

// Prune removes runs created more than olderThan ago
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan).UTC().UnixNano()
	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, dbError(err, "failed to prune runs", "history.Prune")
	}
	n, _ := result.RowsAffected()
	return n, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(sc scanner) (*Entry, error) {
	var (
		e       Entry
		created int64
		payload string
	)
	if err := sc.Scan(&e.RunID, &e.Command, &e.Schema, &created, &payload); err != nil {
		return nil, err
	}
	e.CreatedAt = time.Unix(0, created).UTC()
	e.Payload = json.RawMessage(payload)
	return &e, nil
}

func dbError(err error, msg, op string) error {
	return mdwerror.Wrap(err, msg).
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation(op)
}

func notFound(runID string) error {
	return mdwerror.New("run not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("history.Get").
		WithDetail("run_id", runID)
}

// MemoryStore is an in-memory Store for tests and disabled persistence
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*Entry)}
}

// Save stores env
func (s *MemoryStore) Save(ctx context.Context, env report.Envelope) error {
	payload, err := json.Marshal(env.Data)
	if err != nil {
		return mdwerror.Wrap(err, "failed to encode run data").
			WithCode(mdwerror.CodeInternal).
			WithOperation("history.Save")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[env.RunID] = &Entry{
		RunID:     env.RunID,
		Command:   env.Command,
		Schema:    env.Schema,
		CreatedAt: env.CreatedAt.UTC(),
		Payload:   payload,
	}
	return nil
}

// List returns the newest runs first
func (s *MemoryStore) List(ctx context.Context, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*Entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Get returns one run or a NOT_FOUND error
func (s *MemoryStore) Get(ctx context.Context, runID string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[runID]
	if !ok {
		return nil, notFound(runID)
	}
	return e, nil
}

// Prune removes runs created more than olderThan ago
func (s *MemoryStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	var n int64
	for id, e := range s.entries {
		if e.CreatedAt.Before(cutoff) {
			delete(s.entries, id)
			n++
		}
	}
	return n, nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}
