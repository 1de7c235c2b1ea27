// Package runstore keeps a history of evaluation runs in SQLite.
package runstore

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get for an unknown run ID.
var ErrNotFound = errors.New("runstore: run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	created_at  TEXT NOT NULL,
	map_text    TEXT NOT NULL,
	slip        REAL NOT NULL,
	gamma       REAL NOT NULL,
	method      TEXT NOT NULL,
	fitness     REAL NOT NULL,
	converged   INTEGER NOT NULL,
	iterations  INTEGER NOT NULL,
	policy_text TEXT NOT NULL,
	value_blob  BLOB
);

CREATE INDEX IF NOT EXISTS runs_created_at ON runs (created_at);
`

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Record is one stored run.
type Record struct {
	ID         string
	CreatedAt  time.Time
	Map        string // board rows joined by "/"
	Slip       float64
	Gamma      float64
	Method     string
	Fitness    float64
	Converged  bool
	Iterations int
	Policy     string // glyph rows joined by "/"
	Values     []float64
}

// Store manages run records in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("runstore: open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("runstore: pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("runstore: migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts rec under a fresh ID and the current UTC time, and returns
// the stored copy.
func (s *Store) Save(ctx context.Context, rec Record) (Record, error) {
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, created_at, map_text, slip, gamma, method, fitness, converged, iterations, policy_text, value_blob)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt.Format(timeLayout), rec.Map, rec.Slip, rec.Gamma, rec.Method,
		rec.Fitness, rec.Converged, rec.Iterations, rec.Policy, encodeValues(rec.Values),
	)
	if err != nil {
		return Record{}, fmt.Errorf("runstore: insert run: %w", err)
	}

	return rec, nil
}

const selectRun = `SELECT run_id, created_at, map_text, slip, gamma, method, fitness, converged, iterations, policy_text, value_blob FROM runs`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var rec Record
	var created string
	var blob []byte
	err := row.Scan(&rec.ID, &created, &rec.Map, &rec.Slip, &rec.Gamma, &rec.Method,
		&rec.Fitness, &rec.Converged, &rec.Iterations, &rec.Policy, &blob)
	if err != nil {
		return Record{}, err
	}
	rec.CreatedAt, err = time.Parse(timeLayout, created)
	if err != nil {
		return Record{}, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	rec.Values = decodeValues(blob)

	return rec, nil
}

// Get retrieves a run by ID.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	rec, err := scanRecord(s.db.QueryRowContext(ctx, selectRun+` WHERE run_id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("runstore: get run %s: %w", id, err)
	}

	return rec, nil
}

// List returns up to limit runs, newest first. limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, selectRun+` ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("runstore: list runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("runstore: scan row: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func encodeValues(v []float64) []byte {
	if v == nil {
		return nil
	}
	buf := make([]byte, len(v)*8)
	for i, f := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}

	return buf
}

func decodeValues(b []byte) []float64 {
	if len(b) == 0 {
		return nil
	}
	v := make([]float64, len(b)/8)
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}

	return v
}
