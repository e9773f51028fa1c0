// Package indexstore persists the flattened index rows produced by
// internal/indexer into a SQLite database, driven through database/sql and
// the mattn/go-sqlite3 cgo driver -- never a hand-rolled storage engine, per
// SPEC_FULL.md's "external collaborators" boundary.
package indexstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/codeninja55/go-radx/internal/config"
)

// Store wraps the *sql.DB backing the three index tables and the field
// configuration that shaped their columns.
type Store struct {
	db     *sql.DB
	fields config.FieldConfig
}

// Open opens (creating if necessary) the SQLite database at dbPath and
// ensures the studies/series/instances tables exist for the given field
// configuration.
func Open(ctx context.Context, dbPath string, fields config.FieldConfig) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open index store %s: %w", dbPath, err)
	}

	// database/sql pools connections; SQLite only tolerates one writer at a
	// time, so the pool is capped to serialize access through this *Store
	// rather than trusting SQLite's own locking to queue writers fairly.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, fields: fields}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema(ctx context.Context) error {
	tables := map[string][]string{
		TableStudies:   s.fields.Study,
		TableSeries:    s.fields.Series,
		TableInstances: s.fields.Instance,
	}

	for table, cols := range tables {
		stmt, err := createTableSQL(table, cols)
		if err != nil {
			return err
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}

	return nil
}

// Row is one flattened index record awaiting a write to one of the three
// tables.
type Row struct {
	Table string
	Key   string

	// ParentValues supplies the implicit ancestry columns (StudyInstanceUID
	// for a series row; StudyInstanceUID and SeriesInstanceUID for an
	// instance row) keyed by column name. Ignored for the studies table.
	ParentValues map[string]string

	// Values holds one resolved attribute per configured field name. A nil
	// entry (or a missing key) means the attribute was absent from the
	// dataset and is written as SQL NULL, not an empty string.
	Values   map[string]*string
	FilePath string
}

// Upsert inserts or replaces row r, keyed on its table's key column
// (StudyInstanceUID/SeriesInstanceUID/SOPInstanceUID). A second upsert of
// the same key overwrites every column with the new row's values.
func (s *Store) Upsert(ctx context.Context, r Row) error {
	return s.upsertTx(ctx, s.db, r)
}

// execer is satisfied by both *sql.DB and *sql.Tx, letting upsertTx run
// either standalone or inside a caller-managed transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) upsertTx(ctx context.Context, ex execer, r Row) error {
	fields, ok := map[string][]string{
		TableStudies:   s.fields.Study,
		TableSeries:    s.fields.Series,
		TableInstances: s.fields.Instance,
	}[r.Table]
	if !ok {
		return fmt.Errorf("unknown index table %q", r.Table)
	}

	key := keyColumn[r.Table]
	stmt, err := upsertSQL(r.Table, fields)
	if err != nil {
		return err
	}

	seen := map[string]bool{key: true}
	args := make([]any, 0, len(fields)+5)
	args = append(args, r.Key)
	for _, p := range parentColumns[r.Table] {
		if seen[p] {
			continue
		}
		seen[p] = true
		args = append(args, r.ParentValues[p])
	}
	for _, f := range fields {
		if seen[f] {
			continue
		}
		seen[f] = true
		if v := r.Values[f]; v != nil {
			args = append(args, *v)
		} else {
			args = append(args, nil)
		}
	}
	args = append(args, r.FilePath, time.Now().UTC().Format(time.RFC3339Nano))

	if _, err := ex.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to upsert into %s (%s=%s): %w", r.Table, key, r.Key, err)
	}

	return nil
}

// RunWriter drains rows from the channel on the calling goroutine, batching
// writes into transactions of at most batchSize rows, and returns once rows
// is closed and the final transaction has committed. This is the single
// writer goroutine of SPEC_FULL.md's concurrency model (§5): the filesystem
// walk fans in from many goroutines, but all SQLite writes happen here,
// serialized.
func (s *Store) RunWriter(ctx context.Context, rows <-chan Row, batchSize int) error {
	if batchSize <= 0 {
		batchSize = 100
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin index store transaction: %w", err)
	}
	pending := 0

	commit := func() error {
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit index store transaction: %w", err)
		}
		return nil
	}

	for r := range rows {
		if err := s.upsertTx(ctx, tx, r); err != nil {
			_ = tx.Rollback()
			return err
		}
		pending++

		if pending >= batchSize {
			if err := commit(); err != nil {
				return err
			}
			tx, err = s.db.BeginTx(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to begin index store transaction: %w", err)
			}
			pending = 0
		}
	}

	return commit()
}

// DB exposes the underlying *sql.DB for read-only query execution (C5's
// internal/query package runs SELECTs against it directly rather than
// through Store, since queries are arbitrary and table-driven).
func (s *Store) DB() *sql.DB {
	return s.db
}

// Fields returns the field configuration this store's schema was created
// from.
func (s *Store) Fields() config.FieldConfig {
	return s.fields
}
