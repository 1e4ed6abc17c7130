// Package sqlite implements the repository interfaces over an embedded
// SQLite database file.
package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver, no CGO

	"github.com/fredyfurtado/salon-manager/pkg/metrics"
)

// Store is the shared record store. Every statement runs on a dedicated
// connection acquired for the scope of that one call and released
// immediately after, so no handle outlives an operation and no
// multi-statement transaction can form.
type Store struct {
	db      *sqlx.DB
	metrics *metrics.Metrics
}

// Open opens (creating if needed) the database file at path. The metrics
// receiver may be nil.
func Open(path string, m *metrics.Metrics) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Store{db: db, metrics: m}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// withConn runs fn on a connection scoped to this call.
func (s *Store) withConn(ctx context.Context, op string, fn func(*sqlx.Conn) error) error {
	start := time.Now()

	conn, err := s.db.Connx(ctx)
	if err != nil {
		s.observe(op, start, err)
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	err = fn(conn)
	s.observe(op, start, err)
	return err
}

// Select executes a read statement and scans all rows into dest.
func (s *Store) Select(ctx context.Context, op string, dest interface{}, query string, args ...interface{}) error {
	return s.withConn(ctx, op, func(conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, dest, query, args...)
	})
}

// Get executes a read statement expected to return a single row. The
// caller is responsible for translating sql.ErrNoRows.
func (s *Store) Get(ctx context.Context, op string, dest interface{}, query string, args ...interface{}) error {
	return s.withConn(ctx, op, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, dest, query, args...)
	})
}

// Insert executes a single write statement and returns the store-assigned
// row id. Each insert is autonomous; there is nothing to roll back on
// failure.
func (s *Store) Insert(ctx context.Context, op string, query string, args ...interface{}) (int64, error) {
	var id int64
	err := s.withConn(ctx, op, func(conn *sqlx.Conn) error {
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err == nil && s.metrics != nil {
		s.metrics.RecordsCreated.WithLabelValues(entityOf(op)).Inc()
	}
	return id, err
}

// entityOf strips the verb suffix from an operation name, "visits.insert"
// becoming "visits".
func entityOf(op string) string {
	if i := strings.IndexByte(op, '.'); i >= 0 {
		return op[:i]
	}
	return op
}

func (s *Store) observe(op string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	s.metrics.StoreOperations.WithLabelValues(op, status).Inc()
	s.metrics.StoreLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
