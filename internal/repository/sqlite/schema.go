package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema contains the SQL statements that set up the tables. Every
// statement is CREATE IF NOT EXISTS, so running it on each start is safe.
const schema = `
CREATE TABLE IF NOT EXISTS clients (
    id INTEGER PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL DEFAULT '',
    birth_date TEXT NOT NULL DEFAULT '',
    national_id TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS services (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    price REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS staff (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS visits (
    id INTEGER PRIMARY KEY,
    date TEXT NOT NULL,
    client_id INTEGER NOT NULL,
    service TEXT NOT NULL,
    amount REAL NOT NULL,
    payment_method TEXT NOT NULL,
    staff TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS appointments (
    id INTEGER PRIMARY KEY,
    date TEXT NOT NULL,
    time TEXT NOT NULL,
    client_name TEXT NOT NULL,
    service TEXT NOT NULL DEFAULT '',
    staff TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS ledger_entries (
    id INTEGER PRIMARY KEY,
    date TEXT NOT NULL,
    client_name TEXT NOT NULL,
    amount REAL NOT NULL,
    payment_method TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_visits_client_id ON visits(client_id);
CREATE INDEX IF NOT EXISTS idx_visits_date ON visits(date);
CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments(date);
CREATE INDEX IF NOT EXISTS idx_ledger_entries_date ON ledger_entries(date);
`

// EnsureSchema creates the required tables if they are absent. A failure
// here is fatal to startup; there is no point serving without a store.
func (s *Store) EnsureSchema(ctx context.Context) error {
	err := s.withConn(ctx, "ensure_schema", func(conn *sqlx.Conn) error {
		_, err := conn.ExecContext(ctx, schema)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
