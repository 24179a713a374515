package catalog

import (
	"database/sql"
	"fmt"

	"github.com/vmunix/reelshelf/internal/migrations"
	_ "modernc.org/sqlite"
)

// querier abstracts *sql.DB and *sql.Tx for shared query logic.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// OpenMemory opens a migrated in-memory SQLite database.
// The pool is pinned to one connection: every connection to ":memory:"
// would otherwise see its own empty database.
func OpenMemory() (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := migrations.Apply(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Store provides access to catalog entries.
type Store struct {
	db     *sql.DB
	strict bool
}

// NewStore creates a new entry store. When strict is set, AddEntry enforces
// the rating and episode count conventions.
func NewStore(db *sql.DB, strict bool) *Store {
	return &Store{db: db, strict: strict}
}

// Begin starts a transaction.
func (s *Store) Begin() (*Tx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Tx{tx: tx, strict: s.strict}, nil
}

// Tx wraps a database transaction with the same methods as Store.
type Tx struct {
	tx     *sql.Tx
	strict bool
}

// Commit commits the transaction.
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction.
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
