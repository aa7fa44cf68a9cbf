package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a lookup matches no row
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert or update hits a unique constraint
	ErrDuplicate = errors.New("duplicate record")
	// ErrDuplicateBookingCode is returned when a generated booking code already exists
	ErrDuplicateBookingCode = errors.New("duplicate booking code")
	// ErrReferenced is returned when a delete is blocked by a foreign key
	ErrReferenced = errors.New("record is still referenced")
	// ErrBookingNotConfirmed is returned when a cancellation finds the booking already cancelled
	ErrBookingNotConfirmed = errors.New("booking is not confirmed")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Store owns every SQL statement the application runs
type Store struct {
	db *sql.DB
}

// NewStore wraps an open connection pool
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping checks that the database still answers
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// inTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back on every other exit path, panics included.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func pgCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation
}

// noRows maps sql.ErrNoRows to ErrNotFound and wraps anything else
func noRows(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

func expectAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for %s: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
