package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Closed set of error kinds surfaced by the data-access layer. Handlers
// branch on these with errors.Is instead of inspecting driver codes inline.
var (
	// ErrConflict signals a unique-constraint violation, e.g. inserting a
	// subscriber email that already exists.
	ErrConflict = errors.New("conflict: row violates a unique constraint")

	// ErrNotFound signals that the target row does not exist.
	ErrNotFound = errors.New("not found")
)

// uniqueViolation is the Postgres error code for unique_violation
const uniqueViolation = "23505"

// TranslateError maps driver-level errors onto the closed error kinds.
// Errors outside the set pass through unchanged (the "unknown" kind).
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return ErrConflict
	}
	return err
}
