package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carbux/fuel-receipts/gen/ent"
)

var (
	// ErrNotFound is returned when a row does not exist in the caller's scope.
	ErrNotFound = errors.New("not found")
	// ErrStaleStatus is returned when an optimistic status transition matched
	// zero rows: another worker already moved the job.
	ErrStaleStatus = errors.New("job status changed concurrently")
	// ErrIdentityConflict is returned when an insert lost a race against a
	// concurrent identical create. Callers re-fetch by identity and proceed.
	ErrIdentityConflict = errors.New("identity already exists")
)

// isUniqueViolation recognizes unique-constraint failures from both the
// Postgres driver (SQLSTATE 23505) and Ent's constraint wrapping (sqlite).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return ent.IsConstraintError(err)
}
