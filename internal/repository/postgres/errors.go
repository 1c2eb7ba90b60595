package postgres

import (
	"errors"

	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// translate maps driver errors into the API taxonomy. resource names the
// record kind reported for empty results; everything else is a storage
// failure, the only retryable class.
func translate(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NotFound(resource, resourceMessage(resource))
	}
	return apperror.Storage(err)
}

func resourceMessage(resource string) string {
	switch resource {
	case "job":
		return "Job not found"
	case "user":
		return "User not found"
	case "application":
		return "Application not found"
	}
	return "Resource not found"
}

// uniqueViolation returns the violated constraint name when err is a Postgres
// unique-constraint error. This is how the apply race and duplicate signups
// surface: the insert itself is the atomic uniqueness check.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
