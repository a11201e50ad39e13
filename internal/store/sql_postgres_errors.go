package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification says whether a failed database operation is worth
// retrying. Repositories log it next to the error so operators can tell a
// flaky connection from a constraint bug.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors and for everything
	// deterministic: the unique index on usernames, the reservations foreign
	// key, and NOT NULL checks fail the same way on every attempt.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures that may clear on a second attempt.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Anything that does not unwrap to
// a *pgconn.PgError is NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
// Retryable: connection exceptions (class 08), transaction rollbacks such as
// serialization failures and deadlocks (class 40), and 57P03 while the server
// is starting up. Every other code, constraint violations included, is
// NonRetryable.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if pgerrcode.IsConnectionException(pgErr.Code) ||
		pgerrcode.IsTransactionRollback(pgErr.Code) ||
		pgErr.Code == pgerrcode.CannotConnectNow {
		return Retryable
	}

	return NonRetryable
}
