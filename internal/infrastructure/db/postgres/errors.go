package postgres

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsPgUniqueViolation reports whether err is a Postgres unique constraint
// violation. The users.email unique index is the arbiter for concurrent
// registrations: the losing writer gets this error.
func IsPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
