package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicateEmail surfaces the users.email uniqueness constraint. The
	// pre-insert existence check races with concurrent registrations, so the
	// constraint is the correctness backstop.
	ErrDuplicateEmail = errors.New("duplicate email")

	// ErrNotFound covers foreign-key violations on writes that reference a
	// missing row, e.g. rating a store that does not exist.
	ErrNotFound = errors.New("referenced record not found")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
