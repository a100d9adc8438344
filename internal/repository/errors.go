package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrRestaurantNotFound is returned when no restaurant row matches.
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrMenuItemNotFound is returned when no menu item row matches.
	ErrMenuItemNotFound = errors.New("menu item not found")

	// ErrCustomerNotFound is returned when no customer row matches.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInvalidReference is returned when an insert or update points at a
	// dimension row that does not exist. The database enforces the foreign
	// keys; this just names the failure.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// foreign_key_violation in the PostgreSQL error code listing.
const fkViolationCode = "23503"

func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
		return ErrInvalidReference
	}
	return err
}
