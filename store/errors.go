package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity identifier does not resolve,
	// so HTTP handlers can respond with 404.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken is returned by Register on a username collision.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalid is returned for malformed input, e.g. a negative quantity.
	ErrInvalid = errors.New("invalid value")

	// ErrInvalidTransition is returned by SetStatus for an illegal
	// order-status change.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// InsufficientStockError reports the first line item of a reservation batch
// whose requested quantity exceeds availability. The whole batch is rolled
// back when it occurs.
type InsufficientStockError struct {
	FoodID string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for food %s", e.FoodID)
}
