// Package apperr defines the business error taxonomy surfaced by the
// rental and payment usecases. Handlers map these to HTTP statuses;
// everything else wraps with %w and matches with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

// Referenced entity absent (client errors, not-found class)
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrRentalNotFound   = errors.New("rental not found")
	ErrSessionNotFound  = errors.New("payment session not found")
)

// Business-rule violations (client errors, distinct from not-found)
var (
	ErrActiveRentalExists = errors.New("customer already has an active rental")
	ErrOutOfStock         = errors.New("vehicle is out of stock")
	ErrInvalidDateRange   = errors.New("return date cannot be before rental date")
	ErrNoActiveRental     = errors.New("no active rental found for customer")
	ErrPaymentExpired     = errors.New("payment session has expired")
)

// ErrGateway marks external payment provider failures. Use Gateway to
// wrap the provider error and errors.Is(err, ErrGateway) to detect it.
var ErrGateway = errors.New("payment gateway error")

// Gateway wraps a provider failure so callers can both match the class
// and unwrap the cause.
func Gateway(err error) error {
	return fmt.Errorf("%w: %w", ErrGateway, err)
}

// IsNotFound reports whether err is any of the not-found sentinels
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrVehicleNotFound) ||
		errors.Is(err, ErrRentalNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}

// IsConflict reports whether err is a business-rule violation
func IsConflict(err error) bool {
	return errors.Is(err, ErrActiveRentalExists) ||
		errors.Is(err, ErrOutOfStock) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrNoActiveRental) ||
		errors.Is(err, ErrPaymentExpired)
}
