package models

import (
	"time"

	"github.com/google/uuid"
)

// Rental represents one customer renting one vehicle. A rental is active
// while ActualReturnDate is nil and closed once it is set; there are no
// other states and closed is terminal.
type Rental struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	CustomerID       uuid.UUID  `db:"customer_id" json:"customer_id"`
	VehicleID        uuid.UUID  `db:"vehicle_id" json:"vehicle_id"`
	RentalDate       time.Time  `db:"rental_date" json:"rental_date"`
	ReturnDate       time.Time  `db:"return_date" json:"return_date"`
	ActualReturnDate *time.Time `db:"actual_return_date" json:"actual_return_date,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}

// IsActive reports whether the rental has not been returned yet
func (r *Rental) IsActive() bool {
	return r.ActualReturnDate == nil
}

// RentalFilter narrows ListRentals results. Nil fields are ignored;
// set fields are combined with AND.
type RentalFilter struct {
	CustomerID *uuid.UUID
	Active     *bool
}

// CreateRentalRequest is the input for creating a rental
type CreateRentalRequest struct {
	CustomerID uuid.UUID `json:"customer_id"`
	VehicleID  uuid.UUID `json:"vehicle_id"`
	RentalDate time.Time `json:"rental_date"`
	ReturnDate time.Time `json:"return_date"`
}

// ReturnRentalRequest is the input for returning a rental
type ReturnRentalRequest struct {
	CustomerID       uuid.UUID `json:"customer_id"`
	ActualReturnDate time.Time `json:"actual_return_date"`
}

// DaysBetween returns the number of whole calendar days from a to b.
// Both arguments are treated as dates; time-of-day is discarded.
func DaysBetween(a, b time.Time) int64 {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int64(bd.Sub(ad) / (24 * time.Hour))
}
