package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event kinds published to the operator notification topic
const (
	EventRentalCreated  = "rental.created"
	EventRentalReturned = "rental.returned"
	EventPaymentCreated = "payment.created"
	EventPaymentPaid    = "payment.paid"
	EventPaymentExpired = "payment.expired"
	EventFineApplied    = "payment.fine_applied"
)

// RentalEvent is published on rental lifecycle changes
type RentalEvent struct {
	RentalID   uuid.UUID `json:"rental_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	VehicleID  uuid.UUID `json:"vehicle_id"`
	RentalDate time.Time `json:"rental_date"`
	ReturnDate time.Time `json:"return_date"`
	Timestamp  time.Time `json:"timestamp"`
}

// PaymentEvent is published on payment lifecycle changes. For fine events
// Amount carries the persisted fine amount, so an operator preview can
// never disagree with the ledger.
type PaymentEvent struct {
	PaymentID   uuid.UUID       `json:"payment_id"`
	RentalID    uuid.UUID       `json:"rental_id"`
	Kind        PaymentKind     `json:"kind"`
	Status      PaymentStatus   `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	OverdueDays int64           `json:"overdue_days,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}
