package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the payment state. Pending is the only non-terminal
// state; paid and expired are terminal.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusExpired PaymentStatus = "EXPIRED"
)

// PaymentKind distinguishes ordinary rental payments from overdue fines
type PaymentKind string

const (
	PaymentKindRental PaymentKind = "PAYMENT"
	PaymentKindFine   PaymentKind = "FINE"
)

// MaxSessionURLLength is the storage limit for gateway session URLs.
// Overlong URLs are truncated, not rejected.
const MaxSessionURLLength = 255

// Payment represents one attempt to collect money for a rental: either a
// checkout session requested by the customer or a fine created by the
// overdue sweep. Fines carry a synthetic session id since no gateway
// session exists for them.
type Payment struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	RentalID   uuid.UUID       `db:"rental_id" json:"rental_id"`
	Kind       PaymentKind     `db:"kind" json:"kind"`
	Status     PaymentStatus   `db:"status" json:"status"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	SessionID  string          `db:"session_id" json:"session_id"`
	SessionURL string          `db:"session_url" json:"session_url"`
	FineDate   *time.Time      `db:"fine_date" json:"fine_date,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	IsDeleted  bool            `db:"is_deleted" json:"-"`
}

// CheckoutSession is the gateway's handle for one collection attempt
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreatePaymentRequest is the input for requesting a checkout session
type CreatePaymentRequest struct {
	RentalID uuid.UUID   `json:"rental_id"`
	Kind     PaymentKind `json:"kind"`
}
