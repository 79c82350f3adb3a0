package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/gorent/gorent/internal/pkg/models"
)

// PaymentUC defines the payment reconciliation operations
type PaymentUC interface {
	// CreatePayment computes the amount owed for a rental, opens a
	// checkout session with the gateway and persists a pending payment.
	// Nothing is persisted when the gateway call fails. Returns the
	// session URL for the customer to complete the payment.
	CreatePayment(ctx context.Context, req models.CreatePaymentRequest) (string, error)

	// MarkPaymentSuccessful records a successful checkout. Repeated
	// success signals for an already paid session are a no-op; success
	// signals for an expired session are rejected.
	MarkPaymentSuccessful(ctx context.Context, sessionID string) error

	// ListPayments returns every payment for a rental, any status
	ListPayments(ctx context.Context, rentalID uuid.UUID) ([]models.Payment, error)

	// ListActivePayments returns every payment not yet paid
	ListActivePayments(ctx context.Context) ([]models.Payment, error)

	// ExpirePendingPayments transitions stale pending payments to
	// expired. Sweep entry point; individual failures are logged and
	// skipped.
	ExpirePendingPayments(ctx context.Context) error

	// FineOverdueRentals creates fine payments for active rentals past
	// their planned return date, at most one fine per rental per day.
	// Sweep entry point; individual failures are logged and skipped.
	FineOverdueRentals(ctx context.Context) error
}
