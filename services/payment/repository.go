package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gorent/gorent/internal/pkg/models"
)

// PaymentRepo defines payment persistence operations
type PaymentRepo interface {
	// Create inserts a new payment record
	Create(ctx context.Context, payment *models.Payment) error

	// GetBySessionID returns the payment for a gateway session or
	// apperr.ErrSessionNotFound
	GetBySessionID(ctx context.Context, sessionID string) (*models.Payment, error)

	// MarkPaid transitions the session's payment from pending to paid.
	// Returns false when the payment was not pending (already terminal),
	// which callers treat per their idempotency rules.
	MarkPaid(ctx context.Context, sessionID string) (bool, error)

	// MarkExpired transitions one payment from pending to expired.
	// Returns false when the payment was not pending.
	MarkExpired(ctx context.Context, id uuid.UUID) (bool, error)

	// ListByRental returns all payments for a rental, any status
	ListByRental(ctx context.Context, rentalID uuid.UUID) ([]models.Payment, error)

	// ListUnpaid returns all payments whose status is not paid
	ListUnpaid(ctx context.Context) ([]models.Payment, error)

	// ListStalePending returns pending payments created before the
	// cutoff instant
	ListStalePending(ctx context.Context, cutoff time.Time) ([]models.Payment, error)

	// HasFineForDay reports whether a fine payment already exists for
	// the rental on the given calendar day
	HasFineForDay(ctx context.Context, rentalID uuid.UUID, day time.Time) (bool, error)
}
