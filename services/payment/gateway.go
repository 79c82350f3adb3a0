package payment

import (
	"context"

	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// PaymentGW is the external checkout provider contract
type PaymentGW interface {
	// CreateCheckoutSession opens a session to collect the given amount.
	// Failures are returned wrapped as apperr.ErrGateway.
	CreateCheckoutSession(ctx context.Context, amount decimal.Decimal) (*models.CheckoutSession, error)
}

// NotifierGW publishes payment lifecycle events to the operator channel.
// Best effort; the usecase logs failures and never propagates them.
type NotifierGW interface {
	NotifyPaymentCreated(ctx context.Context, payment *models.Payment) error
	NotifyPaymentPaid(ctx context.Context, payment *models.Payment) error
	NotifyPaymentExpired(ctx context.Context, payment *models.Payment) error
	NotifyFineApplied(ctx context.Context, payment *models.Payment, overdueDays int64) error
}
