package rental

import (
	"context"

	"github.com/gorent/gorent/internal/pkg/models"
)

// NotifierGW publishes rental lifecycle events to the operator channel.
// Delivery is best effort: the usecase logs failures and never lets
// them affect the operation outcome.
type NotifierGW interface {
	NotifyRentalCreated(ctx context.Context, rental *models.Rental) error
	NotifyRentalReturned(ctx context.Context, rental *models.Rental) error
}
