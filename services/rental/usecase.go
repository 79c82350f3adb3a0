package rental

import (
	"context"

	"github.com/google/uuid"
	"github.com/gorent/gorent/internal/pkg/models"
)

// RentalUC defines the rental lifecycle operations
type RentalUC interface {
	// CreateRental reserves one unit of the vehicle and opens a rental.
	// A customer may hold at most one active rental at a time.
	CreateRental(ctx context.Context, req models.CreateRentalRequest) (*models.Rental, error)

	// ReturnRental closes the customer's active rental and releases the
	// reserved unit back to the vehicle's inventory.
	ReturnRental(ctx context.Context, req models.ReturnRentalRequest) (*models.Rental, error)

	// ListRentals returns rentals matching the filter
	ListRentals(ctx context.Context, filter models.RentalFilter) ([]models.Rental, error)

	// ListVehicles returns a page of the vehicle catalog
	ListVehicles(ctx context.Context, page, limit int) ([]models.Vehicle, error)

	// GetRental returns one rental by id
	GetRental(ctx context.Context, id uuid.UUID) (*models.Rental, error)
}
