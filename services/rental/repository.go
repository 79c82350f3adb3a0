package rental

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gorent/gorent/internal/pkg/models"
)

// RentalRepo defines rental persistence operations. Reserve and close
// are transactional: the inventory movement and the rental row change
// commit together or not at all.
type RentalRepo interface {
	// CreateWithReservation decrements the vehicle's available units and
	// inserts the rental in one transaction. Returns
	// apperr.ErrOutOfStock when no unit is available and
	// apperr.ErrActiveRentalExists when the customer already holds an
	// active rental (both authoritative under concurrency).
	CreateWithReservation(ctx context.Context, rental *models.Rental) (*models.Rental, error)

	// CloseWithRelease sets the actual return date on the customer's
	// active rental and increments the vehicle's available units in one
	// transaction. Returns apperr.ErrNoActiveRental when the customer
	// has no open rental.
	CloseWithRelease(ctx context.Context, customerID uuid.UUID, actualReturnDate time.Time) (*models.Rental, error)

	// GetByID returns one rental or apperr.ErrRentalNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error)

	// HasActiveRental reports whether the customer holds an open rental
	HasActiveRental(ctx context.Context, customerID uuid.UUID) (bool, error)

	// List returns rentals matching the filter, newest first
	List(ctx context.Context, filter models.RentalFilter) ([]models.Rental, error)

	// FindOverdueActive returns active rentals whose planned return date
	// is strictly before the given day
	FindOverdueActive(ctx context.Context, today time.Time) ([]models.Rental, error)
}

// VehicleRepo defines read access to the vehicle catalog. Stock
// mutations happen inside RentalRepo transactions; this interface only
// reads, plus cache invalidation after a stock movement.
type VehicleRepo interface {
	// GetByID returns one vehicle or apperr.ErrVehicleNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)

	// List returns a page of non-deleted vehicles
	List(ctx context.Context, page, limit int) ([]models.Vehicle, error)

	// Invalidate drops the cached entry for a vehicle
	Invalidate(ctx context.Context, id uuid.UUID)
}

// CustomerRepo is the customer directory contract
type CustomerRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
