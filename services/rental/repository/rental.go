package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorent/gorent/internal/pkg/apperr"
	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
)

// uniqueViolation is the postgres error code raised by the partial
// unique index on active rentals per customer.
const uniqueViolation = "23505"

// RentalRepo persists rentals and moves vehicle inventory. Inventory
// movements and rental row changes always share one transaction.
type RentalRepo struct {
	db *sqlx.DB
}

// NewRentalRepository creates a new rental repository
func NewRentalRepository(db *sqlx.DB) *RentalRepo {
	return &RentalRepo{db: db}
}

// CreateWithReservation decrements vehicle stock and inserts the rental
// atomically. The conditional decrement serializes concurrent creates on
// the vehicle row, so the count never goes negative and the last unit is
// never double-booked.
func (r *RentalRepo) CreateWithReservation(ctx context.Context, rental *models.Rental) (*models.Rental, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE vehicles
		SET available_units = available_units - 1
		WHERE id = $1 AND available_units > 0 AND is_deleted = false`,
		rental.VehicleID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve vehicle unit: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperr.ErrOutOfStock
	}

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO rentals (id, customer_id, vehicle_id, rental_date, return_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		rental.ID,
		rental.CustomerID,
		rental.VehicleID,
		rental.RentalDate,
		rental.ReturnDate,
	).Scan(&rental.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperr.ErrActiveRentalExists
		}
		return nil, fmt.Errorf("failed to insert rental: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rental creation: %w", err)
	}

	return rental, nil
}

// CloseWithRelease sets the actual return date and releases the unit
// back to inventory atomically. The row lock on the active rental keeps
// a double return from incrementing stock twice.
func (r *RentalRepo) CloseWithRelease(ctx context.Context, customerID uuid.UUID, actualReturnDate time.Time) (*models.Rental, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rental := &models.Rental{}
	err = tx.QueryRowxContext(ctx, `
		SELECT id, customer_id, vehicle_id, rental_date, return_date, actual_return_date, created_at
		FROM rentals
		WHERE customer_id = $1 AND actual_return_date IS NULL
		FOR UPDATE`,
		customerID,
	).StructScan(rental)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNoActiveRental
		}
		return nil, fmt.Errorf("failed to load active rental: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE rentals SET actual_return_date = $1 WHERE id = $2`,
		actualReturnDate, rental.ID,
	); err != nil {
		return nil, fmt.Errorf("failed to close rental: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE vehicles SET available_units = available_units + 1 WHERE id = $1`,
		rental.VehicleID,
	); err != nil {
		return nil, fmt.Errorf("failed to release vehicle unit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rental return: %w", err)
	}

	rental.ActualReturnDate = &actualReturnDate
	return rental, nil
}

// GetByID returns one rental by id
func (r *RentalRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error) {
	rental := &models.Rental{}
	err := r.db.GetContext(ctx, rental, `
		SELECT id, customer_id, vehicle_id, rental_date, return_date, actual_return_date, created_at
		FROM rentals
		WHERE id = $1`,
		id,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrRentalNotFound
		}
		return nil, fmt.Errorf("failed to get rental: %w", err)
	}
	return rental, nil
}

// HasActiveRental reports whether the customer holds an open rental
func (r *RentalRepo) HasActiveRental(ctx context.Context, customerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM rentals
			WHERE customer_id = $1 AND actual_return_date IS NULL
		)`,
		customerID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check active rental: %w", err)
	}
	return exists, nil
}

// List returns rentals matching the filter, newest first
func (r *RentalRepo) List(ctx context.Context, filter models.RentalFilter) ([]models.Rental, error) {
	query := `
		SELECT id, customer_id, vehicle_id, rental_date, return_date, actual_return_date, created_at
		FROM rentals
		WHERE 1=1`
	args := []interface{}{}

	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		query += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if filter.Active != nil {
		if *filter.Active {
			query += " AND actual_return_date IS NULL"
		} else {
			query += " AND actual_return_date IS NOT NULL"
		}
	}
	query += " ORDER BY created_at DESC, id"

	rentals := []models.Rental{}
	if err := r.db.SelectContext(ctx, &rentals, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	return rentals, nil
}

// FindOverdueActive returns active rentals whose planned return date is
// strictly before the given day
func (r *RentalRepo) FindOverdueActive(ctx context.Context, today time.Time) ([]models.Rental, error) {
	rentals := []models.Rental{}
	err := r.db.SelectContext(ctx, &rentals, `
		SELECT id, customer_id, vehicle_id, rental_date, return_date, actual_return_date, created_at
		FROM rentals
		WHERE actual_return_date IS NULL AND return_date < $1
		ORDER BY return_date, id`,
		today,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find overdue rentals: %w", err)
	}
	return rentals, nil
}
