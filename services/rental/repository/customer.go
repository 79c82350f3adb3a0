package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CustomerRepo is the customer directory backed by the customers table
type CustomerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *sqlx.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// Exists reports whether a customer with the given id exists
func (r *CustomerRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}
	return exists, nil
}
