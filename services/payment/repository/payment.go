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
	"github.com/jmoiron/sqlx"
)

// paymentColumns is the shared select list for payment queries
const paymentColumns = "id, rental_id, kind, status, amount, session_id, session_url, fine_date, created_at, is_deleted"

// PaymentRepo persists payment records
type PaymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// Create inserts a new payment record
func (r *PaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (id, rental_id, kind, status, amount, session_id, session_url, fine_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		payment.ID,
		payment.RentalID,
		payment.Kind,
		payment.Status,
		payment.Amount,
		payment.SessionID,
		payment.SessionURL,
		payment.FineDate,
		payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// GetBySessionID returns the payment for a gateway session
func (r *PaymentRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.Payment, error) {
	payment := &models.Payment{}
	err := r.db.GetContext(ctx, payment, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE session_id = $1 AND is_deleted = false`,
		sessionID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get payment by session: %w", err)
	}
	return payment, nil
}

// MarkPaid transitions the session's payment from pending to paid. The
// status guard in the WHERE clause keeps terminal records terminal under
// concurrent callbacks.
func (r *PaymentRepo) MarkPaid(ctx context.Context, sessionID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE payments
		SET status = $1
		WHERE session_id = $2 AND status = $3 AND is_deleted = false`,
		models.PaymentStatusPaid,
		sessionID,
		models.PaymentStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark payment paid: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// MarkExpired transitions one payment from pending to expired
func (r *PaymentRepo) MarkExpired(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE payments
		SET status = $1
		WHERE id = $2 AND status = $3 AND is_deleted = false`,
		models.PaymentStatusExpired,
		id,
		models.PaymentStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark payment expired: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListByRental returns all payments for a rental, any status
func (r *PaymentRepo) ListByRental(ctx context.Context, rentalID uuid.UUID) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := r.db.SelectContext(ctx, &payments, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE rental_id = $1 AND is_deleted = false
		ORDER BY created_at DESC, id`,
		rentalID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// ListUnpaid returns all payments whose status is not paid
func (r *PaymentRepo) ListUnpaid(ctx context.Context) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := r.db.SelectContext(ctx, &payments, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE status <> $1 AND is_deleted = false
		ORDER BY created_at DESC, id`,
		models.PaymentStatusPaid,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid payments: %w", err)
	}
	return payments, nil
}

// ListStalePending returns pending payments created before the cutoff
func (r *PaymentRepo) ListStalePending(ctx context.Context, cutoff time.Time) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := r.db.SelectContext(ctx, &payments, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE status = $1 AND created_at < $2 AND is_deleted = false
		ORDER BY created_at, id`,
		models.PaymentStatusPending,
		cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale pending payments: %w", err)
	}
	return payments, nil
}

// HasFineForDay reports whether a fine already exists for the rental on
// the given calendar day
func (r *PaymentRepo) HasFineForDay(ctx context.Context, rentalID uuid.UUID, day time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM payments
			WHERE rental_id = $1 AND kind = $2 AND fine_date = $3 AND is_deleted = false
		)`,
		rentalID,
		models.PaymentKindFine,
		day,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check fine for day: %w", err)
	}
	return exists, nil
}
