package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorent/gorent/internal/pkg/apperr"
	"github.com/gorent/gorent/internal/pkg/database"
	"github.com/gorent/gorent/internal/pkg/logger"
	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// vehicleCacheTTL bounds staleness of cached catalog reads. The cache
// only serves lookups; stock-moving paths re-check inside their
// transaction, so a stale count can never oversell.
const vehicleCacheTTL = time.Minute

// VehicleRepo reads the vehicle catalog with a read-through Redis cache
type VehicleRepo struct {
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *sqlx.DB, cache *database.RedisClient) *VehicleRepo {
	return &VehicleRepo{db: db, cache: cache}
}

func vehicleCacheKey(id uuid.UUID) string {
	return "vehicle:" + id.String()
}

// GetByID returns one vehicle, preferring the cache
func (r *VehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	if r.cache != nil {
		if raw, err := r.cache.Get(ctx, vehicleCacheKey(id)); err == nil {
			vehicle := &models.Vehicle{}
			if err := json.Unmarshal([]byte(raw), vehicle); err == nil {
				return vehicle, nil
			}
		}
	}

	vehicle := &models.Vehicle{}
	err := r.db.GetContext(ctx, vehicle, `
		SELECT id, brand, model, daily_fee, available_units, is_deleted
		FROM vehicles
		WHERE id = $1 AND is_deleted = false`,
		id,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if r.cache != nil {
		if raw, err := json.Marshal(vehicle); err == nil {
			if err := r.cache.Set(ctx, vehicleCacheKey(id), raw, vehicleCacheTTL); err != nil {
				logger.Debug("vehicle cache write failed",
					logger.String("vehicle_id", id.String()),
					logger.Err(err))
			}
		}
	}

	return vehicle, nil
}

// List returns a page of non-deleted vehicles
func (r *VehicleRepo) List(ctx context.Context, page, limit int) ([]models.Vehicle, error) {
	offset := (page - 1) * limit

	vehicles := []models.Vehicle{}
	err := r.db.SelectContext(ctx, &vehicles, `
		SELECT id, brand, model, daily_fee, available_units, is_deleted
		FROM vehicles
		WHERE is_deleted = false
		ORDER BY brand, model, id
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// Invalidate drops the cached entry after a stock movement
func (r *VehicleRepo) Invalidate(ctx context.Context, id uuid.UUID) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, vehicleCacheKey(id)); err != nil {
		logger.Debug("vehicle cache invalidation failed",
			logger.String("vehicle_id", id.String()),
			logger.Err(err))
	}
}
