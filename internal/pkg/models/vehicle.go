package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vehicle represents a rentable vehicle in the fleet catalog.
// Catalog mutations (adding vehicles, changing fees) belong to the
// fleet-management system; this service only reads the catalog and
// moves available_units on reserve/release.
type Vehicle struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	Brand     string          `db:"brand" json:"brand"`
	Model     string          `db:"model" json:"model"`
	DailyFee  decimal.Decimal `db:"daily_fee" json:"daily_fee"`
	Available int             `db:"available_units" json:"available_units"`
	IsDeleted bool            `db:"is_deleted" json:"-"`
}
