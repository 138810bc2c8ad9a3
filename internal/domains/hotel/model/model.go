package model

import (
	"stayledger/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID             = "id"
	FieldOwnerID        = "owner_id"
	FieldName           = "name"
	FieldCommissionRate = "commission_rate"
	FieldActive         = "active"
)

type Hotel struct {
	ID      string `db:"id"`
	OwnerID string `db:"owner_id"`
	Name    string `db:"name"`
	// CommissionRate overrides the platform default when set.
	CommissionRate decimal.NullDecimal `db:"commission_rate"`
	Active         bool                `db:"active"`
	model.Metadata
}
