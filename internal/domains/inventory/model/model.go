package model

import (
	"time"

	"stayledger/shared/model"
)

const (
	TableName  = "room_inventory"
	EntityName = "room_inventory"

	FieldRoomID = "room_id"
	FieldDate   = "date"
	FieldStatus = "status"
)

const (
	StatusAvailable = "AVAILABLE"
	StatusOccupied  = "OCCUPIED"
	StatusBlocked   = "BLOCKED"
)

// RoomInventory is one ledger row per room and calendar date.
type RoomInventory struct {
	RoomID string    `db:"room_id"`
	Date   time.Time `db:"date"`
	Status string    `db:"status"`
	Note   string    `db:"note"`
	model.Metadata
}

// Span is the stay window of an active booking.
type Span struct {
	BookingID string    `db:"id"`
	Status    string    `db:"status"`
	CheckIn   time.Time `db:"check_in"`
	CheckOut  time.Time `db:"check_out"`
}
