package model

import (
	"time"

	"stayledger/shared/model"
)

const (
	ConnectionTableName  = "channel_connections"
	ConnectionEntityName = "channel connection"
	MappingTableName     = "channel_room_mappings"
	MappingEntityName    = "room mapping"
	ConflictTableName    = "channel_conflicts"
	ConflictEntityName   = "channel conflict"

	FieldID                = "id"
	FieldHotelID           = "hotel_id"
	FieldChannel           = "channel"
	FieldExternalHotelID   = "external_hotel_id"
	FieldCredentials       = "credentials"
	FieldActive            = "active"
	FieldSyncStatus        = "sync_status"
	FieldLastSyncAt        = "last_sync_at"
	FieldLastPullAt        = "last_pull_at"
	FieldLastError         = "last_error"
	FieldConnectionID      = "connection_id"
	FieldRoomID            = "room_id"
	FieldExternalBookingID = "external_booking_id"
	FieldStatus            = "status"
	FieldResolvedBy        = "resolved_by"
	FieldResolvedAt        = "resolved_at"
	FieldResolutionNote    = "resolution_note"
)

const (
	SyncStatusIdle    = "IDLE"
	SyncStatusSyncing = "SYNCING"
	SyncStatusError   = "ERROR"
)

const (
	ConflictStatusOpen     = "OPEN"
	ConflictStatusResolved = "RESOLVED"
)

// Conflict reasons.
const (
	ReasonInventoryConflict = "INVENTORY_CONFLICT"
	ReasonUnmappedRoom      = "UNMAPPED_ROOM"
	ReasonInvalidPayload    = "INVALID_PAYLOAD"
)

// Connection is one (hotel, OTA) link. Credentials are sealed at rest.
type Connection struct {
	ID              string     `db:"id"`
	HotelID         string     `db:"hotel_id"`
	Channel         string     `db:"channel"`
	ExternalHotelID string     `db:"external_hotel_id"`
	Credentials     string     `db:"credentials"`
	Active          bool       `db:"active"`
	SyncStatus      string     `db:"sync_status"`
	LastSyncAt      *time.Time `db:"last_sync_at"`
	LastPullAt      *time.Time `db:"last_pull_at"`
	LastError       *string    `db:"last_error"`
	model.Metadata
}

// Mapping ties a local room to an external room type and optional rate plan.
type Mapping struct {
	ID             string    `db:"id"`
	ConnectionID   string    `db:"connection_id"`
	RoomID         string    `db:"room_id"`
	ExternalRoomID string    `db:"external_room_id"`
	RatePlanID     string    `db:"rate_plan_id"`
	CreatedAt      time.Time `db:"created_at"`
	CreatedBy      string    `db:"created_by"`
}

// Conflict is a pulled reservation that could not be booked locally and waits for a human.
type Conflict struct {
	ID                string     `db:"id"`
	ConnectionID      string     `db:"connection_id"`
	HotelID           string     `db:"hotel_id"`
	ExternalBookingID string     `db:"external_booking_id"`
	RoomID            *string    `db:"room_id"`
	CheckIn           string     `db:"check_in"`
	CheckOut          string     `db:"check_out"`
	Reason            string     `db:"reason"`
	Message           string     `db:"message"`
	ArchiveKey        string     `db:"archive_key"`
	Status            string     `db:"status"`
	ResolvedBy        *string    `db:"resolved_by"`
	ResolvedAt        *time.Time `db:"resolved_at"`
	ResolutionNote    string     `db:"resolution_note"`
	CreatedAt         time.Time  `db:"created_at"`
}
