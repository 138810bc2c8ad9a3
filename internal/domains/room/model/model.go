package model

import "stayledger/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID        = "id"
	FieldHotelID   = "hotel_id"
	FieldName      = "name"
	FieldRoomType  = "room_type"
	FieldBasePrice = "base_price"
	FieldCapacity  = "capacity"
	FieldActive    = "active"
)

type Room struct {
	ID        string `db:"id"`
	HotelID   string `db:"hotel_id"`
	Name      string `db:"name"`
	RoomType  string `db:"room_type"`
	BasePrice int64  `db:"base_price"`
	Capacity  int    `db:"capacity"`
	Active    bool   `db:"active"`
	model.Metadata
}
