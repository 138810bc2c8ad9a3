package dto

import (
	"stayledger/internal/domains/room/model"
	"stayledger/shared"
	gDto "stayledger/shared/dto"
	gModel "stayledger/shared/model"
	"stayledger/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name      string `json:"name"       validate:"required,max=100"`
	RoomType  string `json:"room_type"  validate:"required,max=50"`
	BasePrice int64  `json:"base_price" validate:"required,gt=0"`
	Capacity  int    `json:"capacity"   validate:"required,min=1"`
	Active    *bool  `json:"active"     validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(hotelID, user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:        uuid.NewString(),
		HotelID:   hotelID,
		Name:      c.Name,
		RoomType:  c.RoomType,
		BasePrice: c.BasePrice,
		Capacity:  c.Capacity,
		Active:    active,
		Metadata:  gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateRoomRequest struct {
	Name      string `db:"name"       json:"name"       validate:"omitempty,max=100"`
	RoomType  string `db:"room_type"  json:"room_type"  validate:"omitempty,max=50"`
	BasePrice int64  `db:"base_price" json:"base_price" validate:"omitempty,gt=0"`
	Capacity  *int   `db:"capacity"   json:"capacity"   validate:"omitempty,min=1"`
	Active    *bool  `db:"active"     json:"active"     validate:"omitempty"`
}

type RoomResponse struct {
	ID        string `json:"id"`
	HotelID   string `json:"hotel_id"`
	Name      string `json:"name"`
	RoomType  string `json:"room_type"`
	BasePrice int64  `json:"base_price"`
	Capacity  int    `json:"capacity"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.Name = model.Name
	r.RoomType = model.RoomType
	r.BasePrice = model.BasePrice
	r.Capacity = model.Capacity
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
