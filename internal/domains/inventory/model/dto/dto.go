package dto

import (
	"stayledger/shared/daterange"
)

type RangeRequest struct {
	CheckIn  string `json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
}

func (r RangeRequest) ToRange() (daterange.Range, error) {
	return daterange.Parse(r.CheckIn, r.CheckOut)
}

type BlockRequest struct {
	RangeRequest
	Note string `json:"note" validate:"omitempty,max=255"`
}

type DayAvailability struct {
	Date      string `json:"date"`
	Status    string `json:"status"`
	BookingID string `json:"booking_id,omitempty"`
}

type AvailabilityResponse struct {
	RoomID string            `json:"room_id"`
	Days   []DayAvailability `json:"days"`
}
