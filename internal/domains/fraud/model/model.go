package model

import "stayledger/shared/daterange"

const (
	RulePlatformBookingOnRoom = "PLATFORM_BOOKING_ON_ROOM"
	RuleDuplicateGuestPhone   = "DUPLICATE_GUEST_PHONE"
)

// WalkInCheck describes a front-desk booking about to be written. Phone is E.164.
type WalkInCheck struct {
	HotelID string
	RoomID  string
	Phone   string
	Range   daterange.Range
}
