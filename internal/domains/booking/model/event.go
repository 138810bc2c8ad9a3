package model

import (
	"time"

	"stayledger/shared/constant"
)

// Lifecycle actions, used both as activity actions and event types.
const (
	ActionCreated          = "booking.created"
	ActionConfirmed        = "booking.confirmed"
	ActionCheckedIn        = "booking.checked_in"
	ActionCheckedOut       = "booking.checked_out"
	ActionExtended         = "booking.extended"
	ActionNoShow           = "booking.no_show"
	ActionCancelled        = "booking.cancelled"
	ActionAdvancePaid      = "booking.advance_paid"
	ActionPaymentCollected = "booking.payment_collected"
)

// Event is the kafka payload published after a booking transition commits.
type Event struct {
	Type          string    `json:"type"`
	BookingID     string    `json:"booking_id"`
	HotelID       string    `json:"hotel_id"`
	RoomID        string    `json:"room_id"`
	UserID        *string   `json:"user_id,omitempty"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Source        string    `json:"source"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	TotalAmount   int64     `json:"total_amount"`
	ActorID       string    `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewEvent(action string, b Booking, actorID string, at time.Time) Event {
	return Event{
		Type:          action,
		BookingID:     b.ID,
		HotelID:       b.HotelID,
		RoomID:        b.RoomID,
		UserID:        b.UserID,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		Source:        b.BookingSource,
		CheckIn:       b.CheckIn.Format(constant.DateOnlyFormat),
		CheckOut:      b.CheckOut.Format(constant.DateOnlyFormat),
		TotalAmount:   b.TotalAmount,
		ActorID:       actorID,
		OccurredAt:    at,
	}
}
