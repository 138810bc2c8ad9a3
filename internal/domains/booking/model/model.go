package model

import (
	"slices"
	"time"

	"stayledger/shared/daterange"
	"stayledger/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                  = "id"
	FieldHotelID             = "hotel_id"
	FieldRoomID              = "room_id"
	FieldUserID              = "user_id"
	FieldGuestPhone          = "guest_phone"
	FieldCheckIn             = "check_in"
	FieldCheckOut            = "check_out"
	FieldNumberOfNights      = "number_of_nights"
	FieldSubtotalAmount      = "subtotal_amount"
	FieldTotalAmount         = "total_amount"
	FieldCommissionAmount    = "commission_amount"
	FieldNetAmount           = "net_amount"
	FieldStatus              = "status"
	FieldCancellationReason  = "cancellation_reason"
	FieldCancelledAt         = "cancelled_at"
	FieldPaymentStatus       = "payment_status"
	FieldPaymentMethod       = "payment_method"
	FieldBookingFeeStatus    = "booking_fee_status"
	FieldBookingSource       = "booking_source"
	FieldCommissionStatus    = "commission_status"
	FieldHotelShare          = "hotel_share"
	FieldPlatformShare       = "platform_share"
	FieldChannelConnectionID = "channel_connection_id"
	FieldExternalBookingID   = "external_booking_id"
)

const (
	StatusPending    = "PENDING"
	StatusConfirmed  = "CONFIRMED"
	StatusCheckedIn  = "CHECKED_IN"
	StatusCheckedOut = "CHECKED_OUT"
	StatusCancelled  = "CANCELLED"
)

const (
	ReasonGuestCancelled = "GUEST_CANCELLED"
	ReasonHotelCancelled = "HOTEL_CANCELLED"
	ReasonNoShow         = "NO_SHOW"
)

const (
	PaymentStatusPending    = "PENDING"
	PaymentStatusPaid       = "PAID"
	PaymentStatusPayAtHotel = "PAY_AT_HOTEL"
)

const (
	FeeStatusPending = "PENDING"
	FeeStatusPaid    = "PAID"
)

const (
	MethodOnline     = "ONLINE"
	MethodPayAtHotel = "PAY_AT_HOTEL"
	MethodWallet     = "WALLET"
	MethodCash       = "CASH"
	MethodChannel    = "CHANNEL"
)

const (
	CommissionStatusPending = "PENDING"
	CommissionStatusPaid    = "PAID"
	CommissionStatusWaived  = "WAIVED"
)

const (
	SourcePlatform   = "PLATFORM"
	SourceWalkIn     = "WALK_IN"
	SourceBookingCom = "BOOKING_COM"
	SourceExpedia    = "EXPEDIA"
	SourceAgoda      = "AGODA"
	SourceAirbnb     = "AIRBNB"
)

// InactiveStatuses never hold inventory.
var InactiveStatuses = []string{StatusCancelled, StatusCheckedOut}

// OccupyingStatuses mark ledger dates OCCUPIED.
var OccupyingStatuses = []string{StatusConfirmed, StatusCheckedIn}

var ChannelSources = []string{SourceBookingCom, SourceExpedia, SourceAgoda, SourceAirbnb}

type Booking struct {
	ID                  string     `db:"id"`
	HotelID             string     `db:"hotel_id"`
	RoomID              string     `db:"room_id"`
	UserID              *string    `db:"user_id"`
	GuestName           string     `db:"guest_name"`
	GuestPhone          string     `db:"guest_phone"`
	GuestEmail          string     `db:"guest_email"`
	CheckIn             time.Time  `db:"check_in"`
	CheckOut            time.Time  `db:"check_out"`
	NumberOfNights      int        `db:"number_of_nights"`
	GuestCount          int        `db:"guest_count"`
	SubtotalAmount      int64      `db:"subtotal_amount"`
	DiscountAmount      int64      `db:"discount_amount"`
	TotalAmount         int64      `db:"total_amount"`
	CommissionAmount    int64      `db:"commission_amount"`
	NetAmount           int64      `db:"net_amount"`
	BookingFee          int64      `db:"booking_fee"`
	WalletAmount        int64      `db:"wallet_amount"`
	Status              string     `db:"status"`
	CancellationReason  *string    `db:"cancellation_reason"`
	CancelledAt         *time.Time `db:"cancelled_at"`
	PaymentStatus       string     `db:"payment_status"`
	PaymentMethod       string     `db:"payment_method"`
	BookingFeeStatus    string     `db:"booking_fee_status"`
	BookingSource       string     `db:"booking_source"`
	CommissionStatus    string     `db:"commission_status"`
	HotelShare          int64      `db:"hotel_share"`
	PlatformShare       int64      `db:"platform_share"`
	ChannelConnectionID *string    `db:"channel_connection_id"`
	ExternalBookingID   *string    `db:"external_booking_id"`
	model.Metadata
}

func (b Booking) Range() daterange.Range {
	return daterange.Range{CheckIn: daterange.Day(b.CheckIn), CheckOut: daterange.Day(b.CheckOut)}
}

func (b Booking) IsActive() bool {
	return !slices.Contains(InactiveStatuses, b.Status)
}

func (b Booking) IsOccupying() bool {
	return slices.Contains(OccupyingStatuses, b.Status)
}

// AdvancePaid is the booking fee only once it has actually been collected.
func (b Booking) AdvancePaid() int64 {
	if b.BookingFeeStatus == FeeStatusPaid {
		return b.BookingFee
	}

	return 0
}

func (b Booking) RemainingAmount() int64 {
	return b.TotalAmount - b.AdvancePaid()
}

func IsChannelSource(source string) bool {
	return slices.Contains(ChannelSources, source)
}

const (
	ActivityTableName  = "booking_activities"
	ActivityEntityName = "booking_activity"
)

// Activity is one audit row per transition.
type Activity struct {
	ID         string    `db:"id"`
	BookingID  string    `db:"booking_id"`
	FromStatus string    `db:"from_status"`
	ToStatus   string    `db:"to_status"`
	Action     string    `db:"action"`
	ActorID    string    `db:"actor_id"`
	Note       string    `db:"note"`
	CreatedAt  time.Time `db:"created_at"`
}
