package dto

import (
	"stayledger/internal/domains/booking/model"
	inventoryDto "stayledger/internal/domains/inventory/model/dto"
	"stayledger/shared"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	gDto "stayledger/shared/dto"
	"stayledger/shared/timezone"
)

type Guest struct {
	GuestName  string `json:"guest_name"  validate:"required,max=100"`
	GuestPhone string `json:"guest_phone" validate:"required,max=20,phone"`
	GuestEmail string `json:"guest_email" validate:"omitempty,email,max=100"`
	GuestCount int    `json:"guest_count" validate:"required,min=1"`
}

// CreateDirectRequest is a guest booking through the platform.
type CreateDirectRequest struct {
	HotelID string `json:"hotel_id" validate:"required"`
	RoomID  string `json:"room_id"  validate:"required"`
	inventoryDto.RangeRequest
	Guest
	PaymentMethod string `json:"payment_method" validate:"required,oneof=ONLINE PAY_AT_HOTEL"`
	UseWallet     bool   `json:"use_wallet"`
}

type CreateWalkInRequest struct {
	RoomID string `json:"room_id" validate:"required"`
	inventoryDto.RangeRequest
	Guest
}

// ChannelBooking is a reservation pulled from an OTA, already mapped onto a local room.
type ChannelBooking struct {
	HotelID           string
	RoomID            string
	ConnectionID      string
	ExternalBookingID string
	Source            string
	GuestName         string
	GuestPhone        string
	GuestEmail        string
	GuestCount        int
	Range             daterange.Range
	TotalAmount       int64
}

type QuoteRequest struct {
	HotelID string `json:"hotel_id" validate:"required"`
	RoomID  string `json:"room_id"  validate:"required"`
	inventoryDto.RangeRequest
	PaymentMethod string `json:"payment_method" validate:"required,oneof=ONLINE PAY_AT_HOTEL"`
	UseWallet     bool   `json:"use_wallet"`
}

type QuoteResponse struct {
	RoomID           string `json:"room_id"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	NumberOfNights   int    `json:"number_of_nights"`
	PricePerNight    int64  `json:"price_per_night"`
	FirstBooking     bool   `json:"first_booking"`
	Subtotal         int64  `json:"subtotal"`
	Discount         int64  `json:"discount"`
	Total            int64  `json:"total"`
	RequiredAdvance  int64  `json:"required_advance"`
	WalletUse        int64  `json:"wallet_use"`
	RemainingAdvance int64  `json:"remaining_advance"`
	PaymentMethod    string `json:"payment_method"`
	FullyPaid        bool   `json:"fully_paid"`
	AdvanceSettled   bool   `json:"advance_settled"`
}

type ExtendRequest struct {
	Nights int `json:"nights" validate:"required,min=1,max=30"`
}

type CancelRequest struct {
	Reason string `json:"reason" validate:"omitempty,oneof=GUEST_CANCELLED HOTEL_CANCELLED"`
	Note   string `json:"note"   validate:"omitempty,max=255"`
}

type CollectPaymentRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	HotelID   string `json:"hotelId"   validate:"required"`
}

type CollectPaymentResponse struct {
	Success         bool   `json:"success"`
	Error           string `json:"error,omitempty"`
	AmountCollected *int64 `json:"amountCollected,omitempty"`
}

// Locator scopes a booking lookup to a hotel, a guest, or both.
type Locator struct {
	HotelID string
	UserID  string
}

func (l Locator) Matches(b model.Booking) bool {
	if l.HotelID != constant.Empty && b.HotelID != l.HotelID {
		return false
	}

	if l.UserID != constant.Empty && (b.UserID == nil || *b.UserID != l.UserID) {
		return false
	}

	return true
}

type ListFilter struct {
	Status string
	Source string
	RoomID string
	From   string
	To     string
}

func (f ListFilter) ToFilter(hotelID string) gDto.FilterGroup {
	filters := []any{gDto.Eq(model.TableName, model.FieldHotelID, hotelID)}

	if f.Status != constant.Empty {
		filters = append(filters, gDto.Eq(model.TableName, model.FieldStatus, f.Status))
	}

	if f.Source != constant.Empty {
		filters = append(filters, gDto.Eq(model.TableName, model.FieldBookingSource, f.Source))
	}

	if f.RoomID != constant.Empty {
		filters = append(filters, gDto.Eq(model.TableName, model.FieldRoomID, f.RoomID))
	}

	// Stays overlapping [From, To); either bound may be open.
	switch {
	case f.From != constant.Empty && f.To != constant.Empty:
		filters = append(filters, gDto.Overlaps(model.TableName, model.FieldCheckIn, model.FieldCheckOut, f.From, f.To))
	case f.To != constant.Empty:
		filters = append(filters, gDto.Filter{Field: model.FieldCheckIn, Value: f.To, Operator: gDto.FilterOperatorLess, Table: model.TableName})
	case f.From != constant.Empty:
		filters = append(filters, gDto.Filter{Field: model.FieldCheckOut, Value: f.From, Operator: gDto.FilterOperatorGreater, Table: model.TableName})
	}

	return gDto.And(filters...)
}

type BookingResponse struct {
	ID                  string  `json:"id"`
	HotelID             string  `json:"hotel_id"`
	RoomID              string  `json:"room_id"`
	UserID              *string `json:"user_id,omitempty"`
	GuestName           string  `json:"guest_name"`
	GuestPhone          string  `json:"guest_phone"`
	GuestEmail          string  `json:"guest_email,omitempty"`
	CheckIn             string  `json:"check_in"`
	CheckOut            string  `json:"check_out"`
	NumberOfNights      int     `json:"number_of_nights"`
	GuestCount          int     `json:"guest_count"`
	SubtotalAmount      int64   `json:"subtotal_amount"`
	DiscountAmount      int64   `json:"discount_amount"`
	TotalAmount         int64   `json:"total_amount"`
	CommissionAmount    int64   `json:"commission_amount"`
	NetAmount           int64   `json:"net_amount"`
	BookingFee          int64   `json:"booking_fee"`
	WalletAmount        int64   `json:"wallet_amount"`
	AdvancePaid         int64   `json:"advance_paid"`
	RemainingAmount     int64   `json:"remaining_amount"`
	Status              string  `json:"status"`
	CancellationReason  *string `json:"cancellation_reason,omitempty"`
	CancelledAt         string  `json:"cancelled_at,omitempty"`
	PaymentStatus       string  `json:"payment_status"`
	PaymentMethod       string  `json:"payment_method"`
	BookingFeeStatus    string  `json:"booking_fee_status"`
	BookingSource       string  `json:"booking_source"`
	CommissionStatus    string  `json:"commission_status"`
	HotelShare          int64   `json:"hotel_share"`
	PlatformShare       int64   `json:"platform_share"`
	ChannelConnectionID *string `json:"channel_connection_id,omitempty"`
	ExternalBookingID   *string `json:"external_booking_id,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.HotelID = m.HotelID
	r.RoomID = m.RoomID
	r.UserID = m.UserID
	r.GuestName = m.GuestName
	r.GuestPhone = m.GuestPhone
	r.GuestEmail = m.GuestEmail
	r.CheckIn = m.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = m.CheckOut.Format(constant.DateOnlyFormat)
	r.NumberOfNights = m.NumberOfNights
	r.GuestCount = m.GuestCount
	r.SubtotalAmount = m.SubtotalAmount
	r.DiscountAmount = m.DiscountAmount
	r.TotalAmount = m.TotalAmount
	r.CommissionAmount = m.CommissionAmount
	r.NetAmount = m.NetAmount
	r.BookingFee = m.BookingFee
	r.WalletAmount = m.WalletAmount
	r.AdvancePaid = m.AdvancePaid()
	r.RemainingAmount = m.RemainingAmount()
	r.Status = m.Status
	r.CancellationReason = m.CancellationReason
	if m.CancelledAt != nil {
		r.CancelledAt = timezone.Format(*m.CancelledAt, constant.DateFormat)
	}
	r.PaymentStatus = m.PaymentStatus
	r.PaymentMethod = m.PaymentMethod
	r.BookingFeeStatus = m.BookingFeeStatus
	r.BookingSource = m.BookingSource
	r.CommissionStatus = m.CommissionStatus
	r.HotelShare = m.HotelShare
	r.PlatformShare = m.PlatformShare
	r.ChannelConnectionID = m.ChannelConnectionID
	r.ExternalBookingID = m.ExternalBookingID
	r.Metadata.FromModel(m.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type ActivityResponse struct {
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status"`
	Action     string `json:"action"`
	ActorID    string `json:"actor_id"`
	Note       string `json:"note,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func ActivitiesFromModels(models []model.Activity) []ActivityResponse {
	res := make([]ActivityResponse, len(models))
	for i, m := range models {
		res[i] = ActivityResponse{
			FromStatus: m.FromStatus,
			ToStatus:   m.ToStatus,
			Action:     m.Action,
			ActorID:    m.ActorID,
			Note:       m.Note,
			CreatedAt:  timezone.Format(m.CreatedAt, constant.DateFormat),
		}
	}

	return res
}
