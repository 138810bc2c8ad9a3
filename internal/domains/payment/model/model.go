package model

// QuoteInput carries everything the split arithmetic needs; amounts are minor units.
type QuoteInput struct {
	Subtotal          int64
	Method            string
	WalletBalance     int64
	UseWallet         bool
	FirstBooking      bool
	PayAtHotelAllowed bool
}

type Quote struct {
	Subtotal         int64  `json:"subtotal"`
	Discount         int64  `json:"discount"`
	Total            int64  `json:"total"`
	RequiredAdvance  int64  `json:"required_advance"`
	WalletUse        int64  `json:"wallet_use"`
	RemainingAdvance int64  `json:"remaining_advance"`
	BookingFee       int64  `json:"booking_fee"`
	Method           string `json:"method"`
	FullyPaid        bool   `json:"fully_paid"`
	// AdvanceSettled is true when no separate payment step is needed.
	AdvanceSettled bool `json:"advance_settled"`
}

type Split struct {
	HotelShare    int64 `json:"hotel_share"`
	PlatformShare int64 `json:"platform_share"`
}

// Earnings is derived from bookings; it is not a system of record.
type Earnings struct {
	WalkInRevenue       int64 `db:"walk_in_revenue"       json:"walk_in_revenue"`
	PlatformRevenue     int64 `db:"platform_revenue"      json:"platform_revenue"`
	CommissionTotal     int64 `db:"commission_total"      json:"commission_total"`
	CommissionOwed      int64 `db:"commission_owed"       json:"commission_owed"`
	SettledPayable      int64 `db:"settled_payable"       json:"settled_payable"`
	ForfeitedHotelShare int64 `db:"forfeited_hotel_share" json:"forfeited_hotel_share"`
	PayoutReserved      int64 `db:"payout_reserved"       json:"payout_reserved"`
	NetEarnings         int64 `db:"-"                     json:"net_earnings"`
	AvailableBalance    int64 `db:"-"                     json:"available_balance"`
}

// Derive fills the computed totals.
func (e *Earnings) Derive() {
	e.NetEarnings = e.WalkInRevenue + e.PlatformRevenue - e.CommissionTotal
	e.AvailableBalance = e.SettledPayable + e.ForfeitedHotelShare - e.PayoutReserved
}
