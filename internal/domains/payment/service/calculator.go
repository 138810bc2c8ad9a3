package service

import (
	"stayledger/config"
	bookingModel "stayledger/internal/domains/booking/model"
	"stayledger/internal/domains/payment/model"
	"stayledger/shared/failure"

	"github.com/shopspring/decimal"
)

// Calculator holds the pure payment-split arithmetic. Rounding is half away
// from zero for round() and toward zero for floor() on non-negative amounts.
type Calculator struct {
	advanceRate    decimal.Decimal
	hotelShareRate decimal.Decimal
	discountRate   decimal.Decimal
	discountCap    int64
}

func NewCalculator(cfg *config.Config) *Calculator {
	return &Calculator{
		advanceRate:    decimal.RequireFromString(cfg.Booking.PayAtHotelAdvanceRate),
		hotelShareRate: decimal.RequireFromString(cfg.Booking.NoShowHotelShareRate),
		discountRate:   decimal.RequireFromString(cfg.Booking.FirstBookingDiscount),
		discountCap:    cfg.Booking.FirstBookingDiscountCap,
	}
}

func round(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Round(0).IntPart()
}

func floor(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Floor().IntPart()
}

// FirstBookingDiscount is min(round(subtotal × rate), cap).
func (c *Calculator) FirstBookingDiscount(subtotal int64) int64 {
	return min(round(subtotal, c.discountRate), c.discountCap)
}

// RequiredAdvance is round(total × rate) for pay-at-hotel and the whole total otherwise.
func (c *Calculator) RequiredAdvance(total int64, method string) int64 {
	if method == bookingModel.MethodPayAtHotel {
		return round(total, c.advanceRate)
	}

	return total
}

func (c *Calculator) Quote(in model.QuoteInput) (model.Quote, error) {
	if in.Subtotal < 0 {
		return model.Quote{}, failure.BadRequestFromString("subtotal must not be negative")
	}

	if in.Method == bookingModel.MethodPayAtHotel && !in.PayAtHotelAllowed {
		return model.Quote{}, failure.FraudRejected("pay at hotel is not available for this guest") // nolint:wrapcheck
	}

	q := model.Quote{Subtotal: in.Subtotal, Method: in.Method}

	if in.FirstBooking {
		q.Discount = c.FirstBookingDiscount(in.Subtotal)
	}

	q.Total = in.Subtotal - q.Discount
	q.RequiredAdvance = c.RequiredAdvance(q.Total, in.Method)

	if in.UseWallet {
		q.WalletUse = min(max(in.WalletBalance, 0), q.Total)
	}

	if q.Total == 0 {
		q.FullyPaid = true
		q.AdvanceSettled = true

		return q, nil
	}

	if in.UseWallet && q.WalletUse >= q.Total {
		q.Method = bookingModel.MethodWallet
		q.FullyPaid = true
		q.AdvanceSettled = true
		q.BookingFee = q.Total

		return q, nil
	}

	q.RemainingAdvance = max(0, q.RequiredAdvance-q.WalletUse)
	q.BookingFee = max(q.RequiredAdvance, q.WalletUse)
	q.AdvanceSettled = q.RemainingAdvance == 0

	return q, nil
}

// PaymentStatus is the booking payment status implied by how much was collected up front.
func (c *Calculator) PaymentStatus(total, advancePaid int64, method string) string {
	switch {
	case advancePaid >= total:
		return bookingModel.PaymentStatusPaid
	case advancePaid > 0 && method == bookingModel.MethodPayAtHotel:
		return bookingModel.PaymentStatusPayAtHotel
	default:
		return bookingModel.PaymentStatusPending
	}
}

// NoShowSplit forfeits the collected advance; hotel gets floor(advance × rate), platform the rest.
func (c *Calculator) NoShowSplit(advancePaid int64) model.Split {
	hotel := floor(advancePaid, c.hotelShareRate)

	return model.Split{HotelShare: hotel, PlatformShare: advancePaid - hotel}
}

// Remaining counts the booking fee as paid only when its status says so.
func (c *Calculator) Remaining(total, fee int64, feeStatus string) int64 {
	if feeStatus == bookingModel.FeeStatusPaid {
		return total - fee
	}

	return total
}

// Commission is zero for walk-ins and round(total × rate) for every other source.
func (c *Calculator) Commission(total int64, rate decimal.Decimal, source string) int64 {
	if source == bookingModel.SourceWalkIn {
		return 0
	}

	return round(total, rate)
}

// PerNight is base price when known, else total back-computed over nights.
func (c *Calculator) PerNight(basePrice, total int64, nights int) int64 {
	if basePrice > 0 {
		return basePrice
	}

	if nights <= 0 {
		return 0
	}

	return decimal.NewFromInt(total).Div(decimal.NewFromInt(int64(nights))).Round(0).IntPart()
}
