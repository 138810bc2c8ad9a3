package service_test

import (
	"testing"

	"stayledger/config"
	bookingModel "stayledger/internal/domains/booking/model"
	"stayledger/internal/domains/payment/model"
	"stayledger/internal/domains/payment/service"
	"stayledger/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalculator() *service.Calculator {
	cfg := &config.Config{}
	cfg.Booking.PayAtHotelAdvanceRate = "0.20"
	cfg.Booking.NoShowHotelShareRate = "0.50"
	cfg.Booking.FirstBookingDiscount = "0.20"
	cfg.Booking.FirstBookingDiscountCap = 1000

	return service.NewCalculator(cfg)
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		in   model.QuoteInput
		want model.Quote
	}{
		{
			name: "pay at hotel without wallet",
			in:   model.QuoteInput{Subtotal: 5000, Method: bookingModel.MethodPayAtHotel, PayAtHotelAllowed: true},
			want: model.Quote{
				Subtotal: 5000, Total: 5000, RequiredAdvance: 1000, RemainingAdvance: 1000,
				BookingFee: 1000, Method: bookingModel.MethodPayAtHotel,
			},
		},
		{
			name: "wallet covers the total",
			in:   model.QuoteInput{Subtotal: 3000, Method: bookingModel.MethodOnline, WalletBalance: 3500, UseWallet: true},
			want: model.Quote{
				Subtotal: 3000, Total: 3000, RequiredAdvance: 3000, WalletUse: 3000, BookingFee: 3000,
				Method: bookingModel.MethodWallet, FullyPaid: true, AdvanceSettled: true,
			},
		},
		{
			name: "wallet covers the pay at hotel advance",
			in: model.QuoteInput{
				Subtotal: 5000, Method: bookingModel.MethodPayAtHotel, WalletBalance: 1200,
				UseWallet: true, PayAtHotelAllowed: true,
			},
			want: model.Quote{
				Subtotal: 5000, Total: 5000, RequiredAdvance: 1000, WalletUse: 1200, BookingFee: 1200,
				Method: bookingModel.MethodPayAtHotel, AdvanceSettled: true,
			},
		},
		{
			name: "wallet partially covers the advance",
			in: model.QuoteInput{
				Subtotal: 5000, Method: bookingModel.MethodPayAtHotel, WalletBalance: 300,
				UseWallet: true, PayAtHotelAllowed: true,
			},
			want: model.Quote{
				Subtotal: 5000, Total: 5000, RequiredAdvance: 1000, WalletUse: 300, RemainingAdvance: 700,
				BookingFee: 1000, Method: bookingModel.MethodPayAtHotel,
			},
		},
		{
			name: "wallet balance ignored unless requested",
			in:   model.QuoteInput{Subtotal: 3000, Method: bookingModel.MethodOnline, WalletBalance: 3500},
			want: model.Quote{
				Subtotal: 3000, Total: 3000, RequiredAdvance: 3000, RemainingAdvance: 3000,
				BookingFee: 3000, Method: bookingModel.MethodOnline,
			},
		},
		{
			name: "first booking discount below cap",
			in:   model.QuoteInput{Subtotal: 2000, Method: bookingModel.MethodOnline, FirstBooking: true},
			want: model.Quote{
				Subtotal: 2000, Discount: 400, Total: 1600, RequiredAdvance: 1600, RemainingAdvance: 1600,
				BookingFee: 1600, Method: bookingModel.MethodOnline,
			},
		},
		{
			name: "first booking discount capped before advance math",
			in: model.QuoteInput{
				Subtotal: 12000, Method: bookingModel.MethodPayAtHotel, FirstBooking: true, PayAtHotelAllowed: true,
			},
			want: model.Quote{
				Subtotal: 12000, Discount: 1000, Total: 11000, RequiredAdvance: 2200, RemainingAdvance: 2200,
				BookingFee: 2200, Method: bookingModel.MethodPayAtHotel,
			},
		},
		{
			name: "advance rounds half up",
			in:   model.QuoteInput{Subtotal: 1234, Method: bookingModel.MethodPayAtHotel, PayAtHotelAllowed: true},
			want: model.Quote{
				Subtotal: 1234, Total: 1234, RequiredAdvance: 247, RemainingAdvance: 247,
				BookingFee: 247, Method: bookingModel.MethodPayAtHotel,
			},
		},
	}

	calc := newCalculator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Quote(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuote_PayAtHotelRevoked(t *testing.T) {
	_, err := newCalculator().Quote(model.QuoteInput{Subtotal: 5000, Method: bookingModel.MethodPayAtHotel})

	assert.True(t, failure.IsKind(err, failure.KindFraudRejected))
}

func TestNoShowSplit(t *testing.T) {
	calc := newCalculator()

	for _, advance := range []int64{0, 1, 999, 1000, 1001, 2247} {
		split := calc.NoShowSplit(advance)

		assert.Equal(t, advance, split.HotelShare+split.PlatformShare, "advance=%d", advance)
		assert.Equal(t, advance/2, split.HotelShare, "advance=%d", advance)
	}

	assert.Equal(t, model.Split{HotelShare: 500, PlatformShare: 500}, calc.NoShowSplit(1000))
}

func TestRemaining(t *testing.T) {
	calc := newCalculator()

	assert.Equal(t, int64(4000), calc.Remaining(5000, 1000, bookingModel.FeeStatusPaid))
	assert.Equal(t, int64(5000), calc.Remaining(5000, 1000, bookingModel.FeeStatusPending))
}

func TestCommission(t *testing.T) {
	calc := newCalculator()
	rate := decimal.RequireFromString("0.10")

	assert.Equal(t, int64(500), calc.Commission(5000, rate, bookingModel.SourcePlatform))
	assert.Equal(t, int64(123), calc.Commission(1225, rate, bookingModel.SourceAgoda))
	assert.Equal(t, int64(0), calc.Commission(5000, rate, bookingModel.SourceWalkIn))
}

func TestPaymentStatus(t *testing.T) {
	calc := newCalculator()

	assert.Equal(t, bookingModel.PaymentStatusPaid, calc.PaymentStatus(3000, 3000, bookingModel.MethodWallet))
	assert.Equal(t, bookingModel.PaymentStatusPayAtHotel, calc.PaymentStatus(5000, 1000, bookingModel.MethodPayAtHotel))
	assert.Equal(t, bookingModel.PaymentStatusPending, calc.PaymentStatus(5000, 0, bookingModel.MethodPayAtHotel))
	assert.Equal(t, bookingModel.PaymentStatusPending, calc.PaymentStatus(5000, 0, bookingModel.MethodOnline))
}

func TestPerNight(t *testing.T) {
	calc := newCalculator()

	assert.Equal(t, int64(700), calc.PerNight(700, 3000, 3))
	assert.Equal(t, int64(1000), calc.PerNight(0, 3000, 3))
	assert.Equal(t, int64(0), calc.PerNight(0, 3000, 0))
}
