package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	otelMocks "stayledger/infras/otel/mocks"
	pgMocks "stayledger/infras/postgres/mocks"
	hotelMocks "stayledger/internal/domains/hotel/mocks"
	hotelModel "stayledger/internal/domains/hotel/model"
	paymentMocks "stayledger/internal/domains/payment/service/mocks"
	"stayledger/internal/domains/payout/mocks"
	"stayledger/internal/domains/payout/model"
	"stayledger/internal/domains/payout/model/dto"
	"stayledger/internal/domains/payout/service"
	"stayledger/shared/actor"
	"stayledger/shared/constant"
	gDto "stayledger/shared/dto"
	"stayledger/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc     service.Payout
	repo    *mocks.MockPayout
	hotels  *hotelMocks.MockHotel
	payment *paymentMocks.MockPayment
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:    mocks.NewMockPayout(ctrl),
		hotels:  hotelMocks.NewMockHotel(ctrl),
		payment: paymentMocks.NewMockPayment(ctrl),
	}

	tx := pgMocks.NewMockTransactor(ctrl)
	pgMocks.PassThroughTx(tx)

	f.svc = service.New(f.repo, f.hotels, f.payment, tx, otelMocks.NewOtel())

	return f
}

func adminCtx() context.Context {
	return actor.With(context.Background(), actor.Actor{ID: "admin-1", Role: constant.RoleAdmin})
}

func TestRequest(t *testing.T) {
	tests := []struct {
		name      string
		amount    int64
		available int64
		hotel     hotelModel.Hotel
		wantKind  failure.Kind
	}{
		{name: "within balance", amount: 4000, available: 4500, hotel: hotelModel.Hotel{ID: "h-1"}},
		{name: "exactly the balance", amount: 4500, available: 4500, hotel: hotelModel.Hotel{ID: "h-1"}},
		{name: "over balance", amount: 4501, available: 4500, hotel: hotelModel.Hotel{ID: "h-1"}, wantKind: failure.KindInsufficientBalance},
		{name: "unknown hotel", amount: 10, hotel: hotelModel.Hotel{}, wantKind: failure.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.hotels.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.hotel, nil)

			if tt.hotel.ID != constant.Empty {
				f.payment.EXPECT().AvailableBalanceTx(gomock.Any(), gomock.Any(), "h-1").Return(tt.available, nil)
			}

			if tt.wantKind == constant.Empty {
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, p model.PayoutRequest) error {
						assert.Equal(t, model.StatusPending, p.Status)
						assert.Equal(t, tt.amount, p.Amount)

						return nil
					})
				f.payment.EXPECT().InvalidateEarnings(gomock.Any(), "h-1")
			}

			res, err := f.svc.Request(context.Background(), "h-1", dto.CreatePayoutRequest{Amount: tt.amount})
			if tt.wantKind != constant.Empty {
				assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StatusPending, res.Status)
		})
	}
}

func TestRequest_NonPositiveAmount(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Request(context.Background(), "h-1", dto.CreatePayoutRequest{Amount: 0})
	assert.True(t, failure.IsKind(err, failure.KindBadRequest), "got %v", err)
}

func TestTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		wantKind failure.Kind
	}{
		{from: model.StatusPending, to: model.StatusApproved},
		{from: model.StatusPending, to: model.StatusRejected},
		{from: model.StatusApproved, to: model.StatusProcessing},
		{from: model.StatusApproved, to: model.StatusPaid},
		{from: model.StatusProcessing, to: model.StatusPaid},
		{from: model.StatusPending, to: model.StatusPaid, wantKind: failure.KindInvalidState},
		{from: model.StatusRejected, to: model.StatusApproved, wantKind: failure.KindInvalidState},
		{from: model.StatusPaid, to: model.StatusProcessing, wantKind: failure.KindInvalidState},
		{from: model.StatusProcessing, to: model.StatusRejected, wantKind: failure.KindInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(model.PayoutRequest{ID: "p-1", HotelID: "h-1", Amount: 100, Status: tt.from}, nil)

			if tt.wantKind == constant.Empty {
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, tt.to, req[model.FieldStatus])

						return nil
					})
				f.payment.EXPECT().InvalidateEarnings(gomock.Any(), "h-1")
			}

			res, err := f.svc.Transition(adminCtx(), "h-1", "p-1", dto.TransitionPayoutRequest{Status: tt.to})
			if tt.wantKind != constant.Empty {
				assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, res.Status)
			assert.Equal(t, "admin-1", res.ReviewedBy)

			if tt.to == model.StatusPaid {
				assert.NotEmpty(t, res.PaidAt)
			}
		})
	}
}

func TestTransition_KeepsEarlierReviewer(t *testing.T) {
	f := newFixture(t)
	reviewer := "admin-0"
	reviewedAt := time.Date(2026, 1, 2, 3, 0, 0, 0, time.UTC)

	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(model.PayoutRequest{ID: "p-1", HotelID: "h-1", Amount: 100, Status: model.StatusApproved,
			ReviewedBy: &reviewer, ReviewedAt: &reviewedAt}, nil)
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.payment.EXPECT().InvalidateEarnings(gomock.Any(), "h-1")

	res, err := f.svc.Transition(adminCtx(), "h-1", "p-1", dto.TransitionPayoutRequest{Status: model.StatusProcessing})
	require.NoError(t, err)
	assert.Equal(t, "admin-0", res.ReviewedBy)
	assert.Empty(t, res.PaidAt)
}

func TestTransition_NotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.PayoutRequest{}, nil)

	_, err := f.svc.Transition(adminCtx(), "h-1", "p-1", dto.TransitionPayoutRequest{Status: model.StatusApproved})
	assert.True(t, failure.IsKind(err, failure.KindNotFound), "got %v", err)
}

func TestGetAll(t *testing.T) {
	f := newFixture(t)
	params := gDto.QueryParams{Page: 1, Limit: 10}

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.PayoutRequest{{ID: "p-1", HotelID: "h-1", Status: model.StatusPending}}, nil)

	res, err := f.svc.GetAll(context.Background(), "h-1", params)
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Payouts, 1)
}

func TestGetAll_CountFails(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

	_, err := f.svc.GetAll(context.Background(), "h-1", gDto.QueryParams{})
	assert.Error(t, err)
}
