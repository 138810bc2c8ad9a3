package booking_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "stayledger/infras/otel/mocks"
	"stayledger/internal/domains/booking/model/dto"
	bookingMocks "stayledger/internal/domains/booking/service/mocks"
	hotelModel "stayledger/internal/domains/hotel/model"
	hotelMocks "stayledger/internal/domains/hotel/service/mocks"
	"stayledger/internal/handlers/booking"
	"stayledger/shared/actor"
	"stayledger/shared/constant"
	"stayledger/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCollectPaymentAPI(t *testing.T) {
	hotelier := actor.Actor{ID: "o-1", Role: constant.RoleHotelier}

	tests := []struct {
		name     string
		body     string
		mock     func(bookings *bookingMocks.MockBooking, hotels *hotelMocks.MockHotel)
		wantCode int
		wantBody string
	}{
		{
			name: "collects the remaining amount",
			body: `{"bookingId":"b-1","hotelId":"h-1"}`,
			mock: func(bookings *bookingMocks.MockBooking, hotels *hotelMocks.MockHotel) {
				hotels.EXPECT().EnsureOwner(gomock.Any(), "h-1", hotelier).Return(hotelModel.Hotel{ID: "h-1"}, nil)
				bookings.EXPECT().CollectPayment(gomock.Any(), dto.Locator{HotelID: "h-1"}, "b-1").Return(int64(4000), nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":true,"amountCollected":4000}`,
		},
		{
			name: "second collection is rejected",
			body: `{"bookingId":"b-1","hotelId":"h-1"}`,
			mock: func(bookings *bookingMocks.MockBooking, hotels *hotelMocks.MockHotel) {
				hotels.EXPECT().EnsureOwner(gomock.Any(), "h-1", hotelier).Return(hotelModel.Hotel{ID: "h-1"}, nil)
				bookings.EXPECT().CollectPayment(gomock.Any(), gomock.Any(), "b-1").
					Return(int64(0), failure.InvalidState("booking b-1 is already paid"))
			},
			wantCode: http.StatusConflict,
			wantBody: `{"success":false,"error":"booking b-1 is already paid"}`,
		},
		{
			name: "foreign hotel never reaches the engine",
			body: `{"bookingId":"b-1","hotelId":"h-2"}`,
			mock: func(_ *bookingMocks.MockBooking, hotels *hotelMocks.MockHotel) {
				hotels.EXPECT().EnsureOwner(gomock.Any(), "h-2", hotelier).Return(hotelModel.Hotel{}, failure.ResourceRestrictedError)
			},
			wantCode: http.StatusForbidden,
			wantBody: `{"success":false,"error":"You don't have permission to access this resource"}`,
		},
		{
			name:     "missing booking id",
			body:     `{"hotelId":"h-1"}`,
			mock:     func(*bookingMocks.MockBooking, *hotelMocks.MockHotel) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"error":"bookingId is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			bookings := bookingMocks.NewMockBooking(ctrl)
			hotels := hotelMocks.NewMockHotel(ctrl)
			tt.mock(bookings, hotels)

			handler := booking.New(bookings, hotels, otelMocks.NewOtel())
			router := chi.NewRouter()
			router.Route("/v1", handler.Router)

			req := httptest.NewRequest(http.MethodPost, "/v1/collect-payment", strings.NewReader(tt.body))
			req = req.WithContext(actor.With(req.Context(), hotelier))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
