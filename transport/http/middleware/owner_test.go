package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "stayledger/infras/otel/mocks"
	"stayledger/internal/domains/hotel/model"
	hotelMocks "stayledger/internal/domains/hotel/service/mocks"
	"stayledger/shared/actor"
	"stayledger/shared/constant"
	"stayledger/shared/failure"
	"stayledger/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHotelOwner(t *testing.T) {
	hotelier := actor.Actor{ID: "o-1", Role: constant.RoleHotelier}

	tests := []struct {
		name       string
		ownerErr   error
		wantCode   int
		wantCalled bool
	}{
		{
			name:       "owner passes through",
			wantCode:   http.StatusOK,
			wantCalled: true,
		},
		{
			name:     "foreign hotel is forbidden",
			ownerErr: failure.ResourceRestrictedError,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "unknown hotel",
			ownerErr: failure.NotFound("hotel"),
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			hotels := hotelMocks.NewMockHotel(ctrl)
			hotels.EXPECT().
				EnsureOwner(gomock.Any(), "h-1", hotelier).
				Return(model.Hotel{ID: "h-1", OwnerID: hotelier.ID}, tt.ownerErr)

			called := false
			router := chi.NewRouter()
			router.Route("/v1/hotels/{hotelID}", func(r chi.Router) {
				r.Use(middleware.NewOwnershipMiddleware(hotels, otelMocks.NewOtel()).HotelOwner)
				r.Get("/x", func(w http.ResponseWriter, _ *http.Request) {
					called = true
					w.WriteHeader(http.StatusOK)
				})
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/hotels/h-1/x", nil)
			req = req.WithContext(actor.With(req.Context(), hotelier))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}
