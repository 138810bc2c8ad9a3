package middleware

import (
	"net/http"

	"stayledger/infras/otel"
	hotelService "stayledger/internal/domains/hotel/service"
	"stayledger/shared/actor"
	"stayledger/shared/constant"
	"stayledger/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// Ownership guards every /hotels/{hotelID} route: the actor must own the hotel unless admin or system.
type Ownership interface {
	HotelOwner(next http.Handler) http.Handler
}

type ownershipImpl struct {
	hotels hotelService.Hotel
	otel   otel.Otel
}

func NewOwnershipMiddleware(hotels hotelService.Hotel, otel otel.Otel) Ownership {
	return &ownershipImpl{
		hotels: hotels,
		otel:   otel,
	}
}

func (m *ownershipImpl) HotelOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "owner.middleware")

		hotelID := chi.URLParam(request, constant.RequestParamHotelID)
		scope.SetAttribute("hotel.id", hotelID)

		if _, err := m.hotels.EnsureOwner(ctx, hotelID, actor.FromContext(ctx)); err != nil {
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
