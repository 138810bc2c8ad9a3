package router

import (
	"stayledger/internal/handlers/booking"
	"stayledger/internal/handlers/channel"
	"stayledger/internal/handlers/inventory"
	"stayledger/internal/handlers/payout"
	"stayledger/internal/handlers/room"
	"stayledger/internal/handlers/user"
	"stayledger/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	User      user.Handler
	Room      room.Handler
	Inventory inventory.Handler
	Booking   booking.Handler
	Channel   channel.Handler
	Payout    payout.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Ownership      middleware.Ownership
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)

		routerGroup.Route("/hotels/{hotelID}", func(hotelGroup chi.Router) {
			hotelGroup.Use(r.Ownership.HotelOwner)

			r.DomainHandlers.Room.Router(hotelGroup)
			r.DomainHandlers.Inventory.Router(hotelGroup)
			r.DomainHandlers.Booking.HotelRouter(hotelGroup)
			r.DomainHandlers.Channel.Router(hotelGroup)
			r.DomainHandlers.Payout.Router(hotelGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, ownership middleware.Ownership) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Ownership:      ownership,
	}
}
