package booking

import (
	"context"
	"net/http"

	"stayledger/infras/otel"
	"stayledger/internal/domains/booking/model"
	"stayledger/internal/domains/booking/model/dto"
	"stayledger/internal/domains/booking/service"
	hotelService "stayledger/internal/domains/hotel/service"
	"stayledger/shared/actor"
	"stayledger/shared/constant"
	gDto "stayledger/shared/dto"
	"stayledger/shared/validator"
	"stayledger/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	hotels  hotelService.Hotel
	otel    otel.Otel
}

func New(service service.Booking, hotels hotelService.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		hotels:  hotels,
		otel:    otel,
	}
}

// Router mounts the guest facing routes.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/quotes", handler.Quote)
	router.Post("/collect-payment", handler.CollectPaymentAPI)

	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDirect)
		routerGroup.Get("/{id}", handler.GetMyBooking)
		routerGroup.Post("/{id}/cancel", handler.CancelMyBooking)
	})
}

// HotelRouter mounts the front desk routes under /hotels/{hotelID}.
func (handler *Handler) HotelRouter(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/walk-in", handler.CreateWalkIn)
		routerGroup.Get("/{id}", handler.GetBooking)
		routerGroup.Get("/{id}/activities", handler.GetActivities)
		routerGroup.Post("/{id}/confirm", handler.Confirm)
		routerGroup.Post("/{id}/check-in", handler.CheckIn)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)
		routerGroup.Post("/{id}/extend", handler.Extend)
		routerGroup.Post("/{id}/no-show", handler.NoShow)
		routerGroup.Post("/{id}/cancel", handler.Cancel)
		routerGroup.Post("/{id}/advance-paid", handler.RecordAdvancePayment)
		routerGroup.Post("/{id}/collect-payment", handler.CollectPayment)
	})
}

func hotelLocator(r *http.Request) dto.Locator {
	return dto.Locator{HotelID: chi.URLParam(r, constant.RequestParamHotelID)}
}

func guestLocator(ctx context.Context) dto.Locator {
	return dto.Locator{UserID: actor.FromContext(ctx).ID}
}

// CreateDirect books a room for the authenticated guest.
// @Summary Create a direct booking
// @Description Book a room through the platform. Pay-at-hotel bookings need an advance unless the wallet covers it.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateDirectRequest true "Create Direct Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateDirect(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDirect")
	defer scope.End()

	req := dto.CreateDirectRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.CreateDirect(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created " + booking.ID)

	response.WithJSON(w, http.StatusCreated, booking)
}

// CreateWalkIn registers a guest at the front desk.
// @Summary Create a walk-in booking
// @Description Register a walk-in guest. The fraud guard rejects stays overlapping platform bookings for the room or the phone.
// @Tags Booking
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param request body dto.CreateWalkInRequest true "Create Walk-in Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/walk-in [post]
// @Security BearerAuth
func (handler *Handler) CreateWalkIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateWalkIn")
	defer scope.End()

	req := dto.CreateWalkInRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.CreateWalkIn(ctx, chi.URLParam(r, constant.RequestParamHotelID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create walk-in booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Walk-in booking created " + booking.ID)

	response.WithJSON(w, http.StatusCreated, booking)
}

// Quote prices a stay without booking it.
// @Summary Quote a stay
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/quotes [post]
// @Security BearerAuth
func (handler *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	req := dto.QuoteRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote stay")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quote)
}

// GetBookings lists the hotel's bookings.
// @Summary List hotel bookings
// @Tags Booking
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param booking_source query string false "Filter by booking source"
// @Param room_id query string false "Filter by room ID"
// @Param from query string false "Stays touching this date onwards (YYYY-MM-DD)"
// @Param to query string false "Stays touching this date at most (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filter := dto.ListFilter{
		Status: query.Get(model.FieldStatus),
		Source: query.Get(model.FieldBookingSource),
		RoomID: query.Get(model.FieldRoomID),
		From:   query.Get(constant.RequestParamFrom),
		To:     query.Get(constant.RequestParamTo),
	}

	bookings, err := handler.service.GetAll(ctx, chi.URLParam(r, constant.RequestParamHotelID), queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBooking is the scanner lookup: booking by ID within the hotel.
// @Summary Get a hotel booking
// @Tags Booking
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	booking, err := handler.service.Get(ctx, hotelLocator(r), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// GetMyBooking returns one of the guest's own bookings.
// @Summary Get my booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetMyBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBooking")
	defer scope.End()

	booking, err := handler.service.Get(ctx, guestLocator(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// GetActivities returns the audit trail of a booking.
// @Summary Get booking activities
// @Tags Booking
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[[]dto.ActivityResponse]
// @Failure 404 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id}/activities [get]
// @Security BearerAuth
func (handler *Handler) GetActivities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivities")
	defer scope.End()

	activities, err := handler.service.GetActivities(ctx, hotelLocator(r), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking activities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, activities)
}

type transitionFunc func(ctx context.Context, loc dto.Locator, bookingID string) (dto.BookingResponse, error)

func (handler *Handler) transition(w http.ResponseWriter, r *http.Request, name string, fn transitionFunc) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	scope.SetAttribute("booking.id", id)

	booking, err := fn(ctx, hotelLocator(r), id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msgf("failed to %s booking", name)

		response.WithError(w, err)

		return
	}

	scope.AddEvent(name + " " + booking.Status)

	response.WithJSON(w, http.StatusOK, booking)
}

// Confirm moves a pending booking to confirmed.
// @Summary Confirm a booking
// @Tags Booking
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id}/confirm [post]
// @Security BearerAuth
func (handler *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "Confirm", handler.service.Confirm)
}

// CheckIn marks the guest as arrived.
// @Summary Check in a booking
// @Tags Booking
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CheckIn", handler.service.CheckIn)
}

// CheckOut closes the stay and releases the ledger.
// @Summary Check out a booking
// @Tags Booking
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CheckOut", handler.service.CheckOut)
}

// NoShow forfeits the advance and releases the ledger.
// @Summary Mark a booking as no-show
// @Tags Booking
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id}/no-show [post]
// @Security BearerAuth
func (handler *Handler) NoShow(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "NoShow", handler.service.NoShow)
}

// RecordAdvancePayment settles the booking fee once the payment step succeeded.
// @Summary Record the advance payment
// @Tags Booking
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id}/advance-paid [post]
// @Security BearerAuth
func (handler *Handler) RecordAdvancePayment(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "RecordAdvancePayment", handler.service.RecordAdvancePayment)
}

// Extend lengthens a checked-in stay.
// @Summary Extend a stay
// @Tags Booking
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Param request body dto.ExtendRequest true "Extend Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id}/extend [post]
// @Security BearerAuth
func (handler *Handler) Extend(w http.ResponseWriter, r *http.Request) {
	req := dto.ExtendRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	handler.transition(w, r, "Extend", func(ctx context.Context, loc dto.Locator, id string) (dto.BookingResponse, error) {
		return handler.service.Extend(ctx, loc, id, req.Nights)
	})
}

// Cancel cancels a pending or confirmed booking on behalf of the hotel.
// @Summary Cancel a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Param request body dto.CancelRequest true "Cancel Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/hotels/{hotelID}/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	req := dto.CancelRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	handler.transition(w, r, "Cancel", func(ctx context.Context, loc dto.Locator, id string) (dto.BookingResponse, error) {
		return handler.service.Cancel(ctx, loc, id, req)
	})
}

// CancelMyBooking lets the guest cancel their own booking.
// @Summary Cancel my booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CancelRequest false "Cancel Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelMyBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelMyBooking")
	defer scope.End()

	req := dto.CancelRequest{}
	if r.ContentLength > 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			response.WithError(w, err)

			return
		}
	}

	booking, err := handler.service.Cancel(ctx, guestLocator(ctx), chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// CollectPayment settles the remaining amount at the desk.
// @Summary Collect the remaining payment
// @Tags Booking
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.CollectPaymentResponse
// @Failure 409 {object} dto.CollectPaymentResponse
// @Router /v1/hotels/{hotelID}/bookings/{id}/collect-payment [post]
// @Security BearerAuth
func (handler *Handler) CollectPayment(w http.ResponseWriter, r *http.Request) {
	handler.collect(w, r, hotelLocator(r), chi.URLParam(r, constant.RequestParamID))
}

// CollectPaymentAPI is the flat collection endpoint used by the scanner surface.
// @Summary Collect the remaining payment
// @Description Returns {success, error?, amountCollected?}. A second call for the same booking is rejected.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CollectPaymentRequest true "Collect Payment Request"
// @Success 200 {object} dto.CollectPaymentResponse
// @Failure 400 {object} dto.CollectPaymentResponse
// @Failure 409 {object} dto.CollectPaymentResponse
// @Router /v1/collect-payment [post]
// @Security BearerAuth
func (handler *Handler) CollectPaymentAPI(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CollectPaymentAPI")
	defer scope.End()

	req := dto.CollectPaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithBody(w, err, dto.CollectPaymentResponse{Error: err.Error()})

		return
	}

	if _, err := handler.hotels.EnsureOwner(ctx, req.HotelID, actor.FromContext(ctx)); err != nil {
		scope.TraceError(err)

		response.WithBody(w, err, dto.CollectPaymentResponse{Error: err.Error()})

		return
	}

	handler.collect(w, r.WithContext(ctx), dto.Locator{HotelID: req.HotelID}, req.BookingID)
}

func (handler *Handler) collect(w http.ResponseWriter, r *http.Request, loc dto.Locator, bookingID string) {
	ctx := r.Context()

	amount, err := handler.service.CollectPayment(ctx, loc, bookingID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to collect payment")

		response.WithBody(w, err, dto.CollectPaymentResponse{Error: err.Error()})

		return
	}

	response.WithBody(w, nil, dto.CollectPaymentResponse{Success: true, AmountCollected: &amount})
}
