package inventory

import (
	"context"
	"net/http"

	"stayledger/infras/otel"
	"stayledger/internal/domains/inventory/model/dto"
	"stayledger/internal/domains/inventory/service"
	roomService "stayledger/internal/domains/room/service"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	"stayledger/shared/validator"
	"stayledger/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inventory
	rooms   roomService.Room
	otel    otel.Otel
}

func New(service service.Inventory, rooms roomService.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		rooms:   rooms,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms/{roomID}/inventory", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAvailability)
		routerGroup.Post("/block", handler.Block)
		routerGroup.Delete("/block", handler.Unblock)
		routerGroup.Post("/rebuild", handler.Rebuild)
	})
}

// room resolves {roomID} within {hotelID} so a hotel never touches another hotel's ledger.
func (handler *Handler) room(ctx context.Context, r *http.Request) (string, error) {
	room, err := handler.rooms.GetForHotel(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamRoomID))
	if err != nil {
		return constant.Empty, err
	}

	return room.ID, nil
}

func queryRange(r *http.Request) (daterange.Range, error) {
	req := dto.RangeRequest{
		CheckIn:  r.URL.Query().Get("check_in"),
		CheckOut: r.URL.Query().Get("check_out"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return daterange.Range{}, err
	}

	return req.ToRange()
}

// GetAvailability returns the day-by-day ledger for a room.
// @Summary Get room availability
// @Tags Inventory
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param roomID path string true "Room ID"
// @Param check_in query string true "First night (YYYY-MM-DD)"
// @Param check_out query string true "Departure day, exclusive (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/hotels/{hotelID}/rooms/{roomID}/inventory [get]
// @Security BearerAuth
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	dates, err := queryRange(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	roomID, err := handler.room(ctx, r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	days, err := handler.service.Availability(ctx, roomID, dates)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.AvailabilityResponse{RoomID: roomID, Days: days})
}

// Block takes a room out of sale for maintenance.
// @Summary Block room dates
// @Tags Inventory
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param roomID path string true "Room ID"
// @Param request body dto.BlockRequest true "Block Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/hotels/{hotelID}/rooms/{roomID}/inventory/block [post]
// @Security BearerAuth
func (handler *Handler) Block(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Block")
	defer scope.End()

	req := dto.BlockRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	dates, err := req.ToRange()
	if err != nil {
		response.WithError(w, err)

		return
	}

	roomID, err := handler.room(ctx, r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Block(ctx, roomID, dates, req.Note); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to block room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room blocked " + dates.String())

	response.WithMessage(w, http.StatusOK, "Room blocked successfully")
}

// Unblock returns blocked dates to sale.
// @Summary Unblock room dates
// @Tags Inventory
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param roomID path string true "Room ID"
// @Param check_in query string true "First night (YYYY-MM-DD)"
// @Param check_out query string true "Departure day, exclusive (YYYY-MM-DD)"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/hotels/{hotelID}/rooms/{roomID}/inventory/block [delete]
// @Security BearerAuth
func (handler *Handler) Unblock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Unblock")
	defer scope.End()

	dates, err := queryRange(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	roomID, err := handler.room(ctx, r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Unblock(ctx, roomID, dates); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to unblock room")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room unblocked successfully")
}

// Rebuild recomputes the ledger from the room's bookings.
// @Summary Rebuild the room ledger
// @Tags Inventory
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param roomID path string true "Room ID"
// @Param request body dto.RangeRequest true "Range Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/hotels/{hotelID}/rooms/{roomID}/inventory/rebuild [post]
// @Security BearerAuth
func (handler *Handler) Rebuild(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Rebuild")
	defer scope.End()

	req := dto.RangeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	dates, err := req.ToRange()
	if err != nil {
		response.WithError(w, err)

		return
	}

	roomID, err := handler.room(ctx, r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Rebuild(ctx, roomID, dates); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to rebuild ledger")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Ledger rebuilt successfully")
}
