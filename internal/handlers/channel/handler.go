package channel

import (
	"net/http"

	"stayledger/infras/otel"
	"stayledger/internal/domains/channel/model/dto"
	"stayledger/internal/domains/channel/service"
	"stayledger/shared/constant"
	gDto "stayledger/shared/dto"
	"stayledger/shared/validator"
	"stayledger/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Channel
	otel    otel.Otel
}

func New(service service.Channel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/channels", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetConnections)
		routerGroup.Post("/", handler.Connect)
		routerGroup.Post("/sync", handler.SyncHotel)
		routerGroup.Get("/conflicts", handler.GetConflicts)
		routerGroup.Post("/conflicts/{id}/resolve", handler.ResolveConflict)
		routerGroup.Delete("/{connectionID}", handler.Disconnect)
		routerGroup.Get("/{connectionID}/mappings", handler.GetMappings)
		routerGroup.Put("/{connectionID}/mappings", handler.ReplaceMappings)
		routerGroup.Post("/{connectionID}/sync", handler.Sync)
	})
}

// Connect links the hotel to an OTA account, replacing the credentials of an existing link.
// @Summary Connect a channel
// @Tags Channel
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param request body dto.ConnectRequest true "Connect Request"
// @Success 201 {object} response.Data[dto.ConnectionResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/hotels/{hotelID}/channels [post]
// @Security BearerAuth
func (handler *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Connect")
	defer scope.End()

	req := dto.ConnectRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	conn, err := handler.service.Connect(ctx, chi.URLParam(r, constant.RequestParamHotelID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("channel", req.Channel).Msg("failed to connect channel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Channel connected " + conn.ID)

	response.WithJSON(w, http.StatusCreated, conn)
}

// GetConnections lists the hotel's channel links with their sync state.
// @Summary List channel connections
// @Tags Channel
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Success 200 {object} response.Data[[]dto.ConnectionResponse]
// @Router /v1/hotels/{hotelID}/channels [get]
// @Security BearerAuth
func (handler *Handler) GetConnections(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConnections")
	defer scope.End()

	conns, err := handler.service.GetAll(ctx, chi.URLParam(r, constant.RequestParamHotelID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get channel connections")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, conns)
}

// Disconnect deactivates a channel link. Imported bookings stay.
// @Summary Disconnect a channel
// @Tags Channel
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param connectionID path string true "Connection ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/hotels/{hotelID}/channels/{connectionID} [delete]
// @Security BearerAuth
func (handler *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Disconnect")
	defer scope.End()

	err := handler.service.Disconnect(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamConnectionID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to disconnect channel")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Channel disconnected successfully")
}

// GetMappings returns the local room to OTA room type mapping.
// @Summary Get room mappings
// @Tags Channel
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param connectionID path string true "Connection ID"
// @Success 200 {object} response.Data[[]dto.MappingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/hotels/{hotelID}/channels/{connectionID}/mappings [get]
// @Security BearerAuth
func (handler *Handler) GetMappings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMappings")
	defer scope.End()

	mappings, err := handler.service.GetMappings(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamConnectionID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, mappings)
}

// ReplaceMappings swaps the whole mapping set in one transaction.
// @Summary Replace room mappings
// @Tags Channel
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param connectionID path string true "Connection ID"
// @Param request body dto.ReplaceMappingsRequest true "Replace Mappings Request"
// @Success 200 {object} response.Data[[]dto.MappingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/hotels/{hotelID}/channels/{connectionID}/mappings [put]
// @Security BearerAuth
func (handler *Handler) ReplaceMappings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplaceMappings")
	defer scope.End()

	req := dto.ReplaceMappingsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	mappings, err := handler.service.ReplaceMappings(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamConnectionID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to replace mappings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, mappings)
}

// Sync queues a push or pull for one connection.
// @Summary Queue a channel sync
// @Tags Channel
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param connectionID path string true "Connection ID"
// @Param request body dto.SyncRequest true "Sync Request"
// @Success 202 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/hotels/{hotelID}/channels/{connectionID}/sync [post]
// @Security BearerAuth
func (handler *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Sync")
	defer scope.End()

	req := dto.SyncRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	connectionID := chi.URLParam(r, constant.RequestParamConnectionID)

	if err := handler.service.EnqueueSync(ctx, chi.URLParam(r, constant.RequestParamHotelID), connectionID, req.Kind); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("connection_id", connectionID).Msg("failed to queue sync")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusAccepted, "Sync queued")
}

// SyncHotel queues a sync of every active connection of the hotel.
// @Summary Queue a sync of all channels
// @Tags Channel
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param request body dto.SyncRequest true "Sync Request"
// @Success 202 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/hotels/{hotelID}/channels/sync [post]
// @Security BearerAuth
func (handler *Handler) SyncHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncHotel")
	defer scope.End()

	req := dto.SyncRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.EnqueueForHotel(ctx, chi.URLParam(r, constant.RequestParamHotelID), req.Kind); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to queue hotel sync")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusAccepted, "Sync queued")
}

// GetConflicts lists reservations the pull could not import.
// @Summary List import conflicts
// @Tags Channel
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param status query string false "OPEN or RESOLVED"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetConflictsResponse]
// @Router /v1/hotels/{hotelID}/channels/conflicts [get]
// @Security BearerAuth
func (handler *Handler) GetConflicts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConflicts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(constant.RequestParamStatus)

	conflicts, err := handler.service.ListConflicts(ctx, chi.URLParam(r, constant.RequestParamHotelID), status, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list conflicts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, conflicts)
}

// ResolveConflict closes a conflict after the hotel handled it by hand.
// @Summary Resolve an import conflict
// @Tags Channel
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Conflict ID"
// @Param request body dto.ResolveConflictRequest true "Resolve Conflict Request"
// @Success 200 {object} response.Data[dto.ConflictResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/hotels/{hotelID}/channels/conflicts/{id}/resolve [post]
// @Security BearerAuth
func (handler *Handler) ResolveConflict(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResolveConflict")
	defer scope.End()

	req := dto.ResolveConflictRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	conflict, err := handler.service.ResolveConflict(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve conflict")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, conflict)
}
