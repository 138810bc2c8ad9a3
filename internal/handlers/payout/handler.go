package payout

import (
	"net/http"

	"stayledger/infras/otel"
	paymentService "stayledger/internal/domains/payment/service"
	"stayledger/internal/domains/payout/model/dto"
	"stayledger/internal/domains/payout/service"
	"stayledger/shared/constant"
	gDto "stayledger/shared/dto"
	"stayledger/shared/validator"
	"stayledger/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payout
	payment paymentService.Payment
	otel    otel.Otel
}

func New(service service.Payout, payment paymentService.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		payment: payment,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/earnings", handler.GetEarnings)

	router.Route("/payouts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPayouts)
		routerGroup.Post("/", handler.RequestPayout)
		routerGroup.Patch("/{id}", handler.TransitionPayout)
	})
}

// GetEarnings returns the hotel's derived revenue and balance figures.
// @Summary Get hotel earnings
// @Tags Payout
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Success 200 {object} response.Data[model.Earnings]
// @Failure 403 {object} response.Error
// @Router /v1/hotels/{hotelID}/earnings [get]
// @Security BearerAuth
func (handler *Handler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEarnings")
	defer scope.End()

	earnings, err := handler.payment.Earnings(ctx, chi.URLParam(r, constant.RequestParamHotelID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get earnings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, earnings)
}

// GetPayouts lists the hotel's payout requests.
// @Summary List payout requests
// @Tags Payout
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPayoutsResponse]
// @Router /v1/hotels/{hotelID}/payouts [get]
// @Security BearerAuth
func (handler *Handler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayouts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	payouts, err := handler.service.GetAll(ctx, chi.URLParam(r, constant.RequestParamHotelID), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payouts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, payouts)
}

// RequestPayout reserves an amount against the available balance.
// @Summary Request a payout
// @Tags Payout
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param request body dto.CreatePayoutRequest true "Create Payout Request"
// @Success 201 {object} response.Data[dto.PayoutResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/hotels/{hotelID}/payouts [post]
// @Security BearerAuth
func (handler *Handler) RequestPayout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestPayout")
	defer scope.End()

	req := dto.CreatePayoutRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	payout, err := handler.service.Request(ctx, chi.URLParam(r, constant.RequestParamHotelID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("amount", req.Amount).Msg("failed to request payout")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payout requested " + payout.ID)

	response.WithJSON(w, http.StatusCreated, payout)
}

// TransitionPayout moves a payout through review. Admin only.
// @Summary Review a payout request
// @Tags Payout
// @Accept json
// @Produce json
// @Param hotelID path string true "Hotel ID"
// @Param id path string true "Payout ID"
// @Param request body dto.TransitionPayoutRequest true "Transition Payout Request"
// @Success 200 {object} response.Data[dto.PayoutResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/hotels/{hotelID}/payouts/{id} [patch]
// @Security BearerAuth
func (handler *Handler) TransitionPayout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TransitionPayout")
	defer scope.End()

	req := dto.TransitionPayoutRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	payout, err := handler.service.Transition(ctx, chi.URLParam(r, constant.RequestParamHotelID), chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("status", req.Status).Msg("failed to transition payout")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, payout)
}
