package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayledger/infras/otel"
	"stayledger/infras/postgres"
	hotelModel "stayledger/internal/domains/hotel/model"
	hotelRepo "stayledger/internal/domains/hotel/repository"
	paymentService "stayledger/internal/domains/payment/service"
	"stayledger/internal/domains/payout/model"
	"stayledger/internal/domains/payout/model/dto"
	"stayledger/internal/domains/payout/repository"
	"stayledger/shared"
	"stayledger/shared/actor"
	"stayledger/shared/constant"
	gDto "stayledger/shared/dto"
	"stayledger/shared/failure"
	gModel "stayledger/shared/model"
	"stayledger/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Payout interface {
	// Request reserves amount against the hotel's available balance.
	Request(ctx context.Context, hotelID string, req dto.CreatePayoutRequest) (dto.PayoutResponse, error)
	Transition(ctx context.Context, hotelID, payoutID string, req dto.TransitionPayoutRequest) (dto.PayoutResponse, error)
	GetAll(ctx context.Context, hotelID string, params gDto.QueryParams) (dto.GetPayoutsResponse, error)
}

type serviceImpl struct {
	repo      repository.Payout
	hotelRepo hotelRepo.Hotel
	payment   paymentService.Payment
	tx        postgres.Transactor
	otel      otel.Otel
}

func New(
	repo repository.Payout,
	hotelRepo hotelRepo.Hotel,
	payment paymentService.Payment,
	tx postgres.Transactor,
	otel otel.Otel,
) Payout {
	return &serviceImpl{
		repo:      repo,
		hotelRepo: hotelRepo,
		payment:   payment,
		tx:        tx,
		otel:      otel,
	}
}

func (s *serviceImpl) Request(ctx context.Context, hotelID string, req dto.CreatePayoutRequest) (res dto.PayoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payout.Request")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Amount <= 0 {
		return res, failure.BadRequestFromString("amount must be positive")
	}

	payout := model.PayoutRequest{
		ID:       uuid.NewString(),
		HotelID:  hotelID,
		Amount:   req.Amount,
		Status:   model.StatusPending,
		Note:     req.Note,
		Metadata: gModel.NewMetadata(actor.FromContext(ctx).ID, timezone.Now()),
	}

	err = s.tx.WithinTx(ctx, nil, func(sqltx *sqlx.Tx) error {
		// The hotel row lock keeps two requests from reserving the same balance.
		hotel, err := s.hotelRepo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock hotel: %w", err)
		}

		if hotel.ID == constant.Empty {
			return failure.NotFound("hotel not found") // nolint:wrapcheck
		}

		available, err := s.payment.AvailableBalanceTx(ctx, sqltx, hotelID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if payout.Amount > available {
			return failure.InsufficientBalance("payout of %d exceeds available balance %d", payout.Amount, available) // nolint:wrapcheck
		}

		return s.repo.InsertTx(ctx, sqltx, payout) //nolint:wrapcheck
	})
	if err != nil {
		if failure.GetKind(err) == failure.KindInternal {
			log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to request payout")
		}

		return res, err //nolint:wrapcheck
	}

	log.Info().Str("payout_id", payout.ID).Str("hotel_id", hotelID).Int64("amount", payout.Amount).Msg("payout requested")

	s.payment.InvalidateEarnings(ctx, hotelID)

	res.FromModel(payout)

	return res, nil
}

func (s *serviceImpl) Transition(ctx context.Context, hotelID, payoutID string, req dto.TransitionPayoutRequest) (res dto.PayoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payout.Transition")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var payout model.PayoutRequest

	filter := shared.FilterByFields(model.TableName, map[string]any{
		model.FieldID:      payoutID,
		model.FieldHotelID: hotelID,
	})

	err = s.tx.WithinTx(ctx, nil, func(sqltx *sqlx.Tx) error {
		p, err := s.repo.GetForUpdateTx(ctx, sqltx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock payout: %w", err)
		}

		if p.ID == constant.Empty {
			return failure.NotFound("payout request not found") // nolint:wrapcheck
		}

		if !model.CanTransition(p.Status, req.Status) {
			return failure.InvalidState("cannot move payout from %s to %s", p.Status, req.Status) // nolint:wrapcheck
		}

		now := timezone.Now()
		who := actor.FromContext(ctx).ID

		p.Status = req.Status
		p.ModifiedAt = now
		p.ModifiedBy = who

		if req.Note != constant.Empty {
			p.Note = req.Note
		}

		switch req.Status {
		case model.StatusApproved, model.StatusRejected:
			p.ReviewedBy, p.ReviewedAt = &who, &now
		case model.StatusProcessing, model.StatusPaid:
			if req.Status == model.StatusPaid {
				p.PaidAt = &now
			}

			// The first actor past review is the reviewer.
			if p.ReviewedAt == nil {
				p.ReviewedBy, p.ReviewedAt = &who, &now
			}
		}

		payout = p

		return s.repo.UpdateTx(ctx, sqltx, map[string]any{
			model.FieldStatus:        p.Status,
			model.FieldNote:          p.Note,
			model.FieldReviewedBy:    p.ReviewedBy,
			model.FieldReviewedAt:    p.ReviewedAt,
			model.FieldPaidAt:        p.PaidAt,
			constant.FieldModifiedAt: p.ModifiedAt,
			constant.FieldModifiedBy: p.ModifiedBy,
		}, filter) //nolint:wrapcheck
	})
	if err != nil {
		if failure.GetKind(err) == failure.KindInternal {
			log.Error().Err(err).Str("payout_id", payoutID).Msg("failed to transition payout")
		}

		return res, err //nolint:wrapcheck
	}

	log.Info().Str("payout_id", payout.ID).Str("status", payout.Status).Msg("payout transitioned")

	s.payment.InvalidateEarnings(ctx, hotelID)

	res.FromModel(payout)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, hotelID string, params gDto.QueryParams) (res dto.GetPayoutsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payout.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(hotelID, model.FieldHotelID, model.TableName)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to count payouts")

		return res, fmt.Errorf("failed to count payouts: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get payouts")

		return res, fmt.Errorf("failed to get payouts: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}
