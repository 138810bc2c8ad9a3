package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayledger/config"
	"stayledger/infras/otel"
	"stayledger/internal/domains/fraud/model"
	"stayledger/internal/domains/fraud/repository"
	userRepo "stayledger/internal/domains/user/repository"
	"stayledger/shared/constant"
	"stayledger/shared/failure"
	"stayledger/shared/phone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Guard runs the pre-commit walk-in checks and the post-no-show trust adjustment.
type Guard interface {
	NormalizePhone(raw string) (string, error)
	// CheckWalkInTx returns FraudRejected naming the rule that fired.
	CheckWalkInTx(ctx context.Context, sqltx *sqlx.Tx, in model.WalkInCheck) error
	ApplyNoShowTx(ctx context.Context, sqltx *sqlx.Tx, userID string) error
}

type serviceImpl struct {
	repo     repository.Fraud
	userRepo userRepo.User
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Fraud, userRepo userRepo.User, cfg *config.Config, otel otel.Otel) Guard {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) NormalizePhone(raw string) (string, error) {
	return phone.Normalize(raw, s.cfg.Booking.PhoneRegion) //nolint:wrapcheck
}

func (s *serviceImpl) CheckWalkInTx(ctx context.Context, sqltx *sqlx.Tx, in model.WalkInCheck) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fraud.CheckWalkInTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	onRoom, err := s.repo.PlatformBookingOnRoomTx(ctx, sqltx, in.RoomID, in.Range)
	if err != nil {
		return fmt.Errorf("failed to check platform bookings on room: %w", err)
	}

	if onRoom {
		log.Warn().Str("rule", model.RulePlatformBookingOnRoom).Str("room_id", in.RoomID).Str("range", in.Range.String()).
			Msg("walk-in rejected")

		return failure.FraudRejected("%s: room already has a platform booking in %s", model.RulePlatformBookingOnRoom, in.Range) // nolint:wrapcheck
	}

	if in.Phone == constant.Empty {
		return nil
	}

	samePhone, err := s.repo.PlatformBookingForPhoneTx(ctx, sqltx, in.HotelID, in.Phone, in.Range)
	if err != nil {
		return fmt.Errorf("failed to check platform bookings for guest phone: %w", err)
	}

	if samePhone {
		log.Warn().Str("rule", model.RuleDuplicateGuestPhone).Str("hotel_id", in.HotelID).Str("range", in.Range.String()).
			Msg("walk-in rejected")

		return failure.FraudRejected("%s: guest has a platform booking in %s", model.RuleDuplicateGuestPhone, in.Range) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) ApplyNoShowTx(ctx context.Context, sqltx *sqlx.Tx, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fraud.ApplyNoShowTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.userRepo.ApplyNoShowPenaltyTx(ctx, sqltx, userID, s.cfg.Booking.NoShowTrustPenalty, s.cfg.Booking.PayAtHotelRevokeAfter)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to apply no-show penalty")

		return fmt.Errorf("failed to apply no-show penalty: %w", err)
	}

	return nil
}
