package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayledger/infras/otel"
	"stayledger/infras/postgres"
	"stayledger/internal/domains/user/model"
	"stayledger/shared/constant"
	gDto "stayledger/shared/dto"
	"stayledger/shared/failure"
	"stayledger/shared/logger"
	gRepo "stayledger/shared/repository"
	"stayledger/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type User interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.User, error)
	// ApplyNoShowPenaltyTx lowers the trust score (floor 0), counts the no-show and
	// revokes pay-at-hotel once the count reaches revokeAfter.
	ApplyNoShowPenaltyTx(ctx context.Context, sqltx *sqlx.Tx, userID string, penalty, revokeAfter int) error
	// AwardLoyaltyTx adds points to both balances and recomputes the tier from lifetime points.
	AwardLoyaltyTx(ctx context.Context, sqltx *sqlx.Tx, userID string, points int64) error
	// DebitWalletTx fails with InsufficientBalance when the balance is below amount.
	DebitWalletTx(ctx context.Context, sqltx *sqlx.Tx, userID string, amount int64) error
	CreditWalletTx(ctx context.Context, sqltx *sqlx.Tx, userID string, amount int64) error
}

const queryApplyNoShowPenalty = `UPDATE users SET
	trust_score = GREATEST(trust_score - :penalty, 0),
	late_cancellation_count = late_cancellation_count + 1,
	pay_at_hotel_allowed = pay_at_hotel_allowed AND late_cancellation_count + 1 < :revoke_after,
	modified_at = :modified_at,
	modified_by = :modified_by
WHERE id = :id`

const queryAwardLoyalty = `UPDATE users SET
	loyalty_points = loyalty_points + :points,
	lifetime_points = lifetime_points + :points,
	tier = CASE
		WHEN lifetime_points + :points >= :platinum THEN 'PLATINUM'
		WHEN lifetime_points + :points >= :gold THEN 'GOLD'
		WHEN lifetime_points + :points >= :silver THEN 'SILVER'
		ELSE 'BRONZE'
	END,
	modified_at = :modified_at,
	modified_by = :modified_by
WHERE id = :id`

const queryDebitWallet = `UPDATE users SET
	wallet_balance = wallet_balance - :amount,
	modified_at = :modified_at,
	modified_by = :modified_by
WHERE id = :id AND wallet_balance >= :amount`

const queryCreditWallet = `UPDATE users SET
	wallet_balance = wallet_balance + :amount,
	modified_at = :modified_at,
	modified_by = :modified_by
WHERE id = :id`

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) ApplyNoShowPenaltyTx(ctx context.Context, sqltx *sqlx.Tx, userID string, penalty, revokeAfter int) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.ApplyNoShowPenaltyTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryApplyNoShowPenalty)

	_, err := sqltx.NamedExecContext(ctx, queryApplyNoShowPenalty, map[string]any{
		"id":           userID,
		"penalty":      penalty,
		"revoke_after": revokeAfter,
		"modified_at":  timezone.Now(),
		"modified_by":  constant.RoleSystem,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to apply no-show penalty (%s): %w", userID, err)
	}

	return nil
}

func (r *repositoryImpl) AwardLoyaltyTx(ctx context.Context, sqltx *sqlx.Tx, userID string, points int64) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.AwardLoyaltyTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryAwardLoyalty)

	_, err := sqltx.NamedExecContext(ctx, queryAwardLoyalty, map[string]any{
		"id":          userID,
		"points":      points,
		"platinum":    model.PlatinumThreshold,
		"gold":        model.GoldThreshold,
		"silver":      model.SilverThreshold,
		"modified_at": timezone.Now(),
		"modified_by": constant.RoleSystem,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to award loyalty points (%s): %w", userID, err)
	}

	return nil
}

func (r *repositoryImpl) DebitWalletTx(ctx context.Context, sqltx *sqlx.Tx, userID string, amount int64) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.DebitWalletTx")
	defer scope.End()

	if amount <= 0 {
		return nil
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryDebitWallet)

	res, err := sqltx.NamedExecContext(ctx, queryDebitWallet, map[string]any{
		"id":          userID,
		"amount":      amount,
		"modified_at": timezone.Now(),
		"modified_by": userID,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to debit wallet (%s): %w", userID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read debited rows (%s): %w", userID, err)
	}

	if affected == 0 {
		return failure.InsufficientBalance("wallet balance is below %d", amount) // nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) CreditWalletTx(ctx context.Context, sqltx *sqlx.Tx, userID string, amount int64) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.CreditWalletTx")
	defer scope.End()

	if amount <= 0 {
		return nil
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCreditWallet)

	res, err := sqltx.NamedExecContext(ctx, queryCreditWallet, map[string]any{
		"id":          userID,
		"amount":      amount,
		"modified_at": timezone.Now(),
		"modified_by": constant.RoleSystem,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to credit wallet (%s): %w", userID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read credited rows (%s): %w", userID, err)
	}

	if affected == 0 {
		return failure.NotFound("user") // nolint:wrapcheck
	}

	return nil
}
