package service

import (
	"context"
	"errors"

	"github.com/markethub/offers/internal/constants"
	"github.com/markethub/offers/internal/model"
	"github.com/markethub/offers/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ledger is the only path that mutates user balances. It never commits: both
// operations run on whatever transaction the caller carries in ctx, so the
// caller owns the unit-of-work boundary.
type Ledger interface {
	Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.UserDetail, error)
	Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.UserDetail, error)
}

type ledger struct {
	accounts repository.AccountRepository
	logger   *zap.Logger
}

func NewLedger(accounts repository.AccountRepository, logger *zap.Logger) Ledger {
	return &ledger{accounts: accounts, logger: logger}
}

func (l *ledger) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.UserDetail, error) {
	if amount.Sign() <= 0 {
		return nil, NewServiceError(constants.ErrCodeInvalidAmount, ErrInvalidAmount)
	}

	detail, err := l.loadDetail(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := l.accounts.UpdateBalance(ctx, accountID, detail.Balance.Add(amount)); err != nil {
		l.logger.Error("error updating balance on deposit",
			zap.Int64("accountID", accountID),
			zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	after, err := l.verifyDelta(ctx, accountID, detail.Balance, amount)
	if err != nil {
		l.logger.Error("deposit delta mismatch",
			zap.Int64("accountID", accountID),
			zap.String("amount", amount.String()),
			zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeDepositInconsistency, err)
	}

	return after, nil
}

func (l *ledger) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.UserDetail, error) {
	if amount.Sign() <= 0 {
		return nil, NewServiceError(constants.ErrCodeInvalidAmount, ErrInvalidAmount)
	}

	detail, err := l.loadDetail(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if detail.Balance.LessThan(amount) {
		return nil, NewServiceError(constants.ErrCodeInsufficientBalance, ErrInsufficientFunds)
	}

	if err := l.accounts.UpdateBalance(ctx, accountID, detail.Balance.Sub(amount)); err != nil {
		l.logger.Error("error updating balance on withdraw",
			zap.Int64("accountID", accountID),
			zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	after, err := l.verifyDelta(ctx, accountID, detail.Balance, amount.Neg())
	if err != nil {
		l.logger.Error("withdraw delta mismatch",
			zap.Int64("accountID", accountID),
			zap.String("amount", amount.String()),
			zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeWithdrawInconsistency, err)
	}

	return after, nil
}

func (l *ledger) loadDetail(ctx context.Context, accountID int64) (*model.UserDetail, error) {
	detail, err := l.accounts.GetUserDetail(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrUserDetailNotFound) {
			return nil, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return detail, nil
}

// verifyDelta re-reads the detail row through the in-flight transaction and
// checks the observed change against the intended one. A mismatch means a
// concurrent writer got between the read and the update.
func (l *ledger) verifyDelta(ctx context.Context, accountID int64, before, delta decimal.Decimal) (*model.UserDetail, error) {
	after, err := l.accounts.GetUserDetail(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !after.Balance.Sub(before).Equal(delta) {
		return nil, ErrInconsistency
	}

	return after, nil
}
