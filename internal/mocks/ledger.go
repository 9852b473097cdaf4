package mocks

import (
	"context"

	"github.com/markethub/offers/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type Ledger struct {
	mock.Mock
}

func (m *Ledger) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.UserDetail, error) {
	args := m.Called(ctx, accountID, amount)
	return args.Get(0).(*model.UserDetail), args.Error(1)
}

func (m *Ledger) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.UserDetail, error) {
	args := m.Called(ctx, accountID, amount)
	return args.Get(0).(*model.UserDetail), args.Error(1)
}
