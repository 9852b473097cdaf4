package mocks

import (
	"context"

	"github.com/markethub/offers/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Create(ctx context.Context, account *model.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *AccountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *AccountRepository) GetByEmail(email string) (*model.Account, error) {
	args := m.Called(email)
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *AccountRepository) GetUserDetail(ctx context.Context, accountID int64) (*model.UserDetail, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(*model.UserDetail), args.Error(1)
}

func (m *AccountRepository) UpdateBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error {
	args := m.Called(ctx, accountID, balance)
	return args.Error(0)
}

func (m *AccountRepository) UpdateCompanyActive(ctx context.Context, accountID int64, active bool) error {
	args := m.Called(ctx, accountID, active)
	return args.Error(0)
}

func (m *AccountRepository) UpdatePhotoURL(ctx context.Context, accountID int64, url string) error {
	args := m.Called(ctx, accountID, url)
	return args.Error(0)
}
