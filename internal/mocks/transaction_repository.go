package mocks

import (
	"context"

	"github.com/markethub/offers/internal/model"
	"github.com/stretchr/testify/mock"
)

type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Create(ctx context.Context, transaction *model.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *TransactionRepository) GetByID(ctx context.Context, id int64) (*model.Transaction, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *TransactionRepository) GetByOfferID(ctx context.Context, offerID int64) ([]model.Transaction, error) {
	args := m.Called(ctx, offerID)
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *TransactionRepository) GetByUserID(userID int64, limit, offset int) ([]model.Transaction, error) {
	args := m.Called(userID, limit, offset)
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *TransactionRepository) CountByUserID(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *TransactionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TransactionRepository) DeleteByOfferID(ctx context.Context, offerID int64) error {
	args := m.Called(ctx, offerID)
	return args.Error(0)
}
