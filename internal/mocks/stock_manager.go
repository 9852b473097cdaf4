package mocks

import (
	"context"

	"github.com/markethub/offers/internal/model"
	"github.com/stretchr/testify/mock"
)

type StockManager struct {
	mock.Mock
}

func (m *StockManager) DecreaseStock(ctx context.Context, offerID int64, count int64) (*model.Offer, error) {
	args := m.Called(ctx, offerID, count)
	return args.Get(0).(*model.Offer), args.Error(1)
}

func (m *StockManager) IncreaseStock(ctx context.Context, offerID int64, count int64) (*model.Offer, error) {
	args := m.Called(ctx, offerID, count)
	return args.Get(0).(*model.Offer), args.Error(1)
}

func (m *StockManager) ArchiveDue(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
