package mocks

import (
	"context"

	"github.com/markethub/offers/internal/model"
	"github.com/markethub/offers/internal/service"
	"github.com/stretchr/testify/mock"
)

type PurchaseService struct {
	mock.Mock
}

func (m *PurchaseService) Create(ctx context.Context, cmd service.CreatePurchaseCommand) (*model.Transaction, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *PurchaseService) Refund(ctx context.Context, id, requesterID int64) error {
	args := m.Called(ctx, id, requesterID)
	return args.Error(0)
}

func (m *PurchaseService) RefundAllByOffer(ctx context.Context, offerID int64) error {
	args := m.Called(ctx, offerID)
	return args.Error(0)
}

func (m *PurchaseService) GetMyTransaction(ctx context.Context, id, accountID int64) (*model.Transaction, error) {
	args := m.Called(ctx, id, accountID)
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *PurchaseService) GetMyTransactions(ctx context.Context, accountID int64, page service.Page) ([]model.Transaction, int, error) {
	args := m.Called(ctx, accountID, page)
	return args.Get(0).([]model.Transaction), args.Int(1), args.Error(2)
}
