package mocks

import (
	"context"
	"time"

	"github.com/markethub/offers/internal/model"
	"github.com/stretchr/testify/mock"
)

type OfferRepository struct {
	mock.Mock
}

func (m *OfferRepository) Create(ctx context.Context, offer *model.Offer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *OfferRepository) GetByID(ctx context.Context, id int64) (*model.Offer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*model.Offer), args.Error(1)
}

func (m *OfferRepository) UpdateCount(ctx context.Context, id int64, count int64) error {
	args := m.Called(ctx, id, count)
	return args.Error(0)
}

func (m *OfferRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *OfferRepository) GetByAccountID(accountID int64, limit, offset int) ([]model.Offer, error) {
	args := m.Called(accountID, limit, offset)
	return args.Get(0).([]model.Offer), args.Error(1)
}

func (m *OfferRepository) CountByAccountID(accountID int64) (int, error) {
	args := m.Called(accountID)
	return args.Int(0), args.Error(1)
}

func (m *OfferRepository) GetActiveByCategoryIDs(categoryIDs []int64) ([]model.Offer, error) {
	args := m.Called(categoryIDs)
	return args.Get(0).([]model.Offer), args.Error(1)
}

func (m *OfferRepository) ArchiveDue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
