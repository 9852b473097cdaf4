package service_test

import (
	"context"
	"testing"

	"github.com/markethub/offers/internal/constants"
	"github.com/markethub/offers/internal/mocks"
	"github.com/markethub/offers/internal/model"
	"github.com/markethub/offers/internal/repository"
	"github.com/markethub/offers/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestStockManager_DecreaseStock(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("decrease applies exact delta", func(t *testing.T) {
		mockOffers := &mocks.OfferRepository{}
		stock := service.NewStockManager(mockOffers, logger)

		mockOffers.On("GetByID", ctx, int64(10)).
			Return(&model.Offer{ID: 10, Count: 5}, nil).Once()
		mockOffers.On("UpdateCount", ctx, int64(10), int64(2)).Return(nil)
		mockOffers.On("GetByID", ctx, int64(10)).
			Return(&model.Offer{ID: 10, Count: 2}, nil).Once()

		offer, err := stock.DecreaseStock(ctx, 10, 3)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), offer.Count)
		mockOffers.AssertExpectations(t)
	})

	t.Run("fails when requested count exceeds stock", func(t *testing.T) {
		mockOffers := &mocks.OfferRepository{}
		stock := service.NewStockManager(mockOffers, logger)

		mockOffers.On("GetByID", ctx, int64(10)).
			Return(&model.Offer{ID: 10, Count: 2}, nil).Once()

		_, err := stock.DecreaseStock(ctx, 10, 3)

		assert.Equal(t, constants.ErrCodeInsufficientStock, errorCode(t, err))
		mockOffers.AssertNotCalled(t, "UpdateCount")
	})

	t.Run("fails when offer is missing", func(t *testing.T) {
		mockOffers := &mocks.OfferRepository{}
		stock := service.NewStockManager(mockOffers, logger)

		mockOffers.On("GetByID", ctx, int64(99)).
			Return((*model.Offer)(nil), repository.ErrOfferNotFound)

		_, err := stock.DecreaseStock(ctx, 99, 1)

		assert.Equal(t, constants.ErrCodeOfferNotFound, errorCode(t, err))
	})

	t.Run("surfaces inconsistency when observed delta mismatches", func(t *testing.T) {
		mockOffers := &mocks.OfferRepository{}
		stock := service.NewStockManager(mockOffers, logger)

		mockOffers.On("GetByID", ctx, int64(10)).
			Return(&model.Offer{ID: 10, Count: 5}, nil).Once()
		mockOffers.On("UpdateCount", ctx, int64(10), int64(2)).Return(nil)
		mockOffers.On("GetByID", ctx, int64(10)).
			Return(&model.Offer{ID: 10, Count: 4}, nil).Once()

		_, err := stock.DecreaseStock(ctx, 10, 3)

		assert.Equal(t, constants.ErrCodeStockInconsistency, errorCode(t, err))
	})
}

func TestStockManager_IncreaseStock(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("increase applies exact delta", func(t *testing.T) {
		mockOffers := &mocks.OfferRepository{}
		stock := service.NewStockManager(mockOffers, logger)

		mockOffers.On("GetByID", ctx, int64(10)).
			Return(&model.Offer{ID: 10, Count: 2}, nil).Once()
		mockOffers.On("UpdateCount", ctx, int64(10), int64(5)).Return(nil)
		mockOffers.On("GetByID", ctx, int64(10)).
			Return(&model.Offer{ID: 10, Count: 5}, nil).Once()

		offer, err := stock.IncreaseStock(ctx, 10, 3)

		assert.NoError(t, err)
		assert.Equal(t, int64(5), offer.Count)
		mockOffers.AssertExpectations(t)
	})

	t.Run("rejects non-positive count", func(t *testing.T) {
		mockOffers := &mocks.OfferRepository{}
		stock := service.NewStockManager(mockOffers, logger)

		_, err := stock.IncreaseStock(ctx, 10, 0)

		assert.Equal(t, constants.ErrCodeInvalidAmount, errorCode(t, err))
		mockOffers.AssertNotCalled(t, "GetByID")
	})
}

func TestStockManager_ArchiveDue(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("second run archives nothing", func(t *testing.T) {
		mockOffers := &mocks.OfferRepository{}
		stock := service.NewStockManager(mockOffers, logger)

		mockOffers.On("ArchiveDue", ctx, mock.AnythingOfType("time.Time")).
			Return(int64(3), nil).Once()
		mockOffers.On("ArchiveDue", ctx, mock.AnythingOfType("time.Time")).
			Return(int64(0), nil).Once()

		first, err := stock.ArchiveDue(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), first)

		second, err := stock.ArchiveDue(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), second)

		mockOffers.AssertExpectations(t)
	})
}
