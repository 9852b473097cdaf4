package service

import (
	"context"
	"errors"
	"time"

	"github.com/markethub/offers/internal/constants"
	"github.com/markethub/offers/internal/model"
	"github.com/markethub/offers/internal/repository"
	"go.uber.org/zap"
)

// StockManager is the only path that mutates offer stock and archival state.
// Like the Ledger it never commits; stock moves run on the caller's ctx
// transaction.
type StockManager interface {
	DecreaseStock(ctx context.Context, offerID int64, count int64) (*model.Offer, error)
	IncreaseStock(ctx context.Context, offerID int64, count int64) (*model.Offer, error)
	ArchiveDue(ctx context.Context) (int64, error)
}

type stockManager struct {
	offers repository.OfferRepository
	logger *zap.Logger
}

func NewStockManager(offers repository.OfferRepository, logger *zap.Logger) StockManager {
	return &stockManager{offers: offers, logger: logger}
}

func (s *stockManager) DecreaseStock(ctx context.Context, offerID int64, count int64) (*model.Offer, error) {
	if count <= 0 {
		return nil, NewServiceError(constants.ErrCodeInvalidAmount, ErrInvalidAmount)
	}

	offer, err := s.loadOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	if count > offer.Count {
		return nil, NewServiceError(constants.ErrCodeInsufficientStock, ErrInsufficientStock)
	}

	return s.applyDelta(ctx, offer, -count)
}

func (s *stockManager) IncreaseStock(ctx context.Context, offerID int64, count int64) (*model.Offer, error) {
	if count <= 0 {
		return nil, NewServiceError(constants.ErrCodeInvalidAmount, ErrInvalidAmount)
	}

	offer, err := s.loadOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	return s.applyDelta(ctx, offer, count)
}

// ArchiveDue marks every offer whose cutoff has passed. The sweep is a single
// update-where, so running it again immediately archives nothing.
func (s *stockManager) ArchiveDue(ctx context.Context) (int64, error) {
	archived, err := s.offers.ArchiveDue(ctx, time.Now())
	if err != nil {
		s.logger.Error("error archiving due offers", zap.Error(err))
		return 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if archived > 0 {
		s.logger.Info("Archived due offers", zap.Int64("count", archived))
	}

	return archived, nil
}

func (s *stockManager) loadOffer(ctx context.Context, offerID int64) (*model.Offer, error) {
	offer, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, NewServiceError(constants.ErrCodeOfferNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return offer, nil
}

func (s *stockManager) applyDelta(ctx context.Context, offer *model.Offer, delta int64) (*model.Offer, error) {
	if err := s.offers.UpdateCount(ctx, offer.ID, offer.Count+delta); err != nil {
		s.logger.Error("error updating offer stock",
			zap.Int64("offerID", offer.ID),
			zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	after, err := s.offers.GetByID(ctx, offer.ID)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeStockInconsistency, err)
	}

	if after.Count-offer.Count != delta {
		s.logger.Error("stock delta mismatch",
			zap.Int64("offerID", offer.ID),
			zap.Int64("expected", delta),
			zap.Int64("observed", after.Count-offer.Count))
		return nil, NewServiceError(constants.ErrCodeStockInconsistency, ErrInconsistency)
	}

	return after, nil
}
