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

// DeleteWindow is how long after creation the owner may hard-delete an offer.
const DeleteWindow = 10 * time.Minute

type OfferService interface {
	Create(ctx context.Context, cmd CreateOfferCommand) (*model.Offer, error)
	GetMyOffer(ctx context.Context, id, accountID int64) (*model.Offer, error)
	GetMyOffers(ctx context.Context, accountID int64, page Page) ([]model.Offer, int, error)
	Delete(ctx context.Context, id, accountID int64) error
	GetOffersByCategories(ctx context.Context, categoryIDs []int64) ([]model.Offer, error)
	ArchiveOffers(ctx context.Context) error
}

type offerService struct {
	accounts   repository.AccountRepository
	categories repository.CategoryRepository
	offers     repository.OfferRepository
	txManager  repository.TxManager
	purchases  PurchaseService
	stock      StockManager
	logger     *zap.Logger
}

func NewOfferService(accounts repository.AccountRepository, categories repository.CategoryRepository,
	offers repository.OfferRepository, txManager repository.TxManager,
	purchases PurchaseService, stock StockManager, logger *zap.Logger) OfferService {
	return &offerService{accounts: accounts, categories: categories, offers: offers,
		txManager: txManager, purchases: purchases, stock: stock, logger: logger}
}

func (s *offerService) Create(ctx context.Context, cmd CreateOfferCommand) (*model.Offer, error) {
	company, err := s.requireActiveCompany(ctx, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	if _, err := s.categories.GetByID(cmd.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, NewServiceError(constants.ErrCodeCategoryNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if cmd.Price.Sign() <= 0 || cmd.Count < 0 {
		return nil, NewServiceError(constants.ErrCodeInvalidAmount, ErrInvalidAmount)
	}

	offer := model.Offer{
		Name:        cmd.Name,
		Description: cmd.Description,
		Count:       cmd.Count,
		Price:       cmd.Price,
		AccountID:   company.ID,
		CategoryID:  cmd.CategoryID,
		ArchiveAt:   cmd.ArchiveAt,
		CreatedAt:   time.Now(),
	}

	if err := s.offers.Create(ctx, &offer); err != nil {
		s.logger.Error("error persisting offer",
			zap.Int64("accountID", company.ID),
			zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeOfferCreateFailed, err)
	}

	s.logger.Info("Offer created",
		zap.Int64("offerID", offer.ID),
		zap.Int64("accountID", company.ID),
		zap.Int64("categoryID", offer.CategoryID))

	return &offer, nil
}

func (s *offerService) GetMyOffer(ctx context.Context, id, accountID int64) (*model.Offer, error) {
	if _, err := s.requireActiveCompany(ctx, accountID); err != nil {
		return nil, err
	}

	offer, err := s.loadOffer(ctx, id)
	if err != nil {
		return nil, err
	}

	if offer.AccountID != accountID {
		return nil, NewServiceError(constants.ErrCodeOfferAccessDenied, ErrAccessDenied)
	}

	return offer, nil
}

func (s *offerService) GetMyOffers(ctx context.Context, accountID int64, page Page) ([]model.Offer, int, error) {
	if _, err := s.requireActiveCompany(ctx, accountID); err != nil {
		return nil, 0, err
	}

	offers, err := s.offers.GetByAccountID(accountID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	total, err := s.offers.CountByAccountID(accountID)
	if err != nil {
		return nil, 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return offers, total, nil
}

// Delete removes an offer inside one unit of work: every open transaction is
// refunded first, then the row goes away. Outside the grace window the offer
// can only expire through archival.
func (s *offerService) Delete(ctx context.Context, id, accountID int64) error {
	if _, err := s.requireActiveCompany(ctx, accountID); err != nil {
		return err
	}

	offer, err := s.loadOffer(ctx, id)
	if err != nil {
		return err
	}

	if offer.AccountID != accountID {
		return NewServiceError(constants.ErrCodeOfferAccessDenied, ErrAccessDenied)
	}

	if time.Since(offer.CreatedAt) > DeleteWindow {
		return NewServiceError(constants.ErrCodeOfferDeleteWindowExpired, ErrWindowExpired)
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.purchases.RefundAllByOffer(ctx, offer.ID); err != nil {
			return err
		}

		if err := s.offers.Delete(ctx, offer.ID); err != nil {
			s.logger.Error("error deleting offer",
				zap.Int64("offerID", offer.ID),
				zap.Error(err))
			return NewServiceError(constants.ErrCodeOfferDeleteFailed, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Offer deleted",
		zap.Int64("offerID", offer.ID),
		zap.Int64("accountID", accountID))

	return nil
}

func (s *offerService) GetOffersByCategories(ctx context.Context, categoryIDs []int64) ([]model.Offer, error) {
	if len(categoryIDs) == 0 {
		return nil, NewServiceError(constants.ErrCodeCategoryNotFound, repository.ErrCategoryNotFound)
	}

	unique := make(map[int64]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		unique[id] = struct{}{}
	}

	categories, err := s.categories.GetByIDs(categoryIDs)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if len(categories) != len(unique) {
		return nil, NewServiceError(constants.ErrCodeCategoryNotFound, repository.ErrCategoryNotFound)
	}

	offers, err := s.offers.GetActiveByCategoryIDs(categoryIDs)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return offers, nil
}

func (s *offerService) ArchiveOffers(ctx context.Context) error {
	_, err := s.stock.ArchiveDue(ctx)
	return err
}

func (s *offerService) loadOffer(ctx context.Context, offerID int64) (*model.Offer, error) {
	offer, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, NewServiceError(constants.ErrCodeOfferNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return offer, nil
}

func (s *offerService) requireActiveCompany(ctx context.Context, accountID int64) (*model.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, NewServiceError(constants.ErrCodeCompanyNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if !account.IsCompany() {
		return nil, NewServiceError(constants.ErrCodeCompanyNotFound, repository.ErrAccountNotFound)
	}

	if !account.IsActiveCompany() {
		return nil, NewServiceError(constants.ErrCodeCompanyNotActive, ErrCompanyInactive)
	}

	return account, nil
}
