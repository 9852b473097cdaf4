package service

import (
	"context"
	"errors"
	"time"

	"github.com/markethub/offers/internal/constants"
	"github.com/markethub/offers/internal/model"
	"github.com/markethub/offers/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RefundWindow is how long after a purchase the buyer may cancel it.
const RefundWindow = 5 * time.Minute

// PurchaseService coordinates balance, stock and the transaction ledger.
// Every mutating path runs inside one unit of work: a failure after the
// transaction opens rolls back all three.
type PurchaseService interface {
	Create(ctx context.Context, cmd CreatePurchaseCommand) (*model.Transaction, error)
	Refund(ctx context.Context, id, requesterID int64) error
	// RefundAllByOffer deposits every buyer's paid amount back and bulk-deletes
	// the offer's transaction rows. It joins the transaction already open in
	// ctx instead of beginning its own, so offer deletion stays one atomic unit.
	RefundAllByOffer(ctx context.Context, offerID int64) error
	GetMyTransaction(ctx context.Context, id, accountID int64) (*model.Transaction, error)
	GetMyTransactions(ctx context.Context, accountID int64, page Page) ([]model.Transaction, int, error)
}

type purchase struct {
	accounts     repository.AccountRepository
	transactions repository.TransactionRepository
	txManager    repository.TxManager
	ledger       Ledger
	stock        StockManager
	offers       repository.OfferRepository
	logger       *zap.Logger
}

func NewPurchaseService(accounts repository.AccountRepository, transactions repository.TransactionRepository,
	txManager repository.TxManager, ledger Ledger, stock StockManager,
	offers repository.OfferRepository, logger *zap.Logger) PurchaseService {
	return &purchase{accounts: accounts, transactions: transactions, txManager: txManager,
		ledger: ledger, stock: stock, offers: offers, logger: logger}
}

func (p *purchase) Create(ctx context.Context, cmd CreatePurchaseCommand) (*model.Transaction, error) {
	buyer, err := p.accounts.GetByID(ctx, cmd.UserID)
	if err != nil || !buyer.IsUser() {
		if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
			return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
		}
		return nil, NewServiceError(constants.ErrCodeUserNotFound, repository.ErrAccountNotFound)
	}

	offer, err := p.offers.GetByID(ctx, cmd.OfferID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, NewServiceError(constants.ErrCodeOfferNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if cmd.Count <= 0 {
		return nil, NewServiceError(constants.ErrCodeInvalidAmount, ErrInvalidAmount)
	}

	expected := offer.Price.Mul(decimal.NewFromInt(cmd.Count))
	if !cmd.Paid.Equal(expected) {
		p.logger.Warn("purchase paid amount mismatch",
			zap.Int64("offerID", offer.ID),
			zap.String("expected", expected.String()),
			zap.String("paid", cmd.Paid.String()))
		return nil, NewServiceError(constants.ErrCodeInvalidAmount, ErrInvalidAmount)
	}

	if offer.IsArchived {
		return nil, NewServiceError(constants.ErrCodeOfferExpired, ErrOfferArchived)
	}

	transaction := model.Transaction{
		UserID:    buyer.ID,
		OfferID:   offer.ID,
		Count:     cmd.Count,
		Paid:      cmd.Paid,
		CreatedAt: time.Now(),
	}

	// Withdraw enforces balance sufficiency; it is deliberately not checked
	// again here.
	err = p.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := p.ledger.Withdraw(ctx, buyer.ID, cmd.Paid); err != nil {
			return err
		}

		if _, err := p.stock.DecreaseStock(ctx, offer.ID, cmd.Count); err != nil {
			return err
		}

		if err := p.transactions.Create(ctx, &transaction); err != nil {
			p.logger.Error("error persisting transaction",
				zap.Int64("userID", buyer.ID),
				zap.Int64("offerID", offer.ID),
				zap.Error(err))
			return NewServiceError(constants.ErrCodeTransactionCreateFailed, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("Purchase completed",
		zap.Int64("transactionID", transaction.ID),
		zap.Int64("userID", buyer.ID),
		zap.Int64("offerID", offer.ID),
		zap.Int64("count", cmd.Count),
		zap.String("paid", cmd.Paid.String()))

	return &transaction, nil
}

func (p *purchase) Refund(ctx context.Context, id, requesterID int64) error {
	transaction, err := p.loadTransaction(ctx, id)
	if err != nil {
		return err
	}

	if transaction.UserID != requesterID {
		return NewServiceError(constants.ErrCodeTransactionAccessDenied, ErrAccessDenied)
	}

	if time.Since(transaction.CreatedAt) > RefundWindow {
		return NewServiceError(constants.ErrCodeRefundWindowExpired, ErrWindowExpired)
	}

	err = p.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := p.stock.IncreaseStock(ctx, transaction.OfferID, transaction.Count); err != nil {
			return err
		}

		if _, err := p.ledger.Deposit(ctx, transaction.UserID, transaction.Paid); err != nil {
			return err
		}

		if err := p.transactions.Delete(ctx, transaction.ID); err != nil {
			p.logger.Error("error deleting refunded transaction",
				zap.Int64("transactionID", transaction.ID),
				zap.Error(err))
			return NewServiceError(constants.ErrCodeRefundFailed, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	p.logger.Info("Transaction refunded",
		zap.Int64("transactionID", transaction.ID),
		zap.Int64("userID", transaction.UserID),
		zap.String("paid", transaction.Paid.String()))

	return nil
}

func (p *purchase) RefundAllByOffer(ctx context.Context, offerID int64) error {
	transactions, err := p.transactions.GetByOfferID(ctx, offerID)
	if err != nil {
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	// All deposits happen before the bulk delete: a mid-loop failure leaves
	// nothing behind once the enclosing transaction rolls back.
	for _, transaction := range transactions {
		if _, err := p.ledger.Deposit(ctx, transaction.UserID, transaction.Paid); err != nil {
			return err
		}
	}

	if err := p.transactions.DeleteByOfferID(ctx, offerID); err != nil {
		p.logger.Error("error bulk-deleting offer transactions",
			zap.Int64("offerID", offerID),
			zap.Error(err))
		return NewServiceError(constants.ErrCodeRefundFailed, err)
	}

	if len(transactions) > 0 {
		p.logger.Info("Refunded all transactions for offer",
			zap.Int64("offerID", offerID),
			zap.Int("count", len(transactions)))
	}

	return nil
}

func (p *purchase) GetMyTransaction(ctx context.Context, id, accountID int64) (*model.Transaction, error) {
	transaction, err := p.loadTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if transaction.UserID != accountID {
		return nil, NewServiceError(constants.ErrCodeTransactionAccessDenied, ErrAccessDenied)
	}

	return transaction, nil
}

func (p *purchase) GetMyTransactions(ctx context.Context, accountID int64, page Page) ([]model.Transaction, int, error) {
	transactions, err := p.transactions.GetByUserID(accountID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	total, err := p.transactions.CountByUserID(accountID)
	if err != nil {
		return nil, 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return transactions, total, nil
}

func (p *purchase) loadTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	transaction, err := p.transactions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, NewServiceError(constants.ErrCodeTransactionNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return transaction, nil
}
