package repository

import (
	"context"
	"errors"

	"github.com/markethub/offers/internal/model"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("TRANSACTION_NOT_FOUND")

type TransactionRepository interface {
	Create(ctx context.Context, transaction *model.Transaction) error
	GetByID(ctx context.Context, id int64) (*model.Transaction, error)
	GetByOfferID(ctx context.Context, offerID int64) ([]model.Transaction, error)
	GetByUserID(userID int64, limit, offset int) ([]model.Transaction, error)
	CountByUserID(userID int64) (int, error)
	Delete(ctx context.Context, id int64) error
	DeleteByOfferID(ctx context.Context, offerID int64) error
}

type Transaction struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &Transaction{db: db}
}

func (t *Transaction) Create(ctx context.Context, transaction *model.Transaction) error {
	db := GetTx(ctx, t.db)
	return db.Create(transaction).Error
}

func (t *Transaction) GetByID(ctx context.Context, id int64) (*model.Transaction, error) {
	var transaction model.Transaction

	db := GetTx(ctx, t.db)
	err := db.Where("id = ?", id).First(&transaction).Error
	if err == nil {
		return &transaction, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}

	return nil, err
}

func (t *Transaction) GetByOfferID(ctx context.Context, offerID int64) ([]model.Transaction, error) {
	var transactions []model.Transaction

	db := GetTx(ctx, t.db)
	err := db.Where("offer_id = ?", offerID).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

func (t *Transaction) GetByUserID(userID int64, limit, offset int) ([]model.Transaction, error) {
	var transactions []model.Transaction

	err := t.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

func (t *Transaction) CountByUserID(userID int64) (int, error) {
	var count int64

	err := t.db.Model(&model.Transaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

func (t *Transaction) Delete(ctx context.Context, id int64) error {
	db := GetTx(ctx, t.db)
	result := db.Where("id = ?", id).Delete(&model.Transaction{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (t *Transaction) DeleteByOfferID(ctx context.Context, offerID int64) error {
	db := GetTx(ctx, t.db)
	return db.Where("offer_id = ?", offerID).Delete(&model.Transaction{}).Error
}
