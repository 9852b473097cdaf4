package repository

import (
	"context"
	"errors"
	"time"

	"github.com/markethub/offers/internal/model"
	"gorm.io/gorm"
)

var ErrOfferNotFound = errors.New("OFFER_NOT_FOUND")
var ErrNoRowsAffected = errors.New("NO_ROWS_AFFECTED")

type OfferRepository interface {
	Create(ctx context.Context, offer *model.Offer) error
	GetByID(ctx context.Context, id int64) (*model.Offer, error)
	UpdateCount(ctx context.Context, id int64, count int64) error
	Delete(ctx context.Context, id int64) error
	GetByAccountID(accountID int64, limit, offset int) ([]model.Offer, error)
	CountByAccountID(accountID int64) (int, error)
	GetActiveByCategoryIDs(categoryIDs []int64) ([]model.Offer, error)
	ArchiveDue(ctx context.Context, now time.Time) (int64, error)
}

type Offer struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &Offer{db: db}
}

func (o *Offer) Create(ctx context.Context, offer *model.Offer) error {
	db := GetTx(ctx, o.db)
	return db.Create(offer).Error
}

func (o *Offer) GetByID(ctx context.Context, id int64) (*model.Offer, error) {
	var offer model.Offer

	db := GetTx(ctx, o.db)
	err := db.Where("id = ?", id).First(&offer).Error
	if err == nil {
		return &offer, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOfferNotFound
	}

	return nil, err
}

func (o *Offer) UpdateCount(ctx context.Context, id int64, count int64) error {
	db := GetTx(ctx, o.db)
	return db.Model(&model.Offer{}).
		Where("id = ?", id).
		Update("count", count).Error
}

func (o *Offer) Delete(ctx context.Context, id int64) error {
	db := GetTx(ctx, o.db)
	result := db.Where("id = ?", id).Delete(&model.Offer{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (o *Offer) GetByAccountID(accountID int64, limit, offset int) ([]model.Offer, error) {
	var offers []model.Offer

	err := o.db.Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&offers).Error
	if err != nil {
		return nil, err
	}

	return offers, nil
}

func (o *Offer) CountByAccountID(accountID int64) (int, error) {
	var count int64

	err := o.db.Model(&model.Offer{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

func (o *Offer) GetActiveByCategoryIDs(categoryIDs []int64) ([]model.Offer, error) {
	var offers []model.Offer

	err := o.db.Where("category_id IN ? AND is_archived = ?", categoryIDs, false).
		Order("created_at DESC").
		Find(&offers).Error
	if err != nil {
		return nil, err
	}

	return offers, nil
}

// ArchiveDue is a single update-where sweep; rows already archived do not
// match the predicate, so repeated runs are no-ops.
func (o *Offer) ArchiveDue(ctx context.Context, now time.Time) (int64, error) {
	db := GetTx(ctx, o.db)
	result := db.Model(&model.Offer{}).
		Where("archive_at <= ? AND is_archived = ?", now, false).
		Update("is_archived", true)

	return result.RowsAffected, result.Error
}
