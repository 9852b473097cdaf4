package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/markethub/offers/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrAccountNotFound = errors.New("ACCOUNT_NOT_FOUND")
var ErrAccountDuplicate = errors.New("ACCOUNT_DUPLICATE")
var ErrUserDetailNotFound = errors.New("USER_DETAIL_NOT_FOUND")

type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	GetByEmail(email string) (*model.Account, error)
	GetUserDetail(ctx context.Context, accountID int64) (*model.UserDetail, error)
	UpdateBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error
	UpdateCompanyActive(ctx context.Context, accountID int64, active bool) error
	UpdatePhotoURL(ctx context.Context, accountID int64, url string) error
}

type Account struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &Account{db: db}
}

func (a *Account) Create(ctx context.Context, account *model.Account) error {
	db := GetTx(ctx, a.db)
	err := db.Create(account).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrAccountDuplicate
	}

	return err
}

func (a *Account) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	var account model.Account

	db := GetTx(ctx, a.db)
	err := db.Preload("UserDetail").Preload("CompanyDetail").
		Where("id = ?", id).First(&account).Error
	if err == nil {
		return &account, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}

	return nil, err
}

func (a *Account) GetByEmail(email string) (*model.Account, error) {
	var account model.Account

	err := a.db.Preload("UserDetail").Preload("CompanyDetail").
		Where("email = ?", email).First(&account).Error
	if err == nil {
		return &account, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}

	return nil, err
}

// GetUserDetail resolves the transaction from ctx so that a re-read inside an
// open unit of work observes that unit's own writes.
func (a *Account) GetUserDetail(ctx context.Context, accountID int64) (*model.UserDetail, error) {
	var detail model.UserDetail

	db := GetTx(ctx, a.db)
	err := db.Where("account_id = ?", accountID).First(&detail).Error
	if err == nil {
		return &detail, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserDetailNotFound
	}

	return nil, err
}

func (a *Account) UpdateBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error {
	db := GetTx(ctx, a.db)
	return db.Model(&model.UserDetail{}).
		Where("account_id = ?", accountID).
		Update("balance", balance).Error
}

func (a *Account) UpdateCompanyActive(ctx context.Context, accountID int64, active bool) error {
	db := GetTx(ctx, a.db)
	return db.Model(&model.CompanyDetail{}).
		Where("account_id = ?", accountID).
		Update("is_active", active).Error
}

func (a *Account) UpdatePhotoURL(ctx context.Context, accountID int64, url string) error {
	db := GetTx(ctx, a.db)
	return db.Model(&model.CompanyDetail{}).
		Where("account_id = ?", accountID).
		Update("photo_url", url).Error
}
