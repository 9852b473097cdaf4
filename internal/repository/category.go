package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/markethub/offers/internal/model"
	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("CATEGORY_NOT_FOUND")
var ErrCategoryDuplicate = errors.New("CATEGORY_DUPLICATE")

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(id int64) (*model.Category, error)
	GetByIDs(ids []int64) ([]model.Category, error)
	GetAll() ([]model.Category, error)
}

type Category struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &Category{db: db}
}

func (c *Category) Create(ctx context.Context, category *model.Category) error {
	db := GetTx(ctx, c.db)
	err := db.Create(category).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrCategoryDuplicate
	}

	return err
}

func (c *Category) GetByID(id int64) (*model.Category, error) {
	var category model.Category

	err := c.db.Where("id = ?", id).First(&category).Error
	if err == nil {
		return &category, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}

	return nil, err
}

func (c *Category) GetByIDs(ids []int64) ([]model.Category, error) {
	var categories []model.Category

	err := c.db.Where("id IN ?", ids).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (c *Category) GetAll() ([]model.Category, error) {
	var categories []model.Category

	err := c.db.Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
