package service

import (
	"context"
	"errors"

	"github.com/markethub/offers/internal/constants"
	"github.com/markethub/offers/internal/model"
	"github.com/markethub/offers/internal/repository"
	"go.uber.org/zap"
)

type CategoryService interface {
	Create(ctx context.Context, name, description string) (*model.Category, error)
	Get(ctx context.Context, id int64) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
}

type categoryService struct {
	categories repository.CategoryRepository
	logger     *zap.Logger
}

func NewCategoryService(categories repository.CategoryRepository, logger *zap.Logger) CategoryService {
	return &categoryService{categories: categories, logger: logger}
}

func (s *categoryService) Create(ctx context.Context, name, description string) (*model.Category, error) {
	category := model.Category{Name: name, Description: description}

	if err := s.categories.Create(ctx, &category); err != nil {
		if errors.Is(err, repository.ErrCategoryDuplicate) {
			return nil, NewServiceError(constants.ErrCodeCategoryAlreadyExists, err)
		}

		s.logger.Error("error creating category",
			zap.String("name", name),
			zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.logger.Info("Category created",
		zap.Int64("categoryID", category.ID),
		zap.String("name", category.Name))

	return &category, nil
}

func (s *categoryService) Get(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, NewServiceError(constants.ErrCodeCategoryNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categories.GetAll()
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return categories, nil
}
