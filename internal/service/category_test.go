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

func TestCategory_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name is rejected", func(t *testing.T) {
		mockCategories := &mocks.CategoryRepository{}
		svc := service.NewCategoryService(mockCategories, zap.NewNop())

		mockCategories.On("Create", ctx, mock.AnythingOfType("*model.Category")).
			Return(repository.ErrCategoryDuplicate)

		_, err := svc.Create(ctx, "tools", "")

		assert.Equal(t, constants.ErrCodeCategoryAlreadyExists, errorCode(t, err))
	})

	t.Run("new category is persisted", func(t *testing.T) {
		mockCategories := &mocks.CategoryRepository{}
		svc := service.NewCategoryService(mockCategories, zap.NewNop())

		mockCategories.On("Create", ctx, mock.MatchedBy(func(category *model.Category) bool {
			return category.Name == "tools"
		})).Return(nil)

		category, err := svc.Create(ctx, "tools", "hand tools")

		assert.NoError(t, err)
		assert.Equal(t, "tools", category.Name)
	})
}

func TestCategory_Get(t *testing.T) {
	ctx := context.Background()

	mockCategories := &mocks.CategoryRepository{}
	svc := service.NewCategoryService(mockCategories, zap.NewNop())

	mockCategories.On("GetByID", int64(9)).
		Return((*model.Category)(nil), repository.ErrCategoryNotFound)

	_, err := svc.Get(ctx, 9)

	assert.Equal(t, constants.ErrCodeCategoryNotFound, errorCode(t, err))
}
