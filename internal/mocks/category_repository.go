package mocks

import (
	"context"

	"github.com/markethub/offers/internal/model"
	"github.com/stretchr/testify/mock"
)

type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *CategoryRepository) GetByID(id int64) (*model.Category, error) {
	args := m.Called(id)
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *CategoryRepository) GetByIDs(ids []int64) ([]model.Category, error) {
	args := m.Called(ids)
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *CategoryRepository) GetAll() ([]model.Category, error) {
	args := m.Called()
	return args.Get(0).([]model.Category), args.Error(1)
}
