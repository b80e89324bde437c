// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/food-details-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) GetFood(ctx context.Context, id int64) (model.Food, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Food), args.Error(1)
}

func (m *MockGateway) ListFavorites(ctx context.Context) ([]model.Food, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Food), args.Error(1)
}

func (m *MockGateway) AddFavorite(ctx context.Context, favorite model.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockGateway) RemoveFavorite(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGateway) CreateOrder(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
