// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockTariffService struct {
	mock.Mock
}

func (m *MockTariffService) Active(ctx context.Context) (model.Tariff, error) {
	args := m.Called(ctx)
	tariff, _ := args.Get(0).(model.Tariff)
	return tariff, args.Error(1)
}

func (m *MockTariffService) Create(ctx context.Context, tariff model.Tariff, createdBy string) (*repository.TariffDocument, error) {
	args := m.Called(ctx, tariff, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TariffDocument), args.Error(1)
}

func (m *MockTariffService) List(ctx context.Context, limit int) ([]repository.TariffDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TariffDocument), args.Error(1)
}

func (m *MockTariffService) Refresh(ctx context.Context) (model.Tariff, error) {
	args := m.Called(ctx)
	tariff, _ := args.Get(0).(model.Tariff)
	return tariff, args.Error(1)
}

// NewMockTariffService creates a new instance of MockTariffService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTariffService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTariffService {
	m := &MockTariffService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
