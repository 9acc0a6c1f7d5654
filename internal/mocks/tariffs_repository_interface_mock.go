// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockTariffsRepositoryInterface struct {
	mock.Mock
}

func (m *MockTariffsRepositoryInterface) GetActive(ctx context.Context) (*repository.TariffDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TariffDocument), args.Error(1)
}

func (m *MockTariffsRepositoryInterface) Create(ctx context.Context, tariff model.Tariff, createdBy string) (*repository.TariffDocument, error) {
	args := m.Called(ctx, tariff, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TariffDocument), args.Error(1)
}

func (m *MockTariffsRepositoryInterface) List(ctx context.Context, limit int) ([]repository.TariffDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TariffDocument), args.Error(1)
}

// NewMockTariffsRepositoryInterface creates a new instance of MockTariffsRepositoryInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTariffsRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTariffsRepositoryInterface {
	m := &MockTariffsRepositoryInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
