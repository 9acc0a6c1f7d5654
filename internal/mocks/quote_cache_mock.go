// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockQuoteCache struct {
	mock.Mock
}

func (m *MockQuoteCache) Get(key string) (model.ShippingQuote, bool) {
	args := m.Called(key)
	quote, _ := args.Get(0).(model.ShippingQuote)
	return quote, args.Bool(1)
}

func (m *MockQuoteCache) Set(key string, value model.ShippingQuote) {
	m.Called(key, value)
}

func (m *MockQuoteCache) Invalidate(key string) {
	m.Called(key)
}

func (m *MockQuoteCache) Clear() {
	m.Called()
}

func (m *MockQuoteCache) Stop() {
	m.Called()
}

// NewMockQuoteCache creates a new instance of MockQuoteCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockQuoteCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuoteCache {
	m := &MockQuoteCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
