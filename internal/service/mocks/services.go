// Package mocks provides testify mocks for the service interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/benx421/catalog/internal/models"
	"github.com/benx421/catalog/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func register(t *testing.T, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockCataloger is a mock implementation of service.Cataloger
type MockCataloger struct {
	mock.Mock
}

// NewMockCataloger creates a mock wired to the test lifecycle
func NewMockCataloger(t *testing.T) *MockCataloger {
	m := &MockCataloger{}
	register(t, &m.Mock)
	return m
}

func (m *MockCataloger) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCataloger) Create(ctx context.Context, input service.ProductInput) (*models.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCataloger) Update(ctx context.Context, id uuid.UUID, input service.ProductInput) (*models.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCataloger) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDiscounter is a mock implementation of service.Discounter
type MockDiscounter struct {
	mock.Mock
}

// NewMockDiscounter creates a mock wired to the test lifecycle
func NewMockDiscounter(t *testing.T) *MockDiscounter {
	m := &MockDiscounter{}
	register(t, &m.Mock)
	return m
}

func (m *MockDiscounter) ApplyDiscount(ctx context.Context, id uuid.UUID, percent int64) (*service.DiscountResult, error) {
	args := m.Called(ctx, id, percent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DiscountResult), args.Error(1)
}

// MockAggregator is a mock implementation of service.Aggregator
type MockAggregator struct {
	mock.Mock
}

// NewMockAggregator creates a mock wired to the test lifecycle
func NewMockAggregator(t *testing.T) *MockAggregator {
	m := &MockAggregator{}
	register(t, &m.Mock)
	return m
}

func (m *MockAggregator) TotalSales(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAggregator) Stats(ctx context.Context) (*models.PriceStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PriceStats), args.Error(1)
}

// MockQuerier is a mock implementation of service.Querier
type MockQuerier struct {
	mock.Mock
}

// NewMockQuerier creates a mock wired to the test lifecycle
func NewMockQuerier(t *testing.T) *MockQuerier {
	m := &MockQuerier{}
	register(t, &m.Mock)
	return m
}

func (m *MockQuerier) Expensive(ctx context.Context, minPrice int64) ([]models.Product, error) {
	args := m.Called(ctx, minPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockQuerier) Cheap(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockQuerier) Search(ctx context.Context, query string) ([]models.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockQuerier) PriceRange(ctx context.Context, minRaw, maxRaw string) ([]models.Product, error) {
	args := m.Called(ctx, minRaw, maxRaw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockQuerier) Latest(ctx context.Context, limit int) ([]models.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

// MockBulkCreator is a mock implementation of service.BulkCreator
type MockBulkCreator struct {
	mock.Mock
}

// NewMockBulkCreator creates a mock wired to the test lifecycle
func NewMockBulkCreator(t *testing.T) *MockBulkCreator {
	m := &MockBulkCreator{}
	register(t, &m.Mock)
	return m
}

func (m *MockBulkCreator) BulkCreate(ctx context.Context, items []service.ProductInput) (*service.BulkResult, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BulkResult), args.Error(1)
}

// MockAccountManager is a mock implementation of service.AccountManager
type MockAccountManager struct {
	mock.Mock
}

// NewMockAccountManager creates a mock wired to the test lifecycle
func NewMockAccountManager(t *testing.T) *MockAccountManager {
	m := &MockAccountManager{}
	register(t, &m.Mock)
	return m
}

func (m *MockAccountManager) Register(ctx context.Context, username, email, password, confirmation string) (*models.User, error) {
	args := m.Called(ctx, username, email, password, confirmation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAccountManager) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAccountManager) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword, confirmation string) error {
	args := m.Called(ctx, userID, oldPassword, newPassword, confirmation)
	return args.Error(0)
}

// MockPasswordResetter is a mock implementation of service.PasswordResetter
type MockPasswordResetter struct {
	mock.Mock
}

// NewMockPasswordResetter creates a mock wired to the test lifecycle
func NewMockPasswordResetter(t *testing.T) *MockPasswordResetter {
	m := &MockPasswordResetter{}
	register(t, &m.Mock)
	return m
}

func (m *MockPasswordResetter) RequestReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockPasswordResetter) VerifyCode(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

func (m *MockPasswordResetter) ResetPassword(ctx context.Context, email, code, newPassword, confirmation string) error {
	args := m.Called(ctx, email, code, newPassword, confirmation)
	return args.Error(0)
}
