package market

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// MockMarketRepository implements repository.Market for testing
type MockMarketRepository struct {
	mock.Mock
}

func (m *MockMarketRepository) GetPrice(ctx context.Context, itemName string) (*domain.MarketPrice, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketPrice), args.Error(1)
}

func (m *MockMarketRepository) ListPrices(ctx context.Context) ([]domain.MarketPrice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketPrice), args.Error(1)
}

func (m *MockMarketRepository) ListPricesByDistrict(ctx context.Context, district string) ([]domain.MarketPrice, error) {
	args := m.Called(ctx, district)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketPrice), args.Error(1)
}

func (m *MockMarketRepository) UpdateDemandMultiplier(ctx context.Context, itemName string, multiplier float64) error {
	args := m.Called(ctx, itemName, multiplier)
	return args.Error(0)
}

func (m *MockMarketRepository) BeginTx(ctx context.Context) (repository.MarketTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.MarketTx), args.Error(1)
}

// Ensure MockMarketRepository implements repository.Market
var _ repository.Market = (*MockMarketRepository)(nil)

// MockMarketTx implements repository.MarketTx for testing
type MockMarketTx struct {
	mock.Mock
}

func (m *MockMarketTx) GetPriceForUpdate(ctx context.Context, itemName string) (*domain.MarketPrice, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketPrice), args.Error(1)
}

func (m *MockMarketTx) ListPricesForUpdate(ctx context.Context) ([]domain.MarketPrice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketPrice), args.Error(1)
}

func (m *MockMarketTx) UpdatePrice(ctx context.Context, itemName string, currentPrice int, updatedAt time.Time) error {
	args := m.Called(ctx, itemName, currentPrice, updatedAt)
	return args.Error(0)
}

func (m *MockMarketTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMarketTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure MockMarketTx implements repository.MarketTx
var _ repository.MarketTx = (*MockMarketTx)(nil)

// MockPublisher implements event.Publisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, ev event.Event) {
	m.Called(ctx, ev)
}

// Ensure MockPublisher implements event.Publisher
var _ event.Publisher = (*MockPublisher)(nil)
