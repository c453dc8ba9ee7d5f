package merchant

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// MockMerchantRepository implements repository.Merchant for testing
type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) GetMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) ListMerchants(ctx context.Context, district string) ([]domain.Merchant, error) {
	args := m.Called(ctx, district)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) UpsertMerchant(ctx context.Context, merchant *domain.Merchant) error {
	args := m.Called(ctx, merchant)
	return args.Error(0)
}

func (m *MockMerchantRepository) TouchRestockedAt(ctx context.Context, restockedAt time.Time) (int, error) {
	args := m.Called(ctx, restockedAt)
	return args.Int(0), args.Error(1)
}

// Ensure MockMerchantRepository implements repository.Merchant
var _ repository.Merchant = (*MockMerchantRepository)(nil)

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

// MockPublisher implements event.Publisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, ev event.Event) {
	m.Called(ctx, ev)
}

// Ensure MockPublisher implements event.Publisher
var _ event.Publisher = (*MockPublisher)(nil)
