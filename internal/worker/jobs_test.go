package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/market"
	"github.com/lanternworks/nightmarket/internal/merchant"
)

// MockMarketService mocks market.Service
type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) CurrentPrice(ctx context.Context, itemName string) (int, error) {
	args := m.Called(ctx, itemName)
	return args.Int(0), args.Error(1)
}

func (m *MockMarketService) GetPrice(ctx context.Context, itemName string) (*domain.MarketPrice, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketPrice), args.Error(1)
}

func (m *MockMarketService) ListPrices(ctx context.Context) ([]domain.MarketPrice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketPrice), args.Error(1)
}

func (m *MockMarketService) ListPricesByDistrict(ctx context.Context, district string) ([]domain.MarketPrice, error) {
	args := m.Called(ctx, district)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketPrice), args.Error(1)
}

func (m *MockMarketService) RecomputePrice(ctx context.Context, itemName string) (int, error) {
	args := m.Called(ctx, itemName)
	return args.Int(0), args.Error(1)
}

func (m *MockMarketService) RecomputeAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockMarketService) UpdateDemandMultiplier(ctx context.Context, itemName string, multiplier float64) error {
	args := m.Called(ctx, itemName, multiplier)
	return args.Error(0)
}

// MockMerchantService mocks merchant.Service
type MockMerchantService struct {
	mock.Mock
}

func (m *MockMerchantService) GetMerchant(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Merchant), args.Error(1)
}

func (m *MockMerchantService) ListMerchants(ctx context.Context, district string) ([]domain.Merchant, error) {
	args := m.Called(ctx, district)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Merchant), args.Error(1)
}

func (m *MockMerchantService) NearbyMerchants(ctx context.Context, lat, lng, radiusM float64) ([]domain.MerchantDistance, error) {
	args := m.Called(ctx, lat, lng, radiusM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MerchantDistance), args.Error(1)
}

func (m *MockMerchantService) Restock(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// Interface compliance checks
var (
	_ market.Service   = (*MockMarketService)(nil)
	_ merchant.Service = (*MockMerchantService)(nil)
)

// hasDeadline matches contexts that carry a deadline
func hasDeadline(ctx context.Context) bool {
	_, ok := ctx.Deadline()
	return ok
}

func TestRecomputeJob_Process(t *testing.T) {
	// ARRANGE
	mockMarket := new(MockMarketService)
	mockMarket.On("RecomputeAll", mock.MatchedBy(hasDeadline)).Return(12, nil)

	job := NewRecomputeJob(mockMarket)

	// ACT
	err := job.Process(context.Background())

	// ASSERT
	assert.NoError(t, err)
	mockMarket.AssertExpectations(t)
}

func TestRecomputeJob_PassesFailureToPool(t *testing.T) {
	// ARRANGE
	dbErr := errors.New("connection pool exhausted")
	mockMarket := new(MockMarketService)
	mockMarket.On("RecomputeAll", mock.Anything).Return(0, dbErr)

	job := NewRecomputeJob(mockMarket)

	// ACT
	err := job.Process(context.Background())

	// ASSERT
	assert.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "recompute pass failed")
}

func TestRestockJob_Process(t *testing.T) {
	// ARRANGE
	mockMerchants := new(MockMerchantService)
	mockMerchants.On("Restock", mock.MatchedBy(hasDeadline)).Return(4, nil)

	job := NewRestockJob(mockMerchants)

	// ACT
	err := job.Process(context.Background())

	// ASSERT
	assert.NoError(t, err)
	mockMerchants.AssertExpectations(t)
}

func TestRestockJob_PassesFailureToPool(t *testing.T) {
	// ARRANGE
	dbErr := errors.New("merchants table locked")
	mockMerchants := new(MockMerchantService)
	mockMerchants.On("Restock", mock.Anything).Return(0, dbErr)

	job := NewRestockJob(mockMerchants)

	// ACT
	err := job.Process(context.Background())

	// ASSERT
	assert.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "restock pass failed")
}
