package seed

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// MockCatalogRepository implements repository.Catalog for testing
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetCatalogEntry(ctx context.Context, itemName string) (*domain.CatalogEntry, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Error(1)
}

func (m *MockCatalogRepository) ListCatalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogEntry), args.Error(1)
}

func (m *MockCatalogRepository) UpsertCatalogEntry(ctx context.Context, entry *domain.CatalogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// Ensure MockCatalogRepository implements repository.Catalog
var _ repository.Catalog = (*MockCatalogRepository)(nil)

// MockQuoteStore implements QuoteStore for testing
type MockQuoteStore struct {
	mock.Mock
}

func (m *MockQuoteStore) GetPrice(ctx context.Context, itemName string) (*domain.MarketPrice, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketPrice), args.Error(1)
}

func (m *MockQuoteStore) SeedPrice(ctx context.Context, price *domain.MarketPrice) error {
	args := m.Called(ctx, price)
	return args.Error(0)
}

// Ensure MockQuoteStore implements QuoteStore
var _ QuoteStore = (*MockQuoteStore)(nil)

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

// MockSyncStore implements SyncStore for testing
type MockSyncStore struct {
	mock.Mock
}

func (m *MockSyncStore) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	args := m.Called(ctx, configName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncMetadata), args.Error(1)
}

func (m *MockSyncStore) UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}

// Ensure MockSyncStore implements SyncStore
var _ SyncStore = (*MockSyncStore)(nil)
