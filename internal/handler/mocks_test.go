package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lanternworks/nightmarket/internal/database"
	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/license"
	"github.com/lanternworks/nightmarket/internal/market"
	"github.com/lanternworks/nightmarket/internal/merchant"
	"github.com/lanternworks/nightmarket/internal/player"
	"github.com/lanternworks/nightmarket/internal/repository"
	"github.com/lanternworks/nightmarket/internal/trade"
)

// MockPlayerService mocks player.Service
type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) Register(ctx context.Context, username, displayName string) (*domain.Player, error) {
	args := m.Called(ctx, username, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) Login(ctx context.Context, username, playerKey string) (*domain.Player, error) {
	args := m.Called(ctx, username, playerKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) GetProfile(ctx context.Context, playerID string) (*domain.Profile, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockPlayerService) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) ListInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockPlayerService) UpdateLocation(ctx context.Context, playerID string, pos domain.Position) error {
	args := m.Called(ctx, playerID, pos)
	return args.Error(0)
}

func (m *MockPlayerService) ClaimDailyBonus(ctx context.Context, playerID string) (*player.BonusResult, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*player.BonusResult), args.Error(1)
}

// MockTradeService mocks trade.Service
type MockTradeService struct {
	mock.Mock
}

func (m *MockTradeService) Buy(ctx context.Context, playerID, merchantID, itemName string, quantity int) (*trade.BuyResult, error) {
	args := m.Called(ctx, playerID, merchantID, itemName, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.BuyResult), args.Error(1)
}

func (m *MockTradeService) Sell(ctx context.Context, playerID, inventoryItemID, merchantID string, quantity int) (*trade.SellResult, error) {
	args := m.Called(ctx, playerID, inventoryItemID, merchantID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SellResult), args.Error(1)
}

func (m *MockTradeService) GetTradeHistory(ctx context.Context, playerID string, limit int) ([]domain.TradeRecord, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TradeRecord), args.Error(1)
}

func (m *MockTradeService) ListRecentTrades(ctx context.Context, limit int) ([]domain.TradeRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TradeRecord), args.Error(1)
}

// MockLicenseService mocks license.Service
type MockLicenseService struct {
	mock.Mock
}

func (m *MockLicenseService) UpgradeLicense(ctx context.Context, playerID string) (*license.UpgradeResult, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*license.UpgradeResult), args.Error(1)
}

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

// MockCatalogRepository mocks repository.Catalog
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

// MockDBPool mocks database.Pool
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// Interface compliance checks
var (
	_ player.Service     = (*MockPlayerService)(nil)
	_ trade.Service      = (*MockTradeService)(nil)
	_ license.Service    = (*MockLicenseService)(nil)
	_ market.Service     = (*MockMarketService)(nil)
	_ merchant.Service   = (*MockMerchantService)(nil)
	_ repository.Catalog = (*MockCatalogRepository)(nil)
	_ database.Pool      = (*MockDBPool)(nil)
)
