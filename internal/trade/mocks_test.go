package trade

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// MockTradeRepository implements repository.Trade for testing
type MockTradeRepository struct {
	mock.Mock
}

func (m *MockTradeRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockTradeRepository) GetMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Merchant), args.Error(1)
}

func (m *MockTradeRepository) GetPrice(ctx context.Context, itemName string) (*domain.MarketPrice, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketPrice), args.Error(1)
}

func (m *MockTradeRepository) GetCatalogEntry(ctx context.Context, itemName string) (*domain.CatalogEntry, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Error(1)
}

func (m *MockTradeRepository) ListTradesByPlayer(ctx context.Context, playerID string, limit int) ([]domain.TradeRecord, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TradeRecord), args.Error(1)
}

func (m *MockTradeRepository) ListRecentTrades(ctx context.Context, limit int) ([]domain.TradeRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TradeRecord), args.Error(1)
}

func (m *MockTradeRepository) BeginTx(ctx context.Context) (repository.TradeTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.TradeTx), args.Error(1)
}

// Ensure MockTradeRepository implements repository.Trade
var _ repository.Trade = (*MockTradeRepository)(nil)

// MockTradeTx implements repository.TradeTx for testing
type MockTradeTx struct {
	mock.Mock
}

func (m *MockTradeTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockTradeTx) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockTradeTx) GetInventoryOccupancy(ctx context.Context, playerID string) (int, error) {
	args := m.Called(ctx, playerID)
	return args.Int(0), args.Error(1)
}

func (m *MockTradeTx) GetInventoryItemByID(ctx context.Context, itemID, playerID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockTradeTx) UpsertInventoryItem(ctx context.Context, item *domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockTradeTx) DecrementInventoryItem(ctx context.Context, itemID string, quantity int) error {
	args := m.Called(ctx, itemID, quantity)
	return args.Error(0)
}

func (m *MockTradeTx) InsertTradeRecord(ctx context.Context, record *domain.TradeRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTradeTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTradeTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure MockTradeTx implements repository.TradeTx
var _ repository.TradeTx = (*MockTradeTx)(nil)

// MockPublisher implements event.Publisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, ev event.Event) {
	m.Called(ctx, ev)
}

// Ensure MockPublisher implements event.Publisher
var _ event.Publisher = (*MockPublisher)(nil)
