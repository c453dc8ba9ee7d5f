package repository

import (
	"context"

	"github.com/lanternworks/nightmarket/internal/domain"
)

// Trade defines the persistence surface of the trade engine
type Trade interface {
	GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error)
	GetMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error)
	GetPrice(ctx context.Context, itemName string) (*domain.MarketPrice, error)
	GetCatalogEntry(ctx context.Context, itemName string) (*domain.CatalogEntry, error)
	ListTradesByPlayer(ctx context.Context, playerID string, limit int) ([]domain.TradeRecord, error)
	ListRecentTrades(ctx context.Context, limit int) ([]domain.TradeRecord, error)

	BeginTx(ctx context.Context) (TradeTx, error)
}

// TradeTx defines the interface for trade transactions. Every mutation of a
// buy or sell happens through one TradeTx so a commit-phase failure rolls
// back the whole trade.
type TradeTx interface {
	Tx
	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player *domain.Player) error
	GetInventoryOccupancy(ctx context.Context, playerID string) (int, error)
	GetInventoryItemByID(ctx context.Context, itemID, playerID string) (*domain.InventoryItem, error)
	UpsertInventoryItem(ctx context.Context, item *domain.InventoryItem) error
	DecrementInventoryItem(ctx context.Context, itemID string, quantity int) error
	InsertTradeRecord(ctx context.Context, record *domain.TradeRecord) error
}
