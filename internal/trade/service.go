package trade

import (
	"context"
	"fmt"

	"github.com/lanternworks/nightmarket/internal/concurrency"
	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// BuyResult contains the result of a buy operation
type BuyResult struct {
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
	TotalPrice int    `json:"total_price"`
	Money      int    `json:"money"`
}

// SellResult contains the result of a sell operation
type SellResult struct {
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
	TotalPrice int    `json:"total_price"`
	Money      int    `json:"money"`
}

// Service defines the trade engine operations
type Service interface {
	// Buy purchases quantity units of an item from a merchant
	Buy(ctx context.Context, playerID, merchantID, itemName string, quantity int) (*BuyResult, error)
	// Sell liquidates quantity units of an owned inventory stack to a merchant
	Sell(ctx context.Context, playerID, inventoryItemID, merchantID string, quantity int) (*SellResult, error)
	// GetTradeHistory returns the player's most recent trades, newest first
	GetTradeHistory(ctx context.Context, playerID string, limit int) ([]domain.TradeRecord, error)
	// ListRecentTrades returns the newest trades across the whole market
	ListRecentTrades(ctx context.Context, limit int) ([]domain.TradeRecord, error)
}

type service struct {
	repo      repository.Trade
	locks     *concurrency.LockManager
	publisher event.Publisher
}

// NewService creates a new trade service
func NewService(repo repository.Trade, locks *concurrency.LockManager, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		locks:     locks,
		publisher: publisher,
	}
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, domain.ErrInvalidInput)
	}
	if quantity > domain.MaxTransactionQuantity {
		return fmt.Errorf(ErrMsgQuantityExceedsMaxFmt, quantity, domain.MaxTransactionQuantity, domain.ErrInvalidInput)
	}
	return nil
}

// classify resolves grade, required license tier and category for an item,
// catalog-first with display-name markers as the fallback.
func classify(entry *domain.CatalogEntry, itemName string) (domain.Grade, int, string) {
	if entry != nil {
		return entry.Grade, entry.RequiredLicense, entry.Category
	}
	grade, tier := domain.ClassifyItemName(itemName)
	return grade, tier, CategoryFallback
}

func clampHistoryLimit(limit int) int {
	if limit <= 0 {
		return DefaultTradeHistoryLimit
	}
	if limit > domain.MaxTradeHistoryLimit {
		return domain.MaxTradeHistoryLimit
	}
	return limit
}

func (s *service) GetTradeHistory(ctx context.Context, playerID string, limit int) ([]domain.TradeRecord, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgTradeHistoryCalled, "player_id", playerID, "limit", limit)

	records, err := s.repo.ListTradesByPlayer(ctx, playerID, clampHistoryLimit(limit))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListTradesFailed, err)
	}
	return records, nil
}

func (s *service) ListRecentTrades(ctx context.Context, limit int) ([]domain.TradeRecord, error) {
	records, err := s.repo.ListRecentTrades(ctx, clampHistoryLimit(limit))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListTradesFailed, err)
	}
	return records, nil
}
