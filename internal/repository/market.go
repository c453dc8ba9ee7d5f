package repository

import (
	"context"
	"time"

	"github.com/lanternworks/nightmarket/internal/domain"
)

// Market defines the interface for market price persistence
type Market interface {
	GetPrice(ctx context.Context, itemName string) (*domain.MarketPrice, error)
	ListPrices(ctx context.Context) ([]domain.MarketPrice, error)
	ListPricesByDistrict(ctx context.Context, district string) ([]domain.MarketPrice, error)
	UpdateDemandMultiplier(ctx context.Context, itemName string, multiplier float64) error

	BeginTx(ctx context.Context) (MarketTx, error)
}

// MarketTx defines the interface for market transactions, used so a
// recompute pass lands atomically.
type MarketTx interface {
	Tx
	GetPriceForUpdate(ctx context.Context, itemName string) (*domain.MarketPrice, error)
	ListPricesForUpdate(ctx context.Context) ([]domain.MarketPrice, error)
	UpdatePrice(ctx context.Context, itemName string, currentPrice int, updatedAt time.Time) error
}
