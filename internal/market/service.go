package market

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/repository"
	"github.com/lanternworks/nightmarket/internal/utils"
)

// Service defines market price operations
type Service interface {
	// CurrentPrice returns the live quote for one item
	CurrentPrice(ctx context.Context, itemName string) (int, error)
	// GetPrice returns the full quote row for one item
	GetPrice(ctx context.Context, itemName string) (*domain.MarketPrice, error)
	// ListPrices returns every quote ordered by item name
	ListPrices(ctx context.Context) ([]domain.MarketPrice, error)
	// ListPricesByDistrict returns the quotes traded in one district
	ListPricesByDistrict(ctx context.Context, district string) ([]domain.MarketPrice, error)
	// RecomputePrice advances one item a single step of the price walk
	RecomputePrice(ctx context.Context, itemName string) (int, error)
	// RecomputeAll advances every known item one step and reports how many rows moved
	RecomputeAll(ctx context.Context) (int, error)
	// UpdateDemandMultiplier sets the descriptive market-heat stat for one item
	UpdateDemandMultiplier(ctx context.Context, itemName string, multiplier float64) error
}

type service struct {
	repo      repository.Market
	publisher event.Publisher
	rnd       func() float64 // For the price walk
}

// NewService creates a new market service
func NewService(repo repository.Market, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		rnd:       utils.RandomFloat,
	}
}

// nextPrice advances one step of the bounded random walk. The draw comes in
// as [0,1) and maps onto a variation in [-bound, +bound); the candidate is
// clamped into the band around the base price before truncation.
func nextPrice(current, base int, draw float64) int {
	variation := draw*2*PriceVariationBound - PriceVariationBound
	candidate := float64(current) * (1 + variation)

	lower := float64(base) * PriceBandLower
	upper := float64(base) * PriceBandUpper
	if candidate < lower {
		candidate = lower
	}
	if candidate > upper {
		candidate = upper
	}

	next := int(math.Floor(candidate))
	if next < MinPrice {
		next = MinPrice
	}
	return next
}

func (s *service) CurrentPrice(ctx context.Context, itemName string) (int, error) {
	price, err := s.GetPrice(ctx, itemName)
	if err != nil {
		return 0, err
	}
	return price.CurrentPrice, nil
}

func (s *service) GetPrice(ctx context.Context, itemName string) (*domain.MarketPrice, error) {
	price, err := s.repo.GetPrice(ctx, itemName)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPriceFailed, err)
	}
	if price == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPriceNotFound, itemName)
	}
	return price, nil
}

func (s *service) ListPrices(ctx context.Context) ([]domain.MarketPrice, error) {
	prices, err := s.repo.ListPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListPricesFailed, err)
	}
	return prices, nil
}

func (s *service) ListPricesByDistrict(ctx context.Context, district string) ([]domain.MarketPrice, error) {
	prices, err := s.repo.ListPricesByDistrict(ctx, district)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListPricesFailed, err)
	}
	return prices, nil
}

func (s *service) RecomputePrice(ctx context.Context, itemName string) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRecomputePriceCalled, "item_name", itemName)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	price, err := tx.GetPriceForUpdate(ctx, itemName)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgGetPriceFailed, err)
	}
	if price == nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrPriceNotFound, itemName)
	}

	oldPrice := price.CurrentPrice
	next := nextPrice(price.CurrentPrice, price.BasePrice, s.rnd())
	if err := tx.UpdatePrice(ctx, price.ItemName, next, time.Now().UTC()); err != nil {
		return 0, fmt.Errorf(ErrMsgUpdatePriceFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	if s.publisher != nil && next != oldPrice {
		s.publisher.PublishWithRetry(ctx, event.NewPriceUpdatedEvent(price.ItemName, price.District, oldPrice, next, price.BasePrice))
	}

	log.Info(LogMsgPriceRecomputed, "item_name", price.ItemName, "old_price", oldPrice, "new_price", next)
	return next, nil
}

// RecomputeAll walks every quote inside one transaction. Items without a
// price row simply do not appear in the listing; rows are never invented.
func (s *service) RecomputeAll(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRecomputeAllCalled)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	prices, err := tx.ListPricesForUpdate(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgListPricesFailed, err)
	}

	now := time.Now().UTC()
	type priceMove struct {
		itemName string
		district string
		oldPrice int
		newPrice int
		base     int
	}
	moves := make([]priceMove, 0, len(prices))

	for _, price := range prices {
		next := nextPrice(price.CurrentPrice, price.BasePrice, s.rnd())
		if err := tx.UpdatePrice(ctx, price.ItemName, next, now); err != nil {
			return 0, fmt.Errorf(ErrMsgUpdatePriceFailed, err)
		}
		moves = append(moves, priceMove{
			itemName: price.ItemName,
			district: price.District,
			oldPrice: price.CurrentPrice,
			newPrice: next,
			base:     price.BasePrice,
		})
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	if s.publisher != nil {
		for _, m := range moves {
			if m.newPrice == m.oldPrice {
				continue
			}
			s.publisher.PublishWithRetry(ctx, event.NewPriceUpdatedEvent(m.itemName, m.district, m.oldPrice, m.newPrice, m.base))
		}
	}

	log.Info(LogMsgRecomputePassDone, "rows_updated", len(moves))
	return len(moves), nil
}

func (s *service) UpdateDemandMultiplier(ctx context.Context, itemName string, multiplier float64) error {
	if err := s.repo.UpdateDemandMultiplier(ctx, itemName, multiplier); err != nil {
		return fmt.Errorf(ErrMsgUpdateDemandFailed, err)
	}
	return nil
}
