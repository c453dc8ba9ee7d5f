package merchant

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/geo"
	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// Service handles merchant lookups and the periodic restock pass
type Service interface {
	GetMerchant(ctx context.Context, merchantID string) (*domain.Merchant, error)
	ListMerchants(ctx context.Context, district string) ([]domain.Merchant, error)
	NearbyMerchants(ctx context.Context, lat, lng, radiusM float64) ([]domain.MerchantDistance, error)
	Restock(ctx context.Context) (int, error)
}

type service struct {
	repo      repository.Merchant
	market    repository.Market
	publisher event.Publisher
	cache     *merchantCache
	now       func() time.Time
}

// NewService creates a new merchant service
func NewService(repo repository.Merchant, market repository.Market, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		market:    market,
		publisher: publisher,
		cache:     newMerchantCache(DefaultCacheSize, DefaultCacheTTL),
		now:       time.Now,
	}
}

func (s *service) GetMerchant(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	log := logger.FromContext(ctx)

	if merchant, ok := s.cache.Get(merchantID); ok {
		log.Debug(LogMsgCacheHit, "merchant_id", merchantID)
		return merchant, nil
	}

	merchant, err := s.repo.GetMerchantByID(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetMerchantFailed, err)
	}
	if merchant == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMerchantNotFound, merchantID)
	}

	s.cache.Set(merchantID, merchant)
	return merchant, nil
}

func (s *service) ListMerchants(ctx context.Context, district string) ([]domain.Merchant, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgListMerchantsCalled, "district", district)

	merchants, err := s.repo.ListMerchants(ctx, district)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListMerchantsFailed, err)
	}
	return merchants, nil
}

// NearbyMerchants filters all merchants by great-circle distance and sorts
// them nearest first. A non-positive radius falls back to the default and
// oversized requests are capped.
func (s *service) NearbyMerchants(ctx context.Context, lat, lng, radiusM float64) ([]domain.MerchantDistance, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgNearbyCalled, "lat", lat, "lng", lng, "radius_m", radiusM)

	origin := domain.Position{Lat: lat, Lng: lng}
	if !origin.Valid() {
		return nil, fmt.Errorf("%w: position (%f, %f) out of bounds", domain.ErrInvalidInput, lat, lng)
	}

	if radiusM <= 0 {
		radiusM = DefaultNearbyRadiusM
	}
	if radiusM > MaxNearbyRadiusM {
		radiusM = MaxNearbyRadiusM
	}

	merchants, err := s.repo.ListMerchants(ctx, "")
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListMerchantsFailed, err)
	}

	nearby := []domain.MerchantDistance{}
	for _, m := range merchants {
		d := geo.DistanceM(lat, lng, m.Position.Lat, m.Position.Lng)
		if d <= radiusM {
			nearby = append(nearby, domain.MerchantDistance{Merchant: m, DistanceM: d})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceM < nearby[j].DistanceM
	})

	return nearby, nil
}

// Restock refreshes every merchant's restocked_at stamp and drifts demand
// multipliers back toward neutral. Returns the number of merchants touched.
func (s *service) Restock(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRestockCalled)

	count, err := s.repo.TouchRestockedAt(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf(ErrMsgTouchRestockFailed, err)
	}

	drifted, err := s.driftDemand(ctx)
	if err != nil {
		return 0, err
	}

	// Stale restocked_at values must not outlive the pass
	s.cache.Clear()

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewMerchantRestockedEvent(count))
	}

	log.Info(LogMsgRestockDone, "merchant_count", count, "demand_writes", drifted)
	return count, nil
}

// driftDemand halves each item's distance from the neutral multiplier,
// snapping to 1.0 once inside the epsilon band. The multiplier is a market
// heat stat only and never feeds the price recompute.
func (s *service) driftDemand(ctx context.Context) (int, error) {
	prices, err := s.market.ListPrices(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgListPricesFailed, err)
	}

	drifted := 0
	for _, p := range prices {
		next := 1.0 + (p.DemandMultiplier-1.0)*DemandDriftFactor
		if math.Abs(next-1.0) < DemandDriftEpsilon {
			next = 1.0
		}
		if next == p.DemandMultiplier {
			continue
		}
		if err := s.market.UpdateDemandMultiplier(ctx, p.ItemName, next); err != nil {
			return drifted, fmt.Errorf(ErrMsgUpdateDemandFailed, err)
		}
		drifted++
	}
	return drifted, nil
}
