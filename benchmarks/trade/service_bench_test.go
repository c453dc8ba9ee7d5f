package trade_bench

import (
	"context"
	"testing"

	"github.com/lanternworks/nightmarket/internal/concurrency"
	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/repository"
	"github.com/lanternworks/nightmarket/internal/trade"
)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

const (
	benchPlayerID   = "11111111-1111-1111-1111-111111111111"
	benchMerchantID = "22222222-2222-2222-2222-222222222222"
	benchStackID    = "33333333-3333-3333-3333-333333333333"
	benchItem       = "copper wiring"
)

type StubRepository struct{}

func (s *StubRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	return stubPlayer(), nil
}

func (s *StubRepository) GetMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	return &domain.Merchant{
		ID:              benchMerchantID,
		Name:            "Bench Components",
		Type:            "electronics",
		District:        "neon row",
		RequiredLicense: 1,
		Stock:           []string{benchItem, "scrap alloy"},
	}, nil
}

func (s *StubRepository) GetPrice(ctx context.Context, itemName string) (*domain.MarketPrice, error) {
	return &domain.MarketPrice{
		ItemName:     itemName,
		District:     "neon row",
		BasePrice:    100,
		CurrentPrice: 120,
	}, nil
}

func (s *StubRepository) GetCatalogEntry(ctx context.Context, itemName string) (*domain.CatalogEntry, error) {
	return &domain.CatalogEntry{
		ItemName:        itemName,
		Category:        "components",
		Grade:           domain.GradeCommon,
		RequiredLicense: 1,
		BasePrice:       100,
	}, nil
}

func (s *StubRepository) ListTradesByPlayer(ctx context.Context, playerID string, limit int) ([]domain.TradeRecord, error) {
	return nil, nil
}

func (s *StubRepository) ListRecentTrades(ctx context.Context, limit int) ([]domain.TradeRecord, error) {
	return nil, nil
}

func (s *StubRepository) BeginTx(ctx context.Context) (repository.TradeTx, error) {
	return &StubTx{}, nil
}

// stubPlayer returns a fresh player each call so balance mutations from
// one iteration never leak into the next.
func stubPlayer() *domain.Player {
	return &domain.Player{
		ID:          benchPlayerID,
		Username:    "bench",
		Money:       10_000_000,
		TrustPoints: 300,
		LicenseTier: 3,
	}
}

type StubTx struct{}

func (s *StubTx) Commit(ctx context.Context) error   { return nil }
func (s *StubTx) Rollback(ctx context.Context) error { return nil }

func (s *StubTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	return stubPlayer(), nil
}

func (s *StubTx) UpdatePlayer(ctx context.Context, player *domain.Player) error { return nil }

func (s *StubTx) GetInventoryOccupancy(ctx context.Context, playerID string) (int, error) {
	return 0, nil
}

func (s *StubTx) GetInventoryItemByID(ctx context.Context, itemID, playerID string) (*domain.InventoryItem, error) {
	return &domain.InventoryItem{
		ID:           benchStackID,
		PlayerID:     benchPlayerID,
		ItemName:     benchItem,
		Category:     "components",
		BasePrice:    100,
		CurrentPrice: 120,
		Grade:        domain.GradeCommon,
		Quantity:     1000,
	}, nil
}

func (s *StubTx) UpsertInventoryItem(ctx context.Context, item *domain.InventoryItem) error {
	return nil
}

func (s *StubTx) DecrementInventoryItem(ctx context.Context, itemID string, quantity int) error {
	return nil
}

func (s *StubTx) InsertTradeRecord(ctx context.Context, record *domain.TradeRecord) error {
	return nil
}

// StubPublisher implements event.Publisher
type StubPublisher struct{}

func (p *StubPublisher) PublishWithRetry(ctx context.Context, e event.Event) {}

// --- Benchmark Functions ---

// BenchmarkBuy measures the full purchase protocol with persistence stubbed
// out: precondition ordering, classification and effect assembly.
func BenchmarkBuy(b *testing.B) {
	svc := trade.NewService(&StubRepository{}, concurrency.NewLockManager(), &StubPublisher{})
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// The stub returns a fresh funded player every iteration, so the
		// purchase never fails on funds or capacity.
		if _, err := svc.Buy(ctx, benchPlayerID, benchMerchantID, benchItem, 5); err != nil {
			b.Fatalf("Buy failed: %v", err)
		}
	}
}

// BenchmarkSell measures the liquidation path, including the acquisition
// price payout math.
func BenchmarkSell(b *testing.B) {
	svc := trade.NewService(&StubRepository{}, concurrency.NewLockManager(), &StubPublisher{})
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Sell(ctx, benchPlayerID, benchStackID, benchMerchantID, 5); err != nil {
			b.Fatalf("Sell failed: %v", err)
		}
	}
}

// BenchmarkBuy_Contended runs buys for the same player from parallel
// goroutines, exercising the per-player lock.
func BenchmarkBuy_Contended(b *testing.B) {
	svc := trade.NewService(&StubRepository{}, concurrency.NewLockManager(), &StubPublisher{})
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.Buy(ctx, benchPlayerID, benchMerchantID, benchItem, 1); err != nil {
				b.Fatalf("Buy failed: %v", err)
			}
		}
	})
}
