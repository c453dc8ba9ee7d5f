package trade

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternworks/nightmarket/internal/concurrency"
	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
)

const (
	testPlayerID   = "11111111-1111-1111-1111-111111111111"
	testMerchantID = "b7b1e7a2-0c5e-4f4a-9a3f-1d2e3c4b5a69"
	testItemID     = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
)

func createTestPlayer(tier, money int) *domain.Player {
	return &domain.Player{
		ID:          testPlayerID,
		Username:    "vesna",
		DisplayName: "Vesna",
		Money:       money,
		TrustPoints: 20,
		LicenseTier: tier,
		Position:    domain.Position{Lat: 52.2297, Lng: 21.0122},
	}
}

func createTestMerchant(requiredTier int, stock ...string) *domain.Merchant {
	return &domain.Merchant{
		ID:              testMerchantID,
		Name:            "Mirek's Salvage",
		Type:            "salvage",
		District:        "dockside",
		Position:        domain.Position{Lat: 52.2310, Lng: 21.0150},
		RequiredLicense: requiredTier,
		Stock:           stock,
		TrustLevel:      1,
	}
}

func createTestQuote(name string, base, current int) *domain.MarketPrice {
	return &domain.MarketPrice{
		ItemName:     name,
		District:     "dockside",
		BasePrice:    base,
		CurrentPrice: current,
	}
}

func createTestEntry(name, category string, grade domain.Grade, tier, base int) *domain.CatalogEntry {
	return &domain.CatalogEntry{
		ItemName:        name,
		Category:        category,
		Grade:           grade,
		RequiredLicense: tier,
		BasePrice:       base,
	}
}

func createTestStack(name string, quantity, acquisitionPrice int) *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:              testItemID,
		PlayerID:        testPlayerID,
		ItemName:        name,
		Category:        "provisions",
		BasePrice:       acquisitionPrice,
		CurrentPrice:    acquisitionPrice,
		Grade:           domain.GradeCommon,
		RequiredLicense: 1,
		Quantity:        quantity,
	}
}

func newTestService(repo *MockTradeRepository, pub event.Publisher) Service {
	return NewService(repo, concurrency.NewLockManager(), pub)
}

func TestValidateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantErr  bool
	}{
		{"single unit", 1, false},
		{"typical batch", 25, false},
		{"at the cap", domain.MaxTransactionQuantity, false},
		{"zero", 0, true},
		{"negative", -5, true},
		{"over the cap", domain.MaxTransactionQuantity + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQuantity(tt.quantity)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClassify_CatalogWins(t *testing.T) {
	// A catalog row overrides whatever the display name suggests.
	entry := createTestEntry("legendary cortex shard", "artifacts", domain.GradeRare, 2, 500)

	grade, tier, category := classify(entry, "legendary cortex shard")

	assert.Equal(t, domain.GradeRare, grade)
	assert.Equal(t, 2, tier)
	assert.Equal(t, "artifacts", category)
}

func TestClassify_MarkerFallback(t *testing.T) {
	tests := []struct {
		name  string
		grade domain.Grade
		tier  int
	}{
		{"legendary cortex shard", domain.GradeLegendary, 4},
		{"high-grade optics", domain.GradeEpic, 3},
		{"mid-tier processor", domain.GradeRare, 2},
		{"common scrap", domain.GradeCommon, 1},
		{"unmarked trinket", domain.GradeCommon, 1},
	}

	for _, tt := range tests {
		grade, tier, category := classify(nil, tt.name)
		assert.Equal(t, tt.grade, grade, tt.name)
		assert.Equal(t, tt.tier, tier, tt.name)
		assert.Equal(t, CategoryFallback, category, tt.name)
	}
}

func TestGetTradeHistory_ClampsLimit(t *testing.T) {
	ctx := context.Background()
	records := []domain.TradeRecord{{ID: "t1", ItemName: "scrap alloy"}}

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"zero falls back to default", 0, DefaultTradeHistoryLimit},
		{"negative falls back to default", -3, DefaultTradeHistoryLimit},
		{"in range passes through", 7, 7},
		{"oversized clamps to max", 100000, domain.MaxTradeHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTradeRepository)
			mockRepo.On("ListTradesByPlayer", ctx, testPlayerID, tt.wantLimit).Return(records, nil)

			svc := newTestService(mockRepo, nil)

			got, err := svc.GetTradeHistory(ctx, testPlayerID, tt.limit)
			require.NoError(t, err)
			assert.Len(t, got, 1)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestListRecentTrades(t *testing.T) {
	ctx := context.Background()
	records := []domain.TradeRecord{{ID: "t1"}, {ID: "t2"}}

	mockRepo := new(MockTradeRepository)
	mockRepo.On("ListRecentTrades", ctx, 2).Return(records, nil)

	svc := newTestService(mockRepo, nil)

	got, err := svc.ListRecentTrades(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
