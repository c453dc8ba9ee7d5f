package seed

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lanternworks/nightmarket/internal/domain"
)

func TestSeedLoader_SyncToDatabase(t *testing.T) {
	loader := NewLoader()

	t.Run("fresh database inserts everything", func(t *testing.T) {
		config := validSeed()
		configPath := createTempSeed(t, "{}")
		catalog, quotes, merchants, syncStore := freshStores()

		syncStore.On("GetSyncMetadata", mock.Anything, ConfigFileName).Return(nil, nil)
		catalog.On("ListCatalog", mock.Anything).Return([]domain.CatalogEntry{}, nil)
		catalog.On("UpsertCatalogEntry", mock.Anything, mock.Anything).Return(nil)
		quotes.On("GetPrice", mock.Anything, mock.Anything).Return(nil, nil)
		quotes.On("SeedPrice", mock.Anything, mock.Anything).Return(nil)
		merchants.On("GetMerchantByID", mock.Anything, mock.Anything).Return(nil, nil)
		merchants.On("UpsertMerchant", mock.Anything, mock.Anything).Return(nil)
		syncStore.On("UpsertSyncMetadata", mock.Anything, mock.MatchedBy(func(meta *domain.SyncMetadata) bool {
			return meta.ConfigName == ConfigFileName && meta.FileHash != ""
		})).Return(nil)

		result, err := loader.SyncToDatabase(context.Background(), config, stores(catalog, quotes, merchants, syncStore), configPath)
		require.NoError(t, err)

		assert.Equal(t, 5, result.Inserted, "2 catalog entries, 2 quotes, 1 merchant")
		assert.Equal(t, 0, result.Updated)
		assert.Equal(t, 0, result.Skipped)
		catalog.AssertNumberOfCalls(t, "UpsertCatalogEntry", 2)
		quotes.AssertNumberOfCalls(t, "SeedPrice", 2)
		merchants.AssertNumberOfCalls(t, "UpsertMerchant", 1)
		syncStore.AssertExpectations(t)
	})

	t.Run("unchanged file skips sync entirely", func(t *testing.T) {
		config := validSeed()
		configPath := createTempSeed(t, "{}")
		catalog, quotes, merchants, syncStore := freshStores()

		syncStore.On("GetSyncMetadata", mock.Anything, ConfigFileName).Return(currentMetadata(t, configPath), nil)

		result, err := loader.SyncToDatabase(context.Background(), config, stores(catalog, quotes, merchants, syncStore), configPath)
		require.NoError(t, err)

		assert.Equal(t, &SyncResult{}, result)
		catalog.AssertNotCalled(t, "ListCatalog", mock.Anything)
		quotes.AssertNotCalled(t, "SeedPrice", mock.Anything, mock.Anything)
		merchants.AssertNotCalled(t, "UpsertMerchant", mock.Anything, mock.Anything)
		syncStore.AssertNotCalled(t, "UpsertSyncMetadata", mock.Anything, mock.Anything)
	})

	t.Run("matching rows are skipped", func(t *testing.T) {
		config := validSeed()
		configPath := createTempSeed(t, "{}")
		catalog, quotes, merchants, syncStore := freshStores()

		syncStore.On("GetSyncMetadata", mock.Anything, ConfigFileName).Return(nil, nil)
		catalog.On("ListCatalog", mock.Anything).Return(seededCatalog(config), nil)
		// Walked prices differ from base; only district and base matter
		quotes.On("GetPrice", mock.Anything, "scrap alloy").
			Return(&domain.MarketPrice{ItemName: "scrap alloy", District: "dockside", BasePrice: 120, CurrentPrice: 135}, nil)
		quotes.On("GetPrice", mock.Anything, "signal jammer").
			Return(&domain.MarketPrice{ItemName: "signal jammer", District: "neon row", BasePrice: 1800, CurrentPrice: 1710}, nil)
		merchants.On("GetMerchantByID", mock.Anything, config.Merchants[0].MerchantID).
			Return(seededMerchant(config), nil)
		syncStore.On("UpsertSyncMetadata", mock.Anything, mock.Anything).Return(nil)

		result, err := loader.SyncToDatabase(context.Background(), config, stores(catalog, quotes, merchants, syncStore), configPath)
		require.NoError(t, err)

		assert.Equal(t, 0, result.Inserted)
		assert.Equal(t, 0, result.Updated)
		assert.Equal(t, 5, result.Skipped)
		catalog.AssertNotCalled(t, "UpsertCatalogEntry", mock.Anything, mock.Anything)
		quotes.AssertNotCalled(t, "SeedPrice", mock.Anything, mock.Anything)
		merchants.AssertNotCalled(t, "UpsertMerchant", mock.Anything, mock.Anything)
	})

	t.Run("changed base price updates catalog and quote", func(t *testing.T) {
		config := validSeed()
		configPath := createTempSeed(t, "{}")
		catalog, quotes, merchants, syncStore := freshStores()

		existing := seededCatalog(config)
		existing[0].BasePrice = 100 // seed now says 120

		syncStore.On("GetSyncMetadata", mock.Anything, ConfigFileName).Return(nil, nil)
		catalog.On("ListCatalog", mock.Anything).Return(existing, nil)
		catalog.On("UpsertCatalogEntry", mock.Anything, mock.MatchedBy(func(e *domain.CatalogEntry) bool {
			return e.ItemName == "scrap alloy" && e.BasePrice == 120
		})).Return(nil)
		quotes.On("GetPrice", mock.Anything, "scrap alloy").
			Return(&domain.MarketPrice{ItemName: "scrap alloy", District: "dockside", BasePrice: 100, CurrentPrice: 97}, nil)
		quotes.On("GetPrice", mock.Anything, "signal jammer").
			Return(&domain.MarketPrice{ItemName: "signal jammer", District: "neon row", BasePrice: 1800, CurrentPrice: 1800}, nil)
		quotes.On("SeedPrice", mock.Anything, mock.MatchedBy(func(p *domain.MarketPrice) bool {
			return p.ItemName == "scrap alloy" && p.BasePrice == 120
		})).Return(nil)
		merchants.On("GetMerchantByID", mock.Anything, config.Merchants[0].MerchantID).
			Return(seededMerchant(config), nil)
		syncStore.On("UpsertSyncMetadata", mock.Anything, mock.Anything).Return(nil)

		result, err := loader.SyncToDatabase(context.Background(), config, stores(catalog, quotes, merchants, syncStore), configPath)
		require.NoError(t, err)

		assert.Equal(t, 0, result.Inserted)
		assert.Equal(t, 2, result.Updated, "catalog entry and its quote")
		assert.Equal(t, 3, result.Skipped)
	})

	t.Run("metadata write failure does not fail the sync", func(t *testing.T) {
		config := validSeed()
		configPath := createTempSeed(t, "{}")
		catalog, quotes, merchants, syncStore := freshStores()

		syncStore.On("GetSyncMetadata", mock.Anything, ConfigFileName).Return(nil, nil)
		catalog.On("ListCatalog", mock.Anything).Return([]domain.CatalogEntry{}, nil)
		catalog.On("UpsertCatalogEntry", mock.Anything, mock.Anything).Return(nil)
		quotes.On("GetPrice", mock.Anything, mock.Anything).Return(nil, nil)
		quotes.On("SeedPrice", mock.Anything, mock.Anything).Return(nil)
		merchants.On("GetMerchantByID", mock.Anything, mock.Anything).Return(nil, nil)
		merchants.On("UpsertMerchant", mock.Anything, mock.Anything).Return(nil)
		syncStore.On("UpsertSyncMetadata", mock.Anything, mock.Anything).Return(assert.AnError)

		result, err := loader.SyncToDatabase(context.Background(), config, stores(catalog, quotes, merchants, syncStore), configPath)
		require.NoError(t, err)
		assert.Equal(t, 5, result.Inserted)
	})

	t.Run("repository failure aborts the sync", func(t *testing.T) {
		config := validSeed()
		configPath := createTempSeed(t, "{}")
		catalog, quotes, merchants, syncStore := freshStores()

		syncStore.On("GetSyncMetadata", mock.Anything, ConfigFileName).Return(nil, nil)
		catalog.On("ListCatalog", mock.Anything).Return(nil, assert.AnError)

		_, err := loader.SyncToDatabase(context.Background(), config, stores(catalog, quotes, merchants, syncStore), configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list existing catalog")
		quotes.AssertNotCalled(t, "SeedPrice", mock.Anything, mock.Anything)
	})

	t.Run("missing seed file fails the change check", func(t *testing.T) {
		config := validSeed()
		catalog, quotes, merchants, syncStore := freshStores()

		_, err := loader.SyncToDatabase(context.Background(), config, stores(catalog, quotes, merchants, syncStore), "/nonexistent/market_seed.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check if seed file changed")
	})
}

// Helper functions

func freshStores() (*MockCatalogRepository, *MockQuoteStore, *MockMerchantRepository, *MockSyncStore) {
	return new(MockCatalogRepository), new(MockQuoteStore), new(MockMerchantRepository), new(MockSyncStore)
}

func stores(catalog *MockCatalogRepository, quotes *MockQuoteStore, merchants *MockMerchantRepository, syncStore *MockSyncStore) Stores {
	return Stores{
		Catalog:   catalog,
		Quotes:    quotes,
		Merchants: merchants,
		Sync:      syncStore,
	}
}

// currentMetadata builds sync metadata matching the file on disk, so the
// change check reports unchanged.
func currentMetadata(t *testing.T, configPath string) *domain.SyncMetadata {
	t.Helper()

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	info, err := os.Stat(configPath)
	require.NoError(t, err)

	hash := sha256.Sum256(data)
	return &domain.SyncMetadata{
		ConfigName:  ConfigFileName,
		FileHash:    hex.EncodeToString(hash[:]),
		FileModTime: info.ModTime(),
	}
}

// seededCatalog converts the seed defs to the rows ListCatalog would return
func seededCatalog(config *Config) []domain.CatalogEntry {
	entries := make([]domain.CatalogEntry, 0, len(config.Catalog))
	for _, def := range config.Catalog {
		entries = append(entries, domain.CatalogEntry{
			ItemName:        def.ItemName,
			Category:        def.Category,
			Grade:           domain.Grade(def.Grade),
			RequiredLicense: def.RequiredLicense,
			BasePrice:       def.BasePrice,
		})
	}
	return entries
}

// seededMerchant converts the first merchant def to the row the repository
// would return
func seededMerchant(config *Config) *domain.Merchant {
	def := config.Merchants[0]
	return &domain.Merchant{
		ID:              def.MerchantID,
		Name:            def.Name,
		Type:            def.Type,
		District:        def.District,
		Position:        domain.Position{Lat: def.Lat, Lng: def.Lng},
		RequiredLicense: def.RequiredLicense,
		Stock:           def.Stock,
		TrustLevel:      def.TrustLevel,
	}
}
