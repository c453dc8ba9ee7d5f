package seed

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/license"
	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/repository"
	"github.com/lanternworks/nightmarket/internal/validation"
)

// Sentinel errors for the seed loader
var (
	ErrDuplicateEntry  = errors.New("duplicate seed entry")
	ErrUnknownItem     = errors.New("unknown item")
	ErrUnknownDistrict = errors.New("unknown district")

	ErrInvalidSeed = errors.New("invalid seed data")
)

// Schema paths
const (
	SeedSchemaPath = "configs/schemas/market_seed.schema.json"
)

// Config represents the market seed JSON file
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Districts []string      `json:"districts"`
	Catalog   []CatalogDef  `json:"catalog"`
	Quotes    []QuoteDef    `json:"quotes"`
	Merchants []MerchantDef `json:"merchants"`
}

// CatalogDef defines one tradeable item in the seed file
type CatalogDef struct {
	ItemName        string `json:"item_name"`
	Category        string `json:"category"`
	Grade           string `json:"grade"`
	RequiredLicense int    `json:"required_license"`
	BasePrice       int    `json:"base_price"`
}

// QuoteDef assigns an item's single market quote to a district. Base and
// current price derive from the catalog entry at seed time.
type QuoteDef struct {
	ItemName string `json:"item_name"`
	District string `json:"district"`
}

// MerchantDef defines one trading post in the seed file
type MerchantDef struct {
	MerchantID      string   `json:"merchant_id"`
	Name            string   `json:"name"`
	Type            string   `json:"merchant_type"`
	District        string   `json:"district"`
	Lat             float64  `json:"lat"`
	Lng             float64  `json:"lng"`
	RequiredLicense int      `json:"required_license"`
	Stock           []string `json:"stock_items"`
	TrustLevel      int      `json:"trust_level"`
}

// QuoteStore is the quote persistence surface seeding writes through.
// The postgres market repository satisfies it.
type QuoteStore interface {
	GetPrice(ctx context.Context, itemName string) (*domain.MarketPrice, error)
	SeedPrice(ctx context.Context, price *domain.MarketPrice) error
}

// SyncStore persists seed sync bookkeeping. The postgres catalog
// repository satisfies it.
type SyncStore interface {
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error
}

// Stores groups the repositories the seed sync writes through
type Stores struct {
	Catalog   repository.Catalog
	Quotes    QuoteStore
	Merchants repository.Merchant
	Sync      SyncStore
}

// Loader handles loading and validating the market seed file
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, stores Stores, configPath string) (*SyncResult, error)
}

// SyncResult contains the result of syncing the seed to the database
type SyncResult struct {
	Inserted int
	Updated  int
	Skipped  int
}

type seedLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &seedLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses a market seed JSON file
func (l *seedLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSeedFileFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, SeedSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseSeedFailed, err)
	}

	return &config, nil
}

// Validate checks the seed data for internal consistency. Cross-references
// are enforced here rather than in the schema: every quote and every
// merchant stock entry must name a catalogued item, every district
// reference must name a declared district, and every catalogued item must
// carry exactly one quote.
func (l *seedLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidSeed, ErrMsgSeedNil)
	}

	districts, err := l.validateDistricts(config)
	if err != nil {
		return err
	}

	items, err := l.validateCatalog(config)
	if err != nil {
		return err
	}

	if err := l.validateQuotes(config, districts, items); err != nil {
		return err
	}

	return l.validateMerchants(config, districts, items)
}

func (l *seedLoader) validateDistricts(config *Config) (map[string]bool, error) {
	if len(config.Districts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSeed, ErrMsgNoDistrictsDefined)
	}

	districts := make(map[string]bool, len(config.Districts))
	for i, district := range config.Districts {
		if district == "" {
			return nil, fmt.Errorf(ErrFmtDistrictAtIndexEmpty, ErrInvalidSeed, i)
		}
		if districts[district] {
			return nil, fmt.Errorf("%w: district '%s'", ErrDuplicateEntry, district)
		}
		districts[district] = true
	}
	return districts, nil
}

func (l *seedLoader) validateCatalog(config *Config) (map[string]bool, error) {
	if len(config.Catalog) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSeed, ErrMsgNoCatalogDefined)
	}

	items := make(map[string]bool, len(config.Catalog))
	for i := range config.Catalog {
		entry := &config.Catalog[i]

		if entry.ItemName == "" {
			return nil, fmt.Errorf(ErrFmtEntryAtIndexEmpty, ErrInvalidSeed, i)
		}
		if items[entry.ItemName] {
			return nil, fmt.Errorf("%w: catalog entry '%s'", ErrDuplicateEntry, entry.ItemName)
		}
		items[entry.ItemName] = true

		if entry.Category == "" {
			return nil, fmt.Errorf(ErrFmtEntryEmptyCategory, ErrInvalidSeed, entry.ItemName)
		}
		if !isValidGrade(entry.Grade) {
			return nil, fmt.Errorf(ErrFmtEntryUnknownGrade, ErrInvalidSeed, entry.ItemName, entry.Grade)
		}
		if entry.RequiredLicense < license.MinTier || entry.RequiredLicense > license.MaxTier {
			return nil, fmt.Errorf(ErrFmtEntryBadLicense, ErrInvalidSeed, entry.ItemName, license.MinTier, license.MaxTier)
		}
		if entry.BasePrice < 1 {
			return nil, fmt.Errorf(ErrFmtEntryBadBasePrice, ErrInvalidSeed, entry.ItemName)
		}
	}
	return items, nil
}

func (l *seedLoader) validateQuotes(config *Config, districts, items map[string]bool) error {
	if len(config.Quotes) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSeed, ErrMsgNoQuotesDefined)
	}

	quoted := make(map[string]bool, len(config.Quotes))
	for i := range config.Quotes {
		quote := &config.Quotes[i]

		if quote.ItemName == "" {
			return fmt.Errorf(ErrFmtQuoteAtIndexEmpty, ErrInvalidSeed, i)
		}
		if quoted[quote.ItemName] {
			return fmt.Errorf("%w: quote '%s'", ErrDuplicateEntry, quote.ItemName)
		}
		quoted[quote.ItemName] = true

		if !items[quote.ItemName] {
			return fmt.Errorf("%w: quote '%s' is not catalogued", ErrUnknownItem, quote.ItemName)
		}
		if !districts[quote.District] {
			return fmt.Errorf("%w: quote '%s' trades in '%s'", ErrUnknownDistrict, quote.ItemName, quote.District)
		}
	}

	// Every catalogued item must be quoted somewhere or it can never trade
	for i := range config.Catalog {
		if !quoted[config.Catalog[i].ItemName] {
			return fmt.Errorf(ErrFmtEntryNoQuote, ErrInvalidSeed, config.Catalog[i].ItemName)
		}
	}
	return nil
}

func (l *seedLoader) validateMerchants(config *Config, districts, items map[string]bool) error {
	if len(config.Merchants) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSeed, ErrMsgNoMerchantsDefined)
	}

	ids := make(map[string]bool, len(config.Merchants))
	for i := range config.Merchants {
		merchant := &config.Merchants[i]

		if _, err := uuid.Parse(merchant.MerchantID); err != nil {
			return fmt.Errorf(ErrFmtMerchantBadID, ErrInvalidSeed, i)
		}
		if ids[merchant.MerchantID] {
			return fmt.Errorf("%w: merchant '%s'", ErrDuplicateEntry, merchant.MerchantID)
		}
		ids[merchant.MerchantID] = true

		if merchant.Name == "" {
			return fmt.Errorf(ErrFmtMerchantEmptyName, ErrInvalidSeed, i)
		}
		if !districts[merchant.District] {
			return fmt.Errorf("%w: merchant '%s' sits in '%s'", ErrUnknownDistrict, merchant.Name, merchant.District)
		}
		if merchant.Lat < -90 || merchant.Lat > 90 || merchant.Lng < -180 || merchant.Lng > 180 {
			return fmt.Errorf(ErrFmtMerchantBadPosition, ErrInvalidSeed, merchant.Name)
		}
		if merchant.RequiredLicense < license.MinTier || merchant.RequiredLicense > license.MaxTier {
			return fmt.Errorf(ErrFmtMerchantBadLicense, ErrInvalidSeed, merchant.Name, license.MinTier, license.MaxTier)
		}
		if merchant.TrustLevel < 0 {
			return fmt.Errorf(ErrFmtMerchantBadTrust, ErrInvalidSeed, merchant.Name)
		}
		if len(merchant.Stock) == 0 {
			return fmt.Errorf(ErrFmtMerchantNoStock, ErrInvalidSeed, merchant.Name)
		}
		for _, itemName := range merchant.Stock {
			if !items[itemName] {
				return fmt.Errorf("%w: merchant '%s' stocks '%s'", ErrUnknownItem, merchant.Name, itemName)
			}
		}
	}
	return nil
}

// SyncToDatabase syncs the seed data to the database idempotently. An
// unchanged file (by hash and mod time) is skipped entirely.
func (l *seedLoader) SyncToDatabase(ctx context.Context, config *Config, stores Stores, configPath string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	hasChanged, err := hasFileChanged(ctx, stores.Sync, configPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckFileChangeFailed, err)
	}

	if !hasChanged {
		log.Info(LogMsgSeedUnchanged, "path", configPath)
		return &SyncResult{}, nil
	}

	result := &SyncResult{}
	if err := l.syncCatalog(ctx, stores.Catalog, config, result); err != nil {
		return nil, err
	}
	if err := l.syncQuotes(ctx, stores.Quotes, config, result); err != nil {
		return nil, err
	}
	if err := l.syncMerchants(ctx, stores.Merchants, config, result); err != nil {
		return nil, err
	}

	if err := updateSyncMetadata(ctx, stores.Sync, configPath); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	log.Info(LogMsgSyncCompleted,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped)

	return result, nil
}

func (l *seedLoader) syncCatalog(ctx context.Context, catalog repository.Catalog, config *Config, result *SyncResult) error {
	log := logger.FromContext(ctx)

	existing, err := catalog.ListCatalog(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgListCatalogFailed, err)
	}
	byName := make(map[string]domain.CatalogEntry, len(existing))
	for _, entry := range existing {
		byName[entry.ItemName] = entry
	}

	for _, def := range config.Catalog {
		entry := domain.CatalogEntry{
			ItemName:        def.ItemName,
			Category:        def.Category,
			Grade:           domain.Grade(def.Grade),
			RequiredLicense: def.RequiredLicense,
			BasePrice:       def.BasePrice,
		}

		current, exists := byName[def.ItemName]
		if exists && current == entry {
			result.Skipped++
			continue
		}

		if err := catalog.UpsertCatalogEntry(ctx, &entry); err != nil {
			return fmt.Errorf(ErrMsgUpsertCatalogFailed, def.ItemName, err)
		}
		if exists {
			result.Updated++
			log.Info(LogMsgUpdatedEntry, "kind", "catalog", "name", def.ItemName)
		} else {
			result.Inserted++
			log.Info(LogMsgInsertedEntry, "kind", "catalog", "name", def.ItemName)
		}
	}
	return nil
}

func (l *seedLoader) syncQuotes(ctx context.Context, quotes QuoteStore, config *Config, result *SyncResult) error {
	log := logger.FromContext(ctx)

	baseByItem := make(map[string]int, len(config.Catalog))
	for _, def := range config.Catalog {
		baseByItem[def.ItemName] = def.BasePrice
	}

	for _, def := range config.Quotes {
		base := baseByItem[def.ItemName]

		current, err := quotes.GetPrice(ctx, def.ItemName)
		if err != nil {
			return fmt.Errorf(ErrMsgGetQuoteFailed, def.ItemName, err)
		}
		if current != nil && current.District == def.District && current.BasePrice == base {
			result.Skipped++
			continue
		}

		// CurrentPrice only lands on a fresh insert; re-seeding an
		// existing quote never resets its walk.
		if err := quotes.SeedPrice(ctx, &domain.MarketPrice{
			ItemName:         def.ItemName,
			District:         def.District,
			BasePrice:        base,
			CurrentPrice:     base,
			DemandMultiplier: 1.0,
		}); err != nil {
			return fmt.Errorf(ErrMsgSeedQuoteFailed, def.ItemName, err)
		}
		if current != nil {
			result.Updated++
			log.Info(LogMsgUpdatedEntry, "kind", "quote", "name", def.ItemName)
		} else {
			result.Inserted++
			log.Info(LogMsgInsertedEntry, "kind", "quote", "name", def.ItemName)
		}
	}
	return nil
}

func (l *seedLoader) syncMerchants(ctx context.Context, merchants repository.Merchant, config *Config, result *SyncResult) error {
	log := logger.FromContext(ctx)

	for _, def := range config.Merchants {
		want := &domain.Merchant{
			ID:              def.MerchantID,
			Name:            def.Name,
			Type:            def.Type,
			District:        def.District,
			Position:        domain.Position{Lat: def.Lat, Lng: def.Lng},
			RequiredLicense: def.RequiredLicense,
			Stock:           def.Stock,
			TrustLevel:      def.TrustLevel,
		}

		current, err := merchants.GetMerchantByID(ctx, def.MerchantID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetMerchantFailed, def.MerchantID, err)
		}
		if current != nil && merchantEqual(current, want) {
			result.Skipped++
			continue
		}

		if err := merchants.UpsertMerchant(ctx, want); err != nil {
			return fmt.Errorf(ErrMsgUpsertMerchantFailed, def.Name, err)
		}
		if current != nil {
			result.Updated++
			log.Info(LogMsgUpdatedEntry, "kind", "merchant", "name", def.Name)
		} else {
			result.Inserted++
			log.Info(LogMsgInsertedEntry, "kind", "merchant", "name", def.Name)
		}
	}
	return nil
}

// hasFileChanged checks if the seed file has changed since the last sync
func hasFileChanged(ctx context.Context, sync SyncStore, configPath string) (bool, error) {
	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return false, fmt.Errorf(ErrMsgStatSeedFileFailed, err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return false, fmt.Errorf(ErrMsgReadForHashFailed, err)
	}

	hash := sha256.Sum256(data)
	fileHash := hex.EncodeToString(hash[:])

	syncMeta, err := sync.GetSyncMetadata(ctx, ConfigFileName)
	if err != nil {
		return false, err
	}
	if syncMeta == nil {
		// First sync
		return true, nil
	}

	if syncMeta.FileHash != fileHash || !syncMeta.FileModTime.Equal(fileInfo.ModTime()) {
		return true, nil
	}

	return false, nil
}

// updateSyncMetadata records the file state after a successful sync
func updateSyncMetadata(ctx context.Context, sync SyncStore, configPath string) error {
	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return fmt.Errorf(ErrMsgStatSeedFileFailed, err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf(ErrMsgReadForHashFailed, err)
	}

	hash := sha256.Sum256(data)
	fileHash := hex.EncodeToString(hash[:])

	return sync.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   ConfigFileName,
		LastSyncTime: time.Now(),
		FileHash:     fileHash,
		FileModTime:  fileInfo.ModTime(),
	})
}

// merchantEqual compares the seeded fields, ignoring the restock timestamp
func merchantEqual(a, b *domain.Merchant) bool {
	return a.ID == b.ID &&
		a.Name == b.Name &&
		a.Type == b.Type &&
		a.District == b.District &&
		a.Position == b.Position &&
		a.RequiredLicense == b.RequiredLicense &&
		a.TrustLevel == b.TrustLevel &&
		stringSlicesEqual(a.Stock, b.Stock)
}

func isValidGrade(grade string) bool {
	switch domain.Grade(grade) {
	case domain.GradeCommon, domain.GradeRare, domain.GradeEpic, domain.GradeLegendary:
		return true
	}
	return false
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
