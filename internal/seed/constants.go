package seed

// ==================== Configuration File Names ====================

// Market seed file names and paths
const (
	// ConfigFileName keys the sync metadata row for the seed file
	ConfigFileName = "market_seed.json"

	// DefaultConfigPath is where setup looks for the seed file,
	// relative to the repository root
	DefaultConfigPath = "configs/seed/market_seed.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadSeedFileFailed = "failed to read seed file: %w"
	ErrMsgParseSeedFailed    = "failed to parse seed file: %w"
	ErrMsgStatSeedFileFailed = "failed to stat seed file: %w"
	ErrMsgReadForHashFailed  = "failed to read seed file for hashing: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgSeedNil            = "seed is nil"
	ErrMsgNoDistrictsDefined = "no districts defined"
	ErrMsgNoCatalogDefined   = "no catalog entries defined"
	ErrMsgNoQuotesDefined    = "no quotes defined"
	ErrMsgNoMerchantsDefined = "no merchants defined"
)

// Database operation error messages
const (
	ErrMsgCheckFileChangeFailed = "failed to check if seed file changed: %w"
	ErrMsgListCatalogFailed     = "failed to list existing catalog: %w"
	ErrMsgUpsertCatalogFailed   = "failed to upsert catalog entry '%s': %w"
	ErrMsgGetQuoteFailed        = "failed to get quote '%s': %w"
	ErrMsgSeedQuoteFailed       = "failed to seed quote '%s': %w"
	ErrMsgGetMerchantFailed     = "failed to get merchant '%s': %w"
	ErrMsgUpsertMerchantFailed  = "failed to upsert merchant '%s': %w"
)

// ==================== Log Messages ====================

// Sync operation log messages
const (
	LogMsgSeedUnchanged        = "Seed file unchanged, skipping sync"
	LogMsgSyncCompleted        = "Seed sync completed"
	LogMsgInsertedEntry        = "Inserted seed entry"
	LogMsgUpdatedEntry         = "Updated seed entry"
	LogMsgUpdateMetadataFailed = "Failed to update sync metadata"
)

// ==================== Format Strings for Error Construction ====================

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtDistrictAtIndexEmpty = "%w: district at index %d is empty"
	ErrFmtEntryAtIndexEmpty    = "%w: catalog entry at index %d has empty item_name"
	ErrFmtEntryEmptyCategory   = "%w: catalog entry '%s' has empty category"
	ErrFmtEntryUnknownGrade    = "%w: catalog entry '%s' has unknown grade '%s'"
	ErrFmtEntryBadLicense      = "%w: catalog entry '%s' has license tier outside %d..%d"
	ErrFmtEntryBadBasePrice    = "%w: catalog entry '%s' has base price below 1"
	ErrFmtEntryNoQuote         = "%w: catalog entry '%s' has no quote"
	ErrFmtQuoteAtIndexEmpty    = "%w: quote at index %d has empty item_name"
	ErrFmtMerchantBadID        = "%w: merchant at index %d has invalid merchant_id"
	ErrFmtMerchantEmptyName    = "%w: merchant at index %d has empty name"
	ErrFmtMerchantBadPosition  = "%w: merchant '%s' has out-of-range coordinates"
	ErrFmtMerchantBadLicense   = "%w: merchant '%s' has license tier outside %d..%d"
	ErrFmtMerchantBadTrust     = "%w: merchant '%s' has negative trust_level"
	ErrFmtMerchantNoStock      = "%w: merchant '%s' has no stock"
)
