package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lanternworks/nightmarket/internal/domain"
)

// CatalogRepository implements catalog persistence for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetCatalogEntry returns the catalog row or (nil, nil) when the item is
// not catalogued.
func (r *CatalogRepository) GetCatalogEntry(ctx context.Context, itemName string) (*domain.CatalogEntry, error) {
	return getCatalogEntry(ctx, r.db, itemName)
}

// ListCatalog returns every catalogued item ordered by name
func (r *CatalogRepository) ListCatalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	query := `SELECT ` + catalogColumns + ` FROM item_catalog ORDER BY item_name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	defer rows.Close()

	entries := []domain.CatalogEntry{}
	for rows.Next() {
		var e domain.CatalogEntry
		err := rows.Scan(
			&e.ItemName,
			&e.Category,
			&e.Grade,
			&e.RequiredLicense,
			&e.BasePrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog entries: %w", err)
	}
	return entries, nil
}

// UpsertCatalogEntry inserts or replaces a catalog row
func (r *CatalogRepository) UpsertCatalogEntry(ctx context.Context, entry *domain.CatalogEntry) error {
	query := `
		INSERT INTO item_catalog (item_name, category, grade, required_license, base_price)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (item_name) DO UPDATE
		SET category = EXCLUDED.category,
		    grade = EXCLUDED.grade,
		    required_license = EXCLUDED.required_license,
		    base_price = EXCLUDED.base_price
	`
	_, err := r.db.Exec(ctx, query,
		entry.ItemName,
		entry.Category,
		entry.Grade,
		entry.RequiredLicense,
		entry.BasePrice,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert catalog entry: %w", err)
	}
	return nil
}

// GetSyncMetadata returns the sync bookkeeping row for a config file, or
// (nil, nil) when the file has never been synced.
func (r *CatalogRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	query := `SELECT config_name, last_sync_time, file_hash, file_mod_time FROM sync_metadata WHERE config_name = $1`
	var meta domain.SyncMetadata
	err := r.db.QueryRow(ctx, query, configName).Scan(
		&meta.ConfigName,
		&meta.LastSyncTime,
		&meta.FileHash,
		&meta.FileModTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sync metadata: %w", err)
	}
	return &meta, nil
}

// UpsertSyncMetadata records a completed seed sync for a config file
func (r *CatalogRepository) UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error {
	query := `
		INSERT INTO sync_metadata (config_name, last_sync_time, file_hash, file_mod_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE
		SET last_sync_time = EXCLUDED.last_sync_time,
		    file_hash = EXCLUDED.file_hash,
		    file_mod_time = EXCLUDED.file_mod_time
	`
	_, err := r.db.Exec(ctx, query,
		meta.ConfigName,
		meta.LastSyncTime,
		meta.FileHash,
		meta.FileModTime,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert sync metadata: %w", err)
	}
	return nil
}
