package repository

import (
	"context"

	"github.com/lanternworks/nightmarket/internal/domain"
)

// Catalog defines the interface for the item catalog
type Catalog interface {
	GetCatalogEntry(ctx context.Context, itemName string) (*domain.CatalogEntry, error)
	ListCatalog(ctx context.Context) ([]domain.CatalogEntry, error)
	UpsertCatalogEntry(ctx context.Context, entry *domain.CatalogEntry) error
}
