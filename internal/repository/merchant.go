package repository

import (
	"context"
	"time"

	"github.com/lanternworks/nightmarket/internal/domain"
)

// Merchant defines the interface for merchant reference data.
// Merchants are seeded at setup; the engine only ever reads them, except
// for the restock timestamp refreshed by the restock job.
type Merchant interface {
	GetMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error)
	ListMerchants(ctx context.Context, district string) ([]domain.Merchant, error)
	UpsertMerchant(ctx context.Context, merchant *domain.Merchant) error
	TouchRestockedAt(ctx context.Context, restockedAt time.Time) (int, error)
}
