package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lanternworks/nightmarket/internal/database/postgres"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// Repositories holds all repository implementations used by the
// application. Centralizing construction keeps the dependency wiring in
// one place.
type Repositories struct {
	Player   repository.Player
	Market   repository.Market
	Merchant repository.Merchant
	Trade    repository.Trade
	Catalog  repository.Catalog
}

// InitializeRepositories creates all repository implementations over the
// shared connection pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Player:   postgres.NewPlayerRepository(dbPool),
		Market:   postgres.NewMarketRepository(dbPool),
		Merchant: postgres.NewMerchantRepository(dbPool),
		Trade:    postgres.NewTradeRepository(dbPool),
		Catalog:  postgres.NewCatalogRepository(dbPool),
	}
}
