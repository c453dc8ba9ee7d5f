package repository

import (
	"context"

	"github.com/lanternworks/nightmarket/internal/domain"
)

// Player defines the interface for player persistence
type Player interface {
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player *domain.Player) error
	UpdatePlayerPosition(ctx context.Context, playerID string, pos domain.Position) error
	// UpdatePlayerPositions applies a batch of buffered position updates
	UpdatePlayerPositions(ctx context.Context, positions map[string]domain.Position) error

	GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error)
	GetInventoryOccupancy(ctx context.Context, playerID string) (int, error)

	BeginTx(ctx context.Context) (PlayerTx, error)
}

// PlayerTx defines the interface for player transactions.
// GetPlayerForUpdate takes a row lock so money, trust and tier mutations
// serialize across processes.
type PlayerTx interface {
	Tx
	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player *domain.Player) error
}
