package license

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// MockPlayerRepository implements repository.Player for testing
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockPlayerRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerRepository) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockPlayerRepository) UpdatePlayerPosition(ctx context.Context, playerID string, pos domain.Position) error {
	args := m.Called(ctx, playerID, pos)
	return args.Error(0)
}

func (m *MockPlayerRepository) UpdatePlayerPositions(ctx context.Context, positions map[string]domain.Position) error {
	args := m.Called(ctx, positions)
	return args.Error(0)
}

func (m *MockPlayerRepository) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockPlayerRepository) GetInventoryOccupancy(ctx context.Context, playerID string) (int, error) {
	args := m.Called(ctx, playerID)
	return args.Int(0), args.Error(1)
}

func (m *MockPlayerRepository) BeginTx(ctx context.Context) (repository.PlayerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.PlayerTx), args.Error(1)
}

// Ensure MockPlayerRepository implements repository.Player
var _ repository.Player = (*MockPlayerRepository)(nil)

// MockPlayerTx implements repository.PlayerTx for testing
type MockPlayerTx struct {
	mock.Mock
}

func (m *MockPlayerTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerTx) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockPlayerTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlayerTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure MockPlayerTx implements repository.PlayerTx
var _ repository.PlayerTx = (*MockPlayerTx)(nil)

// MockPublisher implements event.Publisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, ev event.Event) {
	m.Called(ctx, ev)
}
