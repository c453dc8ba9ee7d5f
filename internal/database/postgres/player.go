package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// PlayerRepository implements the player repository for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// CreatePlayer inserts a new player row. The generated id and timestamps
// are written back onto the passed player.
func (r *PlayerRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	query := `
		INSERT INTO players (username, display_name, player_key, money, trust_points, license_tier, lat, lng, last_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING player_id, last_active, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		player.Username,
		player.DisplayName,
		player.PlayerKey,
		player.Money,
		player.TrustPoints,
		player.LicenseTier,
		player.Position.Lat,
		player.Position.Lng,
	).Scan(&player.ID, &player.LastActive, &player.CreatedAt, &player.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrPlayerExists, player.Username)
		}
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

// GetPlayerByID returns the player or (nil, nil) when no row exists
func (r *PlayerRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayerByID(ctx, r.db, playerID)
}

// GetPlayerByUsername returns the player or (nil, nil) when no row exists
func (r *PlayerRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE username = $1`
	return scanPlayer(r.db.QueryRow(ctx, query, username))
}

// UpdatePlayer writes the mutable player fields
func (r *PlayerRepository) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	return updatePlayer(ctx, r.db, player)
}

// UpdatePlayerPosition moves a player and stamps last_active
func (r *PlayerRepository) UpdatePlayerPosition(ctx context.Context, playerID string, pos domain.Position) error {
	query := `
		UPDATE players
		SET lat = $1, lng = $2, last_active = NOW(), updated_at = NOW()
		WHERE player_id = $3
	`
	tag, err := r.db.Exec(ctx, query, pos.Lat, pos.Lng, playerID)
	if err != nil {
		return fmt.Errorf("failed to update player position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return nil
}

// UpdatePlayerPositions applies a batch of buffered position updates in one
// round trip. Unknown player ids are skipped rather than failing the batch.
func (r *PlayerRepository) UpdatePlayerPositions(ctx context.Context, positions map[string]domain.Position) error {
	if len(positions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		UPDATE players
		SET lat = $1, lng = $2, last_active = NOW(), updated_at = NOW()
		WHERE player_id = $3
	`
	for playerID, pos := range positions {
		batch.Queue(query, pos.Lat, pos.Lng, playerID)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range positions {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to flush position batch: %w", err)
		}
	}
	return nil
}

// GetInventory lists a player's stacks, newest acquisitions first
func (r *PlayerRepository) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	query := `
		SELECT inventory_item_id, player_id, item_name, category, base_price, current_price, grade, required_license, quantity, acquired_at
		FROM inventory_items
		WHERE player_id = $1
		ORDER BY acquired_at DESC
	`
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		var it domain.InventoryItem
		err := rows.Scan(
			&it.ID,
			&it.PlayerID,
			&it.ItemName,
			&it.Category,
			&it.BasePrice,
			&it.CurrentPrice,
			&it.Grade,
			&it.RequiredLicense,
			&it.Quantity,
			&it.AcquiredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	return items, nil
}

// GetInventoryOccupancy sums held quantities across all stacks
func (r *PlayerRepository) GetInventoryOccupancy(ctx context.Context, playerID string) (int, error) {
	return getInventoryOccupancy(ctx, r.db, playerID)
}

// BeginTx starts a player transaction
func (r *PlayerRepository) BeginTx(ctx context.Context) (repository.PlayerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &playerTx{tx: tx}, nil
}

type playerTx struct {
	tx pgx.Tx
}

func (t *playerTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayerForUpdate(ctx, t.tx, playerID)
}

func (t *playerTx) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	return updatePlayer(ctx, t.tx, player)
}

func (t *playerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *playerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
