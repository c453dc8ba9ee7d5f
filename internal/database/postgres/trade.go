package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// TradeRepository implements the trade engine persistence for PostgreSQL
type TradeRepository struct {
	db *pgxpool.Pool
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(db *pgxpool.Pool) *TradeRepository {
	return &TradeRepository{db: db}
}

// GetPlayerByID returns the player or (nil, nil) when no row exists
func (r *TradeRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayerByID(ctx, r.db, playerID)
}

// GetMerchantByID returns the merchant or (nil, nil) when no row exists
func (r *TradeRepository) GetMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE merchant_id = $1`
	return scanMerchant(r.db.QueryRow(ctx, query, merchantID))
}

// GetPrice returns the quote for an item or (nil, nil) when no row exists
func (r *TradeRepository) GetPrice(ctx context.Context, itemName string) (*domain.MarketPrice, error) {
	query := `SELECT ` + marketPriceColumns + ` FROM market_prices WHERE item_name = $1`
	return scanMarketPrice(r.db.QueryRow(ctx, query, itemName))
}

// GetCatalogEntry returns the catalog row or (nil, nil) when the item is
// not catalogued.
func (r *TradeRepository) GetCatalogEntry(ctx context.Context, itemName string) (*domain.CatalogEntry, error) {
	return getCatalogEntry(ctx, r.db, itemName)
}

// ListTradesByPlayer returns the player's most recent trades, either side
func (r *TradeRepository) ListTradesByPlayer(ctx context.Context, playerID string, limit int) ([]domain.TradeRecord, error) {
	query := `
		SELECT ` + tradeRecordColumns + `
		FROM trade_records
		WHERE buyer_id = $1 OR seller_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades by player: %w", err)
	}
	return scanTradeRecords(rows)
}

// ListRecentTrades returns the newest trades across all players
func (r *TradeRepository) ListRecentTrades(ctx context.Context, limit int) ([]domain.TradeRecord, error) {
	query := `
		SELECT ` + tradeRecordColumns + `
		FROM trade_records
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent trades: %w", err)
	}
	return scanTradeRecords(rows)
}

// BeginTx starts a trade transaction
func (r *TradeRepository) BeginTx(ctx context.Context) (repository.TradeTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &tradeTx{tx: tx}, nil
}

type tradeTx struct {
	tx pgx.Tx
}

func (t *tradeTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayerForUpdate(ctx, t.tx, playerID)
}

func (t *tradeTx) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	return updatePlayer(ctx, t.tx, player)
}

func (t *tradeTx) GetInventoryOccupancy(ctx context.Context, playerID string) (int, error) {
	return getInventoryOccupancy(ctx, t.tx, playerID)
}

func (t *tradeTx) GetInventoryItemByID(ctx context.Context, itemID, playerID string) (*domain.InventoryItem, error) {
	query := `
		SELECT inventory_item_id, player_id, item_name, category, base_price, current_price, grade, required_license, quantity, acquired_at
		FROM inventory_items
		WHERE inventory_item_id = $1 AND player_id = $2
		FOR UPDATE
	`
	var it domain.InventoryItem
	err := t.tx.QueryRow(ctx, query, itemID, playerID).Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return &it, nil
}

// UpsertInventoryItem inserts a stack or increments the existing one for
// (player, item name). The stored prices and classification of an existing
// stack are kept; only quantity grows.
func (t *tradeTx) UpsertInventoryItem(ctx context.Context, item *domain.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (player_id, item_name, category, base_price, current_price, grade, required_license, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (player_id, item_name) DO UPDATE
		SET quantity = inventory_items.quantity + EXCLUDED.quantity
		RETURNING inventory_item_id, quantity, acquired_at
	`
	err := t.tx.QueryRow(ctx, query,
		item.PlayerID,
		item.ItemName,
		item.Category,
		item.BasePrice,
		item.CurrentPrice,
		item.Grade,
		item.RequiredLicense,
		item.Quantity,
	).Scan(&item.ID, &item.Quantity, &item.AcquiredAt)
	if err != nil {
		return fmt.Errorf("failed to upsert inventory item: %w", err)
	}
	return nil
}

// DecrementInventoryItem removes quantity from a stack, deleting the row
// when it reaches zero. The caller must hold the row lock and have checked
// the held quantity.
func (t *tradeTx) DecrementInventoryItem(ctx context.Context, itemID string, quantity int) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE inventory_items SET quantity = quantity - $2 WHERE inventory_item_id = $1 AND quantity > $2`,
		itemID, quantity)
	if err != nil {
		return fmt.Errorf("failed to decrement inventory item: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	tag, err = t.tx.Exec(ctx,
		`DELETE FROM inventory_items WHERE inventory_item_id = $1 AND quantity = $2`,
		itemID, quantity)
	if err != nil {
		return fmt.Errorf("failed to delete emptied inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: stack changed during trade", domain.ErrInsufficientQuantity)
	}
	return nil
}

func (t *tradeTx) InsertTradeRecord(ctx context.Context, record *domain.TradeRecord) error {
	query := `
		INSERT INTO trade_records (seller_id, buyer_id, merchant_id, item_name, category, total_price, quantity, trade_type, lat, lng)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING trade_id, created_at
	`
	err := t.tx.QueryRow(ctx, query,
		record.SellerID,
		record.BuyerID,
		record.MerchantID,
		record.ItemName,
		record.Category,
		record.TotalPrice,
		record.Quantity,
		record.Type,
		record.Location.Lat,
		record.Location.Lng,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert trade record: %w", err)
	}
	return nil
}

func (t *tradeTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *tradeTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
