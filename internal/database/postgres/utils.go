package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/logger"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so query helpers
// can run inside or outside a transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// isUniqueViolation reports whether err is a unique-constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// ---- Common Helper Functions ----

const playerColumns = `player_id, username, display_name, player_key, money, trust_points, license_tier, lat, lng, last_active, last_bonus_at, created_at, updated_at`

// scanPlayer reads one players row in playerColumns order
func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(
		&p.ID,
		&p.Username,
		&p.DisplayName,
		&p.PlayerKey,
		&p.Money,
		&p.TrustPoints,
		&p.LicenseTier,
		&p.Position.Lat,
		&p.Position.Lng,
		&p.LastActive,
		&p.LastBonusAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan player: %w", err)
	}
	return &p, nil
}

// getPlayerByID fetches a player without locking (shared helper)
func getPlayerByID(ctx context.Context, q querier, playerID string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1`
	return scanPlayer(q.QueryRow(ctx, query, playerID))
}

// getPlayerForUpdate fetches a player with a row lock (shared helper).
// The lock serializes all money/trust/tier mutations for that player across
// processes until the transaction ends.
func getPlayerForUpdate(ctx context.Context, q querier, playerID string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1 FOR UPDATE`
	return scanPlayer(q.QueryRow(ctx, query, playerID))
}

// updatePlayer writes the mutable player fields (shared helper). Any
// mutation counts as activity, so last_active is stamped server-side.
func updatePlayer(ctx context.Context, q querier, p *domain.Player) error {
	query := `
		UPDATE players
		SET display_name = $1,
		    money = $2,
		    trust_points = $3,
		    license_tier = $4,
		    lat = $5,
		    lng = $6,
		    last_active = NOW(),
		    last_bonus_at = $7,
		    updated_at = NOW()
		WHERE player_id = $8
	`
	tag, err := q.Exec(ctx, query,
		p.DisplayName,
		p.Money,
		p.TrustPoints,
		p.LicenseTier,
		p.Position.Lat,
		p.Position.Lng,
		p.LastBonusAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, p.ID)
	}
	return nil
}

// getInventoryOccupancy sums held quantities across all stacks (shared helper)
func getInventoryOccupancy(ctx context.Context, q querier, playerID string) (int, error) {
	var occupancy int
	query := `SELECT COALESCE(SUM(quantity), 0) FROM inventory_items WHERE player_id = $1`
	if err := q.QueryRow(ctx, query, playerID).Scan(&occupancy); err != nil {
		return 0, fmt.Errorf("failed to get inventory occupancy: %w", err)
	}
	return occupancy, nil
}

const catalogColumns = `item_name, category, grade, required_license, base_price`

// getCatalogEntry fetches a catalog row or (nil, nil) when the item is
// not catalogued (shared helper).
func getCatalogEntry(ctx context.Context, q querier, itemName string) (*domain.CatalogEntry, error) {
	query := `SELECT ` + catalogColumns + ` FROM item_catalog WHERE item_name = $1`
	var e domain.CatalogEntry
	err := q.QueryRow(ctx, query, itemName).Scan(
		&e.ItemName,
		&e.Category,
		&e.Grade,
		&e.RequiredLicense,
		&e.BasePrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catalog entry: %w", err)
	}
	return &e, nil
}

const tradeRecordColumns = `trade_id, seller_id, buyer_id, merchant_id, item_name, category, total_price, quantity, trade_type, lat, lng, created_at`

// scanTradeRecords reads trade_records rows in tradeRecordColumns order
func scanTradeRecords(rows pgx.Rows) ([]domain.TradeRecord, error) {
	defer rows.Close()

	records := []domain.TradeRecord{}
	for rows.Next() {
		var r domain.TradeRecord
		err := rows.Scan(
			&r.ID,
			&r.SellerID,
			&r.BuyerID,
			&r.MerchantID,
			&r.ItemName,
			&r.Category,
			&r.TotalPrice,
			&r.Quantity,
			&r.Type,
			&r.Location.Lat,
			&r.Location.Lng,
			&r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trade records: %w", err)
	}
	return records, nil
}
