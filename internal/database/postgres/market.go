package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/repository"
)

// MarketRepository implements the market price repository for PostgreSQL
type MarketRepository struct {
	db *pgxpool.Pool
}

// NewMarketRepository creates a new MarketRepository
func NewMarketRepository(db *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{db: db}
}

const marketPriceColumns = `item_name, district, base_price, current_price, demand_multiplier, updated_at`

func scanMarketPrice(row pgx.Row) (*domain.MarketPrice, error) {
	var p domain.MarketPrice
	err := row.Scan(
		&p.ItemName,
		&p.District,
		&p.BasePrice,
		&p.CurrentPrice,
		&p.DemandMultiplier,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan market price: %w", err)
	}
	return &p, nil
}

func collectMarketPrices(rows pgx.Rows) ([]domain.MarketPrice, error) {
	defer rows.Close()

	prices := []domain.MarketPrice{}
	for rows.Next() {
		var p domain.MarketPrice
		err := rows.Scan(
			&p.ItemName,
			&p.District,
			&p.BasePrice,
			&p.CurrentPrice,
			&p.DemandMultiplier,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan market price: %w", err)
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read market prices: %w", err)
	}
	return prices, nil
}

// GetPrice returns the quote for an item or (nil, nil) when no row exists
func (r *MarketRepository) GetPrice(ctx context.Context, itemName string) (*domain.MarketPrice, error) {
	query := `SELECT ` + marketPriceColumns + ` FROM market_prices WHERE item_name = $1`
	return scanMarketPrice(r.db.QueryRow(ctx, query, itemName))
}

// ListPrices returns every quote ordered by item name
func (r *MarketRepository) ListPrices(ctx context.Context) ([]domain.MarketPrice, error) {
	query := `SELECT ` + marketPriceColumns + ` FROM market_prices ORDER BY item_name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list market prices: %w", err)
	}
	return collectMarketPrices(rows)
}

// ListPricesByDistrict returns quotes traded in one district
func (r *MarketRepository) ListPricesByDistrict(ctx context.Context, district string) ([]domain.MarketPrice, error) {
	query := `SELECT ` + marketPriceColumns + ` FROM market_prices WHERE district = $1 ORDER BY item_name`
	rows, err := r.db.Query(ctx, query, district)
	if err != nil {
		return nil, fmt.Errorf("failed to list market prices by district: %w", err)
	}
	return collectMarketPrices(rows)
}

// UpdateDemandMultiplier writes the market-heat stat for one item
func (r *MarketRepository) UpdateDemandMultiplier(ctx context.Context, itemName string, multiplier float64) error {
	query := `UPDATE market_prices SET demand_multiplier = $1 WHERE item_name = $2`
	tag, err := r.db.Exec(ctx, query, multiplier, itemName)
	if err != nil {
		return fmt.Errorf("failed to update demand multiplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPriceNotFound, itemName)
	}
	return nil
}

// SeedPrice inserts a quote or refreshes its district and base price.
// The walking current price and the demand multiplier survive re-seeding;
// only a fresh insert starts the quote at its base.
func (r *MarketRepository) SeedPrice(ctx context.Context, price *domain.MarketPrice) error {
	query := `
		INSERT INTO market_prices (item_name, district, base_price, current_price, demand_multiplier)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (item_name) DO UPDATE
		SET district = EXCLUDED.district,
		    base_price = EXCLUDED.base_price
	`
	_, err := r.db.Exec(ctx, query,
		price.ItemName,
		price.District,
		price.BasePrice,
		price.CurrentPrice,
		price.DemandMultiplier,
	)
	if err != nil {
		return fmt.Errorf("failed to seed price: %w", err)
	}
	return nil
}

// BeginTx starts a market transaction
func (r *MarketRepository) BeginTx(ctx context.Context) (repository.MarketTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &marketTx{tx: tx}, nil
}

type marketTx struct {
	tx pgx.Tx
}

// GetPriceForUpdate locks a single quote row for a targeted recompute
func (t *marketTx) GetPriceForUpdate(ctx context.Context, itemName string) (*domain.MarketPrice, error) {
	query := `SELECT ` + marketPriceColumns + ` FROM market_prices WHERE item_name = $1 FOR UPDATE`
	return scanMarketPrice(t.tx.QueryRow(ctx, query, itemName))
}

// ListPricesForUpdate locks every quote row so one recompute pass lands
// atomically with respect to trades reading prices.
func (t *marketTx) ListPricesForUpdate(ctx context.Context) ([]domain.MarketPrice, error) {
	query := `SELECT ` + marketPriceColumns + ` FROM market_prices ORDER BY item_name FOR UPDATE`
	rows, err := t.tx.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list market prices for update: %w", err)
	}
	return collectMarketPrices(rows)
}

func (t *marketTx) UpdatePrice(ctx context.Context, itemName string, currentPrice int, updatedAt time.Time) error {
	query := `UPDATE market_prices SET current_price = $1, updated_at = $2 WHERE item_name = $3`
	tag, err := t.tx.Exec(ctx, query, currentPrice, updatedAt, itemName)
	if err != nil {
		return fmt.Errorf("failed to update price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPriceNotFound, itemName)
	}
	return nil
}

func (t *marketTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *marketTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
