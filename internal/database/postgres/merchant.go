package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lanternworks/nightmarket/internal/domain"
)

// MerchantRepository implements the merchant repository for PostgreSQL
type MerchantRepository struct {
	db *pgxpool.Pool
}

// NewMerchantRepository creates a new MerchantRepository
func NewMerchantRepository(db *pgxpool.Pool) *MerchantRepository {
	return &MerchantRepository{db: db}
}

const merchantColumns = `merchant_id, name, merchant_type, district, lat, lng, required_license, stock_items, trust_level, restocked_at`

func scanMerchant(row pgx.Row) (*domain.Merchant, error) {
	var m domain.Merchant
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Type,
		&m.District,
		&m.Position.Lat,
		&m.Position.Lng,
		&m.RequiredLicense,
		&m.Stock,
		&m.TrustLevel,
		&m.RestockedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan merchant: %w", err)
	}
	return &m, nil
}

// GetMerchantByID returns the merchant or (nil, nil) when no row exists
func (r *MerchantRepository) GetMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE merchant_id = $1`
	return scanMerchant(r.db.QueryRow(ctx, query, merchantID))
}

// ListMerchants returns merchants ordered by name. An empty district
// returns all of them.
func (r *MerchantRepository) ListMerchants(ctx context.Context, district string) ([]domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants ORDER BY name`
	args := []any{}
	if district != "" {
		query = `SELECT ` + merchantColumns + ` FROM merchants WHERE district = $1 ORDER BY name`
		args = append(args, district)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}
	defer rows.Close()

	merchants := []domain.Merchant{}
	for rows.Next() {
		var m domain.Merchant
		err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Type,
			&m.District,
			&m.Position.Lat,
			&m.Position.Lng,
			&m.RequiredLicense,
			&m.Stock,
			&m.TrustLevel,
			&m.RestockedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan merchant: %w", err)
		}
		merchants = append(merchants, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read merchants: %w", err)
	}
	return merchants, nil
}

// UpsertMerchant inserts or replaces a merchant. Used by seeding; the
// engine itself never writes merchants.
func (r *MerchantRepository) UpsertMerchant(ctx context.Context, merchant *domain.Merchant) error {
	if merchant.ID == "" {
		query := `
			INSERT INTO merchants (name, merchant_type, district, lat, lng, required_license, stock_items, trust_level)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING merchant_id, restocked_at
		`
		err := r.db.QueryRow(ctx, query,
			merchant.Name,
			merchant.Type,
			merchant.District,
			merchant.Position.Lat,
			merchant.Position.Lng,
			merchant.RequiredLicense,
			merchant.Stock,
			merchant.TrustLevel,
		).Scan(&merchant.ID, &merchant.RestockedAt)
		if err != nil {
			return fmt.Errorf("failed to insert merchant: %w", err)
		}
		return nil
	}

	query := `
		INSERT INTO merchants (merchant_id, name, merchant_type, district, lat, lng, required_license, stock_items, trust_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (merchant_id) DO UPDATE
		SET name = EXCLUDED.name,
		    merchant_type = EXCLUDED.merchant_type,
		    district = EXCLUDED.district,
		    lat = EXCLUDED.lat,
		    lng = EXCLUDED.lng,
		    required_license = EXCLUDED.required_license,
		    stock_items = EXCLUDED.stock_items,
		    trust_level = EXCLUDED.trust_level
	`
	_, err := r.db.Exec(ctx, query,
		merchant.ID,
		merchant.Name,
		merchant.Type,
		merchant.District,
		merchant.Position.Lat,
		merchant.Position.Lng,
		merchant.RequiredLicense,
		merchant.Stock,
		merchant.TrustLevel,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert merchant: %w", err)
	}
	return nil
}

// TouchRestockedAt stamps every merchant with a fresh restock time and
// returns how many rows were touched.
func (r *MerchantRepository) TouchRestockedAt(ctx context.Context, restockedAt time.Time) (int, error) {
	tag, err := r.db.Exec(ctx, `UPDATE merchants SET restocked_at = $1`, restockedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to touch restocked_at: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
