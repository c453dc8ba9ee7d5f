package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lanternworks/nightmarket/internal/config"
	"github.com/lanternworks/nightmarket/internal/database"
)

// Debug dumps the interesting tables to stdout. Handy when a staging
// run leaves the market in a state the API responses don't explain.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbPool, err := database.NewPool(
		cfg.Database.ConnString(),
		cfg.Database.MaxConns,
		cfg.Database.MaxConnIdleTime,
		cfg.Database.MaxConnLifetime,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	// Dump Players
	fmt.Println("--- Players ---")
	rows, err := dbPool.Query(ctx, `
		SELECT player_id, username, money, trust_points, license_tier, last_active
		FROM players ORDER BY username
	`)
	if err != nil {
		log.Printf("Failed to query players: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id, username string
			var money, trust, tier int
			var lastActive time.Time
			if err := rows.Scan(&id, &username, &money, &trust, &tier, &lastActive); err != nil {
				log.Printf("Failed to scan player: %v", err)
			}
			fmt.Printf("ID: %s, Username: %s, Money: %d, Trust: %d, Tier: %d, LastActive: %s\n",
				id, username, money, trust, tier, lastActive.Format(time.RFC3339))
		}
	}

	// Dump Market Prices
	fmt.Println("\n--- Market Prices ---")
	rows, err = dbPool.Query(ctx, `
		SELECT item_name, district, base_price, current_price, demand_multiplier, updated_at
		FROM market_prices ORDER BY district, item_name
	`)
	if err != nil {
		log.Printf("Failed to query prices: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var item, district string
			var base, current int
			var demand float64
			var updatedAt time.Time
			if err := rows.Scan(&item, &district, &base, &current, &demand, &updatedAt); err != nil {
				log.Printf("Failed to scan price: %v", err)
			}
			fmt.Printf("Item: %s, District: %s, Base: %d, Current: %d, Demand: %.2f, UpdatedAt: %s\n",
				item, district, base, current, demand, updatedAt.Format(time.RFC3339))
		}
	}

	// Dump Merchants
	fmt.Println("\n--- Merchants ---")
	rows, err = dbPool.Query(ctx, `
		SELECT merchant_id, name, merchant_type, district, required_license, restocked_at
		FROM merchants ORDER BY district, name
	`)
	if err != nil {
		log.Printf("Failed to query merchants: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id, name, mtype, district string
			var required int
			var restockedAt time.Time
			if err := rows.Scan(&id, &name, &mtype, &district, &required, &restockedAt); err != nil {
				log.Printf("Failed to scan merchant: %v", err)
			}
			fmt.Printf("ID: %s, Name: %s, Type: %s, District: %s, RequiredLicense: %d, RestockedAt: %s\n",
				id, name, mtype, district, required, restockedAt.Format(time.RFC3339))
		}
	}

	// Dump Recent Trades
	fmt.Println("\n--- Recent Trades ---")
	query := `
		SELECT t.trade_id, p.username, t.trade_type, t.item_name, t.quantity, t.total_price, t.created_at
		FROM trade_records t
		JOIN players p ON COALESCE(t.buyer_id, t.seller_id) = p.player_id
		ORDER BY t.created_at DESC
		LIMIT 20
	`
	rows, err = dbPool.Query(ctx, query)
	if err != nil {
		log.Printf("Failed to query trades: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id, username, tradeType, item string
			var quantity, totalPrice int
			var createdAt time.Time
			if err := rows.Scan(&id, &username, &tradeType, &item, &quantity, &totalPrice, &createdAt); err != nil {
				log.Printf("Failed to scan trade: %v", err)
			}
			fmt.Printf("TradeID: %s, Player: %s, Type: %s, Item: %s, Qty: %d, Total: %d, At: %s\n",
				id, username, tradeType, item, quantity, totalPrice, createdAt.Format(time.RFC3339))
		}
	}
}
