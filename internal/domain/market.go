package domain

import "time"

// MarketPrice is the live quote for one item name. Exactly one row exists
// per traded item; rows are seeded once and never deleted, only recomputed.
type MarketPrice struct {
	ItemName     string  `json:"item_name"`
	District     string  `json:"district"`
	BasePrice    int     `json:"base_price"`
	CurrentPrice int     `json:"current_price"`
	// DemandMultiplier is a descriptive market-heat stat surfaced to
	// clients. It never feeds the price walk.
	DemandMultiplier float64   `json:"demand_multiplier"`
	UpdatedAt        time.Time `json:"updated_at"`
}
