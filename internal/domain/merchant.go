package domain

import "time"

// Merchant is a stationary trading post. Merchants are reference data:
// seeded at setup, refreshed by the restock job, never mutated by trades.
type Merchant struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	District        string    `json:"district"`
	Position        Position  `json:"position"`
	RequiredLicense int       `json:"required_license"`
	Stock           []string  `json:"stock"`
	TrustLevel      int       `json:"trust_level"`
	RestockedAt     time.Time `json:"restocked_at"`
}

// Offers reports whether the merchant currently stocks the named item
func (m *Merchant) Offers(itemName string) bool {
	for _, name := range m.Stock {
		if name == itemName {
			return true
		}
	}
	return false
}

// MerchantDistance pairs a merchant with its distance from a query point,
// used by the nearby lookup.
type MerchantDistance struct {
	Merchant  Merchant `json:"merchant"`
	DistanceM float64  `json:"distance_m"`
}
