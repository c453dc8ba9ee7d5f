package domain

import "time"

// Position is a WGS84 coordinate pair for players and merchants
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinates fall inside WGS84 bounds
func (p Position) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Player represents a registered trader
type Player struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Money       int       `json:"money"`
	TrustPoints int       `json:"trust_points"`
	LicenseTier int       `json:"license_tier"`
	Position    Position  `json:"position"`
	LastActive  time.Time `json:"last_active"`
	// LastBonusAt is nil until the first daily bonus claim
	LastBonusAt *time.Time `json:"last_bonus_at,omitempty"`
	// PlayerKey is the secret issued at registration, required for login.
	// Never serialized in API responses except the registration reply.
	PlayerKey string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is a player view enriched with derived inventory figures
type Profile struct {
	Player    Player `json:"player"`
	Capacity  int    `json:"capacity"`
	Occupancy int    `json:"occupancy"`
}
