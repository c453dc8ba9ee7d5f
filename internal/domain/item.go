package domain

import (
	"strings"
	"time"
)

// Grade classifies goods by rarity
type Grade string

// Item grades, lowest to highest
const (
	GradeCommon    Grade = "common"
	GradeRare      Grade = "rare"
	GradeEpic      Grade = "epic"
	GradeLegendary Grade = "legendary"
)

// InventoryItem is one stack of goods held by a player.
// BasePrice and CurrentPrice are captured at acquisition time; later market
// movement does not rewrite them.
type InventoryItem struct {
	ID              string    `json:"id"`
	PlayerID        string    `json:"player_id"`
	ItemName        string    `json:"item_name"`
	Category        string    `json:"category"`
	BasePrice       int       `json:"base_price"`
	CurrentPrice    int       `json:"current_price"`
	Grade           Grade     `json:"grade"`
	RequiredLicense int       `json:"required_license"`
	Quantity        int       `json:"quantity"`
	AcquiredAt      time.Time `json:"acquired_at"`
}

// CatalogEntry is the authoritative classification for a known item name
type CatalogEntry struct {
	ItemName        string `json:"item_name"`
	Category        string `json:"category"`
	Grade           Grade  `json:"grade"`
	RequiredLicense int    `json:"required_license"`
	BasePrice       int    `json:"base_price"`
}

// gradeMarkers maps display-name substrings to classification, strongest
// marker first so a name carrying several markers resolves to the highest.
var gradeMarkers = []struct {
	marker string
	grade  Grade
	tier   int
}{
	{"legendary", GradeLegendary, 4},
	{"high-grade", GradeEpic, 3},
	{"mid-tier", GradeRare, 2},
	{"common", GradeCommon, 1},
}

// ClassifyItemName derives grade and required license tier from display-name
// markers. Names without a marker are common, tier 1. Used as the fallback
// for items missing from the catalog.
func ClassifyItemName(name string) (Grade, int) {
	lower := strings.ToLower(name)
	for _, m := range gradeMarkers {
		if strings.Contains(lower, m.marker) {
			return m.grade, m.tier
		}
	}
	return GradeCommon, 1
}
