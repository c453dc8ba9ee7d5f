package license

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacity(t *testing.T) {
	tests := []struct {
		tier     int
		capacity int
	}{
		{1, 5},
		{2, 8},
		{3, 12},
		{4, 16},
		{5, 20},
		{0, 5},  // clamps up to tier 1
		{-3, 5}, // clamps up to tier 1
		{9, 20}, // clamps down to tier 5
	}

	for _, tt := range tests {
		assert.Equal(t, tt.capacity, Capacity(tt.tier), "tier %d", tt.tier)
	}
}

func TestUpgradeCost(t *testing.T) {
	tests := []struct {
		targetTier int
		cost       int
		ok         bool
	}{
		{2, 100000, true},
		{3, 250000, true},
		{4, 500000, true},
		{5, 1000000, true},
		{1, 0, false}, // starting tier is never bought
		{6, 0, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		cost, ok := UpgradeCost(tt.targetTier)
		assert.Equal(t, tt.ok, ok, "tier %d ok", tt.targetTier)
		assert.Equal(t, tt.cost, cost, "tier %d cost", tt.targetTier)
	}
}

func TestTrustRequirement(t *testing.T) {
	tests := []struct {
		targetTier int
		trust      int
		ok         bool
	}{
		{2, 50, true},
		{3, 150, true},
		{4, 300, true},
		{5, 500, true},
		{1, 0, false},
		{6, 0, false},
	}

	for _, tt := range tests {
		trust, ok := TrustRequirement(tt.targetTier)
		assert.Equal(t, tt.ok, ok, "tier %d ok", tt.targetTier)
		assert.Equal(t, tt.trust, trust, "tier %d trust", tt.targetTier)
	}
}
