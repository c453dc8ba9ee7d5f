package license

// License tier bounds
const (
	MinTier = 1
	MaxTier = 5
)

// tierStep is one rung of the license ladder
type tierStep struct {
	cost     int // money to reach this tier from the one below
	trust    int // trust points required before upgrading, never consumed
	capacity int // inventory capacity granted while holding this tier
}

var ladder = map[int]tierStep{
	1: {cost: 0, trust: 0, capacity: 5},
	2: {cost: 100000, trust: 50, capacity: 8},
	3: {cost: 250000, trust: 150, capacity: 12},
	4: {cost: 500000, trust: 300, capacity: 16},
	5: {cost: 1000000, trust: 500, capacity: 20},
}

// Capacity returns the inventory capacity granted by a license tier.
// Out-of-range tiers clamp to the nearest valid tier.
func Capacity(tier int) int {
	if tier < MinTier {
		tier = MinTier
	}
	if tier > MaxTier {
		tier = MaxTier
	}
	return ladder[tier].capacity
}

// UpgradeCost returns the money needed to reach targetTier from the tier
// below. The second return is false for tiers that cannot be bought.
func UpgradeCost(targetTier int) (int, bool) {
	step, ok := ladder[targetTier]
	if !ok || targetTier == MinTier {
		return 0, false
	}
	return step.cost, true
}

// TrustRequirement returns the trust points required to reach targetTier.
// The second return is false for tiers that cannot be bought.
func TrustRequirement(targetTier int) (int, bool) {
	step, ok := ladder[targetTier]
	if !ok || targetTier == MinTier {
		return 0, false
	}
	return step.trust, true
}
