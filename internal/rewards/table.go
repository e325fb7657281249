package rewards

import (
	"github.com/osse101/PetFeed_Go/internal/domain"
)

// rateTable holds the per-cycle payout of each quality tier, indexed by tier
var rateTable = [...]domain.RewardRate{
	domain.QualityCommon:    {PwpotPerCycle: 1, PwbotPerCycle: 0},
	domain.QualityGood:      {PwpotPerCycle: 2, PwbotPerCycle: 0},
	domain.QualityExcellent: {PwpotPerCycle: 3, PwbotPerCycle: 1},
	domain.QualityRare:      {PwpotPerCycle: 5, PwbotPerCycle: 2},
	domain.QualityLegendary: {PwpotPerCycle: 10, PwbotPerCycle: 5},
}

// Lookup returns the rate for q and whether q is a known tier.
// Unknown tiers get the COMMON rate.
func Lookup(q domain.QualityTier) (domain.RewardRate, bool) {
	if int(q) >= len(rateTable) {
		return rateTable[domain.QualityCommon], false
	}
	return rateTable[q], true
}

// RateFor returns the rate for q, falling back to COMMON for unknown tiers
func RateFor(q domain.QualityTier) domain.RewardRate {
	rate, _ := Lookup(q)
	return rate
}

// Tiers returns every known tier with its rate, in tier order
func Tiers() []Tier {
	tiers := make([]Tier, 0, len(rateTable))
	for i, rate := range rateTable {
		tiers = append(tiers, Tier{Quality: domain.QualityTier(i), Rate: rate})
	}
	return tiers
}

// Tier pairs a quality tier with its rate
type Tier struct {
	Quality domain.QualityTier
	Rate    domain.RewardRate
}
