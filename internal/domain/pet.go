package domain

import "fmt"

// QualityTier is a pet's rarity classification, driving its per-cycle reward rate
type QualityTier uint8

const (
	QualityCommon    QualityTier = 0
	QualityGood      QualityTier = 1
	QualityExcellent QualityTier = 2
	QualityRare      QualityTier = 3
	QualityLegendary QualityTier = 4
)

var qualityNames = [...]string{
	QualityCommon:    "COMMON",
	QualityGood:      "GOOD",
	QualityExcellent: "EXCELLENT",
	QualityRare:      "RARE",
	QualityLegendary: "LEGENDARY",
}

// Valid reports whether q is one of the known tiers
func (q QualityTier) Valid() bool {
	return int(q) < len(qualityNames)
}

func (q QualityTier) String() string {
	if !q.Valid() {
		return fmt.Sprintf("QUALITY(%d)", uint8(q))
	}
	return qualityNames[q]
}

// FeedingStateSnapshot is an immutable view of one pet's feeding state as read from the chain.
// The validate tags bound the values an unsigned conversion of a negative number would produce.
type FeedingStateSnapshot struct {
	TokenID           uint64      `json:"tokenId"`
	FeedingHours      uint64      `json:"feedingHours" validate:"lte=5124095576030431"`
	LastClaimTime     uint64      `json:"lastClaimTime" validate:"lte=9223372036854775807"`
	LastFeedTime      uint64      `json:"lastFeedTime" validate:"lte=9223372036854775807"`
	Quality           QualityTier `json:"quality"`
	IsActive          bool        `json:"isActive"`
	AccumulatedCycles uint64      `json:"accumulatedCycles"`

	// Informational only, not used in accrual math
	AccumulatedFood uint64 `json:"accumulatedFood"`
	Level           uint64 `json:"level"`
}

// LastActionTime is the most recent of the feed and claim timestamps
func (s FeedingStateSnapshot) LastActionTime() uint64 {
	if s.LastFeedTime > s.LastClaimTime {
		return s.LastFeedTime
	}
	return s.LastClaimTime
}
