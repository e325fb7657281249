package domain

import "math"

// Accrual timing constants
const (
	// SecondsPerCycle is the length of one reward cycle (1 cycle = 1 hour of feeding)
	SecondsPerCycle = 3600

	// DefaultHardCapHours is the maximum banked feeding a pet may hold (7 days)
	DefaultHardCapHours = 168
)

// Snapshot bounds
const (
	// MaxUnixSeconds is the largest timestamp accepted from the chain.
	// Anything above it is a negative value that went through an unsigned conversion.
	MaxUnixSeconds uint64 = math.MaxInt64

	// MaxFeedingHours keeps FeedingHours*SecondsPerCycle inside uint64
	MaxFeedingHours uint64 = math.MaxUint64 / SecondsPerCycle
)

// Remaining-hours precision
const (
	// TenthsPerHour is the resolution of RemainingHours
	TenthsPerHour = 10

	// SecondsPerTenth is the number of seconds in one tenth of an hour
	SecondsPerTenth = SecondsPerCycle / TenthsPerHour
)

// Wire field names of the on-chain feeding state read
const (
	FieldTokenID           = "tokenId"
	FieldFeedingHours      = "feedingHours"
	FieldLastClaimTime     = "lastClaimTime"
	FieldLastFeedTime      = "lastFeedTime"
	FieldQuality           = "quality"
	FieldIsActive          = "isActive"
	FieldAccumulatedCycles = "accumulatedCycles"
	FieldAccumulatedFood   = "accumulatedFood"
	FieldLevel             = "level"
)
