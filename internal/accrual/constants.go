package accrual

// Batch aggregation constants
const (
	// DefaultWorkers runs aggregation as a sequential fold
	DefaultWorkers = 1

	// minParallelBatch is the smallest batch worth fanning out
	minParallelBatch = 2
)

// Warning messages attached to a RewardBatchReport
const (
	WarnPwpotSaturated = "total_pwpot saturated at the uint64 maximum; some rewards were clipped"
	WarnPwbotSaturated = "total_pwbot saturated at the uint64 maximum; some rewards were clipped"
)
