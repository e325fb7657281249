package feeding

import (
	"github.com/osse101/PetFeed_Go/internal/domain"
)

// MaxAdditionalHours returns how many whole feeding hours can be added to the pet
// before its remaining hours reach hardCapHours. A zero cap means DefaultHardCapHours.
//
// When the gauge could not be computed the pet is treated as having no banked
// hours, so the full cap is allowed and the estimate is marked Defaulted.
func MaxAdditionalHours(s domain.FeedingStateSnapshot, now int64, hardCapHours uint32) domain.AdmissionEstimate {
	if hardCapHours == 0 {
		hardCapHours = domain.DefaultHardCapHours
	}

	remaining := RemainingHours(s, now)
	est := domain.AdmissionEstimate{
		TokenID:      s.TokenID,
		HardCapHours: hardCapHours,
		Remaining:    remaining,
	}

	banked := remaining.Hours
	if remaining.Error != domain.ErrorKindNone {
		banked = 0
		est.Defaulted = true
	}

	capTenths := domain.HoursToTenths(uint64(hardCapHours))
	if banked >= capTenths {
		return est
	}

	// Partial hours are not offered; round the headroom down
	est.MaxAdditionalHours = uint32((capTenths - banked).WholeHours())
	return est
}

// PlanBatchFeed splits a batch feed of requestedHours per pet into pets that stay
// under the cap and pets that would exceed it. Excluded pets are left out of the
// feed instead of failing the whole batch. Both lists keep input order.
func PlanBatchFeed(snapshots []domain.FeedingStateSnapshot, now int64, requestedHours, hardCapHours uint32) domain.BatchFeedPlan {
	if hardCapHours == 0 {
		hardCapHours = domain.DefaultHardCapHours
	}

	plan := domain.BatchFeedPlan{
		RequestedHours: requestedHours,
		HardCapHours:   hardCapHours,
		Included:       []domain.AdmissionEstimate{},
		Excluded:       []domain.AdmissionEstimate{},
	}

	for _, s := range snapshots {
		est := MaxAdditionalHours(s, now, hardCapHours)
		if est.Admits(requestedHours) {
			plan.Included = append(plan.Included, est)
		} else {
			plan.Excluded = append(plan.Excluded, est)
		}
	}

	return plan
}
