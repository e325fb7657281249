package feeding

import (
	"github.com/osse101/PetFeed_Go/internal/domain"
	"github.com/osse101/PetFeed_Go/internal/validation"
)

// RemainingHours returns the feeding hours a pet has left at now (Unix seconds),
// decayed from its last feed or claim and rounded half-up to one decimal.
// The result never increases as now advances and is never negative.
func RemainingHours(s domain.FeedingStateSnapshot, now int64) domain.RemainingHours {
	result := domain.RemainingHours{TokenID: s.TokenID}

	if validation.ValidateSnapshot(s) != nil || validation.ValidateNow(now) != nil {
		result.Hours = bankedTenths(s.FeedingHours)
		result.Defaulted = true
		result.Error = domain.ErrorKindInvalidSnapshot
		return result
	}

	if !s.IsActive {
		return result
	}

	lastAction := s.LastActionTime()
	if lastAction == 0 {
		result.Hours = bankedTenths(s.FeedingHours)
		return result
	}

	// A last action later than now counts as zero elapsed time
	var elapsed uint64
	if uint64(now) > lastAction {
		elapsed = uint64(now) - lastAction
	}

	fedSeconds := s.FeedingHours * domain.SecondsPerCycle
	if elapsed >= fedSeconds {
		return result
	}

	result.Hours = roundTenths(fedSeconds - elapsed)
	return result
}

// roundTenths converts seconds to tenths of an hour, rounding half-up
func roundTenths(seconds uint64) domain.Tenths {
	tenths := seconds / domain.SecondsPerTenth
	if seconds%domain.SecondsPerTenth >= domain.SecondsPerTenth/2 {
		tenths++
	}
	return domain.Tenths(tenths)
}

// bankedTenths converts banked whole hours to tenths, clipping values
// too large to represent
func bankedTenths(hours uint64) domain.Tenths {
	if hours > domain.MaxFeedingHours {
		hours = domain.MaxFeedingHours
	}
	return domain.HoursToTenths(hours)
}
