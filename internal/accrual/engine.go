package accrual

import (
	"fmt"
	"math/bits"

	"github.com/osse101/PetFeed_Go/internal/domain"
	"github.com/osse101/PetFeed_Go/internal/rewards"
	"github.com/osse101/PetFeed_Go/internal/validation"
)

// Engine provides pure reward accrual logic (no chain or clock dependencies)
type Engine struct{}

// NewEngine creates a new accrual engine
func NewEngine() *Engine {
	return &Engine{}
}

// Accrue computes the claimable reward for one pet at time now (Unix seconds).
// It never panics; malformed input and overflow are reported in the quote's Error field.
func (e *Engine) Accrue(s domain.FeedingStateSnapshot, now int64) domain.RewardQuote {
	if err := validation.ValidateSnapshot(s); err != nil {
		return domain.RewardQuote{TokenID: s.TokenID, Error: domain.ErrorKindInvalidSnapshot}
	}
	if err := validation.ValidateNow(now); err != nil {
		return domain.RewardQuote{TokenID: s.TokenID, Error: domain.ErrorKindInvalidSnapshot}
	}

	quote := domain.RewardQuote{
		TokenID:           s.TokenID,
		AccumulatedCycles: s.AccumulatedCycles,
	}

	if !s.IsActive {
		quote.Inactive = true
		return quote
	}

	cycles, err := e.ValidCycles(s, uint64(now))
	if err != nil {
		quote.Error = domain.ErrorKindOverflow
		return quote
	}
	quote.Cycles = cycles

	rate, known := rewards.Lookup(s.Quality)
	quote.QualityDefaulted = !known

	pwpot, err := mulChecked(rate.PwpotPerCycle, cycles)
	if err != nil {
		quote.Error = domain.ErrorKindOverflow
		return quote
	}
	pwbot, err := mulChecked(rate.PwbotPerCycle, cycles)
	if err != nil {
		quote.Error = domain.ErrorKindOverflow
		return quote
	}

	quote.Pwpot = pwpot
	quote.Pwbot = pwbot
	return quote
}

// ValidCycles counts the reward cycles payable at now, including cycles already
// credited on the snapshot. The snapshot must already be validated and active.
//
// A pet earns one cycle per full hour since the last claim while it has food.
// Once the banked feeding hours run out it earns nothing more, unless it was
// re-fed after starving; the re-fed window is capped by the snapshot's feeding
// hours, not by the hours bought in the re-feed.
func (e *Engine) ValidCycles(s domain.FeedingStateSnapshot, now uint64) (uint64, error) {
	total := s.AccumulatedCycles
	if now <= s.LastClaimTime {
		return total, nil
	}

	elapsed := now - s.LastClaimTime
	fedSeconds := s.FeedingHours * domain.SecondsPerCycle

	if fedSeconds >= elapsed {
		return addChecked(total, elapsed/domain.SecondsPerCycle)
	}

	total, err := addChecked(total, s.FeedingHours)
	if err != nil {
		return 0, err
	}

	// fedSeconds < elapsed, so this stays below now
	starvedAt := s.LastClaimTime + fedSeconds
	if s.LastFeedTime <= starvedAt {
		return total, nil
	}

	var sinceFeed uint64
	if now > s.LastFeedTime {
		sinceFeed = now - s.LastFeedTime
	}
	refed := sinceFeed / domain.SecondsPerCycle
	if refed > s.FeedingHours {
		refed = s.FeedingHours
	}
	return addChecked(total, refed)
}

func addChecked(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d", domain.ErrRewardOverflow, a, b)
	}
	return sum, nil
}

func mulChecked(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d * %d", domain.ErrRewardOverflow, a, b)
	}
	return lo, nil
}

// saturatingAdd adds b to a, clipping at the uint64 maximum
func saturatingAdd(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return ^uint64(0), true
	}
	return sum, false
}
