package accrual

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PetFeed_Go/internal/domain"
)

const (
	baseTime = int64(1_700_000_000)
	hour     = int64(domain.SecondsPerCycle)
)

func activePet(feedingHours uint64) domain.FeedingStateSnapshot {
	return domain.FeedingStateSnapshot{
		TokenID:       42,
		FeedingHours:  feedingHours,
		LastClaimTime: uint64(baseTime),
		LastFeedTime:  uint64(baseTime),
		Quality:       domain.QualityCommon,
		IsActive:      true,
	}
}

func TestAccrue_Inactive(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name string
		now  int64
	}{
		{"before last claim", baseTime - hour},
		{"at last claim", baseTime},
		{"long after last claim", baseTime + 1000*hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := activePet(24)
			s.IsActive = false
			s.AccumulatedCycles = 7
			s.Quality = domain.QualityLegendary

			q := engine.Accrue(s, tt.now)

			assert.True(t, q.Inactive)
			assert.Zero(t, q.Cycles)
			assert.Zero(t, q.Pwpot)
			assert.Zero(t, q.Pwbot)
			assert.Equal(t, uint64(7), q.AccumulatedCycles, "accumulated cycles are echoed, not lost")
			assert.Equal(t, domain.ErrorKindNone, q.Error)
		})
	}
}

func TestAccrue_NoTimeSinceClaim(t *testing.T) {
	engine := NewEngine()
	s := activePet(24)
	s.AccumulatedCycles = 3

	for _, now := range []int64{baseTime - 10*hour, baseTime - 1, baseTime} {
		q := engine.Accrue(s, now)
		assert.Equal(t, uint64(3), q.Cycles, "now=%d", now)
		assert.Equal(t, uint64(3), q.Pwpot)
		assert.Equal(t, uint64(3), q.AccumulatedCycles)
	}
}

func TestAccrue_Cycles(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name         string
		feedingHours uint64
		lastFeed     int64
		accumulated  uint64
		now          int64
		wantCycles   uint64
	}{
		{
			name:         "fed the whole window",
			feedingHours: 24,
			lastFeed:     baseTime,
			now:          baseTime + 2*hour,
			wantCycles:   2,
		},
		{
			name:         "partial hour is not a cycle",
			feedingHours: 24,
			lastFeed:     baseTime,
			now:          baseTime + 2*hour - 1,
			wantCycles:   1,
		},
		{
			name:         "exactly out of food",
			feedingHours: 5,
			lastFeed:     baseTime,
			now:          baseTime + 5*hour,
			wantCycles:   5,
		},
		{
			name:         "starved without re-feed",
			feedingHours: 5,
			lastFeed:     baseTime,
			now:          baseTime + 10*hour,
			wantCycles:   5,
		},
		{
			name:         "re-fed before starving counts no extra window",
			feedingHours: 5,
			lastFeed:     baseTime + hour,
			now:          baseTime + 10*hour,
			wantCycles:   5,
		},
		{
			name:         "re-fed after starving",
			feedingHours: 5,
			lastFeed:     baseTime + 8*hour,
			now:          baseTime + 10*hour,
			wantCycles:   7,
		},
		{
			name:         "re-fed window capped by feeding hours",
			feedingHours: 2,
			lastFeed:     baseTime + 3*hour,
			now:          baseTime + 20*hour,
			wantCycles:   4,
		},
		{
			name:         "re-feed later than now",
			feedingHours: 1,
			lastFeed:     baseTime + 3*hour,
			now:          baseTime + 2*hour,
			wantCycles:   1,
		},
		{
			name:         "never fed",
			feedingHours: 0,
			lastFeed:     0,
			now:          baseTime + 10*hour,
			wantCycles:   0,
		},
		{
			name:         "carried over cycles are added",
			feedingHours: 24,
			lastFeed:     baseTime,
			accumulated:  10,
			now:          baseTime + 3*hour,
			wantCycles:   13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := activePet(tt.feedingHours)
			s.LastFeedTime = uint64(tt.lastFeed)
			s.AccumulatedCycles = tt.accumulated

			q := engine.Accrue(s, tt.now)

			require.Equal(t, domain.ErrorKindNone, q.Error)
			assert.Equal(t, tt.wantCycles, q.Cycles)
			assert.Equal(t, tt.accumulated, q.AccumulatedCycles)
			assert.Equal(t, tt.wantCycles, q.Pwpot, "COMMON pays 1 pwpot per cycle")
			assert.Zero(t, q.Pwbot)
		})
	}
}

func TestAccrue_QualityRates(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		quality   domain.QualityTier
		wantPwpot uint64
		wantPwbot uint64
		defaulted bool
	}{
		{domain.QualityCommon, 4, 0, false},
		{domain.QualityGood, 8, 0, false},
		{domain.QualityExcellent, 12, 4, false},
		{domain.QualityRare, 20, 8, false},
		{domain.QualityLegendary, 40, 20, false},
		{domain.QualityTier(9), 4, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.quality.String(), func(t *testing.T) {
			s := activePet(10)
			s.Quality = tt.quality

			q := engine.Accrue(s, baseTime+4*hour)

			assert.Equal(t, uint64(4), q.Cycles)
			assert.Equal(t, tt.wantPwpot, q.Pwpot)
			assert.Equal(t, tt.wantPwbot, q.Pwbot)
			assert.Equal(t, tt.defaulted, q.QualityDefaulted)
		})
	}
}

func TestAccrue_InvalidSnapshot(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name   string
		mutate func(*domain.FeedingStateSnapshot)
		now    int64
	}{
		{
			name:   "wrapped negative claim time",
			mutate: func(s *domain.FeedingStateSnapshot) { s.LastClaimTime = math.MaxUint64 },
			now:    baseTime,
		},
		{
			name:   "wrapped negative feed time",
			mutate: func(s *domain.FeedingStateSnapshot) { s.LastFeedTime = uint64(math.MaxInt64) + 1 },
			now:    baseTime,
		},
		{
			name:   "feeding hours out of range",
			mutate: func(s *domain.FeedingStateSnapshot) { s.FeedingHours = domain.MaxFeedingHours + 1 },
			now:    baseTime,
		},
		{
			name:   "negative now",
			mutate: func(s *domain.FeedingStateSnapshot) {},
			now:    -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := activePet(24)
			s.AccumulatedCycles = 5
			tt.mutate(&s)

			q := engine.Accrue(s, tt.now)

			assert.Equal(t, domain.RewardQuote{TokenID: 42, Error: domain.ErrorKindInvalidSnapshot}, q)
			assert.ErrorIs(t, q.Error.Err(), domain.ErrInvalidSnapshot)
		})
	}
}

func TestAccrue_BoundaryValuesAreAccepted(t *testing.T) {
	engine := NewEngine()
	s := activePet(domain.MaxFeedingHours)
	s.LastClaimTime = domain.MaxUnixSeconds
	s.LastFeedTime = domain.MaxUnixSeconds

	q := engine.Accrue(s, math.MaxInt64)

	assert.Equal(t, domain.ErrorKindNone, q.Error)
	assert.Zero(t, q.Cycles)
}

func TestAccrue_Overflow(t *testing.T) {
	engine := NewEngine()

	t.Run("reward multiplication", func(t *testing.T) {
		s := activePet(24)
		s.Quality = domain.QualityLegendary
		s.AccumulatedCycles = math.MaxUint64 / 2

		q := engine.Accrue(s, baseTime)

		assert.Equal(t, domain.ErrorKindOverflow, q.Error)
		assert.Equal(t, uint64(math.MaxUint64/2), q.Cycles)
		assert.Zero(t, q.Pwpot)
		assert.Zero(t, q.Pwbot)
		assert.ErrorIs(t, q.Error.Err(), domain.ErrRewardOverflow)
	})

	t.Run("cycle addition", func(t *testing.T) {
		s := activePet(24)
		s.AccumulatedCycles = math.MaxUint64

		q := engine.Accrue(s, baseTime+hour)

		assert.Equal(t, domain.ErrorKindOverflow, q.Error)
		assert.Zero(t, q.Cycles)
		assert.Equal(t, uint64(math.MaxUint64), q.AccumulatedCycles)
	})

	t.Run("largest payable count at the common rate", func(t *testing.T) {
		s := activePet(24)
		s.AccumulatedCycles = math.MaxUint64

		q := engine.Accrue(s, baseTime)

		assert.Equal(t, domain.ErrorKindNone, q.Error)
		assert.Equal(t, uint64(math.MaxUint64), q.Pwpot)
	})
}

func TestAccrue_Idempotent(t *testing.T) {
	engine := NewEngine()
	s := activePet(5)
	s.Quality = domain.QualityExcellent
	s.LastFeedTime = uint64(baseTime + 8*hour)
	now := baseTime + 10*hour

	first := engine.Accrue(s, now)
	second := engine.Accrue(s, now)
	assert.Equal(t, first, second)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.Equal(t, activePet(5).FeedingHours, s.FeedingHours, "snapshot is not mutated")
}

func TestValidCycles_NeverExceedsElapsedHoursPlusCarry(t *testing.T) {
	engine := NewEngine()

	for feedingHours := uint64(0); feedingHours <= 12; feedingHours++ {
		for refeed := int64(0); refeed <= 24; refeed += 3 {
			for elapsed := int64(0); elapsed <= 30; elapsed++ {
				s := activePet(feedingHours)
				s.LastFeedTime = uint64(baseTime + refeed*hour)
				now := uint64(baseTime + elapsed*hour)

				cycles, err := engine.ValidCycles(s, now)
				require.NoError(t, err)
				assert.LessOrEqual(t, cycles, uint64(elapsed),
					"fh=%d refeed=%d elapsed=%d", feedingHours, refeed, elapsed)
				assert.LessOrEqual(t, cycles, 2*feedingHours)
			}
		}
	}
}
