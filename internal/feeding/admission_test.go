package feeding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PetFeed_Go/internal/domain"
)

func TestMaxAdditionalHours(t *testing.T) {
	tests := []struct {
		name      string
		pet       domain.FeedingStateSnapshot
		now       int64
		hardCap   uint32
		want      uint32
		wantCap   uint32
		defaulted bool
	}{
		{
			name:    "over the cap is zero, not negative",
			pet:     fedPet(200),
			now:     baseTime,
			hardCap: 168,
			want:    0,
			wantCap: 168,
		},
		{
			name:    "exactly at the cap",
			pet:     fedPet(168),
			now:     baseTime,
			hardCap: 168,
			want:    0,
			wantCap: 168,
		},
		{
			name:    "whole hours of headroom",
			pet:     fedPet(24),
			now:     baseTime + 2*hour,
			hardCap: 168,
			want:    146,
			wantCap: 168,
		},
		{
			name:    "fractional headroom rounds down",
			pet:     fedPet(1),
			now:     baseTime + 1000,
			hardCap: 168,
			want:    167,
			wantCap: 168,
		},
		{
			name:    "zero cap uses the default",
			pet:     fedPet(100),
			now:     baseTime,
			hardCap: 0,
			want:    68,
			wantCap: domain.DefaultHardCapHours,
		},
		{
			name:    "starved pet gets the full cap",
			pet:     fedPet(2),
			now:     baseTime + 10*hour,
			hardCap: 72,
			want:    72,
			wantCap: 72,
		},
		{
			name: "invalid snapshot allows the full cap",
			pet: func() domain.FeedingStateSnapshot {
				s := fedPet(150)
				s.LastClaimTime = math.MaxUint64
				return s
			}(),
			now:       baseTime,
			hardCap:   168,
			want:      168,
			wantCap:   168,
			defaulted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := MaxAdditionalHours(tt.pet, tt.now, tt.hardCap)
			assert.Equal(t, tt.want, est.MaxAdditionalHours)
			assert.Equal(t, tt.wantCap, est.HardCapHours)
			assert.Equal(t, tt.defaulted, est.Defaulted)
			assert.Equal(t, tt.pet.TokenID, est.TokenID)
		})
	}
}

func TestPlanBatchFeed(t *testing.T) {
	nearlyFull := fedPet(160)
	nearlyFull.TokenID = 1
	hungry := fedPet(10)
	hungry.TokenID = 2
	broken := fedPet(10)
	broken.TokenID = 3
	broken.FeedingHours = math.MaxUint64
	fullCap := fedPet(144)
	fullCap.TokenID = 4

	plan := PlanBatchFeed([]domain.FeedingStateSnapshot{nearlyFull, hungry, broken, fullCap}, baseTime, 24, 168)

	assert.Equal(t, []uint64{2, 3, 4}, plan.IncludedTokenIDs())
	if assert.Len(t, plan.Excluded, 1) {
		assert.Equal(t, uint64(1), plan.Excluded[0].TokenID)
		assert.Equal(t, uint32(8), plan.Excluded[0].MaxAdditionalHours)
	}
	assert.True(t, plan.Included[1].Defaulted)
	assert.Equal(t, uint32(24), plan.RequestedHours)
	assert.Equal(t, uint32(168), plan.HardCapHours)
}

func TestPlanBatchFeed_Empty(t *testing.T) {
	plan := PlanBatchFeed(nil, baseTime, 24, 0)
	assert.Empty(t, plan.Included)
	assert.NotNil(t, plan.Included)
	assert.Empty(t, plan.Excluded)
	assert.Equal(t, uint32(domain.DefaultHardCapHours), plan.HardCapHours)
}
