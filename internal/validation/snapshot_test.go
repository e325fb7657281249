package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PetFeed_Go/internal/domain"
)

func TestValidateSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		s       domain.FeedingStateSnapshot
		wantErr bool
	}{
		{"zero value", domain.FeedingStateSnapshot{}, false},
		{"upper bounds", domain.FeedingStateSnapshot{
			FeedingHours:  domain.MaxFeedingHours,
			LastClaimTime: domain.MaxUnixSeconds,
			LastFeedTime:  domain.MaxUnixSeconds,
		}, false},
		{"unknown quality is not a validation error", domain.FeedingStateSnapshot{Quality: 200}, false},
		{"feeding hours too large", domain.FeedingStateSnapshot{FeedingHours: domain.MaxFeedingHours + 1}, true},
		{"claim time wrapped", domain.FeedingStateSnapshot{LastClaimTime: math.MaxUint64}, true},
		{"feed time wrapped", domain.FeedingStateSnapshot{LastFeedTime: domain.MaxUnixSeconds + 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSnapshot(tt.s)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateNow(t *testing.T) {
	assert.NoError(t, ValidateNow(0))
	assert.NoError(t, ValidateNow(math.MaxInt64))
	assert.ErrorIs(t, ValidateNow(-1), domain.ErrInvalidSnapshot)
}
