package validation

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PetFeed_Go/internal/domain"
)

var (
	structValidatorOnce sync.Once
	structValidator     *validator.Validate
)

// Struct validates s against its `validate` struct tags with a shared validator.
// The validator caches struct metadata and is safe for concurrent use.
func Struct(s interface{}) error {
	structValidatorOnce.Do(func() {
		structValidator = validator.New()
	})
	return structValidator.Struct(s)
}

// ValidateSnapshot checks a feeding snapshot against the bounds encoded in its tags.
// Failures wrap domain.ErrInvalidSnapshot.
func ValidateSnapshot(s domain.FeedingStateSnapshot) error {
	if err := Struct(s); err != nil {
		return fmt.Errorf("%w: token %d: %v", domain.ErrInvalidSnapshot, s.TokenID, err)
	}
	return nil
}

// ValidateNow checks that now is a usable Unix timestamp
func ValidateNow(now int64) error {
	if now < 0 {
		return fmt.Errorf("%w: negative timestamp %d", domain.ErrInvalidSnapshot, now)
	}
	return nil
}
