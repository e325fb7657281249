package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tenths is a non-negative hour quantity with one decimal place, stored exactly
// as a count of tenths of an hour. It marshals to JSON as a number like 12.5.
type Tenths uint64

// HoursToTenths converts whole hours to Tenths
func HoursToTenths(hours uint64) Tenths {
	return Tenths(hours * TenthsPerHour)
}

func (t Tenths) decimal() decimal.Decimal {
	return decimal.New(int64(t), -1)
}

// Float64 returns the hour value
func (t Tenths) Float64() float64 {
	f, _ := t.decimal().Float64()
	return f
}

// WholeHours returns the hour value rounded down
func (t Tenths) WholeHours() uint64 {
	return uint64(t) / TenthsPerHour
}

func (t Tenths) String() string {
	return t.decimal().StringFixed(1)
}

// MarshalJSON renders the value as a one-decimal JSON number
func (t Tenths) MarshalJSON() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalJSON parses a JSON number, rounding half-up to one decimal
func (t *Tenths) UnmarshalJSON(data []byte) error {
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("%w: hours %s", ErrInvalidInput, string(data))
	}
	if d.IsNegative() {
		return fmt.Errorf("%w: negative hours %s", ErrInvalidInput, string(data))
	}
	*t = Tenths(d.Shift(1).Round(0).IntPart())
	return nil
}

// RemainingHours is the decayed gauge of feeding left before a pet starves
type RemainingHours struct {
	TokenID uint64 `json:"token_id"`
	Hours   Tenths `json:"hours"`

	// Defaulted is set when the gauge fell back to the banked feeding hours
	Defaulted bool      `json:"defaulted,omitempty"`
	Error     ErrorKind `json:"error,omitempty"`
}

// AdmissionEstimate is how many more feeding hours a pet may receive before the hard cap
type AdmissionEstimate struct {
	TokenID            uint64         `json:"token_id"`
	MaxAdditionalHours uint32         `json:"max_additional_hours"`
	HardCapHours       uint32         `json:"hard_cap_hours"`
	Remaining          RemainingHours `json:"remaining"`

	// Defaulted is set when the pet was treated as having zero banked hours
	Defaulted bool `json:"defaulted,omitempty"`
}

// Admits reports whether requestedHours fits under the cap
func (a AdmissionEstimate) Admits(requestedHours uint32) bool {
	return requestedHours <= a.MaxAdditionalHours
}

// BatchFeedPlan partitions a batch feed request into pets that can take the
// requested hours and pets that would exceed the cap
type BatchFeedPlan struct {
	RequestedHours uint32              `json:"requested_hours"`
	HardCapHours   uint32              `json:"hard_cap_hours"`
	Included       []AdmissionEstimate `json:"included"`
	Excluded       []AdmissionEstimate `json:"excluded"`
}

// IncludedTokenIDs lists the token ids to send in the feed transaction, in input order
func (p BatchFeedPlan) IncludedTokenIDs() []uint64 {
	ids := make([]uint64, 0, len(p.Included))
	for _, est := range p.Included {
		ids = append(ids, est.TokenID)
	}
	return ids
}
