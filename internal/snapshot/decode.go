package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/holiman/uint256"

	"github.com/osse101/PetFeed_Go/internal/domain"
	"github.com/osse101/PetFeed_Go/internal/validation"
)

// Record is one feeding state read as returned by the chain-reading collaborator.
// Numeric fields are uint256 on chain and may arrive as JSON numbers, decimal
// strings or 0x-prefixed hex strings.
type Record struct {
	TokenID           json.RawMessage `json:"tokenId" validate:"required"`
	FeedingHours      json.RawMessage `json:"feedingHours" validate:"required"`
	LastClaimTime     json.RawMessage `json:"lastClaimTime" validate:"required"`
	LastFeedTime      json.RawMessage `json:"lastFeedTime" validate:"required"`
	Quality           json.RawMessage `json:"quality" validate:"required"`
	IsActive          json.RawMessage `json:"isActive" validate:"required"`
	AccumulatedCycles json.RawMessage `json:"accumulatedCycles" validate:"required"`
	AccumulatedFood   json.RawMessage `json:"accumulatedFood,omitempty"`
	Level             json.RawMessage `json:"level,omitempty"`
}

// Decoded pairs a decoded snapshot with its decode error.
// TokenID is filled whenever the token id itself was readable.
type Decoded struct {
	Snapshot domain.FeedingStateSnapshot
	Err      error
}

var errMissing = errors.New("missing")

// ParseRecords parses a JSON array of records
func ParseRecords(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return records, nil
}

// Decode converts a wire record into a typed snapshot. Every failure wraps
// domain.ErrInvalidSnapshot; nothing is coerced to zero.
func Decode(rec Record) (domain.FeedingStateSnapshot, error) {
	var s domain.FeedingStateSnapshot

	if err := validation.Struct(rec); err != nil {
		// a readable token id still identifies the failing item
		s.TokenID, _ = decodeUint(rec.TokenID)
		return s, fmt.Errorf("%w: missing fields: %v", domain.ErrInvalidSnapshot, err)
	}

	fields := []struct {
		name string
		raw  json.RawMessage
		dst  *uint64
		opt  bool
	}{
		{domain.FieldTokenID, rec.TokenID, &s.TokenID, false},
		{domain.FieldFeedingHours, rec.FeedingHours, &s.FeedingHours, false},
		{domain.FieldLastClaimTime, rec.LastClaimTime, &s.LastClaimTime, false},
		{domain.FieldLastFeedTime, rec.LastFeedTime, &s.LastFeedTime, false},
		{domain.FieldAccumulatedCycles, rec.AccumulatedCycles, &s.AccumulatedCycles, false},
		{domain.FieldAccumulatedFood, rec.AccumulatedFood, &s.AccumulatedFood, true},
		{domain.FieldLevel, rec.Level, &s.Level, true},
	}
	for _, f := range fields {
		v, err := decodeUint(f.raw)
		if errors.Is(err, errMissing) && f.opt {
			continue
		}
		if err != nil {
			return s, fmt.Errorf("%w: token %d: %s: %v", domain.ErrInvalidSnapshot, s.TokenID, f.name, err)
		}
		*f.dst = v
	}

	quality, err := decodeUint(rec.Quality)
	if err != nil {
		return s, fmt.Errorf("%w: token %d: %s: %v", domain.ErrInvalidSnapshot, s.TokenID, domain.FieldQuality, err)
	}
	// Unknown tiers are priced as COMMON later; keep them unknown rather than wrapping
	if quality > math.MaxUint8 {
		quality = math.MaxUint8
	}
	s.Quality = domain.QualityTier(quality)

	active, err := decodeBool(rec.IsActive)
	if err != nil {
		return s, fmt.Errorf("%w: token %d: %s: %v", domain.ErrInvalidSnapshot, s.TokenID, domain.FieldIsActive, err)
	}
	s.IsActive = active

	if err := validation.ValidateSnapshot(s); err != nil {
		return s, err
	}
	return s, nil
}

// DecodeAll decodes every record, keeping input order and per-record errors
func DecodeAll(records []Record) []Decoded {
	out := make([]Decoded, len(records))
	for i, rec := range records {
		s, err := Decode(rec)
		out[i] = Decoded{Snapshot: s, Err: err}
	}
	return out
}

// decodeUint reads a uint256 encoded as a JSON number or string and requires it to fit uint64
func decodeUint(raw json.RawMessage) (uint64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, errMissing
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, err
		}
		text = strings.TrimSpace(text)
	}
	if text == "" {
		return 0, errMissing
	}

	v, err := parseUint256(text)
	if err != nil {
		return 0, fmt.Errorf("not an unsigned integer: %q", text)
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("value %s exceeds uint64", v.Dec())
	}
	return v.Uint64(), nil
}

func parseUint256(text string) (*uint256.Int, error) {
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, hexPrefix) {
		digits := strings.TrimLeft(lower[len(hexPrefix):], "0")
		if digits == "" {
			digits = "0"
		}
		return uint256.FromHex(hexPrefix + digits)
	}

	digits := strings.TrimLeft(text, "0")
	if digits == "" {
		digits = "0"
	}
	return uint256.FromDecimal(digits)
}

// decodeBool reads a JSON bool, also accepting "true"/"false" strings
func decodeBool(raw json.RawMessage) (bool, error) {
	raw = bytes.TrimSpace(raw)
	switch string(raw) {
	case "true", `"true"`:
		return true, nil
	case "false", `"false"`:
		return false, nil
	case "", "null":
		return false, errMissing
	default:
		return false, fmt.Errorf("not a boolean: %s", string(raw))
	}
}
