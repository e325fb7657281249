package domain

// RewardRate is the per-cycle payout for one quality tier
type RewardRate struct {
	PwpotPerCycle uint64 `json:"pwpot_per_cycle"`
	PwbotPerCycle uint64 `json:"pwbot_per_cycle"`
}

// RewardQuote is the claimable reward for one token at one instant.
// It is a comparable value: two quotes for the same snapshot and time are ==.
type RewardQuote struct {
	TokenID           uint64 `json:"token_id"`
	Pwpot             uint64 `json:"pwpot"`
	Pwbot             uint64 `json:"pwbot"`
	Cycles            uint64 `json:"cycles"`
	AccumulatedCycles uint64 `json:"accumulated_cycles"`

	// Inactive marks the valid zero-result state of a pet that accrues nothing
	Inactive bool `json:"inactive,omitempty"`

	// QualityDefaulted is set when an unknown tier was priced at the COMMON rate
	QualityDefaulted bool `json:"quality_defaulted,omitempty"`

	Error ErrorKind `json:"error,omitempty"`
}

// Failed reports whether the quote carries an error
func (q RewardQuote) Failed() bool {
	return q.Error != ErrorKindNone
}

// RewardBatchReport aggregates quotes for a batch of tokens, in input order
type RewardBatchReport struct {
	PerToken   []RewardQuote `json:"per_token"`
	TotalPwpot uint64        `json:"total_pwpot"`
	TotalPwbot uint64        `json:"total_pwbot"`

	// Saturated is set when a total was clipped at the numeric maximum
	Saturated bool     `json:"saturated,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`

	// Failed counts quotes carrying an error
	Failed int `json:"failed"`
}

// HasClaimableRewards reports whether a claim transaction would pay out anything
func (r RewardBatchReport) HasClaimableRewards() bool {
	return r.TotalPwpot > 0 || r.TotalPwbot > 0
}
