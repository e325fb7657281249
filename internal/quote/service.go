package quote

import (
	"context"
	"fmt"

	"github.com/osse101/PetFeed_Go/internal/accrual"
	"github.com/osse101/PetFeed_Go/internal/clock"
	"github.com/osse101/PetFeed_Go/internal/domain"
	"github.com/osse101/PetFeed_Go/internal/feeding"
	"github.com/osse101/PetFeed_Go/internal/logger"
	"github.com/osse101/PetFeed_Go/internal/metrics"
	"github.com/osse101/PetFeed_Go/internal/snapshot"
)

// Service quotes rewards and feeding headroom for cached or inline snapshots
type Service interface {
	IngestSnapshots(ctx context.Context, records []snapshot.Record) (IngestResult, error)
	QuoteToken(ctx context.Context, tokenID uint64) (domain.RewardQuote, error)
	QuoteBatch(ctx context.Context, tokenIDs []uint64, records []snapshot.Record) (domain.RewardBatchReport, error)
	RemainingHours(ctx context.Context, tokenID uint64) (domain.RemainingHours, error)
	Admission(ctx context.Context, tokenID uint64, hardCapHours uint32) (domain.AdmissionEstimate, error)
	PlanBatchFeed(ctx context.Context, tokenIDs []uint64, requestedHours, hardCapHours uint32) (domain.BatchFeedPlan, error)
}

// IngestResult summarizes one snapshot upload
type IngestResult struct {
	Stored   int              `json:"stored"`
	Evicted  int              `json:"evicted"`
	Rejected []RejectedRecord `json:"rejected"`
}

// RejectedRecord identifies an uploaded record that was not cached
type RejectedRecord struct {
	Index   int    `json:"index"`
	TokenID uint64 `json:"token_id"`
	Reason  string `json:"reason"`
}

// Config holds service tuning
type Config struct {
	// HardCapHours applies when a caller passes a zero cap
	HardCapHours uint32
	// Workers is the aggregation fan-out per batch
	Workers int
}

type service struct {
	store      *snapshot.Store
	clock      clock.Clock
	engine     *accrual.Engine
	aggregator *accrual.Aggregator
	hardCap    uint32
}

// NewService creates a new quote service
func NewService(store *snapshot.Store, clk clock.Clock, cfg Config) Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	hardCap := cfg.HardCapHours
	if hardCap == 0 {
		hardCap = domain.DefaultHardCapHours
	}

	engine := accrual.NewEngine()
	return &service{
		store:      store,
		clock:      clk,
		engine:     engine,
		aggregator: accrual.NewAggregator(engine, accrual.AggregatorConfig{Workers: cfg.Workers}),
		hardCap:    hardCap,
	}
}

// IngestSnapshots decodes and caches records. Undecodable and stale records are
// reported individually; they never fail the upload.
func (s *service) IngestSnapshots(ctx context.Context, records []snapshot.Record) (IngestResult, error) {
	log := logger.FromContext(ctx)
	result := IngestResult{Rejected: []RejectedRecord{}}

	if err := checkBatchSize(len(records)); err != nil {
		return result, err
	}

	for i, d := range snapshot.DecodeAll(records) {
		if d.Err != nil {
			log.Warn(LogMsgSnapshotRejected, "index", i, "tokenID", d.Snapshot.TokenID, "error", d.Err)
			result.Rejected = append(result.Rejected, RejectedRecord{Index: i, TokenID: d.Snapshot.TokenID, Reason: d.Err.Error()})
			metrics.RecordIngest(metrics.ResultRejected)
			continue
		}

		switch s.store.Put(d.Snapshot) {
		case snapshot.PutStale:
			result.Rejected = append(result.Rejected, RejectedRecord{Index: i, TokenID: d.Snapshot.TokenID, Reason: ReasonStale})
			metrics.RecordIngest(metrics.ResultStale)
		case snapshot.PutEvicted:
			result.Stored++
			result.Evicted++
			metrics.RecordIngest(metrics.ResultEvicted)
		default:
			result.Stored++
			metrics.RecordIngest(metrics.ResultStored)
		}
	}
	metrics.SnapshotCacheSize.Set(float64(s.store.Len()))

	log.Info(LogMsgSnapshotsIngested, "stored", result.Stored, "rejected", len(result.Rejected), "evicted", result.Evicted)
	return result, nil
}

// QuoteToken quotes one cached pet
func (s *service) QuoteToken(ctx context.Context, tokenID uint64) (domain.RewardQuote, error) {
	snap, err := s.lookup(ctx, tokenID)
	if err != nil {
		return domain.RewardQuote{}, err
	}

	q := s.engine.Accrue(snap, clock.Unix(s.clock))
	metrics.RecordQuote(q)
	logger.FromContext(ctx).Debug(LogMsgQuoteComputed, "tokenID", tokenID, "cycles", q.Cycles, "error", q.Error)
	return q, nil
}

// QuoteBatch quotes cached pets by id followed by inline records, in that order.
// Ids missing from the cache and undecodable records become invalid_snapshot quotes.
func (s *service) QuoteBatch(ctx context.Context, tokenIDs []uint64, records []snapshot.Record) (domain.RewardBatchReport, error) {
	log := logger.FromContext(ctx)

	total := len(tokenIDs) + len(records)
	if err := checkBatchSize(total); err != nil {
		return domain.RewardBatchReport{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.RewardBatchReport{}, err
	}

	now := clock.Unix(s.clock)
	quotes := make([]domain.RewardQuote, total)
	valid := make([]domain.FeedingStateSnapshot, 0, total)
	slots := make([]int, 0, total)

	cached, found := s.store.GetMany(tokenIDs)
	for i, id := range tokenIDs {
		if !found[i] {
			log.Debug(LogMsgSnapshotMissing, "tokenID", id)
			quotes[i] = domain.RewardQuote{TokenID: id, Error: domain.ErrorKindInvalidSnapshot}
			continue
		}
		valid = append(valid, cached[i])
		slots = append(slots, i)
	}

	for j, d := range snapshot.DecodeAll(records) {
		i := len(tokenIDs) + j
		if d.Err != nil {
			log.Debug(LogMsgSnapshotRejected, "index", j, "tokenID", d.Snapshot.TokenID, "error", d.Err)
			quotes[i] = domain.RewardQuote{TokenID: d.Snapshot.TokenID, Error: domain.ErrorKindInvalidSnapshot}
			continue
		}
		valid = append(valid, d.Snapshot)
		slots = append(slots, i)
	}

	for k, q := range s.aggregator.QuoteAll(valid, now) {
		quotes[slots[k]] = q
	}

	report := accrual.Summarize(quotes)
	metrics.RecordBatch(report)

	if report.Saturated {
		log.Warn(LogMsgBatchSaturated, "warnings", report.Warnings)
	}
	log.Info(LogMsgBatchQuoted,
		"pets", len(report.PerToken),
		"failed", report.Failed,
		"totalPwpot", report.TotalPwpot,
		"totalPwbot", report.TotalPwbot)

	return report, nil
}

// RemainingHours reports the decayed feeding gauge of one cached pet
func (s *service) RemainingHours(ctx context.Context, tokenID uint64) (domain.RemainingHours, error) {
	snap, err := s.lookup(ctx, tokenID)
	if err != nil {
		return domain.RemainingHours{}, err
	}

	r := feeding.RemainingHours(snap, clock.Unix(s.clock))
	metrics.RecordRemaining(r)
	return r, nil
}

// Admission estimates the feeding headroom of one cached pet
func (s *service) Admission(ctx context.Context, tokenID uint64, hardCapHours uint32) (domain.AdmissionEstimate, error) {
	snap, err := s.lookup(ctx, tokenID)
	if err != nil {
		return domain.AdmissionEstimate{}, err
	}

	est := feeding.MaxAdditionalHours(snap, clock.Unix(s.clock), s.capOrDefault(hardCapHours))
	metrics.RecordRemaining(est.Remaining)
	return est, nil
}

// PlanBatchFeed splits cached pets into those that can take requestedHours and
// those that cannot. Pets missing from the cache are excluded with an
// invalid_snapshot gauge, since nothing is known about their banked hours.
func (s *service) PlanBatchFeed(ctx context.Context, tokenIDs []uint64, requestedHours, hardCapHours uint32) (domain.BatchFeedPlan, error) {
	if err := checkBatchSize(len(tokenIDs)); err != nil {
		return domain.BatchFeedPlan{}, err
	}
	if requestedHours == 0 {
		return domain.BatchFeedPlan{}, fmt.Errorf("%w: requested hours must be positive", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return domain.BatchFeedPlan{}, err
	}

	hardCap := s.capOrDefault(hardCapHours)
	cached, found := s.store.GetMany(tokenIDs)

	present := make([]domain.FeedingStateSnapshot, 0, len(tokenIDs))
	var missing []domain.AdmissionEstimate
	for i, id := range tokenIDs {
		if !found[i] {
			missing = append(missing, domain.AdmissionEstimate{
				TokenID:      id,
				HardCapHours: hardCap,
				Remaining:    domain.RemainingHours{TokenID: id, Defaulted: true, Error: domain.ErrorKindInvalidSnapshot},
				Defaulted:    true,
			})
			continue
		}
		present = append(present, cached[i])
	}

	plan := feeding.PlanBatchFeed(present, clock.Unix(s.clock), requestedHours, hardCap)
	plan.Excluded = append(plan.Excluded, missing...)
	metrics.RecordPlan(plan)

	logger.FromContext(ctx).Info(LogMsgFeedPlanned,
		"requestedHours", requestedHours,
		"hardCap", hardCap,
		"included", len(plan.Included),
		"excluded", len(plan.Excluded))

	return plan, nil
}

func (s *service) lookup(ctx context.Context, tokenID uint64) (domain.FeedingStateSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.FeedingStateSnapshot{}, err
	}
	snap, ok := s.store.Get(tokenID)
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgSnapshotMissing, "tokenID", tokenID)
		return domain.FeedingStateSnapshot{}, fmt.Errorf("%w: token %d", domain.ErrSnapshotNotFound, tokenID)
	}
	return snap, nil
}

func (s *service) capOrDefault(hardCapHours uint32) uint32 {
	if hardCapHours == 0 {
		return s.hardCap
	}
	return hardCapHours
}

func checkBatchSize(n int) error {
	if n == 0 {
		return fmt.Errorf("%w: batch is empty", domain.ErrInvalidInput)
	}
	if n > MaxBatchSize {
		return fmt.Errorf("%w: batch of %d exceeds the limit of %d", domain.ErrInvalidInput, n, MaxBatchSize)
	}
	return nil
}
