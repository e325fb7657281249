package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/PetFeed_Go/internal/domain"
	"github.com/osse101/PetFeed_Go/internal/logger"
	"github.com/osse101/PetFeed_Go/internal/quote"
	"github.com/osse101/PetFeed_Go/internal/snapshot"
	"github.com/osse101/PetFeed_Go/internal/validation"
)

// session is one loaded snapshot file behind an in-memory quote service
type session struct {
	settings settings
	svc      quote.Service
	records  []snapshot.Record
}

// openSession reads path, checks its envelope and builds a quote service at the chosen time
func openSession(cmd *cobra.Command, opts *globalOptions, path string) (*session, error) {
	s, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	logger.InitLoggerWithWriter(logger.CLIConfig(opts.logLevel(), version), cmd.ErrOrStderr())

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshots: %w", err)
	}
	if err := validation.NewSchemaValidator().ValidateBytes(data, validation.SchemaSnapshotBatch); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	records, err := snapshot.ParseRecords(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	store := snapshot.NewStore(len(records), 0)
	svc := quote.NewService(store, s.clock, quote.Config{HardCapHours: s.hardCap, Workers: s.workers})
	return &session{settings: s, svc: svc, records: records}, nil
}

// ingest caches the records and returns the distinct token ids in file order,
// plus the records that could not be decoded
func (s *session) ingest(ctx context.Context) ([]uint64, []quote.RejectedRecord, error) {
	result, err := s.svc.IngestSnapshots(ctx, s.records)
	if err != nil {
		return nil, nil, err
	}

	rejected := make(map[int]bool, len(result.Rejected))
	var undecodable []quote.RejectedRecord
	for _, r := range result.Rejected {
		rejected[r.Index] = true
		if r.Reason != quote.ReasonStale {
			undecodable = append(undecodable, r)
		}
	}

	seen := make(map[uint64]bool, len(s.records))
	ids := make([]uint64, 0, len(s.records))
	for i, d := range snapshot.DecodeAll(s.records) {
		if rejected[i] && d.Err != nil {
			continue
		}
		if !seen[d.Snapshot.TokenID] {
			seen[d.Snapshot.TokenID] = true
			ids = append(ids, d.Snapshot.TokenID)
		}
	}
	return ids, undecodable, nil
}

func quoteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "quote <snapshots.json>",
		Short: "Quote claimable rewards for every pet in the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, args[0])
			if err != nil {
				return err
			}

			report, err := s.svc.QuoteBatch(cmd.Context(), nil, s.records)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), s.settings.output, report, func(p *printer) { p.rewardReport(report) })
		},
	}
}

func remainingCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remaining <snapshots.json>",
		Short: "Show feeding hours left for every pet in the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, args[0])
			if err != nil {
				return err
			}

			ids, undecodable, err := s.ingest(cmd.Context())
			if err != nil {
				return err
			}

			gauges := make([]domain.RemainingHours, 0, len(ids)+len(undecodable))
			for _, id := range ids {
				r, err := s.svc.RemainingHours(cmd.Context(), id)
				if err != nil {
					return err
				}
				gauges = append(gauges, r)
			}
			for _, r := range undecodable {
				gauges = append(gauges, domain.RemainingHours{TokenID: r.TokenID, Defaulted: true, Error: domain.ErrorKindInvalidSnapshot})
			}

			return render(cmd.OutOrStdout(), s.settings.output, gauges, func(p *printer) { p.remaining(gauges) })
		},
	}
}

func planCmd(opts *globalOptions) *cobra.Command {
	var hours uint32

	cmd := &cobra.Command{
		Use:   "plan <snapshots.json>",
		Short: "Plan a batch feed of --hours for every pet in the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if hours == 0 {
				return fmt.Errorf("--hours must be positive")
			}
			s, err := openSession(cmd, opts, args[0])
			if err != nil {
				return err
			}

			ids, undecodable, err := s.ingest(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range undecodable {
				ids = append(ids, r.TokenID)
			}

			plan, err := s.svc.PlanBatchFeed(cmd.Context(), ids, hours, 0)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), s.settings.output, plan, func(p *printer) { p.feedPlan(plan) })
		},
	}

	cmd.Flags().Uint32Var(&hours, "hours", 0, "feeding hours to add to each pet")
	return cmd
}

func validateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <snapshots.json>",
		Short: "Check every record in the file against the snapshot schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := opts.resolve(); err != nil {
				return err
			}
			if err := validation.NewSchemaValidator().ValidateFile(args[0], validation.SchemaFeedingSnapshots); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}
}
