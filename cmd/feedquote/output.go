package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/osse101/PetFeed_Go/internal/domain"
)

// render writes v as indented JSON, or calls table for the table format
func render(w io.Writer, format string, v any, table func(*printer)) error {
	if format == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	table(&printer{w: w})
	return nil
}

type printer struct {
	w io.Writer
}

func (p *printer) table(header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(p.w)
	t.SetHeader(header)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	return t
}

func u64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// status summarizes the per-token flags of a quote
func status(q domain.RewardQuote) string {
	switch {
	case q.Error != domain.ErrorKindNone:
		return string(q.Error)
	case q.Inactive:
		return "inactive"
	case q.QualityDefaulted:
		return "quality defaulted"
	default:
		return "ok"
	}
}

func (p *printer) rewardReport(report domain.RewardBatchReport) {
	t := p.table([]string{"Token", "Cycles", "Carried", "PWPOT", "PWBOT", "Status"})
	for _, q := range report.PerToken {
		t.Append([]string{u64(q.TokenID), u64(q.Cycles), u64(q.AccumulatedCycles), u64(q.Pwpot), u64(q.Pwbot), status(q)})
	}
	t.SetFooter([]string{"", "", "Total", u64(report.TotalPwpot), u64(report.TotalPwbot), strconv.Itoa(report.Failed) + " failed"})
	t.Render()

	for _, warning := range report.Warnings {
		fmt.Fprintf(p.w, "warning: %s\n", warning)
	}
	if !report.HasClaimableRewards() {
		fmt.Fprintln(p.w, "nothing to claim")
	}
}

func gaugeStatus(r domain.RemainingHours) string {
	switch {
	case r.Error != domain.ErrorKindNone:
		return string(r.Error)
	case r.Defaulted:
		return "defaulted"
	default:
		return "ok"
	}
}

func (p *printer) remaining(gauges []domain.RemainingHours) {
	t := p.table([]string{"Token", "Hours left", "Status"})
	for _, r := range gauges {
		t.Append([]string{u64(r.TokenID), r.Hours.String(), gaugeStatus(r)})
	}
	t.Render()
}

func (p *printer) feedPlan(plan domain.BatchFeedPlan) {
	fmt.Fprintf(p.w, "feeding %d hours, hard cap %d hours\n", plan.RequestedHours, plan.HardCapHours)

	t := p.table([]string{"Token", "Hours left", "Max additional", "Feed"})
	for _, est := range plan.Included {
		t.Append([]string{u64(est.TokenID), est.Remaining.Hours.String(), strconv.FormatUint(uint64(est.MaxAdditionalHours), 10), "yes"})
	}
	for _, est := range plan.Excluded {
		feed := "no"
		if est.Remaining.Error != domain.ErrorKindNone {
			feed = "no (" + string(est.Remaining.Error) + ")"
		}
		t.Append([]string{u64(est.TokenID), est.Remaining.Hours.String(), strconv.FormatUint(uint64(est.MaxAdditionalHours), 10), feed})
	}
	t.Render()

	fmt.Fprintf(p.w, "%d of %d pets can be fed\n", len(plan.Included), len(plan.Included)+len(plan.Excluded))
}
