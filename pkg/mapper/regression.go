// Package mapper converts pipeline results into visualization patterns.
package mapper

import (
	"fmt"
	"strconv"

	"github.com/dkoosis/testseq/pkg/pattern"
	"github.com/dkoosis/testseq/pkg/regress"
)

// FromResult converts a regression result into a summary and a leaderboard
// of test sequences by run count. top limits the leaderboard; 0 means all.
func FromResult(res *regress.Result, top int) []pattern.Pattern {
	r := res.Report
	c := r.Counters

	label := "REGRESSION: " + r.DesignName
	if !r.DesignFound {
		label = "REGRESSION: " + res.Root
	}

	metrics := []pattern.SummaryItem{
		{Label: "Directories", Value: strconv.Itoa(len(res.Directories)), Kind: pattern.KindInfo},
		{Label: "Tests run", Value: strconv.Itoa(c.Found), Kind: okUnless(c.Found == 0, pattern.KindEmpty)},
		{Label: "Unique tests", Value: strconv.Itoa(c.Unique), Kind: pattern.KindInfo},
		{Label: "Directories skipped", Value: strconv.Itoa(c.Skipped), Kind: okUnless(c.Skipped > 0, pattern.KindSkipped)},
		{Label: "Names not identified", Value: strconv.Itoa(c.NotFound), Kind: okUnless(c.NotFound > 0, pattern.KindUnidentified)},
	}
	if len(res.Conflicts) > 0 {
		metrics = append(metrics, pattern.SummaryItem{
			Label: "Conflicting records",
			Value: strconv.Itoa(len(res.Conflicts)),
			Kind:  pattern.KindConflict,
		})
	}
	output := res.OutputPath
	if output == "" {
		output = "not written (dry run)"
	}
	metrics = append(metrics, pattern.SummaryItem{Label: "Report", Value: output, Kind: pattern.KindInfo})

	patterns := []pattern.Pattern{&pattern.Summary{
		Label:   label,
		Kind:    pattern.SummaryKindRegression,
		Metrics: metrics,
	}}

	if lb := leaderboard(res.Tally, top); lb != nil {
		patterns = append(patterns, lb)
	}
	return patterns
}

func leaderboard(t *regress.Tally, top int) *pattern.Leaderboard {
	if t == nil || t.Total() == 0 {
		return nil
	}
	entries := t.Entries(regress.OrderCount)
	total := len(entries)
	if top > 0 && top < total {
		entries = entries[:top]
	}

	items := make([]pattern.LeaderboardItem, 0, len(entries))
	for i, e := range entries {
		items = append(items, pattern.LeaderboardItem{
			Name:   e.Name,
			Metric: runs(e.Count),
			Value:  float64(e.Count),
			Rank:   i + 1,
		})
	}
	return &pattern.Leaderboard{
		Label:      "Test sequences",
		MetricName: "Runs",
		Items:      items,
		TotalCount: total,
		ShowRank:   true,
	}
}

func runs(n int) string {
	if n == 1 {
		return "1 run"
	}
	return fmt.Sprintf("%d runs", n)
}

func okUnless(bad bool, kind string) string {
	if bad {
		return kind
	}
	return pattern.KindOK
}
