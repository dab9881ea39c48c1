package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/testseq/pkg/pattern"
)

// LLM renders patterns as terse plain text for AI and log consumption.
// Zero ANSI codes, one fact per line.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all patterns as plain text.
func (l *LLM) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			l.renderSummary(&sb, v)
		case *pattern.Leaderboard:
			l.renderLeaderboard(&sb, v)
		}
	}
	return sb.String()
}

func (l *LLM) renderSummary(sb *strings.Builder, s *pattern.Summary) {
	sb.WriteString("SCOPE: " + s.Label + "\n")
	for _, m := range s.Metrics {
		prefix := "  "
		switch m.Kind {
		case pattern.KindSkipped:
			prefix = "  SKIP "
		case pattern.KindUnidentified:
			prefix = "  UNID "
		case pattern.KindConflict:
			prefix = "  WARN "
		case pattern.KindEmpty:
			prefix = "  ERR "
		}
		sb.WriteString(prefix + m.Label + ": " + m.Value + "\n")
	}
}

func (l *LLM) renderLeaderboard(sb *strings.Builder, lb *pattern.Leaderboard) {
	if len(lb.Items) == 0 {
		return
	}
	header := fmt.Sprintf("\n## %s (%d)", lb.Label, lb.TotalCount)
	if lb.TotalCount > len(lb.Items) {
		header += fmt.Sprintf(" top %d", len(lb.Items))
	}
	sb.WriteString(header + "\n")
	for _, item := range lb.Items {
		sb.WriteString(fmt.Sprintf("  %s %s\n", item.Name, item.Metric))
	}
}
