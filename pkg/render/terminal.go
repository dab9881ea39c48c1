package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/testseq/pkg/pattern"
)

// maxNameWidth caps the test name column; longer names are truncated.
const maxNameWidth = 50

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme  Theme
	width  int
	titler cases.Caser
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width, titler: cases.Title(language.English)}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		s := t.renderOne(p)
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderOne(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.Summary:
		return t.renderSummary(v)
	case *pattern.Leaderboard:
		return t.renderLeaderboard(v)
	default:
		return ""
	}
}

func (t *Terminal) renderSummary(s *pattern.Summary) string {
	var sb strings.Builder
	if s.Label != "" {
		sb.WriteString(t.theme.Heading.Render(s.Label))
		sb.WriteString("\n")
	}

	labelWidth := 0
	for _, m := range s.Metrics {
		labelWidth = max(labelWidth, runewidth.StringWidth(m.Label))
	}
	for _, m := range s.Metrics {
		sb.WriteString("  ")
		icon, style := t.iconStyle(m.Kind)
		sb.WriteString(style.Render(icon + " " + padRight(m.Label+":", labelWidth+1) + " " + m.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderLeaderboard(l *pattern.Leaderboard) string {
	if len(l.Items) == 0 {
		return ""
	}
	var sb strings.Builder
	if l.Label != "" {
		header := t.titler.String(l.Label)
		if l.TotalCount > len(l.Items) {
			header += fmt.Sprintf(" (top %d of %d)", len(l.Items), l.TotalCount)
		}
		sb.WriteString(t.theme.Heading.Render(header))
		sb.WriteString("\n")
	}

	maxName, maxMetric := 0, 0
	for _, item := range l.Items {
		maxName = max(maxName, runewidth.StringWidth(item.Name))
		maxMetric = max(maxMetric, runewidth.StringWidth(item.Metric))
	}
	// Keep the metric column on screen when the terminal is narrow.
	rankWidth := 0
	if l.ShowRank {
		rankWidth = len(fmt.Sprintf("%2d. ", len(l.Items)))
	}
	if avail := t.width - 2 - rankWidth - 2 - maxMetric; avail < maxName {
		maxName = max(avail, 10)
	}
	maxName = min(maxName, maxNameWidth)

	for _, item := range l.Items {
		sb.WriteString("  ")
		if l.ShowRank {
			sb.WriteString(t.theme.Rank.Render(fmt.Sprintf("%2d. ", item.Rank)))
		}
		name := runewidth.Truncate(item.Name, maxName, "...")
		sb.WriteString(t.theme.TestName.Render(padRight(name, maxName)))
		sb.WriteString("  ")
		sb.WriteString(t.theme.Runs.Render(padLeft(item.Metric, maxMetric)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) iconStyle(kind string) (string, lipgloss.Style) {
	m := t.theme.Marks
	switch kind {
	case pattern.KindOK:
		return m.OK, t.theme.OK
	case pattern.KindSkipped:
		return m.Skipped, t.theme.Skipped
	case pattern.KindUnidentified:
		return m.Unidentified, t.theme.Unidentified
	case pattern.KindConflict:
		return m.Conflict, t.theme.Conflict
	case pattern.KindEmpty:
		return m.Empty, t.theme.Empty
	default:
		return m.Info, t.theme.Info
	}
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func padLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}
