package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/testseq/pkg/pattern"
)

func samplePatterns() []pattern.Pattern {
	return []pattern.Pattern{
		&pattern.Summary{
			Label: "REGRESSION: alu",
			Kind:  pattern.SummaryKindRegression,
			Metrics: []pattern.SummaryItem{
				{Label: "Tests run", Value: "6", Kind: pattern.KindOK},
				{Label: "Directories skipped", Value: "1", Kind: pattern.KindSkipped},
				{Label: "Names not identified", Value: "2", Kind: pattern.KindUnidentified},
			},
		},
		&pattern.Leaderboard{
			Label:      "test sequences",
			MetricName: "Runs",
			TotalCount: 3,
			ShowRank:   true,
			Items: []pattern.LeaderboardItem{
				{Name: "add_basic", Metric: "3 runs", Value: 3, Rank: 1},
				{Name: "mul", Metric: "2 runs", Value: 2, Rank: 2},
			},
		},
	}
}

func TestTerminal_RendersSummaryAndLeaderboard(t *testing.T) {
	out := NewTerminal(MonoTheme(), 80).Render(samplePatterns())

	assert.Contains(t, out, "REGRESSION: alu")
	assert.Contains(t, out, "+ Tests run:")
	assert.Contains(t, out, "> Directories skipped:")
	assert.Contains(t, out, "? Names not identified:")
	assert.Contains(t, out, "Test Sequences (top 2 of 3)")
	assert.Contains(t, out, " 1. add_basic  3 runs")
	assert.Contains(t, out, " 2. mul        2 runs")
}

func TestTerminal_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("x", 120)
	lb := &pattern.Leaderboard{Items: []pattern.LeaderboardItem{{Name: long, Metric: "1 run", Rank: 1}}, TotalCount: 1}

	out := NewTerminal(MonoTheme(), 80).Render([]pattern.Pattern{lb})
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "...")
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 80)
	}
}

func TestTerminal_DefaultWidth(t *testing.T) {
	term := NewTerminal(DefaultTheme(), 0)
	assert.Equal(t, 80, term.width)
}

func TestLLM_PlainText(t *testing.T) {
	out := NewLLM().Render(samplePatterns())

	assert.True(t, strings.HasPrefix(out, "SCOPE: REGRESSION: alu\n"))
	assert.Contains(t, out, "  Tests run: 6\n")
	assert.Contains(t, out, "  SKIP Directories skipped: 1\n")
	assert.Contains(t, out, "  UNID Names not identified: 2\n")
	assert.Contains(t, out, "## test sequences (3) top 2\n")
	assert.Contains(t, out, "  add_basic 3 runs\n")
	assert.NotContains(t, out, "\033[")
}

func TestJSON_Structure(t *testing.T) {
	out := NewJSON().Render(samplePatterns())

	var decoded struct {
		Version  string `json:"version"`
		Patterns []struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		} `json:"patterns"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "1.0", decoded.Version)
	assert.Contains(t, out, `"tool": "testseq"`)
	require.Len(t, decoded.Patterns, 2)
	assert.Equal(t, "summary", decoded.Patterns[0].Type)
	assert.Equal(t, "leaderboard", decoded.Patterns[1].Type)

	var lb pattern.Leaderboard
	require.NoError(t, json.Unmarshal(decoded.Patterns[1].Data, &lb))
	assert.Equal(t, "add_basic", lb.Items[0].Name)
}

func TestByName(t *testing.T) {
	assert.IsType(t, &JSON{}, ByName(FormatJSON, MonoTheme(), 80))
	assert.IsType(t, &LLM{}, ByName(FormatLLM, MonoTheme(), 80))
	assert.IsType(t, &Terminal{}, ByName(FormatTerminal, MonoTheme(), 80))
	assert.IsType(t, &Terminal{}, ByName("other", MonoTheme(), 80))
}

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames {
		assert.Equal(t, name, ThemeByName(name).Name)
	}
	assert.Equal(t, "default", ThemeByName("nope").Name)
}

func TestTerminal_MarksEachOutcome(t *testing.T) {
	s := &pattern.Summary{Metrics: []pattern.SummaryItem{
		{Label: "Tests run", Value: "0", Kind: pattern.KindEmpty},
		{Label: "Conflicting records", Value: "1", Kind: pattern.KindConflict},
		{Label: "Report", Value: "out.txt", Kind: pattern.KindInfo},
	}}

	tests := []struct {
		theme Theme
		want  []string
	}{
		{MonoTheme(), []string{"x Tests run:", "~ Conflicting records:", "* Report:"}},
		{DefaultTheme(), []string{"✗ Tests run:", "≠ Conflicting records:", "● Report:"}},
		{WaveTheme(), []string{"▯ Tests run:", "≠ Conflicting records:", "· Report:"}},
	}
	for _, tt := range tests {
		t.Run(tt.theme.Name, func(t *testing.T) {
			out := NewTerminal(tt.theme, 80).Render([]pattern.Pattern{s})
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}
