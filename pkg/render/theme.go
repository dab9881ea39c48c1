package render

import "github.com/charmbracelet/lipgloss"

// Theme styles the regression summary: one style per outcome a run can have,
// plus the leaderboard columns.
type Theme struct {
	Name         string
	Heading      lipgloss.Style
	OK           lipgloss.Style
	Skipped      lipgloss.Style
	Unidentified lipgloss.Style
	Conflict     lipgloss.Style
	Empty        lipgloss.Style
	Info         lipgloss.Style
	Rank         lipgloss.Style
	TestName     lipgloss.Style
	Runs         lipgloss.Style
	Marks        Marks
}

// Marks are the single-glyph prefixes shown before summary lines.
type Marks struct {
	OK           string // counts that need no attention
	Skipped      string // result directories whose record could not be read
	Unidentified string // records without a test name
	Conflict     string // records naming more than one test
	Empty        string // nothing was tallied
	Info         string
}

// ThemeNames lists the built-in themes.
var ThemeNames = []string{"default", "wave", "mono"}

// DefaultTheme returns the standard 256-color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:         "default",
		Heading:      lipgloss.NewStyle().Bold(true),
		OK:           fg("34"),  // green
		Skipped:      fg("214"), // orange
		Unidentified: fg("177"), // violet
		Conflict:     fg("220"), // yellow
		Empty:        fg("196"), // red
		Info:         fg("39"),  // blue
		Rank:         fg("242"),
		TestName:     fg("39"),
		Runs:         fg("214"),
		Marks: Marks{
			OK:           "✓",
			Skipped:      "↷",
			Unidentified: "?",
			Conflict:     "≠",
			Empty:        "✗",
			Info:         "●",
		},
	}
}

// WaveTheme mimics a waveform viewer: phosphor green and cyan on a dark
// background, amber for anything that needs a second look.
func WaveTheme() Theme {
	return Theme{
		Name:         "wave",
		Heading:      fg("48").Bold(true),
		OK:           fg("48"),  // signal green
		Skipped:      fg("178"), // amber
		Unidentified: fg("178"),
		Conflict:     fg("208"),
		Empty:        fg("160"),
		Info:         fg("44"), // cyan
		Rank:         fg("240"),
		TestName:     fg("44"),
		Runs:         fg("48"),
		Marks: Marks{
			OK:           "▮",
			Skipped:      "↷",
			Unidentified: "?",
			Conflict:     "≠",
			Empty:        "▯",
			Info:         "·",
		},
	}
}

// MonoTheme has no colors and ASCII marks, for NO_COLOR and dumb terminals.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:         "mono",
		Heading:      plain,
		OK:           plain,
		Skipped:      plain,
		Unidentified: plain,
		Conflict:     plain,
		Empty:        plain,
		Info:         plain,
		Rank:         plain,
		TestName:     plain,
		Runs:         plain,
		Marks: Marks{
			OK:           "+",
			Skipped:      ">",
			Unidentified: "?",
			Conflict:     "~",
			Empty:        "x",
			Info:         "*",
		},
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "wave":
		return WaveTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
