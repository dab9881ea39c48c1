// Package render provides output renderers for testseq's console summary.
package render

import "github.com/dkoosis/testseq/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}

// Format names accepted by ByName.
const (
	FormatTerminal = "terminal"
	FormatLLM      = "llm"
	FormatJSON     = "json"
)

// ByName returns the renderer for a resolved format name.
// Unknown names fall back to the terminal renderer.
func ByName(format string, theme Theme, width int) Renderer {
	switch format {
	case FormatJSON:
		return NewJSON()
	case FormatLLM:
		return NewLLM()
	default:
		return NewTerminal(theme, width)
	}
}
