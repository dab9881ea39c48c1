package pattern

// SummaryKind identifies what a summary describes, for renderer dispatch.
type SummaryKind string

const (
	SummaryKindRegression SummaryKind = "regression"
)

// Metric kinds; they select the mark and color a renderer uses.
const (
	KindOK           = "ok"
	KindSkipped      = "skipped"
	KindUnidentified = "unidentified"
	KindConflict     = "conflict"
	KindEmpty        = "empty"
	KindInfo         = "info"
)

// Summary represents high-level counts.
type Summary struct {
	Label   string        `json:"label"`
	Kind    SummaryKind   `json:"kind"`
	Metrics []SummaryItem `json:"metrics"`
}

// SummaryItem is a single metric in a summary.
type SummaryItem struct {
	Label string `json:"label"` // e.g., "Tests run", "Directories skipped"
	Value string `json:"value"` // formatted value
	Kind  string `json:"kind"`  // one of the Kind* constants
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
