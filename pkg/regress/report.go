package regress

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// OutputFileSuffix is the report file name, prefixed with "<design>_"
	// when the design name is known.
	OutputFileSuffix = "test_sequence_list.txt"

	// UnknownDesign is the label used when no design name is in the path.
	UnknownDesign = "Could not be identified"

	rule = "================================================================================="
)

var designNameRe = regexp.MustCompile(`/designs/([a-zA-Z_0-9.\-]+)/results`)

// Counters are the four numbers in the report header.
type Counters struct {
	Found    int `json:"found"`     // names extracted
	Unique   int `json:"unique"`    // distinct names
	Skipped  int `json:"skipped"`   // record file unreadable
	NotFound int `json:"not_found"` // record readable, no name token
}

// Report is everything written to the output file.
type Report struct {
	DesignName  string
	DesignFound bool
	Marker      string
	Counters    Counters
	Entries     []Entry
}

// DesignName extracts <name> from a /designs/<name>/results segment of root.
// When there is none it returns UnknownDesign and false.
func DesignName(root string) (string, bool) {
	m := designNameRe.FindStringSubmatch(filepath.ToSlash(root))
	if m == nil {
		return UnknownDesign, false
	}
	return m[1], true
}

// OutputFileName returns the report file name for a design.
func OutputFileName(design string, found bool) string {
	if !found {
		return OutputFileSuffix
	}
	return design + "_" + OutputFileSuffix
}

// FileName is the name the report is written under.
func (r Report) FileName() string {
	return OutputFileName(r.DesignName, r.DesignFound)
}

// Format renders the header block and one line per entry.
func (r Report) Format() string {
	marker := r.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	var sb strings.Builder
	sb.WriteString(rule + "\n\n")
	fmt.Fprintf(&sb, "            Total number of tests run: %d\n", r.Counters.Found)
	fmt.Fprintf(&sb, "            Total number of unique tests run: %d\n", r.Counters.Unique)
	fmt.Fprintf(&sb, "            Total number of %s<seed_number> directories skipped: %d\n", marker, r.Counters.Skipped)
	fmt.Fprintf(&sb, "            Total number of test sequence names that could not be identified: %d\n", r.Counters.NotFound)
	sb.WriteString("\n" + rule + "\n\n")
	for _, e := range r.Entries {
		fmt.Fprintf(&sb, "%s, total number of runs in the regression: %d\n", e.Name, e.Count)
	}
	return sb.String()
}

// WriteReport writes r into dir, replacing any existing file of the same
// name, and returns the path written.
func WriteReport(dir string, r Report) (string, error) {
	path := filepath.Join(dir, r.FileName())
	if err := os.WriteFile(path, []byte(r.Format()), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
