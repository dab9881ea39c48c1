package regress

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Options configures a pipeline run. Zero values fall back to the defaults.
type Options struct {
	Root       string
	Marker     string
	RecordName string
	NameKey    string
	Order      Order
	DryRun     bool      // build the report without writing it
	Log        io.Writer // progress messages; nil discards them
}

// Conflict records a record whose name tokens disagree. The first name is
// the one counted.
type Conflict struct {
	Dir   string   `json:"dir"`
	Names []string `json:"names"`
}

// Result is the outcome of a completed run.
type Result struct {
	Root        string
	Directories []ResultDirectory
	Tally       *Tally
	Report      Report
	OutputPath  string // empty on dry runs
	Conflicts   []Conflict
}

func (o *Options) withDefaults() {
	if o.Marker == "" {
		o.Marker = DefaultMarker
	}
	if o.RecordName == "" {
		o.RecordName = DefaultRecordName
	}
	if o.NameKey == "" {
		o.NameKey = DefaultNameKey
	}
	if o.Order == "" {
		o.Order = OrderName
	}
	if o.Log == nil {
		o.Log = io.Discard
	}
}

// Run collects result directories under opts.Root, extracts a test name from
// each, and writes the report into opts.Root.
//
// It returns *NotFoundError without writing anything when no result
// directory exists. Directories whose record cannot be read or holds no name
// are counted in the report header and otherwise ignored.
func Run(opts Options) (*Result, error) {
	opts.withDefaults()
	if opts.Root == "" {
		return nil, errors.New("no results path given")
	}

	extractor, err := NewExtractor(opts.NameKey)
	if err != nil {
		return nil, err
	}

	logf(opts.Log, "scanning %s", opts.Root)
	dirs, err := Collect(opts.Root, opts.Marker)
	if err != nil {
		return nil, err
	}
	logf(opts.Log, "%d %s<seed_number> directories found", len(dirs), opts.Marker)

	res := &Result{Root: opts.Root, Directories: dirs, Tally: &Tally{}}
	var counters Counters
	for _, dir := range dirs {
		text, err := ReadRecord(dir, opts.RecordName)
		if err != nil {
			logf(opts.Log, "error: %v - skipping this directory", err)
			counters.Skipped++
			continue
		}

		name, err := extractor.Extract(text)
		if err != nil {
			logf(opts.Log, "error: no test sequence name could be identified in %s - skipping this directory", dir.Name)
			counters.NotFound++
			continue
		}
		if all := extractor.ExtractAll(text); !allEqual(all) {
			logf(opts.Log, "warning: %s holds differing %s values (%s), counting %s",
				dir.Name, extractor.Key(), strings.Join(all, ", "), name)
			res.Conflicts = append(res.Conflicts, Conflict{Dir: dir.Name, Names: all})
		}
		res.Tally.Add(name)
	}

	entries := res.Tally.Entries(opts.Order)
	counters.Found = res.Tally.Total()
	counters.Unique = len(entries)
	logf(opts.Log, "%d test sequences were found in total, number of unique tests: %d", counters.Found, counters.Unique)

	design, found := DesignName(opts.Root)
	if !found {
		logf(opts.Log, "error: no design name could be identified in the following path: %s", opts.Root)
	}
	res.Report = Report{
		DesignName:  design,
		DesignFound: found,
		Marker:      opts.Marker,
		Counters:    counters,
		Entries:     entries,
	}

	if opts.DryRun {
		return res, nil
	}
	path, err := WriteReport(opts.Root, res.Report)
	if err != nil {
		return res, err
	}
	res.OutputPath = path
	logf(opts.Log, "the list of test sequences can be found in %s", path)
	return res, nil
}

func allEqual(names []string) bool {
	if len(names) < 2 {
		return true
	}
	for _, n := range names[1:] {
		if n != names[0] {
			return false
		}
	}
	return true
}

func logf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "testseq: "+format+"\n", args...)
}
