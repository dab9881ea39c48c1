// testseq lists the test sequences run by a regression.
//
// Usage:
//
//	testseq --path /home/dylan/projects/designs/multiplier/results
//
// Every directory under --path whose name contains the marker (sim_ by
// default) is one run of the regression. Its test_cmd file holds the command
// line that launched the run, and TEST_NAME=<name> in that command line names
// the test sequence. testseq counts how often each sequence ran and writes
//
//	<design>_test_sequence_list.txt
//
// into --path, where <design> comes from a .../designs/<design>/results path.
// A summary is printed to stdout.
//
// Output modes for the summary (auto-detected):
//
//	terminal  — styled Unicode output (default when TTY)
//	llm       — terse plain text (default when piped)
//	json      — structured JSON for automation
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/dkoosis/testseq/internal/config"
	"github.com/dkoosis/testseq/internal/pager"
	"github.com/dkoosis/testseq/internal/version"
	"github.com/dkoosis/testseq/pkg/mapper"
	"github.com/dkoosis/testseq/pkg/regress"
	"github.com/dkoosis/testseq/pkg/render"
)

const usageHeader = `testseq extracts the names of all the test sequences run as part of a
regression and counts how many times each one ran.

The results of each run are expected in a directory whose name contains the
marker (sim_<seed_number> by default), somewhere below the path given with
--path. The report is written into that path as
<design_name>_test_sequence_list.txt when the path ends in
.../designs/<design_name>/results, and as test_sequence_list.txt otherwise.

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "testseq: no input arguments were specified")
		fmt.Fprintln(stderr, "testseq: please provide the absolute path to the directory holding the result directories (--path)")
		return 2
	}

	fs := flag.NewFlagSet("testseq", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageHeader)
		fs.PrintDefaults()
	}

	pathFlag := fs.String("path", "", "Absolute path to the directory holding the result directories (required)")
	configFlag := fs.String("config", "", "Config file (default: ./"+config.FileName+" or the user config dir)")
	markerFlag := fs.String("marker", "", "Substring identifying result directories (default \""+regress.DefaultMarker+"\")")
	recordFlag := fs.String("record", "", "Command record file in each result directory (default \""+regress.DefaultRecordName+"\")")
	keyFlag := fs.String("key", "", "Key naming the test sequence, matched as KEY=<name> (default \""+regress.DefaultNameKey+"\")")
	sortFlag := fs.String("sort", "", "Report line order: name, count, first-seen (default \"name\")")
	formatFlag := fs.String("format", "", "Summary format: auto, terminal, llm, json (default \"auto\")")
	themeFlag := fs.String("theme", "", "Theme: default, wave, mono")
	topFlag := fs.Int("top", config.DefaultTop, "Test sequences shown in the summary; 0 shows all")
	noColorFlag := fs.Bool("no-color", false, "Disable colors")
	quietFlag := fs.Bool("quiet", false, "Suppress progress messages")
	debugFlag := fs.Bool("debug", false, "Print the resolved configuration")
	dryRunFlag := fs.Bool("dry-run", false, "Build the report without writing it")
	viewFlag := fs.Bool("view", false, "Page the report on the terminal after writing it")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *versionFlag {
		fmt.Fprintln(stdout, version.String())
		return 0
	}
	if *pathFlag == "" {
		fmt.Fprintln(stderr, "testseq: --path is required")
		return 2
	}
	root, err := filepath.Abs(*pathFlag)
	if err != nil {
		fmt.Fprintf(stderr, "testseq: resolving %s: %v\n", *pathFlag, err)
		return 2
	}

	cli := config.CliFlags{
		ConfigPath: *configFlag,
		Marker:     *markerFlag,
		RecordFile: *recordFlag,
		NameKey:    *keyFlag,
		Sort:       *sortFlag,
		Format:     *formatFlag,
		Theme:      *themeFlag,
		Top:        *topFlag,
		NoColor:    *noColorFlag,
		Quiet:      *quietFlag,
		Debug:      *debugFlag,
		DebugOut:   stderr,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "top":
			cli.TopSet = true
		case "no-color":
			cli.NoColorSet = true
		case "quiet":
			cli.QuietSet = true
		case "debug":
			cli.DebugSet = true
		}
	})

	cfg, err := config.ResolveConfig(cli)
	if err != nil {
		fmt.Fprintf(stderr, "testseq: %v\n", err)
		return 2
	}
	if cfg.Debug {
		fmt.Fprint(stderr, cfg.Describe())
	}

	var log io.Writer = stderr
	if cfg.Quiet {
		log = io.Discard
	}

	res, err := regress.Run(regress.Options{
		Root:       root,
		Marker:     cfg.Marker,
		RecordName: cfg.RecordFile,
		NameKey:    cfg.NameKey,
		Order:      cfg.Order,
		DryRun:     *dryRunFlag,
		Log:        log,
	})
	if err != nil {
		var nf *regress.NotFoundError
		if errors.As(err, &nf) {
			fmt.Fprintf(stderr, "testseq: error: no %s<seed_number> directories were found under %s\n", nf.Marker, nf.Root)
			return 1
		}
		fmt.Fprintf(stderr, "testseq: %v\n", err)
		return 1
	}

	mode := resolveFormat(cfg.Format, stdout)
	theme := render.ThemeByName(cfg.Theme)
	if cfg.NoColor {
		theme = render.MonoTheme()
	}
	output := render.ByName(mode, theme, termWidth(stdout)).Render(mapper.FromResult(res, cfg.Top))

	if *viewFlag && isTTYWriter(stdout) {
		if err := pager.Run(res.Report.FileName(), output+"\n"+res.Report.Format(), stdin, stdout); err != nil {
			fmt.Fprintf(stderr, "testseq: pager: %v\n", err)
			return 1
		}
		return 0
	}
	fmt.Fprint(stdout, output)
	return 0
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}

func resolveFormat(format string, w io.Writer) string {
	if format != config.DefaultFormat {
		return format
	}
	// Auto-detect: TTY = terminal, piped = llm
	if isTTYWriter(w) {
		return render.FormatTerminal
	}
	return render.FormatLLM
}
