package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dkoosis/testseq/pkg/regress"
	"github.com/dkoosis/testseq/pkg/render"
)

// Value sources, in priority order.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// Defaults.
const (
	DefaultFormat = "auto"
	DefaultTheme  = "default"
	DefaultTop    = 20
)

// CliFlags holds the values of command-line flags. Empty strings mean the
// flag was not given; the *Set fields track explicitly set booleans and ints.
type CliFlags struct {
	ConfigPath string
	Marker     string
	RecordFile string
	NameKey    string
	Sort       string
	Format     string
	Theme      string
	Top        int
	NoColor    bool
	Quiet      bool
	Debug      bool

	TopSet     bool
	NoColorSet bool
	QuietSet   bool
	DebugSet   bool

	// DebugOut receives [DEBUG] lines when debugging is on. Nil means os.Stderr.
	DebugOut io.Writer
}

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	Marker     string
	RecordFile string
	NameKey    string
	Order      regress.Order
	Format     string
	Theme      string
	Top        int
	NoColor    bool
	Quiet      bool
	Debug      bool

	// ConfigFile is the YAML file that was read, if any.
	ConfigFile string
	// Sources maps each setting to the source it came from (for --debug).
	Sources map[string]string
}

// ResolveConfig resolves configuration from all sources with explicit
// priority order: CLI > environment > file > defaults.
func ResolveConfig(cli CliFlags) (*ResolvedConfig, error) {
	debug := cli.DebugSet && cli.Debug || os.Getenv("TESTSEQ_DEBUG") != ""
	var debugOut io.Writer
	if debug {
		debugOut = cli.DebugOut
		if debugOut == nil {
			debugOut = os.Stderr
		}
	}

	file, path, err := LoadConfig(cli.ConfigPath, debugOut)
	if err != nil {
		return nil, err
	}

	r := &ResolvedConfig{Debug: debug, ConfigFile: path, Sources: make(map[string]string)}

	r.Marker = r.resolveString("marker", cli.Marker, "TESTSEQ_MARKER", file.Marker, regress.DefaultMarker)
	r.RecordFile = r.resolveString("record_file", cli.RecordFile, "TESTSEQ_RECORD", file.RecordFile, regress.DefaultRecordName)
	r.NameKey = r.resolveString("name_key", cli.NameKey, "TESTSEQ_KEY", file.NameKey, regress.DefaultNameKey)
	sort := r.resolveString("sort", cli.Sort, "TESTSEQ_SORT", file.Sort, string(regress.OrderName))
	r.Format = r.resolveString("format", cli.Format, "TESTSEQ_FORMAT", file.Format, DefaultFormat)
	r.Theme = r.resolveString("theme", cli.Theme, "TESTSEQ_THEME", file.Theme, DefaultTheme)

	// Resolve Top with priority: CLI > file > default
	r.Top, r.Sources["top"] = DefaultTop, SourceDefault
	if cli.TopSet {
		r.Top, r.Sources["top"] = cli.Top, SourceCLI
	} else if file.Top != nil {
		r.Top, r.Sources["top"] = *file.Top, SourceFile
	}

	r.NoColor = r.resolveBool("no_color", cli.NoColor, cli.NoColorSet, file.NoColor, "TESTSEQ_NO_COLOR", "NO_COLOR")
	r.Quiet = r.resolveBool("quiet", cli.Quiet, cli.QuietSet, file.Quiet, "TESTSEQ_QUIET")

	r.Order, err = regress.ParseOrder(sort)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if err := validateResolvedConfig(r); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return r, nil
}

func (r *ResolvedConfig) resolveString(name, cli, envKey, file, def string) string {
	switch {
	case cli != "":
		r.Sources[name] = SourceCLI
		return cli
	case os.Getenv(envKey) != "":
		r.Sources[name] = SourceEnv
		return os.Getenv(envKey)
	case file != "":
		r.Sources[name] = SourceFile
		return file
	default:
		r.Sources[name] = SourceDefault
		return def
	}
}

func (r *ResolvedConfig) resolveBool(name string, cli, cliSet bool, file *bool, envKeys ...string) bool {
	if cliSet {
		r.Sources[name] = SourceCLI
		return cli
	}
	if env := getEnvBool(envKeys...); env != nil {
		r.Sources[name] = SourceEnv
		return *env
	}
	if file != nil {
		r.Sources[name] = SourceFile
		return *file
	}
	r.Sources[name] = SourceDefault
	return false
}

// Describe returns one "key=value (source)" line per setting, for --debug.
func (r *ResolvedConfig) Describe() string {
	values := []struct {
		key   string
		value any
	}{
		{"marker", r.Marker},
		{"record_file", r.RecordFile},
		{"name_key", r.NameKey},
		{"sort", r.Order},
		{"format", r.Format},
		{"theme", r.Theme},
		{"top", r.Top},
		{"no_color", r.NoColor},
		{"quiet", r.Quiet},
	}
	var sb strings.Builder
	if r.ConfigFile != "" {
		sb.WriteString("config file: " + r.ConfigFile + "\n")
	}
	for _, v := range values {
		fmt.Fprintf(&sb, "%s=%v (%s)\n", v.key, v.value, r.Sources[v.key])
	}
	return sb.String()
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
			// NO_COLOR is set-means-true by convention, whatever the value.
			if key == "NO_COLOR" {
				b := true
				return &b
			}
		}
	}
	return nil
}

// validateResolvedConfig rejects values no source is allowed to produce.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	if cfg.Marker == "" {
		return fmt.Errorf("marker cannot be empty")
	}
	if cfg.RecordFile == "" || strings.ContainsAny(cfg.RecordFile, `/\`) {
		return fmt.Errorf("invalid record file name: %q", cfg.RecordFile)
	}
	if _, err := regress.NewExtractor(cfg.NameKey); err != nil {
		return err
	}

	validFormats := map[string]bool{DefaultFormat: true, render.FormatTerminal: true, render.FormatLLM: true, render.FormatJSON: true}
	if !validFormats[cfg.Format] {
		return fmt.Errorf("unknown format %q (expected auto, terminal, llm, json)", cfg.Format)
	}

	validTheme := false
	for _, name := range render.ThemeNames {
		if cfg.Theme == name {
			validTheme = true
		}
	}
	if !validTheme {
		return fmt.Errorf("unknown theme %q (expected %s)", cfg.Theme, strings.Join(render.ThemeNames, ", "))
	}

	if cfg.Top < 0 {
		return fmt.Errorf("top must not be negative, got: %d", cfg.Top)
	}
	return nil
}
