// Package config handles configuration loading and merging for testseq.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--marker, --record, --key, --sort, --format, --theme, --top, --no-color, --quiet)
//  2. Environment variables (TESTSEQ_*, NO_COLOR)
//  3. YAML config file (--config, .testseq.yaml in the working directory, or
//     ~/.config/testseq/.testseq.yaml)
//  4. Hardcoded defaults
//
// The YAML file is validated against an embedded JSON schema before it is
// decoded, so typos in keys and out-of-range values fail loudly.
//
// # Environment Variables
//
//   - TESTSEQ_MARKER, TESTSEQ_RECORD, TESTSEQ_KEY: override the scan settings
//   - TESTSEQ_SORT, TESTSEQ_FORMAT, TESTSEQ_THEME: override presentation
//   - TESTSEQ_NO_COLOR or NO_COLOR: "true" or "1" disables colors
//   - TESTSEQ_QUIET: "true" or "1" suppresses progress messages
//   - TESTSEQ_DEBUG: any non-empty value prints the resolved configuration
package config
