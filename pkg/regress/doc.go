// Package regress extracts test sequence names from regression result
// directories and summarizes how often each test ran.
//
// A regression leaves one result directory per seed (sim_1, sim_42, ...).
// Each holds a record file with the command line that launched the run, and
// that command line carries a TEST_NAME=<name> token. The pipeline is:
//
//	Collect → ReadRecord → Extractor.Extract → Tally → WriteReport
//
// Per-directory failures (unreadable record, no name token) are counted and
// skipped; only an empty collection stops the run.
package regress
