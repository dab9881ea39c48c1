// Package magetasks provides the build, test, lint and demo tasks used by
// the Magefile. Tasks shell out to the go toolchain and print section
// headers so long runs stay readable.
package magetasks
