package magetasks

import (
	"errors"
	"fmt"
)

// golangciDisabled are linters that fight the codebase's style.
const golangciDisabled = "--disable=exhaustruct,varnamelen,ireturn,wrapcheck,nlreturn,gochecknoglobals,mnd,depguard,tagalign"

// LintAll runs all linters. Optional linters that are not installed are
// reported and skipped.
func LintAll() error {
	var errs []error
	for _, lint := range []func() error{LintFormat, LintVet, LintGolangci} {
		if err := lint(); err != nil && !IsCommandNotFound(err) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	PrintSuccess("All linters passed")
	return nil
}

// LintFormat checks code formatting.
func LintFormat() error {
	return Run("Go Format", "gofmt", "-l", "-d", ".")
}

// LintVet runs go vet.
func LintVet() error {
	return Run("Go Vet", "go", "vet", "./...")
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	if err := Run("Golangci-lint", "golangci-lint", "run", golangciDisabled, "--timeout=5m", "./..."); err != nil {
		if IsCommandNotFound(err) {
			PrintWarning("Golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
			return err
		}
		return fmt.Errorf("golangci-lint failed: %w", err)
	}
	return nil
}
