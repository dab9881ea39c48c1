package magetasks

import (
	"fmt"
)

// QualityCheck runs lint, tests and a build.
func QualityCheck() error {
	PrintH1Header("testseq Quality Assurance")

	if err := LintAll(); err != nil {
		PrintWarning("Linting issues found")
	}
	if err := TestAll(); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	if err := BuildAll(); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	PrintSuccess("Quality checks complete")
	return nil
}
