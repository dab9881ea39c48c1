package magetasks

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// LDFlags returns the linker flags that stamp version metadata into the binary.
func LDFlags(version, commit, date string) string {
	pkg := ModulePath + "/internal/version"
	return fmt.Sprintf("-s -w -X '%s.Version=%s' -X '%s.CommitHash=%s' -X '%s.BuildDate=%s'",
		pkg, version, pkg, commit, pkg, date)
}

// BuildAll builds the testseq binary.
func BuildAll() error {
	PrintH2Header("Build")

	ldflags := LDFlags(getGitVersion(), getGitCommit(), time.Now().UTC().Format(time.RFC3339))

	fmt.Println("Building testseq...")
	if err := Run("go build", "go", "build", "-ldflags", ldflags, "-o", BinPath, "./cmd/testseq"); err != nil {
		PrintError("Build failed")
		return err
	}

	PrintSuccess(fmt.Sprintf("Built: %s", BinPath))
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	PrintH2Header("Clean")

	if err := os.RemoveAll("./bin"); err != nil {
		return err
	}
	_ = os.Remove("coverage.out")

	PrintSuccess("Cleaned build artifacts")
	return nil
}

func getGitVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty", "--match=v*").Output()
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(string(out))
}

func getGitCommit() string {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}
