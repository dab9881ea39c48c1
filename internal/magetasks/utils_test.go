package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCommandNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"exec.ErrNotFound", exec.ErrNotFound, true},
		{"wrapped exec.ErrNotFound", fmt.Errorf("golangci-lint: %w", exec.ErrNotFound), true},
		{"executable file not found", errors.New("executable file not found"), true},
		{"no such file or directory", errors.New("no such file or directory"), true},
		{"other error", errors.New("some other error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCommandNotFound(tt.err))
		})
	}
}

func TestRun_ReportsMissingCommand(t *testing.T) {
	err := Run("missing tool", "testseq-no-such-command-xyz")
	assert.True(t, IsCommandNotFound(err), "got %v", err)
	assert.ErrorContains(t, err, "missing tool")
}
