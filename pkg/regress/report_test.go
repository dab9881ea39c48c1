package regress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		root      string
		want      string
		wantFound bool
	}{
		{"/home/dylan/projects/designs/widgetA/results", "widgetA", true},
		{"/proj/designs/mul.v2-rc1/results/", "mul.v2-rc1", true},
		{"/proj/designs/alu/results/nightly", "alu", true},
		{"/a/designs/first/results/b/designs/second/results", "first", true},
		{"/home/dylan/projects/multiplier/results", UnknownDesign, false},
		{"/proj/designs/alu/logs", UnknownDesign, false},
		{"designs/alu/results", UnknownDesign, false},
		{"", UnknownDesign, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.root, func(t *testing.T) {
			t.Parallel()
			got, found := DesignName(tt.root)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestOutputFileName(t *testing.T) {
	assert.Equal(t, "widgetA_test_sequence_list.txt", OutputFileName("widgetA", true))
	assert.Equal(t, "test_sequence_list.txt", OutputFileName(UnknownDesign, false))
}

func TestReport_Format(t *testing.T) {
	r := Report{
		DesignName:  "alu",
		DesignFound: true,
		Marker:      "sim_",
		Counters:    Counters{Found: 5, Unique: 2, Skipped: 1, NotFound: 3},
		Entries:     []Entry{{"add_basic", 3}, {"mul_corner", 2}},
	}

	want := `=================================================================================

            Total number of tests run: 5
            Total number of unique tests run: 2
            Total number of sim_<seed_number> directories skipped: 1
            Total number of test sequence names that could not be identified: 3

=================================================================================

add_basic, total number of runs in the regression: 3
mul_corner, total number of runs in the regression: 2
`
	assert.Equal(t, want, r.Format())
}

func TestReport_Format_UsesMarkerInHeader(t *testing.T) {
	r := Report{Marker: "run_"}
	assert.Contains(t, r.Format(), "Total number of run_<seed_number> directories skipped: 0")
}

func TestWriteReport_OverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "widgetA_test_sequence_list.txt")
	require.NoError(t, os.WriteFile(existing, []byte("stale contents that are much longer than the new report\n"), 0o644))

	r := Report{DesignName: "widgetA", DesignFound: true, Entries: []Entry{{"t", 1}}}
	path, err := WriteReport(dir, r)
	require.NoError(t, err)
	assert.Equal(t, existing, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, r.Format(), string(data))
}

func TestWriteReport_Fails_When_DirMissing(t *testing.T) {
	_, err := WriteReport(filepath.Join(t.TempDir(), "absent"), Report{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
