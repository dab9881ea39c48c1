package regress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// noRecord marks a result directory created without a record file.
const noRecord = "\x00"

// makeResults creates one directory per key under root. Keys may be nested
// ("a/sim_1"). Each value is written as the record file unless it is noRecord.
func makeResults(t *testing.T, root string, dirs map[string]string) {
	t.Helper()
	for rel, record := range dirs {
		dir := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(dir, 0o755))
		if record == noRecord {
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultRecordName), []byte(record), 0o644))
	}
}

func cmdLine(name string) string {
	return "vsim -c +UVM_VERBOSITY=LOW TEST_NAME=" + name + " +seed=12345\n"
}
