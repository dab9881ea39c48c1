package regress

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecord(t *testing.T) {
	root := t.TempDir()
	makeResults(t, root, map[string]string{"sim_1": cmdLine("alu"), "sim_2": noRecord})

	text, err := ReadRecord(ResultDirectory{Name: "sim_1", Path: filepath.Join(root, "sim_1")}, DefaultRecordName)
	require.NoError(t, err)
	assert.Equal(t, cmdLine("alu"), text)

	_, err = ReadRecord(ResultDirectory{Name: "sim_2", Path: filepath.Join(root, "sim_2")}, DefaultRecordName)
	var re *ReadError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "sim_2", re.Dir)
	assert.Equal(t, DefaultRecordName, re.File)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadRecord_Fails_When_RecordIsDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sim_1", DefaultRecordName), 0o755))

	_, err := ReadRecord(ResultDirectory{Name: "sim_1", Path: filepath.Join(root, "sim_1")}, DefaultRecordName)
	var re *ReadError
	assert.ErrorAs(t, err, &re)
}
