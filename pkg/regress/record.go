package regress

import (
	"os"
	"path/filepath"
)

// DefaultRecordName is the file in each result directory that holds the
// command line used to launch the run.
const DefaultRecordName = "test_cmd"

// ReadRecord returns the contents of the record file in dir.
// Any failure is returned as *ReadError.
func ReadRecord(dir ResultDirectory, recordName string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir.Path, recordName))
	if err != nil {
		return "", &ReadError{Dir: dir.Name, File: recordName, Err: err}
	}
	return string(data), nil
}
