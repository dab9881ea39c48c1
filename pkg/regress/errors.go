package regress

import (
	"errors"
	"fmt"
)

// ErrNameNotFound is returned by Extract when the record holds no name token.
var ErrNameNotFound = errors.New("no test sequence name found")

// NotFoundError reports that no directory under Root matched Marker.
type NotFoundError struct {
	Root   string
	Marker string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s directories found under %s", e.Marker, e.Root)
}

// ReadError reports that the record file of a result directory could not be read.
type ReadError struct {
	Dir  string
	File string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s in %s: %v", e.File, e.Dir, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
