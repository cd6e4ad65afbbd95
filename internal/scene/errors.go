package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed matches any MalformedDocumentError via errors.Is.
	ErrMalformed = errors.New("scene: malformed document")

	// ErrIO matches any IOError via errors.Is.
	ErrIO = errors.New("scene: storage failure")
)

// MalformedDocumentError reports a document that is missing required keys
// or cannot be turned into a grid.
type MalformedDocumentError struct {
	Path   string // file the document came from, if any
	Reason string
	Err    error
}

func (e *MalformedDocumentError) Error() string {
	msg := "scene: malformed document"
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrMalformed) match.
func (e *MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformed
}

// IOError wraps a failure at the file storage boundary.
type IOError struct {
	Op   string // "open", "read", "write", ...
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("scene: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrIO) match.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// withPath attaches a file path to a malformed-document error.
func withPath(err error, path string) error {
	var mde *MalformedDocumentError
	if errors.As(err, &mde) && mde.Path == "" {
		mde.Path = path
	}
	return err
}
