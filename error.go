package postbuild

import (
	"errors"

	xos "github.com/frantjc/x/os"
)

// ErrorKind classifies why a Hook failed.
type ErrorKind int

const (
	UnknownError ErrorKind = iota
	// ParseError means the manifest could not be read or is malformed.
	ParseError
	// StructureError means the manifest's root is not a dictionary.
	StructureError
	// WriteError means the manifest could not be serialized or written back.
	WriteError
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "parse"
	case StructureError:
		return "structure"
	case WriteError:
		return "write"
	}

	return "unknown"
}

// ExitCode is the process exit code for a failure of kind k.
func (k ErrorKind) ExitCode() int {
	if k == UnknownError {
		return 1
	}

	return int(k) + 1
}

// KindError attaches kind to err along with kind's exit code,
// which xos.ExitFromError picks up. It returns nil if err is nil.
func KindError(err error, kind ErrorKind) error {
	if err == nil {
		return nil
	}

	return &kindError{
		err:  &xos.ExitCodeError{Err: err, ExitCode: kind.ExitCode()},
		kind: kind,
	}
}

type kindError struct {
	err  error
	kind ErrorKind
}

func (e *kindError) Error() string {
	if e.err == nil {
		return ""
	}

	return e.kind.String() + ": " + e.err.Error()
}

func (e *kindError) Unwrap() error {
	return e.err
}

// Kind returns the ErrorKind attached to err by KindError,
// or UnknownError if there is none.
func Kind(err error) ErrorKind {
	kerr := &kindError{}
	if errors.As(err, &kerr) {
		return kerr.kind
	}

	return UnknownError
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && Kind(err) == kind
}
