package utils

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a fatal error
type Kind int

const (
	KindUnknown Kind = iota
	// KindUsage is a wrong command-line argument count
	KindUsage
	// KindOpen is a resource that could not be opened
	KindOpen
	// KindMalformed is unparsable or out-of-range content
	KindMalformed
	// KindWrite is a failure writing or closing an output resource
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindOpen:
		return "open"
	case KindMalformed:
		return "malformed"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

// FatalError is the error returned by every failing load, parse or save.
// Check names the check that failed; Err carries the detail.
type FatalError struct {
	Kind  Kind
	Check string
	Err   error
}

// NewFatalError builds a FatalError without an underlying cause
func NewFatalError(kind Kind, check, format string, args ...any) *FatalError {
	return &FatalError{Kind: kind, Check: check, Err: fmt.Errorf(format, args...)}
}

func (e *FatalError) Error() string {
	if e.Err == nil {
		return e.Check
	}
	return e.Check + ": " + e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first FatalError in err's chain
func KindOf(err error) Kind {
	var fatal *FatalError
	if errors.As(err, &fatal) {
		return fatal.Kind
	}
	return KindUnknown
}
