package mkp

import (
	"errors"
	"fmt"
)

// ErrMalformedInstance is matched by every error describing invalid instance input.
var ErrMalformedInstance = errors.New("malformed instance")

// MalformedInstanceError reports where an instance input deviates from its format.
// Line is 1-based; 0 means the problem is not tied to a single line.
type MalformedInstanceError struct {
	Line   int
	Reason string
}

func (e *MalformedInstanceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", ErrMalformedInstance, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedInstance, e.Reason)
}

func (e *MalformedInstanceError) Is(target error) bool {
	return target == ErrMalformedInstance
}

func malformed(line int, format string, args ...interface{}) error {
	return &MalformedInstanceError{Line: line, Reason: fmt.Sprintf(format, args...)}
}
