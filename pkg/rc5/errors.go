package rc5

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates the caller supplied a key or round count
	// that cannot produce a Cipher.
	ErrInvalidParameter = errors.New("rc5: invalid parameter")

	// ErrSelfTest indicates a known-answer vector did not reproduce.
	ErrSelfTest = errors.New("rc5: self-test failed")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rc5.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a new Error
func errorf(op string, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}

func invalidParameter(op, reason string) error {
	return errorf(op, "%w: %s", ErrInvalidParameter, reason)
}
