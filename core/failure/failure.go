// Package failure defines the errors returned by the hash functions and their
// factories. Each carries a name and the stack of the call that created it.
package failure

import (
	"errors"
	"fmt"
	"runtime"

	pkgerrors "github.com/pkg/errors"
)

// Named is an error that you can read a name from
type Named interface {
	Name() string
}

// WithStackTrace is an error that you can read a stack trace from
type WithStackTrace interface {
	Stack() string
}

// Failure is an error with a stable name, independent of its message.
type Failure interface {
	error
	Named
}

type NamedWithStackTrace interface {
	Named
	WithStackTrace
}

var (
	_ Failure = RangeError{}
	_ Failure = InvalidArgumentError{}
	_ Failure = CancelledError{}
)

// NameOf returns the name of the first [Failure] in the chain of err, or the
// empty string when there is none.
func NameOf(err error) string {
	var f Failure
	if errors.As(err, &f) {
		return f.Name()
	}
	return ""
}

type origin struct {
	name  string
	stack pkgerrors.StackTrace
}

func (o origin) Name() string  { return o.name }
func (o origin) Stack() string { return fmt.Sprintf("%+v", o.stack) }

// maxFrames bounds the recorded stack.
const maxFrames = 32

// NamedWithCurrentStackTrace records name along with the stack of whoever
// called the constructor that calls it.
func NamedWithCurrentStackTrace(name string) NamedWithStackTrace {
	pcs := make([]uintptr, maxFrames)
	// skip runtime.Callers, this function and the error constructor
	pcs = pcs[:runtime.Callers(3, pcs)]
	stack := make(pkgerrors.StackTrace, len(pcs))
	for i, pc := range pcs {
		stack[i] = pkgerrors.Frame(pc)
	}
	return origin{name, stack}
}

// Sentinels matched by the error types below, for use with errors.Is.
var (
	ErrRange           = errors.New("out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrCancelled       = errors.New("operation cancelled")
)

// RangeError reports an offset or length outside the bounds of a buffer.
type RangeError struct {
	NamedWithStackTrace
	param   string
	message string
}

func NewRangeError(param string, format string, args ...any) error {
	return RangeError{NamedWithCurrentStackTrace("RangeError"), param, fmt.Sprintf(format, args...)}
}

// Param is the name of the offending argument.
func (re RangeError) Param() string {
	return re.param
}

func (re RangeError) Error() string {
	return fmt.Sprintf("%s: %s", re.param, re.message)
}

func (re RangeError) Is(target error) bool {
	return target == ErrRange
}

// InvalidArgumentError reports a missing configuration, an unknown algorithm
// identifier or an unsupported output width.
type InvalidArgumentError struct {
	NamedWithStackTrace
	param string
	cause error
}

func NewInvalidArgumentError(param string, cause error) error {
	return InvalidArgumentError{NamedWithCurrentStackTrace("InvalidArgument"), param, cause}
}

// NewInvalidArgumentErrorf is a convenience for an InvalidArgumentError with a
// formatted cause.
func NewInvalidArgumentErrorf(param string, format string, args ...any) error {
	return InvalidArgumentError{NamedWithCurrentStackTrace("InvalidArgument"), param, fmt.Errorf(format, args...)}
}

func (iae InvalidArgumentError) Param() string {
	return iae.param
}

func (iae InvalidArgumentError) Unwrap() error {
	return iae.cause
}

func (iae InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", iae.param, iae.cause.Error())
}

func (iae InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// CancelledError is returned when a computation observes cancellation of its
// context. It unwraps to the context error.
type CancelledError struct {
	NamedWithStackTrace
	cause error
}

func NewCancelledError(cause error) error {
	return CancelledError{NamedWithCurrentStackTrace("OperationCancelled"), cause}
}

func (ce CancelledError) Unwrap() error {
	return ce.cause
}

func (ce CancelledError) Error() string {
	if ce.cause == nil {
		return ErrCancelled.Error()
	}
	return fmt.Sprintf("%s: %s", ErrCancelled.Error(), ce.cause.Error())
}

func (ce CancelledError) Is(target error) bool {
	return target == ErrCancelled
}

// IsRetriable reports whether an operation that failed with err may succeed
// when attempted again. Hashing is deterministic so only cancellation is.
func IsRetriable(err error) bool {
	return errors.Is(err, ErrCancelled)
}
