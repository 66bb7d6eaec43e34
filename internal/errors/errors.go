package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Process exit codes.
const (
	ExitSuccess = 0
	ExitUser    = 1 // bad input, config or profile
	ExitSystem  = 2 // host query or I/O failure
)

// Sentinel errors for common failure conditions.
var (
	// ErrUnsupported indicates the current host or device variant cannot
	// supply the requested value.
	ErrUnsupported = crdb.New("unsupported operation")

	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = crdb.New("resource not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")

	// ErrInvalidProfile indicates a host profile file is malformed.
	ErrInvalidProfile = crdb.New("invalid host profile")
)

// New, Newf, Wrap, Wrapf, Is and As are re-exported from cockroachdb/errors.
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Is    = crdb.Is
	As    = crdb.As
)

// OpError records the device operation that failed and why.
type OpError struct {
	// Op is a dotted operation name such as "battery.level" or "device.id".
	Op string

	// Err is the underlying cause.
	Err error
}

// Op wraps err in an OpError for the named operation.
// It returns nil if err is nil.
func Op(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}

// Unsupported returns an OpError for op that matches ErrUnsupported.
func Unsupported(op string) error {
	return &OpError{Op: op, Err: ErrUnsupported}
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return e.Op + ": failed"
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// ExitError carries the process exit code for a failed command, with an
// optional hint printed after the message.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

// NewExitError attaches code to err.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError marks err as caused by user input.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError marks err as a host or I/O failure.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError marks err as a bad config file or host profile.
func NewConfigError(err error) *ExitError {
	return NewUserError(err, "Check the file passed to --config or --profile")
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps err to a process exit status: ExitSuccess for nil, the
// carried code for an ExitError anywhere in the chain, else ExitSystem.
func ExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitSuccess
	case As(err, &exitErr):
		return exitErr.Code
	default:
		return ExitSystem
	}
}
