package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a fused routine disagreed with its reference form.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Domain errors raised by the arithmetic engine. Overflow in addition,
// subtraction, multiplication and shifting is defined modulo 2^N and is never
// reported through these.
var (
	// ErrDivisionByZero is returned by every dividing operation when the
	// divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNoInverse is returned when a value has no multiplicative inverse
	// modulo 2^N, which is the case for every even value.
	ErrNoInverse = errors.New("no modular inverse exists")
	// ErrMalformedHex is wrapped by ParseError.
	ErrMalformedHex = errors.New("malformed hexadecimal input")
	// ErrBadExpression is returned for expressions with an unknown operator
	// or the wrong number of operands.
	ErrBadExpression = errors.New("bad expression")
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// NoInverseError reports a value without a modular inverse. Value is the hex
// rendering of the offending operand.
type NoInverseError struct {
	Value string
	// Bits is the width N of the ring Z/2^N.
	Bits uint
}

func (e NoInverseError) Error() string {
	return fmt.Sprintf("%s has no inverse modulo 2^%d", e.Value, e.Bits)
}

// Unwrap returns ErrNoInverse so callers can match with errors.Is.
func (e NoInverseError) Unwrap() error { return ErrNoInverse }

// ParseError describes hexadecimal input that could not be decoded.
type ParseError struct {
	// Input is the full string handed to the parser.
	Input string
	// Group is the zero-based whitespace group that failed, or -1 when the
	// input as a whole is at fault.
	Group int
	// Reason explains what was wrong with the group.
	Reason string
}

// Error returns a formatted message naming the failing group.
func (e ParseError) Error() string {
	if e.Group < 0 {
		return fmt.Sprintf("parse %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("parse %q: group %d: %s", e.Input, e.Group, e.Reason)
}

// Unwrap returns ErrMalformedHex.
func (e ParseError) Unwrap() error { return ErrMalformedHex }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports a fused routine whose output differed from its
// reference form on the same operands.
type MismatchError struct {
	// Check is the name of the check that failed.
	Check string
	// Operands lists the hex renderings of the inputs of the failing trial.
	Operands []string
	// Got and Want are the hex renderings of the two results.
	Got, Want string
}

// Error returns a formatted message describing the mismatch.
func (e MismatchError) Error() string {
	return fmt.Sprintf("%s: got %s, want %s (operands %v)", e.Check, e.Got, e.Want, e.Operands)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ColorProvider supplies the terminal escape sequences used when rendering
// errors. Implementations return empty strings when color is disabled.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleError prints err to out and maps it to an exit code. A nil error
// yields ExitSuccess and prints nothing. colors may be nil.
func HandleError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	red, yellow, reset := "", "", ""
	if colors != nil {
		red, yellow, reset = colors.Red(), colors.Yellow(), colors.Reset()
	}

	var (
		cfgErr      ConfigError
		validErr    ValidationError
		mismatchErr MismatchError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sOperation timed out after %s.%s\n", yellow, duration, reset)
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sOperation canceled after %s.%s\n", yellow, duration, reset)
		return ExitErrorCanceled
	case errors.As(err, &cfgErr), errors.As(err, &validErr):
		fmt.Fprintf(out, "%sConfiguration error: %v%s\n", red, err, reset)
		return ExitErrorConfig
	case errors.As(err, &mismatchErr):
		fmt.Fprintf(out, "%sResult mismatch: %v%s\n", red, err, reset)
		return ExitErrorMismatch
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", red, err, reset)
		return ExitErrorGeneric
	}
}
