// pkg/helper_err/classification.go
//
// Error classification for the helper packages.
// Two kinds exist: invalid arguments supplied by the caller and
// failures reported by the operating system while probing the filesystem.

package helper_err

import (
	"fmt"
	"strings"

	cerr "github.com/cockroachdb/errors"
)

// ErrorCategory classifies errors for appropriate handling
type ErrorCategory int

const (
	// CategoryInvalidArgument - missing or mistyped input
	CategoryInvalidArgument ErrorCategory = iota
	// CategoryIOFailure - OS/filesystem issues
	CategoryIOFailure
)

// String returns the kind name used in logs.
func (c ErrorCategory) String() string {
	switch c {
	case CategoryInvalidArgument:
		return "InvalidArgument"
	case CategoryIOFailure:
		return "IOFailure"
	default:
		return fmt.Sprintf("ErrorCategory(%d)", int(c))
	}
}

// ClassifiedError wraps an error with category and remediation info
type ClassifiedError struct {
	Category    ErrorCategory
	Message     string
	Cause       error
	Remediation []string
}

// Error implements the error interface
func (e *ClassifiedError) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Message)

	if e.Cause != nil && e.Cause.Error() != e.Message {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}

	if len(e.Remediation) > 0 {
		sb.WriteString("\n\nHow to fix:")
		for i, step := range e.Remediation {
			sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, step))
		}
	}

	return sb.String()
}

// Unwrap returns the underlying error
func (e *ClassifiedError) Unwrap() error {
	return e.Cause
}

// NewInvalidArgumentError creates an error naming the offending argument.
func NewInvalidArgumentError(arg, reason string, remediation ...string) error {
	return cerr.WithStack(&ClassifiedError{
		Category:    CategoryInvalidArgument,
		Message:     fmt.Sprintf("invalid argument %q: %s", arg, reason),
		Remediation: remediation,
	})
}

// NewIOFailureError creates an error for filesystem issues
func NewIOFailureError(message string, cause error, remediation ...string) error {
	return cerr.WithStack(&ClassifiedError{
		Category:    CategoryIOFailure,
		Message:     message,
		Cause:       cause,
		Remediation: remediation,
	})
}

// CategoryOf reports the category of the first ClassifiedError in err's chain.
func CategoryOf(err error) (ErrorCategory, bool) {
	var classified *ClassifiedError
	if err != nil && cerr.As(err, &classified) {
		return classified.Category, true
	}
	return 0, false
}

// IsInvalidArgument reports whether err was caused by a bad argument.
func IsInvalidArgument(err error) bool {
	c, ok := CategoryOf(err)
	return ok && c == CategoryInvalidArgument
}

// IsIOFailure reports whether err was caused by the filesystem.
func IsIOFailure(err error) bool {
	c, ok := CategoryOf(err)
	return ok && c == CategoryIOFailure
}
