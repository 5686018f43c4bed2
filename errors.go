package sdunit

import (
	"errors"
	"fmt"
)

// Common errors returned by unit operations
var (
	// ErrNeedRoot indicates the calling process lacks root privileges
	ErrNeedRoot = errors.New("sdunit: need root privileges")

	// ErrUnitExists indicates a unit file is already installed at the resolved path
	ErrUnitExists = errors.New("sdunit: unit file already exists")

	// ErrWatchUnsupported indicates unit watching is not available on this platform
	ErrWatchUnsupported = errors.New("sdunit: unit watch not supported on this platform")
)

// Kind classifies a failed operation so callers can branch on cause.
type Kind int

const (
	// KindUnknown is the zero Kind, reported for errors outside this taxonomy
	KindUnknown Kind = iota

	// KindIO covers filesystem failures: unit file creation and writes,
	// and platform errors surfaced while checking the install path.
	// The anti-clobber ErrUnitExists condition is also KindIO.
	KindIO

	// KindPermission indicates the capability check failed
	KindPermission

	// KindCommand indicates a control-plane invocation failed. Both a
	// non-zero systemctl exit status and a failure to spawn the binary at
	// all (not found, not executable) are KindCommand: everything that
	// goes wrong talking to the control plane is one category.
	KindCommand
)

// Kind string constants
const (
	kindUnknownStr    = "unknown"
	kindIOStr         = "io"
	kindPermissionStr = "permission"
	kindCommandStr    = "command"
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindIO:
		return kindIOStr
	case KindPermission:
		return kindPermissionStr
	case KindCommand:
		return kindCommandStr
	default:
		return kindUnknownStr
	}
}

// OpError represents an error from a unit operation
type OpError struct {
	// Op is the operation that failed
	Op Operation
	// Kind classifies the failure
	Kind Kind
	// Path is the file path or unit name involved in the operation
	Path string
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *OpError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("sdunit %s: %v", e.Op.String(), e.Err)
	}
	return fmt.Sprintf("sdunit %s %q: %v", e.Op.String(), e.Path, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *OpError) Unwrap() error {
	return e.Err
}

// KindOf returns the failure Kind carried by err, or KindUnknown if err
// does not wrap an OpError.
func KindOf(err error) Kind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindUnknown
}
