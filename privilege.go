package sdunit

import "github.com/axondata/go-sdunit/internal/caps"

// CapabilityProvider answers whether the current process holds the elevated
// privilege required to mutate system-wide service state. A Service
// consults its provider before every mutating operation.
type CapabilityProvider interface {
	IsRoot() bool
}

// EUIDCaps is the default CapabilityProvider. On Unix-like platforms it
// reports true iff the process's effective user id is 0; on all other
// platforms it reports false unconditionally.
type EUIDCaps struct{}

// IsRoot reports whether the process runs with superuser privileges
func (EUIDCaps) IsRoot() bool {
	return caps.IsRoot()
}

// IsRoot reports whether the current process runs with superuser
// privileges. It is a pure query with no side effects.
func IsRoot() bool {
	return caps.IsRoot()
}

// ValidateRootPrivileges returns a Permission-kind error unless the current
// process runs as root.
func ValidateRootPrivileges() error {
	return validatePrivileges(EUIDCaps{}, OpUnknown)
}

func validatePrivileges(provider CapabilityProvider, op Operation) error {
	if !provider.IsRoot() {
		return &OpError{Op: op, Kind: KindPermission, Err: ErrNeedRoot}
	}
	return nil
}
