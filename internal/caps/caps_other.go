//go:build !unix

// Package caps provides platform-specific capability probes.
package caps

// IsRoot reports false on platforms without a Unix-style user-identity
// model: privilege that cannot be verified is never claimed.
func IsRoot() bool {
	return false
}
