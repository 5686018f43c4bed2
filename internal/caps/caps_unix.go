//go:build unix

// Package caps provides platform-specific capability probes.
package caps

import "golang.org/x/sys/unix"

// IsRoot reports whether the effective user id of the calling process is
// the superuser id (0).
func IsRoot() bool {
	return unix.Geteuid() == 0
}
