package sdunit

import "io/fs"

// Unit installation constants
const (
	// DefaultUnitDir is the directory systemd loads system units from
	DefaultUnitDir = "/etc/systemd/system"

	// DefaultSystemctlPath is the default path to the systemctl binary
	DefaultSystemctlPath = "systemctl"

	// UnitSuffix is the filename extension for service units
	UnitSuffix = ".service"
)

// Configuration defaults applied by NewServiceConfig
const (
	// DefaultRestart is the default restart policy
	DefaultRestart = "always"

	// DefaultRestartSec is the default restart delay in seconds
	DefaultRestartSec = 5

	// DefaultWantedBy is the default install target
	DefaultWantedBy = "multi-user.target"
)

// FileMode is the mode unit files are created with
var FileMode fs.FileMode = 0o644

// Operation represents a service management operation type
type Operation int

const (
	// OpUnknown represents an unknown operation
	OpUnknown Operation = iota
	// OpWrite writes the unit descriptor to disk
	OpWrite
	// OpInstall resolves the install path and runs the install sequence
	OpInstall
	// OpDaemonReload reloads the systemd unit database
	OpDaemonReload
	// OpEnable enables the unit for target-time activation
	OpEnable
	// OpStart starts the unit
	OpStart
	// OpWatch watches the installed unit file for changes
	OpWatch
)

// Operation string constants
const (
	opUnknownStr      = "unknown"
	opWriteStr        = "write"
	opInstallStr      = "install"
	opDaemonReloadStr = "daemon-reload"
	opEnableStr       = "enable"
	opStartStr        = "start"
	opWatchStr        = "watch"
)

// String returns the string representation of an Operation
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return opWriteStr
	case OpInstall:
		return opInstallStr
	case OpDaemonReload:
		return opDaemonReloadStr
	case OpEnable:
		return opEnableStr
	case OpStart:
		return opStartStr
	case OpWatch:
		return opWatchStr
	default:
		return opUnknownStr
	}
}
