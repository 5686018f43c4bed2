package sdunit

import (
	"fmt"
	"strings"
)

// EnvVar is a single KEY=VALUE environment assignment. Assignments are kept
// as an ordered list rather than a map: the descriptor emits them in input
// order, and duplicate keys are allowed (later entries do not overwrite
// earlier ones).
type EnvVar struct {
	// Key is the variable name
	Key string
	// Value is the variable value
	Value string
}

// ServiceConfig describes one service unit. It is a value type: the With*
// transforms return a modified copy and never mutate the receiver, so a
// configuration handed to a Service cannot change underneath it.
type ServiceConfig struct {
	// Name is the service name, used as the unit filename stem
	Name string
	// Description is a brief free-text description of the service
	Description string
	// ExecStart is the command line the supervisor runs
	ExecStart string
	// WorkingDirectory is the working directory for the service process
	WorkingDirectory string
	// User is the user to run the service as
	User string
	// Group is the group to run the service as
	Group string
	// Restart is the restart policy (e.g. "no", "on-failure", "always")
	Restart string
	// RestartSec is the delay in seconds before restarting the service
	RestartSec int
	// WantedBy is the target the unit is installed under
	WantedBy string
	// Environment contains environment assignments in emission order
	Environment []EnvVar
	// After lists units that must be started before this one
	After []string
	// LogFile redirects standard output to this path in append mode
	LogFile string
}

// NewServiceConfig creates a ServiceConfig with the three required fields
// and the default restart policy, restart delay, and install target.
func NewServiceConfig(name, execStart, description string) ServiceConfig {
	return ServiceConfig{
		Name:        name,
		Description: description,
		ExecStart:   execStart,
		Restart:     DefaultRestart,
		RestartSec:  DefaultRestartSec,
		WantedBy:    DefaultWantedBy,
	}
}

// WithWorkingDirectory returns a copy with the working directory set
func (c ServiceConfig) WithWorkingDirectory(dir string) ServiceConfig {
	c.WorkingDirectory = dir
	return c
}

// WithUser returns a copy with the service user set
func (c ServiceConfig) WithUser(user string) ServiceConfig {
	c.User = user
	return c
}

// WithGroup returns a copy with the service group set
func (c ServiceConfig) WithGroup(group string) ServiceConfig {
	c.Group = group
	return c
}

// WithRestart returns a copy with the restart policy set
func (c ServiceConfig) WithRestart(restart string) ServiceConfig {
	c.Restart = restart
	return c
}

// WithRestartSec returns a copy with the restart delay set
func (c ServiceConfig) WithRestartSec(sec int) ServiceConfig {
	c.RestartSec = sec
	return c
}

// WithWantedBy returns a copy with the install target set
func (c ServiceConfig) WithWantedBy(target string) ServiceConfig {
	c.WantedBy = target
	return c
}

// WithEnvironment returns a copy with the environment assignments set.
// The slice is copied so the caller's backing array is not shared.
func (c ServiceConfig) WithEnvironment(env []EnvVar) ServiceConfig {
	c.Environment = append([]EnvVar(nil), env...)
	return c
}

// WithAfter returns a copy with the start-ordering dependencies set.
// The slice is copied so the caller's backing array is not shared.
func (c ServiceConfig) WithAfter(after []string) ServiceConfig {
	c.After = append([]string(nil), after...)
	return c
}

// WithLogFile returns a copy with the standard-output log path set
func (c ServiceConfig) WithLogFile(path string) ServiceConfig {
	c.LogFile = path
	return c
}

// Validate checks the construction invariants: the required fields are
// present, the name is usable as a filename, and the restart delay is
// non-negative.
func (c ServiceConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("service name is empty")
	}
	if c.Name == "." || c.Name == ".." || strings.ContainsAny(c.Name, `/\`+"\x00") {
		return fmt.Errorf("service name %q is not usable as a filename", c.Name)
	}
	if c.ExecStart == "" {
		return fmt.Errorf("service %q: exec start command is empty", c.Name)
	}
	if c.Description == "" {
		return fmt.Errorf("service %q: description is empty", c.Name)
	}
	if c.RestartSec < 0 {
		return fmt.Errorf("service %q: restart delay %d is negative", c.Name, c.RestartSec)
	}
	return nil
}
