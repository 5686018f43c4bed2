package sdunit

import (
	"fmt"
	"strings"
)

// BuildUnit renders the unit descriptor text for cfg. It is a pure function
// of its input: the same configuration always produces byte-identical
// output, so descriptors are reproducible and diffable. Field order within
// each section is fixed; nothing here depends on map iteration.
//
// Optional fields that are unset (empty strings, empty slices) produce no
// lines at all. A negative RestartSec suppresses the RestartSec line.
func BuildUnit(cfg ServiceConfig) string {
	var unit strings.Builder

	unit.WriteString("[Unit]\n")
	fmt.Fprintf(&unit, "Description=%s\n", cfg.Description)
	if len(cfg.After) > 0 {
		// Order preserved exactly as given: no sorting, no de-duplication
		fmt.Fprintf(&unit, "After=%s\n", strings.Join(cfg.After, " "))
	}
	unit.WriteString("\n")

	unit.WriteString("[Service]\n")
	if cfg.WorkingDirectory != "" {
		fmt.Fprintf(&unit, "WorkingDirectory=%s\n", cfg.WorkingDirectory)
	}
	if cfg.User != "" {
		fmt.Fprintf(&unit, "User=%s\n", cfg.User)
	}
	if cfg.Group != "" {
		fmt.Fprintf(&unit, "Group=%s\n", cfg.Group)
	}
	if cfg.Restart != "" {
		fmt.Fprintf(&unit, "Restart=%s\n", cfg.Restart)
	}
	if cfg.RestartSec >= 0 {
		fmt.Fprintf(&unit, "RestartSec=%d\n", cfg.RestartSec)
	}
	fmt.Fprintf(&unit, "ExecStart=%s\n", cfg.ExecStart)
	if cfg.LogFile != "" {
		// stdout goes to the log file; stderr stays on the parent's stream
		fmt.Fprintf(&unit, "StandardOutput=append:%s\n", cfg.LogFile)
		unit.WriteString("StandardError=inherit\n")
	}
	for _, env := range cfg.Environment {
		escaped := strings.ReplaceAll(env.Value, `"`, `\"`)
		fmt.Fprintf(&unit, "Environment=\"%s=%s\"\n", env.Key, escaped)
	}
	unit.WriteString("\n")

	unit.WriteString("[Install]\n")
	if cfg.WantedBy != "" {
		fmt.Fprintf(&unit, "WantedBy=%s\n", cfg.WantedBy)
	}

	return unit.String()
}
