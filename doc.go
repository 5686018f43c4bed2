// Package sdunit generates systemd service unit descriptors and installs
// them through the systemctl control plane.
//
// The core functionality centers around an immutable ServiceConfig value,
// built once with NewServiceConfig and refined through With* transforms,
// and the Service type, which renders the unit text, writes it under the
// unit directory, and sequences the daemon-reload/enable/start commands:
//
//	cfg := sdunit.NewServiceConfig(
//	    "myapp",
//	    "/usr/local/bin/myapp --run",
//	    "My Application Service",
//	).
//	    WithUser("myapp-user").
//	    WithAfter([]string{"network.target"}).
//	    WithEnvironment([]sdunit.EnvVar{{Key: "PORT", Value: "8080"}})
//
//	svc := sdunit.NewService(cfg)
//
//	// Write the unit file, reload systemd, and enable the unit.
//	// Requires root privileges.
//	if err := svc.InstallAndEnable(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Start the service.
//	err = svc.Start(ctx)
//
// # Root Privileges
//
// Every mutating operation (Write, InstallAndEnable, DaemonReload, Enable,
// Start) validates root privileges before touching the filesystem or the
// control plane, and fails with a Permission-kind error otherwise. Each
// operation checks independently so it is safe to call standalone.
//
// # Design Philosophy
//
// This library prioritizes:
//
//   - Deterministic, diffable unit output (fixed field order, no map
//     iteration anywhere near the descriptor)
//   - Atomic unit-file writes (no partially written descriptors)
//   - An anti-clobber install path: an existing unit file is an error,
//     never an overwrite
//   - Typed errors callers can branch on (IO, Permission, Command)
//
// State beyond systemctl exit codes is deliberately not tracked; the
// library issues commands and surfaces their outcome, nothing more.
package sdunit
