package sdunit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/renameio/v2"
	"go.uber.org/zap"
)

// Service orchestrates descriptor generation, installation, and control
// plane commands for one ServiceConfig. It holds no filesystem or process
// state between calls; every operation re-checks privileges and re-derives
// what it needs, so each is safe to invoke standalone. A Service is not
// safe for concurrent use without external synchronization.
type Service struct {
	config ServiceConfig

	// UnitDir is the directory unit files are installed into
	UnitDir string

	// SystemctlPath is the path to the systemctl binary
	SystemctlPath string

	caps CapabilityProvider
	log  *zap.Logger
}

// Option configures a Service
type Option func(*Service)

// WithUnitDir sets the unit installation directory
func WithUnitDir(dir string) Option {
	return func(s *Service) {
		s.UnitDir = dir
	}
}

// WithSystemctlPath sets the path to the systemctl binary
func WithSystemctlPath(path string) Option {
	return func(s *Service) {
		s.SystemctlPath = path
	}
}

// WithLogger sets the logger used for confirmation events. The default is
// a no-op logger; pass the application's logger to surface confirmations.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// WithCapabilityProvider replaces the privilege check implementation
func WithCapabilityProvider(provider CapabilityProvider) Option {
	return func(s *Service) {
		s.caps = provider
	}
}

// NewService creates a Service for the given configuration with the
// conventional unit directory and systemctl path, applying any options.
func NewService(cfg ServiceConfig, opts ...Option) *Service {
	s := &Service{
		config:        cfg,
		UnitDir:       DefaultUnitDir,
		SystemctlPath: DefaultSystemctlPath,
		caps:          EUIDCaps{},
		log:           zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Config returns the service configuration
func (s *Service) Config() ServiceConfig {
	return s.config
}

// UnitName returns the full unit name, e.g. "myapp.service"
func (s *Service) UnitName() string {
	return s.config.Name + UnitSuffix
}

// Generate renders the unit descriptor text for this service. It performs
// no I/O; the text is rebuilt on every call.
func (s *Service) Generate() string {
	return BuildUnit(s.config)
}

// UnitPath resolves the canonical install path <UnitDir>/<name>.service.
// It fails with an IO-kind ErrUnitExists if a file is already present
// there: installation never overwrites an existing unit.
func (s *Service) UnitPath() (string, error) {
	if err := s.config.Validate(); err != nil {
		return "", &OpError{Op: OpInstall, Kind: KindIO, Path: s.UnitDir, Err: err}
	}

	path := filepath.Join(s.UnitDir, s.UnitName())

	_, err := os.Stat(path)
	switch {
	case err == nil:
		return "", &OpError{Op: OpInstall, Kind: KindIO, Path: path, Err: ErrUnitExists}
	case errors.Is(err, fs.ErrNotExist):
		return path, nil
	default:
		return "", &OpError{Op: OpInstall, Kind: KindIO, Path: path, Err: err}
	}
}

// Write renders the descriptor and writes it to path. The write is atomic:
// the file appears fully written or not at all. Requires root.
func (s *Service) Write(path string) error {
	if err := validatePrivileges(s.caps, OpWrite); err != nil {
		return err
	}

	if err := renameio.WriteFile(path, []byte(s.Generate()), FileMode); err != nil {
		return &OpError{Op: OpWrite, Kind: KindIO, Path: path, Err: err}
	}

	s.log.Info("unit file written",
		zap.String("unit", s.UnitName()),
		zap.String("path", path))
	return nil
}

// InstallAndEnable performs the full install sequence: resolve the install
// path (failing fast if a unit file already exists), write the descriptor,
// reload the systemd unit database, and enable the unit. The first failure
// aborts the sequence and is returned with its original kind; steps already
// completed are left in place, no rollback is attempted.
func (s *Service) InstallAndEnable(ctx context.Context) error {
	path, err := s.UnitPath()
	if err != nil {
		return err
	}

	if err := s.Write(path); err != nil {
		return err
	}

	if err := s.DaemonReload(ctx); err != nil {
		return err
	}

	if err := s.Enable(ctx); err != nil {
		return err
	}

	s.log.Info("unit installed and enabled", zap.String("unit", s.UnitName()))
	return nil
}

// DaemonReload reloads the systemd unit database. Requires root.
func (s *Service) DaemonReload(ctx context.Context) error {
	if err := validatePrivileges(s.caps, OpDaemonReload); err != nil {
		return err
	}

	if err := s.runSystemctl(ctx, OpDaemonReload, "daemon-reload"); err != nil {
		return err
	}

	s.log.Info("systemd daemon reloaded")
	return nil
}

// Enable enables the unit for target-time activation. Requires root; the
// unit file must already be installed and the daemon reloaded.
func (s *Service) Enable(ctx context.Context) error {
	if err := validatePrivileges(s.caps, OpEnable); err != nil {
		return err
	}

	if err := s.runSystemctl(ctx, OpEnable, "enable", s.UnitName()); err != nil {
		return err
	}

	s.log.Info("unit enabled", zap.String("unit", s.UnitName()))
	return nil
}

// Start starts the unit. Requires root.
func (s *Service) Start(ctx context.Context) error {
	if err := validatePrivileges(s.caps, OpStart); err != nil {
		return err
	}

	if err := s.runSystemctl(ctx, OpStart, "start", s.UnitName()); err != nil {
		return err
	}

	s.log.Info("unit started", zap.String("unit", s.UnitName()))
	return nil
}

// runSystemctl invokes one systemctl subcommand and waits for it. The
// child inherits this process's stdout and stderr; output is passed
// through, never captured or parsed. Any failure, whether the binary could
// not be spawned or it exited non-zero, is a Command-kind error.
func (s *Service) runSystemctl(ctx context.Context, op Operation, args ...string) error {
	cmd := exec.CommandContext(ctx, s.SystemctlPath, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return &OpError{
			Op:   op,
			Kind: KindCommand,
			Path: s.UnitName(),
			Err:  fmt.Errorf("%s %s failed: %w", s.SystemctlPath, op.String(), err),
		}
	}

	return nil
}
