package sdunit

import (
	"testing"
)

func TestNewServiceConfigDefaults(t *testing.T) {
	cfg := NewServiceConfig("myapp", "/usr/local/bin/myapp", "My Application Service")

	if cfg.Restart != "always" {
		t.Errorf("Restart = %q, want always", cfg.Restart)
	}
	if cfg.RestartSec != 5 {
		t.Errorf("RestartSec = %d, want 5", cfg.RestartSec)
	}
	if cfg.WantedBy != "multi-user.target" {
		t.Errorf("WantedBy = %q, want multi-user.target", cfg.WantedBy)
	}
	if cfg.User != "" || cfg.Group != "" || cfg.WorkingDirectory != "" || cfg.LogFile != "" {
		t.Errorf("optional fields not empty: %+v", cfg)
	}
	if cfg.Environment != nil || cfg.After != nil {
		t.Errorf("optional slices not nil: %+v", cfg)
	}
}

func TestWithTransformsDoNotMutateReceiver(t *testing.T) {
	base := NewServiceConfig("myapp", "/usr/local/bin/myapp", "My Application Service")

	derived := base.
		WithUser("other").
		WithGroup("other").
		WithWorkingDirectory("/srv").
		WithRestart("on-failure").
		WithRestartSec(30).
		WithWantedBy("graphical.target").
		WithLogFile("/var/log/other.log").
		WithAfter([]string{"network.target"}).
		WithEnvironment([]EnvVar{{Key: "A", Value: "1"}})

	if base.User != "" || base.Group != "" || base.WorkingDirectory != "" || base.LogFile != "" {
		t.Errorf("base mutated by With transforms: %+v", base)
	}
	if base.Restart != "always" || base.RestartSec != 5 || base.WantedBy != "multi-user.target" {
		t.Errorf("base defaults mutated: %+v", base)
	}
	if base.After != nil || base.Environment != nil {
		t.Errorf("base slices mutated: %+v", base)
	}

	if derived.User != "other" || derived.RestartSec != 30 {
		t.Errorf("derived config missing values: %+v", derived)
	}
}

func TestWithSlicesCopyInput(t *testing.T) {
	after := []string{"network.target"}
	env := []EnvVar{{Key: "A", Value: "1"}}

	cfg := NewServiceConfig("myapp", "/usr/local/bin/myapp", "My Application Service").
		WithAfter(after).
		WithEnvironment(env)

	after[0] = "mutated.target"
	env[0] = EnvVar{Key: "B", Value: "2"}

	if cfg.After[0] != "network.target" {
		t.Errorf("After aliases caller slice: %v", cfg.After)
	}
	if cfg.Environment[0].Key != "A" {
		t.Errorf("Environment aliases caller slice: %v", cfg.Environment)
	}
}

func TestServiceConfigValidate(t *testing.T) {
	valid := NewServiceConfig("myapp", "/usr/local/bin/myapp", "My Application Service")

	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr bool
	}{
		{"valid", valid, false},
		{"empty name", NewServiceConfig("", "/bin/true", "d"), true},
		{"name with slash", NewServiceConfig("../etc", "/bin/true", "d"), true},
		{"name dot", NewServiceConfig(".", "/bin/true", "d"), true},
		{"empty exec", NewServiceConfig("myapp", "", "d"), true},
		{"empty description", NewServiceConfig("myapp", "/bin/true", ""), true},
		{"negative restart sec", valid.WithRestartSec(-1), true},
		{"zero restart sec", valid.WithRestartSec(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
