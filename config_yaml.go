package sdunit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// serviceConfigYAML mirrors ServiceConfig for decoding. Environment is a
// list of key/value entries so input order and duplicate keys survive the
// round trip; RestartSec is a pointer to tell "absent" apart from an
// explicit zero.
type serviceConfigYAML struct {
	Name             string       `yaml:"name"`
	Description      string       `yaml:"description"`
	ExecStart        string       `yaml:"exec_start"`
	WorkingDirectory string       `yaml:"working_directory"`
	User             string       `yaml:"user"`
	Group            string       `yaml:"group"`
	Restart          string       `yaml:"restart"`
	RestartSec       *int         `yaml:"restart_sec"`
	WantedBy         string       `yaml:"wanted_by"`
	Environment      []envVarYAML `yaml:"environment"`
	After            []string     `yaml:"after"`
	LogFile          string       `yaml:"log_file"`
}

type envVarYAML struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// LoadServiceConfig reads a YAML service definition from path and returns
// the corresponding ServiceConfig. Fields absent from the document get the
// same defaults NewServiceConfig applies; the result is validated before it
// is returned.
func LoadServiceConfig(path string) (ServiceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ServiceConfig{}, fmt.Errorf("reading service definition: %w", err)
	}

	var raw serviceConfigYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return ServiceConfig{}, fmt.Errorf("parsing service definition %s: %w", path, err)
	}

	cfg := NewServiceConfig(raw.Name, raw.ExecStart, raw.Description)

	if raw.WorkingDirectory != "" {
		cfg = cfg.WithWorkingDirectory(raw.WorkingDirectory)
	}
	if raw.User != "" {
		cfg = cfg.WithUser(raw.User)
	}
	if raw.Group != "" {
		cfg = cfg.WithGroup(raw.Group)
	}
	if raw.Restart != "" {
		cfg = cfg.WithRestart(raw.Restart)
	}
	if raw.RestartSec != nil {
		cfg = cfg.WithRestartSec(*raw.RestartSec)
	}
	if raw.WantedBy != "" {
		cfg = cfg.WithWantedBy(raw.WantedBy)
	}
	if len(raw.Environment) > 0 {
		env := make([]EnvVar, 0, len(raw.Environment))
		for _, e := range raw.Environment {
			env = append(env, EnvVar{Key: e.Key, Value: e.Value})
		}
		cfg = cfg.WithEnvironment(env)
	}
	if len(raw.After) > 0 {
		cfg = cfg.WithAfter(raw.After)
	}
	if raw.LogFile != "" {
		cfg = cfg.WithLogFile(raw.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		return ServiceConfig{}, fmt.Errorf("invalid service definition %s: %w", path, err)
	}

	return cfg, nil
}
