package app

import (
	"errors"
	"os"
	"time"

	"go.trai.ch/stage/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings such as
// "50ms" or "1s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return zerr.Wrap(err, "invalid duration")
	}
	*d = Duration(parsed)
	return nil
}

// Scenario is a scripted sequence of scene manager operations.
type Scenario struct {
	// Async makes loads use the resolver's asynchronous path.
	Async bool `yaml:"async"`
	// InstanceCache overrides the instance cache bound when positive.
	InstanceCache int `yaml:"instance_cache"`
	// PreloadCache overrides the preload cache bound when positive.
	PreloadCache int `yaml:"preload_cache"`
	// Steps are executed in order; the first failing step aborts the run.
	Steps []Step `yaml:"steps"`
}

// Step is a single scenario operation.
type Step struct {
	// Op is one of "switch", "preload", "clear", or "info".
	Op string `yaml:"op"`
	// Path is the scene path for switch and preload.
	Path string `yaml:"path"`
	// Cache parks the outgoing scene in the instance cache on switch.
	Cache bool `yaml:"cache"`
	// Fade, when positive, shows a timed loading screen around the switch.
	Fade Duration `yaml:"fade"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(
			errors.Join(domain.ErrScenarioReadFailed, err), "reading scenario"), "path", path)
	}

	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, zerr.With(zerr.Wrap(
			errors.Join(domain.ErrScenarioParseFailed, err), "parsing scenario"), "path", path)
	}

	for i, step := range sc.Steps {
		switch step.Op {
		case "switch", "preload":
			if step.Path == "" {
				return nil, zerr.With(
					zerr.Wrap(domain.ErrScenarioParseFailed, "step missing path"), "step", i)
			}
		case "clear", "info":
		default:
			return nil, zerr.With(zerr.With(
				zerr.Wrap(domain.ErrUnknownScenarioStep, "validating scenario"),
				"step", i), "op", step.Op)
		}
	}

	return &sc, nil
}
