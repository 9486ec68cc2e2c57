package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/callcenter-sim/callcenter-sim/sim"
)

// File is the top-level scenario configuration loaded from YAML.
type File struct {
	Scenarios []Spec `yaml:"scenarios"`
}

// Spec defines a single scenario in a YAML file. Service time is given in
// minutes because that is how operators quote handle times; it is converted
// to hours on load.
type Spec struct {
	Name               string  `yaml:"name"`
	NumAgents          int     `yaml:"num_agents"`
	ArrivalRate        float64 `yaml:"arrival_rate"` // calls per hour
	MeanServiceMinutes float64 `yaml:"mean_service_minutes"`
	RunHours           float64 `yaml:"run_hours"`
}

// Config converts the spec to a validated sim.ScenarioConfig.
func (s Spec) Config() (sim.ScenarioConfig, error) {
	cfg := sim.ScenarioConfig{
		Name:            s.Name,
		NumAgents:       s.NumAgents,
		ArrivalRate:     s.ArrivalRate,
		MeanServiceTime: s.MeanServiceMinutes / 60.0,
		RunDuration:     s.RunHours,
	}
	if err := cfg.Validate(); err != nil {
		return sim.ScenarioConfig{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return cfg, nil
}

// Load reads a scenario file from path and returns the validated configs.
func Load(path string) ([]sim.ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML scenario data and validates every entry.
func Parse(data []byte) ([]sim.ScenarioConfig, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file defines no scenarios")
	}
	configs := make([]sim.ScenarioConfig, 0, len(file.Scenarios))
	for _, spec := range file.Scenarios {
		cfg, err := spec.Config()
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}
