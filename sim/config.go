package sim

// ScenarioConfig groups the parameters of one simulation run.
// Immutable for the duration of the run that uses it; the three built-in
// scenarios each own an independent config.
type ScenarioConfig struct {
	Name            string  // human-readable scenario label
	NumAgents       int     // agent pool capacity (must be >= 1)
	ArrivalRate     float64 // call arrivals per hour (must be > 0)
	MeanServiceTime float64 // mean service duration in hours (must be > 0)
	RunDuration     float64 // simulated horizon in hours (must be > 0)
}

// Validate checks that every scenario parameter is positive.
// Returns *InvalidConfigError naming the first offending field.
func (c ScenarioConfig) Validate() error {
	if c.NumAgents < 1 {
		return &InvalidConfigError{Field: "num_agents", Value: float64(c.NumAgents)}
	}
	if c.ArrivalRate <= 0 {
		return &InvalidConfigError{Field: "arrival_rate", Value: c.ArrivalRate}
	}
	if c.MeanServiceTime <= 0 {
		return &InvalidConfigError{Field: "mean_service_time", Value: c.MeanServiceTime}
	}
	if c.RunDuration <= 0 {
		return &InvalidConfigError{Field: "run_duration", Value: c.RunDuration}
	}
	return nil
}
