// Package scenario provides the built-in staffing scenarios, YAML scenario
// files, and replication runs with aggregate statistics.
package scenario

import "github.com/callcenter-sim/callcenter-sim/sim"

// Defaults shared by the built-in scenarios.
const (
	DefaultSeed             int64 = 42
	DefaultRunHours               = 8.0
	DefaultMeanServiceHours       = 5.0 / 60.0 // 5-minute mean handle time
)

// Baseline is the reference staffing level: 5 agents at 10 calls/hour.
func Baseline(runHours, meanServiceHours float64) sim.ScenarioConfig {
	return sim.ScenarioConfig{
		Name: "Baseline (5 agents, 10/hr)", NumAgents: 5, ArrivalRate: 10,
		MeanServiceTime: meanServiceHours, RunDuration: runHours,
	}
}

// MoreAgents adds two agents at the same load: 7 agents at 10 calls/hour.
func MoreAgents(runHours, meanServiceHours float64) sim.ScenarioConfig {
	return sim.ScenarioConfig{
		Name: "More Agents (7 agents, 10/hr)", NumAgents: 7, ArrivalRate: 10,
		MeanServiceTime: meanServiceHours, RunDuration: runHours,
	}
}

// HigherLoad keeps baseline staffing under heavier traffic: 5 agents at
// 12 calls/hour.
func HigherLoad(runHours, meanServiceHours float64) sim.ScenarioConfig {
	return sim.ScenarioConfig{
		Name: "Higher Load (5 agents, 12/hr)", NumAgents: 5, ArrivalRate: 12,
		MeanServiceTime: meanServiceHours, RunDuration: runHours,
	}
}

// All returns the three built-in scenarios in comparison order.
func All(runHours, meanServiceHours float64) []sim.ScenarioConfig {
	return []sim.ScenarioConfig{
		Baseline(runHours, meanServiceHours),
		MoreAgents(runHours, meanServiceHours),
		HigherLoad(runHours, meanServiceHours),
	}
}
