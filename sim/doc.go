// Package sim provides the discrete-event simulation engine for the call
// center queueing model.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - call.go: Call lifecycle (arrived → waiting → in_service → completed)
//   - event.go: Event types that drive the simulation (Arrival, ServiceComplete)
//   - simulator.go: The event loop, lazy arrival chaining, and the run cutoff
//
// # Architecture
//
// One Simulator owns one run: a heap-ordered EventQueue keyed by
// (timestamp, insertion sequence), an AgentPool with a FIFO waiting queue,
// and a StatsCollector that turns completed calls and queue-length samples
// into a RunResult. Scenario presets, YAML scenario files and replication
// aggregation live in sim/scenario.
//
// # Key Interfaces
//
// The extension points are small interfaces:
//   - ArrivalSampler: inter-arrival gap distribution (Poisson by default)
//   - DurationSampler: service-time distribution (exponential by default)
//   - QueueDiscipline: order of the waiting queue on agent release (FIFO default)
//
// Randomness is injected through PartitionedRNG so the arrival sequence and
// service draws are isolated, deterministic functions of the seed.
package sim
