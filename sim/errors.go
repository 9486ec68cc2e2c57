package sim

import "fmt"

// InvalidScheduleError reports an attempt to schedule an event earlier than
// the current simulated time. This is fatal: it indicates an engine bug, not
// a recoverable condition.
type InvalidScheduleError struct {
	EventTime float64 // requested timestamp (hours)
	Clock     float64 // simulated time when the schedule was attempted
}

func (e *InvalidScheduleError) Error() string {
	return fmt.Sprintf("cannot schedule event at %.6fh in the past (clock is %.6fh)", e.EventTime, e.Clock)
}

// InvalidConfigError reports a non-positive scenario parameter supplied by
// the harness. Surfaced before any simulation is attempted.
type InvalidConfigError struct {
	Field string
	Value float64
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid scenario config: %s must be positive, got %g", e.Field, e.Value)
}

// PoolInvariantError reports busy-count corruption in the agent pool.
// A run that trips this must abort rather than produce a RunResult, since
// silent corruption would invalidate the statistics.
type PoolInvariantError struct {
	Busy     int
	Capacity int
}

func (e *PoolInvariantError) Error() string {
	return fmt.Sprintf("agent pool invariant violated: busy=%d capacity=%d", e.Busy, e.Capacity)
}
