// Defines the Call struct that models an individual customer call in the
// simulation. Tracks arrival, service start/end timestamps and the lifecycle
// state used by the agent pool and the statistics collector.

package sim

import "fmt"

// CallState represents the lifecycle state of a call.
// A call moves Arrived -> (Waiting ->) InService -> Completed,
// never skipping backwards.
type CallState string

const (
	StateArrived   CallState = "arrived"
	StateWaiting   CallState = "waiting"
	StateInService CallState = "in_service"
	StateCompleted CallState = "completed"
)

// Call models a single customer call's lifecycle in the simulation.
// All times are simulated hours.
type Call struct {
	ID int64 // Unique identifier, assigned in arrival order

	ArrivalTime  float64 // When the call entered the system
	ServiceStart float64 // When an agent was granted (valid once InService)
	ServiceEnd   float64 // When service completed (valid once Completed)

	Agent int // Index of the serving agent; -1 until one is assigned

	State CallState
}

// Wait returns the time the call spent waiting for an agent.
// Only meaningful once the call has reached InService.
func (c *Call) Wait() float64 {
	return c.ServiceStart - c.ArrivalTime
}

func (c Call) String() string {
	return fmt.Sprintf("Call: (ID: %d, State: %s, ArrivalTime: %.4f)", c.ID, c.State, c.ArrivalTime)
}
