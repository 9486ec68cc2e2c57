package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event has a Timestamp (in simulated hours) and an Execute method
// that advances simulation state when invoked.
type Event interface {
	Timestamp() float64
	Execute(*Simulator) error
}

// ArrivalEvent represents a new customer call entering the system.
type ArrivalEvent struct {
	time float64 // Simulation time of arrival (hours)
	Call *Call   // The incoming call associated with this event
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute admits the call and chains the next arrival.
func (e *ArrivalEvent) Execute(sim *Simulator) error {
	logrus.Infof("<< Arrival: call %d at %.4fh", e.Call.ID, e.time)
	return sim.handleArrival(e.Call)
}

// ServiceCompleteEvent represents an agent finishing a call.
type ServiceCompleteEvent struct {
	time float64 // Scheduled completion time (hours)
	Call *Call   // The call being completed
}

// Timestamp returns the scheduled time of the ServiceCompleteEvent.
func (e *ServiceCompleteEvent) Timestamp() float64 {
	return e.time
}

// Execute releases the agent and records the completed call.
func (e *ServiceCompleteEvent) Execute(sim *Simulator) error {
	logrus.Infof("<< ServiceComplete: call %d at %.4fh", e.Call.ID, e.time)
	return sim.handleServiceComplete(e.Call)
}
