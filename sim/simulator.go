// sim/simulator.go
package sim

import (
	"container/heap"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// eventItem pairs an Event with its insertion sequence number so that ties
// on timestamp break FIFO, keeping replays deterministic for a fixed seed.
type eventItem struct {
	ev  Event
	seq uint64
}

// EventQueue implements heap.Interface and orders events by
// (timestamp, insertion sequence).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []eventItem

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	if eq[i].ev.Timestamp() != eq[j].ev.Timestamp() {
		return eq[i].ev.Timestamp() < eq[j].ev.Timestamp()
	}
	return eq[i].seq < eq[j].seq
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(eventItem))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator is the core object that holds simulation time, system state,
// and the event loop for one call-center run.
//
// Single-threaded by design: a "suspended" waiting call is purely a queued
// state inside the AgentPool, never a blocked goroutine. Independent
// Simulator instances share no mutable state and may run concurrently.
type Simulator struct {
	Clock  float64 // current simulated time (hours)
	Config ScenarioConfig
	// EventQueue has all the simulator events, arrivals and completions
	EventQueue EventQueue
	// Pool aka the fixed set of agents calls compete for
	Pool *AgentPool
	// Stats accumulates wait, busy and queue-length statistics
	Stats *StatsCollector

	arrivals ArrivalSampler
	service  DurationSampler

	arrivalRNG *rand.Rand
	serviceRNG *rand.Rand

	nextCallID  int64
	lastArrival float64 // time of the most recently generated arrival
	seq         uint64  // insertion counter for event tie-breaks
}

// NewSimulator validates cfg and builds a run with the default FIFO queue
// discipline. The seed fully determines the run: identical cfg and seed
// produce bit-identical RunResults.
func NewSimulator(cfg ScenarioConfig, seed int64) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pool, err := NewAgentPool(cfg.NumAgents, &FIFODiscipline{})
	if err != nil {
		return nil, err
	}
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	return &Simulator{
		Config:     cfg,
		EventQueue: make(EventQueue, 0),
		Pool:       pool,
		Stats:      NewStatsCollector(cfg.NumAgents, cfg.RunDuration),
		arrivals:   NewPoissonArrivals(cfg.ArrivalRate),
		service:    NewExponentialService(cfg.MeanServiceTime),
		arrivalRNG: rng.ForSubsystem(SubsystemArrivals),
		serviceRNG: rng.ForSubsystem(SubsystemService),
	}, nil
}

// SetDiscipline swaps the agent pool's queue discipline.
// Must be called before Run.
func (sim *Simulator) SetDiscipline(d QueueDiscipline) {
	sim.Pool.SetDiscipline(d)
}

// Schedule pushes an event into the simulator's EventQueue.
// Events may only be scheduled at or after the current simulated time;
// anything earlier is an engine bug and returns *InvalidScheduleError.
func (sim *Simulator) Schedule(ev Event) error {
	if ev.Timestamp() < sim.Clock {
		return &InvalidScheduleError{EventTime: ev.Timestamp(), Clock: sim.Clock}
	}
	heap.Push(&sim.EventQueue, eventItem{ev: ev, seq: sim.seq})
	sim.seq++
	return nil
}

// Run executes the event loop until the queue empties and returns the
// finalized RunResult.
//
// Arrivals are generated lazily (each arrival chains the next) and stop once
// the next prospective arrival would exceed the run duration. Calls still in
// flight at the cutoff drain to completion rather than being truncated, so
// their wait times are recorded; busy time and queue-length area are clipped
// to the horizon by the collector.
func (sim *Simulator) Run() (RunResult, error) {
	if err := sim.scheduleNextArrival(); err != nil {
		return RunResult{}, err
	}
	for len(sim.EventQueue) > 0 {
		// get the next event to be simulated
		item := heap.Pop(&sim.EventQueue).(eventItem)
		// advance the clock
		sim.Clock = item.ev.Timestamp()
		logrus.Infof("[%.4fh] Executing %T", sim.Clock, item.ev)
		// queue length is sampled around every event for the time average
		sim.Stats.RecordQueueSample(sim.Pool.QueueLen(), sim.Clock)
		if err := item.ev.Execute(sim); err != nil {
			return RunResult{}, err
		}
		sim.Stats.RecordQueueSample(sim.Pool.QueueLen(), sim.Clock)
	}
	logrus.Infof("[%.4fh] Simulation ended", sim.Clock)
	return sim.Stats.Finalize(), nil
}

// scheduleNextArrival samples the next inter-arrival gap and schedules the
// resulting ArrivalEvent. Generation stops once the prospective arrival time
// exceeds the run duration; the arrival sequence is a pure function of the
// seed, independent of pool state.
func (sim *Simulator) scheduleNextArrival() error {
	gap := sim.arrivals.SampleGap(sim.arrivalRNG)
	next := sim.lastArrival + gap
	if next > sim.Config.RunDuration {
		return nil
	}
	sim.lastArrival = next
	c := &Call{
		ID:          sim.nextCallID,
		ArrivalTime: next,
		Agent:       -1,
		State:       StateArrived,
	}
	sim.nextCallID++
	return sim.Schedule(&ArrivalEvent{time: next, Call: c})
}

// handleArrival chains the next arrival, then requests an agent for c.
// If the pool grants immediately, service begins now; otherwise c waits.
func (sim *Simulator) handleArrival(c *Call) error {
	if err := sim.scheduleNextArrival(); err != nil {
		return err
	}
	granted, err := sim.Pool.Request(c, sim.Clock)
	if err != nil {
		return err
	}
	if granted {
		return sim.beginService(c)
	}
	logrus.Infof("[%.4fh] call %d waiting (queue length %d)", sim.Clock, c.ID, sim.Pool.QueueLen())
	return nil
}

// beginService samples a service duration for c and schedules its completion.
// The pool has already recorded c.ServiceStart.
func (sim *Simulator) beginService(c *Call) error {
	duration := sim.service.Sample(sim.serviceRNG)
	return sim.Schedule(&ServiceCompleteEvent{time: sim.Clock + duration, Call: c})
}

// handleServiceComplete finalizes c, releases its agent, records the
// completed call, and starts service for the next waiting call, if any.
func (sim *Simulator) handleServiceComplete(c *Call) error {
	c.ServiceEnd = sim.Clock
	c.State = StateCompleted
	next, err := sim.Pool.Release(c, sim.Clock)
	if err != nil {
		return err
	}
	if err := sim.Stats.RecordCompleted(c); err != nil {
		return err
	}
	if next != nil {
		return sim.beginService(next)
	}
	return nil
}
