package sim

import (
	"fmt"
	"sort"
)

// QueueDiscipline reorders the wait queue before a freed agent is handed out.
// Called on every release so the head of the queue is always the next call to
// serve. Implementations sort the slice in-place using sort.SliceStable for
// determinism.
//
// Call centers conventionally use FIFO; altering the discipline changes
// wait-time distributions materially, so the choice is kept behind this
// interface.
type QueueDiscipline interface {
	OrderQueue(calls []*Call, clock float64)
}

// FIFODiscipline preserves First-Come-First-Served order (no-op).
// This is the default: the oldest waiting call is served next.
type FIFODiscipline struct{}

func (f *FIFODiscipline) OrderQueue(_ []*Call, _ float64) {
	// No-op: FIFO order preserved from enqueue order
}

// LIFODiscipline serves the most recently arrived waiting call first.
// Ties on arrival time break by ID (descending) for determinism.
// Warning: LIFO can starve long-waiting callers under sustained load.
type LIFODiscipline struct{}

func (l *LIFODiscipline) OrderQueue(calls []*Call, _ float64) {
	sort.SliceStable(calls, func(i, j int) bool {
		if calls[i].ArrivalTime != calls[j].ArrivalTime {
			return calls[i].ArrivalTime > calls[j].ArrivalTime
		}
		return calls[i].ID > calls[j].ID
	})
}

// NewDiscipline creates a QueueDiscipline by name.
// Valid names: "fifo" (default), "lifo".
// Empty string defaults to FIFODiscipline (for CLI flag default compatibility).
// Panics on unrecognized names.
func NewDiscipline(name string) QueueDiscipline {
	switch name {
	case "", "fifo":
		return &FIFODiscipline{}
	case "lifo":
		return &LIFODiscipline{}
	default:
		panic(fmt.Sprintf("unknown queue discipline %q", name))
	}
}

// IsValidDiscipline reports whether name maps to a known QueueDiscipline.
func IsValidDiscipline(name string) bool {
	switch name {
	case "", "fifo", "lifo":
		return true
	default:
		return false
	}
}
