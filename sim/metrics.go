// Tracks run-wide service-quality statistics: per-call wait times, agent
// busy time, and the time-weighted queue-length accumulator.

package sim

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// RunResult is the immutable per-run report produced by the collector.
// Owned by the caller once Finalize returns it.
type RunResult struct {
	AvgWaitTime     float64 // mean wait in hours (0 if nothing served)
	P90WaitTime     float64 // 90th-percentile wait in hours
	P95WaitTime     float64 // 95th-percentile wait in hours
	AvgUtilization  float64 // busy fraction per agent over the run, 0..1
	AvgQueueLength  float64 // time-weighted mean of the waiting-queue length
	CustomersServed int     // calls that reached Completed
}

// Print displays the run's aggregated metrics. Wait times are printed in
// minutes, matching how call-center operators reason about hold times.
func (r RunResult) Print() {
	fmt.Println("=== Run Result ===")
	fmt.Printf("Customers served  : %d\n", r.CustomersServed)
	fmt.Printf("Average wait      : %.2f min\n", r.AvgWaitTime*60)
	fmt.Printf("P90 wait          : %.2f min\n", r.P90WaitTime*60)
	fmt.Printf("P95 wait          : %.2f min\n", r.P95WaitTime*60)
	fmt.Printf("Agent utilization : %.2f\n", r.AvgUtilization)
	fmt.Printf("Avg queue length  : %.2f\n", r.AvgQueueLength)
}

// StatsCollector accumulates statistics over one simulation run.
// Busy time and queue-length area are clipped to the run horizon so that
// utilization and queue-length averages are taken over [0, run_duration]
// even when in-flight calls drain past the cutoff.
type StatsCollector struct {
	horizon  float64
	capacity int

	served  int
	waitSum float64
	waits   []float64
	busySum float64

	queueArea float64
	lastTime  float64
	lastLen   int

	finalized bool
	result    RunResult
}

// NewStatsCollector creates a collector for a pool of the given capacity
// over the given horizon (hours).
func NewStatsCollector(capacity int, horizon float64) *StatsCollector {
	return &StatsCollector{horizon: horizon, capacity: capacity}
}

// RecordQueueSample updates the time-weighted queue-length accumulator.
// The previously recorded length is charged for the elapsed interval,
// clipped to the horizon. Timestamps must be non-decreasing.
func (sc *StatsCollector) RecordQueueSample(length int, now float64) {
	from := math.Min(sc.lastTime, sc.horizon)
	to := math.Min(now, sc.horizon)
	if to > from {
		sc.queueArea += float64(sc.lastLen) * (to - from)
	}
	sc.lastTime = now
	sc.lastLen = length
}

// RecordCompleted hands a completed call to the collector. It validates the
// per-call timestamp ordering invariant and updates the wait and busy-time
// running sums.
func (sc *StatsCollector) RecordCompleted(c *Call) error {
	if c.State != StateCompleted {
		return fmt.Errorf("record completed: call %d is %s, want %s", c.ID, c.State, StateCompleted)
	}
	if c.ArrivalTime > c.ServiceStart || c.ServiceStart > c.ServiceEnd {
		return fmt.Errorf("record completed: call %d has out-of-order timestamps (arrival=%.6f start=%.6f end=%.6f)",
			c.ID, c.ArrivalTime, c.ServiceStart, c.ServiceEnd)
	}
	wait := c.Wait()
	sc.waitSum += wait
	sc.waits = append(sc.waits, wait)
	sc.served++

	// Utilization counts only busy time inside the horizon.
	start := math.Min(c.ServiceStart, sc.horizon)
	end := math.Min(c.ServiceEnd, sc.horizon)
	sc.busySum += end - start
	return nil
}

// Served returns the number of completed calls recorded so far.
func (sc *StatsCollector) Served() int { return sc.served }

// Finalize computes the final aggregates. Idempotent: subsequent calls
// return the same RunResult.
func (sc *StatsCollector) Finalize() RunResult {
	if sc.finalized {
		return sc.result
	}

	r := RunResult{CustomersServed: sc.served}
	if sc.served > 0 {
		r.AvgWaitTime = sc.waitSum / float64(sc.served)
		sorted := make([]float64, len(sc.waits))
		copy(sorted, sc.waits)
		sort.Float64s(sorted)
		r.P90WaitTime = stat.Quantile(0.90, stat.Empirical, sorted, nil)
		r.P95WaitTime = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	}
	r.AvgUtilization = sc.busySum / (float64(sc.capacity) * sc.horizon)
	r.AvgQueueLength = sc.queueArea / sc.horizon

	sc.result = r
	sc.finalized = true
	return r
}
