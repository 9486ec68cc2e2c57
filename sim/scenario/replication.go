package scenario

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/callcenter-sim/callcenter-sim/sim"
)

// Summary aggregates RunResults across the replications of one scenario.
// Stdevs are population standard deviations over the replication set.
type Summary struct {
	Config       sim.ScenarioConfig
	Replications int
	Results      []sim.RunResult

	AvgWaitMean      float64 // hours
	AvgWaitStdev     float64
	UtilizationMean  float64
	UtilizationStdev float64
	QueueLengthMean  float64
	QueueLengthStdev float64
	ServedMean       float64
	ServedStdev      float64
}

// RunReplications runs cfg n times with seeds base, base+1, ..., base+n-1
// and aggregates the per-run results. Replications are independent: each run
// owns its own clock, pool and collector. A nil discipline means FIFO.
func RunReplications(cfg sim.ScenarioConfig, baseSeed int64, n int, discipline sim.QueueDiscipline) (*Summary, error) {
	if n < 1 {
		return nil, fmt.Errorf("replications must be >= 1, got %d", n)
	}
	summary := &Summary{Config: cfg, Replications: n, Results: make([]sim.RunResult, 0, n)}

	waits := make([]float64, 0, n)
	utils := make([]float64, 0, n)
	qlens := make([]float64, 0, n)
	served := make([]float64, 0, n)

	for r := 0; r < n; r++ {
		s, err := sim.NewSimulator(cfg, baseSeed+int64(r))
		if err != nil {
			return nil, err
		}
		if discipline != nil {
			s.SetDiscipline(discipline)
		}
		res, err := s.Run()
		if err != nil {
			return nil, fmt.Errorf("replication %d of %q: %w", r, cfg.Name, err)
		}
		logrus.Debugf("replication %d of %q: served=%d avgWait=%.4fh", r, cfg.Name, res.CustomersServed, res.AvgWaitTime)

		summary.Results = append(summary.Results, res)
		waits = append(waits, res.AvgWaitTime)
		utils = append(utils, res.AvgUtilization)
		qlens = append(qlens, res.AvgQueueLength)
		served = append(served, float64(res.CustomersServed))
	}

	summary.AvgWaitMean = stat.Mean(waits, nil)
	summary.AvgWaitStdev = stat.PopStdDev(waits, nil)
	summary.UtilizationMean = stat.Mean(utils, nil)
	summary.UtilizationStdev = stat.PopStdDev(utils, nil)
	summary.QueueLengthMean = stat.Mean(qlens, nil)
	summary.QueueLengthStdev = stat.PopStdDev(qlens, nil)
	summary.ServedMean = stat.Mean(served, nil)
	summary.ServedStdev = stat.PopStdDev(served, nil)
	return summary, nil
}

// Print displays the aggregated scenario report. Wait times are shown in
// minutes, the unit operators quote hold times in.
func (s *Summary) Print() {
	fmt.Printf("\n%s\n", s.Config.Name)
	fmt.Printf("  Avg wait: %.2f min (stdev %.2f)\n", s.AvgWaitMean*60, s.AvgWaitStdev*60)
	fmt.Printf("  Utilization: %.2f\n", s.UtilizationMean)
	fmt.Printf("  Customers served: %.0f\n", s.ServedMean)
	fmt.Printf("  Avg queue length: %.2f\n", s.QueueLengthMean)
}
