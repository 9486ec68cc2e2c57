package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callcenter-sim/callcenter-sim/sim"
)

func TestRunReplications_ReturnsOneResultPerReplication(t *testing.T) {
	cfg := Baseline(8, DefaultMeanServiceHours)

	summary, err := RunReplications(cfg, DefaultSeed, 5, nil)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Replications)
	assert.Len(t, summary.Results, 5)
	assert.Greater(t, summary.ServedMean, 0.0)
}

func TestRunReplications_Deterministic(t *testing.T) {
	// GIVEN the same config, base seed and replication count
	cfg := HigherLoad(8, DefaultMeanServiceHours)

	a, err := RunReplications(cfg, DefaultSeed, 4, nil)
	require.NoError(t, err)
	b, err := RunReplications(cfg, DefaultSeed, 4, nil)
	require.NoError(t, err)

	// THEN every replication result is bit-identical
	for i := range a.Results {
		assert.Equal(t, a.Results[i], b.Results[i], "replication %d", i)
	}
	assert.Equal(t, a.AvgWaitMean, b.AvgWaitMean)
	assert.Equal(t, a.ServedStdev, b.ServedStdev)
}

func TestRunReplications_DistinctSeedsAcrossReplications(t *testing.T) {
	cfg := Baseline(8, DefaultMeanServiceHours)

	summary, err := RunReplications(cfg, DefaultSeed, 3, nil)
	require.NoError(t, err)

	// Replication r reruns with seed base+r, so served counts should not
	// all coincide (they would under a reused seed).
	allEqual := summary.Results[0].CustomersServed == summary.Results[1].CustomersServed &&
		summary.Results[1].CustomersServed == summary.Results[2].CustomersServed
	assert.False(t, allEqual, "all replications produced identical served counts")
}

func TestRunReplications_RejectsZeroReplications(t *testing.T) {
	_, err := RunReplications(Baseline(8, DefaultMeanServiceHours), DefaultSeed, 0, nil)
	assert.Error(t, err)
}

func TestRunReplications_PropagatesConfigError(t *testing.T) {
	bad := Baseline(8, DefaultMeanServiceHours)
	bad.ArrivalRate = -1
	_, err := RunReplications(bad, DefaultSeed, 2, nil)
	assert.Error(t, err)
}

func TestRunReplications_HigherLoadDominatesBaseline(t *testing.T) {
	// GIVEN baseline and higher-load scenarios over a long horizon
	const hours = 100.0
	base, err := RunReplications(Baseline(hours, DefaultMeanServiceHours), DefaultSeed, 30, nil)
	require.NoError(t, err)
	load, err := RunReplications(HigherLoad(hours, DefaultMeanServiceHours), DefaultSeed, 30, nil)
	require.NoError(t, err)

	// THEN heavier traffic is at least as bad on every quality metric
	assert.GreaterOrEqual(t, load.AvgWaitMean, base.AvgWaitMean)
	assert.GreaterOrEqual(t, load.QueueLengthMean, base.QueueLengthMean)
	assert.GreaterOrEqual(t, load.UtilizationMean, base.UtilizationMean)
	assert.Greater(t, load.ServedMean, base.ServedMean)
}

func TestRunReplications_MoreAgentsNeverWaitLonger(t *testing.T) {
	const hours = 100.0
	base, err := RunReplications(Baseline(hours, DefaultMeanServiceHours), DefaultSeed, 10, nil)
	require.NoError(t, err)
	more, err := RunReplications(MoreAgents(hours, DefaultMeanServiceHours), DefaultSeed, 10, nil)
	require.NoError(t, err)

	// Coupled seeds make this exact per replication, not just on average.
	for i := range base.Results {
		assert.LessOrEqual(t, more.Results[i].AvgWaitTime, base.Results[i].AvgWaitTime,
			"replication %d", i)
	}
}

func TestRunReplications_UtilizationStaysBounded(t *testing.T) {
	summary, err := RunReplications(HigherLoad(100, DefaultMeanServiceHours), DefaultSeed, 5, nil)
	require.NoError(t, err)
	for i, res := range summary.Results {
		assert.GreaterOrEqual(t, res.AvgUtilization, 0.0, "replication %d", i)
		assert.LessOrEqual(t, res.AvgUtilization, 1.0, "replication %d", i)
	}
}

func TestRunReplications_WithLIFODiscipline(t *testing.T) {
	cfg := HigherLoad(8, DefaultMeanServiceHours)
	summary, err := RunReplications(cfg, DefaultSeed, 3, &sim.LIFODiscipline{})
	require.NoError(t, err)
	assert.Len(t, summary.Results, 3)
}
