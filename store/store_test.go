package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callcenter-sim/callcenter-sim/sim"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleConfig(name string) sim.ScenarioConfig {
	return sim.ScenarioConfig{
		Name:            name,
		NumAgents:       5,
		ArrivalRate:     10,
		MeanServiceTime: 5.0 / 60.0,
		RunDuration:     8,
	}
}

func sampleResult() sim.RunResult {
	return sim.RunResult{
		AvgWaitTime:     0.02,
		P90WaitTime:     0.05,
		P95WaitTime:     0.08,
		AvgUtilization:  0.7,
		AvgQueueLength:  0.4,
		CustomersServed: 81,
	}
}

func TestStore_InsertAndList_RoundTrips(t *testing.T) {
	s := testStore(t)

	id, err := s.InsertResult(sampleConfig("Baseline"), 42, sampleResult())
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	rows, err := s.ListResults("")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Baseline", row.Scenario)
	assert.Equal(t, int64(42), row.Seed)
	assert.Equal(t, sampleConfig("Baseline"), row.Config)
	assert.Equal(t, sampleResult(), row.Result)
	assert.NotEmpty(t, row.CreatedAt)
}

func TestStore_ListResults_FiltersByScenario(t *testing.T) {
	s := testStore(t)

	_, err := s.InsertResult(sampleConfig("Baseline"), 42, sampleResult())
	require.NoError(t, err)
	_, err = s.InsertResult(sampleConfig("Higher Load"), 42, sampleResult())
	require.NoError(t, err)

	rows, err := s.ListResults("Baseline")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Baseline", rows[0].Scenario)
}

func TestStore_ListResults_NewestFirst(t *testing.T) {
	s := testStore(t)

	first, err := s.InsertResult(sampleConfig("Baseline"), 42, sampleResult())
	require.NoError(t, err)
	second, err := s.InsertResult(sampleConfig("Baseline"), 43, sampleResult())
	require.NoError(t, err)

	rows, err := s.ListResults("")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second, rows[0].ID)
	assert.Equal(t, first, rows[1].ID)
}

func TestStore_CountResults(t *testing.T) {
	s := testStore(t)

	n, err := s.CountResults()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	for i := 0; i < 3; i++ {
		_, err := s.InsertResult(sampleConfig("Baseline"), int64(42+i), sampleResult())
		require.NoError(t, err)
	}

	n, err = s.CountResults()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestStore_Reopen_KeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	s, err := New(path)
	require.NoError(t, err)
	_, err = s.InsertResult(sampleConfig("Baseline"), 42, sampleResult())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	n, err := reopened.CountResults()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
