package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresets_MatchStaffingPlan(t *testing.T) {
	base := Baseline(DefaultRunHours, DefaultMeanServiceHours)
	more := MoreAgents(DefaultRunHours, DefaultMeanServiceHours)
	load := HigherLoad(DefaultRunHours, DefaultMeanServiceHours)

	assert.Equal(t, 5, base.NumAgents)
	assert.Equal(t, 10.0, base.ArrivalRate)
	assert.Equal(t, 7, more.NumAgents)
	assert.Equal(t, 10.0, more.ArrivalRate)
	assert.Equal(t, 5, load.NumAgents)
	assert.Equal(t, 12.0, load.ArrivalRate)

	for _, cfg := range All(DefaultRunHours, DefaultMeanServiceHours) {
		assert.NoError(t, cfg.Validate(), cfg.Name)
		assert.Equal(t, DefaultRunHours, cfg.RunDuration)
		assert.Equal(t, DefaultMeanServiceHours, cfg.MeanServiceTime)
	}
}

func TestAll_ComparisonOrder(t *testing.T) {
	configs := All(8, 5.0/60)
	assert.Len(t, configs, 3)
	assert.Contains(t, configs[0].Name, "Baseline")
	assert.Contains(t, configs[1].Name, "More Agents")
	assert.Contains(t, configs[2].Name, "Higher Load")
}
