package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/forestlab/rilsim/internal/engine"
)

func newComparator(t *testing.T) *Comparator {
	t.Helper()
	return NewComparator(engine.NewEngine(), zap.NewNop())
}

func TestCompareBuildsRowForEveryStrategy(t *testing.T) {
	c := newComparator(t)

	table, err := c.Compare(engine.ProfileRIL25)
	require.NoError(t, err)

	assert.Equal(t, engine.ProfileRIL25, table.ProfileCode)
	require.Len(t, table.Rows, len(Strategies(engine.ProfileRIL25)))
}

func TestCompareOrdersByFinalScore(t *testing.T) {
	c := newComparator(t)

	table, err := c.Compare(engine.ProfileRIL25)
	require.NoError(t, err)

	for i := 1; i < len(table.Rows); i++ {
		assert.GreaterOrEqual(t, table.Rows[i-1].FinalScore, table.Rows[i].FinalScore)
	}
}

func TestCompareIsDeterministic(t *testing.T) {
	c := newComparator(t)

	a, err := c.Compare(engine.ProfileRIL100)
	require.NoError(t, err)
	b, err := c.Compare(engine.ProfileRIL100)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestCompareUnknownProfile(t *testing.T) {
	c := newComparator(t)

	table, err := c.Compare("ril-404")

	assert.Nil(t, table)
	assert.Error(t, err)
}

func TestStrategiesRespectProfileLimits(t *testing.T) {
	eng := engine.NewEngine()

	for _, code := range []string{engine.ProfileRIL25, engine.ProfileRIL100} {
		profile, ok := eng.Profile(code)
		require.True(t, ok)

		for _, strategy := range Strategies(code) {
			results := engine.NewValidator().ValidatePlan(profile, strategy.Operations)
			assert.True(t, results.IsValid, "strategy %s under %s: %v", strategy.Code, code, results.Errors)
		}
	}
}

func TestEveryPresetOperationFires(t *testing.T) {
	eng := engine.NewEngine()

	for _, code := range []string{engine.ProfileRIL25, engine.ProfileRIL100} {
		profile, ok := eng.Profile(code)
		require.True(t, ok)

		plans := map[string][]engine.Operation{"default": DefaultPlan(code)}
		for _, strategy := range Strategies(code) {
			plans[strategy.Code] = strategy.Operations
		}

		for name, ops := range plans {
			for _, op := range ops {
				if !op.Active() {
					continue
				}
				// Run the cut alone: if it fires, something is harvested.
				_, score := profile.Run([]engine.Operation{op})
				assert.Greater(t, score.TotalHarvested, 0.0,
					"%s under %s: operation year %d never fires", name, code, op.Year)
			}
		}
	}
}

func TestCompareDistinguishesHarvestingFromNoLogging(t *testing.T) {
	c := newComparator(t)

	table, err := c.Compare(engine.ProfileRIL100)
	require.NoError(t, err)

	rows := make(map[string]ComparisonRow, len(table.Rows))
	for _, row := range table.Rows {
		rows[row.StrategyCode] = row
	}

	assert.Zero(t, rows["no-logging"].TotalHarvested)
	assert.Greater(t, rows["single-heavy"].TotalHarvested, 0.0)
	assert.Less(t, rows["single-heavy"].FinalCarbon, rows["no-logging"].FinalCarbon)
}

func TestDefaultPlanIsValid(t *testing.T) {
	eng := engine.NewEngine()

	for _, code := range []string{engine.ProfileRIL25, engine.ProfileRIL100} {
		profile, ok := eng.Profile(code)
		require.True(t, ok)

		results := engine.NewValidator().ValidatePlan(profile, DefaultPlan(code))
		assert.True(t, results.IsValid, "profile %s: %v", code, results.Errors)
	}
}
