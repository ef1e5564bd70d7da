package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/forestlab/rilsim/internal/engine"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(engine.NewEngine(), engine.ProfileRIL25, zap.NewNop())
}

func TestServiceRunFillsDefaultProfile(t *testing.T) {
	s := newService(t)

	result, err := s.Run(&SimulateRequest{
		Operations: []engine.Operation{{Year: 0, IntensityPct: 10}},
	})

	require.NoError(t, err)
	assert.Equal(t, engine.ProfileRIL25, result.ProfileCode)
	assert.Len(t, result.Trajectory, 26)
}

func TestServiceRunUnknownProfile(t *testing.T) {
	s := newService(t)

	result, err := s.Run(&SimulateRequest{Profile: "ril-404"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestServiceRunInvalidPlan(t *testing.T) {
	s := newService(t)

	result, err := s.Run(&SimulateRequest{
		Operations: []engine.Operation{{Year: 0, IntensityPct: 150}},
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, engine.ErrInvalidOperation)
}

func TestServiceValidateReportsProblemsWithoutError(t *testing.T) {
	s := newService(t)

	results, err := s.Validate(&SimulateRequest{
		Operations: []engine.Operation{{Year: -1, IntensityPct: 10}},
	})

	require.NoError(t, err)
	assert.False(t, results.IsValid)
	assert.NotEmpty(t, results.Errors)
}

func TestServiceProfileDetailThresholdLines(t *testing.T) {
	s := newService(t)

	d, err := s.ProfileDetail(engine.ProfileRIL25)
	require.NoError(t, err)

	require.Len(t, d.ThresholdLines, 2)
	assert.Equal(t, 285.0, d.ThresholdLines[0].Carbon)
	assert.Equal(t, 270.0, d.ThresholdLines[1].Carbon)
}

func TestServiceProfilesAndPresets(t *testing.T) {
	s := newService(t)

	profiles := s.Profiles()
	require.Len(t, profiles, 2)

	presets, err := s.Presets("")
	require.NoError(t, err)
	assert.Equal(t, engine.ProfileRIL25, presets.ProfileCode)
	assert.NotEmpty(t, presets.Strategies)
}

func TestServiceCompare(t *testing.T) {
	s := newService(t)

	table, err := s.Compare(engine.ProfileRIL100)
	require.NoError(t, err)
	assert.Equal(t, engine.ProfileRIL100, table.ProfileCode)
	assert.NotEmpty(t, table.Rows)
}
