package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineRegistersBuiltins(t *testing.T) {
	e := NewEngine()

	profiles := e.Profiles()
	require.Len(t, profiles, 2)
	assert.Equal(t, ProfileRIL25, profiles[0].Code)
	assert.Equal(t, ProfileRIL100, profiles[1].Code)
}

func TestEngineRunHappyPath(t *testing.T) {
	e := NewEngine()

	result, err := e.Run(&RunRequest{
		ProfileCode: ProfileRIL25,
		Operations:  []Operation{{Year: 0, IntensityPct: 10}, {Year: 10, IntensityPct: 10}},
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, result.RunID)
	assert.Equal(t, ProfileRIL25, result.ProfileCode)
	assert.Len(t, result.Trajectory, 26)
	assert.Greater(t, result.Score.TotalHarvested, 0.0)
	assert.False(t, result.GeneratedAt.IsZero())
}

func TestEngineRunUnknownProfile(t *testing.T) {
	e := NewEngine()

	result, err := e.Run(&RunRequest{ProfileCode: "ril-404"})

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestEngineRunRejectsInvalidPlanAtomically(t *testing.T) {
	e := NewEngine()

	result, err := e.Run(&RunRequest{
		ProfileCode: ProfileRIL25,
		Operations:  []Operation{{Year: 0, IntensityPct: 120}},
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestEngineValidateReportsUnknownProfile(t *testing.T) {
	e := NewEngine()

	results := e.Validate(&RunRequest{ProfileCode: "nope"})

	require.False(t, results.IsValid)
	assert.Equal(t, "UNKNOWN_PROFILE", results.Errors[0].Code)
}

func TestEngineRegisterRejectsBadProfiles(t *testing.T) {
	e := NewEngine()

	assert.Error(t, e.Register(Profile{}), "missing code")

	dup, _ := e.Profile(ProfileRIL25)
	assert.Error(t, e.Register(dup), "duplicate code")

	bad := dup
	bad.Code = "ragged"
	bad.StepYears = 7 // horizon 25 is not a multiple
	assert.Error(t, e.Register(bad))

	noCatchAll := dup
	noCatchAll.Code = "no-catch-all"
	noCatchAll.Tiers = []Tier{{Code: "sustainable", FloorPct: 95}}
	assert.Error(t, e.Register(noCatchAll))
}

func TestEngineRegisterCustomProfile(t *testing.T) {
	e := NewEngine()

	custom, _ := e.Profile(ProfileRIL25)
	custom.Code = "workshop"
	custom.HorizonYears = 10

	require.NoError(t, e.Register(custom))

	result, err := e.Run(&RunRequest{ProfileCode: "workshop"})
	require.NoError(t, err)
	assert.Len(t, result.Trajectory, 11)
}
