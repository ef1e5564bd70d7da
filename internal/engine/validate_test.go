package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePlanAcceptsDefaultExercise(t *testing.T) {
	p := annualProfile(t)

	results := NewValidator().ValidatePlan(p, []Operation{
		{Year: 0, IntensityPct: 10},
		{Year: 10, IntensityPct: 10},
		{Year: 15, IntensityPct: 0},
	})

	assert.True(t, results.IsValid)
	assert.Empty(t, results.Errors)
	assert.NoError(t, results.Err())
}

func TestValidatePlanRejectsMalformedOperations(t *testing.T) {
	p := annualProfile(t)
	v := NewValidator()

	tests := []struct {
		name string
		ops  []Operation
		code string
	}{
		{"negative year", []Operation{{Year: -1, IntensityPct: 10}}, "NEGATIVE_YEAR"},
		{"intensity above 100", []Operation{{Year: 0, IntensityPct: 120}}, "INTENSITY_OUT_OF_RANGE"},
		{"negative intensity", []Operation{{Year: 0, IntensityPct: -5}}, "INTENSITY_OUT_OF_RANGE"},
		{"beyond slider year", []Operation{{Year: 24, IntensityPct: 10}}, "YEAR_OUT_OF_RANGE"},
		{"beyond slider intensity", []Operation{{Year: 0, IntensityPct: 30}}, "INTENSITY_OUT_OF_RANGE"},
		{
			"duplicate trigger years",
			[]Operation{{Year: 5, IntensityPct: 10}, {Year: 5, IntensityPct: 15}},
			"DUPLICATE_YEAR",
		},
		{
			"too many operations",
			[]Operation{{Year: 0, IntensityPct: 5}, {Year: 5, IntensityPct: 5}, {Year: 10, IntensityPct: 5}, {Year: 15, IntensityPct: 5}},
			"TOO_MANY_OPERATIONS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := v.ValidatePlan(p, tt.ops)
			require.False(t, results.IsValid)
			require.Error(t, results.Err())
			assert.ErrorIs(t, results.Err(), ErrInvalidOperation)

			codes := make([]string, 0, len(results.Errors))
			for _, e := range results.Errors {
				codes = append(codes, e.Code)
			}
			assert.Contains(t, codes, tt.code)
		})
	}
}

func TestValidatePlanAllowsDuplicateYearWhenOneIsInert(t *testing.T) {
	p := annualProfile(t)

	// A zero-intensity placeholder never fires, so it cannot collide.
	results := NewValidator().ValidatePlan(p, []Operation{
		{Year: 15, IntensityPct: 0},
		{Year: 15, IntensityPct: 10},
	})

	assert.True(t, results.IsValid)
}

func TestValidatePlanRejectsYearsThatNeverFire(t *testing.T) {
	p := fiveYearProfile(t)
	v := NewValidator()

	// Under same-step timing the first harvest decision is the first
	// sample, and decisions only land on the step grid; years that miss
	// every decision would silently harvest nothing.
	for _, year := range []int{0, 3, 93} {
		results := v.ValidatePlan(p, []Operation{{Year: year, IntensityPct: 10}})
		require.False(t, results.IsValid, "year %d", year)

		codes := make([]string, 0, len(results.Errors))
		for _, e := range results.Errors {
			codes = append(codes, e.Code)
		}
		assert.Contains(t, codes, "YEAR_NEVER_FIRES", "year %d", year)
	}

	results := v.ValidatePlan(p, []Operation{{Year: 5, IntensityPct: 10}})
	assert.True(t, results.IsValid)

	// Year 0 is a real decision under one-step-delay, and inert
	// placeholders are exempt on any grid.
	results = NewValidator().ValidatePlan(annualProfile(t), []Operation{{Year: 0, IntensityPct: 10}})
	assert.True(t, results.IsValid)
	results = v.ValidatePlan(p, []Operation{{Year: 3, IntensityPct: 0}})
	assert.True(t, results.IsValid)
}

func TestValidatePlanCollectsAllErrors(t *testing.T) {
	p := annualProfile(t)

	results := NewValidator().ValidatePlan(p, []Operation{
		{Year: -1, IntensityPct: 120},
	})

	require.False(t, results.IsValid)
	assert.GreaterOrEqual(t, len(results.Errors), 2)
}
