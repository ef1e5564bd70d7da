// Package scenario carries the canned content of the exercise: the default
// logging plan handed to a new player and the fixed named strategies used
// by the comparison table. These are literal plans, not the output of any
// optimizer.
package scenario

import (
	"github.com/forestlab/rilsim/internal/engine"
)

// Strategy is a named, fixed logging plan.
type Strategy struct {
	Code       string             `json:"code"`
	Name       string             `json:"name"`
	Operations []engine.Operation `json:"operations"`
}

// Presets bundles everything a planning UI needs to initialize itself for
// one profile.
type Presets struct {
	ProfileCode string             `json:"profile"`
	DefaultPlan []engine.Operation `json:"default_plan"`
	Strategies  []Strategy         `json:"strategies"`
}

// DefaultPlan returns the plan a fresh session starts from. The third
// zero-intensity entry is the optional slider slot of the original
// exercise.
func DefaultPlan(profileCode string) []engine.Operation {
	switch profileCode {
	case engine.ProfileRIL100:
		// Year 0 is the untouched starting point under same-step timing,
		// so the earliest plannable cut is the first 5-year sample.
		return []engine.Operation{
			{Year: 5, IntensityPct: 10},
			{Year: 50, IntensityPct: 10},
		}
	default:
		return []engine.Operation{
			{Year: 0, IntensityPct: 10},
			{Year: 10, IntensityPct: 10},
			{Year: 15, IntensityPct: 0},
		}
	}
}

// Strategies returns the fixed comparison strategies for a profile, in
// display order.
func Strategies(profileCode string) []Strategy {
	if profileCode == engine.ProfileRIL100 {
		return []Strategy{
			{Code: "no-logging", Name: "No Logging", Operations: nil},
			{Code: "single-heavy", Name: "Single Heavy Entry", Operations: []engine.Operation{
				{Year: 5, IntensityPct: 25},
			}},
			{Code: "two-entry", Name: "Two Moderate Entries", Operations: []engine.Operation{
				{Year: 5, IntensityPct: 15},
				{Year: 50, IntensityPct: 15},
			}},
			{Code: "periodic-light", Name: "Periodic Light Entries", Operations: []engine.Operation{
				{Year: 5, IntensityPct: 10},
				{Year: 30, IntensityPct: 10},
				{Year: 55, IntensityPct: 10},
				{Year: 80, IntensityPct: 10},
			}},
			{Code: "aggressive", Name: "Aggressive Rotation", Operations: []engine.Operation{
				{Year: 5, IntensityPct: 25},
				{Year: 30, IntensityPct: 25},
				{Year: 55, IntensityPct: 25},
				{Year: 80, IntensityPct: 25},
			}},
		}
	}

	return []Strategy{
		{Code: "no-logging", Name: "No Logging", Operations: nil},
		{Code: "single-light", Name: "Single Light Entry", Operations: []engine.Operation{
			{Year: 0, IntensityPct: 10},
		}},
		{Code: "single-heavy", Name: "Single Heavy Entry", Operations: []engine.Operation{
			{Year: 0, IntensityPct: 25},
		}},
		{Code: "two-entry", Name: "Two Moderate Entries", Operations: []engine.Operation{
			{Year: 0, IntensityPct: 10},
			{Year: 10, IntensityPct: 10},
		}},
		{Code: "three-entry", Name: "Three Light Entries", Operations: []engine.Operation{
			{Year: 0, IntensityPct: 10},
			{Year: 10, IntensityPct: 10},
			{Year: 20, IntensityPct: 10},
		}},
		{Code: "aggressive", Name: "Aggressive Rotation", Operations: []engine.Operation{
			{Year: 0, IntensityPct: 25},
			{Year: 10, IntensityPct: 25},
			{Year: 20, IntensityPct: 25},
		}},
	}
}

// PresetsFor assembles the full preset bundle for a profile.
func PresetsFor(profileCode string) Presets {
	return Presets{
		ProfileCode: profileCode,
		DefaultPlan: DefaultPlan(profileCode),
		Strategies:  Strategies(profileCode),
	}
}
