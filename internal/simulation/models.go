package simulation

import (
	"github.com/forestlab/rilsim/internal/engine"
)

// SimulateRequest is the body of simulate/validate/export calls. An empty
// profile falls back to the configured default. Operations carry no
// binding rules on purpose: the validate endpoint must be able to report
// out-of-range values as ValidationResults instead of a bind rejection.
type SimulateRequest struct {
	Profile    string             `json:"profile"`
	Operations []engine.Operation `json:"operations"`
}

// ProfileSummary is the listing form of a profile: enough for a client to
// populate its profile picker without the full tier tables.
type ProfileSummary struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	StepYears    int    `json:"step_years"`
	HorizonYears int    `json:"horizon_years"`
	Timing       string `json:"timing_policy"`
}

// ProfileDetail is the full profile plus derived chart helpers.
type ProfileDetail struct {
	engine.Profile
	// ThresholdLines are the tier floors in absolute carbon units, best
	// tier first, for drawing horizontal threshold lines on the chart.
	ThresholdLines []ThresholdLine `json:"threshold_lines"`
}

// ThresholdLine is one tier floor expressed in carbon units.
type ThresholdLine struct {
	Tier   string  `json:"tier"`
	Carbon float64 `json:"carbon"`
	Pct    float64 `json:"pct"`
	Color  string  `json:"color"`
}

func summarize(p engine.Profile) ProfileSummary {
	return ProfileSummary{
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		StepYears:    p.StepYears,
		HorizonYears: p.HorizonYears,
		Timing:       string(p.Timing),
	}
}

func detail(p engine.Profile) ProfileDetail {
	d := ProfileDetail{Profile: p}
	for _, tier := range p.Tiers {
		if tier.FloorPct <= 0 {
			continue // the catch-all floor draws no line
		}
		d.ThresholdLines = append(d.ThresholdLines, ThresholdLine{
			Tier:   tier.Code,
			Carbon: p.ThresholdCarbon(tier),
			Pct:    tier.FloorPct,
			Color:  tier.Color,
		})
	}
	return d
}
