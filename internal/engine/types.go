package engine

// Operation represents a single planned harvest entry: the year the
// operation starts and the share of standing carbon removed by it.
type Operation struct {
	Year         int     `json:"year"`
	IntensityPct float64 `json:"intensity_pct"`
}

// Active reports whether the operation can ever fire. Operations with
// zero intensity are placeholders from the planning UI and never execute.
func (o Operation) Active() bool {
	return o.IntensityPct > 0
}

// TrajectoryPoint is one sample of the carbon-stock time series.
// Baseline is the undisturbed old-growth equilibrium and is constant
// across the whole trajectory.
type TrajectoryPoint struct {
	Year       int     `json:"year"`
	Baseline   float64 `json:"baseline"`
	Value      float64 `json:"value"`
	Difference float64 `json:"difference"`
}

// Trajectory is the full carbon-stock time series of one simulation run,
// one point per sample year from 0 to the horizon inclusive.
type Trajectory []TrajectoryPoint

// Final returns the last sample of the trajectory.
func (t Trajectory) Final() TrajectoryPoint {
	if len(t) == 0 {
		return TrajectoryPoint{}
	}
	return t[len(t)-1]
}

// TimingPolicy controls when a planned operation becomes visible in the
// trajectory. The two profiles genuinely disagree on this, so it is
// configuration rather than behavior baked into the simulator.
type TimingPolicy string

const (
	// TimingSameStep fires an operation at the sample whose year equals
	// the operation year.
	TimingSameStep TimingPolicy = "same-step"

	// TimingOneStepDelay fires an operation one sample after its year:
	// the cut takes a full step to execute, so the impact shows up at the
	// following sample.
	TimingOneStepDelay TimingPolicy = "one-step-delay"
)

// Tier is one row of the outcome classifier. Tiers are ordered best to
// worst; a run falls into the first tier whose floor it reaches, so a
// value exactly at a floor lands in the better tier.
type Tier struct {
	Code string `json:"code"`

	// FloorPct is the minimum percent-of-baseline final carbon for this
	// tier. The worst tier carries floor 0 as catch-all.
	FloorPct float64 `json:"floor_pct"`

	// Modifier is added to the base score (positive bonus or negative
	// penalty). Ignored when Forfeit is set.
	Modifier float64 `json:"modifier"`

	// Forfeit zeroes the final score regardless of harvested volume.
	Forfeit bool `json:"forfeit"`

	Label string `json:"label"`
	Color string `json:"color"`
}

// RatingBand maps a minimum final score to a coaching label shown next to
// the score card.
type RatingBand struct {
	MinScore float64 `json:"min_score"`
	Label    string  `json:"label"`
}

// ScoreResult is the complete scoring breakdown for one run.
type ScoreResult struct {
	FinalCarbon    float64 `json:"final_carbon"`
	PctOfBaseline  float64 `json:"pct_of_baseline"`
	TotalHarvested float64 `json:"total_harvested"`
	WoodProducts   float64 `json:"wood_products"`
	BaseScore      float64 `json:"base_score"`
	Bonus          float64 `json:"bonus"`
	Penalty        float64 `json:"penalty"`
	FinalScore     float64 `json:"final_score"`
	Tier           string  `json:"tier"`
	Status         string  `json:"status"`
	StatusColor    string  `json:"status_color"`
	Rating         string  `json:"rating"`
}
