package engine

// OperationLimits bounds the logging plans a profile accepts. These mirror
// the planning sliders of the original exercise; the simulation itself is
// defined for any intensity in [0,100].
type OperationLimits struct {
	MaxOperations   int     `json:"max_operations"`
	MaxYear         int     `json:"max_year"`
	MaxIntensityPct float64 `json:"max_intensity_pct"`
}

// Profile is the full configuration of one engine variant. The engine
// itself is a single implementation; the 25-year annual exercise and the
// 100-year five-year exercise are two Profile values.
type Profile struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`

	StepYears    int `json:"step_years"`
	HorizonYears int `json:"horizon_years"`

	// Baseline is the old-growth equilibrium carbon stock (Mg C/ha).
	Baseline float64 `json:"baseline"`

	// RecoveryK is the fraction of the gap to equilibrium closed per step.
	RecoveryK float64 `json:"recovery_k"`

	Timing TimingPolicy `json:"timing_policy"`

	// RetentionFraction is the share of harvested carbon that stays
	// sequestered in long-lived wood products.
	RetentionFraction float64 `json:"retention_fraction"`

	// RewardMultiplier converts wood products into base score points.
	RewardMultiplier float64 `json:"reward_multiplier"`

	// Tiers is the outcome classifier, ordered best tier first. The last
	// entry must carry floor 0.
	Tiers []Tier `json:"tiers"`

	RatingBands []RatingBand `json:"rating_bands"`

	Limits OperationLimits `json:"limits"`
}

// Samples returns the number of trajectory points a run produces.
func (p Profile) Samples() int {
	return p.HorizonYears/p.StepYears + 1
}

// Classify maps a percent-of-baseline final carbon onto the profile's tier
// table. Boundaries are half-open: a value exactly at a tier floor belongs
// to that (better) tier.
func (p Profile) Classify(pctOfBaseline float64) Tier {
	for _, tier := range p.Tiers {
		if pctOfBaseline >= tier.FloorPct {
			return tier
		}
	}
	// Tier tables end with a floor-0 catch-all, so this is only reachable
	// for negative carbon; treat it as the worst tier.
	return p.Tiers[len(p.Tiers)-1]
}

// Rating maps a final score onto the profile's coaching bands.
func (p Profile) Rating(finalScore float64) string {
	for _, band := range p.RatingBands {
		if finalScore >= band.MinScore {
			return band.Label
		}
	}
	return "Needs Improvement"
}

// ImpactYear returns the sample year at which an operation's cut becomes
// visible in the trajectory, for chart annotations.
func (p Profile) ImpactYear(op Operation) int {
	if p.Timing == TimingOneStepDelay {
		return op.Year + p.StepYears
	}
	return op.Year
}

// CanFire reports whether an operation planned for the given year can
// trigger a harvest at any sample of this profile. Years off the step
// grid or outside [0, horizon) never coincide with a decision; under
// same-step timing year 0 is the untouched starting point, so the first
// firing year is the first step.
func (p Profile) CanFire(year int) bool {
	if year < 0 || year >= p.HorizonYears {
		return false
	}
	if year%p.StepYears != 0 {
		return false
	}
	if p.Timing == TimingSameStep && year < p.StepYears {
		return false
	}
	return true
}

// ThresholdCarbon converts a tier floor into absolute carbon units, for
// drawing threshold lines alongside the trajectory.
func (p Profile) ThresholdCarbon(tier Tier) float64 {
	return tier.FloorPct / 100 * p.Baseline
}

// Built-in profile codes.
const (
	ProfileRIL25  = "ril-25"
	ProfileRIL100 = "ril-100"
)

// builtinProfiles returns the two shipped exercise variants.
//
// ril-25 is the classroom exercise: 25 years sampled annually, logging
// takes a year to complete so its impact appears the sample after the
// operation year. ril-100 is the long-horizon concession variant: 100
// years sampled every 5 years, cuts visible within the same sample, and a
// stricter sustainability bar with higher stakes.
func builtinProfiles() []Profile {
	return []Profile{
		{
			Code:              ProfileRIL25,
			Name:              "25-Year Annual Exercise",
			Description:       "Annual sampling over 25 years; impact appears the year after the operation starts.",
			StepYears:         1,
			HorizonYears:      25,
			Baseline:          300,
			RecoveryK:         0.0825,
			Timing:            TimingOneStepDelay,
			RetentionFraction: 0.4,
			RewardMultiplier:  1.2,
			Tiers: []Tier{
				{Code: "sustainable", FloorPct: 95, Modifier: 10, Label: "Sustainable (≥95%)", Color: "green"},
				{Code: "moderate", FloorPct: 90, Modifier: -30, Label: "Moderate Degradation (<95%)", Color: "orange"},
				{Code: "severe", FloorPct: 0, Forfeit: true, Label: "GAME OVER - Severe Degradation (<90%)", Color: "red"},
			},
			RatingBands: []RatingBand{
				{MinScore: 50, Label: "Excellent"},
				{MinScore: 40, Label: "Good"},
				{MinScore: 30, Label: "Fair"},
			},
			Limits: OperationLimits{
				MaxOperations:   3,
				MaxYear:         20,
				MaxIntensityPct: 25,
			},
		},
		{
			Code:              ProfileRIL100,
			Name:              "100-Year Concession Exercise",
			Description:       "Five-year sampling over a century; cuts are visible within the same sample period.",
			StepYears:         5,
			HorizonYears:      100,
			Baseline:          300,
			RecoveryK:         0.12,
			Timing:            TimingSameStep,
			RetentionFraction: 0.4,
			RewardMultiplier:  2.0,
			Tiers: []Tier{
				{Code: "sustainable", FloorPct: 97, Modifier: 25, Label: "Sustainable (≥97%)", Color: "green"},
				{Code: "moderate", FloorPct: 90, Modifier: -50, Label: "Moderate Degradation (<97%)", Color: "orange"},
				{Code: "severe", FloorPct: 0, Forfeit: true, Label: "GAME OVER - Severe Degradation (<90%)", Color: "red"},
			},
			RatingBands: []RatingBand{
				{MinScore: 100, Label: "Excellent"},
				{MinScore: 80, Label: "Good"},
				{MinScore: 60, Label: "Fair"},
			},
			Limits: OperationLimits{
				MaxOperations:   5,
				MaxYear:         95,
				MaxIntensityPct: 25,
			},
		},
	}
}
