package engine

// Simulate builds the carbon-stock trajectory for a logging plan. The run
// starts at the equilibrium baseline in year 0 and advances one sample per
// profile step up to the horizon. At each sample exactly one transition
// happens: either the single firing operation for that step removes its
// intensity share of the standing carbon, or one recovery step is applied.
//
// Which operation fires at a sample is decided by the profile's timing
// policy (see TimingPolicy); when several operations share a trigger year,
// the first one in plan order wins and the rest are ignored for that step.
// Operations with zero intensity or a trigger year outside [0, horizon)
// never fire.
func (p Profile) Simulate(ops []Operation) Trajectory {
	trajectory := make(Trajectory, 0, p.Samples())
	carbon := p.Baseline
	trajectory = append(trajectory, TrajectoryPoint{
		Year:     0,
		Baseline: p.Baseline,
		Value:    carbon,
	})

	for i := 1; i < p.Samples(); i++ {
		year := i * p.StepYears
		if op, ok := p.firingOperation(ops, year); ok {
			carbon = carbon * (1 - op.IntensityPct/100)
		} else {
			carbon = p.Recover(carbon, p.StepYears)
		}
		trajectory = append(trajectory, TrajectoryPoint{
			Year:       year,
			Baseline:   p.Baseline,
			Value:      carbon,
			Difference: carbon - p.Baseline,
		})
	}

	return trajectory
}

// decisionYear maps a sample year onto the operation trigger year that
// fires at it. Under one-step-delay a cut planned for year Y only shows up
// at the following sample.
func (p Profile) decisionYear(sampleYear int) int {
	if p.Timing == TimingOneStepDelay {
		return sampleYear - p.StepYears
	}
	return sampleYear
}

// firingOperation returns the operation executing at the given sample
// year, if any. First match in plan order wins.
func (p Profile) firingOperation(ops []Operation, sampleYear int) (Operation, bool) {
	decision := p.decisionYear(sampleYear)
	for _, op := range ops {
		if !op.Active() {
			continue
		}
		if op.Year < 0 || op.Year >= p.HorizonYears {
			continue
		}
		if op.Year == decision {
			return op, true
		}
	}
	return Operation{}, false
}
