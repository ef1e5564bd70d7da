package engine

// Score derives the gamified outcome of a run. Harvested volume cannot be
// read off the trajectory because its points store post-harvest carbon, so
// the scorer re-walks the plan with the same firing policy and tie-break as
// Simulate, accumulating each cut from the carbon standing immediately
// before it. The final carbon comes from the trajectory itself, keeping the
// score consistent with what the chart shows.
func (p Profile) Score(trajectory Trajectory, ops []Operation) ScoreResult {
	carbon := p.Baseline
	totalHarvested := 0.0

	for i := 1; i < p.Samples(); i++ {
		year := i * p.StepYears
		if op, ok := p.firingOperation(ops, year); ok {
			totalHarvested += carbon * op.IntensityPct / 100
			carbon = carbon * (1 - op.IntensityPct/100)
		} else {
			carbon = p.Recover(carbon, p.StepYears)
		}
	}

	finalCarbon := trajectory.Final().Value
	pct := finalCarbon / p.Baseline * 100

	woodProducts := totalHarvested * p.RetentionFraction
	baseScore := woodProducts * p.RewardMultiplier

	tier := p.Classify(pct)

	result := ScoreResult{
		FinalCarbon:    finalCarbon,
		PctOfBaseline:  pct,
		TotalHarvested: totalHarvested,
		WoodProducts:   woodProducts,
		BaseScore:      baseScore,
		Tier:           tier.Code,
		Status:         tier.Label,
		StatusColor:    tier.Color,
	}

	switch {
	case tier.Forfeit:
		result.FinalScore = 0
	case tier.Modifier >= 0:
		result.Bonus = tier.Modifier
		result.FinalScore = baseScore + tier.Modifier
	default:
		result.Penalty = tier.Modifier
		result.FinalScore = baseScore + tier.Modifier
	}

	result.Rating = p.Rating(result.FinalScore)

	return result
}

// Run simulates a plan and scores it in one call.
func (p Profile) Run(ops []Operation) (Trajectory, ScoreResult) {
	trajectory := p.Simulate(ops)
	return trajectory, p.Score(trajectory, ops)
}
