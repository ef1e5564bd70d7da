package engine

// Recover applies the biomass recovery model to a carbon stock over an
// elapsed duration in years. Recovery is a discrete exponential approach
// to the equilibrium baseline:
//
//	carbon' = carbon + k * (baseline - carbon)
//
// applied once per whole profile step contained in elapsedYears. Any
// remainder below one full step is dropped, not interpolated. The
// equilibrium is a fixed point: a stock already at the baseline stays
// there, and a stock below it increases toward the baseline without ever
// overshooting.
func (p Profile) Recover(carbon float64, elapsedYears int) float64 {
	if elapsedYears < 0 {
		return carbon
	}
	steps := elapsedYears / p.StepYears
	for i := 0; i < steps; i++ {
		carbon += p.RecoveryK * (p.Baseline - carbon)
	}
	return carbon
}
