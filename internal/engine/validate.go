package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation marks run rejections caused by a malformed logging
// plan. Callers can match it with errors.Is.
var ErrInvalidOperation = errors.New("invalid logging operation")

// ValidationError is a field-level problem with a run request.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ValidationResults aggregates the outcome of checking a run request
// without executing it.
type ValidationResults struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors"`
}

// Validator checks logging plans against a profile's input domain before
// they reach the simulation. The simulation itself is total over valid
// input; malformed plans are rejected here atomically.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePlan checks a logging plan against a profile. It collects every
// problem rather than stopping at the first, so a planning UI can surface
// all of them at once.
func (v *Validator) ValidatePlan(p Profile, ops []Operation) *ValidationResults {
	results := &ValidationResults{IsValid: true}

	add := func(field, message, code string) {
		results.IsValid = false
		results.Errors = append(results.Errors, ValidationError{Field: field, Message: message, Code: code})
	}

	if p.Limits.MaxOperations > 0 && len(ops) > p.Limits.MaxOperations {
		add("operations",
			fmt.Sprintf("at most %d operations are allowed", p.Limits.MaxOperations),
			"TOO_MANY_OPERATIONS")
	}

	seen := make(map[int]bool)
	for i, op := range ops {
		field := fmt.Sprintf("operations[%d]", i)

		if op.Year < 0 {
			add(field+".year", "year must be non-negative", "NEGATIVE_YEAR")
		}
		if op.IntensityPct < 0 || op.IntensityPct > 100 {
			add(field+".intensity_pct", "intensity must be between 0 and 100", "INTENSITY_OUT_OF_RANGE")
		}
		if p.Limits.MaxYear > 0 && op.Year > p.Limits.MaxYear {
			add(field+".year",
				fmt.Sprintf("year must not exceed %d", p.Limits.MaxYear),
				"YEAR_OUT_OF_RANGE")
		}
		if p.Limits.MaxIntensityPct > 0 && op.IntensityPct > p.Limits.MaxIntensityPct {
			add(field+".intensity_pct",
				fmt.Sprintf("intensity must not exceed %.0f%%", p.Limits.MaxIntensityPct),
				"INTENSITY_OUT_OF_RANGE")
		}

		// An operation whose year never coincides with a harvest decision
		// would pass every range check and then silently do nothing, so
		// the boundary rejects it instead.
		if op.Active() && op.Year >= 0 && !p.CanFire(op.Year) {
			add(field+".year",
				fmt.Sprintf("no sample of this profile can execute a harvest planned for year %d", op.Year),
				"YEAR_NEVER_FIRES")
		}

		// Duplicate trigger years would silently lose all but the first
		// operation to the tie-break rule, so the boundary rejects them.
		if op.Active() {
			if seen[op.Year] {
				add(field+".year",
					fmt.Sprintf("duplicate trigger year %d", op.Year),
					"DUPLICATE_YEAR")
			}
			seen[op.Year] = true
		}
	}

	return results
}

// Err converts failed results into an error wrapping ErrInvalidOperation,
// or nil when the plan is valid.
func (r *ValidationResults) Err() error {
	if r.IsValid {
		return nil
	}
	first := r.Errors[0]
	return fmt.Errorf("%w: %s: %s", ErrInvalidOperation, first.Field, first.Message)
}
