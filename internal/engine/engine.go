// Package engine implements the reduced-impact logging simulation: the
// recovery model, the time-stepped trajectory builder and the tiered
// scorer. Every run is a pure computation from a logging plan to a
// trajectory and score; the engine holds no state between invocations
// beyond its registered profiles.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Engine runs logging simulations against registered profiles.
type Engine struct {
	profiles  map[string]Profile
	order     []string
	validator *Validator
}

// RunRequest is one simulation invocation: a profile and a logging plan.
type RunRequest struct {
	ProfileCode string      `json:"profile" binding:"required"`
	Operations  []Operation `json:"operations"`
}

// RunResult carries everything a presentation collaborator needs to render
// one run: the full trajectory for the chart and the score breakdown for
// the metrics row.
type RunResult struct {
	RunID       uuid.UUID   `json:"run_id"`
	ProfileCode string      `json:"profile"`
	Operations  []Operation `json:"operations"`
	Trajectory  Trajectory  `json:"trajectory"`
	Score       ScoreResult `json:"score"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// NewEngine creates an engine with the built-in exercise profiles
// registered.
func NewEngine() *Engine {
	e := &Engine{
		profiles:  make(map[string]Profile),
		validator: NewValidator(),
	}
	for _, p := range builtinProfiles() {
		// Built-ins are well-formed; Register only fails on duplicates.
		_ = e.Register(p)
	}
	return e
}

// Register adds a profile to the engine. Profile codes are unique.
func (e *Engine) Register(p Profile) error {
	if p.Code == "" {
		return fmt.Errorf("profile code is required")
	}
	if _, exists := e.profiles[p.Code]; exists {
		return fmt.Errorf("profile already registered: %s", p.Code)
	}
	if p.StepYears <= 0 || p.HorizonYears <= 0 || p.HorizonYears%p.StepYears != 0 {
		return fmt.Errorf("profile %s: horizon must be a positive multiple of the step", p.Code)
	}
	if len(p.Tiers) == 0 || p.Tiers[len(p.Tiers)-1].FloorPct != 0 {
		return fmt.Errorf("profile %s: tier table must end with a floor-0 catch-all", p.Code)
	}
	e.profiles[p.Code] = p
	e.order = append(e.order, p.Code)
	return nil
}

// Profile looks up a registered profile by code.
func (e *Engine) Profile(code string) (Profile, bool) {
	p, ok := e.profiles[code]
	return p, ok
}

// Profiles returns all registered profiles in registration order.
func (e *Engine) Profiles() []Profile {
	out := make([]Profile, 0, len(e.order))
	for _, code := range e.order {
		out = append(out, e.profiles[code])
	}
	return out
}

// Validate checks a run request without executing it.
func (e *Engine) Validate(req *RunRequest) *ValidationResults {
	p, ok := e.profiles[req.ProfileCode]
	if !ok {
		return &ValidationResults{
			IsValid: false,
			Errors: []ValidationError{{
				Field:   "profile",
				Message: fmt.Sprintf("unknown profile: %s", req.ProfileCode),
				Code:    "UNKNOWN_PROFILE",
			}},
		}
	}
	return e.validator.ValidatePlan(p, req.Operations)
}

// Run validates, simulates and scores a logging plan. It either returns a
// complete result or fails validation atomically; nothing is retained
// between runs, so identical requests always produce identical
// trajectories and scores.
func (e *Engine) Run(req *RunRequest) (*RunResult, error) {
	p, ok := e.profiles[req.ProfileCode]
	if !ok {
		return nil, fmt.Errorf("unknown profile: %s", req.ProfileCode)
	}

	if results := e.validator.ValidatePlan(p, req.Operations); !results.IsValid {
		return nil, results.Err()
	}

	trajectory, score := p.Run(req.Operations)

	return &RunResult{
		RunID:       uuid.New(),
		ProfileCode: p.Code,
		Operations:  req.Operations,
		Trajectory:  trajectory,
		Score:       score,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
