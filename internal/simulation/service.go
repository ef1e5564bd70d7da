// Package simulation exposes the logging-simulation engine to presentation
// collaborators over HTTP. The engine stays pure; this package owns no
// simulation state of its own.
package simulation

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/forestlab/rilsim/internal/engine"
	"github.com/forestlab/rilsim/internal/scenario"
)

// ErrUnknownProfile marks lookups of unregistered profile codes.
var ErrUnknownProfile = errors.New("unknown profile")

// Service coordinates engine runs, presets and comparisons for the HTTP
// and websocket surfaces.
type Service struct {
	engine         *engine.Engine
	comparator     *scenario.Comparator
	defaultProfile string
	logger         *zap.Logger
}

// NewService creates a new simulation service.
func NewService(eng *engine.Engine, defaultProfile string, logger *zap.Logger) *Service {
	return &Service{
		engine:         eng,
		comparator:     scenario.NewComparator(eng, logger),
		defaultProfile: defaultProfile,
		logger:         logger,
	}
}

// Engine exposes the underlying engine for collaborators that run it
// directly (the live websocket sessions).
func (s *Service) Engine() *engine.Engine {
	return s.engine
}

// resolve fills in the default profile and checks the code is registered.
func (s *Service) resolve(code string) (string, error) {
	if code == "" {
		code = s.defaultProfile
	}
	if _, ok := s.engine.Profile(code); !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownProfile, code)
	}
	return code, nil
}

// Run validates, simulates and scores one request.
func (s *Service) Run(req *SimulateRequest) (*engine.RunResult, error) {
	code, err := s.resolve(req.Profile)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Run(&engine.RunRequest{
		ProfileCode: code,
		Operations:  req.Operations,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("simulation run",
		zap.String("profile", code),
		zap.Int("operations", len(req.Operations)),
		zap.Float64("final_score", result.Score.FinalScore),
		zap.String("tier", result.Score.Tier))

	return result, nil
}

// Validate checks a request without executing it.
func (s *Service) Validate(req *SimulateRequest) (*engine.ValidationResults, error) {
	code, err := s.resolve(req.Profile)
	if err != nil {
		return nil, err
	}
	return s.engine.Validate(&engine.RunRequest{
		ProfileCode: code,
		Operations:  req.Operations,
	}), nil
}

// Profiles lists the registered profiles.
func (s *Service) Profiles() []ProfileSummary {
	profiles := s.engine.Profiles()
	out := make([]ProfileSummary, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, summarize(p))
	}
	return out
}

// ProfileDetail returns one profile with chart helpers.
func (s *Service) ProfileDetail(code string) (*ProfileDetail, error) {
	code, err := s.resolve(code)
	if err != nil {
		return nil, err
	}
	p, _ := s.engine.Profile(code)
	d := detail(p)
	return &d, nil
}

// Presets returns the default plan and fixed strategies for a profile.
func (s *Service) Presets(code string) (*scenario.Presets, error) {
	code, err := s.resolve(code)
	if err != nil {
		return nil, err
	}
	presets := scenario.PresetsFor(code)
	return &presets, nil
}

// Compare builds the fixed-strategy comparison table for a profile.
func (s *Service) Compare(code string) (*scenario.ComparisonTable, error) {
	code, err := s.resolve(code)
	if err != nil {
		return nil, err
	}
	return s.comparator.Compare(code)
}
