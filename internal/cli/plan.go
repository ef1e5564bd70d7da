package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forestlab/rilsim/internal/engine"
	"github.com/forestlab/rilsim/internal/simulation"
)

// parseOperation parses one --op flag value of the form "year:intensity",
// e.g. "10:25" for a 25% cut starting in year 10.
func parseOperation(s string) (engine.Operation, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return engine.Operation{}, fmt.Errorf("invalid operation %q, expected year:intensity", s)
	}

	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return engine.Operation{}, fmt.Errorf("invalid year in operation %q: %w", s, err)
	}

	intensity, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return engine.Operation{}, fmt.Errorf("invalid intensity in operation %q: %w", s, err)
	}

	return engine.Operation{Year: year, IntensityPct: intensity}, nil
}

func parseOperations(values []string) ([]engine.Operation, error) {
	ops := make([]engine.Operation, 0, len(values))
	for _, v := range values {
		op, err := parseOperation(v)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// planFromFlags builds the logging plan for run and export: either the
// repeated --op flags, or the profile's default plan when --default-plan
// is set and no --op was given.
func planFromFlags(cmd *cobra.Command, service *simulation.Service) ([]engine.Operation, error) {
	values, _ := cmd.Flags().GetStringArray("op")
	ops, err := parseOperations(values)
	if err != nil {
		return nil, err
	}

	useDefault, _ := cmd.Flags().GetBool("default-plan")
	if useDefault {
		if len(ops) > 0 {
			return nil, fmt.Errorf("--default-plan cannot be combined with --op")
		}
		presets, err := service.Presets(flagProfile)
		if err != nil {
			return nil, err
		}
		return presets.DefaultPlan, nil
	}

	return ops, nil
}
