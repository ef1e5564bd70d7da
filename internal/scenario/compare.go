package scenario

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/forestlab/rilsim/internal/engine"
)

// Comparator runs the fixed strategies of a profile side by side so a
// player can benchmark their own plan against them.
type Comparator struct {
	engine *engine.Engine
	logger *zap.Logger
}

// NewComparator creates a new comparator.
func NewComparator(eng *engine.Engine, logger *zap.Logger) *Comparator {
	return &Comparator{engine: eng, logger: logger}
}

// ComparisonRow is one strategy's outcome in the comparison table.
type ComparisonRow struct {
	StrategyCode   string  `json:"strategy"`
	StrategyName   string  `json:"name"`
	Operations     int     `json:"operations"`
	TotalHarvested float64 `json:"total_harvested"`
	WoodProducts   float64 `json:"wood_products"`
	FinalCarbon    float64 `json:"final_carbon"`
	PctOfBaseline  float64 `json:"pct_of_baseline"`
	Tier           string  `json:"tier"`
	Status         string  `json:"status"`
	FinalScore     float64 `json:"final_score"`
}

// ComparisonTable is the outcome of every fixed strategy under one
// profile, ordered by final score descending (ties broken by name).
type ComparisonTable struct {
	ProfileCode string          `json:"profile"`
	Rows        []ComparisonRow `json:"rows"`
}

// Compare runs every fixed strategy of the profile through the engine.
// Each run is an independent pure computation; row order is the only
// post-processing.
func (c *Comparator) Compare(profileCode string) (*ComparisonTable, error) {
	if _, ok := c.engine.Profile(profileCode); !ok {
		return nil, fmt.Errorf("unknown profile: %s", profileCode)
	}

	strategies := Strategies(profileCode)
	table := &ComparisonTable{
		ProfileCode: profileCode,
		Rows:        make([]ComparisonRow, 0, len(strategies)),
	}

	for _, strategy := range strategies {
		result, err := c.engine.Run(&engine.RunRequest{
			ProfileCode: profileCode,
			Operations:  strategy.Operations,
		})
		if err != nil {
			// Fixed strategies are maintained alongside the profile
			// limits; a failure here is a content bug worth surfacing.
			return nil, fmt.Errorf("strategy %s: %w", strategy.Code, err)
		}

		active := 0
		for _, op := range strategy.Operations {
			if op.Active() {
				active++
			}
		}

		table.Rows = append(table.Rows, ComparisonRow{
			StrategyCode:   strategy.Code,
			StrategyName:   strategy.Name,
			Operations:     active,
			TotalHarvested: result.Score.TotalHarvested,
			WoodProducts:   result.Score.WoodProducts,
			FinalCarbon:    result.Score.FinalCarbon,
			PctOfBaseline:  result.Score.PctOfBaseline,
			Tier:           result.Score.Tier,
			Status:         result.Score.Status,
			FinalScore:     result.Score.FinalScore,
		})
	}

	sort.SliceStable(table.Rows, func(i, j int) bool {
		if table.Rows[i].FinalScore != table.Rows[j].FinalScore {
			return table.Rows[i].FinalScore > table.Rows[j].FinalScore
		}
		return table.Rows[i].StrategyName < table.Rows[j].StrategyName
	})

	c.logger.Debug("comparison table built",
		zap.String("profile", profileCode),
		zap.Int("strategies", len(table.Rows)))

	return table, nil
}
