// Package export renders simulation runs and comparison tables into the
// document formats the classroom materials are distributed in.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/forestlab/rilsim/internal/engine"
	"github.com/forestlab/rilsim/internal/scenario"
)

// CSVOptions configures CSV export behavior.
type CSVOptions struct {
	Delimiter     rune `json:"delimiter"`
	UseCRLF       bool `json:"use_crlf"`
	IncludeHeader bool `json:"include_header"`
}

// DefaultCSVOptions returns default CSV export options.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Delimiter:     ',',
		IncludeHeader: true,
	}
}

// CSVExporter writes runs and comparison tables as CSV.
type CSVExporter struct {
	options CSVOptions
}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter(options CSVOptions) *CSVExporter {
	if options.Delimiter == 0 {
		options.Delimiter = ','
	}
	return &CSVExporter{options: options}
}

func (e *CSVExporter) newWriter(w io.Writer) *csv.Writer {
	writer := csv.NewWriter(w)
	writer.Comma = e.options.Delimiter
	writer.UseCRLF = e.options.UseCRLF
	return writer
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// WriteTrajectory writes the carbon trajectory of one run, one row per
// sample year.
func (e *CSVExporter) WriteTrajectory(w io.Writer, result *engine.RunResult) error {
	writer := e.newWriter(w)

	if e.options.IncludeHeader {
		if err := writer.Write([]string{"year", "baseline", "carbon", "difference"}); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for _, point := range result.Trajectory {
		record := []string{
			strconv.Itoa(point.Year),
			formatFloat(point.Baseline),
			formatFloat(point.Value),
			formatFloat(point.Difference),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteComparison writes a strategy comparison table.
func (e *CSVExporter) WriteComparison(w io.Writer, table *scenario.ComparisonTable) error {
	writer := e.newWriter(w)

	if e.options.IncludeHeader {
		header := []string{
			"strategy", "operations", "total_harvested", "wood_products",
			"final_carbon", "pct_of_baseline", "tier", "final_score",
		}
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for _, row := range table.Rows {
		record := []string{
			row.StrategyName,
			strconv.Itoa(row.Operations),
			formatFloat(row.TotalHarvested),
			formatFloat(row.WoodProducts),
			formatFloat(row.FinalCarbon),
			formatFloat(row.PctOfBaseline),
			row.Tier,
			formatFloat(row.FinalScore),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
