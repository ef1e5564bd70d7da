package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/forestlab/rilsim/internal/engine"
	"github.com/forestlab/rilsim/internal/scenario"
)

// ExcelOptions configures Excel export behavior.
type ExcelOptions struct {
	FreezeHeader bool    `json:"freeze_header"`
	HeaderFill   string  `json:"header_fill"`
	HeaderFont   string  `json:"header_font"`
	NumberFormat string  `json:"number_format"`
	ColumnWidth  float64 `json:"column_width"`
}

// DefaultExcelOptions returns default Excel export options.
func DefaultExcelOptions() ExcelOptions {
	return ExcelOptions{
		FreezeHeader: true,
		HeaderFill:   "2E7D32",
		HeaderFont:   "FFFFFF",
		NumberFormat: "#,##0.00",
		ColumnWidth:  16,
	}
}

// ExcelExporter builds run and comparison workbooks.
type ExcelExporter struct {
	options ExcelOptions
}

// NewExcelExporter creates a new Excel exporter.
func NewExcelExporter(options ExcelOptions) *ExcelExporter {
	return &ExcelExporter{options: options}
}

// RunWorkbook renders one run as a two-sheet workbook: the full trajectory
// and the score card.
func (e *ExcelExporter) RunWorkbook(result *engine.RunResult) (*excelize.File, error) {
	file := excelize.NewFile()
	file.SetSheetName("Sheet1", "Trajectory")

	header := []string{"Year", "Baseline (Mg C/ha)", "Carbon (Mg C/ha)", "Difference"}
	rows := make([][]interface{}, 0, len(result.Trajectory))
	for _, point := range result.Trajectory {
		rows = append(rows, []interface{}{point.Year, point.Baseline, point.Value, point.Difference})
	}
	if err := e.writeSheet(file, "Trajectory", header, rows); err != nil {
		return nil, err
	}

	if _, err := file.NewSheet("Score"); err != nil {
		return nil, fmt.Errorf("failed to create score sheet: %w", err)
	}
	score := result.Score
	scoreRows := [][]interface{}{
		{"Profile", result.ProfileCode},
		{"Final Carbon (Mg C/ha)", score.FinalCarbon},
		{"Percent of Baseline", score.PctOfBaseline},
		{"Total Harvested (Mg C/ha)", score.TotalHarvested},
		{"Wood Products (Mg C/ha)", score.WoodProducts},
		{"Base Score", score.BaseScore},
		{"Bonus", score.Bonus},
		{"Penalty", score.Penalty},
		{"Final Score", score.FinalScore},
		{"Status", score.Status},
		{"Rating", score.Rating},
	}
	if err := e.writeSheet(file, "Score", []string{"Metric", "Value"}, scoreRows); err != nil {
		return nil, err
	}

	return file, nil
}

// ComparisonWorkbook renders a strategy comparison table as a workbook.
func (e *ExcelExporter) ComparisonWorkbook(table *scenario.ComparisonTable) (*excelize.File, error) {
	file := excelize.NewFile()
	file.SetSheetName("Sheet1", "Comparison")

	header := []string{
		"Strategy", "Operations", "Total Harvested", "Wood Products",
		"Final Carbon", "% of Baseline", "Tier", "Final Score",
	}
	rows := make([][]interface{}, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, []interface{}{
			row.StrategyName, row.Operations, row.TotalHarvested, row.WoodProducts,
			row.FinalCarbon, row.PctOfBaseline, row.Tier, row.FinalScore,
		})
	}
	if err := e.writeSheet(file, "Comparison", header, rows); err != nil {
		return nil, err
	}

	return file, nil
}

// WriteRun writes a run workbook to a writer.
func (e *ExcelExporter) WriteRun(w io.Writer, result *engine.RunResult) error {
	file, err := e.RunWorkbook(result)
	if err != nil {
		return err
	}
	defer file.Close()
	return file.Write(w)
}

// WriteComparison writes a comparison workbook to a writer.
func (e *ExcelExporter) WriteComparison(w io.Writer, table *scenario.ComparisonTable) error {
	file, err := e.ComparisonWorkbook(table)
	if err != nil {
		return err
	}
	defer file.Close()
	return file.Write(w)
}

func (e *ExcelExporter) writeSheet(file *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: e.options.HeaderFont},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{e.options.HeaderFill}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := file.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		file.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	numberStyle := 0
	if e.options.NumberFormat != "" {
		numberStyle, err = file.NewStyle(&excelize.Style{CustomNumFmt: &e.options.NumberFormat})
		if err != nil {
			return fmt.Errorf("failed to create number style: %w", err)
		}
	}

	for rowIdx, row := range rows {
		for colIdx, val := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := file.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
			if _, isFloat := val.(float64); isFloat && numberStyle > 0 {
				file.SetCellStyle(sheet, cell, cell, numberStyle)
			}
		}
	}

	if e.options.ColumnWidth > 0 {
		last, _ := excelize.ColumnNumberToName(len(header))
		file.SetColWidth(sheet, "A", last, e.options.ColumnWidth)
	}

	if e.options.FreezeHeader {
		file.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		})
	}

	return nil
}
