package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/forestlab/rilsim/internal/engine"
)

// PDFOptions configures PDF report generation.
type PDFOptions struct {
	Title          string  `json:"title"`
	Author         string  `json:"author"`
	FontFamily     string  `json:"font_family"`
	FontSize       float64 `json:"font_size"`
	TitleFontSize  float64 `json:"title_font_size"`
	HeaderFontSize float64 `json:"header_font_size"`
}

// DefaultPDFOptions returns default PDF report options.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		Title:          "Forest Logging Simulation Report",
		FontFamily:     "Arial",
		FontSize:       10,
		TitleFontSize:  16,
		HeaderFontSize: 11,
	}
}

// PDFExporter renders run reports as PDF score cards.
type PDFExporter struct {
	options PDFOptions
}

// NewPDFExporter creates a new PDF exporter.
func NewPDFExporter(options PDFOptions) *PDFExporter {
	return &PDFExporter{options: options}
}

// statusFill maps a tier color name onto the banner fill.
func statusFill(color string) (r, g, b int) {
	switch color {
	case "green":
		return 46, 125, 50
	case "orange":
		return 239, 108, 0
	default:
		return 198, 40, 40
	}
}

// WriteRunReport renders one run as a PDF: score card, tier thresholds and
// the full trajectory table.
func (e *PDFExporter) WriteRunReport(w io.Writer, result *engine.RunResult, profile engine.Profile) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(e.options.Title, false)
	if e.options.Author != "" {
		pdf.SetAuthor(e.options.Author, false)
	}
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Title block
	pdf.SetFont(e.options.FontFamily, "B", e.options.TitleFontSize)
	pdf.CellFormat(0, 10, e.options.Title, "", 1, "C", false, 0, "")
	pdf.SetFont(e.options.FontFamily, "", e.options.FontSize)
	pdf.CellFormat(0, 6, fmt.Sprintf("Profile: %s  |  Generated: %s",
		profile.Name, result.GeneratedAt.Format("2006-01-02 15:04 UTC")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Status banner
	score := result.Score
	r, g, b := statusFill(score.StatusColor)
	pdf.SetFillColor(r, g, b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(e.options.FontFamily, "B", e.options.HeaderFontSize)
	pdf.CellFormat(0, 9, score.Status, "", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// Score card
	e.metricRow(pdf, "Final Carbon", fmt.Sprintf("%.1f Mg C/ha (%.1f%% of baseline)", score.FinalCarbon, score.PctOfBaseline))
	e.metricRow(pdf, "Total Harvested", fmt.Sprintf("%.1f Mg C/ha", score.TotalHarvested))
	e.metricRow(pdf, "Wood Products", fmt.Sprintf("%.1f Mg C/ha", score.WoodProducts))
	e.metricRow(pdf, "Base Score", fmt.Sprintf("%.1f pts", score.BaseScore))
	if score.Bonus != 0 {
		e.metricRow(pdf, "Bonus", fmt.Sprintf("%+.0f pts", score.Bonus))
	}
	if score.Penalty != 0 {
		e.metricRow(pdf, "Penalty", fmt.Sprintf("%+.0f pts", score.Penalty))
	}
	e.metricRow(pdf, "Final Score", fmt.Sprintf("%.1f pts (%s)", score.FinalScore, score.Rating))
	pdf.Ln(4)

	// Tier thresholds, best first.
	pdf.SetFont(e.options.FontFamily, "B", e.options.HeaderFontSize)
	pdf.CellFormat(0, 7, "Outcome Tiers", "", 1, "L", false, 0, "")
	pdf.SetFont(e.options.FontFamily, "", e.options.FontSize)
	for _, tier := range profile.Tiers {
		rule := fmt.Sprintf("%+.0f pts", tier.Modifier)
		if tier.Forfeit {
			rule = "score forfeited"
		}
		pdf.CellFormat(0, 6, fmt.Sprintf("%s - from %.0f%% of baseline (%.0f Mg C/ha): %s",
			tier.Label, tier.FloorPct, profile.ThresholdCarbon(tier), rule), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Trajectory table
	pdf.SetFont(e.options.FontFamily, "B", e.options.HeaderFontSize)
	pdf.CellFormat(0, 7, "Carbon Trajectory", "", 1, "L", false, 0, "")

	widths := []float64{25, 45, 45, 45}
	headers := []string{"Year", "Baseline", "Carbon", "Difference"}
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(e.options.FontFamily, "", e.options.FontSize)
	for _, point := range result.Trajectory {
		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%d", point.Year), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%.1f", point.Baseline), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%.1f", point.Value), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.1f", point.Difference), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

func (e *PDFExporter) metricRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont(e.options.FontFamily, "B", e.options.FontSize)
	pdf.CellFormat(50, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont(e.options.FontFamily, "", e.options.FontSize)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}
