package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forestlab/rilsim/internal/config"
	"github.com/forestlab/rilsim/internal/export"
	"github.com/forestlab/rilsim/internal/simulation"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Runs a plan and writes the result to a CSV, Excel or PDF file.",
	Long: `Runs a logging plan and writes the result to a file. The format is taken
from --format (csv, xlsx or pdf). With --comparison the fixed-strategy
comparison table is exported instead of a single run; PDF is only
available for single runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, cfg, logger, err := newService(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		comparison, _ := cmd.Flags().GetBool("comparison")

		if out == "" {
			return fmt.Errorf("--out is required")
		}

		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()

		if comparison {
			err = exportComparison(service, format, f)
		} else {
			err = exportRun(cmd, service, cfg, format, f)
		}
		if err != nil {
			// Leave no half-written file behind.
			f.Close()
			os.Remove(out)
			return err
		}

		fmt.Printf("Wrote %s\n", out)
		return nil
	},
}

func exportRun(cmd *cobra.Command, service *simulation.Service, cfg *config.Config, format string, f *os.File) error {
	ops, err := planFromFlags(cmd, service)
	if err != nil {
		return err
	}

	result, err := service.Run(&simulation.SimulateRequest{
		Profile:    flagProfile,
		Operations: ops,
	})
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		return export.NewCSVExporter(export.DefaultCSVOptions()).WriteTrajectory(f, result)
	case "xlsx":
		return export.NewExcelExporter(export.DefaultExcelOptions()).WriteRun(f, result)
	case "pdf":
		options := export.DefaultPDFOptions()
		options.Title = cfg.Export.ReportTitle
		options.Author = cfg.Export.ReportAuthor
		profile, _ := service.Engine().Profile(result.ProfileCode)
		return export.NewPDFExporter(options).WriteRunReport(f, result, profile)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func exportComparison(service *simulation.Service, format string, f *os.File) error {
	table, err := service.Compare(flagProfile)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		return export.NewCSVExporter(export.DefaultCSVOptions()).WriteComparison(f, table)
	case "xlsx":
		return export.NewExcelExporter(export.DefaultExcelOptions()).WriteComparison(f, table)
	default:
		return fmt.Errorf("unsupported format for comparison export: %s", format)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringArrayP("op", "o", nil, "logging operation as year:intensity (repeatable)")
	exportCmd.Flags().Bool("default-plan", false, "run the profile's default plan instead of --op flags")
	exportCmd.Flags().StringP("format", "f", "csv", "output format: csv, xlsx or pdf")
	exportCmd.Flags().String("out", "", "output file path")
}
