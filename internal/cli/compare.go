package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Runs the profile's fixed strategies and prints the comparison table.",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, _, logger, err := newService(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		table, err := service.Compare(flagProfile)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "STRATEGY\tOPS\tHARVESTED\tWOOD\tFINAL CARBON\t% BASE\tTIER\tSCORE\t")
		for _, row := range table.Rows {
			fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.1f\t%s\t%.2f\t\n",
				row.StrategyName, row.Operations, row.TotalHarvested, row.WoodProducts,
				row.FinalCarbon, row.PctOfBaseline, row.Tier, row.FinalScore)
		}
		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
