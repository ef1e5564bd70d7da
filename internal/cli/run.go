package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/forestlab/rilsim/internal/engine"
	"github.com/forestlab/rilsim/internal/simulation"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulates a logging plan and prints the trajectory and score.",
	Long: `Simulates a logging plan under the selected profile and prints the full
carbon trajectory and the score card. Operations are given as repeated
--op year:intensity flags, e.g.:

  rilsim run --op 0:10 --op 10:10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, _, logger, err := newService(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

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

		printPlan(result.Operations)
		printTrajectory(result.Trajectory)
		printScore(result)
		return nil
	},
}

func printPlan(ops []engine.Operation) {
	if len(ops) == 0 {
		fmt.Println("Plan: no logging (undisturbed baseline)")
		return
	}
	fmt.Println("Plan:")
	for _, op := range ops {
		if !op.Active() {
			fmt.Printf("  year %d: no cut\n", op.Year)
			continue
		}
		fmt.Printf("  year %d: cut %.0f%% of standing carbon\n", op.Year, op.IntensityPct)
	}
}

func printTrajectory(trajectory engine.Trajectory) {
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "YEAR\tCARBON\tBASELINE\tGAP\t")
	for _, point := range trajectory {
		fmt.Fprintf(w, "%d\t%.2f\t%.2f\t%.2f\t\n", point.Year, point.Value, point.Baseline, point.Difference)
	}
	w.Flush()
}

func printScore(result *engine.RunResult) {
	score := result.Score

	fmt.Println()
	fmt.Printf("Status: %s\n", score.Status)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "Final carbon\t%.2f Mg C/ha (%.1f%% of baseline)\t\n", score.FinalCarbon, score.PctOfBaseline)
	fmt.Fprintf(w, "Total harvested\t%.2f Mg C/ha\t\n", score.TotalHarvested)
	fmt.Fprintf(w, "Wood products\t%.2f Mg C/ha\t\n", score.WoodProducts)
	fmt.Fprintf(w, "Base score\t%.2f\t\n", score.BaseScore)
	if score.Bonus != 0 {
		fmt.Fprintf(w, "Bonus\t%+.2f\t\n", score.Bonus)
	}
	if score.Penalty != 0 {
		fmt.Fprintf(w, "Penalty\t%+.2f\t\n", score.Penalty)
	}
	fmt.Fprintf(w, "Final score\t%.2f\t\n", score.FinalScore)
	fmt.Fprintf(w, "Rating\t%s\t\n", score.Rating)
	w.Flush()
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringArrayP("op", "o", nil, "logging operation as year:intensity (repeatable)")
	runCmd.Flags().Bool("default-plan", false, "run the profile's default plan instead of --op flags")
}
