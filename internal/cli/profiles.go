package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/forestlab/rilsim/internal/simulation"
)

// profilesCmd represents the profiles command
var profilesCmd = &cobra.Command{
	Use:   "profiles [code]",
	Short: "Lists the registered profiles, or shows the full detail of one.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, _, logger, err := newService(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		if len(args) == 1 {
			return printProfileDetail(service, args[0])
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tSTEP\tHORIZON\tTIMING\t")
		for _, p := range service.Profiles() {
			fmt.Fprintf(w, "%s\t%s\t%d yr\t%d yr\t%s\t\n",
				p.Code, p.Name, p.StepYears, p.HorizonYears, p.Timing)
		}
		w.Flush()

		return nil
	},
}

func printProfileDetail(service *simulation.Service, code string) error {
	d, err := service.ProfileDetail(code)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", d.Name, d.Code)
	fmt.Println(d.Description)
	fmt.Println()
	fmt.Printf("Step: %d yr  Horizon: %d yr  Timing: %s\n", d.StepYears, d.HorizonYears, d.Timing)
	fmt.Printf("Baseline: %.0f Mg C/ha  Recovery k: %.4f per step\n", d.Baseline, d.RecoveryK)
	fmt.Printf("Wood product retention: %.0f%%  Reward multiplier: %.1fx\n",
		d.RetentionFraction*100, d.RewardMultiplier)
	fmt.Printf("Limits: up to %d operations, year <= %d, intensity <= %.0f%%\n",
		d.Limits.MaxOperations, d.Limits.MaxYear, d.Limits.MaxIntensityPct)

	fmt.Println()
	fmt.Println("Outcome tiers:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	for _, tier := range d.Tiers {
		effect := fmt.Sprintf("%+.0f points", tier.Modifier)
		if tier.Forfeit {
			effect = "score forfeited"
		}
		fmt.Fprintf(w, "  %s\t>= %.0f%% of baseline\t%s\t\n", tier.Label, tier.FloorPct, effect)
	}
	w.Flush()

	return nil
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
