// Package cli implements the rilsim command line tool. The commands wrap
// the same simulation service the HTTP API uses, so a plan run from the
// terminal produces exactly the result the planning UI would show.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/forestlab/rilsim/internal/config"
	"github.com/forestlab/rilsim/internal/engine"
	"github.com/forestlab/rilsim/internal/simulation"
)

var (
	flagConfig  string
	flagProfile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rilsim",
	Short: "Reduced-impact logging carbon simulator.",
	Long: `rilsim simulates forest carbon stocks under planned logging operations
and scores the outcome against sustainability tiers. Plans can be run,
validated, compared against fixed strategies and exported to CSV, Excel
or PDF, all from the command line.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "config.json", "config file (optional, defaults apply when missing)")
	rootCmd.PersistentFlags().StringVarP(&flagProfile, "profile", "p", "", "profile code (default comes from the config)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "", "log level override. Available: debug, info, warn, error")
}

// newService loads the configuration and wires a simulation service for
// one command invocation.
func newService(cmd *cobra.Command) (*simulation.Service, *config.Config, *zap.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, err
	}
	if level, _ := cmd.Flags().GetString("loglevel"); level != "" {
		cfg.Logging.Level = level
	}

	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return nil, nil, nil, err
	}

	eng := engine.NewEngine()
	service := simulation.NewService(eng, cfg.Engine.DefaultProfile, logger)
	return service, cfg, logger, nil
}
