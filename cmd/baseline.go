package cmd

import (
	"fmt"

	"snapcheck/pkg/config"
	"snapcheck/pkg/log"
	"snapcheck/pkg/snapshot"
	"snapcheck/pkg/system"

	"github.com/spf13/cobra"
)

// baselineCmd represents the baseline command
var baselineCmd = &cobra.Command{
	Use:   "baseline [target]",
	Short: "Runs the target's command and stores its output as the new baseline",
	Long: `The baseline command executes the configured command for the given target,
captures its standard output verbatim and stores it as the baseline for
later comparisons. A previous baseline is overwritten. The target argument
may be omitted when the configuration defines exactly one target.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := cmd.Context().Value("logger").(log.Logger)

		cfg, err := config.LoadConfig(cfgFile, logger)
		if err != nil {
			return err
		}

		target, err := resolveTarget(cfg, args)
		if err != nil {
			return err
		}

		runner := snapshot.NewRunner(system.AppFs, cmdRunner, logger, cfg.LogDir, target)
		if err := runner.EstablishBaseline(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Baseline for %s written to %s\n", target.Name, runner.BaselinePath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(baselineCmd)
}
