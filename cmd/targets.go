package cmd

import (
	"encoding/json"
	"fmt"

	"snapcheck/pkg/config"
	"snapcheck/pkg/log"
	"snapcheck/pkg/snapshot"
	"snapcheck/pkg/system"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// targetsCmd represents the targets command
var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Lists the configured targets and their resolved artifact paths",
	Long: `The targets command prints every target from the configuration file
together with the command it runs and the resolved baseline, candidate and
diff report paths under the log directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := cmd.Context().Value("logger").(log.Logger)

		cfg, err := config.LoadConfig(cfgFile, logger)
		if err != nil {
			return err
		}

		views := make([]targetForJSON, 0, len(cfg.Targets))
		for _, target := range cfg.Targets {
			runner := snapshot.NewRunner(system.AppFs, cmdRunner, logger, cfg.LogDir, target)
			views = append(views, targetForJSON{
				Name:      target.Name,
				Command:   target.Command,
				Args:      target.Args,
				Baseline:  runner.BaselinePath(),
				Candidate: runner.CandidatePath(),
				Diff:      runner.DiffPath(),
			})
		}

		if jsonOutput {
			jsonBytes, err := json.MarshalIndent(views, "", "  ")
			if err != nil {
				return fmt.Errorf("error marshaling to JSON: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(jsonBytes))
			return nil
		}

		yamlBytes, err := yaml.Marshal(views)
		if err != nil {
			return fmt.Errorf("error marshaling to YAML: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(yamlBytes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
	targetsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the targets in JSON format")
}
