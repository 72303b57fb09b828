package cmd

import (
	"encoding/json"
	"fmt"

	"snapcheck/pkg/config"
	"snapcheck/pkg/log"
	"snapcheck/pkg/model"
	"snapcheck/pkg/snapshot"
	"snapcheck/pkg/system"

	"github.com/spf13/cobra"
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff [target]",
	Short: "Runs the target's command and shows how its output differs from the baseline",
	Long: `The diff command executes the configured command for the given target,
captures its standard output as the candidate and compares it line by line
against the stored baseline. The report is written next to the baseline and
printed. Comparing before a baseline exists is an error.`,
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
		report, err := runner.CompareAgainstBaseline()
		if err != nil {
			return err
		}

		if jsonOutput {
			view := reportForJSON{Target: target.Name, Changed: !report.Empty(), Changes: []changeForJSON{}}
			for _, change := range report.Changes {
				if change.Type == model.ChangeEqual {
					continue
				}
				view.Changes = append(view.Changes, changeForJSON{
					Type:          string(change.Type),
					BaselineLine:  change.BaselineLine,
					CandidateLine: change.CandidateLine,
					Lines:         change.Lines,
				})
			}
			jsonBytes, err := json.MarshalIndent(view, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal report to JSON: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(jsonBytes))
			return nil
		}

		if report.Empty() {
			fmt.Fprintf(cmd.OutOrStdout(), "No differences for %s.\n", target.Name)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Differences for %s (report written to %s):\n", target.Name, runner.DiffPath())
			fmt.Fprint(cmd.OutOrStdout(), report.Render())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report in JSON format")
}
