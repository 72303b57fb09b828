package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"snapcheck/pkg/log"
	"snapcheck/pkg/model"
	"snapcheck/pkg/system"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	logLevel   string
	jsonOutput bool
	logger     log.Logger
	cmdRunner  system.CommandRunner = &system.LiveCommandRunner{}
	rootCmd                         = &cobra.Command{
		Use:   "snapcheck",
		Short: "snapcheck is a regression-snapshot harness for command output",
		Long: `snapcheck runs a configured command, captures its standard output and
compares it line by line against a stored baseline, so that unintended
changes in the command's output show up as a diff.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLogLevel(logLevel)
			if err != nil {
				return err
			}
			writer := cmd.ErrOrStderr()
			logger = log.NewSlogLogger(level, writer)
			ctx := context.WithValue(cmd.Context(), "logger", logger)
			cmd.SetContext(ctx)
			return nil
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseLogLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", levelStr)
	}
}

// resolveTarget picks the target named by the positional argument, or the
// only configured target when the argument is omitted.
func resolveTarget(cfg *model.Config, args []string) (model.Target, error) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	target, ok := cfg.FindTarget(name)
	if !ok {
		if name == "" {
			return model.Target{}, fmt.Errorf("config defines %d targets, specify one by name", len(cfg.Targets))
		}
		return model.Target{}, fmt.Errorf("no target named %q in configuration", name)
	}
	return target, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "./snapcheck.yaml", "config file (default is ./snapcheck.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
