// Package cmd implements the command line interface on top of cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduling-simulator/config"
)

// rootOptions holds the persistent flags and the configuration they resolve
// to. Subcommands read config only after PersistentPreRunE has run.
type rootOptions struct {
	logLevel   string
	configPath string
	config     *config.SchedulerConfig
}

// NewRootCmd builds the command tree: run, serve and generate.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "cpu-scheduling-simulator",
		Short:         "Deterministic CPU scheduling simulator (FIFO, SJF, STCF, RR, MLFQ)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			opts.config = cfg

			name := cfg.LogLevel
			if cmd.Flags().Changed("log") {
				name = opts.logLevel
			}
			level, err := logrus.ParseLevel(name)
			if err != nil {
				return fmt.Errorf("invalid log level: %s", name)
			}
			logrus.SetLevel(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default ./config.yaml if present)")

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newGenerateCmd(opts))
	return rootCmd
}

// Execute runs the CLI root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Error(err)
		stop()
		os.Exit(1)
	}
}
