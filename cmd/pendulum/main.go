package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/logging"
)

var (
	configFile  string
	logLevel    string
	logEncoding string

	cfg    *config.Config
	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. With no subcommand it serves the
// browser view.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "pendulum",
		Short:             "animated double pendulum",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              serve,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logEncoding, "log-encoding", "", "log encoding (console, json)")
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address")

	rootCmd.AddCommand(
		newServeCmd(),
		newLiveCmd(),
		newRunCmd(),
		newPlotCmd(),
		newAnalyzeCmd(),
		newCompareCmd(),
		newSnapshotCmd(),
		newTrailCmd(),
	)
	return rootCmd
}

// setup loads the config file, applies flag overrides and builds the
// logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logEncoding != "" {
		cfg.Log.Encoding = logEncoding
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger = l
	return nil
}
