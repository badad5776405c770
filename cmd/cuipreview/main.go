package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/robhasacamera/CUIPreviewKit/internal/config"
	"github.com/robhasacamera/CUIPreviewKit/internal/logging"
)

var (
	configPath string
	logFile    string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cuipreview",
	Short: "Interactive placeholder preview for terminal UI layout work",
	Long: `cuipreview renders a canvas of colored placeholder boxes so you can
inspect how a layout allocates space. Each placeholder shows its index,
its measured size, and its global position; push and pop boxes, toggle
the overlays, and watch indexes get reused as instances disappear.

Edits to the config file are picked up live while the demo runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if logFile != "" {
			cfg.Log.File = logFile
		}
		if verbose {
			cfg.Log.Verbose = true
		}

		logger, err = logging.New(cfg.Log.File, cfg.Log.Verbose)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		logger.Info("starting preview",
			zap.String("config", configPath),
			zap.Bool("verbose", cfg.Log.Verbose))

		return runDemo(cmd.Context(), cfg, configPath, logger)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "cuipreview.yaml", "config file to load and watch")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "override the log file path (empty uses the config value)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
