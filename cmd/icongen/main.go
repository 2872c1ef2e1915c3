// icongen generates StrategyDECK icon variants from master SVG templates,
// driven by a CSV variant matrix.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Jvryan92/StategyDECK/internal/config"
	"github.com/Jvryan92/StategyDECK/internal/logging"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

var (
	flagConfig     string
	flagCSVPath    string
	flagOutputDir  string
	flagMastersDir string
	flagLogLevel   string
	flagLogFile    string

	// settings is resolved once in PersistentPreRunE: config file values
	// with changed CLI flags applied on top.
	settings config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "icongen",
	Short: "Generate StrategyDECK icon variants from master SVG templates",
	Long: `icongen is the StrategyDECK asset pipeline. It reads a CSV variant
matrix (mode, finish, size, context), bakes each variant from one of two
master SVG templates, writes the SVG under the output tree, and exports a
best-effort PNG alongside it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("csv-path") {
			s.CSVPath = flagCSVPath
		}
		if cmd.Flags().Changed("output-dir") {
			s.OutputDir = flagOutputDir
		}
		if cmd.Flags().Changed("masters-dir") {
			s.MastersDir = flagMastersDir
		}
		if cmd.Flags().Changed("log-level") {
			s.LogLevel = flagLogLevel
		}
		if cmd.Flags().Changed("log-file") {
			s.LogFile = flagLogFile
		}
		settings = s
		return logging.Setup(s.LogLevel, s.LogFile)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the icongen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("icongen %s (built %s)\n", version, buildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to icongen.json (default: search next to binary, then data dir)")
	rootCmd.PersistentFlags().StringVar(&flagCSVPath, "csv-path", config.DefaultCSVPath, "path to the CSV variant matrix")
	rootCmd.PersistentFlags().StringVar(&flagOutputDir, "output-dir", config.DefaultOutputDir, "output directory for generated icons")
	rootCmd.PersistentFlags().StringVar(&flagMastersDir, "masters-dir", config.DefaultMastersDir, "directory containing the master SVG files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warning, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "optional log file path")

	rootCmd.AddCommand(generateCmd, validateCmd, historyCmd, versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logrus.Info("Generation interrupted by user")
			os.Exit(130)
		}
		logrus.Error(err)
		os.Exit(1)
	}
}
