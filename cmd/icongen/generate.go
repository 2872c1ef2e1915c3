package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Jvryan92/StategyDECK/internal/config"
	"github.com/Jvryan92/StategyDECK/internal/generate"
	"github.com/Jvryan92/StategyDECK/internal/github"
	"github.com/Jvryan92/StategyDECK/internal/matrix"
	"github.com/Jvryan92/StategyDECK/internal/paths"
	"github.com/Jvryan92/StategyDECK/internal/raster"
	"github.com/Jvryan92/StategyDECK/internal/runlog"
)

var (
	flagDryRun       bool
	flagValidateOnly bool
	flagPushToGitHub bool
	flagGitHubRepo   string
	flagNoHistory    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate icon variants from the CSV matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, flagValidateOnly)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and CSV matrix without generating files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, true)
	},
}

func init() {
	generateCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "report what would be generated without creating files")
	generateCmd.Flags().BoolVar(&flagValidateOnly, "validate-only", false, "validate configuration and CSV, then exit")
	generateCmd.Flags().BoolVar(&flagPushToGitHub, "push-to-github", false, "push generated files to a GitHub repository")
	generateCmd.Flags().StringVar(&flagGitHubRepo, "github-repo", "", "GitHub repository as owner/repo (env: GITHUB_REPO)")
	generateCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "skip recording this run in the history database")
}

func runGenerate(cmd *cobra.Command, validateOnly bool) error {
	logrus.Info("Starting icon generation")
	logrus.Infof("Configuration: CSV=%s, Output=%s", settings.CSVPath, settings.OutputDir)

	if err := config.Validate(settings); err != nil {
		return err
	}

	logrus.Infof("Reading CSV matrix from: %s", settings.CSVPath)
	rows, err := matrix.ReadFile(settings.CSVPath)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		logrus.Warn("CSV file is empty or has no data rows")
		return nil
	}
	logrus.Infof("Loaded %d rows from CSV", len(rows))

	if err := matrix.Validate(rows); err != nil {
		return err
	}
	if validateOnly {
		logrus.Info("Validation completed successfully")
		return nil
	}

	started := time.Now()
	summary, err := generate.Run(cmd.Context(), matrix.Variants(rows), generate.Options{
		MastersDir: settings.MastersDir,
		OutputDir:  settings.OutputDir,
		DryRun:     flagDryRun,
		Renderer:   raster.PNG{},
	})
	if err != nil {
		return err
	}

	if flagDryRun {
		logrus.Infof("Dry run completed. Would generate %d SVG files", summary.Generated)
		return nil
	}

	recordRun(started, summary)

	if flagPushToGitHub && len(summary.Files) > 0 {
		repo := flagGitHubRepo
		if repo == "" {
			repo = settings.GitHubRepo
		}
		publisher := github.FromEnv(repo)
		publisher.Publish(summary.Paths(), fmt.Sprintf("Generated %d icon variants", summary.Generated))
	}

	logrus.Info("Icon generation completed")
	return nil
}

// recordRun saves this run to the history database. History is
// best-effort: every failure warns and the build still succeeds.
func recordRun(started time.Time, summary *generate.Summary) {
	if flagNoHistory || !settings.History {
		return
	}
	store, err := runlog.NewSQLiteStore(filepath.Join(paths.DataDir(), paths.HistoryDBName))
	if err != nil {
		logrus.Warnf("Could not open history database: %v", err)
		return
	}
	defer store.Close()

	run := runlog.Run{
		ID:        uuid.NewString(),
		Started:   started,
		Elapsed:   summary.Elapsed,
		CSVPath:   settings.CSVPath,
		Generated: summary.Generated,
		PNGs:      summary.PNGs,
	}
	if err := store.Record(run, summary.Files); err != nil {
		logrus.Warnf("Could not record run history: %v", err)
	}
}
