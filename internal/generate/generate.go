// Package generate drives the icon pipeline: for every variant request it
// picks a master, bakes the SVG, writes it under the output tree, and
// rasterizes a PNG when a renderer is available. Row failures are logged
// and skipped; one bad row never aborts the batch.
package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Jvryan92/StategyDECK/internal/bake"
	"github.com/Jvryan92/StategyDECK/internal/masters"
	"github.com/Jvryan92/StategyDECK/internal/matrix"
	"github.com/Jvryan92/StategyDECK/internal/palette"
	"github.com/Jvryan92/StategyDECK/internal/paths"
	"github.com/Jvryan92/StategyDECK/internal/raster"
)

// progressEvery controls how often the row loop logs progress.
const progressEvery = 10

// Options configure one generation run.
type Options struct {
	MastersDir string
	OutputDir  string
	DryRun     bool
	// Renderer rasterizes PNGs; nil means the capability is absent and
	// PNG export is skipped without error.
	Renderer raster.Renderer
}

// Artifact is one file written during a run.
type Artifact struct {
	Path    string
	Kind    string // "svg" or "png"
	Mode    palette.Mode
	Finish  string
	SizePx  int
	Context string
}

// RowError records a per-row failure that was skipped.
type RowError struct {
	Row int
	Err error
}

// Summary accumulates the results of a run.
type Summary struct {
	Generated int // variants produced (or counted, in dry-run)
	PNGs      int
	Files     []Artifact
	RowErrors []RowError
	Elapsed   time.Duration
}

// Paths returns the written file paths in order.
func (s *Summary) Paths() []string {
	out := make([]string, len(s.Files))
	for i, f := range s.Files {
		out[i] = f.Path
	}
	return out
}

// DefaultFilename is the generated PNG name for a variant without a CSV
// filename override. The SVG name is the same stem with ".svg".
func DefaultFilename(v matrix.Variant) string {
	return fmt.Sprintf("strategy_icon-%s-%s-%dpx.png", v.Mode, v.Finish, v.SizePx)
}

// OutputFolder composes the per-variant directory under outputDir.
func OutputFolder(outputDir string, v matrix.Variant) string {
	return filepath.Join(outputDir, string(v.Mode), v.Finish, fmt.Sprintf("%dpx", v.SizePx), v.Context)
}

// Run processes variants in order and returns the accumulated summary.
// Cancellation is honored between rows: already-written files stay on
// disk and the context error is returned alongside the partial summary.
func Run(ctx context.Context, variants []matrix.Variant, opts Options) (*Summary, error) {
	start := time.Now()
	summary := &Summary{}

	logrus.Infof("Processing %d icon variants", len(variants))

	for i, v := range variants {
		if err := ctx.Err(); err != nil {
			summary.Elapsed = time.Since(start)
			return summary, err
		}

		if err := processRow(v, opts, summary); err != nil {
			logrus.Errorf("Failed to process row %d: %v", i+1, err)
			summary.RowErrors = append(summary.RowErrors, RowError{Row: i + 1, Err: err})
			continue
		}

		if (i+1)%progressEvery == 0 || i+1 == len(variants) {
			logrus.Infof("Progress: %d/%d rows processed", i+1, len(variants))
		}
	}

	summary.Elapsed = time.Since(start)
	logrus.Infof("Generation completed in %.2f seconds", summary.Elapsed.Seconds())
	logrus.Infof("Generated %d SVG variants, %d PNG exports", summary.Generated, summary.PNGs)
	return summary, nil
}

func processRow(v matrix.Variant, opts Options, summary *Summary) error {
	logrus.Debugf("Processing variant: %s/%s/%dpx/%s", v.Mode, v.Finish, v.SizePx, v.Context)

	masterPath, err := masters.Pick(opts.MastersDir, v.SizePx)
	if err != nil {
		return err
	}
	logrus.Debugf("Using master: %s", masterPath)

	master, err := masters.Read(masterPath)
	if err != nil {
		return err
	}

	baked := bake.Bake(master, v.Mode, v.Finish)

	filename := v.Filename
	if filename == "" {
		filename = DefaultFilename(v)
	}
	filename = filepath.Base(filename)
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))

	folder := OutputFolder(opts.OutputDir, v)
	svgPath := filepath.Join(folder, stem+".svg")
	pngPath := filepath.Join(folder, filename)

	if opts.DryRun {
		logrus.Infof("Would generate: %s", svgPath)
		summary.Generated++
		return nil
	}

	if err := os.MkdirAll(folder, paths.DirPerm); err != nil {
		return err
	}
	if err := paths.AtomicWrite(svgPath, []byte(baked)); err != nil {
		return err
	}
	logrus.Debugf("Generated SVG: %s", svgPath)
	summary.Files = append(summary.Files, Artifact{
		Path: svgPath, Kind: "svg", Mode: v.Mode, Finish: v.Finish, SizePx: v.SizePx, Context: v.Context,
	})

	if opts.Renderer != nil {
		if err := opts.Renderer.Render([]byte(baked), pngPath, v.SizePx); err != nil {
			logrus.Warnf("Failed to export PNG %s: %v", pngPath, err)
		} else {
			logrus.Debugf("Exported PNG: %s", pngPath)
			summary.PNGs++
			summary.Files = append(summary.Files, Artifact{
				Path: pngPath, Kind: "png", Mode: v.Mode, Finish: v.Finish, SizePx: v.SizePx, Context: v.Context,
			})
		}
	}

	summary.Generated++
	return nil
}
