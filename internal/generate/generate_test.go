package generate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/Jvryan92/StategyDECK/internal/masters"
	"github.com/Jvryan92/StategyDECK/internal/matrix"
)

const masterSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
  <rect width="64" height="64" fill="#FF6A00"/>
  <path d="M16 16h32v32H16z" fill="#FFFFFF"/>
</svg>`

func setupMasters(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(masterSVG), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// countingRenderer records render calls without touching oksvg.
type countingRenderer struct {
	calls []string
	fail  bool
}

func (r *countingRenderer) Render(svg []byte, outPath string, sizePx int) error {
	r.calls = append(r.calls, outPath)
	if r.fail {
		return errors.New("render exploded")
	}
	return os.WriteFile(outPath, []byte("png"), 0644)
}

func TestRunWritesSVGAtComposedPath(t *testing.T) {
	mastersDir := setupMasters(t, masters.MicroName, masters.StandardName)
	outDir := t.TempDir()

	variants := []matrix.Variant{
		{Mode: "light", Finish: "flat-orange", SizePx: 16, Context: "web"},
	}
	summary, err := Run(context.Background(), variants, Options{
		MastersDir: mastersDir,
		OutputDir:  outDir,
	})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Generated != 1 {
		t.Errorf("Generated = %d, want 1", summary.Generated)
	}

	svgPath := filepath.Join(outDir, "light", "flat-orange", "16px", "web",
		"strategy_icon-light-flat-orange-16px.svg")
	data, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatalf("expected SVG at composed path: %v", err)
	}
	if !strings.Contains(string(data), `rect width="64" height="64" fill="#FFFFFF"`) {
		t.Error("baked SVG missing paper-white background")
	}
	if !strings.Contains(string(data), `fill="#FF6A00"`) {
		t.Error("baked SVG missing brand-orange foreground")
	}
}

func TestRunFilenameOverride(t *testing.T) {
	mastersDir := setupMasters(t, masters.StandardName)
	outDir := t.TempDir()

	variants := []matrix.Variant{
		{Mode: "dark", Finish: "copper-foil", SizePx: 64, Context: "print", Filename: "special.png"},
	}
	r := &countingRenderer{}
	summary, err := Run(context.Background(), variants, Options{
		MastersDir: mastersDir,
		OutputDir:  outDir,
		Renderer:   r,
	})
	if err != nil {
		t.Fatal(err)
	}

	folder := filepath.Join(outDir, "dark", "copper-foil", "64px", "print")
	if _, err := os.Stat(filepath.Join(folder, "special.svg")); err != nil {
		t.Errorf("SVG with overridden stem missing: %v", err)
	}
	if len(r.calls) != 1 || r.calls[0] != filepath.Join(folder, "special.png") {
		t.Errorf("renderer called with %v, want the overridden PNG path", r.calls)
	}
	if summary.PNGs != 1 {
		t.Errorf("PNGs = %d, want 1", summary.PNGs)
	}
	if len(summary.Files) != 2 {
		t.Fatalf("Files = %d entries, want svg + png", len(summary.Files))
	}
	if summary.Files[0].Kind != "svg" || summary.Files[1].Kind != "png" {
		t.Errorf("artifact kinds = %s, %s, want svg, png", summary.Files[0].Kind, summary.Files[1].Kind)
	}
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	mastersDir := setupMasters(t, masters.StandardName)
	outDir := filepath.Join(t.TempDir(), "out")

	variants := []matrix.Variant{
		{Mode: "light", Finish: "flat-orange", SizePx: 16, Context: "web"},
		{Mode: "dark", Finish: "satin-black", SizePx: 128, Context: "print"},
	}
	r := &countingRenderer{}
	summary, err := Run(context.Background(), variants, Options{
		MastersDir: mastersDir,
		OutputDir:  outDir,
		DryRun:     true,
		Renderer:   r,
	})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Generated != 2 {
		t.Errorf("dry-run Generated = %d, want same count as a real run (2)", summary.Generated)
	}
	if len(r.calls) != 0 {
		t.Error("dry-run must not invoke the renderer")
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Error("dry-run must not create the output directory")
	}
	if len(summary.Files) != 0 {
		t.Error("dry-run must not record written files")
	}
}

func TestRunNilRendererSkipsPNG(t *testing.T) {
	mastersDir := setupMasters(t, masters.StandardName)
	outDir := t.TempDir()

	variants := []matrix.Variant{
		{Mode: "light", Finish: "flat-orange", SizePx: 16, Context: "web"},
	}
	summary, err := Run(context.Background(), variants, Options{
		MastersDir: mastersDir,
		OutputDir:  outDir,
	})
	if err != nil {
		t.Fatal(err)
	}
	if summary.PNGs != 0 {
		t.Errorf("PNGs = %d, want 0 without a renderer", summary.PNGs)
	}
	if summary.Generated != 1 {
		t.Errorf("Generated = %d, want 1 (row still succeeds)", summary.Generated)
	}
}

func TestRunRendererFailureIsNonFatal(t *testing.T) {
	mastersDir := setupMasters(t, masters.StandardName)
	outDir := t.TempDir()

	variants := []matrix.Variant{
		{Mode: "light", Finish: "flat-orange", SizePx: 16, Context: "web"},
	}
	summary, err := Run(context.Background(), variants, Options{
		MastersDir: mastersDir,
		OutputDir:  outDir,
		Renderer:   &countingRenderer{fail: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Generated != 1 {
		t.Errorf("Generated = %d, want 1 despite renderer failure", summary.Generated)
	}
	if summary.PNGs != 0 {
		t.Errorf("PNGs = %d, want 0", summary.PNGs)
	}
	if len(summary.RowErrors) != 0 {
		t.Errorf("RowErrors = %v, renderer failure must not fail the row", summary.RowErrors)
	}
}

func TestRunRowFailureContinuesBatch(t *testing.T) {
	// No masters at all: every row fails with ErrNoMaster, but the run
	// itself succeeds and reports each failure.
	outDir := t.TempDir()
	variants := []matrix.Variant{
		{Mode: "light", Finish: "flat-orange", SizePx: 16, Context: "web"},
		{Mode: "dark", Finish: "satin-black", SizePx: 64, Context: "print"},
	}
	summary, err := Run(context.Background(), variants, Options{
		MastersDir: t.TempDir(),
		OutputDir:  outDir,
	})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Generated != 0 {
		t.Errorf("Generated = %d, want 0", summary.Generated)
	}
	if len(summary.RowErrors) != 2 {
		t.Fatalf("RowErrors = %d, want 2", len(summary.RowErrors))
	}
	if summary.RowErrors[0].Row != 1 || summary.RowErrors[1].Row != 2 {
		t.Errorf("RowErrors rows = %d, %d, want 1, 2", summary.RowErrors[0].Row, summary.RowErrors[1].Row)
	}
	if !errors.Is(summary.RowErrors[0].Err, masters.ErrNoMaster) {
		t.Errorf("row error = %v, want ErrNoMaster", summary.RowErrors[0].Err)
	}
}

func TestRunCanceledContext(t *testing.T) {
	mastersDir := setupMasters(t, masters.StandardName)
	outDir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	variants := []matrix.Variant{
		{Mode: "light", Finish: "flat-orange", SizePx: 16, Context: "web"},
	}
	summary, err := Run(ctx, variants, Options{MastersDir: mastersDir, OutputDir: outDir})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run with canceled ctx = %v, want context.Canceled", err)
	}
	if summary.Generated != 0 {
		t.Errorf("Generated = %d, want 0 after immediate cancel", summary.Generated)
	}
}

func TestDefaultFilename(t *testing.T) {
	v := matrix.Variant{Mode: "dark", Finish: "embossed-paper", SizePx: 48, Context: "app"}
	got := DefaultFilename(v)
	want := "strategy_icon-dark-embossed-paper-48px.png"
	if got != want {
		t.Errorf("DefaultFilename = %q, want %q", got, want)
	}
}
