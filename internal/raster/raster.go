// Package raster renders baked SVG bytes to square PNG files. PNG export
// is a best-effort enhancement over the authoritative SVG output: the
// orchestrator takes a Renderer and treats nil as "capability absent".
package raster

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/Jvryan92/StategyDECK/internal/paths"
)

// Renderer turns SVG bytes into a raster file on disk.
type Renderer interface {
	Render(svg []byte, outPath string, sizePx int) error
}

// PNG renders through oksvg/rasterx.
type PNG struct{}

// Render rasterizes svg to a sizePx×sizePx PNG at outPath, creating
// parent directories as needed.
func (PNG) Render(svg []byte, outPath string, sizePx int) error {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return errors.Wrap(err, "parsing SVG")
	}

	icon.SetTarget(0, 0, float64(sizePx), float64(sizePx))
	img := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
	scanner := rasterx.NewScannerGV(sizePx, sizePx, img, img.Bounds())
	dasher := rasterx.NewDasher(sizePx, sizePx, scanner)
	icon.Draw(dasher, 1.0)

	if err := os.MkdirAll(filepath.Dir(outPath), paths.DirPerm); err != nil {
		return errors.Wrapf(err, "creating directory for %s", outPath)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", outPath)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "encoding %s", outPath)
	}
	return nil
}
