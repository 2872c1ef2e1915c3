// Package masters resolves which hand-authored master SVG serves a
// requested pixel size.
package masters

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// MicroName is the master used for small sizes.
	MicroName = "strategy_icon_micro.svg"
	// StandardName is the master used for everything else.
	StandardName = "strategy_icon_standard.svg"

	// MicroMaxPx is the largest size served by the micro master.
	MicroMaxPx = 32
)

// ErrNoMaster reports that no master file fits the requested size.
var ErrNoMaster = errors.New("no suitable master SVG found")

// Pick returns the path of the master serving sizePx: the micro master
// when sizePx <= 32 and the file exists, otherwise the standard master if
// it exists, otherwise a wrapped ErrNoMaster. Pure function of (size,
// filesystem state).
func Pick(mastersDir string, sizePx int) (string, error) {
	micro := filepath.Join(mastersDir, MicroName)
	standard := filepath.Join(mastersDir, StandardName)

	if sizePx <= MicroMaxPx {
		if _, err := os.Stat(micro); err == nil {
			return micro, nil
		}
	}
	if _, err := os.Stat(standard); err == nil {
		return standard, nil
	}
	return "", errors.Wrapf(ErrNoMaster, "for size %dpx", sizePx)
}

// Read loads a master template's raw text. Templates are read lazily per
// request; callers may cache by path if they need to.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading master SVG %s", path)
	}
	return string(data), nil
}
