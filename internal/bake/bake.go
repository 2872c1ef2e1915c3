// Package bake performs the two-color substitution that turns a master
// template into a finished variant SVG.
package bake

import (
	"strings"

	"github.com/Jvryan92/StategyDECK/internal/palette"
)

// Placeholder colors the hand-authored masters use. Every literal
// occurrence is rewritten; the masters use them nowhere else.
const (
	BackgroundPlaceholder = palette.BrandOrange // "#FF6A00"
	ForegroundPlaceholder = palette.Paper       // "#FFFFFF"
)

// Bake substitutes the master's placeholder colors for the mode's
// background and the finish's foreground. Both replacements happen in a
// single pass: the background resolves to the foreground placeholder in
// light mode, and the foreground resolves to the background placeholder
// for flat-orange, so sequential passes would rewrite freshly substituted
// text. Deterministic: identical inputs yield byte-identical output.
func Bake(master string, mode palette.Mode, finish string) string {
	r := strings.NewReplacer(
		BackgroundPlaceholder, palette.Background(mode),
		ForegroundPlaceholder, palette.FinishColor(finish),
	)
	return r.Replace(master)
}
