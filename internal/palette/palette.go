// Package palette holds the StrategyDECK brand color tokens and the
// finish-to-color mapping used when baking icon variants. All tables are
// fixed, process-wide, and read-only.
package palette

import "sort"

// Mode selects the background treatment of a variant.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ValidMode reports whether s is one of the two supported modes.
func ValidMode(s string) bool {
	return s == string(ModeLight) || s == string(ModeDark)
}

// Brand color tokens (name → hex).
const (
	Paper       = "#FFFFFF"
	Slate950    = "#060607"
	BrandOrange = "#FF6A00"
	Ink         = "#000000"
	Copper      = "#B87333"
	BurntOrange = "#CC5500"
	Matte       = "#333333"
	Embossed    = "#F5F5F5"
)

// Tokens is the registry of all named color tokens.
var Tokens = map[string]string{
	"paper":        Paper,
	"slate_950":    Slate950,
	"brand_orange": BrandOrange,
	"ink":          Ink,
	"copper":       Copper,
	"burnt_orange": BurntOrange,
	"matte":        Matte,
	"embossed":     Embossed,
}

// FinishColors maps each finish name to its foreground color.
var FinishColors = map[string]string{
	"flat-orange":    BrandOrange,
	"matte-carbon":   Matte,
	"satin-black":    Ink,
	"burnt-orange":   BurntOrange,
	"copper-foil":    Copper,
	"embossed-paper": Embossed,
}

// ValidFinish reports whether name is a known finish.
func ValidFinish(name string) bool {
	_, ok := FinishColors[name]
	return ok
}

// FinishColor returns the foreground color for a finish. Unknown finishes
// fall back to brand orange; validation makes that unreachable in a normal
// run, the fallback only guards direct callers.
func FinishColor(name string) string {
	if c, ok := FinishColors[name]; ok {
		return c
	}
	return BrandOrange
}

// Background returns the background color for a mode: paper white for
// light, near-black slate for dark.
func Background(mode Mode) string {
	if mode == ModeDark {
		return Slate950
	}
	return Paper
}

// FinishNames returns all finish names in sorted order, for error messages
// and help output.
func FinishNames() []string {
	names := make([]string, 0, len(FinishColors))
	for name := range FinishColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
