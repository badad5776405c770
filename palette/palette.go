// Package palette provides the deterministic color selection used by
// preview placeholders. Colors cycle through a fixed ordered palette
// based on the placeholder index, so the same index always renders in
// the same color across runs.
package palette

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette is an ordered list of colors indexed deterministically by
// placeholder index. Modulo indexing is the intended behavior.
type Palette []lipgloss.Color

// Default is the standard placeholder palette. Exactly 11 colors; the
// order is part of the contract (index N always maps to the same color).
var Default = Palette{
	lipgloss.Color("#FF3B30"), // red
	lipgloss.Color("#FF9500"), // orange
	lipgloss.Color("#FFCC00"), // yellow
	lipgloss.Color("#34C759"), // green
	lipgloss.Color("#00C7BE"), // mint
	lipgloss.Color("#30B0C7"), // teal
	lipgloss.Color("#32ADE6"), // cyan
	lipgloss.Color("#007AFF"), // blue
	lipgloss.Color("#5856D6"), // indigo
	lipgloss.Color("#AF52DE"), // purple
	lipgloss.Color("#FF2D55"), // pink
}

var defaultNames = map[lipgloss.Color]string{
	Default[0]:  "red",
	Default[1]:  "orange",
	Default[2]:  "yellow",
	Default[3]:  "green",
	Default[4]:  "mint",
	Default[5]:  "teal",
	Default[6]:  "cyan",
	Default[7]:  "blue",
	Default[8]:  "indigo",
	Default[9]:  "purple",
	Default[10]: "pink",
}

// At returns the color for index, cycling modulo the palette size.
// Negative indexes are normalized so the result is always in range.
func (p Palette) At(index int) lipgloss.Color {
	i := index % len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// Random returns a uniformly random member of the palette.
func (p Palette) Random() lipgloss.Color {
	return p[rand.Intn(len(p))]
}

// At returns the default palette color for index.
func At(index int) lipgloss.Color { return Default.At(index) }

// Random returns a uniformly random color from the default palette.
func Random() lipgloss.Color { return Default.Random() }

// Name returns the human-readable name of a default palette color, or
// the raw color value for anything outside the default palette.
func Name(c lipgloss.Color) string {
	if name, ok := defaultNames[c]; ok {
		return name
	}
	return string(c)
}

// Parse builds a palette from hex color strings ("#RRGGBB"). Used to
// load palette overrides from configuration.
func Parse(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("palette: no colors given")
	}
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		h = strings.TrimSpace(h)
		if !strings.HasPrefix(h, "#") || (len(h) != 7 && len(h) != 4) {
			return nil, fmt.Errorf("palette: invalid hex color %q", h)
		}
		for _, r := range h[1:] {
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return nil, fmt.Errorf("palette: invalid hex color %q", h)
			}
		}
		p = append(p, lipgloss.Color(h))
	}
	return p, nil
}
