package placeholder

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robhasacamera/CUIPreviewKit/palette"
)

// Option configures a Placeholder at construction time. Configuration is
// immutable afterwards.
type Option func(*Placeholder)

// WithIndex pins the displayed index instead of taking one from the
// counter. Overridden indexes render with a trailing asterisk and never
// touch the counter.
func WithIndex(index int) Option {
	return func(p *Placeholder) {
		p.indexOverride = &index
	}
}

// WithColor pins the fill color instead of deriving it from the palette.
func WithColor(c lipgloss.Color) Option {
	return func(p *Placeholder) {
		p.colorOverride = &c
	}
}

// WithCornerRadius sets the corner rounding. Zero (the default) renders
// sharp corners; any positive radius renders rounded ones.
func WithCornerRadius(radius float64) Option {
	return func(p *Placeholder) {
		p.cornerRadius = radius
	}
}

// WithIndexVisible toggles the index overlay line. Default true.
func WithIndexVisible(show bool) Option {
	return func(p *Placeholder) {
		p.showIndex = show
	}
}

// WithSizeVisible toggles the measured-size overlay line. Default true.
func WithSizeVisible(show bool) Option {
	return func(p *Placeholder) {
		p.showSize = show
	}
}

// WithPositionVisible toggles the global-position overlay line. Default true.
func WithPositionVisible(show bool) Option {
	return func(p *Placeholder) {
		p.showPosition = show
	}
}

// WithCounter makes the placeholder draw its index from c instead of
// SharedCounter.
func WithCounter(c *Counter) Option {
	return func(p *Placeholder) {
		p.counter = c
	}
}

// WithPalette selects the palette indexes are mapped into. Defaults to
// palette.Default.
func WithPalette(pal palette.Palette) Option {
	return func(p *Placeholder) {
		p.palette = pal
	}
}
