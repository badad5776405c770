// Package placeholder implements a colored preview box for inspecting
// terminal UI layout during development. Each placeholder renders a
// filled rectangle overlaid with its index, its measured size, and its
// global position, all individually toggleable. Indexes auto-increment
// through a Counter as placeholders appear and are handed back as they
// disappear, so a strictly nested appear/disappear sequence reuses them.
package placeholder

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/robhasacamera/CUIPreviewKit/geometry"
	"github.com/robhasacamera/CUIPreviewKit/palette"
)

// overlayForeground keeps the text readable against every palette fill.
var overlayForeground = lipgloss.Color("#ffffff")

// VisibilityMsg drives the appear/disappear lifecycle through Update.
type VisibilityMsg struct {
	Visible bool
}

// Placeholder is the preview box component. Construct with New; the
// configuration set by options is immutable afterwards. Not safe for
// concurrent use: drive it from the UI event loop only.
type Placeholder struct {
	id uuid.UUID

	// configuration, fixed at construction
	indexOverride *int
	colorOverride *lipgloss.Color
	cornerRadius  float64
	showIndex     bool
	showSize      bool
	showPosition  bool
	counter       *Counter
	palette       palette.Palette

	// runtime state
	visible  bool
	index    int
	hasIndex bool
	frame    geometry.Rect
}

// New builds a placeholder. Without options it takes its index from
// SharedCounter on appear, derives its color from the default palette,
// renders sharp corners, and shows all three overlay lines.
func New(opts ...Option) *Placeholder {
	p := &Placeholder{
		id:           uuid.New(),
		showIndex:    true,
		showSize:     true,
		showPosition: true,
		counter:      SharedCounter,
		palette:      palette.Default,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID identifies the instance in debug logs.
func (p *Placeholder) ID() uuid.UUID { return p.id }

// Visible reports whether the placeholder is currently on screen.
func (p *Placeholder) Visible() bool { return p.visible }

// Overridden reports whether the index was pinned at construction.
func (p *Placeholder) Overridden() bool { return p.indexOverride != nil }

// Index returns the displayed index and whether one exists yet. An
// override exists immediately; a counter-assigned index only after the
// first Appear.
func (p *Placeholder) Index() (int, bool) {
	if p.indexOverride != nil {
		return *p.indexOverride, true
	}
	return p.index, p.hasIndex
}

// Frame returns the bounds last reported by the parent layout.
func (p *Placeholder) Frame() geometry.Rect { return p.frame }

// SetFrame records the bounds the parent layout measured for this view.
func (p *Placeholder) SetFrame(r geometry.Rect) { p.frame = r }

// Appear marks the placeholder visible. Without an index override it
// takes the counter's current value and advances the counter; with one
// the counter is untouched. Idempotent while visible.
func (p *Placeholder) Appear() {
	if p.visible {
		return
	}
	p.visible = true
	if p.indexOverride != nil {
		return
	}
	p.index = p.counter.Acquire()
	p.hasIndex = true
}

// Disappear marks the placeholder invisible and, when the index came
// from the counter, hands it back. Assumes strictly nested ordering with
// respect to other placeholders on the same counter. Idempotent while
// invisible.
func (p *Placeholder) Disappear() {
	if !p.visible {
		return
	}
	p.visible = false
	if p.indexOverride != nil {
		return
	}
	p.counter.Release()
	p.hasIndex = false
}

// Color returns the fill: the explicit override if set, the palette
// color for the index when one exists, and a random palette member while
// no index has been assigned.
func (p *Placeholder) Color() lipgloss.Color {
	switch {
	case p.colorOverride != nil:
		return *p.colorOverride
	case p.indexOverride != nil:
		return p.palette.At(*p.indexOverride)
	case p.hasIndex:
		return p.palette.At(p.index)
	default:
		return p.palette.Random()
	}
}

// Init implements the bubbletea component shape. Placeholders have no
// startup work.
func (p *Placeholder) Init() tea.Cmd {
	return nil
}

// Update records reported frames and visibility changes.
func (p *Placeholder) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case geometry.FrameMsg:
		p.frame = msg.Frame
	case VisibilityMsg:
		if msg.Visible {
			p.Appear()
		} else {
			p.Disappear()
		}
	}
	return nil
}

// View renders the box at the reported frame size. With every overlay
// toggle off only the colored rectangle renders.
func (p *Placeholder) View() string {
	fill := p.Color()

	border := lipgloss.NormalBorder()
	if p.cornerRadius > 0 {
		border = lipgloss.RoundedBorder()
	}

	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(fill).
		BorderBackground(fill).
		Background(fill).
		Foreground(overlayForeground).
		Align(lipgloss.Center, lipgloss.Center)

	// Frame is the border box; the style sizes the interior.
	if w := p.frame.Size.Width; w > 2 {
		style = style.Width(w - 2)
	}
	if h := p.frame.Size.Height; h > 2 {
		style = style.Height(h - 2)
	}

	return style.Render(p.overlay())
}

func (p *Placeholder) overlay() string {
	var lines []string
	if p.showIndex {
		if p.indexOverride != nil {
			lines = append(lines, strconv.Itoa(*p.indexOverride)+"*")
		} else if p.hasIndex {
			lines = append(lines, strconv.Itoa(p.index))
		}
	}
	if p.showSize {
		lines = append(lines, p.frame.Size.String())
	}
	if p.showPosition {
		lines = append(lines, p.frame.Origin.String())
	}
	return strings.Join(lines, "\n")
}

// Report summarizes the instance for logs and clipboard export.
func (p *Placeholder) Report() string {
	idx := "unassigned"
	if i, ok := p.Index(); ok {
		idx = strconv.Itoa(i)
		if p.Overridden() {
			idx += "*"
		}
	}
	return fmt.Sprintf("placeholder %s index=%s color=%s frame=%s visible=%t",
		p.id, idx, palette.Name(p.Color()), p.frame, p.visible)
}
