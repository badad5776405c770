// Package canvas drives placeholder previews: it owns the index counter,
// lays placeholders out in rows, reports each one its frame, and keeps
// the appear/disappear ordering strictly nested so counter indexes are
// reused predictably.
package canvas

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robhasacamera/CUIPreviewKit/geometry"
	"github.com/robhasacamera/CUIPreviewKit/placeholder"
)

// Default cell dimensions, sized so all three overlay lines fit inside
// the border.
const (
	DefaultCellWidth  = 18
	DefaultCellHeight = 5
)

// Canvas is a preview surface. Placeholders are pushed onto and popped
// off a stack, which is exactly the nested lifecycle the placeholder
// counter assumes.
type Canvas struct {
	cellWidth  int
	cellHeight int

	width   int
	height  int
	counter *placeholder.Counter
	stack   []*placeholder.Placeholder
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithCellSize sets the frame allocated to each placeholder.
func WithCellSize(w, h int) Option {
	return func(c *Canvas) {
		if w > 0 {
			c.cellWidth = w
		}
		if h > 0 {
			c.cellHeight = h
		}
	}
}

// New builds an empty canvas with its own counter.
func New(opts ...Option) *Canvas {
	c := &Canvas{
		cellWidth:  DefaultCellWidth,
		cellHeight: DefaultCellHeight,
		counter:    new(placeholder.Counter),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Counter exposes the canvas-owned index counter so callers can
// construct placeholders bound to it.
func (c *Canvas) Counter() *placeholder.Counter { return c.counter }

// Len returns the number of placeholders on the canvas.
func (c *Canvas) Len() int { return len(c.stack) }

// Top returns the most recently pushed placeholder, or nil when empty.
func (c *Canvas) Top() *placeholder.Placeholder {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

// Push adds a placeholder, makes it appear, and assigns its frame.
func (c *Canvas) Push(p *placeholder.Placeholder) {
	c.stack = append(c.stack, p)
	p.Appear()
	c.layout()
}

// Pop removes the most recent placeholder and makes it disappear.
// Returns nil when the canvas is empty.
func (c *Canvas) Pop() *placeholder.Placeholder {
	if len(c.stack) == 0 {
		return nil
	}
	p := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	p.Disappear()
	return p
}

// Init implements the bubbletea component shape.
func (c *Canvas) Init() tea.Cmd {
	return nil
}

// Update tracks the surface size and relays everything else to the
// placeholders.
func (c *Canvas) Update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		c.SetSize(size.Width, size.Height)
		return nil
	}
	for _, p := range c.stack {
		p.Update(msg)
	}
	return nil
}

// SetSize records the surface dimensions and recomputes every frame.
func (c *Canvas) SetSize(w, h int) {
	c.width = w
	c.height = h
	c.layout()
}

// layout flows placeholders row-major against the canvas width and
// reports each its global frame.
func (c *Canvas) layout() {
	perRow := c.perRow()
	for i, p := range c.stack {
		col := i % perRow
		row := i / perRow
		frame := geometry.NewRect(col*c.cellWidth, row*c.cellHeight, c.cellWidth, c.cellHeight)
		p.Update(geometry.FrameMsg{Frame: frame})
	}
}

func (c *Canvas) perRow() int {
	if c.width < c.cellWidth {
		return 1
	}
	return c.width / c.cellWidth
}

// View renders the placeholder grid.
func (c *Canvas) View() string {
	if len(c.stack) == 0 {
		return ""
	}

	perRow := c.perRow()
	var rows []string
	for start := 0; start < len(c.stack); start += perRow {
		end := start + perRow
		if end > len(c.stack) {
			end = len(c.stack)
		}
		views := make([]string, 0, end-start)
		for _, p := range c.stack[start:end] {
			views = append(views, p.View())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
