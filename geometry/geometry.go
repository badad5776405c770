// Package geometry holds the value types a parent layout uses to report
// position and size to preview components. All coordinates are terminal
// cells, origin top-left.
package geometry

import "fmt"

// Point is a position in global screen coordinates.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is a width/height pair in cells.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// IsZero reports whether no size has been measured yet.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect is the bounds a layout allocated to a view: global origin plus size.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect builds a Rect from discrete coordinates.
func NewRect(x, y, w, h int) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

func (r Rect) String() string {
	return fmt.Sprintf("%s %s", r.Origin, r.Size)
}

// MaxX returns the first column to the right of the rect.
func (r Rect) MaxX() int { return r.Origin.X + r.Size.Width }

// MaxY returns the first row below the rect.
func (r Rect) MaxY() int { return r.Origin.Y + r.Size.Height }

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.MaxX() &&
		p.Y >= r.Origin.Y && p.Y < r.MaxY()
}

// Inset shrinks the rect by n cells on every side. Shrinking below zero
// collapses the rect to its center.
func (r Rect) Inset(n int) Rect {
	w := r.Size.Width - 2*n
	h := r.Size.Height - 2*n
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return NewRect(r.Origin.X+n, r.Origin.Y+n, w, h)
}

// FrameMsg reports the rect a parent layout measured for a child view.
// Components record it during Update and read their size and global
// position from it when rendering.
type FrameMsg struct {
	Frame Rect
}
