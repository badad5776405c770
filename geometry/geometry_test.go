package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStringFormatting(t *testing.T) {
	r := NewRect(4, 2, 20, 5)
	if got, want := r.Origin.String(), "(4, 2)"; got != want {
		t.Errorf("Origin.String() = %q, want %q", got, want)
	}
	if got, want := r.Size.String(), "20x5"; got != want {
		t.Errorf("Size.String() = %q, want %q", got, want)
	}
	if got, want := r.String(), "(4, 2) 20x5"; got != want {
		t.Errorf("Rect.String() = %q, want %q", got, want)
	}
}

func TestContains(t *testing.T) {
	r := NewRect(10, 10, 4, 2)
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{10, 10}, true},
		{Point{13, 11}, true},
		{Point{14, 11}, false},
		{Point{13, 12}, false},
		{Point{9, 10}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestInset(t *testing.T) {
	got := NewRect(0, 0, 10, 6).Inset(1)
	want := NewRect(1, 1, 8, 4)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Inset(1) mismatch (-want +got):\n%s", diff)
	}

	collapsed := NewRect(0, 0, 3, 3).Inset(2)
	if !collapsed.Size.IsZero() {
		t.Errorf("over-inset rect should collapse to zero size, got %v", collapsed.Size)
	}
}
