package placeholder

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robhasacamera/CUIPreviewKit/geometry"
	"github.com/robhasacamera/CUIPreviewKit/palette"
)

func TestSequentialAppearsGetSequentialIndexes(t *testing.T) {
	counter := new(Counter)

	boxes := make([]*Placeholder, 5)
	for i := range boxes {
		boxes[i] = New(WithCounter(counter))
		boxes[i].Appear()
	}

	for want, p := range boxes {
		got, ok := p.Index()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestNestedDisappearFreesIndexForReuse(t *testing.T) {
	counter := new(Counter)

	first := New(WithCounter(counter))
	first.Appear()
	second := New(WithCounter(counter))
	second.Appear()

	second.Disappear()

	third := New(WithCounter(counter))
	third.Appear()

	got, ok := third.Index()
	require.True(t, ok)
	assert.Equal(t, 1, got, "freed index should be reused under LIFO ordering")
}

func TestIndexOverrideNeverTouchesCounter(t *testing.T) {
	counter := new(Counter)

	p := New(WithCounter(counter), WithIndex(7))
	idx, ok := p.Index()
	require.True(t, ok, "overridden index exists before Appear")
	assert.Equal(t, 7, idx)

	p.Appear()
	p.Disappear()
	p.Appear()

	assert.Equal(t, 0, counter.Live())
	assert.True(t, p.Overridden())
	assert.Contains(t, p.View(), "7*", "overridden index displays with asterisk suffix")
}

func TestAppearDisappearIdempotent(t *testing.T) {
	counter := new(Counter)

	p := New(WithCounter(counter))
	p.Appear()
	p.Appear()
	assert.Equal(t, 1, counter.Live())

	p.Disappear()
	p.Disappear()
	assert.Equal(t, 0, counter.Live())
}

func TestViewShowsSizeAndPosition(t *testing.T) {
	p := New(WithCounter(new(Counter)))
	p.Appear()
	p.SetFrame(geometry.NewRect(3, 2, 10, 4))

	view := p.View()
	assert.Contains(t, view, "10x4")
	assert.Contains(t, view, "(3, 2)")
}

func TestViewWithAllTogglesOffRendersNoText(t *testing.T) {
	p := New(
		WithCounter(new(Counter)),
		WithIndexVisible(false),
		WithSizeVisible(false),
		WithPositionVisible(false),
	)
	p.Appear()
	p.SetFrame(geometry.NewRect(3, 2, 10, 4))

	view := p.View()
	assert.False(t, strings.ContainsAny(view, "0123456789"), "no overlay text expected:\n%s", view)
	assert.False(t, strings.Contains(view, "("), "no position text expected:\n%s", view)
}

func TestColorDerivation(t *testing.T) {
	t.Run("from assigned index", func(t *testing.T) {
		counter := new(Counter)
		for i := 0; i < 13; i++ {
			p := New(WithCounter(counter))
			p.Appear()
			assert.Equal(t, palette.At(i), p.Color(), "index %d", i)
		}
	})

	t.Run("from index override", func(t *testing.T) {
		p := New(WithIndex(25))
		assert.Equal(t, palette.At(25), p.Color())
	})

	t.Run("explicit override wins", func(t *testing.T) {
		custom := lipgloss.Color("#101F38")
		p := New(WithIndex(25), WithColor(custom))
		assert.Equal(t, custom, p.Color())
	})

	t.Run("random before an index exists", func(t *testing.T) {
		members := make(map[lipgloss.Color]bool, len(palette.Default))
		for _, c := range palette.Default {
			members[c] = true
		}
		p := New(WithCounter(new(Counter)))
		for i := 0; i < 50; i++ {
			assert.True(t, members[p.Color()])
		}
	})
}

func TestUpdateHandlesFrameAndVisibility(t *testing.T) {
	counter := new(Counter)
	p := New(WithCounter(counter))

	p.Update(geometry.FrameMsg{Frame: geometry.NewRect(1, 1, 8, 3)})
	assert.Equal(t, geometry.NewRect(1, 1, 8, 3), p.Frame())

	p.Update(VisibilityMsg{Visible: true})
	assert.True(t, p.Visible())
	assert.Equal(t, 1, counter.Live())

	p.Update(VisibilityMsg{Visible: false})
	assert.False(t, p.Visible())
	assert.Equal(t, 0, counter.Live())
}

func TestCornerRadiusSelectsBorder(t *testing.T) {
	sharp := New(WithCounter(new(Counter)))
	sharp.SetFrame(geometry.NewRect(0, 0, 6, 3))
	assert.Contains(t, sharp.View(), lipgloss.NormalBorder().TopLeft)

	round := New(WithCounter(new(Counter)), WithCornerRadius(4))
	round.SetFrame(geometry.NewRect(0, 0, 6, 3))
	assert.Contains(t, round.View(), lipgloss.RoundedBorder().TopLeft)
}

func TestReportMentionsIndexAndFrame(t *testing.T) {
	p := New(WithIndex(3), WithColor(palette.Default[5]))
	p.SetFrame(geometry.NewRect(0, 0, 6, 3))

	report := p.Report()
	assert.Contains(t, report, "index=3*")
	assert.Contains(t, report, "teal")
	assert.Contains(t, report, "6x3")
	assert.Contains(t, report, p.ID().String())
}
