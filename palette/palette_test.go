package palette

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaletteSize(t *testing.T) {
	require.Len(t, Default, 11)
}

func TestAtCyclesWithPeriodEleven(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Equal(t, At(i), At(i+11), "index %d", i)
	}
}

func TestAtNormalizesNegativeIndexes(t *testing.T) {
	assert.Equal(t, At(10), At(-1))
	assert.Equal(t, At(0), At(-11))
	assert.Equal(t, At(3), At(-8))
}

func TestRandomStaysInPalette(t *testing.T) {
	members := make(map[lipgloss.Color]bool, len(Default))
	for _, c := range Default {
		members[c] = true
	}
	for i := 0; i < 200; i++ {
		assert.True(t, members[Random()])
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "red", Name(Default[0]))
	assert.Equal(t, "pink", Name(Default[10]))
	assert.Equal(t, "#123456", Name(lipgloss.Color("#123456")))
}

func TestParse(t *testing.T) {
	p, err := Parse([]string{"#ff0000", "#00FF00", "#00f"})
	require.NoError(t, err)
	require.Len(t, p, 3)
	assert.Equal(t, lipgloss.Color("#ff0000"), p.At(0))
	assert.Equal(t, p.At(1), p.At(4), "custom palettes cycle by their own size")

	_, err = Parse(nil)
	assert.Error(t, err)
	_, err = Parse([]string{"red"})
	assert.Error(t, err)
	_, err = Parse([]string{"#zzzzzz"})
	assert.Error(t, err)
}
