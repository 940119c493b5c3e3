package viz

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colormap linearly maps a scalar in [min, max] to a color interpolated
// between a theme's Secondary (low) and Primary (high) colors, in a
// perceptually uniform (Lab) color space.
type Colormap struct {
	low, high colorful.Color
	min, max  float64
}

// NewColormap builds a colormap spanning [min, max] using theme's
// Secondary and Primary colors as its low and high ends.
func NewColormap(theme Theme, min, max float64) Colormap {
	low, _ := colorful.Hex(string(theme.Secondary))
	high, _ := colorful.Hex(string(theme.Primary))
	return Colormap{low: low, high: high, min: min, max: max}
}

// Color returns the interpolated lipgloss color for value, clamped to the
// colormap's configured range.
func (c Colormap) Color(value float64) lipgloss.Color {
	t := 0.0
	if c.max > c.min {
		t = (value - c.min) / (c.max - c.min)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lipgloss.Color(c.low.BlendLab(c.high, t).Hex())
}

// NormalizeRange returns the [min, max] of a scalar field, used to build a
// Colormap that spans the field currently present in a frame.
func NormalizeRange(values []float64) (min, max float64) {
	if len(values) == 0 {
		return 0, 1
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		max = min + 1
	}
	return min, max
}
