package tui

import "github.com/lixenwraith/waveform/terminal"

// gradientDepth is how much brightness the gradient removes at the
// outermost row: center renders at 1.0, the peak at 0.3
const gradientDepth = 0.7

// FadeFactor returns the horizontal brightness factor for a column.
// The right half of the width renders at full brightness, the left half
// ramps linearly from 0 to 1. Non-decreasing in col.
func FadeFactor(col, width int) float64 {
	if width <= 0 {
		return 1.0
	}
	linear := float64(col) / float64(width)
	if linear > 0.5 {
		return 1.0
	}
	return linear * 2.0
}

// GradientFactor returns the vertical brightness factor for a row offset
// from the center axis. Offset 0 is full brightness, maxOffset is 30%.
func GradientFactor(offset, maxOffset int) float64 {
	if maxOffset <= 0 {
		return 1.0
	}
	return 1.0 - float64(offset)/float64(maxOffset)*gradientDepth
}

// ScaleColor multiplies each channel by factor, truncating toward zero.
// The result is always an explicit-RGB color, even at factor 1.0, so that
// scaled and unscaled cells never mix named and RGB representations.
func ScaleColor(c terminal.Color, factor float64) terminal.Color {
	rgb := c.RGB()
	return terminal.FromRGB(
		uint8(float64(rgb.R)*factor),
		uint8(float64(rgb.G)*factor),
		uint8(float64(rgb.B)*factor),
	)
}

// ApplyFade dims the style's foreground by the fade factor.
// A style without a foreground is returned unchanged.
func ApplyFade(s Style, factor float64) Style {
	if !s.Fg.IsSet() {
		return s
	}
	s.Fg = ScaleColor(s.Fg, factor)
	return s
}

// ApplyGradient dims the style's foreground for a row at the given height
// ratio (0.0 center, 1.0 outermost). A style without a foreground is
// returned unchanged.
//
// When combined with fade, gradient must be applied first; the two
// truncating multiplications do not commute.
func ApplyGradient(s Style, ratio float64) Style {
	if !s.Fg.IsSet() {
		return s
	}
	s.Fg = ScaleColor(s.Fg, 1.0-ratio*gradientDepth)
	return s
}
