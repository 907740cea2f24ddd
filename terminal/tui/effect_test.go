package tui

import (
	"math"
	"testing"

	"github.com/lixenwraith/waveform/terminal"
)

func TestFadeFactor(t *testing.T) {
	tests := []struct {
		name  string
		col   int
		width int
		want  float64
	}{
		{"Leftmost column", 0, 10, 0.0},
		{"Left ramp", 2, 10, 0.4},
		{"Midpoint", 5, 10, 1.0},
		{"Right half", 7, 10, 1.0},
		{"Rightmost column", 9, 10, 1.0},
		{"Zero width", 3, 0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FadeFactor(tt.col, tt.width)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FadeFactor(%d, %d) = %f, want %f", tt.col, tt.width, got, tt.want)
			}
		})
	}
}

func TestFadeFactorMonotonic(t *testing.T) {
	const width = 40
	prev := -1.0
	for col := 0; col < width; col++ {
		f := FadeFactor(col, width)
		if f < prev {
			t.Fatalf("FadeFactor decreased at col %d: %f < %f", col, f, prev)
		}
		if col > width/2 && f != 1.0 {
			t.Errorf("FadeFactor(%d, %d) = %f, want 1.0 in right half", col, width, f)
		}
		prev = f
	}
}

func TestGradientFactor(t *testing.T) {
	if got := GradientFactor(0, 4); got != 1.0 {
		t.Errorf("GradientFactor(0, 4) = %f, want 1.0", got)
	}
	if got := GradientFactor(4, 4); math.Abs(got-0.3) > 1e-9 {
		t.Errorf("GradientFactor(4, 4) = %f, want 0.3", got)
	}
	if got := GradientFactor(2, 0); got != 1.0 {
		t.Errorf("GradientFactor(2, 0) = %f, want 1.0", got)
	}
}

func TestScaleColorTruncates(t *testing.T) {
	c := ScaleColor(terminal.FromRGB(100, 200, 50), 0.5)
	if got := c.RGB(); !got.Equal(terminal.RGB{R: 50, G: 100, B: 25}) {
		t.Errorf("ScaleColor(100,200,50 @ 0.5) = %v, want {50 100 25}", got)
	}

	// Truncation, not rounding: 255 * 0.3 = 76.5 -> 76
	c = ScaleColor(terminal.FromRGB(0, 0, 255), 0.3)
	if got := c.RGB(); !got.Equal(terminal.RGB{R: 0, G: 0, B: 76}) {
		t.Errorf("ScaleColor(0,0,255 @ 0.3) = %v, want {0 0 76}", got)
	}

	c = ScaleColor(terminal.FromRGB(100, 200, 50), 0.0)
	if got := c.RGB(); !got.Equal(terminal.RGB{}) {
		t.Errorf("ScaleColor at 0.0 = %v, want black", got)
	}
}

func TestScaleColorFullFactorMatchesRGB(t *testing.T) {
	colors := []terminal.Color{
		terminal.Black, terminal.Red, terminal.Green, terminal.Yellow,
		terminal.Blue, terminal.Magenta, terminal.Cyan, terminal.Gray,
		terminal.DarkGray, terminal.LightRed, terminal.LightGreen,
		terminal.LightYellow, terminal.LightBlue, terminal.LightMagenta,
		terminal.LightCyan, terminal.White,
		terminal.Indexed(3), terminal.Indexed(200),
		terminal.FromRGB(1, 2, 3), terminal.FromRGB(255, 255, 255),
	}

	for _, c := range colors {
		if got := ScaleColor(c, 1.0).RGB(); !got.Equal(c.RGB()) {
			t.Errorf("ScaleColor(%v, 1.0).RGB() = %v, want %v", c, got, c.RGB())
		}
	}
}

func TestScaleColorNeverBrightens(t *testing.T) {
	for _, factor := range []float64{0.0, 0.1, 0.3, 0.5, 0.7, 0.99, 1.0} {
		orig := terminal.FromRGB(13, 170, 251).RGB()
		got := ScaleColor(terminal.FromRGB(13, 170, 251), factor).RGB()
		if got.R > orig.R || got.G > orig.G || got.B > orig.B {
			t.Errorf("factor %f brightened a channel: %v > %v", factor, got, orig)
		}
	}
}

func TestEffectsSkipUnsetForeground(t *testing.T) {
	s := Style{Bg: terminal.Blue, Attr: terminal.AttrBold}

	if got := ApplyFade(s, 0.5); got != s {
		t.Errorf("ApplyFade synthesized a foreground: %+v", got)
	}
	if got := ApplyGradient(s, 0.5); got != s {
		t.Errorf("ApplyGradient synthesized a foreground: %+v", got)
	}
}

func TestApplyGradientDimsByHeight(t *testing.T) {
	base := NewStyle(terminal.FromRGB(0, 0, 255))

	center := ApplyGradient(base, 0.0)
	if got := center.Fg.RGB(); !got.Equal(terminal.RGB{R: 0, G: 0, B: 255}) {
		t.Errorf("gradient at center = %v, want full brightness", got)
	}

	peak := ApplyGradient(base, 1.0)
	if got := peak.Fg.RGB(); !got.Equal(terminal.RGB{R: 0, G: 0, B: 76}) {
		t.Errorf("gradient at peak = %v, want {0 0 76}", got)
	}
}
