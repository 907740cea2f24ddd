package tui

import "github.com/lixenwraith/waveform/terminal"

// Mode selects the column rendering strategy
type Mode uint8

const (
	// ModeBraille draws 4 vertical sub-units per cell using the left dot
	// column of braille glyphs. Thin dots, smooth peaks.
	ModeBraille Mode = iota

	// ModeBlock draws one vertical unit per cell using the left half
	// block. Solid look, steppy vertical changes.
	ModeBlock
)

// Waveform renders two series as a dual-polarity chart around a horizontal
// center axis: the top series grows upward, the bottom series downward.
// Newest samples sit at the right edge; series shorter than the region
// leave their leftmost columns blank.
//
// Waveform is an immutable value configured by chaining; it borrows the
// series slices for the duration of a Render call and retains nothing.
// A render pass only writes cells, never reads them back, so concurrent
// renders into disjoint regions are safe.
type Waveform struct {
	top    []float64
	bottom []float64

	topStyle    Style
	bottomStyle Style

	// Raw sample at or above max fills the polarity completely.
	// Callers must keep these positive; zero is not guarded.
	topMax    float64
	bottomMax float64

	mode     Mode
	fade     bool
	gradient bool

	border   LineType
	borderFg terminal.Color
	boxed    bool
	title    string
}

// NewWaveform creates a waveform over the two series. Defaults: braille
// mode, no border, no effects, default styles, maxima of 1.0.
func NewWaveform(top, bottom []float64) Waveform {
	return Waveform{
		top:       top,
		bottom:    bottom,
		topMax:    1.0,
		bottomMax: 1.0,
	}
}

// Border adds a box around the chart; rendering shrinks to its interior
func (w Waveform) Border(line LineType, fg terminal.Color) Waveform {
	w.boxed = true
	w.border = line
	w.borderFg = fg
	return w
}

// Title sets a label centered in the border's top edge.
// Ignored without a border.
func (w Waveform) Title(title string) Waveform {
	w.title = title
	return w
}

// Mode sets the column rendering strategy
func (w Waveform) Mode(m Mode) Waveform {
	w.mode = m
	return w
}

// TopStyle sets the style for the upward polarity
func (w Waveform) TopStyle(s Style) Waveform {
	w.topStyle = s
	return w
}

// BottomStyle sets the style for the downward polarity
func (w Waveform) BottomStyle(s Style) Waveform {
	w.bottomStyle = s
	return w
}

// Fade enables the horizontal fade effect: older (leftward) columns dim
// toward black, the right half stays at full brightness
func (w Waveform) Fade(enable bool) Waveform {
	w.fade = enable
	return w
}

// Gradient enables the vertical gradient effect: rows farther from the
// center axis render dimmer
func (w Waveform) Gradient(enable bool) Waveform {
	w.gradient = enable
	return w
}

// TopMax sets the normalization maximum for the top series; must be > 0
func (w Waveform) TopMax(max float64) Waveform {
	w.topMax = max
	return w
}

// BottomMax sets the normalization maximum for the bottom series; must be > 0
func (w Waveform) BottomMax(max float64) Waveform {
	w.bottomMax = max
	return w
}

// Render draws the waveform into the region. Zero-sized regions are a
// no-op. Out-of-range samples clamp to a full or empty polarity; there is
// no failure outcome.
func (w Waveform) Render(r Region) {
	inner := r
	if w.boxed {
		if w.title != "" {
			inner = r.Card(w.title, w.border, w.borderFg)
		} else {
			r.Box(w.border, w.borderFg)
			inner = r.Inset(1)
		}
	}

	if inner.W < 1 || inner.H < 1 {
		return
	}

	centerY := inner.H / 2
	maxRows := inner.H / 2
	width := inner.W

	// Shorter series wins; both polarities show their newest n samples,
	// right-aligned across the interior width
	top := tail(w.top, width)
	bottom := tail(w.bottom, width)
	n := len(top)
	if len(bottom) < n {
		n = len(bottom)
	}
	top = tail(top, n)
	bottom = tail(bottom, n)
	startX := width - n

	for x := startX; x < width; x++ {
		i := x - startX

		topVal := clamp01(top[i] / w.topMax)
		bottomVal := clamp01(bottom[i] / w.bottomMax)

		// Factor 1.0 still flows through the RGB conversion path so
		// faded and unfaded columns carry the same color representation
		fade := 1.0
		if w.fade {
			fade = FadeFactor(x, width)
		}

		switch w.mode {
		case ModeBraille:
			w.renderBrailleColumn(inner, x, centerY, maxRows, topVal, true, w.topStyle, fade)
			w.renderBrailleColumn(inner, x, centerY, maxRows, bottomVal, false, w.bottomStyle, fade)
		case ModeBlock:
			w.renderBlockColumn(inner, x, centerY, maxRows, topVal, true, w.topStyle, fade)
			w.renderBlockColumn(inner, x, centerY, maxRows, bottomVal, false, w.bottomStyle, fade)
		}
	}
}

// tail returns the last n elements of s, or s itself when shorter
func tail(s []float64, n int) []float64 {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
