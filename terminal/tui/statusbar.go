package tui

import "github.com/lixenwraith/waveform/terminal"

// BarSection represents one segment of a status bar
type BarSection struct {
	Label      string
	Value      string
	LabelStyle Style
	ValueStyle Style
}

// BarOpts configures status bar rendering
type BarOpts struct {
	Separator string // Between sections, default " │ "
	SepStyle  Style
	Bg        terminal.Color
	Padding   int // Left padding, default 1
}

// DefaultBarOpts returns sensible defaults
func DefaultBarOpts() BarOpts {
	return BarOpts{
		Separator: " │ ",
		SepStyle:  Style{Fg: terminal.DarkGray},
		Padding:   1,
	}
}

// StatusBar renders sections left-to-right on row y, dropping sections
// that no longer fit
func (r Region) StatusBar(y int, sections []BarSection, opts BarOpts) {
	if y < 0 || y >= r.H || len(sections) == 0 {
		return
	}

	if opts.Separator == "" {
		opts.Separator = " │ "
	}
	if opts.Padding == 0 {
		opts.Padding = 1
	}

	// Fill background
	bgStyle := Style{Bg: opts.Bg}
	for x := 0; x < r.W; x++ {
		r.CellStyled(x, y, ' ', bgStyle)
	}

	x := opts.Padding
	for i, sec := range sections {
		if i > 0 {
			if x+RuneLen(opts.Separator) > r.W {
				break
			}
			sep := opts.SepStyle
			sep.Bg = opts.Bg
			r.Text(x, y, opts.Separator, sep)
			x += RuneLen(opts.Separator)
		}

		label := sec.LabelStyle
		label.Bg = opts.Bg
		r.Text(x, y, sec.Label, label)
		x += RuneLen(sec.Label)

		if sec.Value != "" {
			value := sec.ValueStyle
			value.Bg = opts.Bg
			r.Text(x, y, sec.Value, value)
			x += RuneLen(sec.Value)
		}

		if x >= r.W {
			break
		}
	}
}
