package tui

import "github.com/lixenwraith/waveform/terminal"

// Style bundles foreground, background, and attributes for cell rendering.
// Unset colors fall through to the terminal default at flush time.
type Style struct {
	Fg   terminal.Color
	Bg   terminal.Color
	Attr terminal.Attr
}

// NewStyle returns a style with the given foreground and no background
func NewStyle(fg terminal.Color) Style {
	return Style{Fg: fg}
}

// Bold returns the style with the bold attribute added
func (s Style) Bold() Style {
	s.Attr |= terminal.AttrBold
	return s
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return !s.Fg.IsSet() && !s.Bg.IsSet() && s.Attr == terminal.AttrNone
}

// resolve returns concrete cell colors; unset colors become zero RGB,
// which the session renders as the terminal default
func (s Style) resolve() (fg, bg terminal.RGB) {
	if s.Fg.IsSet() {
		fg = s.Fg.RGB()
	}
	if s.Bg.IsSet() {
		bg = s.Bg.RGB()
	}
	return fg, bg
}
