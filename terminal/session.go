package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// Session wraps a tcell screen: raw mode, alternate screen buffer, hidden
// cursor. The caller owns the render loop and pushes full cell buffers
// through Flush.
type Session struct {
	screen tcell.Screen
}

// NewSession allocates and initializes the terminal screen
func NewSession() (*Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return &Session{screen: screen}, nil
}

// Fini restores terminal state. Safe to call multiple times
func (s *Session) Fini() {
	s.screen.Fini()
}

// Size returns current terminal dimensions
func (s *Session) Size() (width, height int) {
	return s.screen.Size()
}

// PollEvent blocks until the next input or resize event
func (s *Session) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Sync forces a full redraw on the next Flush
func (s *Session) Sync() {
	s.screen.Sync()
}

// Flush writes a row-major cell buffer to the screen
// Cells are indexed cells[y*width + x]
func (s *Session) Flush(cells []Cell, width, height int) {
	if width > 0 && len(cells) < width*height {
		height = len(cells) / width
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := cells[y*width+x]
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			s.screen.SetContent(x, y, ch, nil, cellStyle(c))
		}
	}
	s.screen.Show()
}

// cellStyle converts cell colors and attributes to a tcell style.
// Zero colors map to the terminal default rather than black.
func cellStyle(c Cell) tcell.Style {
	st := tcell.StyleDefault
	if c.Fg != (RGB{}) {
		st = st.Foreground(rgbToTcell(c.Fg))
	}
	if c.Bg != (RGB{}) {
		st = st.Background(rgbToTcell(c.Bg))
	}
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// rgbToTcell converts RGB to tcell.Color
func rgbToTcell(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
