package tui

import "github.com/lixenwraith/waveform/terminal"

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box draws border around region edge
func (r Region) Box(line LineType, fg terminal.Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}

	chars := boxChars[line]
	style := Style{Fg: fg}

	// Corners
	r.CellStyled(0, 0, chars[boxTL], style)
	r.CellStyled(r.W-1, 0, chars[boxTR], style)
	r.CellStyled(0, r.H-1, chars[boxBL], style)
	r.CellStyled(r.W-1, r.H-1, chars[boxBR], style)

	// Horizontal edges
	for x := 1; x < r.W-1; x++ {
		r.CellStyled(x, 0, chars[boxH], style)
		r.CellStyled(x, r.H-1, chars[boxH], style)
	}

	// Vertical edges
	for y := 1; y < r.H-1; y++ {
		r.CellStyled(0, y, chars[boxV], style)
		r.CellStyled(r.W-1, y, chars[boxV], style)
	}
}

// Card draws titled border and returns inner content region
func (r Region) Card(title string, line LineType, fg terminal.Color) Region {
	r.Box(line, fg)

	if title != "" && r.W > 4 {
		maxTitleLen := r.W - 4
		displayTitle := title
		if RuneLen(displayTitle) > maxTitleLen {
			displayTitle = Truncate(displayTitle, maxTitleLen)
		}
		titleX := (r.W - RuneLen(displayTitle) - 2) / 2
		r.Text(titleX, 0, " "+displayTitle+" ", Style{Fg: fg, Attr: terminal.AttrBold})
	}

	return r.Inset(1)
}
