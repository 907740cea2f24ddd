package tui

// Truncate truncates string with … suffix if exceeds maxLen
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// RuneLen returns display width (rune count, not byte count)
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Text renders text at position, truncates at region edge
func (r Region) Text(x, y int, s string, style Style) {
	if y < 0 || y >= r.H {
		return
	}
	col := 0
	for _, ch := range s {
		if x+col >= r.W {
			break
		}
		if x+col >= 0 {
			r.CellStyled(x+col, y, ch, style)
		}
		col++
	}
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, style Style) {
	r.Text(r.W-RuneLen(s), y, s, style)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, style Style) {
	r.Text((r.W-RuneLen(s))/2, y, s, style)
}
