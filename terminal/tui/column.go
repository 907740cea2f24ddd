package tui

import "math"

// Sub-cell glyphs for high-resolution columns. Only the left dot column of
// each braille cell is used, so a cell reads as a monotone fill level of
// 0-4 units. Tables are indexed by unit count; entry 0 is blank.
//
// Top polarity fills from the cell's bottom edge (nearest the center axis):
//
//	1 ⡀  2 ⡄  3 ⡆  4 ⡇
//
// Bottom polarity fills from the cell's top edge:
//
//	1 ⠁  2 ⠃  3 ⠇  4 ⡇
var (
	brailleFillTop    = [5]rune{' ', '⡀', '⡄', '⡆', '⡇'}
	brailleFillBottom = [5]rune{' ', '⠁', '⠃', '⠇', '⡇'}
)

// brailleFull is the fully lit left dot column ⡇
const brailleFull = '⡇'

// blockGlyph is the left half block used by block-mode columns
const blockGlyph = '▌'

// unitsPerCell is the vertical sub-cell resolution of braille columns
const unitsPerCell = 4

// BrailleFill returns the partial-fill glyph for 1-4 units of the given
// polarity. Counts outside 1-4 return a blank.
func BrailleFill(units int, top bool) rune {
	if units < 0 || units >= len(brailleFillTop) {
		return ' '
	}
	if top {
		return brailleFillTop[units]
	}
	return brailleFillBottom[units]
}

// renderBrailleColumn draws one high-resolution column for a single
// polarity, walking outward from the row adjacent to the center axis.
// Cells that absorb a full 4 units get the full glyph; the last cell gets
// a partial glyph; rows past the fill level are left untouched.
func (w Waveform) renderBrailleColumn(r Region, x, centerY, maxRows int, val float64, top bool, base Style, fade float64) {
	total := float64(maxRows * unitsPerCell)
	remaining := int(math.Round(val * total))

	y := centerY
	if top {
		y = centerY - 1
	}

	for i := 0; i < maxRows && remaining > 0; i++ {
		var ch rune
		if remaining >= unitsPerCell {
			ch = brailleFull
			remaining -= unitsPerCell
		} else {
			ch = BrailleFill(remaining, top)
			remaining = 0
		}

		style := base
		if w.gradient {
			style = ApplyGradient(style, float64(i)/float64(maxRows))
		}
		// Fade last so it dims whatever color the gradient produced
		style = ApplyFade(style, fade)

		r.CellStyled(x, y, ch, style)

		if top {
			if y == 0 {
				break
			}
			y--
		} else {
			y++
		}
	}
}

// renderBlockColumn draws one block-mode column: one cell per vertical
// unit, rows outside the region are skipped.
func (w Waveform) renderBlockColumn(r Region, x, centerY, maxRows int, val float64, top bool, base Style, fade float64) {
	needed := int(math.Round(val * float64(maxRows)))

	for i := 0; i < needed; i++ {
		var y int
		if top {
			y = centerY - 1 - i
			if y < 0 {
				continue
			}
		} else {
			y = centerY + i
			if y >= r.H {
				continue
			}
		}

		style := base
		if w.gradient {
			style = ApplyGradient(style, float64(i)/float64(maxRows))
		}
		style = ApplyFade(style, fade)

		r.CellStyled(x, y, blockGlyph, style)
	}
}
