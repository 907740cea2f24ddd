package tui

import "testing"

func TestBrailleFillTop(t *testing.T) {
	tests := []struct {
		units int
		want  rune
	}{
		{0, ' '},
		{1, '⡀'}, // ⡀
		{2, '⡄'}, // ⡄
		{3, '⡆'}, // ⡆
		{4, '⡇'}, // ⡇
		{5, ' '},
		{-1, ' '},
	}

	for _, tt := range tests {
		if got := BrailleFill(tt.units, true); got != tt.want {
			t.Errorf("BrailleFill(%d, top) = %q, want %q", tt.units, got, tt.want)
		}
	}
}

func TestBrailleFillBottom(t *testing.T) {
	tests := []struct {
		units int
		want  rune
	}{
		{0, ' '},
		{1, '⠁'}, // ⠁
		{2, '⠃'}, // ⠃
		{3, '⠇'}, // ⠇
		{4, '⡇'}, // ⡇
		{5, ' '},
		{-1, ' '},
	}

	for _, tt := range tests {
		if got := BrailleFill(tt.units, false); got != tt.want {
			t.Errorf("BrailleFill(%d, bottom) = %q, want %q", tt.units, got, tt.want)
		}
	}
}

func TestFillTablesAreMonotone(t *testing.T) {
	// Each additional unit lights strictly more dots; the glyph for n
	// units must differ from n-1 for both polarities
	for n := 2; n <= 4; n++ {
		if BrailleFill(n, true) == BrailleFill(n-1, true) {
			t.Errorf("top fill glyph for %d units equals %d units", n, n-1)
		}
		if BrailleFill(n, false) == BrailleFill(n-1, false) {
			t.Errorf("bottom fill glyph for %d units equals %d units", n, n-1)
		}
	}
}
