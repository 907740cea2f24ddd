package terminal

// colorKind discriminates the Color representations
type colorKind uint8

const (
	colorUnset colorKind = iota
	colorNamed
	colorIndexed
	colorRGB
)

// Color is a terminal color in one of four representations: unset (the zero
// value), one of the 16 ANSI named colors, an indexed palette entry, or an
// explicit RGB triple.
//
// Unset means "no color": transforms pass it through untouched and cell
// writes fall back to the terminal default. Resolving a named or indexed
// color to RGB is lossy on purpose; once a transform touches a color its
// named/indexed identity is gone.
type Color struct {
	kind colorKind
	idx  uint8
	rgb  RGB
}

// The 16 ANSI named colors, matching the indexed palette 0-15.
var (
	Black        = Color{kind: colorNamed, idx: 0}
	Red          = Color{kind: colorNamed, idx: 1}
	Green        = Color{kind: colorNamed, idx: 2}
	Yellow       = Color{kind: colorNamed, idx: 3}
	Blue         = Color{kind: colorNamed, idx: 4}
	Magenta      = Color{kind: colorNamed, idx: 5}
	Cyan         = Color{kind: colorNamed, idx: 6}
	Gray         = Color{kind: colorNamed, idx: 7}
	DarkGray     = Color{kind: colorNamed, idx: 8}
	LightRed     = Color{kind: colorNamed, idx: 9}
	LightGreen   = Color{kind: colorNamed, idx: 10}
	LightYellow  = Color{kind: colorNamed, idx: 11}
	LightBlue    = Color{kind: colorNamed, idx: 12}
	LightMagenta = Color{kind: colorNamed, idx: 13}
	LightCyan    = Color{kind: colorNamed, idx: 14}
	White        = Color{kind: colorNamed, idx: 15}
)

// ansiPalette maps the 16 standard indices to the classic VGA values most
// terminal emulators ship as defaults
var ansiPalette = [16]RGB{
	{0, 0, 0},       // black
	{170, 0, 0},     // red
	{0, 170, 0},     // green
	{170, 85, 0},    // yellow
	{0, 0, 170},     // blue
	{170, 0, 170},   // magenta
	{0, 170, 170},   // cyan
	{170, 170, 170}, // gray
	{85, 85, 85},    // dark gray
	{255, 85, 85},   // light red
	{85, 255, 85},   // light green
	{255, 255, 85},  // light yellow
	{85, 85, 255},   // light blue
	{255, 85, 255},  // light magenta
	{85, 255, 255},  // light cyan
	{255, 255, 255}, // white
}

// FromRGB returns an explicit-RGB color
func FromRGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, rgb: RGB{R: r, G: g, B: b}}
}

// Indexed returns a color referencing the 16-entry palette by index.
// Out-of-palette indices resolve to white.
func Indexed(i uint8) Color {
	return Color{kind: colorIndexed, idx: i}
}

// IsSet reports whether the color carries a value
func (c Color) IsSet() bool {
	return c.kind != colorUnset
}

// RGB resolves the color to an explicit triple. Total over all
// representations: named and indexed colors go through the 16-entry
// palette, anything unknown degrades to white rather than failing.
func (c Color) RGB() RGB {
	switch c.kind {
	case colorRGB:
		return c.rgb
	case colorNamed, colorIndexed:
		if c.idx < uint8(len(ansiPalette)) {
			return ansiPalette[c.idx]
		}
	}
	return RGB{R: 255, G: 255, B: 255}
}
