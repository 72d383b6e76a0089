package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// palette holds the piece colors followed by three reserved entries.
var palette = [...]core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorBlack,       // background
	core.ColorGray,        // grid
	core.ColorBrightWhite, // text
}

// PaletteSize is the total number of palette entries.
const PaletteSize = len(palette)

// PieceColors is how many palette entries pieces cycle through.
// The last three are reserved for background, grid and text.
const PieceColors = PaletteSize - 3

// Reserved palette indexes.
const (
	PaletteBackground = PaletteSize - 3
	PaletteGrid       = PaletteSize - 2
	PaletteText       = PaletteSize - 1
)

// PaletteColor maps a palette index to a screen color.
// An out-of-range index is a programming error and panics.
func PaletteColor(index int) core.Color {
	if index < 0 || index >= PaletteSize {
		panic(fmt.Sprintf("tetris: palette index %d out of range [0, %d)", index, PaletteSize))
	}
	return palette[index]
}

// ColorCycler hands out piece colors in a fixed rotation.
// Each session owns one, so independent sessions never affect each other.
type ColorCycler struct {
	next int
}

// Next returns the current color index and advances the cycle.
func (c *ColorCycler) Next() int {
	idx := c.next
	c.next = (c.next + 1) % PieceColors
	return idx
}

// Peek returns the index the next call to Next will return.
func (c *ColorCycler) Peek() int {
	return c.next
}
