package tetris

import "fmt"

// Empty marks a board cell holding no settled block.
const Empty = -1

// ClearRule selects how rows above a cleared line move down.
type ClearRule int

const (
	// ClearTextbook shifts every row above the cleared one down by one and
	// empties row 0.
	ClearTextbook ClearRule = iota
	// ClearLegacy shifts rows down only as far as row 2: rows 0 and 1 are
	// never rewritten, so a full row 0 or 1 stays on the board.
	ClearLegacy
)

// ParseClearRule converts a config value into a ClearRule.
func ParseClearRule(s string) (ClearRule, error) {
	switch s {
	case "textbook", "":
		return ClearTextbook, nil
	case "legacy":
		return ClearLegacy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownClearRule, s)
	}
}

func (r ClearRule) String() string {
	if r == ClearLegacy {
		return "legacy"
	}
	return "textbook"
}

// Board is the fixed grid of settled cells, addressed as cells[row][col].
// Each cell is Empty or the palette index of the piece that settled there.
type Board struct {
	width  int
	height int
	rule   ClearRule
	cells  [][]int
}

// NewBoard creates an empty board.
func NewBoard(width, height int, rule ClearRule) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return newBoard(width, height, rule), nil
}

func newBoard(width, height int, rule ClearRule) *Board {
	b := &Board{
		width:  width,
		height: height,
		rule:   rule,
		cells:  make([][]int, height),
	}
	for y := range b.cells {
		b.cells[y] = make([]int, width)
		clearRow(b.cells[y])
	}
	return b
}

func clearRow(row []int) {
	for x := range row {
		row[x] = Empty
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Rule returns the line clear rule in effect.
func (b *Board) Rule() ClearRule {
	return b.rule
}

// InBounds reports whether pos lies on the board.
func (b *Board) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < b.width && pos.Y >= 0 && pos.Y < b.height
}

// Cell returns the value at (x, y). Out-of-bounds reads return Empty.
func (b *Board) Cell(x, y int) int {
	if !b.InBounds(Position{X: x, Y: y}) {
		return Empty
	}
	return b.cells[y][x]
}

// IsEmpty reports whether (x, y) holds no settled block.
func (b *Board) IsEmpty(x, y int) bool {
	return b.Cell(x, y) == Empty
}

// SetCell writes a settled block. Callers only pass validated positions.
func (b *Board) SetCell(pos Position, color int) {
	b.cells[pos.Y][pos.X] = color
}

// IsRowFull reports whether no cell in the row is Empty.
func (b *Board) IsRowFull(row int) bool {
	for _, c := range b.cells[row] {
		if c == Empty {
			return false
		}
	}
	return true
}

// EmptyInRow counts the empty cells of a row.
func (b *Board) EmptyInRow(row int) int {
	n := 0
	for _, c := range b.cells[row] {
		if c == Empty {
			n++
		}
	}
	return n
}

// FilledCount counts all settled cells.
func (b *Board) FilledCount() int {
	n := 0
	for y := range b.cells {
		n += b.width - b.EmptyInRow(y)
	}
	return n
}

// CollapseRow removes the target row by moving the rows above it down one.
func (b *Board) CollapseRow(target int) {
	switch b.rule {
	case ClearLegacy:
		for y := target; y > 1; y-- {
			copy(b.cells[y], b.cells[y-1])
		}
	default:
		for y := target; y > 0; y-- {
			copy(b.cells[y], b.cells[y-1])
		}
		clearRow(b.cells[0])
	}
}

// Rows returns a deep copy of the grid.
func (b *Board) Rows() [][]int {
	rows := make([][]int, b.height)
	for y, row := range b.cells {
		rows[y] = append([]int(nil), row...)
	}
	return rows
}
