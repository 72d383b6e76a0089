package tetris

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// boardFrom builds a board from rows where '.' is Empty and a digit is a color.
func boardFrom(t *testing.T, rule ClearRule, rows ...string) *Board {
	t.Helper()
	b, err := NewBoard(len(rows[0]), len(rows), rule)
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	for y, row := range rows {
		for x, r := range row {
			if r != '.' {
				b.SetCell(Position{X: x, Y: y}, int(r-'0'))
			}
		}
	}
	return b
}

func gridFrom(rows ...string) [][]int {
	grid := make([][]int, len(rows))
	for y, row := range rows {
		grid[y] = make([]int, len(row))
		for x, r := range row {
			grid[y][x] = Empty
			if r != '.' {
				grid[y][x] = int(r - '0')
			}
		}
	}
	return grid
}

func TestNewBoardEmpty(t *testing.T) {
	b, err := NewBoard(10, 20, ClearTextbook)
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	if b.Width() != 10 || b.Height() != 20 {
		t.Errorf("size = %dx%d, want 10x20", b.Width(), b.Height())
	}
	if got := b.FilledCount(); got != 0 {
		t.Errorf("FilledCount() = %d, want 0", got)
	}
	if got := b.EmptyInRow(19); got != 10 {
		t.Errorf("EmptyInRow(19) = %d, want 10", got)
	}
}

func TestNewBoardInvalid(t *testing.T) {
	for _, size := range [][2]int{{0, 20}, {10, 0}, {-1, -1}} {
		if _, err := NewBoard(size[0], size[1], ClearTextbook); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewBoard(%d, %d) error = %v, want ErrInvalidDimensions", size[0], size[1], err)
		}
	}
}

func TestBoardCellOutOfBounds(t *testing.T) {
	b := boardFrom(t, ClearTextbook, "12", "34")

	if got := b.Cell(1, 1); got != 4 {
		t.Errorf("Cell(1, 1) = %d, want 4", got)
	}
	for _, p := range []Position{{-1, 0}, {2, 0}, {0, -1}, {0, 2}} {
		if got := b.Cell(p.X, p.Y); got != Empty {
			t.Errorf("Cell(%d, %d) = %d, want Empty", p.X, p.Y, got)
		}
	}
}

func TestIsRowFull(t *testing.T) {
	b := boardFrom(t, ClearTextbook,
		"....",
		"12.4",
		"1234",
	)

	want := []bool{false, false, true}
	for y, w := range want {
		if got := b.IsRowFull(y); got != w {
			t.Errorf("IsRowFull(%d) = %v, want %v", y, got, w)
		}
	}
}

func TestCollapseRow(t *testing.T) {
	tests := []struct {
		name   string
		rule   ClearRule
		target int
		before []string
		after  []string
	}{
		{
			name:   "textbook shifts and empties top",
			rule:   ClearTextbook,
			target: 3,
			before: []string{"1...", "2...", "3...", "4444", "5..."},
			after:  []string{"....", "1...", "2...", "3...", "5..."},
		},
		{
			name:   "textbook clears row zero",
			rule:   ClearTextbook,
			target: 0,
			before: []string{"1111", "2...", "3..."},
			after:  []string{"....", "2...", "3..."},
		},
		{
			name:   "legacy stops at row two",
			rule:   ClearLegacy,
			target: 3,
			before: []string{"1...", "2...", "3...", "4444", "5..."},
			after:  []string{"1...", "2...", "2...", "3...", "5..."},
		},
		{
			name:   "legacy leaves row zero",
			rule:   ClearLegacy,
			target: 0,
			before: []string{"1111", "2...", "3..."},
			after:  []string{"1111", "2...", "3..."},
		},
		{
			name:   "legacy leaves row one",
			rule:   ClearLegacy,
			target: 1,
			before: []string{"1...", "2222", "3..."},
			after:  []string{"1...", "2222", "3..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFrom(t, tt.rule, tt.before...)
			b.CollapseRow(tt.target)
			if diff := cmp.Diff(gridFrom(tt.after...), b.Rows()); diff != "" {
				t.Errorf("CollapseRow(%d) mismatch (-want +got):\n%s", tt.target, diff)
			}
		})
	}
}

func TestRowsIsCopy(t *testing.T) {
	b := boardFrom(t, ClearTextbook, "1.", "..")
	rows := b.Rows()
	rows[0][0] = 5

	if got := b.Cell(0, 0); got != 1 {
		t.Errorf("Cell(0, 0) after mutating Rows() = %d, want 1", got)
	}
}

func TestParseClearRule(t *testing.T) {
	tests := []struct {
		in   string
		want ClearRule
	}{
		{"", ClearTextbook},
		{"textbook", ClearTextbook},
		{"legacy", ClearLegacy},
	}
	for _, tt := range tests {
		got, err := ParseClearRule(tt.in)
		if err != nil {
			t.Fatalf("ParseClearRule(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseClearRule(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseClearRule("sticky"); !errors.Is(err, ErrUnknownClearRule) {
		t.Errorf("ParseClearRule(%q) error = %v, want ErrUnknownClearRule", "sticky", err)
	}
}
