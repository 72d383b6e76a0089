package tetris

import "fmt"

// Shape identifies one of the seven one-sided tetrominoes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeJ
	ShapeL
	ShapeS
	ShapeZ
)

// Shapes lists every shape in table order. Random spawns index into it.
var Shapes = [7]Shape{ShapeI, ShapeO, ShapeT, ShapeJ, ShapeL, ShapeS, ShapeZ}

// BoxSize is the side of the square frame rotation states are defined in.
const BoxSize = 4

// rotation is the four filled cells of one orientation, each encoded as
// row*BoxSize + col inside the bounding box:
//
//	 0  1  2  3
//	 4  5  6  7
//	 8  9 10 11
//	12 13 14 15
type rotation [4]int

// rotations is indexed by Shape. Read-only after package init.
var rotations = [len(Shapes)][]rotation{
	ShapeI: {
		{1, 5, 9, 13},
		{4, 5, 6, 7},
	},
	ShapeO: {
		{1, 2, 5, 6},
	},
	ShapeT: {
		{1, 4, 5, 6},
		{1, 5, 6, 9},
		{4, 5, 6, 9},
		{1, 4, 5, 9},
	},
	ShapeJ: {
		{1, 5, 8, 9},
		{0, 4, 5, 6},
		{1, 2, 5, 9},
		{4, 5, 6, 10},
	},
	ShapeL: {
		{1, 5, 9, 10},
		{4, 5, 6, 2},
		{0, 1, 5, 9},
		{8, 4, 5, 6},
	},
	ShapeS: {
		{6, 7, 9, 10},
		{1, 5, 6, 10},
	},
	ShapeZ: {
		{4, 5, 9, 10},
		{2, 5, 6, 9},
	},
}

var shapeNames = [len(Shapes)]string{"I", "O", "T", "J", "L", "S", "Z"}

// ParseShape returns the shape named by a single letter (I, O, T, J, L, S, Z).
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Valid reports whether s is one of the seven shapes.
func (s Shape) Valid() bool {
	return int(s) < len(Shapes)
}

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
	return shapeNames[s]
}

// Rotations returns the number of distinct orientations of the shape.
func (s Shape) Rotations() int {
	return len(rotations[s])
}

// Offsets returns the encoded box offsets of the given orientation.
func (s Shape) Offsets(rot int) [4]int {
	return rotations[s][rot]
}
