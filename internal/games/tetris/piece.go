package tetris

import "fmt"

// Position is a cell coordinate on the board: X is the column, Y the row.
type Position struct {
	X, Y int
}

// Piece is a falling tetromino. Its cells are always derived from shape,
// rotation and origin, never stored.
type Piece struct {
	shape    Shape
	rotation int
	origin   Position // top-left of the 4x4 bounding box
	color    int
}

// NewPiece creates a piece in its first orientation.
// It fails for a shape outside the seven known ones.
func NewPiece(shape Shape, origin Position, color int) (Piece, error) {
	if !shape.Valid() {
		return Piece{}, fmt.Errorf("%w: %s", ErrUnknownShape, shape)
	}
	return Piece{shape: shape, origin: origin, color: color}, nil
}

// Shape returns the piece's shape.
func (p Piece) Shape() Shape {
	return p.shape
}

// Rotation returns the current orientation index.
func (p Piece) Rotation() int {
	return p.rotation
}

// Origin returns the top-left corner of the bounding box.
func (p Piece) Origin() Position {
	return p.origin
}

// Color returns the palette index the piece is drawn and settled with.
func (p Piece) Color() int {
	return p.color
}

// Rotate advances to the next orientation, wrapping around.
// It never checks for collisions.
func (p *Piece) Rotate() {
	p.rotation = (p.rotation + 1) % p.shape.Rotations()
}

// Cells returns the absolute board positions the piece occupies.
func (p Piece) Cells() [4]Position {
	var cells [4]Position
	for i, off := range p.shape.Offsets(p.rotation) {
		cells[i] = Position{
			X: p.origin.X + off%BoxSize,
			Y: p.origin.Y + off/BoxSize,
		}
	}
	return cells
}
