package tetris

import (
	"fmt"
	"math/rand"
	"time"
)

// Smallest board every spawn orientation fits on: a piece spawns with its
// box at column width/2, and some orientations reach the box's last column.
const (
	MinBoardWidth  = 7
	MinBoardHeight = BoxSize
)

// Defaults used for zero-valued Options fields.
const (
	DefaultWidth           = 10
	DefaultHeight          = 20
	DefaultGravityInterval = 300 * time.Millisecond
	DefaultSpeedFactor     = 0.75
	DefaultLevelThreshold  = 20
)

// Status is the session's position in its two-state lifecycle.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "running"
}

// Options configures a Session. Zero values select the defaults.
type Options struct {
	Width           int
	Height          int
	Seed            int64
	GravityInterval time.Duration // Interval between forced descents at level 0
	SpeedFactor     float64       // Interval multiplier on each level up
	LevelThreshold  int           // Score to exceed for the first level up
	FixedSpeed      bool          // Disables level progression
	ClearRule       ClearRule
}

func (o Options) withDefaults() (Options, error) {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.GravityInterval <= 0 {
		o.GravityInterval = DefaultGravityInterval
	}
	if o.SpeedFactor == 0 {
		o.SpeedFactor = DefaultSpeedFactor
	}
	if o.LevelThreshold <= 0 {
		o.LevelThreshold = DefaultLevelThreshold
	}

	if o.Width < MinBoardWidth || o.Height < MinBoardHeight {
		return o, fmt.Errorf("%w: need at least %dx%d, got %dx%d",
			ErrInvalidDimensions, MinBoardWidth, MinBoardHeight, o.Width, o.Height)
	}
	if o.SpeedFactor < 0 || o.SpeedFactor > 1 {
		return o, fmt.Errorf("%w: got %g", ErrInvalidSpeedFactor, o.SpeedFactor)
	}
	if o.ClearRule != ClearTextbook && o.ClearRule != ClearLegacy {
		return o, fmt.Errorf("%w: %d", ErrUnknownClearRule, o.ClearRule)
	}
	return o, nil
}

// Session is one game: the board, the piece under player control and the
// progress counters. Every method runs to completion synchronously; a
// Session must not be shared between goroutines.
type Session struct {
	opts   Options
	rng    *rand.Rand
	colors ColorCycler

	board *Board
	piece Piece

	score              int
	level              int
	lines              int
	lastCleared        int
	nextLevelThreshold int
	gravityInterval    time.Duration
	status             Status
}

// NewSession validates the options and starts a game with its first piece.
func NewSession(opts Options) (*Session, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	s := &Session{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
	s.reset()
	return s, nil
}

// reset rebuilds every piece of game state except the shape RNG.
func (s *Session) reset() {
	s.board = newBoard(s.opts.Width, s.opts.Height, s.opts.ClearRule)
	s.colors = ColorCycler{}
	s.score = 0
	s.level = 0
	s.lines = 0
	s.lastCleared = 0
	s.nextLevelThreshold = s.opts.LevelThreshold
	s.gravityInterval = s.opts.GravityInterval
	s.status = StatusRunning
	s.spawn()
}

// Restart discards the current game and starts a fresh one on an empty board.
// Color cycling starts over; the shape sequence continues from the same RNG.
func (s *Session) Restart() {
	s.reset()
}

// spawn puts a new random piece at the top center and ends the game if it
// overlaps settled blocks.
func (s *Session) spawn() {
	shape := Shapes[s.rng.Intn(len(Shapes))]
	s.piece = Piece{
		shape:  shape,
		origin: Position{X: s.board.width / 2, Y: 0},
		color:  s.colors.Next(),
	}
	if s.Collides(s.piece) {
		s.status = StatusGameOver
	}
}

// Collides reports whether any cell of p is outside the board or on a
// settled block.
func (s *Session) Collides(p Piece) bool {
	for _, c := range p.Cells() {
		if c.Y > s.board.height-1 || c.Y < 0 {
			return true
		}
		if c.X < 0 || c.X > s.board.width-1 {
			return true
		}
		if s.board.cells[c.Y][c.X] != Empty {
			return true
		}
	}
	return false
}

// MoveLeft shifts the piece one column left if the destination is free.
func (s *Session) MoveLeft() bool {
	return s.moveHorizontal(-1)
}

// MoveRight shifts the piece one column right if the destination is free.
func (s *Session) MoveRight() bool {
	return s.moveHorizontal(1)
}

func (s *Session) moveHorizontal(delta int) bool {
	if s.status == StatusGameOver {
		return false
	}
	s.piece.origin.X += delta
	if s.Collides(s.piece) {
		s.piece.origin.X -= delta
		return false
	}
	return true
}

// MoveDown drops the piece one row. When the row below is blocked the piece
// settles instead, full rows are cleared and the next piece spawns.
// It reports whether the piece moved.
func (s *Session) MoveDown() bool {
	if s.status == StatusGameOver {
		return false
	}
	s.piece.origin.Y++
	if s.Collides(s.piece) {
		s.piece.origin.Y--
		s.settle()
		return false
	}
	return true
}

// Rotate turns the piece to its next orientation unless that collides.
// There is no wall kick.
func (s *Session) Rotate() bool {
	if s.status == StatusGameOver {
		return false
	}
	prev := s.piece.rotation
	s.piece.Rotate()
	if s.Collides(s.piece) {
		s.piece.rotation = prev
		return false
	}
	return true
}

// settle freezes the piece into the board, clears full rows top to bottom,
// scores width points per line and spawns the next piece.
func (s *Session) settle() {
	for _, c := range s.piece.Cells() {
		s.board.SetCell(c, s.piece.color)
	}

	cleared := 0
	for row := 0; row < s.board.height; row++ {
		if s.board.IsRowFull(row) {
			cleared++
			s.board.CollapseRow(row)
		}
	}

	s.lastCleared = cleared
	s.lines += cleared
	s.score += cleared * s.board.width

	s.spawn()
}

// TickLevelProgress advances one level once the score passes the current
// threshold: the threshold doubles and the gravity interval shrinks by the
// speed factor. Levels never go down. Call it once per frame.
func (s *Session) TickLevelProgress() bool {
	if s.status == StatusGameOver || s.opts.FixedSpeed {
		return false
	}
	if s.score <= s.nextLevelThreshold {
		return false
	}
	s.nextLevelThreshold += s.nextLevelThreshold
	s.gravityInterval = time.Duration(float64(s.gravityInterval) * s.opts.SpeedFactor)
	s.level++
	return true
}

// Board returns the settled grid. Callers must treat it as read-only.
func (s *Session) Board() *Board {
	return s.board
}

// Piece returns a copy of the piece under player control.
func (s *Session) Piece() Piece {
	return s.piece
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level, starting at 0.
func (s *Session) Level() int {
	return s.level
}

// Lines returns the total number of lines cleared this game.
func (s *Session) Lines() int {
	return s.lines
}

// LastCleared returns how many lines the most recent settle cleared.
func (s *Session) LastCleared() int {
	return s.lastCleared
}

// NextLevelThreshold returns the score that must be exceeded to level up.
func (s *Session) NextLevelThreshold() int {
	return s.nextLevelThreshold
}

// GravityInterval returns the current time between forced descents.
func (s *Session) GravityInterval() time.Duration {
	return s.gravityInterval
}

// Status returns whether the game is running or over.
func (s *Session) Status() Status {
	return s.status
}

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool {
	return s.status == StatusGameOver
}
