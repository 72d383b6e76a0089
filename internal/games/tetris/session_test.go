package tetris

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s, err := NewSession(opts)
	require.NoError(t, err)
	return s
}

// place replaces the controlled piece, bypassing the random spawn.
func place(t *testing.T, s *Session, shape Shape, origin Position) {
	t.Helper()
	p, err := NewPiece(shape, origin, s.colors.Next())
	require.NoError(t, err)
	s.piece = p
}

// fillRows fills rows [from, to] except the listed columns with color 1.
func fillRows(s *Session, from, to int, skip ...int) {
	for y := from; y <= to; y++ {
		for x := 0; x < s.board.width; x++ {
			if !containsInt(skip, x) {
				s.board.cells[y][x] = 1
			}
		}
	}
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func assertPieceValid(t *testing.T, s *Session) {
	t.Helper()
	for _, c := range s.piece.Cells() {
		require.True(t, s.board.InBounds(c), "piece cell %v out of bounds", c)
		require.Equal(t, Empty, s.board.cells[c.Y][c.X], "piece cell %v overlaps settled block", c)
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession(t, Options{Seed: 1})

	assert.Equal(t, 10, s.Board().Width())
	assert.Equal(t, 20, s.Board().Height())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Level())
	assert.Equal(t, 20, s.NextLevelThreshold())
	assert.Equal(t, 300*time.Millisecond, s.GravityInterval())
	assert.Equal(t, StatusRunning, s.Status())
	assert.Equal(t, Position{X: 5, Y: 0}, s.Piece().Origin())
	assert.Equal(t, 0, s.Piece().Color())
}

func TestNewSessionRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"narrow", Options{Width: 6}, ErrInvalidDimensions},
		{"short", Options{Height: 3}, ErrInvalidDimensions},
		{"negative width", Options{Width: -10}, ErrInvalidDimensions},
		{"speed factor above one", Options{SpeedFactor: 1.5}, ErrInvalidSpeedFactor},
		{"negative speed factor", Options{SpeedFactor: -0.5}, ErrInvalidSpeedFactor},
		{"unknown rule", Options{ClearRule: ClearRule(9)}, ErrUnknownClearRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSession(tt.opts)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMinimumBoardFitsEverySpawn(t *testing.T) {
	for _, shape := range Shapes {
		s := newTestSession(t, Options{Width: MinBoardWidth, Height: MinBoardHeight})
		place(t, s, shape, Position{X: MinBoardWidth / 2, Y: 0})
		for i := 0; i < shape.Rotations(); i++ {
			assert.False(t, s.Collides(s.piece), "%s rotation %d collides on empty minimum board", shape, s.piece.rotation)
			s.piece.Rotate()
		}
	}
}

func TestMovesStayInBounds(t *testing.T) {
	s := newTestSession(t, Options{Seed: 42})
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		if s.GameOver() {
			s.Restart()
		}
		switch rng.Intn(4) {
		case 0:
			s.MoveLeft()
		case 1:
			s.MoveRight()
		case 2:
			s.MoveDown()
		case 3:
			s.Rotate()
		}
		if !s.GameOver() {
			assertPieceValid(t, s)
		}
	}
}

func TestMoveLeftBlockedByWall(t *testing.T) {
	s := newTestSession(t, Options{})
	place(t, s, ShapeO, Position{X: -1, Y: 0})

	assert.False(t, s.MoveLeft())
	assert.Equal(t, -1, s.Piece().Origin().X)
	assert.True(t, s.MoveRight())
	assert.Equal(t, 0, s.Piece().Origin().X)
}

func TestMoveRightBlockedBySettledCell(t *testing.T) {
	s := newTestSession(t, Options{})
	place(t, s, ShapeO, Position{X: 2, Y: 0})
	s.board.cells[0][6] = 3

	assert.True(t, s.MoveRight())
	assert.False(t, s.MoveRight())
	assert.Equal(t, 3, s.Piece().Origin().X)
}

func TestRotateBlockedKeepsOrientation(t *testing.T) {
	s := newTestSession(t, Options{})
	// Vertical I against the left wall: horizontal needs column -1.
	place(t, s, ShapeI, Position{X: -1, Y: 5})

	assert.False(t, s.Rotate())
	assert.Equal(t, 0, s.Piece().Rotation())

	s.MoveRight()
	assert.True(t, s.Rotate())
	assert.Equal(t, 1, s.Piece().Rotation())
}

func TestSettleWithoutClear(t *testing.T) {
	s := newTestSession(t, Options{})
	place(t, s, ShapeT, Position{X: 2, Y: 18})

	assert.False(t, s.MoveDown())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.LastCleared())
	assert.Equal(t, 4, s.Board().FilledCount())
}

func TestSettleClearsOneRow(t *testing.T) {
	s := newTestSession(t, Options{})
	fillRows(s, 19, 19, 1, 2)
	filled := s.Board().FilledCount()
	place(t, s, ShapeO, Position{X: 0, Y: 18})

	s.MoveDown()

	assert.Equal(t, s.Board().Width(), s.Score())
	assert.Equal(t, 1, s.LastCleared())
	assert.Equal(t, 1, s.Lines())
	assert.Equal(t, filled+4-s.Board().Width(), s.Board().FilledCount())
	// The O's upper half dropped into the cleared row.
	assert.Equal(t, s.Board().Width()-2, s.Board().EmptyInRow(19))
	assert.Equal(t, s.Board().Width(), s.Board().EmptyInRow(18))
}

func TestGameOverOnBlockedSpawn(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s := newTestSession(t, Options{Seed: seed})
		spawnX := s.Board().Width() / 2
		fillRows(s, 0, 1, spawnX)

		s.spawn()

		assert.True(t, s.GameOver(), "seed %d: spawn on filled top rows", seed)
		assert.Equal(t, StatusGameOver, s.Status())
	}
}

func TestCommandsIgnoredAfterGameOver(t *testing.T) {
	s := newTestSession(t, Options{Seed: 3})
	place(t, s, ShapeT, Position{X: 3, Y: 5})
	s.status = StatusGameOver
	before := s.Piece()

	assert.False(t, s.MoveLeft())
	assert.False(t, s.MoveRight())
	assert.False(t, s.MoveDown())
	assert.False(t, s.Rotate())
	assert.False(t, s.TickLevelProgress())
	assert.Equal(t, before, s.Piece())
	assert.Equal(t, 0, s.Board().FilledCount())
}

func TestScenarioOPieceDropsToFloor(t *testing.T) {
	s := newTestSession(t, Options{Seed: 11})
	place(t, s, ShapeO, Position{X: 5, Y: 0})

	for i := 0; i < 18; i++ {
		require.True(t, s.MoveDown(), "move %d", i+1)
	}
	require.False(t, s.MoveDown(), "19th move settles")

	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 4, s.Board().FilledCount())
	for _, p := range []Position{{6, 18}, {7, 18}, {6, 19}, {7, 19}} {
		assert.False(t, s.Board().IsEmpty(p.X, p.Y), "expected block at %v", p)
	}
	assert.Equal(t, Position{X: 5, Y: 0}, s.Piece().Origin())
	assert.False(t, s.GameOver())
}

func TestScenarioIPieceClearsThreeRows(t *testing.T) {
	s := newTestSession(t, Options{Seed: 5})
	for y := 0; y <= 18; y++ {
		for x := 1; x < s.board.width; x++ {
			s.board.cells[y][x] = 1 + (x+y)%(PieceColors-1)
		}
	}
	place(t, s, ShapeI, Position{X: -1, Y: 0})

	for s.MoveDown() {
	}

	assert.Equal(t, 3, s.LastCleared())
	assert.Equal(t, 3*s.Board().Width(), s.Score())
}

func TestScenarioIPieceClearsFourRows(t *testing.T) {
	s := newTestSession(t, Options{Seed: 5})
	fillRows(s, 4, 19, 0)
	place(t, s, ShapeI, Position{X: -1, Y: 0})

	for s.MoveDown() {
	}

	assert.Equal(t, 4, s.LastCleared())
	assert.Equal(t, 4*s.Board().Width(), s.Score())
	assert.Equal(t, 12*(s.Board().Width()-1), s.Board().FilledCount())
	assert.False(t, s.GameOver())
}

func TestLegacyRuleKeepsTopRows(t *testing.T) {
	s := newTestSession(t, Options{ClearRule: ClearLegacy})
	require.Equal(t, ClearLegacy, s.Board().Rule())
	fillRows(s, 0, 0)
	place(t, s, ShapeO, Position{X: 0, Y: 18})

	s.MoveDown()

	// Row 0 is counted as cleared but never rewritten.
	assert.Equal(t, 1, s.LastCleared())
	assert.Equal(t, s.Board().Width(), s.Score())
	assert.True(t, s.Board().IsRowFull(0))
}

func TestTickLevelProgress(t *testing.T) {
	s := newTestSession(t, Options{})

	s.score = 20
	assert.False(t, s.TickLevelProgress(), "threshold must be exceeded, not reached")

	s.score = 21
	require.True(t, s.TickLevelProgress())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 40, s.NextLevelThreshold())
	assert.Equal(t, 225*time.Millisecond, s.GravityInterval())

	assert.False(t, s.TickLevelProgress(), "one level per threshold")

	s.score = 100
	require.True(t, s.TickLevelProgress())
	require.True(t, s.TickLevelProgress())
	assert.False(t, s.TickLevelProgress())
	assert.Equal(t, 3, s.Level())
	assert.Equal(t, 160, s.NextLevelThreshold())
}

func TestFixedSpeedNeverLevels(t *testing.T) {
	s := newTestSession(t, Options{FixedSpeed: true})
	s.score = 1000

	assert.False(t, s.TickLevelProgress())
	assert.Equal(t, 0, s.Level())
	assert.Equal(t, 300*time.Millisecond, s.GravityInterval())
}

func TestRestart(t *testing.T) {
	s := newTestSession(t, Options{Seed: 9})
	fillRows(s, 10, 19, 0)
	s.score = 500
	s.TickLevelProgress()
	s.status = StatusGameOver

	s.Restart()

	assert.Equal(t, StatusRunning, s.Status())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Level())
	assert.Equal(t, 0, s.Lines())
	assert.Equal(t, 20, s.NextLevelThreshold())
	assert.Equal(t, 300*time.Millisecond, s.GravityInterval())
	assert.Equal(t, 0, s.Board().FilledCount())
	assert.Equal(t, 0, s.Piece().Color(), "color cycling starts over")
}

func TestSessionsDoNotShareColors(t *testing.T) {
	a := newTestSession(t, Options{Seed: 1})
	for i := 0; i < 3; i++ {
		a.spawn()
	}
	b := newTestSession(t, Options{Seed: 1})

	assert.Equal(t, 3, a.Piece().Color())
	assert.Equal(t, 0, b.Piece().Color())
}

func TestSameSeedSameShapes(t *testing.T) {
	a := newTestSession(t, Options{Seed: 77})
	b := newTestSession(t, Options{Seed: 77})

	for i := 0; i < 50; i++ {
		require.Equal(t, a.Piece().Shape(), b.Piece().Shape())
		a.spawn()
		b.spawn()
	}
}
