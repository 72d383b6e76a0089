package tetris

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
// Uses primitive types only; compare two snapshots with cmp.Diff.
type Snapshot struct {
	Tick  uint64
	Score int
	Level int
	Lines int

	// Falling piece
	Shape    string
	Rotation int
	X, Y     int
	Color    int

	GravityMs        int64 // Current gravity interval in milliseconds
	GravityCountdown int
	NextThreshold    int

	Board [][]int
	State GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	s := g.session
	return Snapshot{
		Tick:             g.tick,
		Score:            s.Score(),
		Level:            s.Level(),
		Lines:            s.Lines(),
		Shape:            s.piece.shape.String(),
		Rotation:         s.piece.rotation,
		X:                s.piece.origin.X,
		Y:                s.piece.origin.Y,
		Color:            s.piece.color,
		GravityMs:        s.GravityInterval().Milliseconds(),
		GravityCountdown: g.gravityCountdown,
		NextThreshold:    s.NextLevelThreshold(),
		Board:            s.board.Rows(),
		State:            state,
	}
}
