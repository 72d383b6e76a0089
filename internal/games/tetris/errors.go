package tetris

import "errors"

// Construction errors. Gameplay never returns errors: blocked moves are no-ops
// and a blocked spawn ends the game.
var (
	ErrUnknownShape       = errors.New("unknown shape")
	ErrUnknownClearRule   = errors.New("unknown line clear rule")
	ErrInvalidDimensions  = errors.New("invalid board dimensions")
	ErrInvalidSpeedFactor = errors.New("speed factor must be in (0, 1]")
)
