package game

import "errors"

// Rules-engine error kinds. All are local and non-retryable: the caller
// must pick a different action rather than retry the same one.
var (
	// ErrInvalidPhase means the operation is not permitted in the current
	// game phase (e.g. a jump during the opening, any move after game over).
	ErrInvalidPhase = errors.New("operation not allowed in current phase")

	// ErrIllegalRemoval means the opening removal target is not in the
	// legal removal set for the player to move.
	ErrIllegalRemoval = errors.New("illegal opening removal")

	// ErrIllegalMove means the jump is not legal in the current state,
	// including stale jumps computed against an earlier position and
	// jumps by the wrong color.
	ErrIllegalMove = errors.New("illegal move")
)
