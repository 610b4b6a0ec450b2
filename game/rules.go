package game

import "fmt"

// LegalOpeningRemovals enumerates the stones the player to move may remove
// during the opening. For Black that is the intersection of Black-occupied
// cells with the board's center cells and corners; for White it is every
// White stone orthogonally adjacent to the cell Black emptied.
func (gs *GameState) LegalOpeningRemovals() ([]Position, error) {
	switch gs.Phase {
	case PhaseBlackRemoval:
		candidates := append(gs.Board.CenterPositions(), gs.Board.CornerPositions()...)
		out := make([]Position, 0, 4)
		for _, pos := range candidates {
			if gs.Board.At(pos) == Black {
				out = append(out, pos)
			}
		}
		return out, nil
	case PhaseWhiteRemoval:
		empty, ok := gs.OpeningRemovalCell()
		if !ok {
			return nil, fmt.Errorf("%w: white removal before black removal", ErrInvalidPhase)
		}
		out := make([]Position, 0, 4)
		for _, pos := range gs.Board.Neighbors(empty) {
			if gs.Board.At(pos) == White {
				out = append(out, pos)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: opening removals during %s", ErrInvalidPhase, gs.Phase)
	}
}

// ApplyOpeningRemoval validates and performs an opening removal, appends
// the move record and advances the phase machine. After White's removal it
// already checks whether Black can move at all.
func (gs *GameState) ApplyOpeningRemoval(pos Position) (MoveRecord, error) {
	legal, err := gs.LegalOpeningRemovals()
	if err != nil {
		return MoveRecord{}, err
	}
	if !containsPosition(legal, pos) {
		return MoveRecord{}, fmt.Errorf("%w: %s is not a legal %s removal",
			ErrIllegalRemoval, pos, gs.Turn)
	}

	mover := gs.Turn
	gs.Board.remove(pos)
	removed := pos
	record := MoveRecord{Type: RecordOpeningRemoval, Color: mover, Position: &removed}
	gs.History = append(gs.History, record)

	switch gs.Phase {
	case PhaseBlackRemoval:
		gs.firstRemoval = &removed
		gs.Phase = PhaseWhiteRemoval
		gs.Turn = White
	case PhaseWhiteRemoval:
		gs.Phase = PhasePlay
		gs.Turn = Black
		if len(gs.jumpsFor(Black)) == 0 {
			gs.Phase = PhaseGameOver
			gs.Winner = White
		}
	}
	return record, nil
}

// LegalJumpsFrom enumerates every jump available to the stone at from,
// including every prefix of each multi-jump chain: continuing a chain is
// optional, so a 3-hop chain yields three distinct jumps. Chains never
// change direction. Returns nil when the stone has no capture or does not
// belong to the player to move.
func (gs *GameState) LegalJumpsFrom(from Position) []Jump {
	if gs.Phase != PhasePlay || gs.Board.At(from) != gs.Turn {
		return nil
	}
	return jumpsFromFor(gs.Board, from, gs.Turn)
}

// jumpsFromFor scans the board read-only: within a direction-locked chain
// every cell ahead of the mover is untouched by the earlier hops, so no
// scratch board is needed.
func jumpsFromFor(board Board, from Position, mover Color) []Jump {
	size := board.Size()
	opponent := mover.Opponent()
	var jumps []Jump

	for _, dir := range Directions() {
		at := from
		var captured []Position
		for {
			over, ok := dir.Apply(at, size)
			if !ok || board.At(over) != opponent {
				break
			}
			land, ok := dir.Apply(over, size)
			if !ok || !board.IsEmpty(land) {
				break
			}
			captured = append(captured, over)
			chain := make([]Position, len(captured))
			copy(chain, captured)
			jumps = append(jumps, Jump{From: from, To: land, Direction: dir, Captured: chain})
			at = land
		}
	}
	return jumps
}

// jumpsFor enumerates every jump the given color could make on the current
// board, in deterministic (row, col, direction, chain length) order.
func (gs *GameState) jumpsFor(color Color) []Jump {
	size := gs.Board.Size()
	var jumps []Jump
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			pos := Position{row, col}
			if gs.Board.At(pos) != color {
				continue
			}
			jumps = append(jumps, jumpsFromFor(gs.Board, pos, color)...)
		}
	}
	return jumps
}

// LegalMoves enumerates every move for the player to move, dispatched by
// phase. The result doubles as the terminality test: an empty set during
// Play means the mover has lost.
func (gs *GameState) LegalMoves() []Move {
	switch gs.Phase {
	case PhaseBlackRemoval, PhaseWhiteRemoval:
		removals, err := gs.LegalOpeningRemovals()
		if err != nil {
			return nil
		}
		moves := make([]Move, len(removals))
		for i, pos := range removals {
			moves[i] = Removal{Pos: pos}
		}
		return moves
	case PhasePlay:
		jumps := gs.jumpsFor(gs.Turn)
		moves := make([]Move, len(jumps))
		for i, j := range jumps {
			moves[i] = j
		}
		return moves
	default:
		return nil
	}
}

// ApplyJump re-verifies the jump against the current state, applies it,
// flips the turn and transitions to GameOver when the new mover has no
// legal move. The jump is matched by endpoints and captures, so a jump
// reconstructed from a record (without a direction) is accepted.
func (gs *GameState) ApplyJump(jump Jump) (MoveRecord, error) {
	if gs.Phase != PhasePlay {
		return MoveRecord{}, fmt.Errorf("%w: jump during %s", ErrInvalidPhase, gs.Phase)
	}

	var matched *Jump
	for _, candidate := range gs.LegalJumpsFrom(jump.From) {
		if candidate.To == jump.To && samePositions(candidate.Captured, jump.Captured) {
			matched = &candidate
			break
		}
	}
	if matched == nil {
		return MoveRecord{}, fmt.Errorf("%w: %s jump %s", ErrIllegalMove, gs.Turn, jump.Notation())
	}

	mover := gs.Turn
	gs.Board.remove(matched.From)
	for _, capturedPos := range matched.Captured {
		gs.Board.remove(capturedPos)
	}
	gs.Board.set(matched.To, mover)

	from, to := matched.From, matched.To
	captured := make([]Position, len(matched.Captured))
	copy(captured, matched.Captured)
	record := MoveRecord{Type: RecordJump, Color: mover, From: &from, To: &to, Captured: captured}
	gs.History = append(gs.History, record)

	gs.Turn = mover.Opponent()
	if len(gs.jumpsFor(gs.Turn)) == 0 {
		gs.Phase = PhaseGameOver
		gs.Winner = mover
	}
	return record, nil
}

// Apply is the single move entry point: it dispatches the tagged move
// variant through the phase machine.
func (gs *GameState) Apply(move Move) (MoveRecord, error) {
	switch m := move.(type) {
	case Removal:
		return gs.ApplyOpeningRemoval(m.Pos)
	case Jump:
		return gs.ApplyJump(m)
	default:
		return MoveRecord{}, fmt.Errorf("%w: unknown move type %T", ErrIllegalMove, move)
	}
}

func containsPosition(positions []Position, pos Position) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}

func samePositions(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
