package game

import "fmt"

// Phase is the game's forward-only state machine:
// BlackRemoval -> WhiteRemoval -> Play -> GameOver.
type Phase int8

const (
	PhaseBlackRemoval Phase = iota
	PhaseWhiteRemoval
	PhasePlay
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseBlackRemoval:
		return "opening black removal"
	case PhaseWhiteRemoval:
		return "opening white removal"
	case PhasePlay:
		return "play"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// Result codes in conventional match notation.
const (
	ResultBlackWin = "1-0"
	ResultWhiteWin = "0-1"
	// ResultDraw is unreachable under the base rules: every game ends with
	// a player unable to move. It exists for the record format.
	ResultDraw = "1/2-1/2"
)

// Move is a playable action: an opening Removal or a Jump. GameState.Apply
// dispatches on the concrete type according to the current phase.
type Move interface {
	// Notation renders the move in game-record text notation: a bare
	// coordinate for removals, "start-end" for jumps.
	Notation() string

	isMove()
}

// Removal is one of the two forced opening moves that create the first
// empty cells.
type Removal struct {
	Pos Position
}

func (r Removal) Notation() string { return r.Pos.Algebraic() }
func (Removal) isMove()            {}

// Jump is a capture move: an ordered chain of hops in one direction, each
// hop capturing the stone between its endpoints. Captured lists the
// captured positions in hop order.
type Jump struct {
	From      Position
	To        Position
	Direction Direction
	Captured  []Position
}

// Notation writes only the start and final destination; intermediate
// landing points are unambiguous because chains are direction-locked.
func (j Jump) Notation() string {
	return j.From.Algebraic() + "-" + j.To.Algebraic()
}

func (Jump) isMove() {}

// RecordType tags a MoveRecord variant.
type RecordType string

const (
	RecordOpeningRemoval RecordType = "opening_removal"
	RecordJump           RecordType = "jump"
)

// MoveRecord is one immutable entry of the game's append-only move log.
// Position is set for opening removals; From, To and Captured for jumps.
type MoveRecord struct {
	Type     RecordType `json:"type"`
	Color    Color      `json:"color"`
	Position *Position  `json:"position,omitempty"`
	From     *Position  `json:"from,omitempty"`
	To       *Position  `json:"to,omitempty"`
	Captured []Position `json:"captured,omitempty"`
}

// Move rebuilds the playable move this record describes, so a logged game
// can be replayed through the validated apply path.
func (r MoveRecord) Move() (Move, error) {
	switch r.Type {
	case RecordOpeningRemoval:
		if r.Position == nil {
			return nil, fmt.Errorf("opening removal record without position")
		}
		return Removal{Pos: *r.Position}, nil
	case RecordJump:
		if r.From == nil || r.To == nil {
			return nil, fmt.Errorf("jump record without endpoints")
		}
		if len(r.Captured) == 0 {
			return nil, fmt.Errorf("jump record without captures")
		}
		captured := make([]Position, len(r.Captured))
		copy(captured, r.Captured)
		return Jump{From: *r.From, To: *r.To, Captured: captured}, nil
	default:
		return nil, fmt.Errorf("unknown record type %q", r.Type)
	}
}

// Notation renders the record in game-record text notation.
func (r MoveRecord) Notation() string {
	if r.Type == RecordOpeningRemoval && r.Position != nil {
		return r.Position.Algebraic()
	}
	if r.From != nil && r.To != nil {
		return r.From.Algebraic() + "-" + r.To.Algebraic()
	}
	return ""
}

// GameState owns the board, the phase machine, the player to move and the
// move log. It is mutated only through the validated apply functions;
// search code works on copies obtained from Copy.
type GameState struct {
	Board   Board
	Phase   Phase
	Turn    Color
	Winner  Color // set once Phase == PhaseGameOver
	History []MoveRecord

	// firstRemoval remembers the cell Black emptied, which defines White's
	// legal opening removals.
	firstRemoval *Position
}

// NewGameState starts a fresh game. Black always makes the first opening
// removal.
func NewGameState(boardSize int) (*GameState, error) {
	board, err := NewBoard(boardSize)
	if err != nil {
		return nil, err
	}
	return &GameState{
		Board: board,
		Phase: PhaseBlackRemoval,
		Turn:  Black,
	}, nil
}

// Copy returns a deep copy sharing nothing with the receiver.
func (gs *GameState) Copy() *GameState {
	history := make([]MoveRecord, len(gs.History))
	copy(history, gs.History)

	var firstRemoval *Position
	if gs.firstRemoval != nil {
		pos := *gs.firstRemoval
		firstRemoval = &pos
	}

	return &GameState{
		Board:        gs.Board.Clone(),
		Phase:        gs.Phase,
		Turn:         gs.Turn,
		Winner:       gs.Winner,
		History:      history,
		firstRemoval: firstRemoval,
	}
}

// OpeningRemovalCell returns the cell emptied by Black's opening removal.
func (gs *GameState) OpeningRemovalCell() (Position, bool) {
	if gs.firstRemoval == nil {
		return Position{}, false
	}
	return *gs.firstRemoval, true
}

// Result returns the match result code, or "" while the game is running.
func (gs *GameState) Result() string {
	if gs.Phase != PhaseGameOver {
		return ""
	}
	if gs.Winner == Black {
		return ResultBlackWin
	}
	return ResultWhiteWin
}
