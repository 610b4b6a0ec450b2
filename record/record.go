// Package record serializes finished or in-progress games as JSON and
// rebuilds game state by replaying a record through the rules engine, so an
// imported file can never put the game in a position the rules would not
// allow.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"konane/game"
)

// ErrMalformedRecord wraps every import failure: bad JSON, an invalid board
// size, or a move the rules engine rejects.
var ErrMalformedRecord = errors.New("malformed game record")

// GameRecord is the JSON document: the board size, the ordered move log,
// and result metadata that Import cross-checks against the replayed game.
type GameRecord struct {
	BoardSize int               `json:"board_size"`
	Winner    string            `json:"winner,omitempty"`
	Result    string            `json:"result,omitempty"`
	MoveCount int               `json:"move_count"`
	Moves     []game.MoveRecord `json:"moves"`
}

// Import parses a game record and replays it move by move through the rules
// engine, returning the resulting state. The first rejected move fails the
// import with an error naming its move number.
func Import(data []byte) (*game.GameState, error) {
	var rec GameRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrMalformedRecord, err)
	}

	state, err := game.NewGameState(rec.BoardSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	if rec.MoveCount != 0 && rec.MoveCount != len(rec.Moves) {
		return nil, fmt.Errorf("%w: move_count %d does not match %d moves",
			ErrMalformedRecord, rec.MoveCount, len(rec.Moves))
	}

	for i, mr := range rec.Moves {
		if err := replayMove(state, mr, i+1); err != nil {
			return nil, err
		}
	}

	if err := checkWinner(state, rec.Winner); err != nil {
		return nil, err
	}
	if rec.Result != "" && rec.Result != state.Result() {
		return nil, fmt.Errorf("%w: result %q does not match replay result %q",
			ErrMalformedRecord, rec.Result, state.Result())
	}
	return state, nil
}

func replayMove(state *game.GameState, mr game.MoveRecord, moveNumber int) error {
	if mr.Color != state.Turn {
		return fmt.Errorf("%w: move %d: expected %s to move, got %s",
			ErrMalformedRecord, moveNumber, state.Turn, mr.Color)
	}
	if err := checkBounds(state, mr); err != nil {
		return fmt.Errorf("%w: move %d: %v", ErrMalformedRecord, moveNumber, err)
	}

	move, err := mr.Move()
	if err != nil {
		return fmt.Errorf("%w: move %d: %v", ErrMalformedRecord, moveNumber, err)
	}
	if _, err := state.Apply(move); err != nil {
		return fmt.Errorf("%w: move %d (%s): %v",
			ErrMalformedRecord, moveNumber, move.Notation(), err)
	}
	return nil
}

func checkBounds(state *game.GameState, mr game.MoveRecord) error {
	check := func(label string, p *game.Position) error {
		if p != nil && !state.Board.InBounds(*p) {
			return fmt.Errorf("%s %s is out of bounds", label, p.Algebraic())
		}
		return nil
	}
	if err := check("position", mr.Position); err != nil {
		return err
	}
	if err := check("from", mr.From); err != nil {
		return err
	}
	if err := check("to", mr.To); err != nil {
		return err
	}
	for i := range mr.Captured {
		if err := check("captured", &mr.Captured[i]); err != nil {
			return err
		}
	}
	return nil
}

func checkWinner(state *game.GameState, winner string) error {
	if winner == "" {
		return nil
	}
	var color game.Color
	if err := color.UnmarshalText([]byte(strings.ToLower(winner))); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if state.Phase != game.PhaseGameOver {
		return fmt.Errorf("%w: winner %q specified but game is not over",
			ErrMalformedRecord, winner)
	}
	if state.Winner != color {
		return fmt.Errorf("%w: winner mismatch: record says %s, replay says %s",
			ErrMalformedRecord, color, state.Winner)
	}
	return nil
}

// Export serializes the state's move log as an indented JSON game record.
// Winner and result are included once the game is over.
func Export(state *game.GameState) ([]byte, error) {
	rec := GameRecord{
		BoardSize: state.Board.Size(),
		MoveCount: len(state.History),
		Moves:     state.History,
	}
	if state.Phase == game.PhaseGameOver {
		rec.Winner = state.Winner.String()
		rec.Result = state.Result()
	}
	return json.MarshalIndent(rec, "", "  ")
}

// ExportText renders the move log as a numbered plain-text listing, ending
// with the result code when the game is over.
func ExportText(state *game.GameState) string {
	var b strings.Builder
	for i, mr := range state.History {
		fmt.Fprintf(&b, "%d. %s\n", i+1, mr.Notation())
	}
	if state.Phase == game.PhaseGameOver {
		b.WriteString(state.Result())
		b.WriteByte('\n')
	}
	return b.String()
}
