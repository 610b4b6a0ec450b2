package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("zero sum across perspectives", func(t *testing.T) {
		state := newPlayState(t)
		require.Equal(t, Evaluate(state, Black), -Evaluate(state, White))

		moves := state.LegalMoves()
		require.NotEmpty(t, moves)
		_, err := state.Apply(moves[0])
		require.NoError(t, err)
		require.Equal(t, Evaluate(state, Black), -Evaluate(state, White))
	})

	t.Run("terminal positions score the win value", func(t *testing.T) {
		state := newBareState(t, 4)
		state.Phase = PhaseGameOver
		state.Winner = Black

		require.Equal(t, WinScore, Evaluate(state, Black))
		require.Equal(t, -WinScore, Evaluate(state, White))
	})

	t.Run("mobility advantage scores positive", func(t *testing.T) {
		// Black can jump a1-c1; White has no capture at all.
		state := newBareState(t, 4)
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				pos := Position{row, col}
				if pos != (Position{0, 1}) && state.Board.At(pos) == White {
					state.Board.remove(pos)
				}
			}
		}
		state.Board.remove(Position{0, 2})

		require.Positive(t, Evaluate(state, Black))
		require.Negative(t, Evaluate(state, White))
	})

	t.Run("does not mutate the state", func(t *testing.T) {
		state := newPlayState(t)
		before := state.Copy()
		_ = Evaluate(state, Black)
		require.Equal(t, before.Board, state.Board)
		require.Equal(t, before.Turn, state.Turn)
		require.Equal(t, before.Phase, state.Phase)
	})
}
