package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"konane/game"
	"konane/player"
)

func TestRun(t *testing.T) {
	t.Run("ai vs ai game on a 4x4 board finishes with a winner", func(t *testing.T) {
		state, err := game.NewGameState(4)
		require.NoError(t, err)

		eng := New(state,
			player.NewAI(game.Black, 4),
			player.NewAI(game.White, 4))

		final, err := eng.Run()
		require.NoError(t, err)
		require.Equal(t, game.PhaseGameOver, final.Phase)
		require.NotEqual(t, game.NoColor, final.Winner)
		require.Empty(t, final.LegalMoves())
	})

	t.Run("history replays to the same board", func(t *testing.T) {
		state, err := game.NewGameState(4)
		require.NoError(t, err)

		eng := New(state,
			player.NewAI(game.Black, 3),
			player.NewAI(game.White, 3))

		final, err := eng.Run()
		require.NoError(t, err)

		replay, err := game.NewGameState(4)
		require.NoError(t, err)
		for i, rec := range final.History {
			move, err := rec.Move()
			require.NoError(t, err, "record %d", i)
			_, err = replay.Apply(move)
			require.NoError(t, err, "record %d", i)
		}
		require.Equal(t, final.Board, replay.Board)
		require.Equal(t, final.Winner, replay.Winner)
	})

	t.Run("human move flows through the loop", func(t *testing.T) {
		state, err := game.NewGameState(8)
		require.NoError(t, err)

		human := player.NewHuman(game.Black)
		eng := New(state, human, player.NewAI(game.White, 2),
			WithPollBudget(1))

		// No input queued: the loop gives up instead of spinning.
		_, err = eng.Run()
		require.ErrorIs(t, err, ErrStalled)

		// Queue a legal removal and step once more.
		removals, err := state.LegalOpeningRemovals()
		require.NoError(t, err)
		human.ReceiveInput(player.Input{Kind: player.InputPosition, Position: removals[0]})

		move, ok := human.RequestMove(state)
		require.True(t, ok)
		_, err = state.Apply(move)
		require.NoError(t, err)
		require.Equal(t, game.PhaseWhiteRemoval, state.Phase)
	})

	t.Run("rejected move does not advance the game", func(t *testing.T) {
		state, err := game.NewGameState(8)
		require.NoError(t, err)

		human := player.NewHuman(game.Black)
		// Not one of Black's opening cells.
		human.ReceiveInput(player.Input{Kind: player.InputPosition, Position: game.Position{Row: 0, Col: 2}})
		eng := New(state, human, player.NewAI(game.White, 2),
			WithPollBudget(1))

		_, err = eng.Run()
		require.ErrorIs(t, err, ErrStalled)
		require.Equal(t, game.PhaseBlackRemoval, state.Phase)
		require.Empty(t, state.History)
	})

	t.Run("each engine gets its own id", func(t *testing.T) {
		a, err := game.NewGameState(4)
		require.NoError(t, err)
		b, err := game.NewGameState(4)
		require.NoError(t, err)

		first := New(a, player.NewAI(game.Black, 1), player.NewAI(game.White, 1))
		second := New(b, player.NewAI(game.Black, 1), player.NewAI(game.White, 1))
		require.NotEmpty(t, first.ID())
		require.NotEqual(t, first.ID(), second.ID())
	})
}
