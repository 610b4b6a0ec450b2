// Package engine runs a local game between two players: it polls the player
// whose turn it is, pushes accepted moves through the rules engine, and stops
// when the game is over.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"konane/game"
	"konane/player"
)

// MaxMoves caps the game loop. A Kōnane game shrinks the board every move,
// so any game on a legal board ends well before this.
const MaxMoves = 10000

// ErrStalled is returned when a player never produces a move.
var ErrStalled = errors.New("player produced no move")

const defaultPollInterval = time.Millisecond

// Option configures an Engine.
type Option func(*Engine)

// WithPollInterval sets how long Run sleeps between polls of a player that
// is not ready.
func WithPollInterval(d time.Duration) Option {
	return func(e *Engine) {
		e.pollInterval = d
	}
}

// WithPollBudget bounds how many times Run polls one player for a single
// move before giving up with ErrStalled. Zero means no bound.
func WithPollBudget(polls int) Option {
	return func(e *Engine) {
		e.pollBudget = polls
	}
}

// Engine drives one game from the current state to completion.
type Engine struct {
	id      string
	state   *game.GameState
	players map[game.Color]player.Player

	pollInterval time.Duration
	pollBudget   int
}

// New builds an engine over the given state and one player per color.
func New(state *game.GameState, black, white player.Player, options ...Option) *Engine {
	e := &Engine{
		id:    uuid.NewString(),
		state: state,
		players: map[game.Color]player.Player{
			game.Black: black,
			game.White: white,
		},
		pollInterval: defaultPollInterval,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// ID returns the engine's game identifier, used in its log lines.
func (e *Engine) ID() string {
	return e.id
}

// State returns the game state the engine is driving.
func (e *Engine) State() *game.GameState {
	return e.state
}

// Run plays the game to completion and returns the final state. Moves that
// the rules engine rejects are logged and dropped; the same player is polled
// again.
func (e *Engine) Run() (*game.GameState, error) {
	log.Info().Str("game", e.id).Int("board_size", e.state.Board.Size()).
		Msg("game started")

	moveCount := 0
	for e.state.Phase != game.PhaseGameOver && moveCount < MaxMoves {
		mover := e.state.Turn
		current := e.players[mover]

		move, err := e.awaitMove(current)
		if err != nil {
			return e.state, fmt.Errorf("%s to move: %w", mover, err)
		}

		record, err := e.state.Apply(move)
		if err != nil {
			// A human can select a stale jump; ask again.
			log.Warn().Str("game", e.id).Str("color", mover.String()).
				Str("move", move.Notation()).Err(err).
				Msg("move rejected")
			continue
		}

		moveCount++
		log.Info().Str("game", e.id).Int("move", moveCount).
			Str("color", mover.String()).Str("type", string(record.Type)).
			Str("notation", move.Notation()).
			Msg("move played")
	}

	if e.state.Phase != game.PhaseGameOver {
		return e.state, fmt.Errorf("game exceeded %d moves", MaxMoves)
	}

	log.Info().Str("game", e.id).Str("winner", e.state.Winner.String()).
		Str("result", e.state.Result()).Int("moves", moveCount).
		Msg("game over")
	return e.state, nil
}

// awaitMove polls one player until it yields a move.
func (e *Engine) awaitMove(p player.Player) (game.Move, error) {
	polls := 0
	for {
		if move, ok := p.RequestMove(e.state); ok {
			return move, nil
		}
		polls++
		if e.pollBudget > 0 && polls >= e.pollBudget {
			return nil, ErrStalled
		}
		time.Sleep(e.pollInterval)
	}
}
