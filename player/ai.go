package player

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"konane/game"
	"konane/searcher"
)

// AI plays moves chosen by the search engine. The search depth is fixed at
// construction. Computation runs on a background goroutine against a copy
// of the state, so the caller may keep using its own GameState while the
// player reports not-ready.
type AI struct {
	color  game.Color
	search *searcher.Minimax

	mu       sync.Mutex
	move     game.Move
	thinking atomic.Bool
	ready    atomic.Bool
}

// NewAI builds an AI player searching to the given depth. Extra searcher
// options (parallelism, table size) may be appended.
func NewAI(color game.Color, depth int, options ...searcher.Option) *AI {
	opts := append([]searcher.Option{searcher.WithDepth(depth)}, options...)
	return &AI{
		color:  color,
		search: searcher.New(opts...),
	}
}

func (a *AI) Color() game.Color {
	return a.color
}

// RequestMove returns the computed move once ready. The first call on a
// new position starts a background search and returns ok=false; callers
// poll until IsReady.
func (a *AI) RequestMove(state *game.GameState) (game.Move, bool) {
	if a.ready.Load() {
		a.mu.Lock()
		move := a.move
		a.move = nil
		a.mu.Unlock()
		a.ready.Store(false)
		if move == nil {
			return nil, false
		}
		return move, true
	}

	if a.thinking.CompareAndSwap(false, true) {
		snapshot := state.Copy()
		go func() {
			defer a.thinking.Store(false)
			move, score, err := a.search.FindMove(snapshot)
			if err != nil {
				log.Error().Err(err).Str("color", a.color.String()).
					Msg("ai search failed")
				return
			}
			log.Debug().Str("color", a.color.String()).
				Str("move", move.Notation()).Int("score", score).
				Msg("ai move ready")
			a.mu.Lock()
			a.move = move
			a.mu.Unlock()
			a.ready.Store(true)
		}()
	}
	return nil, false
}

// ComputeMove searches synchronously and returns the chosen move.
func (a *AI) ComputeMove(state *game.GameState) (game.Move, error) {
	move, _, err := a.search.FindMove(state)
	return move, err
}

// ReceiveInput is a no-op: the AI ignores UI events.
func (a *AI) ReceiveInput(Input) {}

// IsReady reports whether a background search has finished and its move is
// waiting to be taken.
func (a *AI) IsReady() bool {
	return a.ready.Load()
}
