package searcher

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"konane/game"
)

// DefaultDepth is the search depth used when no WithDepth option is given.
const DefaultDepth = 6

// DefaultTableSize bounds the transposition table's entry count.
const DefaultTableSize = 1 << 20

// ErrNoLegalMove is returned when a search is requested on a state where
// the player to move has no legal move. Callers should test terminality
// before searching.
var ErrNoLegalMove = errors.New("no legal move to search")

const infinity = math.MaxInt32

// Option configures a Minimax searcher.
type Option func(*Minimax)

// WithDepth sets the search depth. Depth 0 degenerates to the static
// evaluation of the root.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines enables parallel search over the root moves. The chosen
// move is independent of the worker count.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithTableSize bounds the transposition table entry count.
func WithTableSize(entries int) Option {
	return func(m *Minimax) {
		if entries > 0 {
			m.tableSize = entries
		}
	}
}

// WithoutTable disables transposition-table memoization. Searches behave
// identically, only slower.
func WithoutTable() Option {
	return func(m *Minimax) {
		m.noTable = true
	}
}

// Minimax picks moves by depth-limited minimax with alpha-beta pruning,
// memoized by a transposition table keyed on position fingerprints. Given
// the same state and depth it always returns the same move: ties are
// broken by the rules engine's enumeration order.
type Minimax struct {
	depth      int
	goroutines int
	tableSize  int
	noTable    bool
}

// New builds a searcher. The depth is fixed for the searcher's lifetime.
func New(options ...Option) *Minimax {
	m := &Minimax{
		depth:      DefaultDepth,
		goroutines: 1,
		tableSize:  DefaultTableSize,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Depth returns the configured search depth.
func (m *Minimax) Depth() int {
	return m.depth
}

// FindMove returns the best move for the player to move together with its
// score from that player's perspective. The caller's state is never
// mutated; exploration works on copies. Fails with ErrNoLegalMove on a
// terminal state.
func (m *Minimax) FindMove(state *game.GameState) (game.Move, int, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, 0, ErrNoLegalMove
	}

	start := time.Now()
	stats := &Stats{}

	if m.depth == 0 {
		return moves[0], game.Evaluate(state, state.Turn), nil
	}

	var table *table
	if !m.noTable {
		table = newTable(m.tableSize)
	}

	var best game.Move
	var bestScore int
	if m.goroutines > 1 {
		best, bestScore = m.searchRootParallel(state, moves, table, stats)
	} else {
		best, bestScore = m.searchRoot(state, moves, table, stats)
	}

	log.Debug().
		Str("move", best.Notation()).
		Int("score", bestScore).
		Int("depth", m.depth).
		Int64("nodes", stats.Nodes.Load()).
		Int64("leaves", stats.Leaves.Load()).
		Int64("tt_hits", stats.TableHits.Load()).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")

	return best, bestScore, nil
}

// searchRoot is the sequential root loop: the alpha bound rises across
// siblings, and only a strictly better score replaces the incumbent.
func (m *Minimax) searchRoot(state *game.GameState, moves []game.Move, table *table, stats *Stats) (game.Move, int) {
	best := moves[0]
	bestScore := -infinity
	alpha := -infinity

	for _, move := range moves {
		child := state.Copy()
		if _, err := child.Apply(move); err != nil {
			continue
		}
		score := -m.negamax(child, m.depth-1, -infinity, -alpha, table, stats)
		if score > bestScore {
			bestScore = score
			best = move
		}
		if score > alpha {
			alpha = score
		}
	}
	return best, bestScore
}

// searchRootParallel fans the root moves out to workers. Every child is
// searched with a full window, so its value is exact and the merge by move
// index reproduces the sequential tie-break regardless of scheduling.
func (m *Minimax) searchRootParallel(state *game.GameState, moves []game.Move, table *table, stats *Stats) (game.Move, int) {
	scores := make([]int, len(moves))
	tasks := make(chan int, len(moves))
	for i := range moves {
		tasks <- i
	}
	close(tasks)

	var wg sync.WaitGroup
	for w := 0; w < m.goroutines; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				child := state.Copy()
				if _, err := child.Apply(moves[i]); err != nil {
					scores[i] = -infinity
					continue
				}
				scores[i] = -m.negamax(child, m.depth-1, -infinity, infinity, table, stats)
			}
		}()
	}
	wg.Wait()

	best, bestScore := moves[0], scores[0]
	for i := 1; i < len(moves); i++ {
		if scores[i] > bestScore {
			best, bestScore = moves[i], scores[i]
		}
	}
	return best, bestScore
}

// negamax returns the value of the position from the perspective of its
// player to move.
func (m *Minimax) negamax(state *game.GameState, depth, alpha, beta int, table *table, stats *Stats) int {
	stats.Nodes.Add(1)

	if state.Phase == game.PhaseGameOver || depth <= 0 {
		stats.Leaves.Add(1)
		return game.Evaluate(state, state.Turn)
	}

	var key uint64
	if table != nil {
		key = state.Fingerprint()
		if entry, ok := table.probe(key, depth); ok {
			switch entry.flag {
			case flagExact:
				stats.TableHits.Add(1)
				return entry.score
			case flagLower:
				if entry.score > alpha {
					alpha = entry.score
				}
			case flagUpper:
				if entry.score < beta {
					beta = entry.score
				}
			}
			if alpha >= beta {
				stats.TableHits.Add(1)
				return entry.score
			}
		}
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		// Unreachable for well-formed states: apply functions transition
		// to GameOver eagerly.
		stats.Leaves.Add(1)
		return game.Evaluate(state, state.Turn)
	}

	alphaOrig := alpha
	best := -infinity
	for _, move := range moves {
		child := state.Copy()
		if _, err := child.Apply(move); err != nil {
			continue
		}
		score := -m.negamax(child, depth-1, -beta, -alpha, table, stats)
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	if table != nil {
		flag := flagExact
		switch {
		case best <= alphaOrig:
			flag = flagUpper
		case best >= beta:
			flag = flagLower
		}
		table.store(key, depth, best, flag)
		stats.TableStores.Add(1)
	}
	return best
}
