// Package player is the seam between the rules/search core and any user
// interface. The UI polls IsReady/RequestMove and applies accepted moves
// through the rules engine; the core never talks to the UI directly.
package player

import (
	"sync"

	"konane/game"
)

// Player is a move source for one color.
type Player interface {
	// Color returns the color this player moves for.
	Color() game.Color

	// RequestMove returns the player's move for the given state when one
	// is available. Human players return ok=false until input arrives;
	// AI players may compute in the background and return ok=false while
	// busy.
	RequestMove(state *game.GameState) (move game.Move, ok bool)

	// ReceiveInput delivers a UI-originated selection. AI players ignore
	// it.
	ReceiveInput(input Input)

	// IsReady reports whether a move is available to be taken.
	IsReady() bool
}

// InputKind tags an Input variant.
type InputKind int8

const (
	// InputPosition selects a cell, used for opening removals.
	InputPosition InputKind = iota
	// InputJump selects a complete jump.
	InputJump
	// InputCancel clears any pending selection.
	InputCancel
)

// Input is a UI-originated event delivered to a human player.
type Input struct {
	Kind     InputKind
	Position game.Position
	Jump     game.Jump
}

// Human buffers moves selected through the UI until the game loop
// collects them.
type Human struct {
	color game.Color

	mu      sync.Mutex
	pending game.Move
}

func NewHuman(color game.Color) *Human {
	return &Human{color: color}
}

func (h *Human) Color() game.Color {
	return h.color
}

// RequestMove takes the pending move, if any.
func (h *Human) RequestMove(*game.GameState) (game.Move, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pending == nil {
		return nil, false
	}
	move := h.pending
	h.pending = nil
	return move, true
}

func (h *Human) ReceiveInput(input Input) {
	h.mu.Lock()
	defer h.mu.Unlock()
	switch input.Kind {
	case InputPosition:
		h.pending = game.Removal{Pos: input.Position}
	case InputJump:
		h.pending = input.Jump
	case InputCancel:
		h.pending = nil
	}
}

func (h *Human) IsReady() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pending != nil
}
