package game

import "fmt"

// Color identifies a stone. NoColor marks an empty cell.
type Color int8

const (
	NoColor Color = iota
	Black
	White
)

// Opponent returns the other player's color.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "none"
}

// MarshalText encodes the color as "black" or "white" in game records.
func (c Color) MarshalText() ([]byte, error) {
	if c != Black && c != White {
		return nil, fmt.Errorf("cannot encode color %d", int8(c))
	}
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "black", "Black":
		*c = Black
	case "white", "White":
		*c = White
	default:
		return fmt.Errorf("invalid color %q", text)
	}
	return nil
}

const (
	// MinBoardSize and MaxBoardSize bound the supported square boards.
	MinBoardSize = 4
	MaxBoardSize = 16
)

// Board is a square grid of stones. The initial layout is a strict
// checkerboard with Black on every cell whose row+col sum is even, so
// a1 holds a Black stone.
type Board struct {
	size  int
	cells []Color
}

// NewBoard builds a fully populated checkerboard. Size must be even and
// between MinBoardSize and MaxBoardSize.
func NewBoard(size int) (Board, error) {
	if size < MinBoardSize || size > MaxBoardSize || size%2 != 0 {
		return Board{}, fmt.Errorf("board size %d: must be even and between %d and %d",
			size, MinBoardSize, MaxBoardSize)
	}
	b := Board{size: size, cells: make([]Color, size*size)}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if (row+col)%2 == 0 {
				b.cells[row*size+col] = Black
			} else {
				b.cells[row*size+col] = White
			}
		}
	}
	return b, nil
}

func (b Board) Size() int {
	return b.size
}

// InBounds reports whether the position lies on the board.
func (b Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// At returns the stone at p, or NoColor when the cell is empty or off-board.
func (b Board) At(p Position) Color {
	if !b.InBounds(p) {
		return NoColor
	}
	return b.cells[p.Row*b.size+p.Col]
}

// IsEmpty reports whether p is an on-board empty cell.
func (b Board) IsEmpty(p Position) bool {
	return b.InBounds(p) && b.cells[p.Row*b.size+p.Col] == NoColor
}

func (b *Board) set(p Position, c Color) {
	if b.InBounds(p) {
		b.cells[p.Row*b.size+p.Col] = c
	}
}

func (b *Board) remove(p Position) {
	b.set(p, NoColor)
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)
	return Board{size: b.size, cells: cells}
}

// Count returns the number of stones of the given color.
func (b Board) Count(c Color) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// CenterPositions returns the four central cells of the board.
func (b Board) CenterPositions() []Position {
	mid := b.size / 2
	return []Position{
		{mid - 1, mid - 1},
		{mid - 1, mid},
		{mid, mid - 1},
		{mid, mid},
	}
}

// CornerPositions returns the four corners. On an even checkerboard
// (0,0) and (size-1,size-1) are Black, the other two are White.
func (b Board) CornerPositions() []Position {
	return []Position{
		{0, 0},
		{0, b.size - 1},
		{b.size - 1, 0},
		{b.size - 1, b.size - 1},
	}
}

// Neighbors returns the on-board orthogonal neighbors of p in the fixed
// direction order.
func (b Board) Neighbors(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, d := range Directions() {
		if next, ok := d.Apply(p, b.size); ok {
			out = append(out, next)
		}
	}
	return out
}
