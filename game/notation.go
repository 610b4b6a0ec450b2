package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a board coordinate. (0, 0) is the bottom-left corner (a1);
// rows increase upward, columns increase to the right.
type Position struct {
	Row int
	Col int
}

// Algebraic renders the position in algebraic notation: column letters
// left-to-right from 'a', row numbers bottom-to-top from 1.
func (p Position) Algebraic() string {
	return fmt.Sprintf("%c%d", 'a'+rune(p.Col), p.Row+1)
}

func (p Position) String() string {
	return p.Algebraic()
}

// ParsePosition parses algebraic notation such as "a1" or "e4".
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return Position{}, fmt.Errorf("invalid position %q", s)
	}
	file := s[0]
	if file < 'a' || file > 'p' {
		return Position{}, fmt.Errorf("invalid position %q: bad file", s)
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil || rank < 1 {
		return Position{}, fmt.Errorf("invalid position %q: bad rank", s)
	}
	return Position{Row: rank - 1, Col: int(file - 'a')}, nil
}

// MarshalText encodes the position as algebraic notation so game records
// stay human-readable.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.Algebraic()), nil
}

func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Direction is one of the four orthogonal board directions. Multi-jump
// chains never change direction mid-move.
type Direction int8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions returns the four orthogonal directions in their fixed
// enumeration order.
func Directions() [4]Direction {
	return [4]Direction{Up, Down, Left, Right}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Apply moves one step in the direction. ok is false when the step would
// leave a size x size board.
func (d Direction) Apply(p Position, size int) (next Position, ok bool) {
	switch d {
	case Up:
		if p.Row < size-1 {
			return Position{p.Row + 1, p.Col}, true
		}
	case Down:
		if p.Row > 0 {
			return Position{p.Row - 1, p.Col}, true
		}
	case Left:
		if p.Col > 0 {
			return Position{p.Row, p.Col - 1}, true
		}
	case Right:
		if p.Col < size-1 {
			return Position{p.Row, p.Col + 1}, true
		}
	}
	return Position{}, false
}
