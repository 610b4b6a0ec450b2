package game

// WinScore is the terminal evaluation magnitude. It dominates any mobility
// score a non-terminal position can reach.
const WinScore = 1 << 20

// mobilityWeight makes one available jump worth more than one spare stone,
// so the stone count only breaks mobility ties.
const mobilityWeight = 8

// Evaluate scores the position from perspective's point of view: positive
// is good for perspective. The heuristic is jump mobility difference with
// remaining-stone difference as a tiebreak. The function is side-effect
// free and zero-sum: Evaluate(s, Black) == -Evaluate(s, White).
func Evaluate(gs *GameState, perspective Color) int {
	if gs.Phase == PhaseGameOver {
		if gs.Winner == perspective {
			return WinScore
		}
		return -WinScore
	}

	score := mobilityWeight*(len(gs.jumpsFor(Black))-len(gs.jumpsFor(White))) +
		gs.Board.Count(Black) - gs.Board.Count(White)
	if perspective == White {
		score = -score
	}
	return score
}
