package entity

// Outcome is the result of a turn that was actually played.
type Outcome int

const (
	OutcomeCompleted Outcome = iota
	OutcomeExtraTurn
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExtraTurn:
		return "extra_turn"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "completed"
	}
}

// Winner is the verdict of a board. WinnerNone means the game is still running.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerTie
	WinnerSide1
	WinnerSide2
)

// Side returns the winning side, or false for a tie or an unfinished game.
func (w Winner) Side() (int, bool) {
	switch w {
	case WinnerSide1:
		return Side1, true
	case WinnerSide2:
		return Side2, true
	default:
		return 0, false
	}
}

func (w Winner) String() string {
	switch w {
	case WinnerTie:
		return "tie"
	case WinnerSide1:
		return "side1"
	case WinnerSide2:
		return "side2"
	default:
		return "none"
	}
}
