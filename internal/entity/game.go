package entity

// Cell is the content of a single board square. The zero value is Empty.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (that Cell) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Opponent - returns the mark of the other player. Empty stays Empty.
func (that Cell) Opponent() Cell {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// State is the kind of result a board reports.
type State uint8

const (
	StateInProgress State = iota
	StateDraw
	StateWin
)

func (that State) String() string {
	switch that {
	case StateDraw:
		return "draw"
	case StateWin:
		return "win"
	default:
		return "in progress"
	}
}

// BoardStatus is recomputed on every query and never stored on the board.
// Winner is set only when State is StateWin.
type BoardStatus struct {
	State  State
	Winner Cell
}

func InProgress() BoardStatus {
	return BoardStatus{State: StateInProgress}
}

func Draw() BoardStatus {
	return BoardStatus{State: StateDraw}
}

func Win(player Cell) BoardStatus {
	return BoardStatus{State: StateWin, Winner: player}
}

// IsFinished - reports whether the game cannot continue.
func (that BoardStatus) IsFinished() bool {
	return that.State == StateDraw || that.State == StateWin
}

func (that BoardStatus) String() string {
	if that.State == StateWin {
		return that.Winner.String() + " won"
	}

	return that.State.String()
}
