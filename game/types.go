package game

import "fmt"

// Position is a cell on the board.
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Add returns p shifted by the direction d.
func (p Position) Add(d Position) Position {
	return Position{Col: p.Col + d.Col, Row: p.Row + d.Row}
}

// In reports whether p lies within a width x height board.
func (p Position) In(width, height int) bool {
	return p.Col >= 0 && p.Col < width && p.Row >= 0 && p.Row < height
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Col, p.Row) }

// Side is a player colour. Black is the computer and maximises, White is the human and minimises.
type Side int

const (
	White Side = iota
	Black
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Black {
		return White
	}
	return Black
}

// WinOutcome is the outcome that marks a win for s.
func (s Side) WinOutcome() Outcome {
	if s == Black {
		return BlackWon
	}
	return WhiteWon
}

func (s Side) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "UNKNOWN SIDE"
}

// Outcome is the state of the game.
type Outcome int

const (
	InProgress Outcome = iota
	BlackWon
	WhiteWon
)

// Winner returns the winning side, if any.
func (o Outcome) Winner() (Side, bool) {
	switch o {
	case BlackWon:
		return Black, true
	case WhiteWon:
		return White, true
	}
	return White, false
}

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "InProgress"
	case BlackWon:
		return "BlackWon"
	case WhiteWon:
		return "WhiteWon"
	}
	return "UNKNOWN OUTCOME"
}

// Move moves a piece From -> To. Flag is InProgress for a simple move, and the
// mover's winning outcome for a jump, since the first capture ends the game.
type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
	Flag Outcome  `json:"flag"`
}

// IsCapture returns true if the move jumps an opposing piece.
func (m Move) IsCapture() bool { return m.Flag != InProgress }

func (m Move) String() string {
	if m.IsCapture() {
		return fmt.Sprintf("%v x %v", m.From, m.To)
	}
	return fmt.Sprintf("%v - %v", m.From, m.To)
}
