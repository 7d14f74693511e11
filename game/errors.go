package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// Reasons a move is rejected.
const (
	ReasonGameOver   = "game is over"
	ReasonWrongTurn  = "not this side's turn"
	ReasonNotOwned   = "origin is not held by the moving side"
	ReasonOutOfBound = "destination is out of bounds"
	ReasonOccupied   = "destination is occupied"
	ReasonNotLegal   = "not a legal move"
)

// IllegalMoveError is returned when a move cannot be applied to a board.
// The board is never modified when this error is returned.
type IllegalMoveError struct {
	Side   Side
	Move   Move
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %v for %v: %s", e.Move, e.Side, e.Reason)
}

func illegal(side Side, m Move, reason string) error {
	return errors.WithStack(&IllegalMoveError{Side: side, Move: m, Reason: reason})
}

// NoLegalMovesError is returned when the side to move has no continuation.
type NoLegalMovesError struct {
	Side   Side
	Reason string
}

func (e *NoLegalMovesError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("no legal moves for %v", e.Side)
	}
	return fmt.Sprintf("no legal moves for %v: %s", e.Side, e.Reason)
}

// NoLegalMoves returns a *NoLegalMovesError with a stack attached.
func NoLegalMoves(side Side, reason string) error {
	return errors.WithStack(&NoLegalMovesError{Side: side, Reason: reason})
}

// IsIllegalMove returns true if err is, or wraps, an *IllegalMoveError.
func IsIllegalMove(err error) bool {
	var e *IllegalMoveError
	return errors.As(err, &e)
}

// IsNoLegalMoves returns true if err is, or wraps, a *NoLegalMovesError.
func IsNoLegalMoves(err error) bool {
	var e *NoLegalMovesError
	return errors.As(err, &e)
}
