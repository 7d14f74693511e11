// Package checkers plays a checkers variant in which the first capture wins,
// with a plain minimax computer player on Black against a human on White.
package checkers

import (
	"github.com/minmaxcheckers/game"
	"github.com/minmaxcheckers/minimax"
)

// The computer and human sides.
const (
	Computer = game.Black
	Human    = game.White
)

// CreateBoard returns a board with the starting layout.
func CreateBoard(width, height int, first game.Side) *game.Board {
	return game.New(width, height, first)
}

// ApplyHumanMove plays the human's move from -> to. The squares must form a
// legal move for White on White's turn; otherwise a *game.IllegalMoveError is
// returned and the board is unchanged.
func ApplyHumanMove(b *game.Board, from, to game.Position) error {
	return b.Play(Human, from, to)
}

// ComputeComputerMove searches for Black's reply to the depth carried by b and
// returns the chosen successor. b itself is not modified. When Black has no
// move a *game.NoLegalMovesError is returned.
func ComputeComputerMove(b *game.Board) (*game.Board, error) {
	next, _, err := minimax.New(minimax.DefaultConfig()).Search(b)
	return next, err
}

// IsTerminal returns true if the game has been won.
func IsTerminal(b *game.Board) bool { return b.IsTerminal() }

// Winner returns the winning side of a finished game.
func Winner(b *game.Board) (game.Side, bool) { return b.Winner() }
