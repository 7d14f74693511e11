package game

import "golang.org/x/exp/slices"

// Apply plays m for side. The move is checked before anything is changed, so
// on error the board is left as it was.
//
// On success the piece at m.From is replaced by m.To in place, the turn passes
// to the opponent and the outcome becomes m.Flag.
func (b *Board) Apply(side Side, m Move) error {
	if reason := b.check(side, m); reason != "" {
		return illegal(side, m, reason)
	}
	pieces := b.Pieces(side)
	pieces[slices.Index(pieces, m.From)] = m.To
	b.Turn = side.Opponent()
	b.Outcome = m.Flag
	return nil
}

// check returns why m cannot be applied for side, or "" if it can.
// It does not check that m is a diagonal step or jump.
func (b *Board) check(side Side, m Move) string {
	switch {
	case b.IsTerminal():
		return ReasonGameOver
	case !slices.Contains(b.Pieces(side), m.From):
		return ReasonNotOwned
	case !b.InBounds(m.To):
		return ReasonOutOfBound
	}
	if _, occupied := b.Occupied(m.To); occupied {
		return ReasonOccupied
	}
	return ""
}

// Play applies a move given only by its squares, as a player would enter it.
// It must be side's turn and the squares must match a generated move, whose
// flag is then used, so a jump entered this way wins the game.
func (b *Board) Play(side Side, from, to Position) error {
	probe := Move{From: from, To: to}
	if b.IsTerminal() {
		return illegal(side, probe, ReasonGameOver)
	}
	if b.Turn != side {
		return illegal(side, probe, ReasonWrongTurn)
	}
	m, ok := b.Find(side, from, to)
	if !ok {
		reason := b.check(side, probe)
		if reason == "" {
			reason = ReasonNotLegal
		}
		return illegal(side, probe, reason)
	}
	return b.Apply(side, m)
}

// Successor returns a copy of b with m applied. b is not modified.
func (b *Board) Successor(side Side, m Move) (*Board, error) {
	retVal := b.Clone()
	if err := retVal.Apply(side, m); err != nil {
		return nil, err
	}
	return retVal, nil
}
