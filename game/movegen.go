package game

// Forward diagonals, left before right. There are no backward moves and no kings.
var (
	blackDirs = [2]Position{{Col: -1, Row: 1}, {Col: 1, Row: 1}}
	whiteDirs = [2]Position{{Col: -1, Row: -1}, {Col: 1, Row: -1}}
)

// Directions returns the two forward diagonals of a side.
func Directions(side Side) [2]Position {
	if side == Black {
		return blackDirs
	}
	return whiteDirs
}

// Each calls fn with every legal move of side, in piece order then direction
// order, until fn returns false. A terminal board has no moves.
//
// A jump is flagged as a win for the mover. The jumped piece is left in place:
// the game ends with the capture, so removing it would change nothing.
func (b *Board) Each(side Side, fn func(Move) bool) {
	if b.IsTerminal() {
		return
	}
	dirs := Directions(side)
	for _, piece := range b.Pieces(side) {
		for _, d := range dirs {
			target := piece.Add(d)
			if !b.InBounds(target) {
				continue
			}
			owner, occupied := b.Occupied(target)
			if !occupied {
				if !fn(Move{From: piece, To: target, Flag: InProgress}) {
					return
				}
				continue
			}
			if owner == side {
				continue
			}
			jump := target.Add(d)
			if !b.InBounds(jump) {
				continue
			}
			if _, blocked := b.Occupied(jump); blocked {
				continue
			}
			if !fn(Move{From: piece, To: jump, Flag: side.WinOutcome()}) {
				return
			}
		}
	}
}

// Moves returns all legal moves of side, in the order Each produces them.
func (b *Board) Moves(side Side) []Move {
	var retVal []Move
	b.Each(side, func(m Move) bool {
		retVal = append(retVal, m)
		return true
	})
	return retVal
}

// Find returns the legal move of side going from -> to, if there is one.
func (b *Board) Find(side Side, from, to Position) (retVal Move, ok bool) {
	b.Each(side, func(m Move) bool {
		if m.From == from && m.To == to {
			retVal, ok = m, true
			return false
		}
		return true
	})
	return
}
