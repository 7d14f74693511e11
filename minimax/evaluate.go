package minimax

import (
	"github.com/chewxy/math32"
	"github.com/minmaxcheckers/game"
)

// DegenerateScore is the magnitude given to a side whose pieces have no spread
// at all (one piece, none, or all on a cell). It stays below infinity so a won
// board still ranks above it.
const DegenerateScore = math32.MaxFloat32

// Evaluate scores a board. Won boards score +Inf for Black and -Inf for White.
//
// Otherwise the side to move is rewarded for keeping its own pieces close
// together: the score is the inverse of the summed squared distance over all
// ordered pairs of its pieces, divided by the piece count. The sign is + when
// Black is to move and - when White is.
func Evaluate(b *game.Board) float32 {
	switch b.Outcome {
	case game.BlackWon:
		return math32.Inf(1)
	case game.WhiteWon:
		return math32.Inf(-1)
	}

	sign := float32(1)
	if b.Turn == game.White {
		sign = -1
	}
	pieces := b.Pieces(b.Turn)

	var total int
	for i, p := range pieces {
		for j, q := range pieces {
			if i == j {
				continue
			}
			dx := p.Col - q.Col
			dy := p.Row - q.Row
			total += dx*dx + dy*dy
		}
	}
	if len(pieces) == 0 || total == 0 {
		return sign * DegenerateScore
	}
	avg := float32(total) / float32(len(pieces))
	return 1 / avg * sign
}
