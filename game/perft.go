package game

// Perft counts the move sequences of exactly depth plies from b, with sides
// alternating from b.Turn. A won board ends its line.
func Perft(b *Board, depth int) int {
	if depth <= 0 {
		return 1
	}
	var n int
	side := b.Turn
	b.Each(side, func(m Move) bool {
		next, err := b.Successor(side, m)
		if err != nil {
			return true
		}
		n += Perft(next, depth-1)
		return true
	})
	return n
}
