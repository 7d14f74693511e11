package game

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

const (
	DefaultWidth    = 6
	DefaultHeight   = 6
	DefaultMaxDepth = 10
)

// Board is the full game state. Pieces carry no identity beyond their cell,
// and the order of Black and White is insertion order only.
//
// Fields are exported and unchecked; Apply and Moves keep the invariants, and
// Validate checks them for boards built by hand.
type Board struct {
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Black    []Position `json:"black"`
	White    []Position `json:"white"`
	Turn     Side       `json:"turn"`
	Outcome  Outcome    `json:"outcome"`
	MaxDepth int        `json:"max_depth"` // search depth bound, constant for a game
}

// New returns a board with the starting layout: Black fills the first two rows
// in alternating cells, White the last two rows on the opposite edge.
func New(width, height int, first Side) *Board {
	b := &Board{
		Width:    width,
		Height:   height,
		Black:    make([]Position, 0, width),
		White:    make([]Position, 0, width),
		Turn:     first,
		Outcome:  InProgress,
		MaxDepth: DefaultMaxDepth,
	}
	for i := 0; i < width; i++ {
		b.Black = append(b.Black, Position{Col: i, Row: (i + 1) % 2})
		b.White = append(b.White, Position{Col: i, Row: height - 1 - i%2})
	}
	return b
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	retVal := *b
	retVal.Black = slices.Clone(b.Black)
	retVal.White = slices.Clone(b.White)
	return &retVal
}

// Pieces returns the piece list of a side. The slice is the board's own.
func (b *Board) Pieces(side Side) []Position {
	if side == Black {
		return b.Black
	}
	return b.White
}

// Occupied returns which side holds p, if any.
func (b *Board) Occupied(p Position) (Side, bool) {
	switch {
	case slices.Contains(b.Black, p):
		return Black, true
	case slices.Contains(b.White, p):
		return White, true
	}
	return White, false
}

// InBounds reports whether p is on the board.
func (b *Board) InBounds(p Position) bool { return p.In(b.Width, b.Height) }

// IsTerminal returns true once a side has won.
func (b *Board) IsTerminal() bool { return b.Outcome != InProgress }

// Winner returns the winning side of a terminal board.
func (b *Board) Winner() (Side, bool) { return b.Outcome.Winner() }

// Eq returns true if both boards hold the same state.
func (b *Board) Eq(other *Board) bool {
	return b.Width == other.Width &&
		b.Height == other.Height &&
		b.Turn == other.Turn &&
		b.Outcome == other.Outcome &&
		b.MaxDepth == other.MaxDepth &&
		slices.Equal(b.Black, other.Black) &&
		slices.Equal(b.White, other.White)
}

// Validate checks that every piece is on the board and that no two pieces
// share a cell. All violations are reported.
func (b *Board) Validate() error {
	var errs error
	if b.Width <= 0 || b.Height <= 0 {
		errs = multierror.Append(errs, errors.Errorf("invalid dimensions %dx%d", b.Width, b.Height))
	}
	seen := make(map[Position]Side, len(b.Black)+len(b.White))
	check := func(side Side, pieces []Position) {
		for _, p := range pieces {
			if !b.InBounds(p) {
				errs = multierror.Append(errs, errors.Errorf("%v piece %v is out of bounds", side, p))
			}
			if other, ok := seen[p]; ok {
				errs = multierror.Append(errs, errors.Errorf("%v piece %v shares a cell with a %v piece", side, p, other))
				continue
			}
			seen[p] = side
		}
	}
	check(Black, b.Black)
	check(White, b.White)
	return errs
}

func (b *Board) String() string {
	return fmt.Sprintf("{%dx%d Black: %v White: %v Turn: %v Outcome: %v}",
		b.Width, b.Height, b.Black, b.White, b.Turn, b.Outcome)
}
