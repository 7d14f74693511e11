package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySimpleMove(t *testing.T) {
	b := New(DefaultWidth, DefaultHeight, Black)
	m := Move{From: Position{2, 1}, To: Position{3, 2}}

	require.NoError(t, b.Apply(Black, m))
	assert.Equal(t, []Position{{0, 1}, {1, 0}, {3, 2}, {3, 0}, {4, 1}, {5, 0}}, b.Black)
	assert.Equal(t, White, b.Turn)
	assert.Equal(t, InProgress, b.Outcome)
}

func TestApplyRejects(t *testing.T) {
	cases := []struct {
		name   string
		side   Side
		move   Move
		reason string
		prep   func(*Board)
	}{
		{"not owned", White, Move{From: Position{2, 2}, To: Position{1, 3}}, ReasonNotOwned, nil},
		{"opponent piece", White, Move{From: Position{0, 1}, To: Position{1, 2}}, ReasonNotOwned, nil},
		{"out of bounds", White, Move{From: Position{0, 5}, To: Position{-1, 4}}, ReasonOutOfBound, nil},
		{"occupied", White, Move{From: Position{0, 5}, To: Position{1, 4}}, ReasonOccupied, nil},
		{"game over", White, Move{From: Position{1, 4}, To: Position{0, 3}}, ReasonGameOver, func(b *Board) { b.Outcome = BlackWon }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := New(DefaultWidth, DefaultHeight, White)
			if c.prep != nil {
				c.prep(b)
			}
			before := b.Clone()

			err := b.Apply(c.side, c.move)
			require.Error(t, err)
			require.True(t, IsIllegalMove(err))
			assert.False(t, IsNoLegalMoves(err))

			var ime *IllegalMoveError
			require.True(t, errors.As(err, &ime))
			assert.Equal(t, c.reason, ime.Reason)
			assert.Equal(t, c.move, ime.Move)
			assert.True(t, b.Eq(before), "board changed on rejected move")
		})
	}
}

func TestSuccessorDoesNotTouchParent(t *testing.T) {
	b := New(DefaultWidth, DefaultHeight, White)
	before := b.Clone()
	next, err := b.Successor(White, Move{From: Position{1, 4}, To: Position{0, 3}})
	require.NoError(t, err)

	assert.True(t, b.Eq(before))
	assert.Equal(t, Position{0, 3}, next.White[1])
	assert.Equal(t, Black, next.Turn)

	_, err = b.Successor(White, Move{From: Position{1, 1}, To: Position{0, 3}})
	assert.True(t, IsIllegalMove(err))
}

func TestPlay(t *testing.T) {
	b := New(DefaultWidth, DefaultHeight, White)
	require.NoError(t, b.Play(White, Position{1, 4}, Position{0, 3}))
	assert.Equal(t, Black, b.Turn)
	assert.Equal(t, InProgress, b.Outcome)
}

func TestPlayRejects(t *testing.T) {
	cases := []struct {
		name     string
		side     Side
		from, to Position
		reason   string
	}{
		{"not owned", White, Position{2, 2}, Position{1, 1}, ReasonNotOwned},
		{"wrong turn", Black, Position{0, 1}, Position{1, 2}, ReasonWrongTurn},
		{"backwards", White, Position{1, 4}, Position{0, 5}, ReasonOccupied},
		{"sideways", White, Position{1, 4}, Position{1, 3}, ReasonNotLegal},
		{"too far", White, Position{1, 4}, Position{3, 2}, ReasonNotLegal},
		{"off board", White, Position{5, 4}, Position{6, 3}, ReasonOutOfBound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := New(DefaultWidth, DefaultHeight, White)
			before := b.Clone()

			err := b.Play(c.side, c.from, c.to)
			var ime *IllegalMoveError
			require.True(t, errors.As(err, &ime), "got %v", err)
			assert.Equal(t, c.reason, ime.Reason)
			assert.True(t, b.Eq(before))
		})
	}
}

func TestPlayCaptureWins(t *testing.T) {
	b := &Board{
		Width: 6, Height: 6,
		Black: []Position{{3, 3}},
		White: []Position{{4, 4}},
		Turn:  White,
	}
	require.NoError(t, b.Play(White, Position{4, 4}, Position{2, 2}))
	assert.Equal(t, WhiteWon, b.Outcome)
}
