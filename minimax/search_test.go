package minimax

import (
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minmaxcheckers/game"
)

func TestSearchSingleMove(t *testing.T) {
	for depth := 1; depth <= 6; depth++ {
		b := &game.Board{Width: 6, Height: 6, Turn: game.Black, MaxDepth: depth,
			Black: []game.Position{{Col: 0, Row: 0}},
			White: []game.Position{{Col: 5, Row: 5}}}
		require.Len(t, b.Moves(game.Black), 1)

		next, _, err := New(DefaultConfig()).Search(b)
		require.NoError(t, err, "depth %d", depth)
		assert.Equal(t, []game.Position{{Col: 1, Row: 1}}, next.Black, "depth %d", depth)
		assert.Equal(t, game.White, next.Turn)
	}
}

func TestSearchTakesCapture(t *testing.T) {
	for _, depth := range []int{1, 3} {
		b := &game.Board{Width: 6, Height: 6, Turn: game.Black, MaxDepth: depth,
			Black: []game.Position{{Col: 1, Row: 1}},
			White: []game.Position{{Col: 2, Row: 2}}}

		next, value, err := New(DefaultConfig()).Search(b)
		require.NoError(t, err)
		assert.Equal(t, game.BlackWon, next.Outcome)
		assert.Equal(t, []game.Position{{Col: 3, Row: 3}}, next.Black)
		assert.True(t, math32.IsInf(value, 1))
	}
}

func TestSearchDoesNotModifyBoard(t *testing.T) {
	b := game.New(game.DefaultWidth, game.DefaultHeight, game.Black)
	b.MaxDepth = 3
	before := b.Clone()

	next, _, err := New(DefaultConfig()).Search(b)
	require.NoError(t, err)
	assert.True(t, b.Eq(before))
	assert.False(t, next.Eq(before))
	require.NoError(t, next.Validate())
}

func TestSearchNoBlackPieces(t *testing.T) {
	b := &game.Board{Width: 6, Height: 6, Turn: game.Black, MaxDepth: 4,
		White: []game.Position{{Col: 2, Row: 2}}}
	require.Empty(t, b.Moves(game.Black))

	next, _, err := New(DefaultConfig()).Search(b)
	require.Error(t, err)
	assert.Nil(t, next)
	assert.True(t, game.IsNoLegalMoves(err))
}

func TestSearchFinishedGame(t *testing.T) {
	b := game.New(game.DefaultWidth, game.DefaultHeight, game.Black)
	b.Outcome = game.WhiteWon

	_, _, err := New(DefaultConfig()).Search(b)
	assert.True(t, game.IsNoLegalMoves(err))
}

// Both black moves walk into a white jump, so every search deeper than one ply
// scores -Inf everywhere and chooses nothing. The search falls back to one ply
// and keeps the first of two equal moves.
func TestSearchFallsBackWhenEveryLineLoses(t *testing.T) {
	b := &game.Board{Width: 6, Height: 6, Turn: game.Black, MaxDepth: 4,
		Black: []game.Position{{Col: 2, Row: 2}},
		White: []game.Position{{Col: 2, Row: 4}}}

	s := New(DefaultConfig())
	next, value, err := s.Search(b)
	require.NoError(t, err)
	assert.Equal(t, []game.Position{{Col: 1, Row: 3}}, next.Black)
	assert.Equal(t, -float32(DegenerateScore), value)
	assert.Equal(t, 1, s.Stats().Depth)
}

func TestSearchStats(t *testing.T) {
	b := game.New(game.DefaultWidth, game.DefaultHeight, game.Black)
	b.MaxDepth = 1

	s := New(DefaultConfig())
	_, _, err := s.Search(b)
	require.NoError(t, err)

	st := s.Stats()
	assert.Equal(t, 1, st.Depth)
	assert.Equal(t, 6, st.Nodes)
	assert.Equal(t, 5, st.Leaves)
	assert.Equal(t, 0, st.Terminals)
}

func TestConfigCapsDepth(t *testing.T) {
	b := game.New(game.DefaultWidth, game.DefaultHeight, game.Black)

	s := New(Config{MaxDepth: 2})
	_, _, err := s.Search(b)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Stats().Depth)

	assert.Error(t, Config{MaxDepth: -1}.Validate())
	assert.True(t, DefaultConfig().IsValid())
}

func TestDotTracer(t *testing.T) {
	b := game.New(game.DefaultWidth, game.DefaultHeight, game.Black)
	b.MaxDepth = 2

	tr := NewDotTracer(1)
	_, _, err := New(DefaultConfig(), WithTracer(tr)).Search(b)
	require.NoError(t, err)
	require.NoError(t, tr.Err())

	// root plus the five black replies
	assert.Equal(t, 6, tr.Nodes())
	out := tr.String()
	assert.True(t, strings.HasPrefix(out, "digraph search"), out)
	assert.Contains(t, out, "n0->n1")
}
