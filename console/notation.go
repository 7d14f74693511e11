package console

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/minmaxcheckers/game"
)

// ErrSyntax is returned for input that is not two squares.
var ErrSyntax = errors.New("expected two squares such as \"e1 d2\"")

// ParseSquare reads a square written as a row letter and a column number.
func ParseSquare(s string) (game.Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 || s[0] < 'a' || s[0] > 'z' {
		return game.Position{}, errors.Errorf("bad square %q", s)
	}
	col, err := strconv.Atoi(s[1:])
	if err != nil || col < 0 {
		return game.Position{}, errors.Errorf("bad column in square %q", s)
	}
	return game.Position{Col: col, Row: int(s[0] - 'a')}, nil
}

// ParseMove reads a line holding an origin and a destination square.
func ParseMove(line string) (from, to game.Position, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return from, to, errors.WithStack(ErrSyntax)
	}
	if from, err = ParseSquare(fields[0]); err != nil {
		return
	}
	to, err = ParseSquare(fields[1])
	return
}

// Format writes p the way ParseSquare reads it.
func Format(p game.Position) string {
	return string(rune('a'+p.Row)) + strconv.Itoa(p.Col)
}

// FormatMove writes m the way ParseMove reads it.
func FormatMove(m game.Move) string {
	return Format(m.From) + " " + Format(m.To)
}
