// Package console draws boards as text and reads moves typed by a player.
//
// Rows are lettered from A at the top and columns numbered from 0, so "c1"
// is row 2, column 1.
package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minmaxcheckers/game"
)

const (
	blackPiece = "◆"
	whitePiece = "◇"
	emptyCell  = " "
)

// Render writes b to w as a box drawing.
func Render(w io.Writer, b *game.Board) error {
	_, err := io.WriteString(w, String(b))
	return err
}

// String returns the box drawing of b.
func String(b *game.Board) string {
	cells := make([][]string, b.Height)
	for r := range cells {
		cells[r] = make([]string, b.Width)
		for c := range cells[r] {
			cells[r][c] = emptyCell
		}
	}
	for _, p := range b.Black {
		if b.InBounds(p) {
			cells[p.Row][p.Col] = blackPiece
		}
	}
	for _, p := range b.White {
		if b.InBounds(p) {
			cells[p.Row][p.Col] = whitePiece
		}
	}

	var sb strings.Builder
	cols := make([]string, b.Width)
	for c := range cols {
		cols[c] = strconv.Itoa(c)
	}
	fmt.Fprintf(&sb, "    %s\n", strings.Join(cols, "   "))
	fmt.Fprintf(&sb, "  ╭%s───╮\n", strings.Repeat("───┬", b.Width-1))
	for r, row := range cells {
		fmt.Fprintf(&sb, "%c │ %s │\n", 'A'+r, strings.Join(row, " │ "))
		if r < len(cells)-1 {
			fmt.Fprintf(&sb, "  ├%s───┤\n", strings.Repeat("───┼", b.Width-1))
		}
	}
	fmt.Fprintf(&sb, "  ╰%s───╯\n", strings.Repeat("───┴", b.Width-1))
	return sb.String()
}
