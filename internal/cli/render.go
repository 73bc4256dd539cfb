package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/wizardgames-client/internal/entity"
	"github.com/rocketscienceinc/wizardgames-client/internal/store"
)

// renderBoard prints the board as a read-only projection of the snapshot.
// The selected pawn is bracketed and candidate destinations are starred.
func renderBoard(w io.Writer, snap store.BoardSnapshot) {
	fmt.Fprintln(w, "    0   1   2")

	for row := 0; row < entity.BoardSize; row++ {
		cells := make([]string, 0, entity.BoardSize)

		for col := 0; col < entity.BoardSize; col++ {
			pos := entity.Position{Row: row, Col: col}
			symbol := cellSymbol(snap.Board.At(pos))

			switch {
			case snap.Selection != nil && *snap.Selection == pos:
				symbol = "[" + symbol + "]"
			case isCandidate(snap.Candidates, pos):
				symbol = "*" + symbol + "*"
			default:
				symbol = " " + symbol + " "
			}

			cells = append(cells, symbol)
		}

		fmt.Fprintf(w, "%d  %s\n", row, strings.Join(cells, " "))
	}
}

// renderPile prints the stones in rows of seven.
func renderPile(w io.Writer, remaining int) {
	if remaining <= 0 {
		fmt.Fprintln(w, "The pile is empty.")
		return
	}

	const perRow = 7
	for start := 0; start < remaining; start += perRow {
		count := perRow
		if remaining-start < perRow {
			count = remaining - start
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Repeat("o ", count), " "))
	}

	fmt.Fprintf(w, "%d stones left\n", remaining)
}

func cellSymbol(cell entity.Cell) string {
	switch cell {
	case entity.CellPlayer:
		return "W"
	case entity.CellOpponent:
		return "B"
	default:
		return "."
	}
}

func isCandidate(candidates []entity.Position, pos entity.Position) bool {
	for _, candidate := range candidates {
		if candidate == pos {
			return true
		}
	}
	return false
}
