package entity

// Cell values match the arbiter's wire encoding for board squares.
type Cell int

const (
	CellEmpty Cell = iota
	CellPlayer
	CellOpponent
)

// BoardSize is the side length of the hexapawn board.
const BoardSize = 3

// Board is the committed 3x3 grid. Row 0 is the far side: the opponent's
// pawns start there and the player's pawns advance toward it.
type Board [BoardSize][BoardSize]Cell

// Position addresses a single board square, 0-indexed.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move is a from/to pair of squares as submitted to the arbiter.
type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// NewBoard returns the initial hexapawn configuration: three opponent pawns
// on the far row, three player pawns on the near row.
func NewBoard() Board {
	return Board{
		{CellOpponent, CellOpponent, CellOpponent},
		{CellEmpty, CellEmpty, CellEmpty},
		{CellPlayer, CellPlayer, CellPlayer},
	}
}

func (that Position) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Board) At(pos Position) Cell {
	return that[pos.Row][pos.Col]
}

// Count returns how many squares currently hold the given cell value.
func (that Board) Count(cell Cell) int {
	count := 0
	for _, row := range that {
		for _, current := range row {
			if current == cell {
				count++
			}
		}
	}
	return count
}
