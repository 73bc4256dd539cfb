package hexpawn

import "github.com/rocketscienceinc/wizardgames-client/internal/entity"

// CandidatesFrom returns the ordered legal destinations for the player pawn
// at from: the forward square first, then the left and right diagonal
// captures. A pawn moves one row toward the far side; it may only enter an
// empty square straight ahead or capture an opponent pawn diagonally.
func CandidatesFrom(board entity.Board, from entity.Position) []entity.Position {
	if !from.InBounds() || board.At(from) != entity.CellPlayer {
		return nil
	}

	var candidates []entity.Position

	forward := entity.Position{Row: from.Row - 1, Col: from.Col}
	if forward.InBounds() && board.At(forward) == entity.CellEmpty {
		candidates = append(candidates, forward)
	}

	for _, dc := range []int{-1, 1} {
		diagonal := entity.Position{Row: from.Row - 1, Col: from.Col + dc}
		if diagonal.InBounds() && board.At(diagonal) == entity.CellOpponent {
			candidates = append(candidates, diagonal)
		}
	}

	return candidates
}

// PlayerMoves enumerates every legal move for the player side, scanning the
// board row by row.
func PlayerMoves(board entity.Board) []entity.Move {
	var moves []entity.Move

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			from := entity.Position{Row: row, Col: col}
			if board.At(from) != entity.CellPlayer {
				continue
			}

			for _, to := range CandidatesFrom(board, from) {
				moves = append(moves, entity.Move{From: from, To: to})
			}
		}
	}

	return moves
}

// IsLegal reports whether the move is one the candidate generator offers for
// its origin square. This is the client's optimistic view only; the arbiter
// has the final word.
func IsLegal(board entity.Board, move entity.Move) bool {
	for _, candidate := range CandidatesFrom(board, move.From) {
		if candidate == move.To {
			return true
		}
	}
	return false
}
