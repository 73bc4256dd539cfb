package cli

import (
	"strings"
	"testing"

	"github.com/rocketscienceinc/wizardgames-client/internal/entity"
	"github.com/rocketscienceinc/wizardgames-client/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestRenderBoard(t *testing.T) {
	t.Run("Initial board", func(t *testing.T) {
		// Given: a snapshot of the initial board
		snap := store.BoardSnapshot{Board: entity.NewBoard()}

		// When: rendering it
		var buf strings.Builder
		renderBoard(&buf, snap)

		// Then: opponent pawns on top, player pawns at the bottom
		output := buf.String()
		assert.Contains(t, output, "0   B   B   B")
		assert.Contains(t, output, "1   .   .   .")
		assert.Contains(t, output, "2   W   W   W")
	})

	t.Run("Selection and candidates are marked", func(t *testing.T) {
		// Given: a snapshot with the center pawn selected
		selection := entity.Position{Row: 2, Col: 1}
		snap := store.BoardSnapshot{
			Board:      entity.NewBoard(),
			Selection:  &selection,
			Candidates: []entity.Position{{Row: 1, Col: 1}},
		}

		// When: rendering it
		var buf strings.Builder
		renderBoard(&buf, snap)

		// Then: the selected pawn is bracketed and the candidate starred
		output := buf.String()
		assert.Contains(t, output, "[W]")
		assert.Contains(t, output, "*.*")
	})
}

func TestRenderPile(t *testing.T) {
	t.Run("Counts the stones", func(t *testing.T) {
		// When: rendering a pile of nine stones
		var buf strings.Builder
		renderPile(&buf, 9)

		// Then: a full row of seven, a short row of two, and the count
		output := buf.String()
		assert.Contains(t, output, "o o o o o o o")
		assert.Contains(t, output, "9 stones left")
	})

	t.Run("Empty pile", func(t *testing.T) {
		var buf strings.Builder
		renderPile(&buf, 0)

		assert.Contains(t, buf.String(), "The pile is empty.")
	})
}
