package store

import (
	"testing"

	"github.com/rocketscienceinc/wizardgames-client/internal/apperror"
	"github.com/rocketscienceinc/wizardgames-client/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPileStore(t *testing.T) {
	// Given: a fresh store
	pileStore := NewPileStore()

	// Then: it holds the initial 21 stones, idle
	snap := pileStore.Snapshot()
	assert.Equal(t, entity.InitialStones, snap.Remaining)
	assert.Equal(t, entity.PhaseIdle, snap.Phase)
	assert.Equal(t, entity.OutcomeNone, snap.Outcome)
}

func TestPileStore_BeginSubmit(t *testing.T) {
	t.Run("Second submit is rejected while in flight", func(t *testing.T) {
		// Given: a store already submitting
		pileStore := NewPileStore()
		require.NoError(t, pileStore.BeginSubmit())

		// When: trying to submit again
		err := pileStore.BeginSubmit()

		// Then: ErrMoveInFlight is returned
		require.ErrorIs(t, err, apperror.ErrMoveInFlight)
	})

	t.Run("Submit after the match ended is rejected", func(t *testing.T) {
		// Given: a terminal store
		pileStore := NewPileStore()
		require.NoError(t, pileStore.BeginSubmit())
		require.NoError(t, pileStore.ApplyDelta(0, entity.OutcomePlayerWin, true, "you win"))

		// When: trying to submit again
		err := pileStore.BeginSubmit()

		// Then: ErrMatchFinished is returned and the count is untouched
		require.ErrorIs(t, err, apperror.ErrMatchFinished)
		assert.Equal(t, 0, pileStore.Snapshot().Remaining)
	})
}

func TestPileStore_ApplyDelta(t *testing.T) {
	t.Run("Ongoing delta replaces the count and releases the guard", func(t *testing.T) {
		// Given: a store with a move in flight
		pileStore := NewPileStore()
		require.NoError(t, pileStore.BeginSubmit())

		// When: applying a non-terminal delta
		err := pileStore.ApplyDelta(17, entity.OutcomeNone, false, "Hans takes 2.")

		// Then: the committed count matches the delta and the phase is idle
		require.NoError(t, err)
		snap := pileStore.Snapshot()
		assert.Equal(t, 17, snap.Remaining)
		assert.Equal(t, entity.PhaseIdle, snap.Phase)
		assert.Equal(t, "Hans takes 2.", snap.Message)
	})

	t.Run("Terminal delta absorbs", func(t *testing.T) {
		// Given: a store with a move in flight
		pileStore := NewPileStore()
		require.NoError(t, pileStore.BeginSubmit())

		// When: applying a terminal delta
		err := pileStore.ApplyDelta(0, entity.OutcomeOpponentWin, true, "Hans wins")

		// Then: the phase is terminal and the outcome is set
		require.NoError(t, err)
		snap := pileStore.Snapshot()
		assert.Equal(t, entity.PhaseTerminal, snap.Phase)
		assert.Equal(t, entity.OutcomeOpponentWin, snap.Outcome)
	})

	t.Run("ApplyDelta without a move in flight is rejected", func(t *testing.T) {
		// Given: an idle store
		pileStore := NewPileStore()

		// When: applying a delta
		err := pileStore.ApplyDelta(20, entity.OutcomeNone, false, "")

		// Then: ErrNotSubmitting is returned
		require.ErrorIs(t, err, apperror.ErrNotSubmitting)
	})
}

func TestPileStore_FailSubmit(t *testing.T) {
	// Given: a store with a move in flight
	pileStore := NewPileStore()
	require.NoError(t, pileStore.BeginSubmit())

	// When: the request fails
	err := pileStore.FailSubmit("not your turn")

	// Then: the phase rolls back to idle with the count untouched
	require.NoError(t, err)
	snap := pileStore.Snapshot()
	assert.Equal(t, entity.PhaseIdle, snap.Phase)
	assert.Equal(t, entity.InitialStones, snap.Remaining)

	// Then: the guard is released again
	require.NoError(t, pileStore.BeginSubmit())
}

func TestPileStore_ApplyReset(t *testing.T) {
	t.Run("Reset reinitializes every field", func(t *testing.T) {
		// Given: a terminal store
		pileStore := NewPileStore()
		require.NoError(t, pileStore.BeginSubmit())
		require.NoError(t, pileStore.ApplyDelta(0, entity.OutcomePlayerWin, true, "you win"))

		// When: applying a server-confirmed reset
		err := pileStore.ApplyReset(entity.InitialStones, "Game reset. You go first!")

		// Then: the store matches the initial configuration
		require.NoError(t, err)
		snap := pileStore.Snapshot()
		assert.Equal(t, entity.InitialStones, snap.Remaining)
		assert.Equal(t, entity.PhaseIdle, snap.Phase)
		assert.Equal(t, entity.OutcomeNone, snap.Outcome)
	})

	t.Run("Reset is rejected while a move is in flight", func(t *testing.T) {
		// Given: a store with a move in flight
		pileStore := NewPileStore()
		require.NoError(t, pileStore.BeginSubmit())

		// When: trying to reset
		err := pileStore.ApplyReset(entity.InitialStones, "")

		// Then: ErrMoveInFlight is returned
		require.ErrorIs(t, err, apperror.ErrMoveInFlight)
	})
}
