package store

import (
	"sync"

	"github.com/rocketscienceinc/wizardgames-client/internal/apperror"
	"github.com/rocketscienceinc/wizardgames-client/internal/entity"
)

// PileSnapshot is a value copy of the counting game store.
type PileSnapshot struct {
	Remaining int
	Phase     string
	Outcome   string
	Message   string
}

// PileStore holds the last server-confirmed stone count. Same contract as
// BoardStore with the selection collapsed away.
type PileStore struct {
	mu sync.Mutex

	remaining int
	phase     string
	outcome   string
	message   string
}

func NewPileStore() *PileStore {
	return &PileStore{
		remaining: entity.InitialStones,
		phase:     entity.PhaseIdle,
	}
}

func (that *PileStore) Snapshot() PileSnapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return PileSnapshot{
		Remaining: that.remaining,
		Phase:     that.phase,
		Outcome:   that.outcome,
		Message:   that.message,
	}
}

// BeginSubmit is the single-in-flight guard for the counting game.
func (that *PileStore) BeginSubmit() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch that.phase {
	case entity.PhaseSubmitting:
		return apperror.ErrMoveInFlight
	case entity.PhaseTerminal:
		return apperror.ErrMatchFinished
	}

	that.phase = entity.PhaseSubmitting

	return nil
}

// ApplyDelta replaces the committed count with a server-confirmed delta and
// releases the guard.
func (that *PileStore) ApplyDelta(remaining int, outcome string, gameOver bool, message string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.phase != entity.PhaseSubmitting {
		return apperror.ErrNotSubmitting
	}

	that.remaining = remaining
	that.message = message

	if gameOver {
		that.outcome = outcome
		that.phase = entity.PhaseTerminal
	} else {
		that.outcome = entity.OutcomeNone
		that.phase = entity.PhaseIdle
	}

	return nil
}

// FailSubmit rolls the phase back to idle after a fault; the committed count
// stays as it was.
func (that *PileStore) FailSubmit(message string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.phase != entity.PhaseSubmitting {
		return apperror.ErrNotSubmitting
	}

	that.message = message
	that.phase = entity.PhaseIdle

	return nil
}

// ApplyReset reinitializes every field from a server-confirmed initial
// state. Rejected while a move is in flight.
func (that *PileStore) ApplyReset(remaining int, message string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.phase == entity.PhaseSubmitting {
		return apperror.ErrMoveInFlight
	}

	that.remaining = remaining
	that.phase = entity.PhaseIdle
	that.outcome = entity.OutcomeNone
	that.message = message

	return nil
}
