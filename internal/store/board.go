package store

import (
	"sync"

	"github.com/rocketscienceinc/wizardgames-client/internal/apperror"
	"github.com/rocketscienceinc/wizardgames-client/internal/entity"
)

// BoardSnapshot is a value copy of the hexapawn store. Mutating a snapshot
// never affects the store.
type BoardSnapshot struct {
	Board      entity.Board
	Phase      string
	Outcome    string
	Selection  *entity.Position
	Candidates []entity.Position
	Message    string
}

// BoardStore holds the last server-confirmed hexapawn state plus the purely
// local selection. Committed fields only change through ApplyDelta, ApplySync
// and ApplyReset, each of which replaces them in one step under the lock.
type BoardStore struct {
	mu sync.Mutex

	board      entity.Board
	phase      string
	outcome    string
	selection  *entity.Position
	candidates []entity.Position
	message    string
}

func NewBoardStore() *BoardStore {
	return &BoardStore{
		board: entity.NewBoard(),
		phase: entity.PhaseIdle,
	}
}

func (that *BoardStore) Snapshot() BoardSnapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	snapshot := BoardSnapshot{
		Board:   that.board,
		Phase:   that.phase,
		Outcome: that.outcome,
		Message: that.message,
	}

	if that.selection != nil {
		selection := *that.selection
		snapshot.Selection = &selection
	}

	if len(that.candidates) > 0 {
		snapshot.Candidates = append([]entity.Position(nil), that.candidates...)
	}

	return snapshot
}

// SetSelection records the selected pawn and its candidate destinations.
// Only the idle and selected phases accept a selection.
func (that *BoardStore) SetSelection(pos entity.Position, candidates []entity.Position) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch that.phase {
	case entity.PhaseSubmitting:
		return apperror.ErrMoveInFlight
	case entity.PhaseTerminal:
		return apperror.ErrMatchFinished
	}

	selection := pos
	that.selection = &selection
	that.candidates = append([]entity.Position(nil), candidates...)
	that.phase = entity.PhaseSelected

	return nil
}

// ClearSelection drops the selection and candidate set, returning to idle.
// Clearing an already-clear store is a no-op.
func (that *BoardStore) ClearSelection() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch that.phase {
	case entity.PhaseSubmitting:
		return apperror.ErrMoveInFlight
	case entity.PhaseTerminal:
		return apperror.ErrMatchFinished
	}

	that.selection = nil
	that.candidates = nil
	that.phase = entity.PhaseIdle

	return nil
}

// BeginSubmit is the single-in-flight guard: an atomic check-and-set that
// enters the submitting phase. It fails while another move is in flight or
// after the match has ended, and it clears the selection because the
// committed from/to pair now lives in the request.
func (that *BoardStore) BeginSubmit() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch that.phase {
	case entity.PhaseSubmitting:
		return apperror.ErrMoveInFlight
	case entity.PhaseTerminal:
		return apperror.ErrMatchFinished
	}

	that.selection = nil
	that.candidates = nil
	that.phase = entity.PhaseSubmitting

	return nil
}

// ApplyDelta replaces the committed state with a server-confirmed delta and
// releases the guard. It is only legal while a move is in flight.
func (that *BoardStore) ApplyDelta(board entity.Board, outcome string, gameOver bool, message string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.phase != entity.PhaseSubmitting {
		return apperror.ErrNotSubmitting
	}

	that.board = board
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

// FailSubmit rolls the phase back to idle after a fault, leaving the
// committed board untouched. Every exit of the submitting phase goes through
// either this or ApplyDelta, so the guard can never stick.
func (that *BoardStore) FailSubmit(message string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.phase != entity.PhaseSubmitting {
		return apperror.ErrNotSubmitting
	}

	that.message = message
	that.phase = entity.PhaseIdle

	return nil
}

// ApplySync overwrites the committed state with a fetched server snapshot,
// dropping any local selection. Rejected while a move is in flight.
func (that *BoardStore) ApplySync(board entity.Board, outcome string, gameOver bool) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.phase == entity.PhaseSubmitting {
		return apperror.ErrMoveInFlight
	}

	that.board = board
	that.selection = nil
	that.candidates = nil

	if gameOver {
		that.outcome = outcome
		that.phase = entity.PhaseTerminal
	} else {
		that.outcome = entity.OutcomeNone
		that.phase = entity.PhaseIdle
	}

	return nil
}

// ApplyReset reinitializes every field from a server-confirmed initial
// state. Rejected while a move is in flight.
func (that *BoardStore) ApplyReset(board entity.Board, message string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.phase == entity.PhaseSubmitting {
		return apperror.ErrMoveInFlight
	}

	that.board = board
	that.phase = entity.PhaseIdle
	that.outcome = entity.OutcomeNone
	that.selection = nil
	that.candidates = nil
	that.message = message

	return nil
}
