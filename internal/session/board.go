package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/wizardgames-client/internal/apperror"
	"github.com/rocketscienceinc/wizardgames-client/internal/arbiter"
	"github.com/rocketscienceinc/wizardgames-client/internal/entity"
	"github.com/rocketscienceinc/wizardgames-client/internal/hexpawn"
	"github.com/rocketscienceinc/wizardgames-client/internal/store"
)

// Status messages surfaced when an action is refused or a request fails.
const (
	msgStillDeciding = "Hans is still pondering your last move. Hold on."
	msgMatchOver     = "The match is over. Reset the board to play again."
	msgPickYourPawn  = "Pick one of your own pawns."
	msgPawnIsStuck   = "That pawn has nowhere to go."
	msgTryAgain      = "Could not reach Hans. Try again."
)

type boardArbiter interface {
	SubmitMove(ctx context.Context, move entity.Move) (*arbiter.BoardDelta, error)
	ResetMatch(ctx context.Context) (*arbiter.BoardDelta, error)
	FetchState(ctx context.Context) (*arbiter.BoardDelta, error)
}

// BoardUpdate is what a user action produces: the resulting snapshot, the
// status message for the action itself, and the arbiter's countermove when
// one arrived (for the UI to reveal).
type BoardUpdate struct {
	store.BoardSnapshot

	StatusMessage string
	OpponentMove  *entity.Move
}

// BoardSession is the hexapawn turn orchestrator. It owns the selection, the
// turn phase transitions and the single-in-flight guard. Faults never
// propagate past it: every remote failure rolls the phase back to idle and
// becomes a status message.
type BoardSession struct {
	logger *slog.Logger
	store  *store.BoardStore
	client boardArbiter
}

func NewBoardSession(logger *slog.Logger, client boardArbiter) *BoardSession {
	return &BoardSession{
		logger: logger.With("component", "hexpawn-session"),
		store:  store.NewBoardStore(),
		client: client,
	}
}

func (that *BoardSession) Snapshot() store.BoardSnapshot {
	return that.store.Snapshot()
}

// Select is the single user-interaction entry point of the board game. One
// tap on a square either selects a pawn, deselects or reselects, abandons
// the selection, or commits the move when the square is a candidate
// destination. Guard violations are no-ops carrying a status message.
func (that *BoardSession) Select(ctx context.Context, pos entity.Position) (BoardUpdate, error) {
	snap := that.store.Snapshot()

	switch snap.Phase {
	case entity.PhaseSubmitting:
		return BoardUpdate{BoardSnapshot: snap, StatusMessage: msgStillDeciding}, apperror.ErrMoveInFlight
	case entity.PhaseTerminal:
		return BoardUpdate{BoardSnapshot: snap, StatusMessage: msgMatchOver}, apperror.ErrMatchFinished
	}

	if !pos.InBounds() {
		return that.abandon(snap)
	}

	if snap.Selection == nil {
		return that.selectPawn(snap, pos)
	}

	selection := *snap.Selection
	switch {
	case pos == selection:
		// tapping the selected pawn again deselects it
		return that.abandon(snap)
	case containsPosition(snap.Candidates, pos):
		return that.submit(ctx, entity.Move{From: selection, To: pos})
	case snap.Board.At(pos) == entity.CellPlayer:
		return that.selectPawn(snap, pos)
	default:
		return that.abandon(snap)
	}
}

// Reset asks the arbiter for a fresh match and reinitializes the store from
// its answer. A failed reset leaves the current state untouched. Rejected
// while a move is in flight.
func (that *BoardSession) Reset(ctx context.Context) (BoardUpdate, error) {
	snap := that.store.Snapshot()
	if snap.Phase == entity.PhaseSubmitting {
		return BoardUpdate{BoardSnapshot: snap, StatusMessage: msgStillDeciding}, apperror.ErrMoveInFlight
	}

	delta, err := that.client.ResetMatch(ctx)
	if err != nil {
		that.logger.Debug("reset failed", "error", err)
		return BoardUpdate{BoardSnapshot: that.store.Snapshot(), StatusMessage: faultMessage(err)}, err
	}

	if err = that.store.ApplyReset(delta.Board, delta.Message); err != nil {
		return BoardUpdate{BoardSnapshot: that.store.Snapshot(), StatusMessage: msgStillDeciding}, err
	}

	return that.update(delta.Message, nil), nil
}

// Sync overwrites the local mirror with the arbiter's current view of the
// match. Rejected while a move is in flight.
func (that *BoardSession) Sync(ctx context.Context) (BoardUpdate, error) {
	snap := that.store.Snapshot()
	if snap.Phase == entity.PhaseSubmitting {
		return BoardUpdate{BoardSnapshot: snap, StatusMessage: msgStillDeciding}, apperror.ErrMoveInFlight
	}

	delta, err := that.client.FetchState(ctx)
	if err != nil {
		that.logger.Debug("sync failed", "error", err)
		return BoardUpdate{BoardSnapshot: that.store.Snapshot(), StatusMessage: faultMessage(err)}, err
	}

	if err = that.store.ApplySync(delta.Board, delta.Outcome, delta.GameOver); err != nil {
		return BoardUpdate{BoardSnapshot: that.store.Snapshot(), StatusMessage: msgStillDeciding}, err
	}

	return that.update("", nil), nil
}

func (that *BoardSession) selectPawn(snap store.BoardSnapshot, pos entity.Position) (BoardUpdate, error) {
	if snap.Board.At(pos) != entity.CellPlayer {
		// illegal selection: recovered silently, state untouched
		return BoardUpdate{BoardSnapshot: snap, StatusMessage: msgPickYourPawn}, nil
	}

	candidates := hexpawn.CandidatesFrom(snap.Board, pos)

	if err := that.store.SetSelection(pos, candidates); err != nil {
		return BoardUpdate{BoardSnapshot: that.store.Snapshot(), StatusMessage: msgStillDeciding}, err
	}

	message := ""
	if len(candidates) == 0 {
		message = msgPawnIsStuck
	}

	return that.update(message, nil), nil
}

func (that *BoardSession) abandon(snap store.BoardSnapshot) (BoardUpdate, error) {
	if snap.Selection == nil {
		// deselecting an unselected board is a no-op
		return BoardUpdate{BoardSnapshot: snap}, nil
	}

	if err := that.store.ClearSelection(); err != nil {
		return BoardUpdate{BoardSnapshot: that.store.Snapshot(), StatusMessage: msgStillDeciding}, err
	}

	return that.update("", nil), nil
}

func (that *BoardSession) submit(ctx context.Context, move entity.Move) (BoardUpdate, error) {
	if err := that.store.BeginSubmit(); err != nil {
		return BoardUpdate{BoardSnapshot: that.store.Snapshot(), StatusMessage: msgStillDeciding}, err
	}

	that.logger.Debug("submitting move",
		"from_row", move.From.Row, "from_col", move.From.Col,
		"to_row", move.To.Row, "to_col", move.To.Col,
	)

	delta, err := that.client.SubmitMove(ctx, move)
	if err != nil {
		message := faultMessage(err)
		that.logger.Debug("move rejected", "error", err)

		if failErr := that.store.FailSubmit(message); failErr != nil {
			that.logger.Error("failed to release submit guard", "error", failErr)
		}

		return BoardUpdate{BoardSnapshot: that.store.Snapshot(), StatusMessage: message}, err
	}

	if err = that.store.ApplyDelta(delta.Board, delta.Outcome, delta.GameOver, delta.Message); err != nil {
		that.logger.Error("failed to apply delta", "error", err)
		return BoardUpdate{BoardSnapshot: that.store.Snapshot(), StatusMessage: msgTryAgain}, err
	}

	return that.update(delta.Message, delta.OpponentMove), nil
}

func (that *BoardSession) update(message string, opponentMove *entity.Move) BoardUpdate {
	return BoardUpdate{
		BoardSnapshot: that.store.Snapshot(),
		StatusMessage: message,
		OpponentMove:  opponentMove,
	}
}

// faultMessage maps a sync client error to the user-visible status line:
// rejections show the arbiter's message verbatim, transport failures show a
// generic retry hint.
func faultMessage(err error) string {
	var fault *arbiter.Fault
	if errors.As(err, &fault) && fault.Kind == arbiter.FaultRejected {
		return fault.Message
	}
	return msgTryAgain
}

func containsPosition(candidates []entity.Position, pos entity.Position) bool {
	for _, candidate := range candidates {
		if candidate == pos {
			return true
		}
	}
	return false
}
