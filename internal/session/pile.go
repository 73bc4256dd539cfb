package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/wizardgames-client/internal/apperror"
	"github.com/rocketscienceinc/wizardgames-client/internal/arbiter"
	"github.com/rocketscienceinc/wizardgames-client/internal/entity"
	"github.com/rocketscienceinc/wizardgames-client/internal/nim"
	"github.com/rocketscienceinc/wizardgames-client/internal/store"
)

type pileArbiter interface {
	SubmitTake(ctx context.Context, amount int) (*arbiter.PileDelta, error)
	ResetMatch(ctx context.Context) (*arbiter.PileDelta, error)
}

// PileUpdate is what a counting game action produces. TakenByOpponent is the
// arbiter's reply move for the UI to reveal, zero when it did not take.
type PileUpdate struct {
	store.PileSnapshot

	StatusMessage   string
	TakenByOpponent int
}

// PileSession is the counting game turn orchestrator: the board machine with
// the selection phase collapsed away.
type PileSession struct {
	logger *slog.Logger
	store  *store.PileStore
	client pileArbiter
}

func NewPileSession(logger *slog.Logger, client pileArbiter) *PileSession {
	return &PileSession{
		logger: logger.With("component", "nim-session"),
		store:  store.NewPileStore(),
		client: client,
	}
}

func (that *PileSession) Snapshot() store.PileSnapshot {
	return that.store.Snapshot()
}

// Take submits taking amount stones. The amount is validated against the
// local candidate set first; an illegal amount is a no-op with a status
// message, never a request.
func (that *PileSession) Take(ctx context.Context, amount int) (PileUpdate, error) {
	snap := that.store.Snapshot()

	switch snap.Phase {
	case entity.PhaseSubmitting:
		return PileUpdate{PileSnapshot: snap, StatusMessage: msgStillDeciding}, apperror.ErrMoveInFlight
	case entity.PhaseTerminal:
		return PileUpdate{PileSnapshot: snap, StatusMessage: msgMatchOver}, apperror.ErrMatchFinished
	}

	if !nim.IsLegalTake(snap.Remaining, amount) {
		message := fmt.Sprintf("Take between %d and %d stones (%d left).", entity.MinTake, entity.MaxTake, snap.Remaining)
		return PileUpdate{PileSnapshot: snap, StatusMessage: message}, apperror.ErrInvalidTake
	}

	if err := that.store.BeginSubmit(); err != nil {
		return PileUpdate{PileSnapshot: that.store.Snapshot(), StatusMessage: msgStillDeciding}, err
	}

	that.logger.Debug("submitting take", "amount", amount)

	delta, err := that.client.SubmitTake(ctx, amount)
	if err != nil {
		message := faultMessage(err)
		that.logger.Debug("take rejected", "error", err)

		if failErr := that.store.FailSubmit(message); failErr != nil {
			that.logger.Error("failed to release submit guard", "error", failErr)
		}

		return PileUpdate{PileSnapshot: that.store.Snapshot(), StatusMessage: message}, err
	}

	if err = that.store.ApplyDelta(delta.Remaining, delta.Outcome, delta.GameOver, delta.Message); err != nil {
		that.logger.Error("failed to apply delta", "error", err)
		return PileUpdate{PileSnapshot: that.store.Snapshot(), StatusMessage: msgTryAgain}, err
	}

	return PileUpdate{
		PileSnapshot:    that.store.Snapshot(),
		StatusMessage:   delta.Message,
		TakenByOpponent: delta.TakenByOpponent,
	}, nil
}

// Reset asks the arbiter for a fresh pile and reinitializes the store from
// its answer. A failed reset leaves the current state untouched. Rejected
// while a move is in flight.
func (that *PileSession) Reset(ctx context.Context) (PileUpdate, error) {
	snap := that.store.Snapshot()
	if snap.Phase == entity.PhaseSubmitting {
		return PileUpdate{PileSnapshot: snap, StatusMessage: msgStillDeciding}, apperror.ErrMoveInFlight
	}

	delta, err := that.client.ResetMatch(ctx)
	if err != nil {
		that.logger.Debug("reset failed", "error", err)
		return PileUpdate{PileSnapshot: that.store.Snapshot(), StatusMessage: faultMessage(err)}, err
	}

	if err = that.store.ApplyReset(delta.Remaining, delta.Message); err != nil {
		return PileUpdate{PileSnapshot: that.store.Snapshot(), StatusMessage: msgStillDeciding}, err
	}

	return PileUpdate{PileSnapshot: that.store.Snapshot(), StatusMessage: delta.Message}, nil
}
