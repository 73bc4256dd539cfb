package apperror

import "errors"

var (
	ErrMoveInFlight  = errors.New("a move is already in flight")
	ErrMatchFinished = errors.New("match is already finished")
	ErrInvalidTake   = errors.New("invalid number of stones")
	ErrNotSubmitting = errors.New("no move is in flight")
)
