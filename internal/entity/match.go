package entity

// Turn phases of a match as seen by the client. Submitting means a move is
// in flight to the arbiter; Terminal is absorbing until a reset.
const (
	PhaseIdle       = "idle"
	PhaseSelected   = "selected"
	PhaseSubmitting = "submitting"
	PhaseTerminal   = "terminal"
)

// Match outcomes use the arbiter's wire values.
const (
	OutcomeNone        = ""
	OutcomePlayerWin   = "player"
	OutcomeOpponentWin = "ai"
	OutcomeDraw        = "draw"
)

// Counting game constants: the pile starts at 21 stones and a turn takes
// between one and three of them.
const (
	InitialStones = 21
	MinTake       = 1
	MaxTake       = 3
)
