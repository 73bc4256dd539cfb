package flavor

import "math/rand"

// Categories of moments Hans comments on. Purely cosmetic: no line carries
// any game-state meaning.
const (
	PlayerWin   = "player-win"
	OpponentWin = "opponent-win"
	Draw        = "draw"
	Thinking    = "thinking"
	Greeting    = "greeting"
)

var lines = map[string][]string{
	PlayerWin: {
		"Hans looks shocked. 'Impossible! My divination has never failed before...'",
		"Hans stares at the board in disbelief. 'The threads of fate... tangled?'",
	},
	OpponentWin: {
		"'The threads of fate always reveal their pattern to those who know how to look,' Hans says triumphantly.",
		"'As I foresaw,' Hans says, sweeping the pieces aside.",
	},
	Draw: {
		"'A stalemate... reality itself seems distorted,' Hans whispers.",
	},
	Thinking: {
		"Hans gazes into the middle distance...",
		"Hans traces a slow circle above the board...",
		"Hans mutters something about the threads of fate...",
	},
	Greeting: {
		"Hans shuffles his cards and nods at the board. 'You go first.'",
		"'Let us see what the threads have in store for you,' Hans says.",
	},
}

// Line returns one arbitrarily chosen wizard line for the category, or an
// empty string for an unknown category.
func Line(category string) string {
	options := lines[category]
	if len(options) == 0 {
		return ""
	}

	return options[rand.Intn(len(options))] //nolint: gosec // it's ok
}

// ForOutcome maps a terminal match outcome to its flavor category.
func ForOutcome(outcome string) string {
	switch outcome {
	case "player":
		return PlayerWin
	case "ai":
		return OpponentWin
	case "draw":
		return Draw
	default:
		return ""
	}
}
