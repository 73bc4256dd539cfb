package nim

import "github.com/rocketscienceinc/wizardgames-client/internal/entity"

// TakeOptions returns every take amount legal for the given pile, in
// ascending order. An exhausted pile has no options: the match is already
// decided.
func TakeOptions(remaining int) []int {
	var options []int

	for amount := entity.MinTake; amount <= entity.MaxTake && amount <= remaining; amount++ {
		options = append(options, amount)
	}

	return options
}

// IsLegalTake reports whether taking amount stones is legal for the given
// pile.
func IsLegalTake(remaining, amount int) bool {
	return amount >= entity.MinTake && amount <= entity.MaxTake && amount <= remaining
}
