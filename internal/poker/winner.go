package poker

import (
	"errors"
	"fmt"

	"github.com/arcanaland/croupier/internal/card"
)

// ErrEmptyInput is returned when there are no hands to rank
var ErrEmptyInput = errors.New("no hands to rank")

// EvaluateAll classifies every hand, keeping the input order
func EvaluateAll(hands []card.Hand) ([]HandRank, error) {
	ranks := make([]HandRank, len(hands))
	for i, h := range hands {
		r, err := Evaluate(h)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		ranks[i] = r
	}
	return ranks, nil
}

// Winner returns the index of the strongest hand. When several hands tie
// for the best rank the lowest index wins; ties are not reported.
func Winner(hands []card.Hand) (int, error) {
	if len(hands) == 0 {
		return 0, ErrEmptyInput
	}

	ranks, err := EvaluateAll(hands)
	if err != nil {
		return 0, err
	}
	return Best(ranks)
}

// Best returns the index of the strongest rank, lowest index on ties
func Best(ranks []HandRank) (int, error) {
	if len(ranks) == 0 {
		return 0, ErrEmptyInput
	}

	best := 0
	for i := 1; i < len(ranks); i++ {
		if ranks[i].Beats(ranks[best]) {
			best = i
		}
	}
	return best, nil
}
