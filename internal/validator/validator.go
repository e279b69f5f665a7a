package validator

import (
	"fmt"
	"strings"

	"github.com/arcanaland/croupier/internal/card"
	"github.com/arcanaland/croupier/internal/poker"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether validation found no errors
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Input   string
	Results ValidationResults

	hand      card.Hand
	positions []int // 1-based token index of each card in hand
}

func NewValidator(input string) *Validator {
	return &Validator{
		Input:   input,
		Results: ValidationResults{},
	}
}

// Validate checks that the input is a well-formed hand of five cards.
// The returned error is only set when there is nothing to validate.
func (v *Validator) Validate() (ValidationResults, error) {
	tokens := card.SplitTokens(v.Input)
	if len(tokens) == 0 {
		return v.Results, fmt.Errorf("no cards given")
	}

	v.validateTokens(tokens)
	v.validateSize(len(tokens))
	v.validateDuplicates()
	v.validateDeckLimits()

	return v.Results, nil
}

// Hand returns the cards that parsed successfully
func (v *Validator) Hand() card.Hand {
	return append(card.Hand(nil), v.hand...)
}

func (v *Validator) validateTokens(tokens []string) {
	for i, token := range tokens {
		c, err := card.ParseCard(token)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: %v", i+1, err))
			continue
		}
		v.hand = append(v.hand, c)
		v.positions = append(v.positions, i+1)
	}
}

// validateSize checks the number of tokens, parsed or not
func (v *Validator) validateSize(n int) {
	if n != poker.HandSize {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("a hand holds exactly %d cards, got %d", poker.HandSize, n))
	}
}

// validateDuplicates warns about repeated cards. They can still be
// evaluated but cannot come from a single deck.
func (v *Validator) validateDuplicates() {
	seen := map[card.Card]int{}
	for i, c := range v.hand {
		pos := v.positions[i]
		if first, ok := seen[c]; ok {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("card %s appears more than once (positions %d and %d)", c, first, pos))
			continue
		}
		seen[c] = pos
	}
}

// validateDeckLimits warns about hands no single deal could produce
func (v *Validator) validateDeckLimits() {
	counts := map[card.Rank]int{}
	for _, c := range v.hand {
		counts[c.Rank]++
	}
	var ranks []string
	for _, r := range card.Ranks {
		if counts[r] > len(card.Suits) {
			ranks = append(ranks, r.Plural())
		}
	}
	if len(ranks) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("more than %d %s in one hand", len(card.Suits), strings.Join(ranks, ", ")))
	}
}
