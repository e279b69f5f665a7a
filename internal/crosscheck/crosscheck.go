// Package crosscheck compares the hand ordering of the poker package
// with the table-driven evaluator in github.com/paulhankin/poker.
//
// The poker package keeps only the payload its categories define, so a
// one-pair hand carries no kickers and two hands can tie where the
// reference evaluator sees a winner. The check therefore only requires
// that every strict decision of ours points the same way as the
// reference; ties on our side are always accepted.
package crosscheck

import (
	"fmt"

	"github.com/paulhankin/poker"

	"github.com/arcanaland/croupier/internal/card"
	"github.com/arcanaland/croupier/internal/deck"
	ours "github.com/arcanaland/croupier/internal/poker"
)

// Mismatch records a pair of hands the two evaluators order differently
type Mismatch struct {
	A, B           card.Hand
	RankA, RankB   ours.HandRank
	ScoreA, ScoreB int16
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s (%s, ref %d) vs %s (%s, ref %d)",
		m.A, m.RankA, m.ScoreA, m.B, m.RankB, m.ScoreB)
}

// Report summarises a check run
type Report struct {
	Pairs      int
	Ties       int
	Mismatches []Mismatch
}

// Ok reports whether no pair was ordered differently
func (r Report) Ok() bool {
	return len(r.Mismatches) == 0
}

// toReference converts a card to the reference representation, where
// suits run club, diamond, heart, spade and the ace has rank 1.
func toReference(c card.Card) (poker.Card, error) {
	var (
		suit poker.Suit
		zero poker.Card
	)
	switch c.Suit {
	case card.Clubs:
		suit = poker.Club
	case card.Diamonds:
		suit = poker.Diamond
	case card.Hearts:
		suit = poker.Heart
	case card.Spades:
		suit = poker.Spade
	default:
		return zero, fmt.Errorf("%w: %d", card.ErrInvalidSuit, c.Suit)
	}

	rank := c.Rank.Value()
	if c.Rank == card.Ace {
		rank = 1
	}
	return poker.MakeCard(suit, poker.Rank(rank))
}

// Score evaluates a hand with the reference evaluator. Higher is better.
func Score(h card.Hand) (int16, error) {
	if len(h) != ours.HandSize {
		return 0, fmt.Errorf("%w: got %d", ours.ErrHandSize, len(h))
	}
	var ref [5]poker.Card
	for i, c := range h {
		rc, err := toReference(c)
		if err != nil {
			return 0, err
		}
		ref[i] = rc
	}
	return poker.Eval5(&ref), nil
}

// ComparePair checks one pair of hands. The mismatch is nil when the
// orders agree; tie is set when our evaluator ranks the hands equal.
func ComparePair(a, b card.Hand) (m *Mismatch, tie bool, err error) {
	rankA, err := ours.Evaluate(a)
	if err != nil {
		return nil, false, err
	}
	rankB, err := ours.Evaluate(b)
	if err != nil {
		return nil, false, err
	}
	scoreA, err := Score(a)
	if err != nil {
		return nil, false, err
	}
	scoreB, err := Score(b)
	if err != nil {
		return nil, false, err
	}

	got := ours.Compare(rankA, rankB)
	if got == 0 {
		return nil, true, nil
	}
	want := 0
	switch {
	case scoreA > scoreB:
		want = 1
	case scoreA < scoreB:
		want = -1
	}
	if got == want {
		return nil, false, nil
	}
	return &Mismatch{A: a, B: b, RankA: rankA, RankB: rankB, ScoreA: scoreA, ScoreB: scoreB}, false, nil
}

// Run deals pairs of hands from fresh decks shuffled by s and compares
// the two evaluators on each pair.
func Run(s deck.Shuffler, pairs int) (Report, error) {
	var report Report
	for i := 0; i < pairs; i++ {
		hands, err := deck.Deal(deck.New(), s, ours.HandSize, 2)
		if err != nil {
			return report, err
		}
		m, tie, err := ComparePair(hands[0], hands[1])
		if err != nil {
			return report, fmt.Errorf("pair %d: %w", i+1, err)
		}
		report.Pairs++
		if tie {
			report.Ties++
		}
		if m != nil {
			report.Mismatches = append(report.Mismatches, *m)
		}
	}
	return report, nil
}
