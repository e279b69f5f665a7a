package poker

import (
	"errors"
	"fmt"
	"sort"

	"github.com/arcanaland/croupier/internal/card"
)

// HandSize is the number of cards Evaluate classifies
const HandSize = 5

// ErrHandSize is returned when a hand does not hold exactly HandSize cards
var ErrHandSize = errors.New("hand must hold exactly 5 cards")

type rankGroup struct {
	rank  card.Rank
	count int
}

// Evaluate classifies a 5-card hand. The order of the cards does not
// matter and the cards need not be distinct.
func Evaluate(hand card.Hand) (HandRank, error) {
	if len(hand) != HandSize {
		return HandRank{}, fmt.Errorf("%w: got %d", ErrHandSize, len(hand))
	}

	ranks := make([]card.Rank, 0, HandSize)
	counts := map[card.Rank]int{}
	isFlush := true
	for _, c := range hand {
		ranks = append(ranks, c.Rank)
		counts[c.Rank]++
		if c.Suit != hand[0].Suit {
			isFlush = false
		}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	straightHigh, isStraight := straightHighRank(ranks)
	groups := rankGroups(counts)

	switch {
	case groups[0].count >= 4:
		return FourOfAKindRank(groups[0].rank), nil
	case len(groups) == 2 && groups[0].count == 3:
		return FullHouseRank(groups[0].rank, groups[1].rank), nil
	case isFlush && isStraight && straightHigh == card.Ace:
		return RoyalFlushRank(), nil
	case isFlush && isStraight:
		return StraightFlushRank(straightHigh), nil
	case groups[0].count == 3:
		return ThreeOfAKindRank(groups[0].rank), nil
	case groups[0].count == 2 && groups[1].count == 2:
		return TwoPairRank(groups[0].rank, groups[1].rank), nil
	case groups[0].count == 2:
		return OnePairRank(groups[0].rank), nil
	case isFlush:
		return FlushRank(ranks...), nil
	case isStraight:
		return StraightRank(straightHigh), nil
	}
	return HighCardRank(ranks...), nil
}

// rankGroups orders ranks by count, then by rank, both descending
func rankGroups(counts map[card.Rank]int) []rankGroup {
	groups := make([]rankGroup, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count == groups[j].count {
			return groups[i].rank > groups[j].rank
		}
		return groups[i].count > groups[j].count
	})
	return groups
}

// straightHighRank takes ranks sorted descending and returns the high
// card of the straight they form. The wheel A-2-3-4-5 is five high.
func straightHighRank(ranks []card.Rank) (card.Rank, bool) {
	unique := make([]card.Rank, 0, len(ranks))
	for i, r := range ranks {
		if i > 0 && r == ranks[i-1] {
			continue
		}
		unique = append(unique, r)
	}
	if len(unique) != HandSize {
		return 0, false
	}

	if unique[0] == card.Ace && unique[1] == card.Five && unique[2] == card.Four &&
		unique[3] == card.Three && unique[4] == card.Two {
		return card.Five, true
	}

	if unique[0]-unique[4] == HandSize-1 {
		return unique[0], true
	}
	return 0, false
}
