package poker

import (
	"fmt"
	"strings"

	"github.com/arcanaland/croupier/internal/card"
)

// Category is a poker hand category. Higher values beat lower ones.
type Category uint8

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from worst to best
var Categories = []Category{
	HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// HandRank is a classified hand. Ranks holds the tie-break payload of
// the category and is only compared against hands of the same category:
//
//	HighCard, Flush          all five ranks, highest first
//	OnePair                  pair rank
//	TwoPair                  higher pair, lower pair
//	ThreeOfAKind             triple rank
//	Straight, StraightFlush  high card of the straight
//	FullHouse                triple rank, pair rank
//	FourOfAKind              quad rank
//	RoyalFlush               none
type HandRank struct {
	Category Category
	Ranks    []card.Rank
}

func newHandRank(c Category, ranks ...card.Rank) HandRank {
	return HandRank{Category: c, Ranks: append([]card.Rank(nil), ranks...)}
}

// HighCardRank returns a high card hand; ranks run highest first
func HighCardRank(ranks ...card.Rank) HandRank {
	return newHandRank(HighCard, ranks...)
}

func OnePairRank(pair card.Rank) HandRank {
	return newHandRank(OnePair, pair)
}

func TwoPairRank(high, low card.Rank) HandRank {
	return newHandRank(TwoPair, high, low)
}

func ThreeOfAKindRank(r card.Rank) HandRank {
	return newHandRank(ThreeOfAKind, r)
}

func StraightRank(high card.Rank) HandRank {
	return newHandRank(Straight, high)
}

// FlushRank returns a flush; ranks run highest first
func FlushRank(ranks ...card.Rank) HandRank {
	return newHandRank(Flush, ranks...)
}

func FourOfAKindRank(r card.Rank) HandRank {
	return newHandRank(FourOfAKind, r)
}

func StraightFlushRank(high card.Rank) HandRank {
	return newHandRank(StraightFlush, high)
}

func RoyalFlushRank() HandRank {
	return newHandRank(RoyalFlush)
}

func FullHouseRank(triple, pair card.Rank) HandRank {
	return newHandRank(FullHouse, triple, pair)
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 if they tie.
// The category decides first; payload ranks are compared in order only
// between hands of the same category.
func Compare(a, b HandRank) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}

	n := min(len(a.Ranks), len(b.Ranks))
	for i := 0; i < n; i++ {
		if a.Ranks[i] > b.Ranks[i] {
			return 1
		}
		if a.Ranks[i] < b.Ranks[i] {
			return -1
		}
	}
	switch {
	case len(a.Ranks) > len(b.Ranks):
		return 1
	case len(a.Ranks) < len(b.Ranks):
		return -1
	}
	return 0
}

// Beats reports whether h is strictly stronger than other
func (h HandRank) Beats(other HandRank) bool {
	return Compare(h, other) > 0
}

// Equal reports whether h and other tie
func (h HandRank) Equal(other HandRank) bool {
	return Compare(h, other) == 0
}

// String describes the hand, e.g. "Full House, Kings over Twos"
func (h HandRank) String() string {
	r := h.Ranks
	switch {
	case h.Category == RoyalFlush:
		return h.Category.String()
	case (h.Category == HighCard || h.Category == Flush) && len(r) > 0:
		return fmt.Sprintf("%s, %s", h.Category, symbols(r))
	case h.Category == OnePair && len(r) == 1:
		return fmt.Sprintf("%s of %s", h.Category, r[0].Plural())
	case h.Category == TwoPair && len(r) == 2:
		return fmt.Sprintf("%s, %s and %s", h.Category, r[0].Plural(), r[1].Plural())
	case (h.Category == ThreeOfAKind || h.Category == FourOfAKind) && len(r) == 1:
		return fmt.Sprintf("%s, %s", h.Category, r[0].Plural())
	case (h.Category == Straight || h.Category == StraightFlush) && len(r) == 1:
		return fmt.Sprintf("%s, %s high", h.Category, r[0].Name())
	case h.Category == FullHouse && len(r) == 2:
		return fmt.Sprintf("%s, %s over %s", h.Category, r[0].Plural(), r[1].Plural())
	}
	return h.Category.String()
}

func symbols(ranks []card.Rank) string {
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = r.Symbol()
	}
	return strings.Join(parts, " ")
}
