package poker

// TotalHands is the number of distinct 5-card hands in a 52-card deck
const TotalHands = 2598960

// handCounts is how many distinct 5-card hands fall in each category
var handCounts = map[Category]int{
	HighCard:      1302540,
	OnePair:       1098240,
	TwoPair:       123552,
	ThreeOfAKind:  54912,
	Straight:      10200,
	Flush:         5108,
	FullHouse:     3744,
	FourOfAKind:   624,
	StraightFlush: 36,
	RoyalFlush:    4,
}

// Combinations returns the number of distinct 5-card hands in category c
func Combinations(c Category) int {
	return handCounts[c]
}

// Probability returns the chance that a random 5-card hand is in category c
func Probability(c Category) float64 {
	return float64(handCounts[c]) / TotalHands
}
