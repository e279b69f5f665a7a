package poker

import (
	"testing"

	"github.com/arcanaland/croupier/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hand(t *testing.T, s string) card.Hand {
	t.Helper()
	h, err := card.ParseHand(s)
	require.NoError(t, err)
	return h
}

func evaluate(t *testing.T, s string) HandRank {
	t.Helper()
	r, err := Evaluate(hand(t, s))
	require.NoError(t, err)
	return r
}

func TestEvaluateAllCategories(t *testing.T) {
	tests := []struct {
		name string
		hand string
		want HandRank
	}{
		{
			name: "high card",
			hand: "As 7d 2c 4h 9s",
			want: HighCardRank(card.Ace, card.Nine, card.Seven, card.Four, card.Two),
		},
		{
			name: "one pair",
			hand: "Ks Kd 2c 4h 9s",
			want: OnePairRank(card.King),
		},
		{
			name: "two pair orders the higher pair first",
			hand: "4s 4d Jc 9h Jd",
			want: TwoPairRank(card.Jack, card.Four),
		},
		{
			name: "three of a kind",
			hand: "7s 7d 7c Ah 2d",
			want: ThreeOfAKindRank(card.Seven),
		},
		{
			name: "straight",
			hand: "5s 6d 7c 8h 9s",
			want: StraightRank(card.Nine),
		},
		{
			name: "ace high straight",
			hand: "Ts Jd Qc Kh As",
			want: StraightRank(card.Ace),
		},
		{
			name: "wheel is five high",
			hand: "As 2d 3c 4h 5s",
			want: StraightRank(card.Five),
		},
		{
			name: "flush",
			hand: "As 7s 2s 4s 9s",
			want: FlushRank(card.Ace, card.Nine, card.Seven, card.Four, card.Two),
		},
		{
			name: "full house",
			hand: "Ks Kd Kc 2h 2s",
			want: FullHouseRank(card.King, card.Two),
		},
		{
			name: "full house with the pair above the triple",
			hand: "3s 3d 3c Ah As",
			want: FullHouseRank(card.Three, card.Ace),
		},
		{
			name: "four of a kind",
			hand: "9s 9d 9c 9h 2s",
			want: FourOfAKindRank(card.Nine),
		},
		{
			name: "straight flush",
			hand: "5h 6h 7h 8h 9h",
			want: StraightFlushRank(card.Nine),
		},
		{
			name: "royal flush",
			hand: "Td Jd Qd Kd Ad",
			want: RoyalFlushRank(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluate(t, tt.hand)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A-2-3-4-5 suited contains an ace but is the lowest straight flush,
// not a royal flush.
func TestWheelStraightFlushIsNotRoyal(t *testing.T) {
	wheel := evaluate(t, "Ac 2c 3c 4c 5c")
	assert.Equal(t, StraightFlushRank(card.Five), wheel)

	sixHigh := evaluate(t, "2c 3c 4c 5c 6c")
	royal := evaluate(t, "Tc Jc Qc Kc Ac")

	assert.True(t, sixHigh.Beats(wheel))
	assert.True(t, royal.Beats(wheel))
	assert.True(t, wheel.Beats(evaluate(t, "9s 9d 9c 9h Ks")))
}

func TestEvaluateIgnoresCardOrder(t *testing.T) {
	a := evaluate(t, "Ks 2d Kd 9s 2c")
	b := evaluate(t, "2c 9s Kd 2d Ks")
	assert.Equal(t, a, b)
	assert.Equal(t, TwoPairRank(card.King, card.Two), a)
}

func TestEvaluateDoesNotAssumeDistinctCards(t *testing.T) {
	assert.Equal(t, FourOfAKindRank(card.Ace), evaluate(t, "As As As As As"))
	assert.Equal(t, FullHouseRank(card.Two, card.Jack), evaluate(t, "2h 2h 2h Jh Jh"))
	assert.Equal(t, OnePairRank(card.Queen), evaluate(t, "Qh Qh 3h 5h 9h"))
}

func TestEvaluateNoStraightWithGaps(t *testing.T) {
	assert.Equal(t, HighCard, evaluate(t, "2s 3d 4c 5h 7s").Category)
	assert.Equal(t, HighCard, evaluate(t, "Js Qd Kc Ah 2s").Category)
	assert.Equal(t, HighCard, evaluate(t, "As 2d 3c 4h 6s").Category)
}

func TestEvaluateHandSize(t *testing.T) {
	for _, s := range []string{"", "As Ks Qs Js", "As Ks Qs Js Ts 9s"} {
		_, err := Evaluate(hand(t, s))
		assert.ErrorIs(t, err, ErrHandSize, "hand %q", s)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	h := hand(t, "8d 8c Ah 3s 8s")
	first, err := Evaluate(h)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Evaluate(h)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
