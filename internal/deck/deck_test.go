package deck

import (
	"errors"
	"testing"

	"github.com/arcanaland/croupier/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasUniqueCards(t *testing.T) {
	d := New()
	require.Equal(t, 52, d.Len())

	seen := map[card.Card]struct{}{}
	for _, c := range d.Cards() {
		_, dup := seen[c]
		require.False(t, dup, "duplicate card %s", c)
		seen[c] = struct{}{}
	}

	for _, s := range card.Suits {
		for _, r := range card.Ranks {
			assert.Contains(t, seen, card.Card{Suit: s, Rank: r})
		}
	}
}

func TestDealFourHandsOfFive(t *testing.T) {
	d := New()
	hands, err := Deal(d, NewSeededShuffler(1), 5, 4)
	require.NoError(t, err)

	assert.Equal(t, 32, d.Len())
	require.Len(t, hands, 4)

	seen := map[card.Card]int{}
	for i, h := range hands {
		assert.Len(t, h, 5)
		for _, c := range h {
			if prev, ok := seen[c]; ok {
				t.Fatalf("card %s dealt to hand %d and hand %d", c, prev, i)
			}
			seen[c] = i
		}
	}

	for _, c := range d.Cards() {
		assert.NotContains(t, seen, c, "card %s both dealt and left in deck", c)
	}
}

func TestDealIsRoundRobinFromTop(t *testing.T) {
	d := New()
	cards := d.Cards()

	hands, err := d.Deal(2, 2)
	require.NoError(t, err)

	top := len(cards) - 1
	assert.Equal(t, card.Hand{cards[top], cards[top-2]}, hands[0])
	assert.Equal(t, card.Hand{cards[top-1], cards[top-3]}, hands[1])
}

func TestDealInsufficientCards(t *testing.T) {
	d := New()
	before := d.Cards()

	hands, err := Deal(d, NewSeededShuffler(1), 14, 4)
	require.Error(t, err)
	assert.Nil(t, hands)
	assert.True(t, errors.Is(err, ErrInsufficientCards))

	var insufficient *InsufficientCardsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 56, insufficient.Requested)
	assert.Equal(t, 52, insufficient.Available)
	assert.Contains(t, err.Error(), "requested 56 but only 52 available")

	assert.Equal(t, before, d.Cards(), "failed deal must not shuffle or drain the deck")
}

func TestDealRejectsNegativeCounts(t *testing.T) {
	_, err := New().Deal(-1, 4)
	assert.ErrorIs(t, err, ErrInvalidDeal)

	_, err = New().Deal(5, -2)
	assert.ErrorIs(t, err, ErrInvalidDeal)
}

func TestDealZeroHands(t *testing.T) {
	d := New()
	hands, err := d.Deal(5, 0)
	require.NoError(t, err)
	assert.Empty(t, hands)
	assert.Equal(t, 52, d.Len())
}

func TestDrawEmptyDeck(t *testing.T) {
	d := FromCards(nil)
	_, err := d.Draw()
	assert.ErrorIs(t, err, ErrInsufficientCards)
}

func TestDealDrainsAcrossCalls(t *testing.T) {
	d := New()
	_, err := d.Deal(5, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	_, err = d.Deal(5, 1)
	var insufficient *InsufficientCardsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 5, insufficient.Requested)
	assert.Equal(t, 2, insufficient.Available)
}
