package poker

import (
	"testing"

	"github.com/arcanaland/croupier/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinnerPicksFlush(t *testing.T) {
	hands := []card.Hand{
		hand(t, "Ks Kd 2c 4h 9s"), // pair of kings
		hand(t, "Ah 7h 2h 4h 9h"), // flush
		hand(t, "5s 6d 7c 8h 9d"), // straight
		hand(t, "Ac Qd 2s 4d 9c"), // high card
	}

	idx, err := Winner(hands)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestWinnerTiesPickLowestIndex(t *testing.T) {
	hands := []card.Hand{
		hand(t, "2s 3d 4c 5h 7s"),
		hand(t, "5s 6d 7c 8h 9d"),
		hand(t, "5h 6c 7d 8s 9c"),
	}

	idx, err := Winner(hands)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	same := []card.Hand{
		hand(t, "Js Jd 4c 5h 7s"),
		hand(t, "Jh Jc Ac Kh Qs"),
	}
	idx, err = Winner(same)
	require.NoError(t, err)
	assert.Equal(t, 0, idx, "one pair ties on pair rank alone")
}

func TestWinnerSingleHand(t *testing.T) {
	idx, err := Winner([]card.Hand{hand(t, "2s 3d 4c 5h 7s")})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestWinnerEmptyInput(t *testing.T) {
	_, err := Winner(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Winner([]card.Hand{})
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Best(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestWinnerReportsBadHand(t *testing.T) {
	hands := []card.Hand{
		hand(t, "2s 3d 4c 5h 7s"),
		hand(t, "5s 6d 7c"),
	}
	_, err := Winner(hands)
	require.ErrorIs(t, err, ErrHandSize)
	assert.Contains(t, err.Error(), "hand 2")
}
