package deck

import (
	cryptorand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/arcanaland/croupier/internal/card"
)

// Shuffler permutes a slice of cards in place
type Shuffler interface {
	Shuffle([]card.Card) error
}

type cryptoShuffler struct{}

type seededShuffler struct {
	rng *rand.Rand
}

// NewCryptoShuffler returns a Fisher-Yates shuffler backed by crypto/rand
func NewCryptoShuffler() Shuffler {
	return cryptoShuffler{}
}

// NewSeededShuffler returns a reproducible shuffler for the given seed
func NewSeededShuffler(seed int64) Shuffler {
	return &seededShuffler{rng: rand.New(rand.NewSource(seed))}
}

func (cryptoShuffler) Shuffle(cards []card.Card) error {
	for i := len(cards) - 1; i > 0; i-- {
		n, err := cryptorand.Int(cryptorand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("crypto shuffle failed: %w", err)
		}
		j := int(n.Int64())
		cards[i], cards[j] = cards[j], cards[i]
	}
	return nil
}

func (s *seededShuffler) Shuffle(cards []card.Card) error {
	s.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return nil
}
