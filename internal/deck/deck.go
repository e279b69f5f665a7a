package deck

import (
	"errors"
	"fmt"

	"github.com/arcanaland/croupier/internal/card"
)

var (
	// ErrInsufficientCards is returned when a deal needs more cards than the deck holds
	ErrInsufficientCards = errors.New("not enough cards in deck")
	// ErrInvalidDeal is returned for negative hand sizes or hand counts
	ErrInvalidDeal = errors.New("invalid deal")
)

// InsufficientCardsError reports how many cards a deal asked for and how
// many were left. It matches ErrInsufficientCards with errors.Is.
type InsufficientCardsError struct {
	Requested int
	Available int
}

func (e *InsufficientCardsError) Error() string {
	return fmt.Sprintf("not enough cards in deck: requested %d but only %d available", e.Requested, e.Available)
}

func (e *InsufficientCardsError) Is(target error) bool {
	return target == ErrInsufficientCards
}

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents an ordered pile of cards. The last card is the top.
type Deck struct {
	cards []card.Card
}

// New returns the 52 standard cards, suit by suit from Two to Ace
func New() *Deck {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.Card{Suit: suit, Rank: rank})
		}
	}
	return &Deck{cards: cards}
}

// FromCards builds a deck from the given cards. The slice is copied.
func FromCards(cards []card.Card) *Deck {
	return &Deck{cards: append([]card.Card(nil), cards...)}
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, bottom first
func (d *Deck) Cards() []card.Card {
	return append([]card.Card(nil), d.cards...)
}

// Shuffle permutes the remaining cards in place
func (d *Deck) Shuffle(s Shuffler) error {
	if s == nil {
		s = NewCryptoShuffler()
	}
	if err := s.Shuffle(d.cards); err != nil {
		return fmt.Errorf("error shuffling deck: %w", err)
	}
	return nil
}

// Draw removes and returns the top card
func (d *Deck) Draw() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, &InsufficientCardsError{Requested: 1, Available: 0}
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

// Deal hands out cardsPerHand cards to each of numHands hands, one card
// at a time round the table, taking cards from the top of the deck.
// The deck is left untouched when it cannot cover the deal.
func (d *Deck) Deal(cardsPerHand, numHands int) ([]card.Hand, error) {
	if err := d.checkDeal(cardsPerHand, numHands); err != nil {
		return nil, err
	}

	hands := make([]card.Hand, numHands)
	for i := range hands {
		hands[i] = make(card.Hand, 0, cardsPerHand)
	}

	total := cardsPerHand * numHands
	for i := 0; i < total; i++ {
		c, err := d.Draw()
		if err != nil {
			return nil, err
		}
		hands[i%numHands] = append(hands[i%numHands], c)
	}

	return hands, nil
}

func (d *Deck) checkDeal(cardsPerHand, numHands int) error {
	if cardsPerHand < 0 || numHands < 0 {
		return fmt.Errorf("%w: %d cards per hand, %d hands", ErrInvalidDeal, cardsPerHand, numHands)
	}
	if total := cardsPerHand * numHands; total > len(d.cards) {
		return &InsufficientCardsError{Requested: total, Available: len(d.cards)}
	}
	return nil
}

// Deal shuffles the deck once with s and deals from it. The size check
// runs before the shuffle so a failed deal leaves the deck as it was.
func Deal(d *Deck, s Shuffler, cardsPerHand, numHands int) ([]card.Hand, error) {
	if err := d.checkDeal(cardsPerHand, numHands); err != nil {
		return nil, err
	}
	if err := d.Shuffle(s); err != nil {
		return nil, err
	}
	return d.Deal(cardsPerHand, numHands)
}
