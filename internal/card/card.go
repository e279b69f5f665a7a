package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidRank is returned when a rank is outside Two..Ace
	ErrInvalidRank = errors.New("invalid rank")
	// ErrInvalidSuit is returned for an unknown suit symbol
	ErrInvalidSuit = errors.New("invalid suit")
	// ErrInvalidCard is returned when a card token cannot be parsed
	ErrInvalidCard = errors.New("invalid card")
)

// Suit represents one of the four French suits. Suits are unordered.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Symbol returns the suit glyph
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the single letter used when typing a card (s, h, d, c)
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	default:
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank is a card rank. Its value is the numeric strength used for
// ordering: Number(n) is n, Jack 11, Queen 12, King 13, Ace 14.
// The zero Rank is invalid.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from Two to Ace
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// NewNumberRank returns the number rank n, which must be in [2,10]
func NewNumberRank(n int) (Rank, error) {
	if n < 2 || n > 10 {
		return 0, fmt.Errorf("%w: number rank %d outside [2,10]", ErrInvalidRank, n)
	}
	return Rank(n), nil
}

// Value returns the numeric strength of the rank
func (r Rank) Value() int {
	return int(r)
}

// Valid reports whether r is one of Two..Ace
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// IsNumber reports whether r is a pip rank (2-10)
func (r Rank) IsNumber() bool {
	return r >= Two && r <= Ten
}

// Symbol returns the short rank symbol: 2-10, J, Q, K, A
func (r Rank) Symbol() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r.IsNumber() {
		return strconv.Itoa(int(r))
	}
	return "?"
}

// Name returns the English rank name, e.g. "Seven" or "Queen"
func (r Rank) Name() string {
	names := map[Rank]string{
		Two:   "Two",
		Three: "Three",
		Four:  "Four",
		Five:  "Five",
		Six:   "Six",
		Seven: "Seven",
		Eight: "Eight",
		Nine:  "Nine",
		Ten:   "Ten",
		Jack:  "Jack",
		Queen: "Queen",
		King:  "King",
		Ace:   "Ace",
	}
	if name, ok := names[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", uint8(r))
}

// Plural returns the plural rank name, e.g. "Sixes" or "Kings"
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.Name() + "s"
}

func (r Rank) String() string {
	return r.Name()
}

// Card represents a playing card. Card values are immutable.
type Card struct {
	Suit Suit
	Rank Rank
}

// New returns the card of the given suit and rank
func New(suit Suit, rank Rank) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, uint8(rank))
	}
	if suit > Clubs {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, uint8(suit))
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// String renders the card as rank symbol followed by suit glyph (A♠, 10♥)
func (c Card) String() string {
	return c.Rank.Symbol() + c.Suit.Symbol()
}

// Name returns the long card name, e.g. "Queen of Hearts"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank.Name(), c.Suit)
}

// Code returns the typed form of the card, e.g. "Qh" or "10c"
func (c Card) Code() string {
	return c.Rank.Symbol() + c.Suit.Letter()
}

// Hand is a sequence of cards held by one player
type Hand []Card

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
