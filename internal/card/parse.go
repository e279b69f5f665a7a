package card

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseRank parses a rank symbol. Ten may be written "10" or "T".
func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "2", "3", "4", "5", "6", "7", "8", "9", "10":
		n, _ := strconv.Atoi(s)
		return NewNumberRank(n)
	case "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
}

// ParseSuit parses a suit letter (s, h, d, c) or glyph
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "s", "♠":
		return Spades, nil
	case "h", "♥":
		return Hearts, nil
	case "d", "♦":
		return Diamonds, nil
	case "c", "♣":
		return Clubs, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

// ParseCard parses a card token such as "As", "10h", "Td" or "K♣".
// The suit is always the last character of the token.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	_, size := utf8.DecodeLastRuneInString(s)
	if len(s) < 2 || size == len(s) {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, err := ParseRank(s[:len(s)-size])
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %w", ErrInvalidCard, s, err)
	}
	suit, err := ParseSuit(s[len(s)-size:])
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %w", ErrInvalidCard, s, err)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// SplitTokens splits typed card text on whitespace and commas
func SplitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// ParseHand parses a list of card tokens separated by whitespace or commas
func ParseHand(s string) (Hand, error) {
	tokens := SplitTokens(s)
	hand := make(Hand, 0, len(tokens))
	for _, token := range tokens {
		c, err := ParseCard(token)
		if err != nil {
			return nil, err
		}
		hand = append(hand, c)
	}
	return hand, nil
}
