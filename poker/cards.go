// Package poker models playing cards and evaluates Texas Hold'em hands.
//
// Cards are packed into a single byte (value<<2 | suit) so that card sets can
// live in fixed-size arrays, and groups of cards can be folded into a 64-bit
// Hand bitset for allocation-free suit and rank masks.
package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Value is a card rank ordered Deuce < Trey < ... < King < Ace.
type Value uint8

const (
	Deuce Value = iota
	Trey
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

// NumValues is the number of distinct card values.
const NumValues = 13

const valueChars = "23456789TJQKA"

// Ordinal returns the plain 0-12 ordinal used for ranking and kicker comparison.
func (v Value) Ordinal() int {
	return int(v)
}

// StraightOrdinal returns the 1-13 ordinal used for straight detection.
// The wheel treats an Ace as 0, see IsStraight.
func (v Value) StraightOrdinal() int {
	return int(v) + 1
}

// Valid reports whether v is one of the thirteen values.
func (v Value) Valid() bool {
	return v <= Ace
}

// String returns the single character form ("2".."9", "T", "J", "Q", "K", "A").
func (v Value) String() string {
	if !v.Valid() {
		return "?"
	}
	return valueChars[v : v+1]
}

// Name returns the English name of the value.
func (v Value) Name() string {
	switch v {
	case Deuce:
		return "Deuce"
	case Trey:
		return "Trey"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return "Unknown"
	}
}

// ParseValue parses a single rank character. Parsing is case-sensitive.
func ParseValue(c byte) (Value, error) {
	if i := strings.IndexByte(valueChars, c); i >= 0 {
		return Value(i), nil
	}
	return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidToken, c)
}

// Suit is one of the four card suits. Suits carry no strength.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the number of suits.
const NumSuits = 4

const suitChars = "shdc"

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Clubs
}

// String returns the single character form ("s", "h", "d", "c").
func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return suitChars[s : s+1]
}

// IsRed returns true for hearts and diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit parses a single suit character. Parsing is case-sensitive.
func ParseSuit(c byte) (Suit, error) {
	if i := strings.IndexByte(suitChars, c); i >= 0 {
		return Suit(i), nil
	}
	return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidToken, c)
}

// Card is an immutable (Value, Suit) pair packed as value<<2 | suit.
// The packed form doubles as the canonical sort key; it says nothing about
// the strength of a hand.
type Card uint8

// NumCards is the size of a standard deck.
const NumCards = 52

// NewCard creates a card from a value and a suit.
func NewCard(v Value, s Suit) Card {
	return Card(uint8(v)<<2 | uint8(s))
}

// Value returns the rank of the card.
func (c Card) Value() Value {
	return Value(c >> 2)
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return Suit(c & 3)
}

// Key returns the canonical byte ordering key.
func (c Card) Key() uint8 {
	return uint8(c)
}

// Valid reports whether c denotes one of the 52 cards.
func (c Card) Valid() bool {
	return c < NumCards
}

// String returns the two character form, e.g. "As" or "Td".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Value().String() + c.Suit().String()
}

// ParseCard parses a two character token such as "As" or "7d".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: card %q must be 2 characters", ErrInvalidToken, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return 0, fmt.Errorf("%w: card %q is not ASCII", ErrInvalidToken, s)
		}
	}
	v, err := ParseValue(s[0])
	if err != nil {
		return 0, fmt.Errorf("card %q: %w", s, err)
	}
	suit, err := ParseSuit(s[1])
	if err != nil {
		return 0, fmt.Errorf("card %q: %w", s, err)
	}
	return NewCard(v, suit), nil
}

// MustParseCard parses a card and panics on error (for tests and fixtures).
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card %q: %v", s, err))
	}
	return c
}

// ParseCards parses whitespace separated card tokens of any count.
// Duplicates are not rejected here; use ParseSet or NewBoard for that.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Hand is a bitset of cards, bit i set when the card with key i is present.
type Hand uint64

// NewHand builds a hand from the given cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(1) << c
	}
	return h
}

// allCards has one bit per card in the deck.
const allCards Hand = 1<<NumCards - 1

// Add returns the hand with c added.
func (h Hand) Add(c Card) Hand {
	return h | Hand(1)<<c
}

// Has reports whether the hand contains c.
func (h Hand) Has(c Card) bool {
	return h&(Hand(1)<<c) != 0
}

// Count returns the number of cards in the hand.
func (h Hand) Count() int {
	return bits.OnesCount64(uint64(h))
}

// SuitMask returns a 13-bit rank mask (bit 0 = Deuce) of the cards in suit s.
func (h Hand) SuitMask(s Suit) uint16 {
	var mask uint16
	x := uint64(h) >> s
	for v := 0; v < NumValues; v++ {
		mask |= uint16(x&1) << v
		x >>= 4
	}
	return mask
}

// RankMask returns a 13-bit mask of the values present in any suit.
func (h Hand) RankMask() uint16 {
	return h.SuitMask(Spades) | h.SuitMask(Hearts) | h.SuitMask(Diamonds) | h.SuitMask(Clubs)
}

// ValueCount returns how many cards of value v the hand holds.
func (h Hand) ValueCount(v Value) int {
	return bits.OnesCount64(uint64(h) >> (uint(v) << 2) & 0xF)
}

// Cards returns the cards of the hand in canonical order.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.Count())
	for x := uint64(h); x != 0; x &= x - 1 {
		cards = append(cards, Card(bits.TrailingZeros64(x)))
	}
	return cards
}

// String renders the hand as space separated cards.
func (h Hand) String() string {
	return FormatCards(DisplayASCII, h.Cards()...)
}

// valueMask returns a hand holding all four cards of value v.
func valueMask(v Value) Hand {
	return Hand(0xF) << (uint(v) << 2)
}

// suitCards returns a hand holding all thirteen cards of suit s.
func suitCards(s Suit) Hand {
	var h Hand
	for v := Deuce; v <= Ace; v++ {
		h = h.Add(NewCard(v, s))
	}
	return h
}
