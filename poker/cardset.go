package poker

import (
	"fmt"
	"strings"
)

// Hole is a player's two private cards.
type Hole [2]Card

// Flop is the first three community cards.
type Flop [3]Card

// FiveCards is a five-card poker hand.
type FiveCards [5]Card

// SevenCards is a hole plus a full board.
type SevenCards [7]Card

// CardSet is the family of fixed-size card sets. A valid set holds distinct cards;
// its order carries no meaning.
type CardSet interface {
	~[2]Card | ~[3]Card | ~[5]Card | ~[7]Card
}

// NewSet builds a set from exactly len(S) distinct cards.
func NewSet[S CardSet](cards ...Card) (S, error) {
	var s S
	if len(cards) != len(s) {
		return s, fmt.Errorf("%w: got %d, want %d", ErrCardCount, len(cards), len(s))
	}
	var seen Hand
	for i, c := range cards {
		if !c.Valid() {
			return s, fmt.Errorf("%w: card key %d", ErrInvalidToken, uint8(c))
		}
		if seen.Has(c) {
			return s, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen = seen.Add(c)
		s[i] = c
	}
	return s, nil
}

// UncheckedSet builds a set without validating count or uniqueness. It is
// meant for callers such as Dealer that already guarantee distinct cards.
func UncheckedSet[S CardSet](cards ...Card) S {
	var s S
	for i := 0; i < len(s) && i < len(cards); i++ {
		s[i] = cards[i]
	}
	return s
}

// ParseSet parses whitespace separated tokens ("As Kd") or a single
// concatenated token ("AsKd") into a set of distinct cards.
func ParseSet[S CardSet](str string) (S, error) {
	var s S
	fields := strings.Fields(str)
	if len(fields) == 1 && len(s) > 1 && len(fields[0]) == 2*len(s) {
		joined := fields[0]
		fields = fields[:0]
		for i := 0; i < len(joined); i += 2 {
			fields = append(fields, joined[i:i+2])
		}
	}
	if len(fields) != len(s) {
		return s, fmt.Errorf("%w: %q has %d cards, want %d", ErrCardCount, str, len(fields), len(s))
	}
	cards := make([]Card, len(fields))
	for i, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return s, err
		}
		cards[i] = c
	}
	return NewSet[S](cards...)
}

// MustParseSet parses a set and panics on error (for tests and fixtures).
func MustParseSet[S CardSet](str string) S {
	s, err := ParseSet[S](str)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", str, err))
	}
	return s
}

// NewHole builds a hole from two distinct cards.
func NewHole(a, b Card) (Hole, error) {
	return NewSet[Hole](a, b)
}

// NewFlop builds a flop from three distinct cards.
func NewFlop(a, b, c Card) (Flop, error) {
	return NewSet[Flop](a, b, c)
}

// NewFive builds a five-card hand from distinct cards.
func NewFive(cards ...Card) (FiveCards, error) {
	return NewSet[FiveCards](cards...)
}

// NewSeven builds a seven-card set from distinct cards.
func NewSeven(cards ...Card) (SevenCards, error) {
	return NewSet[SevenCards](cards...)
}

// CombineSeven joins a full board and a hole, rejecting overlaps.
func CombineSeven(board FiveCards, hole Hole) (SevenCards, error) {
	return NewSeven(board[0], board[1], board[2], board[3], board[4], hole[0], hole[1])
}

// Sorted returns a copy of s in canonical (key) order.
func Sorted[S CardSet](s S) S {
	for i := 1; i < len(s); i++ {
		c := s[i]
		j := i - 1
		for j >= 0 && s[j] > c {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = c
	}
	return s
}

// SetsEqual reports whether a and b hold the same cards in any order.
func SetsEqual[S CardSet](a, b S) bool {
	a, b = Sorted(a), Sorted(b)
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ContainsCard reports whether c is in s.
func ContainsCard[S CardSet](s S, c Card) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}
	return false
}

// ContainsValue reports whether any card in s has value v.
func ContainsValue[S CardSet](s S, v Value) bool {
	for i := 0; i < len(s); i++ {
		if s[i].Value() == v {
			return true
		}
	}
	return false
}

// ContainsSuit reports whether any card in s has suit su.
func ContainsSuit[S CardSet](s S, su Suit) bool {
	for i := 0; i < len(s); i++ {
		if s[i].Suit() == su {
			return true
		}
	}
	return false
}

// HandOf folds a set into a Hand bitset.
func HandOf[S CardSet](s S) Hand {
	var h Hand
	for i := 0; i < len(s); i++ {
		h = h.Add(s[i])
	}
	return h
}

// CardsOf copies a set into a slice.
func CardsOf[S CardSet](s S) []Card {
	cards := make([]Card, len(s))
	for i := range cards {
		cards[i] = s[i]
	}
	return cards
}

// IsPocketPair reports whether both hole cards share a value.
func (h Hole) IsPocketPair() bool {
	return h[0].Value() == h[1].Value()
}

// IsSuited reports whether both hole cards share a suit.
func (h Hole) IsSuited() bool {
	return h[0].Suit() == h[1].Suit()
}

// Overlaps reports whether the two holes share a card.
func (h Hole) Overlaps(o Hole) bool {
	return h[0] == o[0] || h[0] == o[1] || h[1] == o[0] || h[1] == o[1]
}

func (h Hole) String() string  { return FormatCards(DisplayASCII, h[:]...) }
func (f Flop) String() string  { return FormatCards(DisplayASCII, f[:]...) }
func (f FiveCards) String() string  { return FormatCards(DisplayASCII, f[:]...) }
func (s SevenCards) String() string { return FormatCards(DisplayASCII, s[:]...) }

// Display renders the hole in the given mode.
func (h Hole) Display(mode DisplayMode) string { return FormatCards(mode, h[:]...) }

// Display renders the hand in the given mode.
func (f FiveCards) Display(mode DisplayMode) string { return FormatCards(mode, f[:]...) }
