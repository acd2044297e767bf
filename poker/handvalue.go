package poker

import (
	"fmt"
	"strings"
)

// Category enumerates hand categories ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// kickerCount is the number of tie-break values each category carries.
var kickerCount = [...]int{
	HighCard:      5,
	OnePair:       4,
	TwoPair:       3,
	ThreeOfAKind:  3,
	Straight:      1,
	Flush:         5,
	FullHouse:     2,
	FourOfAKind:   2,
	StraightFlush: 1,
	RoyalFlush:    0,
}

// HandValue is the strength of a five-card hand: a category plus the values
// that break ties inside it, most significant first. The zero value is the
// weakest possible high card. Values are comparable with == and usable as map
// keys.
type HandValue struct {
	Category Category
	Kickers  [5]Value
}

func newHandValue(cat Category, kickers ...Value) HandValue {
	hv := HandValue{Category: cat}
	copy(hv.Kickers[:], kickers)
	return hv
}

// KickerValues returns the meaningful tie-break values for the category.
func (hv HandValue) KickerValues() []Value {
	n := 0
	if int(hv.Category) < len(kickerCount) {
		n = kickerCount[hv.Category]
	}
	return hv.Kickers[:n:n]
}

// Score packs the value into an integer preserving the strength order.
func (hv HandValue) Score() uint32 {
	s := uint32(hv.Category)
	for _, k := range hv.Kickers {
		s = s<<4 | uint32(k)
	}
	return s
}

// Compare returns 1 if hv beats o, -1 if o beats hv and 0 for a tie.
func (hv HandValue) Compare(o HandValue) int {
	a, b := hv.Score(), o.Score()
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Beats reports whether hv is strictly stronger than o.
func (hv HandValue) Beats(o HandValue) bool {
	return hv.Score() > o.Score()
}

// String describes the hand, e.g. "Full House, Kings full of Sevens".
func (hv HandValue) String() string {
	k := hv.Kickers
	switch hv.Category {
	case HighCard, Flush:
		return fmt.Sprintf("%s, %s", hv.Category, joinValues(k[:]))
	case OnePair:
		return fmt.Sprintf("%s, %s with %s", hv.Category, k[0].Plural(), joinValues(k[1:4]))
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s with %s", hv.Category, k[0].Plural(), k[1].Plural(), k[2])
	case ThreeOfAKind:
		return fmt.Sprintf("%s, %s with %s", hv.Category, k[0].Plural(), joinValues(k[1:3]))
	case Straight, StraightFlush:
		return fmt.Sprintf("%s, %s high", hv.Category, k[0].Name())
	case FullHouse:
		return fmt.Sprintf("%s, %s full of %s", hv.Category, k[0].Plural(), k[1].Plural())
	case FourOfAKind:
		return fmt.Sprintf("%s, %s with %s", hv.Category, k[0].Plural(), k[1])
	default:
		return hv.Category.String()
	}
}

// Plural returns the plural English name, e.g. "Sixes".
func (v Value) Plural() string {
	if v == Six {
		return "Sixes"
	}
	return v.Name() + "s"
}

func joinValues(vals []Value) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// MaxHandValue returns the stronger of the values.
func MaxHandValue(vals ...HandValue) HandValue {
	var best HandValue
	for i, v := range vals {
		if i == 0 || v.Beats(best) {
			best = v
		}
	}
	return best
}
