package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Nuts describes every two-card holding that cannot be beaten on a board.
// A holding H (disjoint from the board) is a member exactly when no other
// holding disjoint from both the board and H makes a strictly better hand,
// so blockers count: holding a card an opponent would need can be enough.
//
// Membership is answered in constant time; NutsMembers expands a descriptor
// into concrete holdings when they are needed for reporting.
type Nuts interface {
	// Contains reports whether the holding is among the nuts. The holding is
	// assumed not to overlap the board.
	Contains(h Hole) bool
	String() string
	isNuts()
}

// AnyTwo means the board plays: every holding ties for the best hand.
type AnyTwo struct{}

// PocketPair means holdings of two cards of one value.
type PocketPair struct {
	Value Value
}

// ValuePlusAny means a card of the given value with any other card.
type ValuePlusAny struct {
	Value Value
}

// TwoValues means one card of each value, suits irrelevant.
type TwoValues struct {
	High, Low Value
}

// PocketPairOrTwoValues means a card of Pair together with another Pair card
// or an Other card.
type PocketPairOrTwoValues struct {
	Pair, Other Value
}

// CardPlusAny means the exact card with any other card.
type CardPlusAny struct {
	Card Card
}

// CardPlusAnySuited means the exact card with any card of its suit.
type CardPlusAnySuited struct {
	Card Card
}

// Holes is a short explicit list of holdings.
type Holes struct {
	Holdings []Hole
}

// Completion means Hole itself, or either card of Hole paired with a card
// from the matching kicker set. Kickers[i] holds the partners that keep
// Hole[i] unbeatable and always includes the other card of Hole.
type Completion struct {
	Hole    Hole
	Kickers [2]Hand
}

func (AnyTwo) isNuts()                {}
func (PocketPair) isNuts()            {}
func (ValuePlusAny) isNuts()          {}
func (TwoValues) isNuts()             {}
func (PocketPairOrTwoValues) isNuts() {}
func (CardPlusAny) isNuts()           {}
func (CardPlusAnySuited) isNuts()     {}
func (Holes) isNuts()                 {}
func (Completion) isNuts()            {}

func (AnyTwo) Contains(Hole) bool { return true }

func (n PocketPair) Contains(h Hole) bool {
	return h[0].Value() == n.Value && h[1].Value() == n.Value
}

func (n ValuePlusAny) Contains(h Hole) bool {
	return h[0].Value() == n.Value || h[1].Value() == n.Value
}

func (n TwoValues) Contains(h Hole) bool {
	a, b := h[0].Value(), h[1].Value()
	return (a == n.High && b == n.Low) || (a == n.Low && b == n.High)
}

func (n PocketPairOrTwoValues) Contains(h Hole) bool {
	a, b := h[0].Value(), h[1].Value()
	return (a == n.Pair && (b == n.Pair || b == n.Other)) ||
		(b == n.Pair && a == n.Other)
}

func (n CardPlusAny) Contains(h Hole) bool {
	return h[0] == n.Card || h[1] == n.Card
}

func (n CardPlusAnySuited) Contains(h Hole) bool {
	return (h[0] == n.Card || h[1] == n.Card) && h.IsSuited()
}

func (n Holes) Contains(h Hole) bool {
	for _, x := range n.Holdings {
		if SetsEqual(x, h) {
			return true
		}
	}
	return false
}

func (n Completion) Contains(h Hole) bool {
	for i, c := range n.Hole {
		if (h[0] == c && n.Kickers[i].Has(h[1])) || (h[1] == c && n.Kickers[i].Has(h[0])) {
			return true
		}
	}
	return false
}

func (AnyTwo) String() string { return "any two cards" }

func (n PocketPair) String() string { return "pocket " + n.Value.Plural() }

func (n ValuePlusAny) String() string { return "any " + n.Value.Name() }

func (n TwoValues) String() string { return n.High.String() + n.Low.String() }

func (n PocketPairOrTwoValues) String() string {
	return fmt.Sprintf("pocket %s or %s%s", n.Pair.Plural(), n.Pair, n.Other)
}

func (n CardPlusAny) String() string { return n.Card.String() + " with any card" }

func (n CardPlusAnySuited) String() string {
	return fmt.Sprintf("%s with any %s", n.Card, suitNames[n.Card.Suit()])
}

func (n Holes) String() string {
	parts := make([]string, len(n.Holdings))
	for i, h := range n.Holdings {
		parts[i] = h[0].String() + h[1].String()
	}
	return strings.Join(parts, ", ")
}

func (n Completion) String() string {
	var b strings.Builder
	b.WriteString(n.Hole[0].String() + n.Hole[1].String())
	for i, c := range n.Hole {
		partners := n.Kickers[i] &^ NewHand(n.Hole[1-i])
		if partners == 0 {
			continue
		}
		fmt.Fprintf(&b, ", %s with %s", c, partners)
	}
	return b.String()
}

var suitNames = [NumSuits]string{"spade", "heart", "diamond", "club"}

// FindNuts returns the descriptor of all unbeatable holdings on a flop, turn
// or river board.
func FindNuts(b Board) (Nuts, error) {
	if b.Stage() == StagePreflop {
		return nil, ErrPreflopBoard
	}
	return findNuts(b.Hand()), nil
}

// MustFindNuts is FindNuts for boards known to be past the flop.
func MustFindNuts(b Board) Nuts {
	n, err := FindNuts(b)
	if err != nil {
		panic(fmt.Sprintf("find nuts on %q: %v", b, err))
	}
	return n
}

// boardShape is the per-value card count of a board plus its flush suit.
type boardShape struct {
	board  Hand
	counts [NumValues]int
	suit   Suit
	flush  bool // three or more board cards share suit
}

func shapeOf(board Hand) boardShape {
	sh := boardShape{board: board}
	for v := Deuce; v <= Ace; v++ {
		sh.counts[v] = board.ValueCount(v)
	}
	for s := Spades; s <= Clubs; s++ {
		if bits.OnesCount16(board.SuitMask(s)) >= 3 {
			sh.suit, sh.flush = s, true
			break
		}
	}
	return sh
}

func (sh boardShape) paired() bool {
	for _, n := range sh.counts {
		if n >= 2 {
			return true
		}
	}
	return false
}

// valuesWithCount returns the board values held exactly n times, highest first.
func (sh boardShape) valuesWithCount(n int) []Value {
	var vals []Value
	for v := Ace; ; v-- {
		if sh.counts[v] == n {
			vals = append(vals, v)
		}
		if v == Deuce {
			return vals
		}
	}
}

func findNuts(board Hand) Nuts {
	sh := shapeOf(board)

	if sh.flush {
		if w, ok := firstCompletable(board.SuitMask(sh.suit), 2); ok {
			missing := w.MissingValues()
			switch len(missing) {
			case 0:
				return AnyTwo{}
			case 1:
				return CardPlusAny{Card: NewCard(missing[0], sh.suit)}
			default:
				return straightFlushDraw(board, NewCard(missing[0], sh.suit), NewCard(missing[1], sh.suit))
			}
		}
	}

	if sh.paired() {
		return pairedNuts(sh)
	}

	if sh.flush {
		return flushNuts(sh)
	}

	if w, ok := firstCompletable(board.RankMask(), 2); ok {
		missing := w.MissingValues()
		switch len(missing) {
		case 0:
			return AnyTwo{}
		case 1:
			return ValuePlusAny{Value: missing[0]}
		default:
			return TwoValues{High: missing[0], Low: missing[1]}
		}
	}

	top, _ := highestValue(board.RankMask())
	return PocketPair{Value: top}
}

// pairedNuts handles a paired board with no straight flush available.
func pairedNuts(sh boardShape) Nuts {
	if quads := sh.valuesWithCount(4); len(quads) > 0 {
		// Everyone holds the quads; the best kicker wins.
		best, _ := highestValue(uint16(rankBits) &^ (1 << quads[0]))
		if sh.counts[best] > 0 {
			return AnyTwo{}
		}
		return ValuePlusAny{Value: best}
	}

	pairs := sh.valuesWithCount(2)
	if trips := sh.valuesWithCount(3); len(trips) > 0 {
		t := trips[0]
		fourth := (valueMask(t) &^ sh.board).Cards()[0]
		if len(pairs) > 0 && pairs[0] > t {
			// Quads of the pair beat quads of the trips, but holding one
			// pair card blocks them.
			pc := (valueMask(pairs[0]) &^ sh.board).Cards()
			return Holes{Holdings: []Hole{{pc[0], pc[1]}, {pc[0], fourth}, {pc[1], fourth}}}
		}
		return CardPlusAny{Card: fourth}
	}

	p := pairs[0]
	var hiSingle Value
	singles := sh.valuesWithCount(1)
	hasSingle := len(singles) > 0
	if hasSingle {
		hiSingle = singles[0]
	}
	if len(pairs) >= 2 {
		x := pairs[1]
		if hasSingle && (hiSingle > p || hiSingle > x) {
			return PocketPair{Value: p}
		}
		return PocketPairOrTwoValues{Pair: p, Other: x}
	}
	if hiSingle > p {
		return PocketPair{Value: p}
	}
	return PocketPairOrTwoValues{Pair: p, Other: hiSingle}
}

// flushNuts handles an unpaired board with a flush suit and no straight flush.
func flushNuts(sh boardShape) Nuts {
	fr := sh.board.SuitMask(sh.suit)
	top, _ := highestValue(uint16(rankBits) &^ fr)
	ace := NewCard(top, sh.suit)
	switch bits.OnesCount16(fr) {
	case 5:
		// The board flush plays unless a suited card can replace its lowest card.
		low := Value(bits.TrailingZeros16(fr))
		if top < low {
			return AnyTwo{}
		}
		return CardPlusAny{Card: ace}
	case 4:
		return CardPlusAny{Card: ace}
	default:
		return CardPlusAnySuited{Card: ace}
	}
}

// straightFlushDraw handles a board where the best straight flush still
// needs both c1 and c2. The holding c1c2 is always a member; each single card
// also wins with every partner that leaves opponents nothing better.
func straightFlushDraw(board Hand, c1, c2 Card) Nuts {
	hole := Hole{c1, c2}
	var kickers [2]Hand
	for i, c := range hole {
		other := hole[1-i]
		kickers[i] = NewHand(other)
		for y := Card(0); y < NumCards; y++ {
			if board.Has(y) || y == c || y == other {
				continue
			}
			dead := NewHand(c, y)
			if !bestAvailable(board, dead).Beats(evalHand(board | dead)) {
				kickers[i] = kickers[i].Add(y)
			}
		}
	}
	return normalizeCompletion(board, hole, kickers)
}

// normalizeCompletion picks the most specific variant describing the holdings.
func normalizeCompletion(board Hand, hole Hole, kickers [2]Hand) Nuts {
	live := allCards &^ board
	suited := suitCards(hole[0].Suit()) & live
	for i, c := range hole {
		other := NewHand(hole[1-i])
		if kickers[1-i] != NewHand(c) {
			continue
		}
		switch kickers[i] {
		case live &^ NewHand(c):
			return CardPlusAny{Card: c}
		case suited &^ NewHand(c):
			return CardPlusAnySuited{Card: c}
		case other:
			return Holes{Holdings: []Hole{hole}}
		}
	}

	if kickers[0].Count()+kickers[1].Count()-1 <= 3 {
		holdings := []Hole{hole}
		for i, c := range hole {
			for _, y := range (kickers[i] &^ NewHand(hole[1-i])).Cards() {
				holdings = append(holdings, Hole{c, y})
			}
		}
		return Holes{Holdings: holdings}
	}
	return Completion{Hole: hole, Kickers: kickers}
}

// bestAvailable returns the strongest value any holding avoiding dead can
// make with board. Boards holding three or more cards of a suit are solved
// symbolically (a flush is then always reachable, so only straight flushes,
// quads, full houses and flushes can be best); other boards are enumerated.
func bestAvailable(board, dead Hand) HandValue {
	sh := shapeOf(board)
	if !sh.flush {
		return enumerateBest(board, dead)
	}
	used := board | dead
	avail := allCards &^ used

	fr := board.SuitMask(sh.suit)
	for _, w := range ScanRuns(fr) {
		if w.MissingCount() > 2 || avail.SuitMask(sh.suit)&w.Missing != w.Missing {
			continue
		}
		if w.Top == Ace {
			return newHandValue(RoyalFlush)
		}
		return newHandValue(StraightFlush, w.Top)
	}

	var ac [NumValues]int
	for v := Deuce; v <= Ace; v++ {
		ac[v] = avail.ValueCount(v)
	}
	boardRanks := board.RankMask()
	availRanks := avail.RankMask()

	found := false
	var quads HandValue
	for r := Deuce; r <= Ace; r++ {
		others := uint16(rankBits) &^ (1 << r)
		var kickers uint16
		switch {
		case sh.counts[r] == 4, sh.counts[r] == 3 && ac[r] == 1:
			kickers = (boardRanks | availRanks) & others
		case sh.counts[r] == 2 && ac[r] == 2:
			kickers = boardRanks & others
		default:
			continue
		}
		k, _ := highestValue(kickers)
		if v := newHandValue(FourOfAKind, r, k); !found || v.Beats(quads) {
			quads, found = v, true
		}
	}
	if found {
		return quads
	}

	for t := Ace; ; t-- {
		for p := Ace; ; p-- {
			if p != t {
				needT := max(0, 3-sh.counts[t])
				needP := max(0, 2-sh.counts[p])
				if needT+needP <= 2 && ac[t] >= needT && ac[p] >= needP {
					return newHandValue(FullHouse, t, p)
				}
			}
			if p == Deuce {
				break
			}
		}
		if t == Deuce {
			break
		}
	}

	suitAvail := topValues(avail.SuitMask(sh.suit), 2)
	mask := fr
	for _, v := range suitAvail {
		mask |= 1 << v
	}
	return newHandValue(Flush, topValues(mask, 5)...)
}

// enumerateBest tries every live holding.
func enumerateBest(board, dead Hand) HandValue {
	live := (allCards &^ (board | dead)).Cards()
	var best HandValue
	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			if v := evalHand(board.Add(live[i]).Add(live[j])); v.Beats(best) {
				best = v
			}
		}
	}
	return best
}

// NutsMembers lists every holding on the board that the descriptor contains,
// in canonical order.
func NutsMembers(b Board, n Nuts) []Hole {
	live := (allCards &^ b.Hand()).Cards()
	var holes []Hole
	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			h := Hole{live[i], live[j]}
			if n.Contains(h) {
				holes = append(holes, h)
			}
		}
	}
	return holes
}
