package poker

import (
	"context"
	"fmt"
	"math/bits"

	"golang.org/x/sync/errgroup"
)

// fiveOfSeven lists the 21 five-card index subsets of a seven-card set.
var fiveOfSeven = func() [21][5]uint8 {
	var out [21][5]uint8
	n := 0
	for a := uint8(0); a < 7; a++ {
		for b := a + 1; b < 7; b++ {
			// Drop a and b, keep the rest.
			k := 0
			for i := uint8(0); i < 7; i++ {
				if i != a && i != b {
					out[n][k] = i
					k++
				}
			}
			n++
		}
	}
	return out
}()

func (s SevenCards) subset(i int) FiveCards {
	idx := fiveOfSeven[i]
	return FiveCards{s[idx[0]], s[idx[1]], s[idx[2]], s[idx[3]], s[idx[4]]}
}

// BestHand returns the strongest five-card value among the 21 subsets of s.
func BestHand(s SevenCards) HandValue {
	best := RankFive(s.subset(0))
	for i := 1; i < len(fiveOfSeven); i++ {
		if v := RankFive(s.subset(i)); v.Beats(best) {
			best = v
		}
	}
	return best
}

// BestFive returns the five cards that make the best hand of s and their value.
// When several subsets tie the first one found is returned.
func BestFive(s SevenCards) (FiveCards, HandValue) {
	best, bestValue := s.subset(0), RankFive(s.subset(0))
	for i := 1; i < len(fiveOfSeven); i++ {
		f := s.subset(i)
		if v := RankFive(f); v.Beats(bestValue) {
			best, bestValue = f, v
		}
	}
	return best, bestValue
}

// BestHandParallel is BestHand with the subsets spread across workers
// goroutines. The reduction is a plain maximum so the result does not depend
// on scheduling.
func BestHandParallel(ctx context.Context, s SevenCards, workers int) (HandValue, error) {
	if workers <= 1 {
		return BestHand(s), ctx.Err()
	}
	if workers > len(fiveOfSeven) {
		workers = len(fiveOfSeven)
	}

	results := make([]HandValue, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			var best HandValue
			for i := w; i < len(fiveOfSeven); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if v := RankFive(s.subset(i)); i == w || v.Beats(best) {
					best = v
				}
			}
			results[w] = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return HandValue{}, fmt.Errorf("evaluate %s: %w", s, err)
	}
	return MaxHandValue(results...), nil
}

// Winner is the outcome of a two-player showdown.
type Winner int8

const (
	Chop Winner = iota
	WinnerA
	WinnerB
)

func (w Winner) String() string {
	switch w {
	case WinnerA:
		return "A"
	case WinnerB:
		return "B"
	default:
		return "chop"
	}
}

// Showdown evaluates both holes against a full board and returns the winning
// value and which side holds it. On a chop the shared value is returned.
func Showdown(board FiveCards, a, b Hole) (HandValue, Winner, error) {
	if a.Overlaps(b) {
		return HandValue{}, Chop, fmt.Errorf("%w: holes %s and %s overlap", ErrDuplicateCard, a, b)
	}
	sa, err := CombineSeven(board, a)
	if err != nil {
		return HandValue{}, Chop, err
	}
	sb, err := CombineSeven(board, b)
	if err != nil {
		return HandValue{}, Chop, err
	}
	va, vb := BestHand(sa), BestHand(sb)
	switch va.Compare(vb) {
	case 1:
		return va, WinnerA, nil
	case -1:
		return vb, WinnerB, nil
	default:
		return va, Chop, nil
	}
}

// CompareHoles returns 1 if a beats b on the board, -1 if b wins and 0 for a chop.
func CompareHoles(board FiveCards, a, b Hole) (int, error) {
	_, w, err := Showdown(board, a, b)
	switch w {
	case WinnerA:
		return 1, err
	case WinnerB:
		return -1, err
	default:
		return 0, err
	}
}

// IsUnbeatable reports whether board plus hole is certainly the best hand
// any opponent can hold. It only recognizes a royal flush, quads that no
// straight flush, higher quads or better kicker can top, and Broadway when
// the board allows neither a flush nor a full house. A false result means
// "not proven"; FindNuts gives the full answer.
func IsUnbeatable(board FiveCards, hole Hole) bool {
	seven, err := CombineSeven(board, hole)
	if err != nil {
		return false
	}
	v := BestHand(seven)
	bh := HandOf(board)

	switch v.Category {
	case RoyalFlush:
		return true
	case FourOfAKind:
		if straightFlushPossible(bh) {
			return false
		}
		q := v.Kickers[0]
		for r := q + 1; r <= Ace; r++ {
			if bh.ValueCount(r) >= 2 {
				return false
			}
		}
		if bh.ValueCount(q) < 4 {
			return true
		}
		// Quads on the board: everyone shares them, so the kicker decides.
		best, _ := highestValue(uint16(rankBits) &^ (1 << q))
		return v.Kickers[1] == best
	case Straight:
		if v.Kickers[0] != Ace {
			return false
		}
		for s := Spades; s <= Clubs; s++ {
			if bits.OnesCount16(bh.SuitMask(s)) >= 3 {
				return false
			}
		}
		// An unpaired board rules out full houses and quads.
		return bits.OnesCount16(bh.RankMask()) == len(board)
	}
	return false
}

// straightFlushPossible reports whether some two cards could complete a
// straight flush with the board cards, ignoring blockers.
func straightFlushPossible(board Hand) bool {
	for s := Spades; s <= Clubs; s++ {
		if _, ok := firstCompletable(board.SuitMask(s), 2); ok {
			return true
		}
	}
	return false
}

// evalHand scores five to seven cards directly from suit and rank masks
// without enumerating subsets.
func evalHand(h Hand) HandValue {
	var suitMasks [NumSuits]uint16
	var rankMask uint16
	for s := Spades; s <= Clubs; s++ {
		suitMasks[s] = h.SuitMask(s)
		rankMask |= suitMasks[s]
	}

	flushFound := false
	var flush HandValue
	for _, sm := range suitMasks {
		if bits.OnesCount16(sm) < 5 {
			continue
		}
		if top, ok := straightHighMask(sm); ok {
			if top == Ace {
				return newHandValue(RoyalFlush)
			}
			return newHandValue(StraightFlush, top)
		}
		if v := newHandValue(Flush, topValues(sm, 5)...); !flushFound || v.Beats(flush) {
			flush, flushFound = v, true
		}
	}

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]
	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	if quad, ok := highestValue(quadsMask); ok {
		kicker, _ := highestValue(rankMask &^ (1 << quad))
		return newHandValue(FourOfAKind, quad, kicker)
	}

	if trip, ok := highestValue(tripsMask); ok {
		if pair, ok := highestValue(pairsMask | tripsMask&^(1<<trip)); ok {
			return newHandValue(FullHouse, trip, pair)
		}
	}

	if flushFound {
		return flush
	}

	if top, ok := straightHighMask(rankMask); ok {
		return newHandValue(Straight, top)
	}

	if trip, ok := highestValue(tripsMask); ok {
		return newHandValue(ThreeOfAKind, append([]Value{trip}, topValues(rankMask&^(1<<trip), 2)...)...)
	}

	if high, ok := highestValue(pairsMask); ok {
		if low, ok := highestValue(pairsMask &^ (1 << high)); ok {
			kicker, _ := highestValue(rankMask &^ (1<<high | 1<<low))
			return newHandValue(TwoPair, high, low, kicker)
		}
		return newHandValue(OnePair, append([]Value{high}, topValues(rankMask&^(1<<high), 3)...)...)
	}

	return newHandValue(HighCard, topValues(rankMask, 5)...)
}

// topValues returns up to n values of mask, highest first.
func topValues(mask uint16, n int) []Value {
	vals := valuesDesc(mask)
	if len(vals) > n {
		vals = vals[:n]
	}
	return vals
}
