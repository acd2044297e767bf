package poker

// valueGroup is a run of same-valued cards in a five-card hand.
type valueGroup struct {
	count uint8
	value Value
}

// signature is the multiplicity shape of a hand: at most five groups ordered by
// count then value, both descending.
type signature struct {
	groups [5]valueGroup
	n      int
}

func signatureOf(f FiveCards) signature {
	var counts [NumValues]uint8
	for _, c := range f {
		counts[c.Value()]++
	}
	var sig signature
	for v := Ace; ; v-- {
		if counts[v] > 0 {
			g := valueGroup{count: counts[v], value: v}
			i := sig.n
			for i > 0 && sig.groups[i-1].count < g.count {
				sig.groups[i] = sig.groups[i-1]
				i--
			}
			sig.groups[i] = g
			sig.n++
		}
		if v == Deuce {
			break
		}
	}
	return sig
}

func (s signature) shape(counts ...uint8) bool {
	if s.n != len(counts) {
		return false
	}
	for i, c := range counts {
		if s.groups[i].count != c {
			return false
		}
	}
	return true
}

func (s signature) values() []Value {
	vals := make([]Value, s.n)
	for i := 0; i < s.n; i++ {
		vals[i] = s.groups[i].value
	}
	return vals
}

// RankFive classifies a five-card hand. The cards must be distinct.
func RankFive(f FiveCards) HandValue {
	flush := IsFlush(f[:]...)
	top, straight := IsStraight(f[:]...)

	switch {
	case straight && flush:
		if top == Ace {
			return newHandValue(RoyalFlush)
		}
		return newHandValue(StraightFlush, top)
	case flush:
		return newHandValue(Flush, signatureOf(f).values()...)
	case straight:
		return newHandValue(Straight, top)
	}

	sig := signatureOf(f)
	vals := sig.values()
	switch {
	case sig.shape(4, 1):
		return newHandValue(FourOfAKind, vals...)
	case sig.shape(3, 2):
		return newHandValue(FullHouse, vals...)
	case sig.shape(3, 1, 1):
		return newHandValue(ThreeOfAKind, vals...)
	case sig.shape(2, 2, 1):
		return newHandValue(TwoPair, vals...)
	case sig.shape(2, 1, 1, 1):
		return newHandValue(OnePair, vals...)
	default:
		return newHandValue(HighCard, vals...)
	}
}
