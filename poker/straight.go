package poker

import "math/bits"

// IsFlush reports whether all cards share a suit. Empty input is not a flush.
func IsFlush(cards ...Card) bool {
	if len(cards) == 0 {
		return false
	}
	for _, c := range cards[1:] {
		if c.Suit() != cards[0].Suit() {
			return false
		}
	}
	return true
}

// IsStraight reports whether the cards form one run of consecutive values and
// returns the top value of that run. The Ace plays low only in the wheel
// (A-2-3-4-5), whose top is the Five.
func IsStraight(cards ...Card) (Value, bool) {
	n := len(cards)
	if n == 0 || n > NumValues {
		return 0, false
	}
	var ords [NumValues]int
	hasAce := false
	for i, c := range cards {
		ords[i] = c.Value().StraightOrdinal()
		hasAce = hasAce || c.Value() == Ace
	}
	if top, ok := consecutive(ords[:n]); ok {
		return Value(top - 1), true
	}
	if !hasAce {
		return 0, false
	}
	for i := 0; i < n; i++ {
		if ords[i] == Ace.StraightOrdinal() {
			ords[i] = 0
		}
	}
	if top, ok := consecutive(ords[:n]); ok {
		return Value(top - 1), true
	}
	return 0, false
}

// consecutive sorts ords and reports whether they step by exactly one,
// returning the largest.
func consecutive(ords []int) (int, bool) {
	for i := 1; i < len(ords); i++ {
		o := ords[i]
		j := i - 1
		for j >= 0 && ords[j] > o {
			ords[j+1] = ords[j]
			j--
		}
		ords[j+1] = o
	}
	for i := 1; i < len(ords); i++ {
		if ords[i] != ords[0]+i {
			return 0, false
		}
	}
	return ords[len(ords)-1], true
}

const (
	rankBits  = 0x1FFF
	wheelMask = 0x100F // Ace + 2-3-4-5
)

// straightHighMask returns the top value of the best straight in a 13-bit rank
// mask.
func straightHighMask(mask uint16) (Value, bool) {
	mask &= rankBits
	// Bitwise cascade identifies consecutive sequences in one pass.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		return Value(bits.Len16(seq) - 1 + 4), true
	}
	if mask&wheelMask == wheelMask {
		return Five, true
	}
	return 0, false
}

// RunWindow is one five-value straight window of a rank-run scan.
type RunWindow struct {
	Top     Value
	Missing uint16 // rank mask of the window values absent from the scanned set
}

// MissingCount returns how many values the window still needs. Zero means the
// straight is already made, one or two means a holding can complete it.
func (w RunWindow) MissingCount() int {
	return bits.OnesCount16(w.Missing)
}

// MissingValues returns the absent values, highest first.
func (w RunWindow) MissingValues() []Value {
	return valuesDesc(w.Missing)
}

// NumRunWindows is the number of distinct straights: Ace-high down to the wheel.
const NumRunWindows = 10

// windowMask returns the rank mask of the straight topped by top.
func windowMask(top Value) uint16 {
	if top == Five {
		return wheelMask
	}
	return 0x1F << (top - 4)
}

// ScanRuns slides a five-value window across present (a 13-bit rank mask)
// from the Ace-high straight down to the wheel. Windows come back in that
// order so the first completable window is always the strongest.
func ScanRuns(present uint16) [NumRunWindows]RunWindow {
	var out [NumRunWindows]RunWindow
	for i := range out {
		top := Ace - Value(i)
		w := windowMask(top)
		out[i] = RunWindow{Top: top, Missing: w &^ present}
	}
	return out
}

// firstCompletable returns the strongest window needing at most maxMissing values.
func firstCompletable(present uint16, maxMissing int) (RunWindow, bool) {
	for _, w := range ScanRuns(present) {
		if w.MissingCount() <= maxMissing {
			return w, true
		}
	}
	return RunWindow{}, false
}

// valuesDesc lists the values of a rank mask, highest first.
func valuesDesc(mask uint16) []Value {
	vals := make([]Value, 0, bits.OnesCount16(mask))
	for mask &= rankBits; mask != 0; {
		top := bits.Len16(mask) - 1
		vals = append(vals, Value(top))
		mask &^= 1 << top
	}
	return vals
}

// highestValue returns the highest value in a rank mask.
func highestValue(mask uint16) (Value, bool) {
	mask &= rankBits
	if mask == 0 {
		return 0, false
	}
	return Value(bits.Len16(mask) - 1), true
}
