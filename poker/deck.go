package poker

import (
	rand "math/rand/v2"
	"strings"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// NewSeededRand returns a *rand.Rand seeded deterministically from seed so
// that deals can be replayed.
func NewSeededRand(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Deck represents a standard 52-card deck
type Deck struct {
	cards [NumCards]Card
	next  int
	rng   *rand.Rand // nil uses the global source
}

// NewDeck creates a deck in canonical order (2s 2h 2d 2c 3s ... Ac).
// Call Shuffle before dealing.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Reset restores canonical order and puts every card back.
func (d *Deck) Reset() {
	for i := range d.cards {
		d.cards[i] = Card(i)
	}
	d.next = 0
}

// Shuffle puts every card back and shuffles using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil when fewer than n remain.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// DealOne deals a single card from the deck
func (d *Deck) DealOne() (Card, bool) {
	if d.next >= len(d.cards) {
		return 0, false
	}
	card := d.cards[d.next]
	d.next++
	return card, true
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Display renders the undealt cards, perRow to a line.
func (d *Deck) Display(mode DisplayMode, perRow int) string {
	rest := d.cards[d.next:]
	if perRow <= 0 {
		perRow = len(rest)
	}
	var rows []string
	for len(rest) > 0 {
		n := min(perRow, len(rest))
		rows = append(rows, FormatCards(mode, rest[:n]...))
		rest = rest[n:]
	}
	return strings.Join(rows, "\n")
}

// Dealer hands out hole cards and community cards from a shuffled deck.
// A single deal never needs more than the 52 cards, so running dry is a
// caller bug and panics.
type Dealer struct {
	deck *Deck
}

// ShuffleAndDeal shuffles the deck and returns a dealer drawing from it.
func (d *Deck) ShuffleAndDeal() *Dealer {
	d.Shuffle()
	return &Dealer{deck: d}
}

// DealCard deals the next card.
func (dl *Dealer) DealCard() Card {
	c, ok := dl.deck.DealOne()
	if !ok {
		panic("poker: dealer ran out of cards")
	}
	return c
}

// DealHole deals two hole cards.
func (dl *Dealer) DealHole() Hole {
	return UncheckedSet[Hole](dl.DealCard(), dl.DealCard())
}

// DealFlop deals the flop.
func (dl *Dealer) DealFlop() Flop {
	return UncheckedSet[Flop](dl.DealCard(), dl.DealCard(), dl.DealCard())
}

// DealBoard deals community cards up to the given street.
func (dl *Dealer) DealBoard(stage Stage) (Board, error) {
	if stage == StagePreflop {
		return Board{}, nil
	}
	b := FlopBoard(dl.DealFlop())
	var err error
	if stage >= StageTurn {
		if b, err = b.Turn(dl.DealCard()); err != nil {
			return Board{}, err
		}
	}
	if stage >= StageRiver {
		if b, err = b.River(dl.DealCard()); err != nil {
			return Board{}, err
		}
	}
	return b, nil
}
