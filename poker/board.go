package poker

import (
	"fmt"
	"strings"
)

// Stage is the street a board has reached.
type Stage uint8

const (
	StagePreflop Stage = iota
	StageFlop
	StageTurn
	StageRiver
)

func (s Stage) String() string {
	switch s {
	case StagePreflop:
		return "preflop"
	case StageFlop:
		return "flop"
	case StageTurn:
		return "turn"
	case StageRiver:
		return "river"
	default:
		return "unknown"
	}
}

// ParseStage resolves a street name.
func ParseStage(s string) (Stage, error) {
	switch strings.ToLower(s) {
	case "preflop":
		return StagePreflop, nil
	case "flop":
		return StageFlop, nil
	case "turn":
		return StageTurn, nil
	case "river":
		return StageRiver, nil
	}
	return StagePreflop, fmt.Errorf("unknown street %q", s)
}

// boardSize is the number of community cards at each stage.
var boardSize = [...]int{StagePreflop: 0, StageFlop: 3, StageTurn: 4, StageRiver: 5}

// Board is the community cards of one hand. It only grows: a flop, then a
// turn card, then a river card. Transitions return a new Board and leave the
// receiver untouched.
type Board struct {
	cards [5]Card
	stage Stage
}

// NewBoard builds a board from 0, 3, 4 or 5 distinct cards.
func NewBoard(cards ...Card) (Board, error) {
	var b Board
	switch len(cards) {
	case 0:
		b.stage = StagePreflop
	case 3:
		b.stage = StageFlop
	case 4:
		b.stage = StageTurn
	case 5:
		b.stage = StageRiver
	default:
		return Board{}, fmt.Errorf("%w: got %d cards", ErrBoardSize, len(cards))
	}
	var seen Hand
	for i, c := range cards {
		if !c.Valid() {
			return Board{}, fmt.Errorf("%w: card key %d", ErrInvalidToken, uint8(c))
		}
		if seen.Has(c) {
			return Board{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen = seen.Add(c)
		b.cards[i] = c
	}
	return b, nil
}

// FlopBoard returns the board holding only the flop. Flop cards are already distinct.
func FlopBoard(f Flop) Board {
	return Board{cards: [5]Card{f[0], f[1], f[2]}, stage: StageFlop}
}

// ParseBoard parses whitespace separated card tokens into a board.
func ParseBoard(s string) (Board, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Board{}, err
	}
	return NewBoard(cards...)
}

// MustParseBoard parses a board and panics on error (for tests and fixtures).
func MustParseBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse board %q: %v", s, err))
	}
	return b
}

// Turn adds the turn card to a flop board.
func (b Board) Turn(c Card) (Board, error) {
	return b.advance(StageFlop, c)
}

// River adds the river card to a turn board.
func (b Board) River(c Card) (Board, error) {
	return b.advance(StageTurn, c)
}

func (b Board) advance(from Stage, c Card) (Board, error) {
	if b.stage != from {
		return Board{}, fmt.Errorf("%w: cannot deal the %s on a %s board", ErrIllegalTransition, from+1, b.stage)
	}
	if !c.Valid() {
		return Board{}, fmt.Errorf("%w: card key %d", ErrInvalidToken, uint8(c))
	}
	if b.Hand().Has(c) {
		return Board{}, fmt.Errorf("%w: %s already on the board", ErrDuplicateCard, c)
	}
	next := b
	next.cards[b.Len()] = c
	next.stage = from + 1
	return next, nil
}

// Stage returns the street the board has reached.
func (b Board) Stage() Stage {
	return b.stage
}

// Len returns the number of community cards.
func (b Board) Len() int {
	return boardSize[b.stage]
}

// Cards returns the community cards in dealing order.
func (b Board) Cards() []Card {
	cards := make([]Card, b.Len())
	copy(cards, b.cards[:])
	return cards
}

// Hand returns the community cards as a bitset.
func (b Board) Hand() Hand {
	return NewHand(b.cards[:b.Len()]...)
}

// Five returns the full board once the river is out.
func (b Board) Five() (FiveCards, bool) {
	if b.stage != StageRiver {
		return FiveCards{}, false
	}
	return FiveCards(b.cards), true
}

// String renders the board in ASCII, e.g. "Ah Kd 7c".
func (b Board) String() string {
	return FormatCards(DisplayASCII, b.cards[:b.Len()]...)
}

// Display renders the board in the given mode.
func (b Board) Display(mode DisplayMode) string {
	return FormatCards(mode, b.cards[:b.Len()]...)
}
