package poker

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DisplayMode selects how cards are rendered for people.
type DisplayMode uint8

const (
	// DisplayASCII renders "As". It is the only mode that round-trips through ParseCard.
	DisplayASCII DisplayMode = iota
	// DisplayUnicode renders "A ♠".
	DisplayUnicode
	// DisplayColoredUnicode renders "A ♥" with red hearts and diamonds.
	DisplayColoredUnicode
	// DisplayColoredEmoji renders "A♥️" using emoji presentation glyphs.
	DisplayColoredEmoji
)

var displayModeNames = [...]string{"ascii", "unicode", "color", "emoji"}

// String returns the configuration name of the mode.
func (m DisplayMode) String() string {
	if int(m) < len(displayModeNames) {
		return displayModeNames[m]
	}
	return fmt.Sprintf("DisplayMode(%d)", m)
}

// IsUnicode reports whether the mode separates value and suit with a space.
func (m DisplayMode) IsUnicode() bool {
	return m == DisplayUnicode || m == DisplayColoredUnicode
}

// ParseDisplayMode resolves a configuration name ("ascii", "unicode", "color", "emoji").
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascii", "":
		return DisplayASCII, nil
	case "unicode":
		return DisplayUnicode, nil
	case "color", "colour", "colored", "coloured":
		return DisplayColoredUnicode, nil
	case "emoji":
		return DisplayColoredEmoji, nil
	}
	return DisplayASCII, fmt.Errorf("unknown display mode %q", s)
}

// The renderer is pinned to the basic ANSI profile so coloured output does
// not depend on the terminal we happen to run under.
var redSuit = func() lipgloss.Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return r.NewStyle().Foreground(lipgloss.Color("9"))
}()

var (
	unicodeSuits = [NumSuits]string{"♠", "♥", "♦", "♣"}
	emojiSuits   = [NumSuits]string{"♠️", "♥️", "♦️", "♣️"}
)

// Display renders the suit in the given mode.
func (s Suit) Display(mode DisplayMode) string {
	if !s.Valid() {
		return "?"
	}
	switch mode {
	case DisplayUnicode:
		return unicodeSuits[s]
	case DisplayColoredUnicode:
		if s.IsRed() {
			return redSuit.Render(unicodeSuits[s])
		}
		return unicodeSuits[s]
	case DisplayColoredEmoji:
		return emojiSuits[s]
	default:
		return s.String()
	}
}

// Display renders the card in the given mode.
func (c Card) Display(mode DisplayMode) string {
	if mode.IsUnicode() {
		return c.Value().String() + " " + c.Suit().Display(mode)
	}
	return c.Value().String() + c.Suit().Display(mode)
}

// FormatCards renders cards in order, separated by one space in ASCII mode
// and two spaces otherwise.
func FormatCards(mode DisplayMode, cards ...Card) string {
	delim := "  "
	if mode == DisplayASCII {
		delim = " "
	}
	var b strings.Builder
	for i, c := range cards {
		if i > 0 {
			b.WriteString(delim)
		}
		b.WriteString(c.Display(mode))
	}
	return b.String()
}
