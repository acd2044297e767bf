package poker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardDisplay(t *testing.T) {
	t.Parallel()
	tests := []struct {
		card string
		mode DisplayMode
		want string
	}{
		{"As", DisplayASCII, "As"},
		{"As", DisplayUnicode, "A ♠"},
		{"Th", DisplayUnicode, "T ♥"},
		{"2d", DisplayUnicode, "2 ♦"},
		{"7c", DisplayColoredUnicode, "7 ♣"},
		{"Ks", DisplayColoredEmoji, "K♠️"},
		{"Qh", DisplayColoredEmoji, "Q♥️"},
	}

	for _, tc := range tests {
		t.Run(tc.card+"/"+tc.mode.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MustParseCard(tc.card).Display(tc.mode))
		})
	}
}

func TestColoredRedSuits(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"Ah", "9d"} {
		out := MustParseCard(s).Display(DisplayColoredUnicode)
		assert.Contains(t, out, "\x1b[")
		assert.Contains(t, out, unicodeSuits[MustParseCard(s).Suit()])
	}
	assert.NotContains(t, MustParseCard("As").Display(DisplayColoredUnicode), "\x1b[")
}

func TestFormatCards(t *testing.T) {
	t.Parallel()

	cards := []Card{MustParseCard("As"), MustParseCard("Kc")}
	assert.Equal(t, "As Kc", FormatCards(DisplayASCII, cards...))
	assert.Equal(t, "A ♠  K ♣", FormatCards(DisplayUnicode, cards...))
	assert.Empty(t, FormatCards(DisplayUnicode))

	// ASCII output parses back.
	parsed, err := ParseCards(FormatCards(DisplayASCII, cards...))
	require.NoError(t, err)
	assert.Equal(t, cards, parsed)
}

func TestParseDisplayMode(t *testing.T) {
	t.Parallel()

	for _, m := range []DisplayMode{DisplayASCII, DisplayUnicode, DisplayColoredUnicode, DisplayColoredEmoji} {
		got, err := ParseDisplayMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := ParseDisplayMode("Colour")
	require.NoError(t, err)
	assert.Equal(t, DisplayColoredUnicode, got)

	_, err = ParseDisplayMode("sixel")
	assert.Error(t, err)
}

func TestDeckDisplay(t *testing.T) {
	t.Parallel()

	deck := NewDeck(nil)
	out := deck.Display(DisplayASCII, 13)
	for _, c := range []string{"As", "Kh", "Qd", "Jc", "2s"} {
		assert.Contains(t, out, c)
	}
	assert.Len(t, strings.Split(out, "\n"), 4)

	uni := deck.Display(DisplayUnicode, 13)
	for _, glyph := range []string{"♠", "♥", "♦", "♣"} {
		assert.Contains(t, uni, glyph)
	}
}
