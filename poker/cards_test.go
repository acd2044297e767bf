package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()

	aceSpades := NewCard(Ace, Spades)
	assert.Equal(t, Ace, aceSpades.Value())
	assert.Equal(t, Spades, aceSpades.Suit())
	assert.Equal(t, "As", aceSpades.String())

	twoClubs := NewCard(Deuce, Clubs)
	assert.Equal(t, "2c", twoClubs.String())
	assert.Equal(t, uint8(3), twoClubs.Key())
	assert.Equal(t, uint8(12<<2), aceSpades.Key())
}

func TestValueOrdinals(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Deuce.Ordinal())
	assert.Equal(t, 12, Ace.Ordinal())
	assert.Equal(t, 1, Deuce.StraightOrdinal())
	assert.Equal(t, 13, Ace.StraightOrdinal())
	assert.Equal(t, "Sixes", Six.Plural())
	assert.Equal(t, "Queens", Queen.Plural())
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "As", wantCard: NewCard(Ace, Spades)},
		{name: "two of hearts", input: "2h", wantCard: NewCard(Deuce, Hearts)},
		{name: "king of diamonds", input: "Kd", wantCard: NewCard(King, Diamonds)},
		{name: "ten of clubs", input: "Tc", wantCard: NewCard(Ten, Clubs)},
		{name: "nine of spades", input: "9s", wantCard: NewCard(Nine, Spades)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "lowercase rank", input: "as", wantErr: true},
		{name: "uppercase suit", input: "AS", wantErr: true},
		{name: "ten as 10", input: "10", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
		{name: "unicode suit", input: "A♠", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCard, card)
		})
	}
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for key := Card(0); key < NumCards; key++ {
		require.True(t, key.Valid())
		str := key.String()
		assert.False(t, seen[str], "duplicate card %s", str)
		seen[str] = true

		parsed, err := ParseCard(str)
		require.NoError(t, err)
		assert.Equal(t, key, parsed, "round-trip failed for %s", str)
		assert.Equal(t, key, NewCard(key.Value(), key.Suit()))
	}
	assert.Len(t, seen, NumCards)
	assert.False(t, Card(NumCards).Valid())
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("  As Kd\t7c ")
	require.NoError(t, err)
	assert.Equal(t, []Card{MustParseCard("As"), MustParseCard("Kd"), MustParseCard("7c")}, cards)

	_, err = ParseCards("As Zd")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestHandOperations(t *testing.T) {
	t.Parallel()
	aceSpades := MustParseCard("As")
	kingHearts := MustParseCard("Kh")
	queenDiamonds := MustParseCard("Qd")

	hand := NewHand(aceSpades, kingHearts)
	assert.True(t, hand.Has(aceSpades))
	assert.True(t, hand.Has(kingHearts))
	assert.False(t, hand.Has(queenDiamonds))
	assert.Equal(t, 2, hand.Count())

	hand = hand.Add(queenDiamonds)
	assert.True(t, hand.Has(queenDiamonds))
	assert.Equal(t, 3, hand.Count())
	assert.Equal(t, []Card{queenDiamonds, kingHearts, aceSpades}, hand.Cards())
	assert.Equal(t, "Qd Kh As", hand.String())
}

func TestHandMasks(t *testing.T) {
	t.Parallel()

	var spades []Card
	for v := Deuce; v <= Ace; v++ {
		spades = append(spades, NewCard(v, Spades))
	}
	hand := NewHand(spades...)
	assert.Equal(t, uint16(0x1FFF), hand.SuitMask(Spades))
	assert.Zero(t, hand.SuitMask(Hearts))
	assert.Equal(t, suitCards(Spades), hand)

	mixed := NewHand(MustParseCard("2h"), MustParseCard("Ad"), MustParseCard("Ac"), MustParseCard("7s"))
	assert.Equal(t, uint16(1<<Deuce), mixed.SuitMask(Hearts))
	assert.Equal(t, uint16(1<<Ace), mixed.SuitMask(Clubs))
	assert.Equal(t, uint16(1<<Deuce|1<<Seven|1<<Ace), mixed.RankMask())
	assert.Equal(t, 2, mixed.ValueCount(Ace))
	assert.Equal(t, 0, mixed.ValueCount(King))
	assert.Equal(t, 4, valueMask(Ace).Count())
}

func BenchmarkSuitMask(b *testing.B) {
	hand := NewHand(MustParseCard("As"), MustParseCard("Ks"), MustParseCard("7h"), MustParseCard("2c"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = hand.RankMask()
	}
}
