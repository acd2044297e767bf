package poker

import (
	"context"
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceScore evaluates seven cards with an independent evaluator.
func referenceScore(t testing.TB, s SevenCards) int16 {
	t.Helper()
	suits := [NumSuits]ph.Suit{Spades: ph.Spade, Hearts: ph.Heart, Diamonds: ph.Diamond, Clubs: ph.Club}
	// Ranks run 1..13 with the ace low.
	faces := map[Value]ph.Rank{Jack: 11, Queen: 12, King: 13, Ace: 1}
	var hand [7]ph.Card
	for i, c := range s {
		rank, ok := faces[c.Value()]
		if !ok {
			rank = ph.Rank(c.Value() + 2)
		}
		pc, err := ph.MakeCard(suits[c.Suit()], rank)
		require.NoError(t, err)
		hand[i] = pc
	}
	return ph.Eval7(&hand)
}

func randomSevens(seed int64, n int) []SevenCards {
	deck := NewDeck(NewSeededRand(seed))
	out := make([]SevenCards, n)
	for i := range out {
		deck.Shuffle()
		out[i] = UncheckedSet[SevenCards](deck.Deal(7)...)
	}
	return out
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func TestBestHandMatchesReference(t *testing.T) {
	t.Parallel()

	hands := randomSevens(42, 4000)
	for i := 1; i < len(hands); i++ {
		a, b := hands[i-1], hands[i]
		got := BestHand(a).Compare(BestHand(b))
		want := sign(int(referenceScore(t, a)) - int(referenceScore(t, b)))
		require.Equal(t, want, got, "%s vs %s", a, b)
	}
}

func TestReferenceScoreOrdering(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		stronger string
		weaker   string
	}{
		{"broadway beats wheel", "As Kd Qc Jh Th 3s 2d", "As 2d 3c 4h 5s 9d Jc"},
		{"aces beat kings", "As Ad 9c 7h 4s 3d 2c", "Ks Kd 9c 7h 4s 3d 2c"},
		{"ace high beats king high", "As Qd 9c 7h 4s 3d 2c", "Ks Qd 9c 7h 4s 3d 2c"},
		{"royal beats king high straight flush", "As Ks Qs Js Ts 2d 3c", "Ks Qs Js Ts 9s 2d 3c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			stronger := MustParseSet[SevenCards](tc.stronger)
			weaker := MustParseSet[SevenCards](tc.weaker)
			assert.Greater(t, referenceScore(t, stronger), referenceScore(t, weaker))
			assert.True(t, BestHand(stronger).Beats(BestHand(weaker)))
		})
	}
}

func TestEvalHandMatchesBestHand(t *testing.T) {
	t.Parallel()

	for _, s := range randomSevens(7, 5000) {
		require.Equal(t, BestHand(s), evalHand(HandOf(s)), "%s", s)
	}
	// Five and six cards go through the same mask evaluator.
	for _, s := range randomSevens(8, 500) {
		five := UncheckedSet[FiveCards](s[:5]...)
		require.Equal(t, RankFive(five), evalHand(HandOf(five)), "%s", five)
	}
}

func TestBestHandIsMaxOfSubsets(t *testing.T) {
	t.Parallel()

	for _, s := range randomSevens(3, 300) {
		best := BestHand(s)
		for i := range fiveOfSeven {
			assert.False(t, RankFive(s.subset(i)).Beats(best))
		}
	}
}

func TestBestHand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  string
	}{
		{"two pair from three pairs", "Ks Kh 7d 7c 3s 3h 2d", "Two Pair, Kings and Sevens with 3"},
		{"wheel with a six is a six-high straight", "As 2d 3c 4h 5s 6d Kc", "Straight, Six high"},
		{"flush beats straight", "2h 5h 9h Jh Kh Tc Qd", "Flush, K J 9 5 2"},
		{"two trips make a full house", "9s 9h 9d 4c 4d 4h Ac", "Full House, Nines full of Fours"},
		{"quads take the best kicker", "6s 6h 6d 6c Kc Qd 2h", "Four of a Kind, Sixes with K"},
		{"straight flush over flush", "4c 5c 6c 7c 8c Ac Kc", "Straight Flush, Eight high"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, BestHand(MustParseSet[SevenCards](tc.cards)).String())
		})
	}
}

func TestBestHandParallel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	for _, s := range randomSevens(11, 200) {
		for _, workers := range []int{0, 1, 3, 8, 64} {
			got, err := BestHandParallel(ctx, s, workers)
			require.NoError(t, err)
			require.Equal(t, BestHand(s), got)
		}
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err := BestHandParallel(cancelled, randomSevens(1, 1)[0], 4)
	require.ErrorIs(t, err, context.Canceled)
}

func TestShowdown(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		board  string
		a, b   string
		winner Winner
		value  string
	}{
		{"higher pair wins", "2s 7d 9c Jh 4s", "Ah Ad", "Kh Kd", WinnerA, "One Pair, Aces with J 9 7"},
		{"b makes a flush", "2s 7s 9s Jh 4d", "Ah Ad", "Ks 3s", WinnerB, "Flush, K 9 7 3 2"},
		{"board plays", "As Ks Qs Js Ts", "2h 3h", "4d 5d", Chop, "Royal Flush"},
		{"kicker decides", "Ah 9d 7c 4s 2h", "Ac Qd", "Ad Jd", WinnerA, "One Pair, Aces with Q 9 7"},
		{"same straight chops", "5s 6d 7c 8h Kd", "9h 2c", "9d 3c", Chop, "Straight, Nine high"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			board := MustParseSet[FiveCards](tc.board)
			a, b := MustParseSet[Hole](tc.a), MustParseSet[Hole](tc.b)
			value, winner, err := Showdown(board, a, b)
			require.NoError(t, err)
			assert.Equal(t, tc.winner, winner)
			assert.Equal(t, tc.value, value.String())

			// Swapping sides mirrors the outcome.
			_, swapped, err := Showdown(board, b, a)
			require.NoError(t, err)
			switch tc.winner {
			case WinnerA:
				assert.Equal(t, WinnerB, swapped)
			case WinnerB:
				assert.Equal(t, WinnerA, swapped)
			default:
				assert.Equal(t, Chop, swapped)
			}
		})
	}
}

func TestShowdownRejectsDuplicates(t *testing.T) {
	t.Parallel()

	board := MustParseSet[FiveCards]("2s 7d 9c Jh 4s")
	_, _, err := Showdown(board, MustParseSet[Hole]("Ah Ad"), MustParseSet[Hole]("Ah Kd"))
	require.ErrorIs(t, err, ErrDuplicateCard)
	_, _, err = Showdown(board, MustParseSet[Hole]("2s Ad"), MustParseSet[Hole]("Ah Kd"))
	require.ErrorIs(t, err, ErrDuplicateCard)

	cmp, err := CompareHoles(board, MustParseSet[Hole]("Ah Ad"), MustParseSet[Hole]("Kh Kd"))
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)
}

func TestIsUnbeatable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		board string
		hole  string
		want  bool
	}{
		{"royal flush", "Ts Js Qs 2d 7h", "As Ks", true},
		{"board royal", "Ts Js Qs Ks As", "2d 3d", true},
		{"quads with pocket pair", "9s 9h 2d 5c Kh", "9d 9c", true},
		{"quads under a higher board pair", "9s 9h Kd Kc 2h", "9d 9c", false},
		{"board quads best kicker", "7s 7h 7d 7c 2h", "Ad 3c", true},
		{"board quads weak kicker", "7s 7h 7d 7c 2h", "Kd 3c", false},
		{"quads facing a straight flush draw", "9s 9h 8h 7h 2c", "9d 9c", false},
		{"broadway on a rainbow board", "Ts Jh Qd 2c 5s", "Ah Kc", true},
		{"broadway with a flush possible", "Ts Jh Qh 2h 5s", "As Kc", false},
		{"broadway on a paired board", "Ts Jh Qd Qc 5s", "Ah Kc", false},
		{"lower straight", "9s Th Jd 2c 5s", "Qh Kc", false},
		{"overlapping hole", "Ts Jh Qd 2c 5s", "Ts Kc", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			board := MustParseSet[FiveCards](tc.board)
			hole := Hole{MustParseCard(tc.hole[:2]), MustParseCard(tc.hole[3:])}
			assert.Equal(t, tc.want, IsUnbeatable(board, hole))
		})
	}
}

func BenchmarkBestHand(b *testing.B) {
	s := MustParseSet[SevenCards]("Ks Kh 7d 7c 3s 3h 2d")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BestHand(s)
	}
}

func BenchmarkEvalHand(b *testing.B) {
	h := HandOf(MustParseSet[SevenCards]("Ks Kh 7d 7c 3s 3h 2d"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = evalHand(h)
	}
}
