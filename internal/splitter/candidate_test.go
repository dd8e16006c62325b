package splitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	longClauses   = "This is a very long sentence that contains multiple clauses and should be split into shorter, more manageable parts."
	projectReview = "The project was successful, however, we need to improve the quality, and we should also consider the cost."
)

func positions(points []SplitPoint) []int {
	var out []int
	for _, p := range points {
		out = append(out, p.Position)
	}
	return out
}

func TestFindRoundsRelaxProtections(t *testing.T) {
	f := newFinder(DefaultVocabulary())
	that := strings.Index(longClauses, "that")
	and := strings.Index(longClauses, "and")
	comma := strings.Index(longClauses, ",")

	tests := []struct {
		round Round
		want  []int
	}{
		{RoundStrict, []int{and}},
		{RoundNoClause, []int{that, and}},
		{RoundNoEnumeration, []int{that, and, comma}},
	}

	for _, tt := range tests {
		t.Run(tt.round.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, positions(f.find(longClauses, tt.round)))
		})
	}
}

func TestFindCompound(t *testing.T) {
	f := newFinder(DefaultVocabulary())
	points := f.find(projectReview, RoundStrict)
	require.Len(t, points, 3)

	assert.Equal(t, SplitPoint{Position: 26, Kind: KindCompound, Priority: 6, Trailing: 2, Word: "however"}, points[0])
	assert.Equal(t, SplitPoint{Position: 35, Kind: KindPunctuation, Priority: PriorityComma, Trailing: 2, Word: ","}, points[1])
	assert.Equal(t, SplitPoint{Position: 67, Kind: KindCompound, Priority: 4, Trailing: 2, Word: "and"}, points[2])
}

func TestFindWholeWordsOnly(t *testing.T) {
	f := newFinder(DefaultVocabulary())
	s := "My old android phone kept crashing all afternoon and the new one was not much better either."

	points := f.find(s, RoundStrict)
	require.Len(t, points, 1)
	assert.Equal(t, strings.Index(s, " and ")+1, points[0].Position)
	assert.Equal(t, KindConjunction, points[0].Kind)
}

func TestFindNeverBreaksNumbers(t *testing.T) {
	f := newFinder(DefaultVocabulary())

	for _, s := range []string{
		"The cost is $3,000 and it is too high.",
		"The renovation of the old library cost the city council $3,000,000 and it is still far too expensive for most residents.",
	} {
		start := strings.Index(s, "$")
		end := start + strings.IndexByte(s[start:], ' ')
		for round := RoundStrict; round <= RoundLastResort; round++ {
			for _, p := range f.find(s, round) {
				assert.False(t, p.Position >= start && p.Position < end, "round %s split inside number at %d", round, p.Position)
			}
		}
	}
}

func TestFindKeepsListsAtStrictRound(t *testing.T) {
	f := newFinder(DefaultVocabulary())
	s := "We bought apples, bananas, oranges and grapes at the market, because the whole family wanted fresh fruit for the long trip."
	listEnd := strings.Index(s, " at the market")

	points := f.find(s, RoundStrict)
	require.NotEmpty(t, points)
	for _, p := range points {
		assert.False(t, p.Position < listEnd, "split inside the list at %d (%s)", p.Position, p.Word)
	}

	relaxed := f.find(s, RoundNoEnumeration)
	assert.Contains(t, positions(relaxed), strings.Index(s, ","))
}

func TestFindDropsShortFragments(t *testing.T) {
	f := newFinder(DefaultVocabulary())
	s := "Yes, and then we all went home together after the very long meeting finally ended."

	for _, p := range f.find(s, RoundStrict) {
		left, right := halves(s, p.cut())
		assert.GreaterOrEqual(t, len(left), 15)
		assert.GreaterOrEqual(t, len(right), 15)
	}
}

func TestFindCustomVocabulary(t *testing.T) {
	vocab := DefaultVocabulary()
	vocab.High = append(vocab.High, "afterwards")
	f := newFinder(vocab)
	s := "We cleaned the whole kitchen together afterwards we watched a film on the sofa."

	points := f.find(s, RoundStrict)
	require.Len(t, points, 1)
	assert.Equal(t, "afterwards", points[0].Word)
	assert.Equal(t, PriorityHigh, points[0].Priority)
}
