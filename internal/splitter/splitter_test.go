package splitter

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSplitter(t *testing.T, opts Options) Splitter {
	t.Helper()
	s, err := New(opts, DefaultVocabulary())
	require.NoError(t, err)
	return s
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     []string
	}{
		{
			name:     "short line is untouched",
			sentence: "I bought apple, banana, orange today.",
			want:     []string{"I bought apple, banana, orange today."},
		},
		{
			name:     "conjunction split",
			sentence: longClauses,
			want: []string{
				"This is a very long sentence that contains multiple clauses",
				"and should be split into shorter, more manageable parts.",
			},
		},
		{
			name:     "recursive split at commas",
			sentence: projectReview,
			want: []string{
				"The project was successful,",
				"however, we need to improve the quality,",
				"and we should also consider the cost.",
			},
		},
		{
			name:     "semicolon beats conjunctions",
			sentence: "We packed the car early in the morning and drove for hours; the kids slept most of the way there.",
			want: []string{
				"We packed the car early in the morning and drove for hours;",
				"the kids slept most of the way there.",
			},
		},
		{
			name:     "numbers stay whole",
			sentence: "The renovation of the old library cost the city council $3,000,000 and it is still far too expensive for most residents.",
			want: []string{
				"The renovation of the old library cost the city council $3,000,000",
				"and it is still far too expensive for most residents.",
			},
		},
		{
			name:     "conjunctions match whole words",
			sentence: "My old android phone kept crashing all afternoon and the new one was not much better either.",
			want: []string{
				"My old android phone kept crashing all afternoon",
				"and the new one was not much better either.",
			},
		},
		{
			name:     "list survives when a clause break exists",
			sentence: "We bought apples, bananas, oranges and grapes at the market, because the whole family wanted fresh fruit for the long trip.",
			want: []string{
				"We bought apples, bananas, oranges and grapes at the market,",
				"because the whole family wanted fresh fruit for the long trip.",
			},
		},
	}

	s := newTestSplitter(t, DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Split(tt.sentence)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, stripSpace(tt.sentence), stripSpace(strings.Join(got, "")))
		})
	}
}

func TestSplitDetailedDepthAndRound(t *testing.T) {
	s := newTestSplitter(t, DefaultOptions())

	res, err := s.SplitDetailed(projectReview)
	require.NoError(t, err)
	require.Len(t, res.Fragments, 3)
	assert.False(t, res.Degraded)

	var depths []int
	for _, f := range res.Fragments {
		depths = append(depths, f.Depth)
		assert.Equal(t, RoundStrict, f.Round)
		assert.False(t, f.Unsplit)
	}
	assert.Equal(t, []int{1, 2, 2}, depths)
}

func TestSplitDegradesPastEnumeration(t *testing.T) {
	sentence := "We carefully packed tents, ropes, lanterns, blankets, stoves, kettles, matches, maps, compasses, torches and snacks today."

	t.Run("default rounds", func(t *testing.T) {
		s := newTestSplitter(t, DefaultOptions())
		res, err := s.SplitDetailed(sentence)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"We carefully packed tents, ropes, lanterns, blankets, stoves,",
			"kettles, matches, maps, compasses, torches and snacks today.",
		}, res.Texts())
		for _, f := range res.Fragments {
			assert.Equal(t, RoundNoEnumeration, f.Round)
		}
		assert.False(t, res.Degraded)
	})

	t.Run("capped rounds", func(t *testing.T) {
		opts := DefaultOptions()
		opts.MaxDegradationRound = int(RoundNoClause)
		s := newTestSplitter(t, opts)
		res, err := s.SplitDetailed(sentence)
		require.NoError(t, err)

		require.Len(t, res.Fragments, 1)
		assert.Equal(t, sentence, res.Fragments[0].Text)
		assert.True(t, res.Fragments[0].Unsplit)
		assert.True(t, res.Degraded)
	})
}

func TestSplitUnsplittable(t *testing.T) {
	sentence := strings.TrimSpace(strings.Repeat("the big grey cat sat on the warm mat all day long ", 10))
	s := newTestSplitter(t, DefaultOptions())

	res, err := s.SplitDetailed(sentence)
	require.NoError(t, err)
	require.Len(t, res.Fragments, 1)
	assert.Equal(t, sentence, res.Fragments[0].Text)
	assert.True(t, res.Degraded)
}

func TestSplitTerminates(t *testing.T) {
	t.Run("punctuation only", func(t *testing.T) {
		sentence := strings.Repeat(",", 1000)
		got, err := newTestSplitter(t, DefaultOptions()).Split(sentence)
		require.NoError(t, err)
		assert.Len(t, got, 16)
		assert.Equal(t, sentence, strings.Join(got, ""))
	})

	t.Run("depth budget", func(t *testing.T) {
		sentence := strings.TrimSpace(strings.Repeat("cats run and ", 40))
		for _, depth := range []int{1, 2, 3, DefaultMaxDepth} {
			opts := DefaultOptions()
			opts.MaxDepth = depth
			res, err := newTestSplitter(t, opts).SplitDetailed(sentence)
			require.NoError(t, err)

			assert.LessOrEqual(t, len(res.Fragments), 1<<depth)
			for _, f := range res.Fragments {
				assert.LessOrEqual(t, f.Depth, depth)
			}
			assert.Equal(t, stripSpace(sentence), stripSpace(strings.Join(res.Texts(), "")))
		}
	})
}

func TestSplitIsStableOnFragments(t *testing.T) {
	s := newTestSplitter(t, DefaultOptions())
	for _, sentence := range []string{longClauses, projectReview} {
		first, err := s.Split(sentence)
		require.NoError(t, err)
		for _, frag := range first {
			again, err := s.Split(frag)
			require.NoError(t, err)
			assert.Equal(t, []string{frag}, again)
		}
	}
}

func TestSplitInvalidUTF8(t *testing.T) {
	s := newTestSplitter(t, DefaultOptions())

	_, err := s.Split("caf\xe9 au lait")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSplitLines(t *testing.T) {
	s := newTestSplitter(t, DefaultOptions())

	got, err := s.SplitLines([]string{"  Short line.  ", "", "   ", projectReview})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Short line.",
		"The project was successful,",
		"however, we need to improve the quality,",
		"and we should also consider the cost.",
	}, got)

	_, err = s.SplitLines([]string{"fine", "bad \xff"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "line 2")
}

func TestSplitConcurrent(t *testing.T) {
	s := newTestSplitter(t, DefaultOptions())
	want, err := s.Split(projectReview)
	require.NoError(t, err)

	done := make(chan []string)
	for i := 0; i < 8; i++ {
		go func() {
			got, _ := s.Split(projectReview)
			done <- got
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}
