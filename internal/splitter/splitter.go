package splitter

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// recursionContext travels by value through every recursive call.
type recursionContext struct {
	depth int
	round Round
	// origin is the round of the split that produced the current text.
	origin Round
}

func (s *implSplitter) Split(sentence string) ([]string, error) {
	res, err := s.SplitDetailed(sentence)
	if err != nil {
		return nil, err
	}
	return res.Texts(), nil
}

func (s *implSplitter) SplitDetailed(sentence string) (Result, error) {
	if !utf8.ValidString(sentence) {
		return Result{}, fmt.Errorf("%w: sentence is not valid UTF-8", ErrInvalidInput)
	}

	var res Result
	res.Fragments = s.split(sentence, recursionContext{round: RoundStrict}, nil)
	for _, f := range res.Fragments {
		if f.Unsplit {
			res.Degraded = true
			break
		}
	}
	return res, nil
}

func (s *implSplitter) SplitLines(lines []string) ([]string, error) {
	var out []string
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts, err := s.Split(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, parts...)
	}
	return out, nil
}

func (s *implSplitter) split(sentence string, rc recursionContext, out []Fragment) []Fragment {
	if s.terminal(sentence, rc) {
		return append(out, s.fragment(sentence, rc))
	}

	length := utf8.RuneCountInString(sentence)
	for ; rc.round <= Round(s.opts.MaxDegradationRound); rc.round++ {
		if rc.round.rules().lastResort && length <= s.opts.LengthThreshold {
			break
		}
		best, ok := selectBest(s.finder.find(sentence, rc.round), len(sentence))
		if !ok {
			continue
		}

		left, right := halves(sentence, best.cut())
		next := recursionContext{depth: rc.depth + 1, round: RoundStrict, origin: rc.round}
		out = s.split(left, next, out)
		return s.split(right, next, out)
	}
	return append(out, s.fragment(sentence, rc))
}

// terminal is checked before any split is attempted. The input line is
// gated by LengthThreshold, fragments by MinRecursiveLength.
func (s *implSplitter) terminal(sentence string, rc recursionContext) bool {
	if rc.depth >= s.opts.MaxDepth {
		return true
	}
	length := utf8.RuneCountInString(sentence)
	if rc.depth == 0 {
		return length <= s.opts.LengthThreshold
	}
	return length < s.opts.MinRecursiveLength
}

func (s *implSplitter) fragment(text string, rc recursionContext) Fragment {
	return Fragment{
		Text:    text,
		Depth:   rc.depth,
		Round:   rc.origin,
		Unsplit: utf8.RuneCountInString(text) > s.opts.LengthThreshold,
	}
}
