package splitter

import (
	"regexp"
	"strings"
)

// Conjunction tier priorities. Higher breaks are preferred.
const (
	PriorityHigh   = 2
	PriorityMedium = 1
	PriorityLow    = 0
)

// Vocabulary holds the word lists that drive candidate detection. It is
// copied and compiled by New, so callers may reuse or alter their value
// without affecting a running Splitter.
type Vocabulary struct {
	High   []string
	Medium []string
	Low    []string

	// FixedPhrases are idioms whose interior must never be broken.
	FixedPhrases []string
	// Abbreviations are matched without their trailing period.
	Abbreviations []string
	// RelativePronouns introduce restrictive clauses when not preceded by a comma.
	RelativePronouns []string
	// ClauseOpeners cannot start an enumeration item.
	ClauseOpeners []string
}

// DefaultVocabulary returns the English word lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		High: []string{
			"however", "therefore", "moreover", "furthermore", "nevertheless",
			"consequently", "meanwhile", "but", "yet",
		},
		Medium: []string{
			"because", "since", "although", "though", "even though", "unless", "until",
			"while", "whereas", "when", "where", "if", "that", "which", "who", "whom", "whose",
		},
		Low: []string{
			"and", "or", "so", "for", "nor", "then",
			"such as", "as well as", "so that", "in order to", "rather than",
		},
		FixedPhrases: []string{
			"so that", "as well as", "in order to", "such as", "provided that",
			"even though", "as though", "as if", "in case", "rather than",
		},
		Abbreviations: []string{
			"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "vs", "etc",
			"inc", "ltd", "corp", "vol", "fig", "approx", "dept",
		},
		RelativePronouns: []string{"that", "which", "who", "whom", "whose"},
		ClauseOpeners: []string{
			"a", "an", "the", "this", "that", "these", "those",
			"i", "you", "he", "she", "it", "we", "they", "there",
			"my", "your", "his", "her", "its", "our", "their",
		},
	}
}

type conjunction struct {
	word     string
	priority int
	re       *regexp.Regexp
}

// lexicon is the compiled, read-only form of a Vocabulary.
type lexicon struct {
	conjunctions  []conjunction
	phrases       []*regexp.Regexp
	relatives     *regexp.Regexp
	abbreviations *regexp.Regexp
	// joiners are the single words that may start a conjunction entry.
	joiners map[string]bool
	openers map[string]bool
}

func compile(v Vocabulary) *lexicon {
	lex := &lexicon{
		joiners: make(map[string]bool),
		openers: make(map[string]bool),
	}

	tiers := []struct {
		words    []string
		priority int
	}{
		{v.High, PriorityHigh},
		{v.Medium, PriorityMedium},
		{v.Low, PriorityLow},
	}
	for _, tier := range tiers {
		for _, w := range tier.words {
			fields := strings.Fields(strings.ToLower(w))
			if len(fields) == 0 {
				continue
			}
			lex.conjunctions = append(lex.conjunctions, conjunction{
				word:     strings.Join(fields, " "),
				priority: tier.priority,
				re:       wordPattern(fields...),
			})
			lex.joiners[fields[0]] = true
		}
	}

	for _, p := range v.FixedPhrases {
		if fields := strings.Fields(strings.ToLower(p)); len(fields) > 1 {
			lex.phrases = append(lex.phrases, wordPattern(fields...))
		}
	}

	lex.relatives = alternation(v.RelativePronouns, `\b`)
	lex.abbreviations = alternation(v.Abbreviations, `\.`)

	for _, w := range v.ClauseOpeners {
		lex.openers[strings.ToLower(w)] = true
	}
	return lex
}

// wordPattern matches the words as a whole-word, case-insensitive phrase
// with any run of blanks between them.
func wordPattern(words ...string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b` + strings.Join(quoted, `\s+`) + `\b`)
}

// alternation returns nil for an empty word list.
func alternation(words []string, suffix string) *regexp.Regexp {
	var quoted []string
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(w)))
		}
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)` + suffix)
}

func (l *lexicon) isClauseWord(w string) bool {
	w = strings.ToLower(w)
	return l.openers[w] || l.joiners[w]
}
