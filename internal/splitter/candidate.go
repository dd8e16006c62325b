package splitter

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Kind tells how a split point was found.
type Kind int

const (
	KindPunctuation Kind = iota
	KindConjunction
	KindCompound
)

func (k Kind) String() string {
	switch k {
	case KindPunctuation:
		return "punctuation"
	case KindConjunction:
		return "conjunction"
	case KindCompound:
		return "compound"
	default:
		return "unknown"
	}
}

// Punctuation priorities, above every conjunction tier.
const (
	PrioritySemicolon = 5
	PriorityColon     = 4
	PriorityComma     = 3

	// CompoundBonus is added on top of comma + conjunction tier when a
	// conjunction directly follows a comma.
	CompoundBonus = 1
)

var punctuation = map[rune]int{
	';': PrioritySemicolon,
	':': PriorityColon,
	',': PriorityComma,
	'—': PriorityComma,
	'–': PriorityComma,
	'…': PriorityComma,
}

// SplitPoint is a candidate break. The sentence is cut at Position+Trailing:
// the punctuation mark and the blanks after it stay on the left fragment.
type SplitPoint struct {
	Position int
	Kind     Kind
	Priority int
	Trailing int
	Word     string
}

func (p SplitPoint) cut() int {
	return p.Position + p.Trailing
}

type finder struct {
	lex       *lexicon
	detectors Detectors
}

func newFinder(v Vocabulary) *finder {
	lex := compile(v)
	return &finder{lex: lex, detectors: lex.detectors()}
}

// find returns the split points of sentence that survive the protections
// and length floor of round, ordered by position.
func (f *finder) find(sentence string, round Round) []SplitPoint {
	r := round.rules()
	protected := f.protect(sentence, r)
	byPos := make(map[int]SplitPoint)
	keep := func(p SplitPoint) {
		if cur, ok := byPos[p.Position]; ok && cur.Priority >= p.Priority {
			return
		}
		byPos[p.Position] = p
	}

	for i, ch := range sentence {
		prio, ok := punctuation[ch]
		if !ok || protected[i] {
			continue
		}
		size := utf8.RuneLen(ch)
		keep(SplitPoint{
			Position: i,
			Kind:     KindPunctuation,
			Priority: prio,
			Trailing: skipBlanks(sentence, i+size) - i,
			Word:     string(ch),
		})
	}

	for _, c := range f.lex.conjunctions {
		for _, loc := range c.re.FindAllStringIndex(sentence, -1) {
			at := loc[0]
			if protected[at] {
				continue
			}
			if prev := lastNonBlank(sentence, at); prev >= 0 && sentence[prev] == ',' && !protected[prev] {
				keep(SplitPoint{
					Position: prev,
					Kind:     KindCompound,
					Priority: PriorityComma + c.priority + CompoundBonus,
					Trailing: at - prev,
					Word:     c.word,
				})
				continue
			}
			keep(SplitPoint{
				Position: at,
				Kind:     KindConjunction,
				Priority: c.priority,
				Word:     c.word,
			})
		}
	}

	points := make([]SplitPoint, 0, len(byPos))
	for _, p := range byPos {
		if balanced(sentence, p.cut(), r.minFragment) {
			points = append(points, p)
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Position < points[j].Position })
	return points
}

// protect marks every byte covered by a zone active in the round.
func (f *finder) protect(sentence string, r rules) []bool {
	active := []Detector{f.detectors.Numeric}
	if r.clause {
		active = append(active, f.detectors.Clause)
	}
	if r.enumeration {
		active = append(active, f.detectors.Enumeration)
	}
	if r.fixedPhrase {
		active = append(active, f.detectors.FixedPhrase)
	}
	if r.abbreviation {
		active = append(active, f.detectors.Abbreviation)
	}

	protected := make([]bool, len(sentence))
	for _, d := range active {
		for _, z := range d.Detect(sentence) {
			for i := max(z.Start, 0); i < z.End && i < len(protected); i++ {
				protected[i] = true
			}
		}
	}
	return protected
}

// balanced reports whether both sides of a cut keep at least minLen runes.
func balanced(sentence string, cut, minLen int) bool {
	if minLen < 1 {
		minLen = 1
	}
	left, right := halves(sentence, cut)
	return utf8.RuneCountInString(left) >= minLen && utf8.RuneCountInString(right) >= minLen
}

func halves(sentence string, cut int) (string, string) {
	return strings.TrimSpace(sentence[:cut]), strings.TrimSpace(sentence[cut:])
}
