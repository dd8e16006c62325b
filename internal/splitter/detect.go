package splitter

import (
	"regexp"
	"strings"
)

// Zone is a half-open byte range [Start, End) of a sentence in which no
// split point may be placed.
type Zone struct {
	Start int
	End   int
}

// Contains reports whether pos lies inside the zone.
func (z Zone) Contains(pos int) bool {
	return pos >= z.Start && pos < z.End
}

// Detector finds protected zones in a sentence. Implementations are pure.
type Detector interface {
	Detect(sentence string) []Zone
}

// DetectorFunc adapts a plain function to Detector.
type DetectorFunc func(sentence string) []Zone

func (f DetectorFunc) Detect(sentence string) []Zone { return f(sentence) }

// Detectors groups every protection rule the finder knows about.
type Detectors struct {
	Numeric      Detector
	FixedPhrase  Detector
	Enumeration  Detector
	Clause       Detector
	Abbreviation Detector
}

// NewDetectors builds the detectors for a vocabulary.
func NewDetectors(v Vocabulary) Detectors {
	return compile(v).detectors()
}

func (l *lexicon) detectors() Detectors {
	return Detectors{
		Numeric:      DetectorFunc(detectNumbers),
		FixedPhrase:  DetectorFunc(l.detectFixedPhrases),
		Enumeration:  DetectorFunc(l.detectEnumerations),
		Clause:       DetectorFunc(l.detectClauseBoundaries),
		Abbreviation: DetectorFunc(l.detectAbbreviations),
	}
}

var (
	numberPattern = regexp.MustCompile(`[$€£¥₹₩]?\d+(?:[.,:]\d+)+`)
	terminalRun   = regexp.MustCompile(`[.!?]+`)
	itemWord      = regexp.MustCompile(`^[\p{L}\p{N}'’-]+`)
)

// maxItemWords bounds an enumeration item; longer runs read as clauses.
const maxItemWords = 3

// detectNumbers protects thousands separators, decimals, clock times and
// currency amounts such as "1,000", "3.14", "10:30" or "$3,000".
func detectNumbers(s string) []Zone {
	var zones []Zone
	for _, loc := range numberPattern.FindAllStringIndex(s, -1) {
		zones = append(zones, Zone{Start: loc[0], End: loc[1]})
	}
	return zones
}

// detectFixedPhrases protects the interior of idioms like "so that". A
// break in front of the phrase stays legal.
func (l *lexicon) detectFixedPhrases(s string) []Zone {
	var zones []Zone
	for _, re := range l.phrases {
		for _, loc := range re.FindAllStringIndex(s, -1) {
			zones = append(zones, Zone{Start: loc[0] + 1, End: loc[1]})
		}
	}
	return zones
}

// detectEnumerations protects commas that separate short list items, as in
// "apple, banana, orange". An item is one to three words that do not open
// a clause; the joining conjunction before the last item is protected too.
func (l *lexicon) detectEnumerations(s string) []Zone {
	var zones []Zone
	for i := 0; i < len(s); i++ {
		if s[i] != ',' {
			continue
		}
		if z, ok := l.enumerationItem(s, i); ok {
			zones = append(zones, z)
		}
	}
	return zones
}

func (l *lexicon) enumerationItem(s string, comma int) (Zone, bool) {
	if comma > 0 && comma+1 < len(s) && isDigit(s[comma-1]) && isDigit(s[comma+1]) {
		return Zone{}, false
	}
	zone := Zone{Start: comma, End: comma + 1}
	words := 0
	for j := comma + 1; ; {
		j = skipBlanks(s, j)
		if j >= len(s) {
			break
		}
		loc := itemWord.FindStringIndex(s[j:])
		if loc == nil {
			break
		}
		w := s[j : j+loc[1]]
		if words == 0 && l.isClauseWord(w) {
			return Zone{}, false
		}
		if words > 0 && l.joiners[strings.ToLower(w)] {
			zone.End = j + loc[1]
			break
		}
		words++
		if words > maxItemWords {
			return Zone{}, false
		}
		j += loc[1]
	}
	if words == 0 {
		return Zone{}, false
	}
	return zone, true
}

// detectClauseBoundaries protects sentence-final punctuation up to the
// first letter of the next sentence, and bare relative pronouns, which
// open restrictive clauses bound to the noun before them.
func (l *lexicon) detectClauseBoundaries(s string) []Zone {
	var zones []Zone
	abbrev := l.abbreviationSpans(s)
	for _, loc := range terminalRun.FindAllStringIndex(s, -1) {
		if inAny(abbrev, loc[0]) {
			continue
		}
		if loc[1] < len(s) && !isBlank(s[loc[1]]) {
			continue
		}
		end := skipBlanks(s, loc[1]) + 1
		if end > len(s) {
			end = len(s)
		}
		zones = append(zones, Zone{Start: loc[0], End: end})
	}

	if l.relatives != nil {
		for _, loc := range l.relatives.FindAllStringIndex(s, -1) {
			if prev := lastNonBlank(s, loc[0]); prev >= 0 && s[prev] == ',' {
				continue
			}
			zones = append(zones, Zone{Start: loc[0], End: loc[0] + 1})
		}
	}
	return zones
}

// detectAbbreviations protects "Mr. Smith" style abbreviations together
// with the word that follows them.
func (l *lexicon) detectAbbreviations(s string) []Zone {
	zones := l.abbreviationSpans(s)
	for i, z := range zones {
		j := skipBlanks(s, z.End)
		if loc := itemWord.FindStringIndex(s[j:]); loc != nil {
			zones[i].End = j + loc[1]
		}
	}
	return zones
}

func (l *lexicon) abbreviationSpans(s string) []Zone {
	if l.abbreviations == nil {
		return nil
	}
	var zones []Zone
	for _, loc := range l.abbreviations.FindAllStringIndex(s, -1) {
		zones = append(zones, Zone{Start: loc[0], End: loc[1]})
	}
	return zones
}

func inAny(zones []Zone, pos int) bool {
	for _, z := range zones {
		if z.Contains(pos) {
			return true
		}
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

func skipBlanks(s string, i int) int {
	for i < len(s) && isBlank(s[i]) {
		i++
	}
	return i
}

// lastNonBlank returns the index of the last non-blank byte before i, or -1.
func lastNonBlank(s string, i int) int {
	for i--; i >= 0 && isBlank(s[i]); i-- {
	}
	return i
}
