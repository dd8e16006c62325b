package cleaner

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// sentenceEnd is a terminal run plus any closing quotes or brackets.
var sentenceEnd = regexp.MustCompile(`[.!?]+["'”’)\]]*`)

func (c *implCleaner) Sentences(text string) []string {
	var out []string
	for _, para := range blankLines.Split(text, -1) {
		joined := strings.Join(strings.Fields(para), " ")
		start := 0
		for _, loc := range sentenceEnd.FindAllStringIndex(joined, -1) {
			end := loc[1]
			if end < len(joined) && joined[end] != ' ' {
				continue
			}
			if c.keepsSentence(joined[start:loc[0]], joined[loc[0]:end]) {
				continue
			}
			if s := strings.TrimSpace(joined[start:end]); s != "" {
				out = append(out, s)
			}
			start = end
		}
		if rest := strings.TrimSpace(joined[start:]); rest != "" {
			out = append(out, rest)
		}
	}
	return out
}

// keepsSentence reports whether a period after the last word of head is an
// abbreviation or an initial rather than a sentence end.
func (c *implCleaner) keepsSentence(head, mark string) bool {
	if mark != "." {
		return false
	}
	word := head
	if i := strings.LastIndexByte(head, ' '); i >= 0 {
		word = head[i+1:]
	}
	if word == "" {
		return false
	}
	if c.abbreviations[strings.ToLower(word)] {
		return true
	}
	r, size := utf8.DecodeRuneInString(word)
	return size == len(word) && unicode.IsUpper(r) && r != 'I'
}
