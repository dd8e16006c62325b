package cleaner

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

var (
	// CJK marks with no full-width ASCII twin.
	cjkPunctuation = strings.NewReplacer(
		"。", ".", "、", ",",
		"【", "[", "】", "]",
		"《", "<", "》", ">", "〈", "<", "〉", ">",
		"「", `"`, "」", `"`, "『", "'", "』", "'",
		"“", `"`, "”", `"`, "‘", "'", "’", "'",
	)
	specialSpaces = strings.NewReplacer(
		"\u00a0", " ", "\u2002", " ", "\u2003", " ", "\u3000", " ", "\t", " ",
	)

	ellipsisRun   = regexp.MustCompile(`\.{3,}|…+`)
	repeatedMarks = regexp.MustCompile(`!{2,}|\?{2,}`)
	openParen     = regexp.MustCompile(`\( +`)
	closeParen    = regexp.MustCompile(` +\)`)
	spaceRun      = regexp.MustCompile(` {2,}`)
	blankLines    = regexp.MustCompile(`\n\s*\n`)
)

func (c *implCleaner) Clean(text string) string {
	if c.steps[StepBOM] {
		text = strings.TrimPrefix(text, "\ufeff")
	}
	if c.steps[StepLineEndings] {
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
	}
	if c.steps[StepPunctuation] {
		text = cjkPunctuation.Replace(text)
		text = foldWide(text, func(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) })
	}
	if c.steps[StepNumbers] {
		text = foldWide(text, unicode.IsDigit)
	}
	if c.steps[StepEllipsis] {
		text = ellipsisRun.ReplaceAllString(text, "...")
	}
	if c.steps[StepRepeatedPunctuation] {
		text = repeatedMarks.ReplaceAllStringFunc(text, func(m string) string { return m[:1] })
	}
	if c.steps[StepWhitespace] {
		text = specialSpaces.Replace(text)
		text = openParen.ReplaceAllString(text, "(")
		text = closeParen.ReplaceAllString(text, ")")
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
		}
		text = strings.Join(lines, "\n")
	}
	if c.steps[StepEmptyLines] {
		text = strings.TrimSpace(blankLines.ReplaceAllString(text, "\n\n"))
	}
	return text
}

// foldWide maps full-width runes accepted by keep to their ASCII form.
func foldWide(text string, keep func(rune) bool) string {
	return strings.Map(func(r rune) rune {
		p := width.LookupRune(r)
		if p.Kind() != width.EastAsianFullwidth {
			return r
		}
		if n := p.Narrow(); n != 0 && keep(n) {
			return n
		}
		return r
	}, text)
}
