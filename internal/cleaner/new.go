package cleaner

import (
	"fmt"
	"strings"
)

// Step names accepted by New, in the order they run.
const (
	StepBOM                 = "bom"
	StepLineEndings         = "line_endings"
	StepPunctuation         = "punctuation"
	StepNumbers             = "numbers"
	StepEllipsis            = "ellipsis"
	StepRepeatedPunctuation = "repeated_punctuation"
	StepWhitespace          = "whitespace"
	StepEmptyLines          = "empty_lines"
)

var allSteps = []string{
	StepBOM, StepLineEndings, StepPunctuation, StepNumbers,
	StepEllipsis, StepRepeatedPunctuation, StepWhitespace, StepEmptyLines,
}

type implCleaner struct {
	steps         map[string]bool
	abbreviations map[string]bool
}

// New creates a Cleaner running the named steps, or every step when steps is
// empty. Abbreviations (without their period) never end a sentence.
func New(steps []string, abbreviations []string) (Cleaner, error) {
	if len(steps) == 0 {
		steps = allSteps
	}

	c := &implCleaner{
		steps:         make(map[string]bool, len(steps)),
		abbreviations: make(map[string]bool, len(abbreviations)),
	}
	for _, s := range steps {
		s = strings.ToLower(strings.TrimSpace(s))
		if !known(s) {
			return nil, fmt.Errorf("unknown cleaning step %q", s)
		}
		c.steps[s] = true
	}
	for _, a := range abbreviations {
		c.abbreviations[strings.ToLower(strings.TrimSuffix(a, "."))] = true
	}
	return c, nil
}

func known(step string) bool {
	for _, s := range allSteps {
		if s == step {
			return true
		}
	}
	return false
}
