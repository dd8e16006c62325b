package punctuator

import (
	"context"
	"strings"
	"unicode"

	"github.com/nguyentantai21042004/linesplit/internal/logger"
)

// guard returns restored when it carries the same words as original, and
// original otherwise.
func guard(ctx context.Context, log logger.Logger, original, restored string) string {
	if restored == "" {
		log.Warn(ctx, "Restorer returned empty text, keeping original")
		return original
	}
	if !sameWords(original, restored) {
		log.Warn(ctx, "Restorer changed the wording, keeping original")
		return original
	}
	return restored
}

func sameWords(a, b string) bool {
	wa, wb := words(a), words(b)
	if len(wa) != len(wb) {
		return false
	}
	for i := range wa {
		if wa[i] != wb[i] {
			return false
		}
	}
	return true
}

// words lowercases s and drops everything but letters, digits and apostrophes.
func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '’'
	})
}
