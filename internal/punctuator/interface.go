package punctuator

import "context"

// Punctuator restores punctuation in unpunctuated transcript text. The
// words of the text must come back unchanged.
type Punctuator interface {
	Restore(ctx context.Context, text string) (string, error)
}
