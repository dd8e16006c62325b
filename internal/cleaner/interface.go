package cleaner

// Cleaner normalizes raw transcript text before it is split.
type Cleaner interface {
	// Clean runs the configured normalization steps over text.
	Clean(text string) string
	// Sentences joins wrapped lines and breaks the text into sentences.
	// Blank lines are hard boundaries.
	Sentences(text string) []string
}
