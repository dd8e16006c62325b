package splitter

// Splitter breaks long subtitle lines into shorter ones. Implementations
// are safe for concurrent use.
type Splitter interface {
	// Split returns the fragments of one sentence, in order.
	Split(sentence string) ([]string, error)
	// SplitDetailed is Split with per-fragment diagnostics.
	SplitDetailed(sentence string) (Result, error)
	// SplitLines trims every line, drops blank ones and splits the rest.
	SplitLines(lines []string) ([]string, error)
}

// Fragment is one output line.
type Fragment struct {
	Text string
	// Depth is the number of splits between the input and this fragment.
	Depth int
	// Round is the degradation round of the split that produced the
	// fragment, zero when the sentence was returned whole.
	Round Round
	// Unsplit marks a fragment longer than LengthThreshold that could not
	// be split within the configured bounds.
	Unsplit bool
}

// Result is the outcome of splitting one sentence.
type Result struct {
	Fragments []Fragment
	// Degraded is set when any fragment is Unsplit.
	Degraded bool
}

// Texts returns the fragment strings.
func (r Result) Texts() []string {
	texts := make([]string, len(r.Fragments))
	for i, f := range r.Fragments {
		texts[i] = f.Text
	}
	return texts
}
