package processor

import "fmt"

// Stats summarizes one processing run.
type Stats struct {
	Sentences int
	Lines     int
	// Unsplit counts lines still longer than the length threshold.
	Unsplit int
}

// Splits is the number of breaks inserted.
func (s Stats) Splits() int {
	return s.Lines - s.Sentences
}

// Ratio is lines per input sentence, 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.Sentences == 0 {
		return 0
	}
	return float64(s.Lines) / float64(s.Sentences)
}

func (s Stats) String() string {
	return fmt.Sprintf("%d sentences -> %d lines (%d splits, ratio %.2f, %d unsplit)",
		s.Sentences, s.Lines, s.Splits(), s.Ratio(), s.Unsplit)
}
