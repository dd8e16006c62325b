package writer

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

// implSRT writes cues with synthetic timing: each line is shown for as
// long as it takes to read at charsPerSecond, never shorter than minCue.
type implSRT struct {
	charsPerSecond float64
	minCue         time.Duration
	gap            time.Duration
}

func (implSRT) Ext() string { return ".srt" }

func (w implSRT) Write(path, _ string, lines []string) error {
	return os.WriteFile(path, []byte(w.render(lines)), 0644)
}

func (w implSRT) render(lines []string) string {
	var b strings.Builder
	var start time.Duration
	for i, l := range lines {
		end := start + w.duration(l)
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", i+1, timestamp(start), timestamp(end), l)
		start = end + w.gap
	}
	return b.String()
}

func (w implSRT) duration(line string) time.Duration {
	d := w.minCue
	if w.charsPerSecond > 0 {
		read := time.Duration(float64(utf8.RuneCountInString(line)) / w.charsPerSecond * float64(time.Second))
		d = max(d, read.Round(time.Millisecond))
	}
	return d
}

func timestamp(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d,%03d", ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}
