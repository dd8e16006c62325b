package processor

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	reSrtTime  = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}[,.]\d{3}\s+-->`)
	reSrtIndex = regexp.MustCompile(`^\d+$`)

	reTranscriptTime = regexp.MustCompile(`^\d+:\d{2}$`)
)

// readTranscript returns the text of a transcript file. SRT input keeps
// only its cue text and .transcript input drops its m:ss marker lines.
func readTranscript(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return srtText(string(data)), nil
	case ".transcript":
		return transcriptText(string(data)), nil
	default:
		return string(data), nil
	}
}

func srtText(content string) string {
	return textLines(content, func(line string) bool {
		return reSrtIndex.MatchString(line) || reSrtTime.MatchString(line)
	})
}

func transcriptText(content string) string {
	return textLines(content, reTranscriptTime.MatchString)
}

// textLines returns the trimmed non-empty lines of content that skip does
// not reject.
func textLines(content string, skip func(string) bool) string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || skip(trimmed) {
			continue
		}
		lines = append(lines, trimmed)
	}
	return strings.Join(lines, "\n")
}
