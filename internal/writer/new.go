package writer

import (
	"fmt"
	"time"

	"github.com/nguyentantai21042004/linesplit/internal/config"
)

// New returns the writer for format.
func New(format string, cfg config.OutputConfig) (Writer, error) {
	switch format {
	case "txt":
		return implText{}, nil
	case "srt":
		return implSRT{
			charsPerSecond: cfg.CharsPerSecond,
			minCue:         time.Duration(cfg.MinCueSeconds * float64(time.Second)),
			gap:            time.Duration(cfg.CueGapMillis) * time.Millisecond,
		}, nil
	case "docx":
		return implDocx{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// NewAll returns one writer per configured format.
func NewAll(cfg config.OutputConfig) ([]Writer, error) {
	writers := make([]Writer, 0, len(cfg.Formats))
	for _, f := range cfg.Formats {
		w, err := New(f, cfg)
		if err != nil {
			return nil, err
		}
		writers = append(writers, w)
	}
	return writers, nil
}
