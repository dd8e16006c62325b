package processor

import "context"

// Processor turns transcript files into split subtitle lines.
type Processor interface {
	// Process splits one input file, writes every configured output format
	// and archives the input.
	Process(ctx context.Context, inputPath string) error
	// ProcessText runs the pipeline on text without touching the file system.
	ProcessText(ctx context.Context, text string) ([]string, Stats, error)
}
