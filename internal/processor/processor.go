package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/linesplit/internal/logger"
)

// Process orchestrates the entire file pipeline
func (p *implProcessor) Process(ctx context.Context, inputPath string) error {
	startTime := time.Now()
	filename := filepath.Base(inputPath)
	ctx = logger.WithFile(logger.WithRun(ctx, uuid.NewString()), filename)

	p.logger.Info(ctx, "Starting: %s", inputPath)

	// Step 1: Read transcript
	text, err := readTranscript(inputPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	// Step 2: Clean, punctuate and split
	lines, stats, err := p.ProcessText(ctx, text)
	if err != nil {
		return fmt.Errorf("process text: %w", err)
	}

	// Step 3: Write every output format through the temp folder
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	outputs, err := p.writeOutputs(ctx, base, lines)
	if err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}

	// Step 4: Move the input to the archived folder
	if err := p.moveToArchived(ctx, inputPath); err != nil {
		p.logger.Warn(ctx, "Failed to move input to archived folder: %v", err)
	}

	p.logger.Info(ctx, "Done: %s", stats)
	p.logger.Info(ctx, "Outputs: %s", strings.Join(outputs, ", "))
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	return nil
}

func (p *implProcessor) ProcessText(ctx context.Context, text string) ([]string, Stats, error) {
	if p.cfg.Cleaning.Enabled {
		text = p.cleaner.Clean(text)
	}

	text, err := p.punctuator.Restore(ctx, text)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("restore punctuation: %w", err)
	}

	sentences := p.cleaner.Sentences(text)
	p.logger.Debug(ctx, "Segmented %d sentences", len(sentences))

	lines, stats, err := p.splitAll(ctx, sentences)
	if err != nil {
		return nil, Stats{}, err
	}
	return lines, stats, nil
}

func (p *implProcessor) writeOutputs(ctx context.Context, base string, lines []string) ([]string, error) {
	tempDir, err := os.MkdirTemp(p.cfg.Paths.Temp, "split-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	var outputs []string
	for _, w := range p.writers {
		tmp := filepath.Join(tempDir, base+w.Ext())
		if err := w.Write(tmp, base, lines); err != nil {
			return nil, fmt.Errorf("write %s: %w", w.Ext(), err)
		}
		dest, err := p.moveToOutput(ctx, tmp)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, dest)
	}
	return outputs, nil
}
