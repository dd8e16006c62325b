package processor

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/nguyentantai21042004/linesplit/internal/splitter"
)

// splitAll splits sentences on a bounded worker pool and returns the
// fragments in input order.
func (p *implProcessor) splitAll(ctx context.Context, sentences []string) ([]string, Stats, error) {
	results := make([]splitter.Result, len(sentences))
	errs := make([]error, len(sentences))
	sem := newSemaphore(max(p.cfg.Performance.Workers, 1))
	var wg sync.WaitGroup

	for i, s := range sentences {
		if err := sem.acquire(ctx); err != nil {
			wg.Wait()
			return nil, Stats{}, err
		}
		wg.Add(1)
		go func(i int, s string) {
			defer wg.Done()
			defer sem.release()
			results[i], errs[i] = p.splitter.SplitDetailed(s)
		}(i, s)
	}
	wg.Wait()

	stats := Stats{Sentences: len(sentences)}
	var lines []string
	for i, res := range results {
		if errs[i] != nil {
			return nil, Stats{}, fmt.Errorf("split sentence %d: %w", i+1, errs[i])
		}
		for _, f := range res.Fragments {
			lines = append(lines, f.Text)
			if f.Unsplit {
				stats.Unsplit++
				p.logger.Warn(ctx, "Sentence %d left at %d chars: %q", i+1, utf8.RuneCountInString(f.Text), f.Text)
			}
		}
	}
	stats.Lines = len(lines)
	return lines, stats, nil
}
