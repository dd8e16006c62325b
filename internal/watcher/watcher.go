package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/nguyentantai21042004/linesplit/internal/logger"
)

var supportedFormats = []string{".txt", ".transcript", ".srt"}

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup

	// inFlight holds the paths being handled, keyed by path.
	inFlight cmap.ConcurrentMap[string, time.Time]
	// settle is how long a file must be quiet before it is handled.
	settle time.Duration
}

// Start handles the transcripts already in the input directory, then
// monitors it for new ones
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(supportedFormats, ", "))

	existing, err := w.pending()
	if err != nil {
		return fmt.Errorf("scan input dir: %w", err)
	}
	for _, path := range existing {
		if err := w.dispatch(ctx, path); err != nil {
			return w.drain(ctx, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return w.drain(ctx, ctx.Err())

		case event, ok := <-w.watcher.Events:
			if !ok {
				return w.drain(ctx, fmt.Errorf("watcher events channel closed"))
			}

			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !isTranscript(event.Name) {
				w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				continue
			}
			if err := w.dispatch(ctx, event.Name); err != nil {
				return w.drain(ctx, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return w.drain(ctx, fmt.Errorf("watcher errors channel closed"))
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// dispatch hands path to the handler unless it is already in flight.
// It blocks while maxConcurrent files are being handled.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	if !w.inFlight.SetIfAbsent(path, time.Now()) {
		w.logger.Debug(ctx, "Already processing: %s", path)
		return nil
	}
	w.logger.Info(ctx, "New transcript detected: %s", path)

	// Acquire semaphore slot (blocks if max concurrent reached)
	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		w.inFlight.Remove(path)
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.semaphore }()
		defer w.inFlight.Remove(path)

		// Small delay to ensure file is fully written
		select {
		case <-time.After(w.settle):
		case <-ctx.Done():
			return
		}
		if _, err := os.Stat(path); err != nil {
			w.logger.Debug(ctx, "Skipping vanished file: %s", path)
			return
		}

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) drain(ctx context.Context, err error) error {
	w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
	w.wg.Wait()
	w.logger.Info(ctx, "File watcher stopped")
	return err
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// pending lists the transcripts already waiting in the input directory.
func (w *implWatcher) pending() ([]string, error) {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if isTranscript(e.Name()) {
			files = append(files, filepath.Join(w.inputDir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// isTranscript checks if the file has a supported transcript extension
func isTranscript(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}
