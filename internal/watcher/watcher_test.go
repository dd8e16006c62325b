package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/linesplit/internal/logger"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) handle(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, filepath.Base(path))
	return nil
}

func (r *recorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func newTestWatcher(t *testing.T, dir string, handler EventHandler) *implWatcher {
	t.Helper()
	w, err := New(dir, handler, logger.New("error"), 2)
	require.NoError(t, err)
	t.Cleanup(func() { w.Stop() })

	iw := w.(*implWatcher)
	iw.settle = 10 * time.Millisecond
	return iw
}

func TestIsTranscript(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"talk.txt", true},
		{"talk.TXT", true},
		{"talk.transcript", true},
		{"talk.srt", true},
		{"talk.mp4", false},
		{".talk.txt", false},
		{"talk", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isTranscript(tt.path))
		})
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, logger.New("error"), 1)
	assert.Error(t, err)
}

func TestStartHandlesExistingAndNewFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.txt"), []byte("hello."), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "video.mp4"), []byte("x"), 0644))

	rec := &recorder{}
	w := newTestWatcher(t, dir, rec.handle)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	assert.Eventually(t, func() bool {
		return assert.ObjectsAreEqual([]string{"old.txt"}, rec.seen())
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.srt"), []byte("1\n"), 0644))
	assert.Eventually(t, func() bool {
		for _, p := range rec.seen() {
			if p == "new.srt" {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.NotContains(t, rec.seen(), "video.mp4")
}

func TestDispatchSkipsInFlight(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("a."), 0644))

	release := make(chan struct{})
	calls := 0
	var mu sync.Mutex
	w := newTestWatcher(t, dir, func(context.Context, string) error {
		mu.Lock()
		calls++
		mu.Unlock()
		<-release
		return nil
	})

	ctx := context.Background()
	require.NoError(t, w.dispatch(ctx, path))
	require.NoError(t, w.dispatch(ctx, path))
	assert.True(t, w.inFlight.Has(path))

	close(release)
	w.wg.Wait()

	assert.Equal(t, 1, calls)
	assert.False(t, w.inFlight.Has(path))
}

func TestDispatchSkipsVanishedFile(t *testing.T) {
	dir := t.TempDir()
	called := false
	w := newTestWatcher(t, dir, func(context.Context, string) error {
		called = true
		return nil
	})

	require.NoError(t, w.dispatch(context.Background(), filepath.Join(dir, "gone.txt")))
	w.wg.Wait()
	assert.False(t, called)
}
