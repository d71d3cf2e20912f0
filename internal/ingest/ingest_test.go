package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateworks/menugen/internal/pipeline"
	"github.com/plateworks/menugen/internal/runs"
)

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt(".jpg"))
	assert.True(t, AllowedExt("JPEG"))
	assert.True(t, AllowedExt(".heic"))
	assert.False(t, AllowedExt(".pdf"))
	assert.False(t, AllowedExt(".txt"))
	assert.False(t, AllowedExt(""))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/menus/.DS_Store"))
	assert.True(t, IsHidden(".hidden"))
	assert.False(t, IsHidden("/menus/dinner.png"))
}

type recordingRunner struct {
	paths []string
}

func (r *recordingRunner) Run(_ context.Context, req runs.Request) (runs.Outcome, error) {
	r.paths = append(r.paths, req.ImagePath)
	return runs.Outcome{}, nil
}

func TestWorkerDeduplicatesByContent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "menu-a.png")
	b := filepath.Join(dir, "menu-b.png") // same bytes, different name
	c := filepath.Join(dir, "menu-c.png")
	require.NoError(t, os.WriteFile(a, []byte("same-menu"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("same-menu"), 0o644))
	require.NoError(t, os.WriteFile(c, []byte("other-menu"), 0o644))

	runner := &recordingRunner{}
	w := &Worker{
		Logger: slog.Default(),
		Runs:   runner,
		Config: pipeline.BatchConfig{},
	}

	ctx := context.Background()
	w.handle(ctx, a)
	w.handle(ctx, b)
	w.handle(ctx, c)

	assert.Equal(t, []string{a, c}, runner.paths)
}

func TestWatcherCoalescesWriteBursts(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	// Two bursts with a gap larger than the debounce window, so the second
	// burst lands while earlier flushes may still be in flight.
	names := []string{"menu-a.png", "menu-b.jpg", "menu-c.jpeg"}
	want := make(map[string]bool, len(names)+1)
	for _, name := range names {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("menu"), 0o644))
		want[p] = false
	}
	time.Sleep(50 * time.Millisecond)
	late := filepath.Join(dir, "menu-d.png")
	require.NoError(t, os.WriteFile(late, []byte("menu"), 0o644))
	want[late] = false

	deadline := time.After(5 * time.Second)
	remaining := len(want)
	for remaining > 0 {
		select {
		case p, ok := <-events:
			require.True(t, ok, "event channel closed early")
			if seen, tracked := want[p]; tracked && !seen {
				want[p] = true
				remaining--
			}
		case <-deadline:
			t.Fatalf("timed out waiting for events, missing %d of %d", remaining, len(want))
		}
	}
}

func TestWatcherIgnoresNonImageFiles(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	wantPath := filepath.Join(dir, "menu.png")
	require.NoError(t, os.WriteFile(wantPath, []byte("menu"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case p := <-events:
			assert.NotEqual(t, filepath.Ext(p), ".txt")
			if p == wantPath {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for menu.png event")
		}
	}
}

func TestWorkerSkipsUnreadableFile(t *testing.T) {
	runner := &recordingRunner{}
	w := &Worker{Logger: slog.Default(), Runs: runner}

	w.handle(context.Background(), filepath.Join(t.TempDir(), "missing.png"))

	assert.Empty(t, runner.paths)
}
