package dirwatch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/pkg/dirwatch"
)

// newWatcher creates a started watcher with short stabilization timing
// suitable for tests.
func newWatcher(t *testing.T, dir string) *dirwatch.Watcher {
	t.Helper()

	w, err := dirwatch.New(dir,
		dirwatch.WithQuietWindow(150*time.Millisecond),
		dirwatch.WithPollInterval(25*time.Millisecond),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	w.Start(t.Context())
	return w
}

// collect drains events for the given duration.
func collect(w *dirwatch.Watcher, d time.Duration) []dirwatch.Event {
	var events []dirwatch.Event
	deadline := time.After(d)
	for {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-deadline:
			return events
		}
	}
}

func TestNewRejectsMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := dirwatch.New(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func TestWriteEventAfterQuiescence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := newWatcher(t, dir)

	path := filepath.Join(dir, "en_UK.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":"b"}`), 0o644))

	events := collect(w, time.Second)
	require.Len(t, events, 1)
	require.Equal(t, path, events[0].Path)
	require.Equal(t, dirwatch.OpWrite, events[0].Op)
}

func TestRapidWritesCoalesce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := newWatcher(t, dir)

	path := filepath.Join(dir, "en_UK.json")
	for range 5 {
		require.NoError(t, os.WriteFile(path, []byte(`{"a":"b"}`), 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	events := collect(w, time.Second)
	require.Len(t, events, 1, "a write burst must stabilize into one event")
}

func TestRemoveEvent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "en_UK.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":"b"}`), 0o644))

	w := newWatcher(t, dir)

	// Give the watcher a moment, then remove; the pre-start write must
	// not surface, only the removal.
	time.Sleep(300 * time.Millisecond)
	require.NoError(t, os.Remove(path))

	events := collect(w, time.Second)
	require.Len(t, events, 1)
	require.Equal(t, dirwatch.OpRemove, events[0].Op)
	require.Equal(t, path, events[0].Path)
}

func TestPreStartStateProducesNoEvents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en_UK.json"), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr_FR.yml"), []byte(`a: b`), 0o644))

	w := newWatcher(t, dir)

	events := collect(w, 400*time.Millisecond)
	require.Empty(t, events)
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	w, err := dirwatch.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
