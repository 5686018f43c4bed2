//go:build linux || darwin

package sdunit

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// waitUnitEvent reads events until one matches the wanted existence state
// or the timeout expires. Intermediate events are allowed: rapid
// create/write bursts may surface as more than one debounced observation.
func waitUnitEvent(t *testing.T, ch <-chan UnitEvent, wantExists bool, timeout time.Duration) UnitEvent {
	t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				t.Fatal("event channel closed while waiting")
			}
			require.NoError(t, ev.Err)
			if ev.Exists == wantExists {
				return ev
			}
		case <-deadline:
			t.Fatalf("no event with Exists=%v within %s", wantExists, timeout)
		}
	}
}

func TestWatchUnitSeesWriteAndRemove(t *testing.T) {
	defer goleak.VerifyNone(t)

	unitDir := t.TempDir()
	svc := NewService(testConfig(), WithUnitDir(unitDir))
	unitPath := filepath.Join(unitDir, "myapp.service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, cleanup, err := svc.WatchUnit(ctx)
	require.NoError(t, err)
	defer func() { require.NoError(t, cleanup()) }()

	require.NoError(t, os.WriteFile(unitPath, []byte(svc.Generate()), 0o644))
	ev := waitUnitEvent(t, events, true, 2*time.Second)
	require.Equal(t, unitPath, ev.Path)

	require.NoError(t, os.Remove(unitPath))
	ev = waitUnitEvent(t, events, false, 2*time.Second)
	require.Equal(t, unitPath, ev.Path)
}

func TestWatchUnitIgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	unitDir := t.TempDir()
	svc := NewService(testConfig(), WithUnitDir(unitDir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, cleanup, err := svc.WatchUnit(ctx)
	require.NoError(t, err)
	defer func() { require.NoError(t, cleanup()) }()

	require.NoError(t, os.WriteFile(filepath.Join(unitDir, "other.service"), []byte("x"), 0o644))

	select {
	case ev := <-events:
		t.Fatalf("unexpected event for unrelated file: %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchUnitMissingDir(t *testing.T) {
	svc := NewService(testConfig(), WithUnitDir(filepath.Join(t.TempDir(), "nope")))

	_, _, err := svc.WatchUnit(context.Background())
	require.Error(t, err)
	require.Equal(t, KindIO, KindOf(err))
}
