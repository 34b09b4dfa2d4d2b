package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"srcfix/internal/batch"
	"srcfix/internal/textfix"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherRerunsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.cs")
	require.NoError(t, os.WriteFile(path, []byte("clean\n"), 0644))

	fix := textfix.RegionReindent{Region: textfix.RegionScanner{
		StartMarker: "#region Extras",
		EndMarker:   "#endregion",
	}}
	entries := []batch.Entry{{Path: path, Fixers: []textfix.Fixer{fix}}}

	reports := make(chan *batch.Report, 8)
	w := New(nil, batch.NewRunner(nil), entries, 20*time.Millisecond)
	w.OnRun = func(r *batch.Report) { reports <- r }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Rewrite the target with fixable content until the watcher reacts; the
	// first writes may land before the directory watch is in place.
	fixable := []byte("#region Extras\n    oldLine();\n#endregion\n")
	var report *batch.Report
	deadline := time.After(10 * time.Second)
waiting:
	for {
		require.NoError(t, os.WriteFile(path, fixable, 0644))
		select {
		case report = <-reports:
			break waiting
		case <-time.After(200 * time.Millisecond):
		case <-deadline:
			t.Fatal("watcher never ran the batch")
		}
	}

	// The watcher may fire more than once while we were re-writing; any run
	// must leave the file in its fixed form.
	assert.Equal(t, 1, report.Total)
	waitFor(t, 5*time.Second, func() bool {
		got, err := os.ReadFile(path)
		return err == nil && string(got) == "#region Extras\n        oldLine();\n#endregion\n"
	})

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
	drain(reports)
}

func TestWatcherStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "b.cs")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))

	w := New(nil, batch.NewRunner(nil), []batch.Entry{{Path: path}}, 0)
	assert.Equal(t, DefaultDebounce, w.debounce)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("condition never met")
}

func drain(ch chan *batch.Report) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
