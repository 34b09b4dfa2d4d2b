// Package watch re-runs the batch whenever a target file changes on disk.
// Directories are watched rather than the files themselves because most
// editors save by replacing the file, which would drop a file-level watch.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"srcfix/internal/batch"
)

// DefaultDebounce is the quiet period after the last event before a re-run.
const DefaultDebounce = 250 * time.Millisecond

// Watcher re-runs a batch when any of its target files changes.
type Watcher struct {
	log      *zap.Logger
	runner   *batch.Runner
	entries  []batch.Entry
	debounce time.Duration
	targets  map[string]bool

	// OnRun, when set, receives each report. Used by the CLI to print
	// summaries and by tests to observe runs.
	OnRun func(*batch.Report)
}

// New creates a Watcher over the given entries. A zero debounce uses
// DefaultDebounce.
func New(log *zap.Logger, runner *batch.Runner, entries []batch.Entry, debounce time.Duration) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	targets := make(map[string]bool, len(entries))
	for _, e := range entries {
		targets[filepath.Clean(e.Path)] = true
	}
	return &Watcher{
		log:      log,
		runner:   runner,
		entries:  entries,
		debounce: debounce,
		targets:  targets,
	}
}

// Run watches until the context is canceled. Events on non-target files are
// ignored. Because every fixer is idempotent, the run triggered by our own
// write-back finds nothing to change and the loop settles.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dirs := map[string]bool{}
	for path := range w.targets {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.log.Debug("watching directory", zap.String("dir", dir))
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.targets[filepath.Clean(ev.Name)] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("target changed", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)
			pending = true

		case <-timer.C:
			pending = false
			report := w.runner.Run(w.entries)
			if w.OnRun != nil {
				w.OnRun(report)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch error", zap.Error(err))
		}
	}
}
