// Package batch drives the textfix operations over a configured list of
// files. Processing is strictly sequential: each file is read whole,
// transformed in memory, and written back before the next file starts. Files
// are isolated from each other — a failure is recorded on that file's result
// and the run continues.
package batch

import (
	"errors"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"srcfix/internal/diffview"
	"srcfix/internal/textfix"
)

// Entry pairs a target file with the operations to run against it. Fixers
// run in order, each consuming the previous one's output; detectors run on
// the final text and only ever report.
type Entry struct {
	Path      string
	Fixers    []textfix.Fixer
	Detectors []textfix.Detector
}

// FileResult records the outcome for a single file.
type FileResult struct {
	Path    string           `json:"path"`
	Changed bool             `json:"changed"`
	Reports []textfix.Report `json:"reports,omitempty"`
	Error   string           `json:"error,omitempty"`

	// Err carries the typed error for callers that want errors.As; Error
	// above is its message for serialization.
	Err error `json:"-"`
}

// Report aggregates one batch run.
type Report struct {
	RunID string       `json:"run_id"`
	Total int          `json:"total"`
	Fixed int          `json:"fixed"`
	Files []FileResult `json:"files"`
}

// Errored returns how many files recorded an error.
func (r *Report) Errored() int {
	n := 0
	for _, f := range r.Files {
		if f.Err != nil {
			n++
		}
	}
	return n
}

// Deficits returns the total deficit reported across all files.
func (r *Report) Deficits() int {
	n := 0
	for _, f := range r.Files {
		for _, rep := range f.Reports {
			n += rep.Deficit
		}
	}
	return n
}

// Runner executes batch entries. DryRun computes and logs what would change
// without writing anything back.
type Runner struct {
	log    *zap.Logger
	DryRun bool
}

// NewRunner creates a Runner. A nil logger disables logging.
func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log}
}

// Run processes every entry and returns the aggregate report. No per-file
// failure aborts the run.
func (r *Runner) Run(entries []Entry) *Report {
	report := &Report{
		RunID: uuid.NewString(),
		Total: len(entries),
	}
	log := r.log.With(zap.String("run_id", report.RunID))
	log.Info("batch run starting", zap.Int("files", len(entries)), zap.Bool("dry_run", r.DryRun))

	for _, entry := range entries {
		res := r.processFile(log, entry)
		if res.Changed {
			report.Fixed++
		}
		report.Files = append(report.Files, res)
	}

	log.Info("batch run finished",
		zap.Int("fixed", report.Fixed),
		zap.Int("total", report.Total),
		zap.Int("errors", report.Errored()))
	return report
}

func (r *Runner) processFile(log *zap.Logger, entry Entry) FileResult {
	res := FileResult{Path: entry.Path}

	raw, err := os.ReadFile(entry.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = &NotFoundError{Path: entry.Path, Err: err}
		}
		return res.fail(log, err)
	}
	if !utf8.Valid(raw) {
		return res.fail(log, &DecodeError{Path: entry.Path})
	}

	original := string(raw)
	text := original
	for _, fix := range entry.Fixers {
		next, changed := fix.Apply(text)
		if changed {
			log.Debug("fixer rewrote document",
				zap.String("path", entry.Path),
				zap.String("fixer", fix.Name()))
		}
		text = next
	}

	for _, det := range entry.Detectors {
		rep := det.Detect(text)
		if !rep.Needed() {
			continue
		}
		res.Reports = append(res.Reports, rep)
		log.Warn("deficit detected",
			zap.String("path", entry.Path),
			zap.String("detector", rep.Detector),
			zap.Int("deficit", rep.Deficit))
	}

	if text == original {
		log.Debug("no changes needed", zap.String("path", entry.Path))
		return res
	}

	stats := diffview.Count(original, text)
	if r.DryRun {
		log.Info("dry run, not writing",
			zap.String("path", entry.Path),
			zap.Int("lines_added", stats.Added),
			zap.Int("lines_removed", stats.Removed))
		log.Debug("pending diff", zap.String("diff", diffview.Render(entry.Path, original, text)))
		res.Changed = true
		return res
	}

	if err := writeReplace(entry.Path, []byte(text)); err != nil {
		return res.fail(log, &WriteError{Path: entry.Path, Err: err})
	}
	res.Changed = true
	log.Info("fixed",
		zap.String("path", entry.Path),
		zap.Int("lines_added", stats.Added),
		zap.Int("lines_removed", stats.Removed))
	return res
}

func (res FileResult) fail(log *zap.Logger, err error) FileResult {
	res.Err = err
	res.Error = err.Error()
	log.Error("file skipped", zap.String("path", res.Path), zap.Error(err))
	return res
}

// writeReplace writes content to a temp file in the target's directory and
// renames it over the target, preserving the original mode. The rename makes
// the replacement all-or-nothing.
func writeReplace(path string, content []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".srcfix-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
