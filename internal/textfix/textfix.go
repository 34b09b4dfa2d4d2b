// Package textfix implements the source-file patch operations: reindentation
// of marker-delimited regions, lexical deficit detection, and declaration
// injection. Every operation consumes the full document text and produces a
// full replacement; nothing edits byte ranges in place, and nothing here
// touches the file system. Callers decide whether to persist the result.
package textfix

import "strings"

// Fixer rewrites document text. Apply returns the replacement text and
// whether it differs from the input. Implementations must be idempotent:
// applying a Fixer to its own output is a no-op.
type Fixer interface {
	Name() string
	Apply(text string) (string, bool)
}

// Detector analyzes document text without rewriting it. Detection and
// remediation are separate stages; a Detector may exist with no
// corresponding Fixer at all.
type Detector interface {
	Name() string
	Detect(text string) Report
}

// Report is the outcome of one Detector pass over one document.
type Report struct {
	Detector     string `json:"detector"`
	Declarations int    `json:"declarations"`
	Fulfillments int    `json:"fulfillments"`
	Deficit      int    `json:"deficit"`
}

// Needed reports whether the document has declarations left unfulfilled.
func (r Report) Needed() bool {
	return r.Deficit > 0
}

// SplitLines splits text into lines with their trailing newline preserved,
// mirroring a line-by-line file read. Joining the result reproduces the
// input byte-for-byte.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
