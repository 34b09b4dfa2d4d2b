// Package diffview renders line diffs between a document and its rewritten
// form, for dry-run previews and change logging. It uses the sergi/go-diff
// engine with a line-level reduction so hunk boundaries land on newlines.
package diffview

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Stats summarizes a rewrite as added/removed line counts.
type Stats struct {
	Added   int
	Removed int
}

// Compute returns the line-level diff operations between two documents.
func Compute(oldText, newText string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	a, b, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lineArray)
}

// Render formats a diff as unified-style text: a two-line header naming the
// path, then every line prefixed with ' ', '-', or '+'.
func Render(path, oldText, newText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", path, path)
	for _, d := range Compute(oldText, newText) {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitKeepingContent(d.Text) {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Count tallies added and removed lines between two documents.
func Count(oldText, newText string) Stats {
	var s Stats
	for _, d := range Compute(oldText, newText) {
		n := len(splitKeepingContent(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			s.Removed += n
		case diffmatchpatch.DiffInsert:
			s.Added += n
		}
	}
	return s
}

// splitKeepingContent splits diff text into lines without their newlines,
// dropping the empty remainder a trailing newline produces.
func splitKeepingContent(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
