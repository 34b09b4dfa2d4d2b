package textfix

import "strings"

// DeclarationInject guarantees that a required declaration line occurs in the
// document. Presence is exact string containment of Line, so a second run is
// always a no-op. When the line is missing it is inserted immediately after
// the last line that starts with the introducer token and ends with the
// terminator. When no such anchor exists the line is inserted as the first
// line of the document; that fallback is deliberate and deterministic.
type DeclarationInject struct {
	Line       string // inserted verbatim, no trailing newline
	Introducer string // e.g. "using "
	Terminator string // e.g. ";"
}

func (j DeclarationInject) Name() string { return "declaration-inject" }

// Apply returns the document with Line guaranteed present.
func (j DeclarationInject) Apply(text string) (string, bool) {
	if strings.Contains(text, j.Line) {
		return text, false
	}

	lines := SplitLines(text)
	anchor := -1
	for i, line := range lines {
		if j.isAnchor(line) {
			anchor = i
		}
	}

	if anchor < 0 {
		return j.Line + "\n" + text, true
	}

	var b strings.Builder
	b.Grow(len(text) + len(j.Line) + 2)
	for i, line := range lines {
		b.WriteString(line)
		if i == anchor {
			// The anchor may be the last line of a file with no final
			// newline; the inserted line still needs its own line.
			if !strings.HasSuffix(line, "\n") {
				b.WriteString("\n")
			}
			b.WriteString(j.Line)
			b.WriteString("\n")
		}
	}
	return b.String(), true
}

func (j DeclarationInject) isAnchor(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, j.Introducer) &&
		strings.HasSuffix(trimmed, j.Terminator)
}
