package textfix

import "strings"

// indentQuantum is the whitespace unit indentation depth is measured in.
const indentQuantum = "    "

// RegionReindent adds one indentation level to under-indented lines inside a
// marked region. A line qualifies when it starts with exactly one quantum of
// whitespace and not two; corrected lines start with two quanta, so the rule
// cannot re-trigger and the pass is idempotent. Lines outside the region pass
// through byte-for-byte, trailing newlines included.
type RegionReindent struct {
	Region RegionScanner
}

func (r RegionReindent) Name() string { return "region-reindent" }

// Apply returns the reconstructed document and whether any line changed.
func (r RegionReindent) Apply(text string) (string, bool) {
	lines := SplitLines(text)
	flags := r.Region.Flags(lines)

	changed := false
	var b strings.Builder
	b.Grow(len(text))
	for i, line := range lines {
		if flags[i] && needsIndent(line) {
			b.WriteString(indentQuantum)
			changed = true
		}
		b.WriteString(line)
	}
	if !changed {
		return text, false
	}
	return b.String(), true
}

func needsIndent(line string) bool {
	return strings.HasPrefix(line, indentQuantum) &&
		!strings.HasPrefix(line, indentQuantum+indentQuantum)
}
