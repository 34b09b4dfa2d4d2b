package textfix

import "regexp"

// DeficitDetector counts non-overlapping matches of a declaration pattern
// (e.g. a method signature marked asynchronous) against matches of a
// fulfillment pattern (e.g. a suspension keyword in a body). The deficit —
// declarations minus fulfillments — flags documents that declare more than
// they fulfill. This is a pure analysis pass: no Fixer exists for this
// pattern pair, and none should be added behind Detect's back. A future
// rewrite stage would be a separate Fixer so detection results stay stable.
type DeficitDetector struct {
	Label       string
	Declaration *regexp.Regexp
	Fulfillment *regexp.Regexp
}

func (d DeficitDetector) Name() string { return d.Label }

// Detect counts both patterns over the whole document and reports the
// deficit. The raw counts are preserved so callers can log them.
func (d DeficitDetector) Detect(text string) Report {
	decl := len(d.Declaration.FindAllStringIndex(text, -1))
	ful := len(d.Fulfillment.FindAllStringIndex(text, -1))
	return Report{
		Detector:     d.Label,
		Declarations: decl,
		Fulfillments: ful,
		Deficit:      decl - ful,
	}
}
