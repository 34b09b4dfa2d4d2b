package textfix

import "strings"

// regionState is the scan cursor's position relative to a marked region.
// An explicit state machine rather than a boolean: the flat (non-nesting)
// region model is a design decision, not an accident of a toggle.
type regionState int

const (
	stateOutside regionState = iota
	stateInside
)

// RegionScanner flags the lines that fall between a start marker and an end
// marker. Matching is substring containment, case-sensitive. Regions do not
// nest: a second start marker inside an open region is an ordinary member
// line and does not deepen anything. A region whose end marker never appears
// runs to end of file; the scanner does not invent an implicit close.
type RegionScanner struct {
	StartMarker string
	EndMarker   string
}

// Flags returns one region-membership flag per input line. The marker lines
// themselves are members of the region.
func (s RegionScanner) Flags(lines []string) []bool {
	flags := make([]bool, len(lines))
	state := stateOutside
	for i, line := range lines {
		switch state {
		case stateOutside:
			if strings.Contains(line, s.StartMarker) {
				state = stateInside
				flags[i] = true
			}
		case stateInside:
			flags[i] = true
			if strings.Contains(line, s.EndMarker) {
				state = stateOutside
			}
		}
	}
	return flags
}
