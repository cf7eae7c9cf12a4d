package chapter

import "sort"

// proximityWindow is the line distance within which a blank-line boundary
// is considered a duplicate of a pattern boundary and discarded. Same or
// adjacent line counts as a duplicate.
const proximityWindow = 1

// detectBoundaries runs the strategy selected by cfg and returns the
// merged boundary list, strictly increasing by line with no two
// boundaries on the same line.
func detectBoundaries(lines []string, cfg Config) []boundary {
	switch cfg.method() {
	case MethodPatternOnly:
		return scanPatterns(lines)
	case MethodDoubleEmptyLineOnly:
		return scanDoubleEmptyLine(lines)
	default: // MethodAuto
		patterns := scanPatterns(lines)
		if len(patterns) == 0 {
			if cfg.EnableDoubleEmptyLine {
				return scanDoubleEmptyLine(lines)
			}
			return nil
		}
		if !cfg.EnableDoubleEmptyLine {
			return patterns
		}
		return mergeBoundaries(patterns, scanDoubleEmptyLine(lines))
	}
}

// scanPatterns collects every heading-pattern hit in document order.
func scanPatterns(lines []string) []boundary {
	var bounds []boundary
	for i, line := range lines {
		if line == "" {
			continue
		}
		if h := MatchHeading(line); h != nil {
			bounds = append(bounds, boundary{line: i, heading: h})
		}
	}
	return bounds
}

// mergeBoundaries supplements pattern boundaries with blank-line
// boundaries that do not fall within the proximity window of any pattern
// boundary. On a same-line tie the pattern boundary wins and the
// blank-line candidate is discarded.
func mergeBoundaries(patterns, blanks []boundary) []boundary {
	merged := make([]boundary, len(patterns))
	copy(merged, patterns)
	for _, b := range blanks {
		near := false
		for _, p := range patterns {
			d := b.line - p.line
			if d < 0 {
				d = -d
			}
			if d <= proximityWindow {
				near = true
				break
			}
		}
		if !near {
			merged = append(merged, b)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].line < merged[j].line })
	return merged
}
