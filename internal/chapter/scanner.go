package chapter

// scanDoubleEmptyLine finds candidate chapter starts separated by two or
// more consecutive empty lines. The candidate is the next non-empty line
// after the blank run; a run longer than two lines still yields exactly
// one candidate.
func scanDoubleEmptyLine(lines []string) []boundary {
	var bounds []boundary
	blanks := 0
	for i, line := range lines {
		if line == "" {
			blanks++
			continue
		}
		if blanks >= 2 {
			bounds = append(bounds, boundary{line: i})
		}
		blanks = 0
	}
	return bounds
}
