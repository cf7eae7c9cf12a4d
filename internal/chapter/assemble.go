package chapter

import "strings"

// assemble slices the document between consecutive boundaries, resolves
// each segment's title, strips matched title lines from bodies, and emits
// the final chapter sequence with 1-based strictly increasing indices.
func assemble(lines []string, bounds []boundary, cfg Config) []Chapter {
	var segments [][]string
	if len(bounds) == 0 {
		segments = [][]string{lines}
	} else {
		// Text preceding the first boundary becomes a preamble chapter
		// when it holds any content.
		if firstNonBlank(lines[:bounds[0].line]) >= 0 {
			segments = append(segments, lines[:bounds[0].line])
		}
		for i, b := range bounds {
			end := len(lines)
			if i+1 < len(bounds) {
				end = bounds[i+1].line
			}
			segments = append(segments, lines[b.line:end])
		}
	}

	chapters := make([]Chapter, 0, len(segments))
	for _, seg := range segments {
		index := len(chapters) + 1
		title, matched, ordinal := resolveTitle(seg, index)
		body := seg
		if matched {
			body = seg[firstNonBlank(seg)+1:]
		}
		chapters = append(chapters, Chapter{
			Index:      index,
			Title:      applyMarker(title, cfg),
			Paragraphs: splitParagraphs(body),
			Ordinal:    ordinal,
		})
	}
	return chapters
}

// splitParagraphs groups consecutive non-blank lines into paragraphs.
// Lines inside a paragraph are kept newline-joined so the packaging layer
// can preserve intra-paragraph breaks.
func splitParagraphs(body []string) []string {
	var paras []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			paras = append(paras, strings.Join(cur, "\n"))
			cur = cur[:0]
		}
	}
	for _, l := range body {
		if l == "" {
			flush()
			continue
		}
		cur = append(cur, l)
	}
	flush()
	return paras
}
