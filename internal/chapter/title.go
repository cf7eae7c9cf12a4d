package chapter

import (
	"fmt"
	"strings"
)

// previewRunes is how much of the first paragraph a synthesized fallback
// title carries.
const previewRunes = 10

// resolveTitle determines the display title of one chapter segment. It
// returns the title before marker injection and whether the segment's
// first non-blank line is a recognized heading (in which case the caller
// must exclude that line from the body).
func resolveTitle(seg []string, index int) (title string, matched bool, ordinal int) {
	first := firstNonBlank(seg)
	if first >= 0 {
		if h := MatchHeading(seg[first]); h != nil {
			if h.OrdinalOK {
				ordinal = h.Ordinal
			}
			return seg[first], true, ordinal
		}
	}
	return fallbackTitle(seg, index), false, 0
}

// fallbackTitle synthesizes "Chapter {index} - {preview}" from the first
// paragraph of the segment, truncating the preview to previewRunes with a
// trailing ellipsis when the paragraph is longer.
func fallbackTitle(seg []string, index int) string {
	para := firstParagraph(seg)
	runes := []rune(para)
	if len(runes) > previewRunes {
		para = string(runes[:previewRunes]) + "…"
	}
	return fmt.Sprintf("Chapter %d - %s", index, para)
}

// firstParagraph joins the segment's lines from the first non-blank line
// up to the next blank line.
func firstParagraph(seg []string) string {
	start := firstNonBlank(seg)
	if start < 0 {
		return ""
	}
	end := start
	for end < len(seg) && seg[end] != "" {
		end++
	}
	return strings.Join(seg[start:end], " ")
}

func firstNonBlank(seg []string) int {
	for i, l := range seg {
		if l != "" {
			return i
		}
	}
	return -1
}

// applyMarker prefixes title with the configured marker. The injection is
// idempotent: a title that already begins with the exact marker is
// returned unchanged, so reprocessing never double-prefixes.
func applyMarker(title string, cfg Config) string {
	if !cfg.EnableMarker {
		return title
	}
	if strings.HasPrefix(title, cfg.Marker) {
		return title
	}
	return cfg.Marker + title
}
