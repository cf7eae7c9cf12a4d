package chapter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lunaray/txt2epub/internal/cnnum"
)

// HeadingKind identifies which catalog rule matched a heading line.
type HeadingKind int

const (
	// KindMarker is a special-character prefix heading (#Title, @Title).
	KindMarker HeadingKind = iota + 1
	// KindArabic is a keyword heading with Arabic numerals (第1章,
	// Chapter 12).
	KindArabic
	// KindChinese is a keyword heading with Chinese numerals (第一章).
	KindChinese
	// KindEnumerated is a list-style heading (1. / 一、).
	KindEnumerated
)

// Heading is a matched heading line. Raw is the full trimmed line, which
// doubles as the chapter's display title.
type Heading struct {
	Raw     string
	Kind    HeadingKind
	Ordinal int
	// OrdinalOK reports whether Ordinal carries a parsed value. A false
	// value never invalidates the match; it only disables ordinal
	// validation for this heading.
	OrdinalOK bool
}

// The numeral alphabet used by Chinese chapter headings, including the
// financial forms that occasionally show up in scanned texts.
const hanNumerals = `〇一二两三四五六七八九十百千万亿零壹贰叁肆伍陸柒捌玖拾佰仟`

// Heading patterns in priority order. The `(?:\s|$)` tails enforce a word
// boundary after the keyword so that "第1章课" or "1.2" never match.
var (
	markerRe = regexp.MustCompile(`^[#@*]+\S`)

	arabicRes = []*regexp.Regexp{
		regexp.MustCompile(`^第\s*(\d+)\s*[章节](?:\s|$)`),
		regexp.MustCompile(`(?i)^chapter\s*(\d+)(?:\s|$)`),
		regexp.MustCompile(`(?i)^section\s*(\d+)(?:\s|$)`),
	}

	chineseRes = []*regexp.Regexp{
		regexp.MustCompile(`^第\s*([` + hanNumerals + `]+)\s*[章节部回集卷](?:\s|$)`),
	}

	// Roman-numeral English headings ride with the Chinese rule's
	// priority slot: both are "numeral text" forms whose ordinal may
	// fail to normalize without rejecting the match.
	romanRe = regexp.MustCompile(`(?i)^(?:chapter|section)\s+([IVXLC]+)(?:\s|$)`)

	enumArabicRe  = regexp.MustCompile(`^(\d+)\s*[.、](?:\s|$)`)
	enumChineseRe = regexp.MustCompile(`^([` + hanNumerals + `]+)\s*[.、](?:\s|$)`)
)

// MatchHeading tests a single trimmed line against the heading catalog.
// Patterns are tried in fixed priority order and the first match wins;
// a nil result means the line is not a heading. The matcher is stateless:
// the same line always yields the same result.
func MatchHeading(line string) *Heading {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if markerRe.MatchString(line) {
		return &Heading{Raw: line, Kind: KindMarker}
	}

	for _, re := range arabicRes {
		if m := re.FindStringSubmatch(line); m != nil {
			h := &Heading{Raw: line, Kind: KindArabic}
			if n, err := strconv.Atoi(m[1]); err == nil {
				h.Ordinal, h.OrdinalOK = n, true
			}
			return h
		}
	}

	for _, re := range chineseRes {
		if m := re.FindStringSubmatch(line); m != nil {
			h := &Heading{Raw: line, Kind: KindChinese}
			if n, err := cnnum.Parse(m[1]); err == nil {
				h.Ordinal, h.OrdinalOK = n, true
			}
			return h
		}
	}
	if m := romanRe.FindStringSubmatch(line); m != nil {
		h := &Heading{Raw: line, Kind: KindChinese}
		if n, ok := parseRoman(m[1]); ok {
			h.Ordinal, h.OrdinalOK = n, true
		}
		return h
	}

	if m := enumArabicRe.FindStringSubmatch(line); m != nil {
		h := &Heading{Raw: line, Kind: KindEnumerated}
		if n, err := strconv.Atoi(m[1]); err == nil {
			h.Ordinal, h.OrdinalOK = n, true
		}
		return h
	}
	if m := enumChineseRe.FindStringSubmatch(line); m != nil {
		h := &Heading{Raw: line, Kind: KindEnumerated}
		if n, err := cnnum.Parse(m[1]); err == nil {
			h.Ordinal, h.OrdinalOK = n, true
		}
		return h
	}

	return nil
}

var romanValues = map[byte]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100}

func parseRoman(s string) (int, bool) {
	s = strings.ToUpper(s)
	total := 0
	for i := 0; i < len(s); i++ {
		v, ok := romanValues[s[i]]
		if !ok {
			return 0, false
		}
		if i+1 < len(s) && romanValues[s[i+1]] > v {
			total -= v
		} else {
			total += v
		}
	}
	if total <= 0 {
		return 0, false
	}
	return total, true
}
