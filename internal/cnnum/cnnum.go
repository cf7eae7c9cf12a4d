// Package cnnum converts Chinese numeral text to integers. It covers the
// everyday forms (一二三…十百千万亿), the financial forms (壹贰叁…拾佰仟),
// and plain ASCII digits, which is the alphabet chapter headings in
// Chinese novels actually use.
package cnnum

import (
	"fmt"
	"strconv"
	"strings"
)

var digitValues = map[rune]int{
	'〇': 0, '零': 0,
	'一': 1, '壹': 1,
	'二': 2, '两': 2, '贰': 2,
	'三': 3, '叁': 3,
	'四': 4, '肆': 4,
	'五': 5, '伍': 5,
	'六': 6, '陆': 6, '陸': 6,
	'七': 7, '柒': 7,
	'八': 8, '捌': 8,
	'九': 9, '玖': 9,
}

var unitValues = map[rune]int{
	'十': 10, '拾': 10,
	'百': 100, '佰': 100,
	'千': 1000, '仟': 1000,
}

var sectionValues = map[rune]int{
	'万': 10000,
	'亿': 100000000,
}

// Parse converts a Chinese numeral string such as "一百二十三" or "两万零五"
// to its integer value. Plain ASCII digit strings are accepted as-is.
// Digit-by-digit forms like "一二〇" (common in year-style headings) are
// also handled.
func Parse(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("cnnum: empty input")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	runes := []rune(s)
	if v, ok := parseEnumerated(runes); ok {
		return v, nil
	}

	total := 0   // completed 万/亿 sections
	section := 0 // value below the current section unit
	number := 0  // pending digit awaiting a unit

	for _, r := range runes {
		switch {
		case r == ' ' || r == '　':
			continue
		case digitValues[r] != 0 || r == '〇' || r == '零':
			number = digitValues[r]
		case unitValues[r] != 0:
			unit := unitValues[r]
			if number == 0 {
				// bare leading unit: 十一 → 11, 千 → 1000
				number = 1
			}
			section += number * unit
			number = 0
		case sectionValues[r] != 0:
			section += number
			if section == 0 {
				section = 1
			}
			total += section * sectionValues[r]
			section = 0
			number = 0
		default:
			return 0, fmt.Errorf("cnnum: unexpected character %q in %q", r, s)
		}
	}
	return total + section + number, nil
}

// parseEnumerated handles positional digit sequences such as 一〇八六,
// where every rune is a bare digit and no unit characters appear.
func parseEnumerated(runes []rune) (int, bool) {
	if len(runes) < 2 {
		return 0, false
	}
	hasZero := false
	v := 0
	for _, r := range runes {
		d, ok := digitValues[r]
		if !ok {
			return 0, false
		}
		if d == 0 {
			hasZero = true
		}
		v = v*10 + d
	}
	// Without a zero the sequence is ambiguous with unit-less shorthand
	// (二三 could be 23); only positional forms with 〇/零 are unambiguous.
	if !hasZero {
		return 0, false
	}
	return v, true
}
