// Package chapter splits a plain-text novel into titled chapters. It
// combines several boundary-detection strategies (heading patterns,
// double-empty-line separation) behind one deterministic entry point,
// resolves a display title for every chapter, and guarantees the title
// line never reappears in the chapter body.
package chapter

import (
	"fmt"
	"strings"
)

// Method selects the boundary-detection strategy.
type Method string

const (
	// MethodAuto prefers pattern matches and supplements or falls back
	// to double-empty-line boundaries.
	MethodAuto Method = "auto"
	// MethodPatternOnly uses heading-pattern matches exclusively.
	MethodPatternOnly Method = "pattern_only"
	// MethodDoubleEmptyLineOnly uses blank-line separation exclusively.
	MethodDoubleEmptyLineOnly Method = "double_empty_line_only"
)

// Config controls one conversion. It is read-only for the duration of a
// Split call; the zero value means auto detection with blank-line
// supplementation disabled and no marker injection.
type Config struct {
	Method                Method
	EnableDoubleEmptyLine bool
	EnableMarker          bool
	Marker                string
}

// Validate rejects contract violations before any processing starts.
func (c Config) Validate() error {
	switch c.Method {
	case "", MethodAuto, MethodPatternOnly, MethodDoubleEmptyLineOnly:
	default:
		return fmt.Errorf("chapter: unknown detection method %q", c.Method)
	}
	if c.EnableMarker && c.Marker == "" {
		return fmt.Errorf("chapter: marker injection enabled with empty marker")
	}
	return nil
}

func (c Config) method() Method {
	if c.Method == "" {
		return MethodAuto
	}
	return c.Method
}

// Chapter is the terminal artifact of the engine.
type Chapter struct {
	// Index is the 1-based position in the final chapter sequence.
	Index int
	// Title is the display title, computed exactly once. It is either
	// the matched heading line or a synthesized fallback, with the
	// configured marker prefix applied when enabled.
	Title string
	// Paragraphs is the chapter body split on blank-line boundaries.
	// The title line is never part of the body. Empty is valid.
	Paragraphs []string
	// Ordinal is the numeral carried by the matched heading, normalized
	// to an integer. Zero when the chapter had no heading or the numeral
	// could not be parsed; it is advisory only.
	Ordinal int
}

// boundary marks the line where a new chapter starts. heading is nil for
// boundaries derived from blank-line separation.
type boundary struct {
	line    int
	heading *Heading
}

// Split converts document into an ordered chapter sequence according to
// cfg. It is a pure function: identical inputs always produce identical
// output. Empty input yields zero chapters and no error; the only error
// condition is an invalid Config.
func Split(document string, cfg Config) ([]Chapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(document) == "" {
		return nil, nil
	}
	lines := splitLines(document)
	bounds := detectBoundaries(lines, cfg)
	return assemble(lines, bounds, cfg), nil
}

// splitLines normalizes newlines and strips per-line surrounding
// whitespace, mirroring how the detection rules are defined: a line is
// blank when it contains nothing but whitespace.
func splitLines(document string) []string {
	document = strings.ReplaceAll(document, "\r\n", "\n")
	document = strings.ReplaceAll(document, "\r", "\n")
	lines := strings.Split(document, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}
