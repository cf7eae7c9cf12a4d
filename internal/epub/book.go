// Package epub packages an ordered chapter sequence into an EPUB 3
// container (with EPUB 2 NCX compatibility). It renders every chapter
// title as the single heading element of its document, followed by the
// body paragraphs; the upstream engine guarantees the title text never
// reappears in the body.
package epub

import (
	"fmt"
	"time"
)

// Chapter is one spine entry: a display title and its body paragraphs.
type Chapter struct {
	Title      string
	Paragraphs []string
}

// Book holds everything needed to write one EPUB file.
type Book struct {
	Title       string
	Author      string
	Publisher   string
	Language    string // defaults to "zh"
	Identifier  string // defaults to a urn derived from the title
	Description string

	// Cover is an optional image; CoverMediaType must be set alongside
	// it (e.g. "image/jpeg").
	Cover          []byte
	CoverMediaType string

	// Modified stamps dcterms:modified; the zero value uses the Unix
	// epoch so identical input always produces identical output.
	Modified time.Time

	Chapters []Chapter
}

func (b *Book) validate() error {
	if b.Title == "" {
		return fmt.Errorf("epub: book title is empty")
	}
	if len(b.Chapters) == 0 {
		return fmt.Errorf("epub: book has no chapters")
	}
	if len(b.Cover) > 0 && b.CoverMediaType == "" {
		return fmt.Errorf("epub: cover set without media type")
	}
	return nil
}

func (b *Book) language() string {
	if b.Language == "" {
		return "zh"
	}
	return b.Language
}

func (b *Book) identifier() string {
	if b.Identifier == "" {
		return "urn:txt2epub:" + b.Title
	}
	return b.Identifier
}

func (b *Book) modified() string {
	t := b.Modified
	if t.IsZero() {
		t = time.Unix(0, 0).UTC()
	}
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

// chapterFile names the XHTML document of the i-th (0-based) chapter.
func chapterFile(i int) string {
	return fmt.Sprintf("text/chapter_%04d.xhtml", i+1)
}

func chapterID(i int) string {
	return fmt.Sprintf("chapter_%04d", i+1)
}
