// Package pdfout renders a flat PDF rendition of an assembled book. It
// is an optional companion to the EPUB output for readers that want a
// print-style file; layout is intentionally simple.
package pdfout

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/lunaray/txt2epub/internal/chapter"
)

// Options controls the PDF rendition.
type Options struct {
	// FontPath points at a UTF-8 TTF font file. CJK text cannot be
	// rendered with the PDF core fonts, so a font file is required for
	// Chinese books; when empty the core Helvetica is used and non-ASCII
	// text will not render correctly.
	FontPath string
}

// Write renders the book's chapters to a PDF at outPath: one heading per
// chapter, body paragraphs as wrapped text blocks.
func Write(title string, chapters []chapter.Chapter, outPath string, opts Options) error {
	if len(chapters) == 0 {
		return fmt.Errorf("pdfout: no chapters to render")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	family := "Helvetica"
	if opts.FontPath != "" {
		family = "book"
		pdf.AddUTF8Font(family, "", opts.FontPath)
	}
	pdf.SetTitle(title, true)
	pdf.SetFont(family, "", 11)

	for _, c := range chapters {
		pdf.AddPage()
		pdf.SetFont(family, "", 16)
		pdf.MultiCell(0, 9, c.Title, "", "C", false)
		pdf.Ln(4)
		pdf.SetFont(family, "", 11)
		for _, p := range c.Paragraphs {
			for _, line := range strings.Split(p, "\n") {
				pdf.MultiCell(0, 6, line, "", "L", false)
			}
			pdf.Ln(3)
		}
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("pdfout: write %s: %w", outPath, err)
	}
	return nil
}
