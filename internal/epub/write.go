package epub

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// mimetypeContent is the mandatory first archive entry; it must be
// stored uncompressed so reading systems can sniff it.
const mimetypeContent = "application/epub+zip"

// WriteFile packages the book and writes it to path.
func WriteFile(b *Book, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("epub: create %s: %w", path, err)
	}
	if err := Write(b, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("epub: close %s: %w", path, err)
	}
	return nil
}

// Write packages the book into w as an EPUB archive.
func Write(b *Book, w io.Writer) error {
	if err := b.validate(); err != nil {
		return err
	}

	zw := zip.NewWriter(w)

	// mimetype first, stored.
	mt, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return fmt.Errorf("epub: write mimetype: %w", err)
	}
	if _, err := io.WriteString(mt, mimetypeContent); err != nil {
		return fmt.Errorf("epub: write mimetype: %w", err)
	}

	if err := writeXML(zw, "META-INF/container.xml", buildContainer()); err != nil {
		return err
	}
	if err := writeString(zw, "OEBPS/content.opf", renderOPF(b)); err != nil {
		return err
	}
	if err := writeXML(zw, "OEBPS/toc.ncx", buildNCX(b)); err != nil {
		return err
	}
	if err := writeString(zw, "OEBPS/nav.xhtml", renderNav(b)); err != nil {
		return err
	}
	if err := writeString(zw, "OEBPS/style.css", defaultCSS); err != nil {
		return err
	}
	if len(b.Cover) > 0 {
		if err := writeBytes(zw, "OEBPS/"+coverHref(b), b.Cover); err != nil {
			return err
		}
		if err := writeString(zw, "OEBPS/cover.xhtml", renderCoverPage(b)); err != nil {
			return err
		}
	}
	for i, c := range b.Chapters {
		if err := writeString(zw, "OEBPS/"+chapterFile(i), renderChapter(c, b.language())); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("epub: finalize archive: %w", err)
	}
	return nil
}

func writeXML(zw *zip.Writer, name string, doc any) error {
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("epub: marshal %s: %w", name, err)
	}
	return writeBytes(zw, name, append([]byte(xml.Header), out...))
}

func writeString(zw *zip.Writer, name, content string) error {
	return writeBytes(zw, name, []byte(content))
}

func writeBytes(zw *zip.Writer, name string, content []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("epub: create entry %s: %w", name, err)
	}
	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("epub: write entry %s: %w", name, err)
	}
	return nil
}
