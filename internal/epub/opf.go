package epub

import (
	"strings"

	"golang.org/x/net/html"
)

// renderOPF produces the package document. It is rendered by hand rather
// than through encoding/xml because the Dublin Core elements need their
// literal dc: prefix, which the xml marshaler rewrites into default-
// namespace form that some reading systems choke on.
func renderOPF(b *Book) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<package xmlns="http://www.idpf.org/2007/opf" version="3.0" unique-identifier="pub-id">` + "\n")

	sb.WriteString(`  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">` + "\n")
	sb.WriteString(`    <dc:identifier id="pub-id">` + html.EscapeString(b.identifier()) + "</dc:identifier>\n")
	sb.WriteString("    <dc:title>" + html.EscapeString(b.Title) + "</dc:title>\n")
	sb.WriteString("    <dc:language>" + html.EscapeString(b.language()) + "</dc:language>\n")
	if b.Author != "" {
		sb.WriteString("    <dc:creator>" + html.EscapeString(b.Author) + "</dc:creator>\n")
	}
	if b.Publisher != "" {
		sb.WriteString("    <dc:publisher>" + html.EscapeString(b.Publisher) + "</dc:publisher>\n")
	}
	if b.Description != "" {
		sb.WriteString("    <dc:description>" + html.EscapeString(b.Description) + "</dc:description>\n")
	}
	sb.WriteString(`    <meta property="dcterms:modified">` + b.modified() + "</meta>\n")
	if len(b.Cover) > 0 {
		sb.WriteString(`    <meta name="cover" content="cover-image"/>` + "\n")
	}
	sb.WriteString("  </metadata>\n")

	sb.WriteString("  <manifest>\n")
	writeItem := func(id, href, mediaType, properties string) {
		sb.WriteString(`    <item id="` + id + `" href="` + href + `" media-type="` + mediaType + `"`)
		if properties != "" {
			sb.WriteString(` properties="` + properties + `"`)
		}
		sb.WriteString("/>\n")
	}
	writeItem("nav", "nav.xhtml", "application/xhtml+xml", "nav")
	writeItem("ncx", "toc.ncx", "application/x-dtbncx+xml", "")
	writeItem("style", "style.css", "text/css", "")
	if len(b.Cover) > 0 {
		writeItem("cover-image", coverHref(b), b.CoverMediaType, "cover-image")
		writeItem("cover", "cover.xhtml", "application/xhtml+xml", "")
	}
	for i := range b.Chapters {
		writeItem(chapterID(i), chapterFile(i), "application/xhtml+xml", "")
	}
	sb.WriteString("  </manifest>\n")

	sb.WriteString(`  <spine toc="ncx">` + "\n")
	if len(b.Cover) > 0 {
		sb.WriteString(`    <itemref idref="cover"/>` + "\n")
	}
	for i := range b.Chapters {
		sb.WriteString(`    <itemref idref="` + chapterID(i) + `"/>` + "\n")
	}
	sb.WriteString("  </spine>\n")
	sb.WriteString("</package>\n")
	return sb.String()
}

// coverHref picks the archive name of the cover image from its media type.
func coverHref(b *Book) string {
	switch b.CoverMediaType {
	case "image/png":
		return "cover.png"
	case "image/gif":
		return "cover.gif"
	default:
		return "cover.jpg"
	}
}
