package epub

import (
	"strings"

	"golang.org/x/net/html"
)

// defaultCSS is the stylesheet shipped with every book. Serif faces and
// a 2em text indent follow Chinese e-book layout conventions.
const defaultCSS = `body {
  font-family: "SimSun", "宋体", serif;
  line-height: 1.8;
  margin: 2em;
}
h1 {
  font-size: 1.6em;
  text-align: center;
  border-bottom: 1px solid #666;
  padding-bottom: 0.5em;
  margin-bottom: 1.5em;
}
p {
  text-indent: 2em;
  margin-bottom: 1em;
  text-align: justify;
}
`

const xhtmlHeader = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">
`

// renderChapter produces the XHTML document for one chapter. The display
// title appears exactly once, as the <h1>; paragraphs follow as <p>
// elements with intra-paragraph line breaks preserved.
func renderChapter(c Chapter, lang string) string {
	var sb strings.Builder
	sb.WriteString(xhtmlHeader)
	sb.WriteString("<head>\n<title>")
	sb.WriteString(html.EscapeString(c.Title))
	sb.WriteString("</title>\n")
	sb.WriteString(`<link rel="stylesheet" type="text/css" href="../style.css"/>` + "\n")
	sb.WriteString("</head>\n<body")
	if lang != "" {
		sb.WriteString(` xml:lang="` + html.EscapeString(lang) + `"`)
	}
	sb.WriteString(">\n<h1>")
	sb.WriteString(html.EscapeString(c.Title))
	sb.WriteString("</h1>\n")
	for _, p := range c.Paragraphs {
		sb.WriteString("<p>")
		lines := strings.Split(p, "\n")
		for i, l := range lines {
			if i > 0 {
				sb.WriteString("<br/>")
			}
			sb.WriteString(html.EscapeString(l))
		}
		sb.WriteString("</p>\n")
	}
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

// renderNav produces the EPUB 3 navigation document.
func renderNav(b *Book) string {
	var sb strings.Builder
	sb.WriteString(xhtmlHeader)
	sb.WriteString("<head>\n<title>")
	sb.WriteString(html.EscapeString(b.Title))
	sb.WriteString("</title>\n</head>\n<body>\n")
	sb.WriteString(`<nav epub:type="toc" id="toc">` + "\n<ol>\n")
	for i, c := range b.Chapters {
		sb.WriteString(`<li><a href="` + chapterFile(i) + `">`)
		sb.WriteString(html.EscapeString(c.Title))
		sb.WriteString("</a></li>\n")
	}
	sb.WriteString("</ol>\n</nav>\n</body>\n</html>\n")
	return sb.String()
}

// renderCoverPage wraps the cover image in a minimal XHTML document.
func renderCoverPage(b *Book) string {
	var sb strings.Builder
	sb.WriteString(xhtmlHeader)
	sb.WriteString("<head>\n<title>Cover</title>\n</head>\n<body>\n")
	sb.WriteString(`<img src="` + coverHref(b) + `" alt="cover"/>` + "\n")
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}
