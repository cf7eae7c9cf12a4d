package epub

import "encoding/xml"

// NCX document, kept for EPUB 2 reading systems alongside the EPUB 3
// nav document.
type ncxDocument struct {
	XMLName xml.Name   `xml:"ncx"`
	Xmlns   string     `xml:"xmlns,attr"`
	Version string     `xml:"version,attr"`
	Head    ncxHead    `xml:"head"`
	Title   ncxText    `xml:"docTitle"`
	NavMap  []navPoint `xml:"navMap>navPoint"`
}

type ncxHead struct {
	Metas []ncxMeta `xml:"meta"`
}

type ncxMeta struct {
	Name    string `xml:"name,attr"`
	Content string `xml:"content,attr"`
}

type ncxText struct {
	Text string `xml:"text"`
}

type navPoint struct {
	ID        string     `xml:"id,attr"`
	PlayOrder int        `xml:"playOrder,attr"`
	Label     ncxText    `xml:"navLabel"`
	Content   ncxContent `xml:"content"`
}

type ncxContent struct {
	Src string `xml:"src,attr"`
}

func buildNCX(b *Book) ncxDocument {
	doc := ncxDocument{
		Xmlns:   "http://www.daisy.org/z3986/2005/ncx/",
		Version: "2005-1",
		Head: ncxHead{Metas: []ncxMeta{
			{Name: "dtb:uid", Content: b.identifier()},
			{Name: "dtb:depth", Content: "1"},
			{Name: "dtb:totalPageCount", Content: "0"},
			{Name: "dtb:maxPageNumber", Content: "0"},
		}},
		Title: ncxText{Text: b.Title},
	}
	for i, c := range b.Chapters {
		doc.NavMap = append(doc.NavMap, navPoint{
			ID:        chapterID(i),
			PlayOrder: i + 1,
			Label:     ncxText{Text: c.Title},
			Content:   ncxContent{Src: chapterFile(i)},
		})
	}
	return doc
}

// containerDocument models META-INF/container.xml, which points readers
// at the package document.
type containerDocument struct {
	XMLName   xml.Name        `xml:"container"`
	Version   string          `xml:"version,attr"`
	Xmlns     string          `xml:"xmlns,attr"`
	RootFiles []containerRoot `xml:"rootfiles>rootfile"`
}

type containerRoot struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

func buildContainer() containerDocument {
	return containerDocument{
		Version: "1.0",
		Xmlns:   "urn:oasis:names:tc:opendocument:xmlns:container",
		RootFiles: []containerRoot{
			{FullPath: "OEBPS/content.opf", MediaType: "application/oebps-package+xml"},
		},
	}
}
