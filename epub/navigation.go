package epub

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jianyun8023/img2epub/config"
	"github.com/jianyun8023/img2epub/imagedir"
)

// NCXDocument returns the legacy OEBPS/toc.ncx. It has a single nav point
// on the cover page carrying the book title.
func NCXDocument(cfg *config.BuildConfig) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8" standalone="no"`)

	root := doc.CreateElement("ncx:ncx")
	root.CreateAttr("xmlns:ncx", NsNCX)
	root.CreateAttr("version", "2005-1")

	head := root.CreateElement("ncx:head")
	for _, kv := range [][2]string{
		{"dtb:uid", cfg.BookID},
		{"dtb:depth", "1"},
		{"dtb:totalPageCount", "0"},
		{"dtb:maxPageNumber", "0"},
	} {
		m := head.CreateElement("ncx:meta")
		m.CreateAttr("name", kv[0])
		m.CreateAttr("content", kv[1])
	}

	root.CreateElement("ncx:docTitle").CreateElement("ncx:text").SetText(cfg.Title)
	root.CreateElement("ncx:docAuthor").CreateElement("ncx:text").SetText(cfg.Author)

	point := root.CreateElement("ncx:navMap").CreateElement("ncx:navPoint")
	point.CreateAttr("id", "p1")
	point.CreateAttr("playOrder", "1")
	point.CreateElement("ncx:navLabel").CreateElement("ncx:text").SetText(cfg.Title)
	point.CreateElement("ncx:content").CreateAttr("src", PageHref(0))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write toc.ncx: %w", err)
	}
	return out, nil
}

// NavDocument returns the EPUB 3 navigation document OEBPS/toc.xhtml.
// The table of contents holds the cover as its only chapter; the page list
// names every other page by its index.
func NavDocument(cfg *config.BuildConfig, pages []imagedir.PageEntry) ([]byte, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	doc.CreateProcInst("xml-model", `href="http://www.idpf.org/epub/30/schema/epub-nav-30.rnc" type="application/relax-ng-compact-syntax"`)
	doc.CreateDirective("DOCTYPE html")

	html := newXHTML(doc)
	html.CreateElement("head").CreateElement("title").SetText(cfg.Title)

	section := html.CreateElement("body").CreateElement("section")
	section.CreateAttr("class", "frontmatter")
	section.CreateAttr("epub:type", "frontmatter toc")
	section.CreateElement("h1").SetText("Table of Contents")

	toc := section.CreateElement("nav")
	toc.CreateAttr("epub:type", "toc")
	toc.CreateAttr("id", "toc")
	chapter := toc.CreateElement("ol").CreateElement("li")
	chapter.CreateAttr("epub:type", "chapter")
	link(chapter, PageHref(pages[0].Index), cfg.Title)

	pageList := section.CreateElement("nav")
	pageList.CreateAttr("epub:type", "page-list")
	ol := pageList.CreateElement("ol")
	for _, p := range pages[1:] {
		link(ol.CreateElement("li"), PageHref(p.Index), strconv.Itoa(p.Index))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write toc.xhtml: %w", err)
	}
	return out, nil
}

// newXHTML adds the <html> root shared by the navigation and page documents.
func newXHTML(doc *etree.Document) *etree.Element {
	html := doc.CreateElement("html")
	html.CreateAttr("xmlns", NsXHTML)
	html.CreateAttr("xmlns:epub", NsOPS)
	html.CreateAttr("lang", Language)
	return html
}

func link(parent *etree.Element, href, text string) {
	a := parent.CreateElement("a")
	a.CreateAttr("href", href)
	a.SetText(text)
}
