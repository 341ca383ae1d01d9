package epub

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jianyun8023/img2epub/imagedir"
)

// PageTitle is the <title> of the page document: "Cover" for the first page.
func PageTitle(index int) string {
	if index == 0 {
		return "Cover"
	}
	return "Page " + strconv.Itoa(index)
}

// PageType is the epub:type of the page body.
func PageType(index int) string {
	if index == 0 {
		return "cover"
	}
	return "bodymatter"
}

// PageDocument returns the XHTML wrapper of one page: an SVG exactly the
// size of the image, with a matching viewport.
func PageDocument(p imagedir.PageEntry) ([]byte, error) {
	w := strconv.Itoa(p.Width)
	h := strconv.Itoa(p.Height)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	doc.CreateDirective("DOCTYPE html")

	html := newXHTML(doc)

	head := html.CreateElement("head")
	viewport := head.CreateElement("meta")
	viewport.CreateAttr("name", "viewport")
	viewport.CreateAttr("content", "width="+w+", height="+h)
	head.CreateElement("title").SetText(PageTitle(p.Index))
	css := head.CreateElement("link")
	css.CreateAttr("rel", "stylesheet")
	css.CreateAttr("type", "text/css")
	css.CreateAttr("href", StylesheetHref)

	body := html.CreateElement("body")
	body.CreateAttr("epub:type", PageType(p.Index))

	svg := body.CreateElement("svg")
	svg.CreateAttr("xmlns", NsSVG)
	svg.CreateAttr("xmlns:xlink", NsXLink)
	svg.CreateAttr("id", "image")
	svg.CreateAttr("version", "1.1")
	svg.CreateAttr("viewBox", "0 0 "+w+" "+h)

	img := svg.CreateElement("image")
	img.CreateAttr("width", w)
	img.CreateAttr("height", h)
	img.CreateAttr("xlink:href", ImageHref(p.Index, p.Ext))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", PageHref(p.Index), err)
	}
	return out, nil
}
