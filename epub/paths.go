package epub

import (
	"fmt"
	"path"
)

// Archive entry names.
const (
	MimetypePath       = "mimetype"
	MimeType           = "application/epub+zip"
	ContainerPath      = "META-INF/container.xml"
	DisplayOptionsPath = "META-INF/com.apple.ibooks.display-options.xml"
	ContentDir         = "OEBPS"
)

// Hrefs relative to ContentDir.
const (
	PackageHref    = "content.opf"
	NCXHref        = "toc.ncx"
	NavHref        = "toc.xhtml"
	StylesheetHref = "imagestyle.css"
	ImageDir       = "images"
)

// Manifest ids of the fixed items.
const (
	StylesheetID = "imagestyle"
	NCXID        = "ncxtoc"
	NavID        = "toc"
	BookIDRef    = "bookId"
	CreatorID    = "creator"
)

// pageUID is the zero-padded page number used in every page-derived name.
func pageUID(index int) string {
	return fmt.Sprintf("%03d", index)
}

// PageID is the manifest id of the page document at index.
func PageID(index int) string {
	return "page-" + pageUID(index)
}

// ImageID is the manifest id of the page image at index.
func ImageID(index int) string {
	return "img-" + pageUID(index)
}

// PageHref is the page document href, e.g. page-007.xhtml.
func PageHref(index int) string {
	return PageID(index) + ".xhtml"
}

// ImageHref is the page image href, e.g. images/page-007.png.
func ImageHref(index int, ext string) string {
	return path.Join(ImageDir, "page-"+pageUID(index)+"."+ext)
}

// contentPath returns the archive entry name for an href under ContentDir.
func contentPath(href string) string {
	return path.Join(ContentDir, href)
}
