package epub

import "encoding/xml"

// XML Namespaces
const (
	NsDC        = "http://purl.org/dc/elements/1.1/"
	NsOPF       = "http://www.idpf.org/2007/opf"
	NsContainer = "urn:oasis:names:tc:opendocument:xmlns:container"
	NsNCX       = "http://www.daisy.org/z3986/2005/ncx/"
	NsXHTML     = "http://www.w3.org/1999/xhtml"
	NsOPS       = "http://www.idpf.org/2007/ops"
	NsSVG       = "http://www.w3.org/2000/svg"
	NsXLink     = "http://www.w3.org/1999/xlink"
)

// RenditionPrefix declares the rendition: vocabulary used by fixed-layout metas.
const RenditionPrefix = "rendition: http://www.idpf.org/vocab/rendition/#"

// Package is the root element of the OPF file (EPUB 3.0).
type Package struct {
	XMLName          xml.Name `xml:"http://www.idpf.org/2007/opf package"`
	Version          string   `xml:"version,attr"`
	UniqueIdentifier string   `xml:"unique-identifier,attr"`
	Prefix           string   `xml:"prefix,attr,omitempty"`
	Dir              string   `xml:"dir,attr,omitempty"` // text direction

	Metadata Metadata `xml:"metadata"`
	Manifest Manifest `xml:"manifest"`
	Spine    Spine    `xml:"spine"`
}

// Metadata contains publication metadata.
// Dublin Core elements are written first, followed by every meta in insertion order.
type Metadata struct {
	XMLName xml.Name `xml:"metadata"`

	Identifiers []SimpleMeta `xml:"http://purl.org/dc/elements/1.1/ identifier"`
	Titles      []SimpleMeta `xml:"http://purl.org/dc/elements/1.1/ title"`
	Creators    []SimpleMeta `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Languages   []SimpleMeta `xml:"http://purl.org/dc/elements/1.1/ language"`
	Subjects    []SimpleMeta `xml:"http://purl.org/dc/elements/1.1/ subject"`

	// Meta tags (Generic)
	// - EPUB 2: <meta name="..." content="..." />
	// - EPUB 3: <meta property="...">Value</meta>
	Meta []Meta `xml:"meta"`
}

// SimpleMeta represents basic DC elements like <dc:title>Value</dc:title>
type SimpleMeta struct {
	Value string `xml:",chardata"`
	ID    string `xml:"id,attr,omitempty"`
}

// Meta represents the generic <meta> tag.
type Meta struct {
	// EPUB 2 Attributes
	Name    string `xml:"name,attr,omitempty"`
	Content string `xml:"content,attr,omitempty"`

	// EPUB 3 Attributes
	Property string `xml:"property,attr,omitempty"`
	Refines  string `xml:"refines,attr,omitempty"`
	Scheme   string `xml:"scheme,attr,omitempty"`

	Value string `xml:",chardata"`
}

// Manifest lists all files in the EPUB.
type Manifest struct {
	Items []Item `xml:"item"`
}

type Item struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr,omitempty"` // e.g. "cover-image", "svg", "nav"
}

// Spine defines the reading order.
type Spine struct {
	Toc      string    `xml:"toc,attr,omitempty"` // EPUB 2 NCX reference
	PageProg string    `xml:"page-progression-direction,attr,omitempty"`
	ItemRefs []ItemRef `xml:"itemref"`
}

type ItemRef struct {
	IDRef      string `xml:"idref,attr"`
	Properties string `xml:"properties,attr,omitempty"`
}

// FindItem returns the manifest item with the given id, or nil.
func (pkg *Package) FindItem(id string) *Item {
	for i := range pkg.Manifest.Items {
		if pkg.Manifest.Items[i].ID == id {
			return &pkg.Manifest.Items[i]
		}
	}
	return nil
}
