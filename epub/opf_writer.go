package epub

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/jianyun8023/img2epub/config"
	"github.com/jianyun8023/img2epub/imagedir"
)

// PackageDocument returns the serialised OEBPS/content.opf.
func PackageDocument(cfg *config.BuildConfig, pages []imagedir.PageEntry) ([]byte, error) {
	pkg, err := NewPackage(cfg, pages)
	if err != nil {
		return nil, err
	}
	out, err := pkg.marshalOPFWithEtree()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OPF: %w", err)
	}
	return out, nil
}

// marshalOPFWithEtree serializes the Package to XML using etree.
// This produces cleaner namespace prefixes (e.g., dc:identifier instead of identifier xmlns="...").
func (pkg *Package) marshalOPFWithEtree() ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	// Create root package element
	root := doc.CreateElement("package")
	root.CreateAttr("xmlns", NsOPF)
	root.CreateAttr("unique-identifier", pkg.UniqueIdentifier)
	root.CreateAttr("version", pkg.Version)
	if pkg.Prefix != "" {
		root.CreateAttr("prefix", pkg.Prefix)
	}
	if pkg.Dir != "" {
		root.CreateAttr("dir", pkg.Dir)
	}

	// Create metadata element with namespace declarations
	metadata := root.CreateElement("metadata")
	metadata.CreateAttr("xmlns:dc", NsDC)
	metadata.CreateAttr("xmlns:opf", NsOPF)

	// Add DC elements
	addSimple := func(tag string, values []SimpleMeta) {
		for _, v := range values {
			el := metadata.CreateElement(tag)
			if v.ID != "" {
				el.CreateAttr("id", v.ID)
			}
			el.SetText(v.Value)
		}
	}
	addSimple("dc:identifier", pkg.Metadata.Identifiers)
	addSimple("dc:title", pkg.Metadata.Titles)
	addSimple("dc:creator", pkg.Metadata.Creators)
	addSimple("dc:language", pkg.Metadata.Languages)
	addSimple("dc:subject", pkg.Metadata.Subjects)

	// Add meta elements
	for _, m := range pkg.Metadata.Meta {
		el := metadata.CreateElement("meta")
		if m.Property != "" {
			// EPUB 3 style
			if m.Refines != "" {
				el.CreateAttr("refines", m.Refines)
			}
			el.CreateAttr("property", m.Property)
			if m.Scheme != "" {
				el.CreateAttr("scheme", m.Scheme)
			}
			el.SetText(m.Value)
		} else if m.Name != "" {
			// EPUB 2 style
			el.CreateAttr("name", m.Name)
			el.CreateAttr("content", m.Content)
		}
	}

	// Create manifest
	manifest := root.CreateElement("manifest")
	for _, item := range pkg.Manifest.Items {
		el := manifest.CreateElement("item")
		el.CreateAttr("href", item.Href)
		el.CreateAttr("id", item.ID)
		el.CreateAttr("media-type", item.MediaType)
		if item.Properties != "" {
			el.CreateAttr("properties", item.Properties)
		}
	}

	// Create spine
	spine := root.CreateElement("spine")
	if pkg.Spine.Toc != "" {
		spine.CreateAttr("toc", pkg.Spine.Toc)
	}
	if pkg.Spine.PageProg != "" {
		spine.CreateAttr("page-progression-direction", pkg.Spine.PageProg)
	}
	for _, itemref := range pkg.Spine.ItemRefs {
		el := spine.CreateElement("itemref")
		el.CreateAttr("idref", itemref.IDRef)
		if itemref.Properties != "" {
			el.CreateAttr("properties", itemref.Properties)
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
