package epub

import (
	"errors"

	"github.com/jianyun8023/img2epub/config"
	"github.com/jianyun8023/img2epub/imagedir"
)

// Fixed values of every generated book.
const (
	Language = "en"

	xhtmlMediaType = "application/xhtml+xml"
	cssMediaType   = "text/css"
	ncxMediaType   = "application/x-dtbncx+xml"
)

// ErrNoPages is returned when a document is requested for an empty page list.
var ErrNoPages = errors.New("epub: book has no pages")

// PageSpread returns the spine property of the page at index.
// Under ltr even pages sit on the right; rtl mirrors the parity.
func PageSpread(index int, direction string) string {
	rtl := config.NormalizeDirection(direction) == config.DirectionRTL
	if (index%2 == 0) != rtl {
		return "page-spread-right"
	}
	return "page-spread-left"
}

// NewPackage builds the package document model for a fixed-layout comic.
// pages[0] is the cover and supplies the original-resolution meta.
func NewPackage(cfg *config.BuildConfig, pages []imagedir.PageEntry) (*Package, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	direction := config.NormalizeDirection(cfg.Direction)
	pkg := &Package{
		Version: "3.0",
		Prefix:  RenditionPrefix,
		Dir:     direction,
	}

	// Manifest
	pkg.Manifest.Items = append(pkg.Manifest.Items, Item{
		ID:        StylesheetID,
		Href:      StylesheetHref,
		MediaType: cssMediaType,
	})
	for _, p := range pages {
		pkg.Manifest.Items = append(pkg.Manifest.Items,
			Item{
				ID:        ImageID(p.Index),
				Href:      ImageHref(p.Index, p.Ext),
				MediaType: p.MediaType,
			},
			Item{
				ID:         PageID(p.Index),
				Href:       PageHref(p.Index),
				MediaType:  xhtmlMediaType,
				Properties: "svg",
			})
	}
	pkg.Manifest.Items = append(pkg.Manifest.Items,
		Item{ID: NCXID, Href: NCXHref, MediaType: ncxMediaType},
		Item{ID: NavID, Href: NavHref, MediaType: xhtmlMediaType, Properties: "nav"},
	)

	// Metadata
	pkg.SetModified(cfg.Modified)
	pkg.SetIdentifier(cfg.BookID)
	pkg.SetTitle(cfg.Title)
	pkg.SetAuthor(cfg.Author)
	pkg.SetLanguage(Language)
	pkg.SetSubjects(cfg.Subjects)
	if err := pkg.SetCover(ImageID(pages[0].Index)); err != nil {
		return nil, err
	}
	pkg.setProperty("rendition:layout", "pre-paginated")
	pkg.setProperty("rendition:orientation", "portrait")
	pkg.setProperty("rendition:spread", "landscape")
	pkg.setLegacyMeta("original-resolution", pages[0].Resolution())

	// Spine
	pkg.Spine.Toc = NCXID
	pkg.Spine.PageProg = direction
	for _, p := range pages {
		pkg.Spine.ItemRefs = append(pkg.Spine.ItemRefs, ItemRef{
			IDRef:      PageID(p.Index),
			Properties: PageSpread(p.Index, direction),
		})
	}

	return pkg, nil
}
