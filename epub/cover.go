package epub

import (
	"fmt"
)

// SetCover marks the manifest item itemID as the cover image.
// It sets the EPUB 3 cover-image property and the EPUB 2
// <meta name="cover" content="item-id"> used by older readers.
func (pkg *Package) SetCover(itemID string) error {
	item := pkg.FindItem(itemID)
	if item == nil {
		return fmt.Errorf("cover item %s not found in manifest", itemID)
	}

	// Only one item may carry the property.
	for i := range pkg.Manifest.Items {
		if pkg.Manifest.Items[i].Properties == "cover-image" {
			pkg.Manifest.Items[i].Properties = ""
		}
	}
	item.Properties = "cover-image"

	pkg.setLegacyMeta("cover", itemID)
	return nil
}

// GetCoverItem returns the manifest item of the cover image.
func (pkg *Package) GetCoverItem() (*Item, error) {
	// 1. Check EPUB 2 Meta
	var coverItemID string
	for _, m := range pkg.Metadata.Meta {
		if m.Name == "cover" {
			coverItemID = m.Content
			break
		}
	}

	// 2. If not found, check Manifest properties (EPUB 3)
	if coverItemID == "" {
		for _, item := range pkg.Manifest.Items {
			if item.Properties == "cover-image" {
				coverItemID = item.ID
				break
			}
		}
	}

	if coverItemID == "" {
		return nil, fmt.Errorf("no cover found")
	}

	item := pkg.FindItem(coverItemID)
	if item == nil {
		return nil, fmt.Errorf("cover item %s not found in manifest", coverItemID)
	}
	return item, nil
}
