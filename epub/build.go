package epub

import (
	"fmt"

	"github.com/jianyun8023/img2epub/config"
	"github.com/jianyun8023/img2epub/imagedir"
)

// ProgressFunc is called before each page is written.
type ProgressFunc func(page imagedir.PageEntry, total int)

type entry struct {
	name    string
	content func() ([]byte, error)
}

// Build writes the complete EPUB for pages to cfg.OutputPath.
// Entry order: mimetype, the fixed documents, then for every page its
// XHTML document followed by the image bytes.
func Build(cfg *config.BuildConfig, pages []imagedir.PageEntry, progress ProgressFunc) error {
	if len(pages) == 0 {
		return ErrNoPages
	}

	fixed := []entry{
		{ContainerPath, ContainerDocument},
		{DisplayOptionsPath, bytesOf(DisplayOptionsDocument)},
		{contentPath(StylesheetHref), bytesOf(StylesheetDocument)},
		{contentPath(PackageHref), func() ([]byte, error) { return PackageDocument(cfg, pages) }},
		{contentPath(NCXHref), func() ([]byte, error) { return NCXDocument(cfg) }},
		{contentPath(NavHref), func() ([]byte, error) { return NavDocument(cfg, pages) }},
	}

	// Render everything that does not depend on page I/O before touching the output.
	rendered := make([][]byte, len(fixed))
	for i, e := range fixed {
		content, err := e.content()
		if err != nil {
			return err
		}
		rendered[i] = content
	}

	aw, err := NewArchiveWriter(cfg.OutputPath, cfg.CompressionLevel)
	if err != nil {
		return err
	}
	success := false
	defer func() {
		if !success {
			aw.Abort()
		}
	}()

	if err := aw.WriteMimetype(); err != nil {
		return err
	}
	for i, e := range fixed {
		if err := aw.WriteFile(e.name, rendered[i]); err != nil {
			return err
		}
	}

	for _, p := range pages {
		if progress != nil {
			progress(p, len(pages))
		}

		page, err := PageDocument(p)
		if err != nil {
			return err
		}
		if err := aw.WriteFile(contentPath(PageHref(p.Index)), page); err != nil {
			return err
		}
		if err := aw.CopyFile(contentPath(ImageHref(p.Index, p.Ext)), p.Path); err != nil {
			return fmt.Errorf("failed to add page %d: %w", p.Index, err)
		}
	}

	if err := aw.Close(); err != nil {
		return err
	}
	success = true
	log.WithField("output", cfg.OutputPath).WithField("pages", len(pages)).Debug("archive written")
	return nil
}

func bytesOf(f func() []byte) func() ([]byte, error) {
	return func() ([]byte, error) { return f(), nil }
}
