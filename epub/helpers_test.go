package epub

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"

	"github.com/jianyun8023/img2epub/config"
	"github.com/jianyun8023/img2epub/imagedir"
)

var testModified = time.Date(2024, 3, 9, 17, 45, 30, 0, time.UTC)

func testConfig() *config.BuildConfig {
	cfg := config.Default()
	cfg.Title = "Test Comic"
	cfg.Author = "Test Author"
	cfg.BookID = "urn:uuid:00000000-0000-4000-8000-000000000000"
	cfg.Modified = testModified
	return cfg
}

// testPages returns in-memory pages; the files do not exist.
func testPages(n int) []imagedir.PageEntry {
	pages := make([]imagedir.PageEntry, n)
	for i := range pages {
		pages[i] = imagedir.PageEntry{
			Index:     i,
			Name:      fmt.Sprintf("p%02d.png", i),
			Path:      fmt.Sprintf("/nonexistent/p%02d.png", i),
			Ext:       "png",
			MediaType: "image/png",
			Width:     800 + i,
			Height:    1200 + i,
		}
	}
	return pages
}

// writeImage saves a solid image; the format follows the extension.
func writeImage(t *testing.T, dir, name string, w, h int) {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 10, G: 120, B: 240, A: 255})
	if err := imaging.Save(img, filepath.Join(dir, name)); err != nil {
		t.Fatalf("imaging.Save(%s) error = %v", name, err)
	}
}

// testBook is a read-only view of a generated archive.
type testBook struct {
	zr      *zip.ReadCloser
	OpfPath string
	Package *Package
}

// openBook opens an EPUB, locates the OPF via container.xml and parses it.
func openBook(t *testing.T, path string) *testBook {
	t.Helper()
	z, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("failed to open zip: %v", err)
	}
	t.Cleanup(func() { z.Close() })

	b := &testBook{zr: z}

	var c Container
	if err := xml.Unmarshal(b.readFile(t, ContainerPath), &c); err != nil {
		t.Fatalf("malformed container.xml: %v", err)
	}
	if len(c.RootFiles) == 0 {
		t.Fatal("no rootfile found in container.xml")
	}
	b.OpfPath = c.RootFiles[0].FullPath

	var pkg Package
	if err := xml.Unmarshal(b.readFile(t, b.OpfPath), &pkg); err != nil {
		t.Fatalf("malformed OPF: %v", err)
	}
	b.Package = &pkg
	return b
}

func (b *testBook) file(name string) *zip.File {
	for _, f := range b.zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (b *testBook) readFile(t *testing.T, name string) []byte {
	t.Helper()
	f := b.file(name)
	if f == nil {
		t.Fatalf("file not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return data
}

func (b *testBook) names() []string {
	var out []string
	for _, f := range b.zr.File {
		out = append(out, f.Name)
	}
	return out
}
