// Package imagedir turns a directory of page images into an ordered page list.
package imagedir

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "imagedir")

// MediaTypes maps the recognised extensions to their media type.
// Matching is case-sensitive: "JPG" is not an image here.
var MediaTypes = map[string]string{
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"png":  "image/png",
}

// PageEntry is one page of the book. Index 0 is the cover.
type PageEntry struct {
	Index     int
	Name      string // file name inside the input directory
	Path      string // full path of the source file
	Ext       string // extension without the dot
	MediaType string
	Width     int
	Height    int
}

// Resolution formats the page size as WxH.
func (p PageEntry) Resolution() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// Scan lists the regular files of dir whose extension is recognised,
// sorted by file name. The sort order is the reading order.
// Width and Height are left zero; see Load.
func Scan(dir string) ([]PageEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		full := filepath.Join(dir, e.Name())
		if !isRegularFile(e, full) {
			log.WithField("name", e.Name()).Debug("skipping non-regular entry")
			continue
		}
		if _, ok := MediaTypes[extension(e.Name())]; !ok {
			log.WithField("name", e.Name()).Debug("skipping unrecognised extension")
			continue
		}
		names = append(names, e.Name())
	}

	if len(names) < 1 {
		return nil, &EmptyInventoryError{Dir: dir, Count: len(names)}
	}

	sort.Strings(names)

	pages := make([]PageEntry, len(names))
	for i, name := range names {
		ext := extension(name)
		pages[i] = PageEntry{
			Index:     i,
			Name:      name,
			Path:      filepath.Join(dir, name),
			Ext:       ext,
			MediaType: MediaTypes[ext],
		}
	}
	return pages, nil
}

// Load scans dir and reads the dimensions of every page up front, so that
// an unreadable image is reported before any output is produced.
func Load(dir string) ([]PageEntry, error) {
	pages, err := Scan(dir)
	if err != nil {
		return nil, err
	}

	for i := range pages {
		w, h, err := ReadDimensions(pages[i].Path)
		if err != nil {
			return nil, err
		}
		pages[i].Width = w
		pages[i].Height = h
	}
	return pages, nil
}

// isRegularFile follows symlinks, so a link to an image counts as a page.
func isRegularFile(e os.DirEntry, full string) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(full)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// extension returns the text after the last dot, ignoring leading dots,
// so ".png" is a hidden file without an extension.
func extension(name string) string {
	base := strings.TrimLeft(name, ".")
	ext := filepath.Ext(base)
	if ext == "" {
		return ""
	}
	return ext[1:]
}
