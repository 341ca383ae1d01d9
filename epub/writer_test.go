package epub

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArchiveWriterMimetypeStored(t *testing.T) {
	for _, level := range []int{0, 9} {
		out := filepath.Join(t.TempDir(), "book.epub")

		aw, err := NewArchiveWriter(out, level)
		if err != nil {
			t.Fatalf("level %d: NewArchiveWriter() error = %v", level, err)
		}
		if err := aw.WriteMimetype(); err != nil {
			t.Fatalf("WriteMimetype() error = %v", err)
		}
		if err := aw.WriteFile("OEBPS/a.txt", []byte(strings.Repeat("abc", 100))); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if err := aw.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}

		z, err := zip.OpenReader(out)
		if err != nil {
			t.Fatalf("failed to open zip: %v", err)
		}
		defer z.Close()

		if len(z.File) != 2 {
			t.Fatalf("entries = %d, want 2", len(z.File))
		}
		first := z.File[0]
		if first.Name != MimetypePath || first.Method != zip.Store {
			t.Errorf("first entry = %s (method %d), want stored mimetype", first.Name, first.Method)
		}
		if len(first.Extra) != 0 {
			t.Errorf("mimetype has extra field of %d bytes", len(first.Extra))
		}
		if first.UncompressedSize64 != uint64(len(MimeType)) {
			t.Errorf("mimetype size = %d", first.UncompressedSize64)
		}
		if z.File[1].Method != zip.Deflate {
			t.Errorf("level %d: %s method = %d, want deflate", level, z.File[1].Name, z.File[1].Method)
		}
	}
}

func TestArchiveWriterOrdering(t *testing.T) {
	out := filepath.Join(t.TempDir(), "book.epub")
	aw, err := NewArchiveWriter(out, 9)
	if err != nil {
		t.Fatalf("NewArchiveWriter() error = %v", err)
	}
	defer aw.Abort()

	if err := aw.WriteFile("OEBPS/a.txt", nil); !errors.Is(err, ErrMimetypeNotFirst) {
		t.Errorf("WriteFile before mimetype error = %v, want ErrMimetypeNotFirst", err)
	}
	if err := aw.WriteMimetype(); err != nil {
		t.Fatalf("WriteMimetype() error = %v", err)
	}
	if err := aw.WriteMimetype(); !errors.Is(err, ErrMimetypeNotFirst) {
		t.Errorf("second WriteMimetype error = %v, want ErrMimetypeNotFirst", err)
	}
	if err := aw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := aw.WriteFile("OEBPS/b.txt", nil); !errors.Is(err, ErrArchiveClosed) {
		t.Errorf("WriteFile after Close error = %v, want ErrArchiveClosed", err)
	}
	if err := aw.Close(); !errors.Is(err, ErrArchiveClosed) {
		t.Errorf("second Close error = %v, want ErrArchiveClosed", err)
	}
}

func TestArchiveWriterInvalidLevel(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "book.epub")

	if _, err := NewArchiveWriter(out, 42); err == nil {
		t.Fatal("expected error for compression level 42")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("directory not empty after rejected level: %d entries", len(entries))
	}
}

func TestArchiveWriterAbort(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "book.epub")

	aw, err := NewArchiveWriter(out, 6)
	if err != nil {
		t.Fatalf("NewArchiveWriter() error = %v", err)
	}
	if err := aw.WriteMimetype(); err != nil {
		t.Fatalf("WriteMimetype() error = %v", err)
	}
	aw.Abort()

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("files left after Abort: %d", len(entries))
	}
	if err := aw.WriteFile("x", nil); !errors.Is(err, ErrArchiveClosed) {
		t.Errorf("WriteFile after Abort error = %v", err)
	}
}

func TestArchiveWriterReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "book.epub")
	if err := os.WriteFile(out, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	aw, err := NewArchiveWriter(out, 9)
	if err != nil {
		t.Fatalf("NewArchiveWriter() error = %v", err)
	}
	if err := aw.WriteMimetype(); err != nil {
		t.Fatalf("WriteMimetype() error = %v", err)
	}
	if err := aw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	z, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}
	z.Close()

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("directory entries = %d, want only the output", len(entries))
	}
}

func TestArchiveWriterCopyFileMissing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "book.epub")
	aw, err := NewArchiveWriter(out, 9)
	if err != nil {
		t.Fatalf("NewArchiveWriter() error = %v", err)
	}
	defer aw.Abort()

	if err := aw.WriteMimetype(); err != nil {
		t.Fatal(err)
	}
	err = aw.CopyFile("OEBPS/images/page-000.png", filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("CopyFile error = %v, want not-exist", err)
	}
}
