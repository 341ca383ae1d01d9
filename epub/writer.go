package epub

import (
	"archive/zip"
	"compress/flate"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "epub")

var (
	// ErrArchiveClosed is returned for writes after Close or Abort.
	ErrArchiveClosed = errors.New("epub: archive already closed")

	// ErrMimetypeNotFirst is returned when an entry is written before the mimetype.
	ErrMimetypeNotFirst = errors.New("epub: mimetype must be the first entry")
)

type archiveState int

const (
	stateOpened archiveState = iota
	stateWriting
	stateClosed
)

// ArchiveWriter streams EPUB entries into a temporary file next to the
// output path. Close renames the finished archive into place, so a failed
// build never leaves a partial EPUB behind.
type ArchiveWriter struct {
	outputPath string
	tmpPath    string
	file       *os.File
	zw         *zip.Writer
	state      archiveState
}

// NewArchiveWriter opens a writer whose deflated entries use the given
// compression level (0-9, or the flate constants -1 and -2).
func NewArchiveWriter(outputPath string, level int) (*ArchiveWriter, error) {
	// Reject the level before any file is created.
	if _, err := flate.NewWriter(io.Discard, level); err != nil {
		return nil, fmt.Errorf("invalid compression level %d: %w", level, err)
	}

	tempDir := filepath.Dir(outputPath)
	tmpF, err := os.CreateTemp(tempDir, ".img2epub-*.epub")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	w := zip.NewWriter(tmpF)
	w.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})

	return &ArchiveWriter{
		outputPath: outputPath,
		tmpPath:    tmpF.Name(),
		file:       tmpF,
		zw:         w,
		state:      stateOpened,
	}, nil
}

// WriteMimetype writes the mimetype entry. It MUST be the first entry,
// STORED, without extra fields or a trailing newline.
func (a *ArchiveWriter) WriteMimetype() error {
	switch a.state {
	case stateClosed:
		return ErrArchiveClosed
	case stateWriting:
		return ErrMimetypeNotFirst
	}

	header := &zip.FileHeader{
		Name:   MimetypePath,
		Method: zip.Store, // No compression
	}

	fw, err := a.zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to create mimetype header: %w", err)
	}

	if _, err := io.WriteString(fw, MimeType); err != nil {
		return fmt.Errorf("failed to write mimetype content: %w", err)
	}

	a.state = stateWriting
	return nil
}

// WriteFile writes content as a deflated entry.
func (a *ArchiveWriter) WriteFile(name string, content []byte) error {
	fw, err := a.create(name)
	if err != nil {
		return err
	}
	if _, err := fw.Write(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// CopyFile streams the file at srcPath into a deflated entry.
func (a *ArchiveWriter) CopyFile(name, srcPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", srcPath, err)
	}
	defer src.Close()

	fw, err := a.create(name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(fw, src); err != nil {
		return fmt.Errorf("failed to copy %s into %s: %w", srcPath, name, err)
	}
	return nil
}

func (a *ArchiveWriter) create(name string) (io.Writer, error) {
	switch a.state {
	case stateClosed:
		return nil, ErrArchiveClosed
	case stateOpened:
		return nil, ErrMimetypeNotFirst
	}

	fw, err := a.zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: zip.Deflate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", name, err)
	}
	log.WithField("entry", name).Debug("writing entry")
	return fw, nil
}

// Close flushes the archive and moves it to the output path,
// replacing any existing file there.
func (a *ArchiveWriter) Close() error {
	if a.state == stateClosed {
		return ErrArchiveClosed
	}
	a.state = stateClosed

	// Close Writer explicitly to flush
	if err := a.zw.Close(); err != nil {
		a.file.Close()
		os.Remove(a.tmpPath)
		return fmt.Errorf("failed to close zip writer: %w", err)
	}

	// Close temp file before rename (required on Windows)
	if err := a.file.Close(); err != nil {
		os.Remove(a.tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// CreateTemp uses 0600; give the result the usual file mode.
	if err := os.Chmod(a.tmpPath, 0644); err != nil {
		os.Remove(a.tmpPath)
		return fmt.Errorf("failed to set file mode: %w", err)
	}

	// Atomic rename
	if err := os.Rename(a.tmpPath, a.outputPath); err != nil {
		os.Remove(a.tmpPath)
		return fmt.Errorf("failed to move temp file to output: %w", err)
	}
	return nil
}

// Abort discards the partial archive. It is a no-op after Close.
func (a *ArchiveWriter) Abort() {
	if a.state == stateClosed {
		return
	}
	a.state = stateClosed
	a.file.Close()
	os.Remove(a.tmpPath)
}
