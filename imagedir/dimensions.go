package imagedir

import (
	"bufio"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/sirupsen/logrus"
)

// ReadDimensions returns the pixel size of a JPEG or PNG file.
// Only the header is decoded.
func ReadDimensions(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(bufio.NewReader(f))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrUnreadableImage, path, err)
	}

	log.WithFields(logrus.Fields{
		"path":   path,
		"format": format,
		"width":  cfg.Width,
		"height": cfg.Height,
	}).Debug("read image header")

	return cfg.Width, cfg.Height, nil
}
