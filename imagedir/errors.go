package imagedir

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrEmptyInventory is matched by EmptyInventoryError.
	ErrEmptyInventory = errors.New("too few images")

	// ErrUnreadableImage reports a file that is not a decodable JPEG or PNG.
	ErrUnreadableImage = errors.New("unreadable image")
)

// EmptyInventoryError is returned when a directory holds no usable image.
type EmptyInventoryError struct {
	Dir   string
	Count int
}

func (e *EmptyInventoryError) Error() string {
	return fmt.Sprintf("Too few images: %d", e.Count)
}

func (e *EmptyInventoryError) Is(target error) bool {
	return target == ErrEmptyInventory
}

// IsIOError reports whether err stems from a failed filesystem operation.
func IsIOError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr)
}
