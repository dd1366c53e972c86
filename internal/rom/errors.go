package rom

import (
	"errors"
	"fmt"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("rom: archive contains no files")

// ErrShortImage matches every *ShortImageError.
var ErrShortImage = errors.New("rom: image too short")

// ShortImageError is returned by ParseHeader when the image ends before
// the header does.
type ShortImageError struct {
	Size int
}

func (e *ShortImageError) Error() string {
	return fmt.Sprintf("rom: image of %d bytes has no header (need 0x%X)", e.Size, headerEnd)
}

// Is reports whether target is ErrShortImage.
func (e *ShortImageError) Is(target error) bool {
	return target == ErrShortImage
}
