// Package rom loads program images from disk and decodes the cartridge
// header found at the start of them.
package rom

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/ulikunitz/xz"
)

// Load loads the given file and performs decompression if necessary.
// Archives holding more than one file yield the first one.
func Load(filename string) ([]byte, error) {
	// read the file into a byte slice
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decode(filepath.Ext(filename), data)
}

// Decode decompresses data according to the file extension ext. Unknown
// extensions are returned as is.
func Decode(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	var err error

	// try to assert the compression type from the file extension
	switch ext = strings.ToLower(ext); ext {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".xz":
		decoder, err = xz.NewReader(bytes.NewReader(data))
	case ".br":
		decoder = brotli.NewReader(bytes.NewReader(data))
	case ".zip":
		decoder, err = openZip(data)
	case ".7z":
		decoder, err = open7z(data)
	default:
		// return the data as is
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rom: opening %s archive: %w", ext, err)
	}
	if c, ok := decoder.(io.Closer); ok {
		defer c.Close()
	}

	// read the decompressed data into a byte slice
	image, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("rom: decompressing %s archive: %w", ext, err)
	}
	return image, nil
}

func openZip(data []byte) (io.Reader, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	// read the first file in the zip file
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		return f.Open()
	}
	return nil, ErrEmptyArchive
}

func open7z(data []byte) (io.Reader, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	// read the first file in the archive
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		return f.Open()
	}
	return nil, ErrEmptyArchive
}
