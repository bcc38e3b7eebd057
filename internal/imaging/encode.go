// Package imaging writes finished canvases to disk, picking the image
// codec from the output file extension.
package imaging

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Supported reports whether format has a registered encoder. Formats are
// lowercase extensions without the dot ("png", "bmp", "tif", "tiff").
func Supported(format string) bool {
	switch strings.ToLower(format) {
	case "png", "bmp", "tif", "tiff":
		return true
	}
	return false
}

// Encode writes img to w in the named format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unsupported image format: %q", format)
}

// WriteFile encodes img into the file at path, picking the format from
// the extension. The file is only created here, after rendering has
// finished, so a failed render never leaves a partial image behind; a
// failed encode removes the half-written file.
func WriteFile(path string, img image.Image) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !Supported(format) {
		return fmt.Errorf("unsupported image format: %q", format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
