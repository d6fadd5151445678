package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/lite"
)

// save writes c to path, scaled up by an integer factor. The extension
// picks the encoder.
func save(c *lite.Canvas, path string, scale int) error {
	var img image.Image = c
	if scale > 1 {
		img = c.Scaled(scale)
	}

	encode := png.Encode
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
	case ".bmp":
		encode = bmp.Encode
	default:
		return fmt.Errorf("%s: unsupported output type %q", path, ext)
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
