package lite

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// ToImage copies the canvas into an opaque image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	c.store.borrow(func(pix []byte) {
		for i, j := 0, 0; i+2 < len(pix); i, j = i+3, j+4 {
			img.Pix[j+0] = pix[i+0]
			img.Pix[j+1] = pix[i+1]
			img.Pix[j+2] = pix[i+2]
			img.Pix[j+3] = 255
		}
	})
	return img
}

// Scaled returns the canvas enlarged by an integer factor with
// nearest-neighbor sampling, so single pixels stay crisp. A factor below
// 2 returns ToImage.
func (c *Canvas) Scaled(factor int) *image.RGBA {
	src := c.ToImage()
	if factor < 2 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, c.width*factor, c.height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// NewCanvasFromImage creates a canvas holding img. Alpha is composited
// over white.
func NewCanvasFromImage(img image.Image) *Canvas {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Over)

	c := NewCanvas(b.Dx(), b.Dy())
	c.store.borrow(func(pix []byte) {
		for i, j := 0, 0; i+2 < len(pix); i, j = i+3, j+4 {
			pix[i+0] = rgba.Pix[j+0]
			pix[i+1] = rgba.Pix[j+1]
			pix[i+2] = rgba.Pix[j+2]
		}
	})
	return c
}

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}

// EncodeBMP writes the canvas to w as BMP.
func (c *Canvas) EncodeBMP(w io.Writer) error {
	return bmp.Encode(w, c.ToImage())
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("lite: encode %s: %w", path, err)
	}
	return f.Close()
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.RGBAt(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

var _ image.Image = (*Canvas)(nil)
