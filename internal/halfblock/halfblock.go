// Package halfblock maps RGB pixels onto terminal cells. Each cell shows two
// pixels stacked vertically with the upper half block glyph: the top pixel
// is the foreground and the bottom one the background.
package halfblock

import "fmt"

// Glyph is the upper half block.
const Glyph = '▀'

// Cell is one terminal cell.
type Cell struct {
	Top    [3]uint8
	Bottom [3]uint8
	// Short is set on the last row of an odd-height image, which has no
	// bottom pixel.
	Short bool
}

// Grid samples a row-major RGB image into rows of cells. cols and rows
// bound the result; zero means unbounded. Larger images are sampled with
// the smallest integer step that fits.
func Grid(width, height int, pix []byte, cols, rows int) ([][]Cell, error) {
	if width <= 0 || height <= 0 {
		return nil, nil
	}
	if want := width * height * 3; len(pix) < want {
		return nil, fmt.Errorf("halfblock: pixel buffer has %d bytes, want %d", len(pix), want)
	}

	step := 1
	if cols > 0 && width > cols {
		step = ceilDiv(width, cols)
	}
	if rows > 0 && height > 2*rows {
		step = max(step, ceilDiv(height, 2*rows))
	}

	w := ceilDiv(width, step)
	h := ceilDiv(height, step)
	grid := make([][]Cell, ceilDiv(h, 2))
	for cy := range grid {
		line := make([]Cell, w)
		for cx := range line {
			x := cx * step
			line[cx].Top = pixel(pix, width, x, 2*cy*step)
			if 2*cy+1 < h {
				line[cx].Bottom = pixel(pix, width, x, (2*cy+1)*step)
			} else {
				line[cx].Short = true
			}
		}
		grid[cy] = line
	}
	return grid, nil
}

func pixel(pix []byte, width, x, y int) [3]uint8 {
	i := (y*width + x) * 3
	return [3]uint8{pix[i], pix[i+1], pix[i+2]}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
