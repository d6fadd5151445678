// Package ansi prints canvas pixels to a terminal as colored half blocks.
//
//	c.View(func(w, h int, pix []byte) {
//		_ = ansi.Write(os.Stdout, w, h, pix, termenv.EnvColorProfile())
//	})
//
// Each output line covers two pixel rows. With the termenv.Ascii profile
// the glyphs are written without color.
package ansi

import (
	"bufio"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/gogpu/lite/internal/halfblock"
)

// Write renders a row-major RGB image of width x height pixels to w using
// the color profile p.
func Write(w io.Writer, width, height int, pix []byte, p termenv.Profile) error {
	return WriteFit(w, width, height, pix, p, 0)
}

// WriteFit is Write with the output limited to cols columns. The image is
// sampled down when it is wider. Zero means no limit.
func WriteFit(w io.Writer, width, height int, pix []byte, p termenv.Profile, cols int) error {
	grid, err := halfblock.Grid(width, height, pix, cols, 0)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	glyph := string(halfblock.Glyph)
	for _, line := range grid {
		for _, cell := range line {
			s := p.String(glyph).Foreground(p.Color(hex(cell.Top)))
			if !cell.Short {
				s = s.Background(p.Color(hex(cell.Bottom)))
			}
			if _, err := bw.WriteString(s.String()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func hex(c [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
