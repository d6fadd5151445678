// Package sketch describes lite scenes in TOML or YAML files and renders
// them onto a canvas.
//
// A sketch is a canvas size, an optional background and an ordered list of
// shapes:
//
//	width = 320
//	height = 240
//	background = "#202020"
//
//	[[shape]]
//	kind = "fill_circle_aa"
//	x = 160
//	y = 120
//	radius = 80
//	color = "orange"
//
//	[[shape]]
//	kind = "fill_rect"
//	x = 0
//	y = 200
//	w = 320
//	h = 40
//	overlay = "shade"
//	[shape.gradient]
//	scale = 320.0
//	stops = [
//	    { pos = 0.0, color = "#0000ff80" },
//	    { pos = 1.0, color = "#ff000080" },
//	]
//
// Angles are in degrees, counter-clockwise from the positive x axis.
// Fractional fields (gradient scale and stop positions, angles) take TOML
// floats.
package sketch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrFormat is returned for unreadable sketch files: an unsupported
	// file type, unknown keys or malformed values.
	ErrFormat = errors.New("sketch: bad format")

	// ErrUnknownShape is returned for a shape kind that does not exist.
	ErrUnknownShape = errors.New("sketch: unknown shape")

	// ErrSize is returned for a canvas size that is not positive or too
	// large.
	ErrSize = errors.New("sketch: bad canvas size")
)

const (
	// MaxSide is the largest canvas width or height a sketch may ask for.
	MaxSide = 1 << 14

	// MaxGeometry bounds the magnitude of every shape coordinate, size,
	// length and radius.
	MaxGeometry = 4 * MaxSide
)

// Format is a sketch file syntax.
type Format int

const (
	// TOML is the default sketch syntax.
	TOML Format = iota
	// YAML uses the same keys as TOML.
	YAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %s: want .toml, .yaml or .yml", ErrFormat, path)
	}
}

// Document is a decoded sketch.
type Document struct {
	Width      int     `toml:"width" yaml:"width"`
	Height     int     `toml:"height" yaml:"height"`
	Background string  `toml:"background,omitempty" yaml:"background,omitempty"`
	Shapes     []Shape `toml:"shape" yaml:"shape"`
}

// Shape is one drawing call. Which geometry fields are used depends on
// Kind; see the kinds table in render.go.
type Shape struct {
	Kind string `toml:"kind" yaml:"kind"`

	X      int     `toml:"x,omitempty" yaml:"x,omitempty"`
	Y      int     `toml:"y,omitempty" yaml:"y,omitempty"`
	X2     int     `toml:"x2,omitempty" yaml:"x2,omitempty"`
	Y2     int     `toml:"y2,omitempty" yaml:"y2,omitempty"`
	W      int     `toml:"w,omitempty" yaml:"w,omitempty"`
	H      int     `toml:"h,omitempty" yaml:"h,omitempty"`
	Length int     `toml:"length,omitempty" yaml:"length,omitempty"`
	Radius int     `toml:"radius,omitempty" yaml:"radius,omitempty"`
	From   float32 `toml:"from,omitempty" yaml:"from,omitempty"`
	To     float32 `toml:"to,omitempty" yaml:"to,omitempty"`

	// Color is a hex literal or a color name. Exactly one of Color and
	// Gradient is set.
	Color    string    `toml:"color,omitempty" yaml:"color,omitempty"`
	Gradient *Gradient `toml:"gradient,omitempty" yaml:"gradient,omitempty"`

	// Overlay names a group of shapes blended together in one overlay,
	// written onto the canvas after the group's last shape.
	Overlay string `toml:"overlay,omitempty" yaml:"overlay,omitempty"`

	// Clip is an optional subregion {x, y, w, h} the shape is drawn in.
	// Shape coordinates are relative to it.
	Clip []int `toml:"clip,omitempty" yaml:"clip,omitempty"`
}

// Gradient describes a lite.DirectionalGradient.
type Gradient struct {
	Stops         []Stop  `toml:"stops" yaml:"stops"`
	Scale         float32 `toml:"scale" yaml:"scale"`
	Angle         float32 `toml:"angle,omitempty" yaml:"angle,omitempty"`
	Origin        []int   `toml:"origin,omitempty" yaml:"origin,omitempty"`
	Repeat        bool    `toml:"repeat,omitempty" yaml:"repeat,omitempty"`
	Interpolation string  `toml:"interpolation,omitempty" yaml:"interpolation,omitempty"`
}

// Stop is a gradient color stop.
type Stop struct {
	Pos   float32 `toml:"pos" yaml:"pos"`
	Color string  `toml:"color" yaml:"color"`
}

// Decode reads a sketch from r. Unknown keys are an error.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	var err error
	switch f {
	case TOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(&doc)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf("%w: format %v", ErrFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFormat, f, err)
	}
	return &doc, nil
}

// Parse decodes a sketch held in memory.
func Parse(data []byte, f Format) (*Document, error) {
	return Decode(bytes.NewReader(data), f)
}

// Load reads the sketch file at path. The format follows the extension.
func Load(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer file.Close()

	doc, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return doc, nil
}

// Encode writes doc to w.
func Encode(w io.Writer, doc *Document, f Format) error {
	switch f {
	case TOML:
		return toml.NewEncoder(w).Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: format %v", ErrFormat, f)
	}
}
