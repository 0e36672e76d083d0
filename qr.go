// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrust encodes QR codes.

Generate picks the encoding mode for the whole text and the smallest
version the text fits in, and returns a Code ready for rendering.
Lower level control over segments, versions and masks is available
in package coding.
*/
package qrust // import "github.com/subygan/qrust"

import (
	"errors"
	"image"
	"image/color"

	"github.com/subygan/qrust/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

// AutoMode requests the most compact mode able to encode the whole
// text: numeric, alphanumeric or byte.
const AutoMode coding.Mode = -1

var (
	ErrArgs    = errors.New("qr: invalid arguments")
	ErrTooLong = errors.New("qr: text too long to encode as QR")
)

// Options control Generate.
type Options struct {
	Level      Level          // error correction level
	MinVersion coding.Version // smallest version to try, 0 for 1
	Mask       coding.Mask    // mask, or coding.AutoMask
	Mode       coding.Mode    // segment mode, or AutoMode
}

// DefaultOptions returns the Options used by Generate when none are
// given: level M, automatic mask and mode.
func DefaultOptions() Options {
	return Options{Level: M, Mask: coding.AutoMask, Mode: AutoMode}
}

// Generate encodes text as a single segment into the smallest QR
// code of version opt.MinVersion or above that holds it.  A nil opt
// means DefaultOptions.
func Generate(text string, opt *Options) (*Code, error) {
	o := DefaultOptions()
	if opt != nil {
		o = *opt
	}
	l := coding.Level(o.Level)
	if !l.IsValid() {
		return nil, coding.ErrLevel
	}
	if !o.Mask.IsValid() && o.Mask != coding.AutoMask {
		return nil, coding.ErrMask
	}
	v := max(o.MinVersion, coding.MinVersion)
	if !v.IsValid() {
		return nil, coding.ErrVersion
	}
	seg := coding.Segment{Text: text, Mode: o.Mode}
	if seg.Mode == AutoMode {
		seg.Mode = chooseMode(text)
	}
	// The count field widens with the version, so a larger version
	// is tried until one has room.
	for ; v <= coding.MaxVersion; v++ {
		m, err := coding.Encode(v, l, o.Mask, seg)
		var ce *coding.CapacityError
		if errors.As(err, &ce) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return newCode(m), nil
	}
	return nil, ErrTooLong
}

// chooseMode returns the most compact mode encoding all of text.
func chooseMode(text string) coding.Mode {
	for _, m := range [...]coding.Mode{coding.Numeric, coding.Alphanumeric} {
		if (coding.Segment{Text: text, Mode: m}).IsValid() {
			return m
		}
	}
	return coding.Byte
}

// Encode returns an encoding of text at the given error correction level.
func Encode(text string, level Level) (*Code, error) {
	o := DefaultOptions()
	o.Level = level
	return Generate(text, &o)
}

// A Code is a square pixel grid.
// It implements image.Image and direct PBM encoding.
type Code struct {
	Bitmap  []byte          // 1 is black, 0 is white
	Size    int             // number of pixels on a side
	Stride  int             // number of bytes per row
	Scale   int             // number of image pixels per QR pixel
	Border  int             // width of the quiet zone in QR pixels
	Reverse bool            // swap black and white
	Palette *[2]color.Color // background and foreground, nil for white and black
}

// newCode packs the modules of m into a Code with the default scale
// and quiet zone.
func newCode(m *coding.Matrix) *Code {
	siz := m.Size()
	stride := (siz + 7) / 8
	c := &Code{
		Bitmap: make([]byte, stride*siz),
		Size:   siz,
		Stride: stride,
		Scale:  8,
		Border: 4,
	}
	for y := 0; y < siz; y++ {
		row := c.Bitmap[y*stride:]
		for x := 0; x < siz; x++ {
			if m.Black(x, y) {
				row[x/8] |= 0x80 >> uint(x&7)
			}
		}
	}
	return c
}

func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Stride >= (c.Size+7)/8 &&
		len(c.Bitmap) >= c.Stride*c.Size && c.Scale > 0 && c.Border >= 0
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

// Image returns an Image displaying the code, including the quiet
// zone.  The image is paletted, so image/png encodes it with a bit
// per pixel.
func (c *Code) Image() image.Image {
	return &codeImage{c, c.palette()}
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

// palette returns the background and foreground colours of c,
// swapped if c.Reverse is set.
func (c *Code) palette() color.Palette {
	bg, fg := whiteColor, blackColor
	if c.Palette != nil {
		bg, fg = c.Palette[0], c.Palette[1]
	}
	if c.Reverse {
		bg, fg = fg, bg
	}
	return color.Palette{bg, fg}
}

// codeImage implements image.PalettedImage
type codeImage struct {
	*Code
	pal color.Palette
}

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) ColorIndexAt(x, y int) uint8 {
	if x >= 0 && y >= 0 && c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return 1
	}
	return 0
}

func (c *codeImage) At(x, y int) color.Color {
	return c.pal[c.ColorIndexAt(x, y)]
}

func (c *codeImage) ColorModel() color.Model {
	return c.pal
}
