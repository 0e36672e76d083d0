// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrust

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() || w == nil {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	scale := c.Scale
	bord := c.Border
	length := scale * (c.Size + bord*2)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	for y := -bord; y < c.Size+bord; y++ {
		clear(row)
		for x := 0; x < length; x++ {
			if c.Black(x/scale-bord, y) != c.Reverse {
				row[x/8] |= 0x80 >> uint(x&7)
			}
		}
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// Half block characters indexed by top<<1|bottom.
var blocks = [4]string{" ", "▄", "▀", "█"}

// String returns the code drawn with Unicode half blocks, two rows
// of pixels per line, quiet zone included.  Black pixels are drawn
// in the foreground colour of the terminal; set c.Reverse for
// terminals with light text on a dark background.
func (c *Code) String() string {
	var b strings.Builder
	bord := c.Border
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			i := 0
			if c.Black(x, y) != c.Reverse {
				i |= 2
			}
			// past the bottom of the quiet zone is blank
			if y+1 < c.Size+bord && c.Black(x, y+1) != c.Reverse {
				i |= 1
			}
			b.WriteString(blocks[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ASCII returns the code drawn with two '#' characters per black
// pixel and two spaces per white one, quiet zone included.
func (c *Code) ASCII() string {
	bord := c.Border
	pix := c.Size + 2*bord
	b := make([]byte, 0, (pix*2+1)*pix)
	for y := -bord; y < c.Size+bord; y++ {
		for x := -bord; x < c.Size+bord; x++ {
			if c.Black(x, y) != c.Reverse {
				b = append(b, "##"...)
			} else {
				b = append(b, "  "...)
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}
