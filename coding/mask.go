// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strconv"

	"golang.org/x/sync/errgroup"
)

// A Mask describes a mask that is applied to the data modules of a QR
// code to avoid patterns confusing scanners, such as ones resembling
// the position boxes.  Valid masks are integers from 0 to 7.
type Mask int

// AutoMask requests the mask with the lowest penalty.
const AutoMask Mask = -1

// Masks:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
//
// http://www.swetake.com/qr/qr5_en.html
var mfunc = [8]func(i, j int) bool{
	func(i, j int) bool { return (i+j)%2 == 0 },
	func(i, j int) bool { return i%2 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },
	func(i, j int) bool { return i*j%2+i*j%3 == 0 },
	func(i, j int) bool { return (i*j%2+i*j%3)%2 == 0 },
	func(i, j int) bool { return (i*j%3+(i+j)%2)%2 == 0 },
}

func (m Mask) String() string {
	if m == AutoMask {
		return "auto"
	}
	return strconv.Itoa(int(m))
}

// IsValid reports whether m is one of the eight masks.
func (m Mask) IsValid() bool {
	return 0 <= m && m <= 7
}

// Invert reports whether mask m inverts the module at row y, column x.
func (m Mask) Invert(y, x int) bool {
	if !m.IsValid() {
		return false
	}
	return mfunc[m](y, x)
}

// Versions from parallelVersion up score masks concurrently.
var parallelVersion Version = 10

// applyMask inverts the data modules selected by mask.  Applying the
// same mask twice restores the grid.
func (m *Matrix) applyMask(mask Mask) {
	f := mfunc[mask]
	for y := 0; y < m.size; y++ {
		row := m.m[y*m.size : (y+1)*m.size]
		for x, v := range row {
			if v.Role() == Data && f(y, x) {
				row[x] = v.Flip()
			}
		}
	}
}

// commitMask applies mask to an unmasked m and writes the matching
// format information.
func (m *Matrix) commitMask(mask Mask) {
	m.applyMask(mask)
	m.placeFormat(FormatBits(m.level, mask))
	m.mask = mask
}

// selectMask returns the mask giving m the lowest penalty, the lowest
// numbered one on ties.  Each candidate is applied to m in turn after
// undoing the previous one, and the last one is undone before
// returning, leaving m unmasked.
func (m *Matrix) selectMask() Mask {
	best, pen := Mask(0), 0
	prev := AutoMask
	for mask := Mask(0); mask <= 7; mask++ {
		if prev != AutoMask {
			m.applyMask(prev)
		}
		m.applyMask(mask)
		m.placeFormat(FormatBits(m.level, mask))
		if p := m.Penalty(); mask == 0 || p < pen {
			best, pen = mask, p
		}
		prev = mask
	}
	m.applyMask(prev)
	return best
}

// selectMaskParallel is selectMask scoring each candidate on its own
// copy of m.  m is not modified.
func (m *Matrix) selectMaskParallel() Mask {
	var pen [8]int
	var g errgroup.Group
	for i := range pen {
		mask := Mask(i)
		g.Go(func() error {
			c := m.clone()
			c.applyMask(mask)
			c.placeFormat(FormatBits(c.level, mask))
			pen[mask] = c.Penalty()
			return nil
		})
	}
	g.Wait()
	best := Mask(0)
	for mask := Mask(1); mask <= 7; mask++ {
		if pen[mask] < pen[best] {
			best = mask
		}
	}
	return best
}
