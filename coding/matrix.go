// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Matrix is the module grid of a QR code.  Modules are addressed by
// column x and row y, with (0, 0) at the top left.
//
// A Matrix returned by NewMatrix is never modified and is safe for
// concurrent use.
type Matrix struct {
	size    int
	version Version
	level   Level
	mask    Mask
	m       []Module // row major
}

func newMatrix(v Version, l Level) *Matrix {
	siz := v.Size()
	return &Matrix{
		size:    siz,
		version: v,
		level:   l,
		mask:    AutoMask,
		m:       make([]Module, siz*siz),
	}
}

// NewMatrix lays out cw with the function patterns of its version and
// applies mask.  If mask is AutoMask, the mask with the lowest penalty
// is chosen.  Codewords of the wrong length for their version and
// level are reported as a *CodewordsError.
func NewMatrix(cw *Codewords, mask Mask) (*Matrix, error) {
	if !mask.IsValid() && mask != AutoMask {
		return nil, ErrMask
	}
	m, err := layout(cw)
	if err != nil {
		return nil, err
	}
	if mask == AutoMask {
		if m.version >= parallelVersion {
			mask = m.selectMaskParallel()
		} else {
			mask = m.selectMask()
		}
	}
	m.commitMask(mask)
	return m, nil
}

// layout returns an unmasked Matrix with all modules placed.  The
// format information is a placeholder for mask 0.
func layout(cw *Codewords) (*Matrix, error) {
	if cw == nil {
		return nil, &CodewordsError{}
	}
	v, l := cw.Version, cw.Level
	if !v.IsValid() {
		return nil, ErrVersion
	}
	if !l.IsValid() {
		return nil, ErrLevel
	}
	if len(cw.Bytes) != v.TotalBytes() {
		return nil, &CodewordsError{v, l, len(cw.Bytes), v.TotalBytes()}
	}
	m := newMatrix(v, l)
	m.placeFinders()
	m.placeFormat(FormatBits(l, 0))
	m.placeTiming()
	m.placeVersion()
	m.placeAlignment()
	if err := m.placeData(cw.Bytes); err != nil {
		return nil, err
	}
	return m, nil
}

// Size returns the number of modules on a side of m.
func (m *Matrix) Size() int { return m.size }

// Version returns the QR version of m.
func (m *Matrix) Version() Version { return m.version }

// Level returns the error correction level of m.
func (m *Matrix) Level() Level { return m.level }

// Mask returns the mask applied to m.
func (m *Matrix) Mask() Mask { return m.mask }

// At returns the module at column x, row y.  Outside the grid At
// returns the zero Module.
func (m *Matrix) At(x, y int) Module {
	if 0 <= x && x < m.size && 0 <= y && y < m.size {
		return m.m[y*m.size+x]
	}
	return 0
}

// Black reports whether the module at column x, row y is dark.
func (m *Matrix) Black(x, y int) bool {
	return m.At(x, y).Dark()
}

func (m *Matrix) set(x, y int, r Role, dark bool) {
	m.m[y*m.size+x] = NewModule(r, dark)
}

func (m *Matrix) clone() *Matrix {
	c := *m
	c.m = append([]Module(nil), m.m...)
	return &c
}
