// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Placement phases.  Called in this order by NewMatrix; later phases
// may overwrite earlier ones only where the colours agree (alignment
// patterns over timing patterns) and data fills the unset rest.

// placeFinders draws the three position boxes with their separators.
func (m *Matrix) placeFinders() {
	siz := m.size
	m.finder(0, 0)
	m.finder(siz-7, 0)
	m.finder(0, siz-7)
}

// finder draws a position box at upper left x, y and the light border
// around it, clipped to the grid.
func (m *Matrix) finder(x, y int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= m.size || yy < 0 || yy >= m.size {
				continue
			}
			if dx < 0 || dx > 6 || dy < 0 || dy > 6 {
				m.set(xx, yy, Separator, false)
				continue
			}
			dark := dx == 0 || dx == 6 || dy == 0 || dy == 6 ||
				2 <= dx && dx <= 4 && 2 <= dy && dy <= 4
			m.set(xx, yy, Finder, dark)
		}
	}
}

// placeFormat writes format information fb around the position boxes
// and sets the dark module.
func (m *Matrix) placeFormat(fb uint16) {
	siz := m.size
	for i := 0; i < 15; i++ {
		dark := fb>>i&1 != 0
		// top left
		switch {
		case i < 6:
			m.set(8, i, Format, dark)
		case i < 8:
			m.set(8, i+1, Format, dark)
		case i == 8:
			m.set(7, 8, Format, dark)
		default:
			m.set(14-i, 8, Format, dark)
		}
		// top right and bottom left
		if i < 8 {
			m.set(siz-1-i, 8, Format, dark)
		} else {
			m.set(8, siz-15+i, Format, dark)
		}
	}
	// One lonely dark module
	m.set(8, siz-8, Format, true)
}

// placeTiming draws the timing patterns in row and column 6 between
// the separators.
func (m *Matrix) placeTiming() {
	for i := 8; i < m.size-8; i++ {
		dark := i&1 == 0
		m.set(i, timingCol, Timing, dark)
		m.set(timingCol, i, Timing, dark)
	}
}

// placeVersion writes version information next to the top right and
// bottom left position boxes for versions 7 and up.
func (m *Matrix) placeVersion() {
	vb := VersionBits(m.version)
	if vb == 0 {
		return
	}
	siz := m.size
	for i := 0; i < 18; i++ {
		dark := vb>>i&1 != 0
		a, b := siz-11+i%3, i/3
		m.set(a, b, VersionInfo, dark)
		m.set(b, a, VersionInfo, dark)
	}
}

// placeAlignment draws the alignment boxes, except where they would
// overlap the position boxes.
func (m *Matrix) placeAlignment() {
	c := m.version.AlignmentCenters()
	if len(c) == 0 {
		return
	}
	first, last := c[0], c[len(c)-1]
	for _, y := range c {
		for _, x := range c {
			if x == first && (y == first || y == last) ||
				x == last && y == first {
				continue
			}
			m.alignBox(x, y)
		}
	}
}

// alignBox draws an alignment box centred at x, y.
func (m *Matrix) alignBox(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			dark := max(abs(dx), abs(dy)) != 1
			m.set(x+dx, y+dy, Alignment, dark)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// maxRemainder is the largest number of remainder bits in a QR code.
const maxRemainder = 7

// placeData writes the bits of cw to the unset modules in zigzag scan
// order.  Modules left after the last bit are light remainder bits.
func (m *Matrix) placeData(cw []byte) error {
	bits := NewBitStream(cw)
	rem := 0
	for c := newCursor(m.size); !c.done; c.next() {
		if m.At(c.x, c.y).Role() != Unset {
			continue
		}
		if bits.Len() == 0 {
			rem++
			m.set(c.x, c.y, Data, false)
			continue
		}
		m.set(c.x, c.y, Data, bits.Next() != 0)
	}
	if bits.Len() != 0 || rem > maxRemainder {
		return &CodewordsError{m.version, m.level, len(cw),
			(len(cw)*8 - bits.Len() + rem) / 8}
	}
	return nil
}
