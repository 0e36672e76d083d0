// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// timingCol is the column of the vertical timing pattern.
const timingCol = 6

// A cursor walks the modules of a QR code in data placement order.
// Starting at the bottom right corner, it sweeps pairs of columns,
// alternately upwards and downwards, visiting the right module of a
// row before the left one.  The vertical timing column is skipped.
//
// See Figure 2 of http://www.pclviewer.com/rs2/qrtopology.htm
type cursor struct {
	x, y  int  // current module
	right int  // right column of the current pair
	up    bool // direction of the sweep
	done  bool // all modules visited
	size  int
}

func newCursor(size int) cursor {
	return cursor{x: size - 1, y: size - 1, right: size - 1, up: true,
		size: size}
}

// next advances c to the next module.
func (c *cursor) next() {
	switch {
	case c.done:
	case c.x == c.right:
		// right to left module
		c.x--
	case c.up && c.y > 0:
		c.x, c.y = c.right, c.y-1
	case !c.up && c.y < c.size-1:
		c.x, c.y = c.right, c.y+1
	default:
		c.turn()
	}
}

// turn moves c to the bottom or top of the next column pair,
// reversing the direction.
func (c *cursor) turn() {
	c.right -= 2
	if c.right == timingCol {
		c.right--
	}
	if c.right < 1 {
		c.done = true
		return
	}
	c.up = !c.up
	c.x = c.right
	// the row stays: the sweep continues from the edge it reached
}
