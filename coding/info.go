// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math/bits"

// BCH code generators and format information mask.
const (
	versionPoly = 0x1f25 // x^12+x^11+x^10+x^9+x^8+x^5+x^2+1
	formatPoly  = 0x537  // x^10+x^8+x^5+x^4+x^2+x+1
	formatMask  = 0x5412 // keeps format information non-zero
)

// Version and format information, computed by init.
var (
	vinfo [MaxVersion + 1]uint32
	finfo [H + 1][8]uint16
)

func init() {
	for v := Version(7); v <= MaxVersion; v++ {
		d := uint32(v) << 12
		vinfo[v] = d | bchRemainder(d, versionPoly)
	}
	for l := L; l <= H; l++ {
		for m := range finfo[l] {
			d := uint32(l.formatIndex()<<3|m) << 10
			finfo[l][m] = uint16(d|bchRemainder(d, formatPoly)) ^ formatMask
		}
	}
}

// bchRemainder returns the remainder of the binary polynomial division
// of d by poly.
func bchRemainder(d, poly uint32) uint32 {
	deg := bits.Len32(poly) - 1
	for n := bits.Len32(d) - 1; n >= deg; n = bits.Len32(d) - 1 {
		d ^= poly << (n - deg)
	}
	return d
}

// VersionBits returns the 18 bit version information of version v,
// or 0 for versions below 7, which carry none.
func VersionBits(v Version) uint32 {
	if v < 7 || v > MaxVersion {
		return 0
	}
	return vinfo[v]
}

// FormatBits returns the 15 bit format information for level l and
// mask m, masked with 0x5412.  It returns 0 for invalid arguments.
func FormatBits(l Level, m Mask) uint16 {
	if !l.IsValid() || !m.IsValid() {
		return 0
	}
	return finfo[l][m]
}
