// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"strconv"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
	ErrMask    = errors.New("qr: invalid mask")
)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions number from 1 to 40: the larger the version,
// the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string {
	return strconv.Itoa(int(v))
}

// IsValid reports whether v is a QR version.
func (v Version) IsValid() bool {
	return MinVersion <= v && v <= MaxVersion
}

// QR version size classes.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
// The size class selects the width of the character count field.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// Size returns the number of modules on a side of a code of version v.
func (v Version) Size() int {
	return int(v)*4 + 17
}

// TotalBytes returns the number of data and check codewords in a
// code of version v.
func (v Version) TotalBytes() int {
	return vtab[v].bytes
}

// DataBytes returns the number of data bytes that can be
// stored in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int {
	vt := &vtab[v]
	lev := vt.level[l]
	return vt.bytes - lev.nblock*lev.check
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int {
	return v.DataBytes(l) * 8
}

// AlignmentCenters returns the row and column coordinates of the
// alignment pattern centres of version v, in increasing order.
// Version 1 has none.
func (v Version) AlignmentCenters() []int {
	if v < 2 {
		return nil
	}
	vt := &vtab[v]
	last := v.Size() - 7
	c := []int{6}
	for x := vt.apos + 2; x <= last; x += vt.astride {
		c = append(c, x)
	}
	return c
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is an error correction level.
func (l Level) IsValid() bool {
	return L <= l && l <= H
}

// formatIndex returns the two bit level indicator stored in the
// format information: L=01, M=00, Q=11, H=10.
func (l Level) formatIndex() int {
	return int(l) ^ 1
}

// A version describes metadata associated with a version.
type version struct {
	apos    int      // top left corner of the second alignment box
	astride int      // distance between alignment boxes
	bytes   int      // data and check bytes
	level   [4]level // block structure per level
}

type level struct {
	nblock int // number of blocks
	check  int // check bytes per block
}

// Version table.  Values from ISO/IEC 18004 tables 1, 9 and E.1.
var vtab = [MaxVersion + 1]version{
	{},
	{100, 100, 26, [4]level{{1, 7}, {1, 10}, {1, 13}, {1, 17}}},      // 1
	{16, 100, 44, [4]level{{1, 10}, {1, 16}, {1, 22}, {1, 28}}},      // 2
	{20, 100, 70, [4]level{{1, 15}, {1, 26}, {2, 18}, {2, 22}}},      // 3
	{24, 100, 100, [4]level{{1, 20}, {2, 18}, {2, 26}, {4, 16}}},     // 4
	{28, 100, 134, [4]level{{1, 26}, {2, 24}, {4, 18}, {4, 22}}},     // 5
	{32, 100, 172, [4]level{{2, 18}, {4, 16}, {4, 24}, {4, 28}}},     // 6
	{20, 16, 196, [4]level{{2, 20}, {4, 18}, {6, 18}, {5, 26}}},      // 7
	{22, 18, 242, [4]level{{2, 24}, {4, 22}, {6, 22}, {6, 26}}},      // 8
	{24, 20, 292, [4]level{{2, 30}, {5, 22}, {8, 20}, {8, 24}}},      // 9
	{26, 22, 346, [4]level{{4, 18}, {5, 26}, {8, 24}, {8, 28}}},      // 10
	{28, 24, 404, [4]level{{4, 20}, {5, 30}, {8, 28}, {11, 24}}},     // 11
	{30, 26, 466, [4]level{{4, 24}, {8, 22}, {10, 26}, {11, 28}}},    // 12
	{32, 28, 532, [4]level{{4, 26}, {9, 22}, {12, 24}, {16, 22}}},    // 13
	{24, 20, 581, [4]level{{4, 30}, {9, 24}, {16, 20}, {16, 24}}},    // 14
	{24, 22, 655, [4]level{{6, 22}, {10, 24}, {12, 30}, {18, 24}}},   // 15
	{24, 24, 733, [4]level{{6, 24}, {10, 28}, {17, 24}, {16, 30}}},   // 16
	{28, 24, 815, [4]level{{6, 28}, {11, 28}, {16, 28}, {19, 28}}},   // 17
	{28, 26, 901, [4]level{{6, 30}, {13, 26}, {18, 28}, {21, 28}}},   // 18
	{28, 28, 991, [4]level{{7, 28}, {14, 26}, {21, 26}, {25, 26}}},   // 19
	{32, 28, 1085, [4]level{{8, 28}, {16, 26}, {20, 30}, {25, 28}}},  // 20
	{26, 22, 1156, [4]level{{8, 28}, {17, 26}, {23, 28}, {25, 30}}},  // 21
	{24, 24, 1258, [4]level{{9, 28}, {17, 28}, {23, 30}, {34, 24}}},  // 22
	{28, 24, 1364, [4]level{{9, 30}, {18, 28}, {25, 30}, {30, 30}}},  // 23
	{26, 26, 1474, [4]level{{10, 30}, {20, 28}, {27, 30}, {32, 30}}}, // 24
	{30, 26, 1588, [4]level{{12, 26}, {21, 28}, {29, 30}, {35, 30}}}, // 25
	{28, 28, 1706, [4]level{{12, 28}, {23, 28}, {34, 28}, {37, 30}}}, // 26
	{32, 28, 1828, [4]level{{12, 30}, {25, 28}, {34, 30}, {40, 30}}}, // 27
	{24, 24, 1921, [4]level{{13, 30}, {26, 28}, {35, 30}, {42, 30}}}, // 28
	{28, 24, 2051, [4]level{{14, 30}, {28, 28}, {38, 30}, {45, 30}}}, // 29
	{24, 26, 2185, [4]level{{15, 30}, {29, 28}, {40, 30}, {48, 30}}}, // 30
	{28, 26, 2323, [4]level{{16, 30}, {31, 28}, {43, 30}, {51, 30}}}, // 31
	{32, 26, 2465, [4]level{{17, 30}, {33, 28}, {45, 30}, {54, 30}}}, // 32
	{28, 28, 2611, [4]level{{18, 30}, {35, 28}, {48, 30}, {57, 30}}}, // 33
	{32, 28, 2761, [4]level{{19, 30}, {37, 28}, {51, 30}, {60, 30}}}, // 34
	{28, 24, 2876, [4]level{{19, 30}, {38, 28}, {53, 30}, {63, 30}}}, // 35
	{22, 26, 3034, [4]level{{20, 30}, {40, 28}, {56, 30}, {66, 30}}}, // 36
	{26, 26, 3196, [4]level{{21, 30}, {43, 28}, {59, 30}, {70, 30}}}, // 37
	{30, 26, 3362, [4]level{{22, 30}, {45, 28}, {62, 30}, {74, 30}}}, // 38
	{24, 28, 3532, [4]level{{24, 30}, {47, 28}, {65, 30}, {77, 30}}}, // 39
	{28, 28, 3706, [4]level{{25, 30}, {49, 28}, {68, 30}, {81, 30}}}, // 40
}
