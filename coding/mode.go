// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strconv"

	"golang.org/x/text/encoding/charmap"
)

// A Mode is a QR segment encoding mode.
type Mode int

// Encoding modes.
const (
	Numeric      Mode = iota // numeric mode, digits 0-9
	Alphanumeric             // alphanumeric mode, 0-9 A-Z SPACE $%*+-./:
	Byte                     // byte mode, any data
	Latin1                   // byte mode, UTF-8 text encoded as ISO 8859-1
)

// modeEncoder describes the encoding of a segment mode.
//
// Segments are validated with Accepts, applied to each byte for
// Numeric and Alphanumeric and to each rune otherwise.  A mode with
// Transform set is encoded as the segment Transform returns, which
// must be of a mode without Transform.
type modeEncoder struct {
	name      string // name for error reporting
	indicator uint32 // 4 bit mode indicator

	// countLength lists lengths of the character count field in
	// the three QR version size classes.
	countLength [3]int

	// encodedLength returns the length in bits of the payload of a
	// valid string of n bytes.
	encodedLength func(n int) int

	accepts   func(rune) bool
	transform func(string) (Segment, bool)

	// encode3, encode2 and encode1 return the encoding of the bytes
	// and its length in bits.  The encoder calls a non-nil encode{N}
	// repeatedly as long as N source bytes are available, in
	// descending order of N.  If all are nil, each byte is encoded as
	// 8 bits.
	encode3 func([3]byte) (uint32, int)
	encode2 func([2]byte) (uint32, int)
	encode1 func(byte) (uint32, int)
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table, indexed by the low 6 bits of the
// character.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 8, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// AlphanumericChars lists the alphanumeric mode characters in order
// of their values.
const AlphanumericChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

func isDigit(r rune) bool { return uint32(r-'0') < 10 }

func isAlphanumeric(r rune) bool {
	return uint32(r-' ') < 64 && alphamask>>(uint32(r)-' ')&1 != 0
}

var modes = [...]modeEncoder{
	Numeric: {
		name:          "numeric",
		indicator:     1,
		countLength:   [3]int{10, 12, 14},
		encodedLength: func(n int) int { return (10*n + 2) / 3 },
		accepts:       isDigit,
		encode1: func(b byte) (uint32, int) {
			return uint32(b - '0'), 4
		},
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(b[0]-'0')*10 + uint32(b[1]-'0'), 7
		},
		encode3: func(b [3]byte) (uint32, int) {
			return uint32(b[0]-'0')*100 + uint32(b[1]-'0')*10 +
				uint32(b[2]-'0'), 10
		},
	},
	Alphanumeric: {
		name:          "alphanumeric",
		indicator:     2,
		countLength:   [3]int{9, 11, 13},
		encodedLength: func(n int) int { return (11*n + 1) / 2 },
		accepts:       isAlphanumeric,
		encode1: func(b byte) (uint32, int) {
			return uint32(alpha[b&0x3f]), 6
		},
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(alpha[b[0]&0x3f])*45 +
				uint32(alpha[b[1]&0x3f]), 11
		},
	},
	Byte: {
		name:        "byte",
		indicator:   4,
		countLength: [3]int{8, 16, 16},
	},
	Latin1: {
		name:        "latin-1",
		indicator:   4,
		countLength: [3]int{8, 16, 16},
		accepts:     func(r rune) bool { return uint32(r) < 0x100 },
		transform: func(s string) (Segment, bool) {
			t, err := charmap.ISO8859_1.NewEncoder().String(s)
			return Segment{t, Byte}, err == nil
		},
	},
}

func getMode(mode Mode) *modeEncoder {
	if 0 <= mode && int(mode) < len(modes) {
		return &modes[mode]
	}
	return nil
}

func (mode Mode) String() string {
	if m := getMode(mode); m != nil {
		return m.name
	}
	return strconv.Itoa(int(mode))
}

// Indicator returns the 4 bit mode indicator of mode, or 0 if mode is
// invalid.
func (mode Mode) Indicator() int {
	if m := getMode(mode); m != nil {
		return int(m.indicator)
	}
	return 0
}

// CountLength returns the length in bits of the character count field
// for mode in a QR code of version v, or 0 if mode or v is invalid.
func (mode Mode) CountLength(v Version) int {
	if m := getMode(mode); m != nil && v.IsValid() {
		return m.countLength[v.SizeClass()]
	}
	return 0
}

// Is reports whether r is encodable in mode.
func Is(r rune, mode Mode) bool {
	m := getMode(mode)
	return m != nil && (m.accepts == nil || m.accepts(r))
}
