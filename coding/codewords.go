// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"rsc.io/qr/gf256"
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// Codewords is the final codeword sequence of a QR code: data and
// check bytes with blocks interleaved.
type Codewords struct {
	Version Version
	Level   Level
	Bytes   []byte // len(Bytes) == Version.TotalBytes()
}

// CodewordsError reports codewords inconsistent with the QR version
// and level they are declared for.
type CodewordsError struct {
	Version Version
	Level   Level
	Len     int // number of codewords given
	Want    int // number of codewords expected
}

func (e *CodewordsError) Error() string {
	return fmt.Sprintf("qr: %d codewords for version %s-%s, want %d",
		e.Len, e.Version, e.Level, e.Want)
}

// Blocks returns the number of error correction blocks and the number
// of check bytes per block for version v and level l.
func (v Version) Blocks(l Level) (nblock, check int) {
	lev := vtab[v].level[l]
	return lev.nblock, lev.check
}

// NewCodewords splits data into error correction blocks for version v
// and level l, computes the check bytes of each block and returns the
// interleaved codewords.  Data must hold exactly v.DataBytes(l) bytes
// with terminator and padding, as written by Bits.Pad.
//
// The first blocks are short, the remaining ones one byte longer.
// The data bytes of all blocks are interleaved, followed by the
// interleaved check bytes.
func NewCodewords(data []byte, v Version, l Level) (*Codewords, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	if !l.IsValid() {
		return nil, ErrLevel
	}
	nd := v.DataBytes(l)
	if len(data) != nd {
		return nil, &CodewordsError{v, l, len(data), nd}
	}
	nblock, nc := v.Blocks(l)
	out := make([]byte, v.TotalBytes())
	check := make([]byte, nblock*nc)
	db := nd / nblock
	long := nblock - nd%nblock // index of the first long block
	rs := gf256.NewRSEncoder(Field, nc)
	for i, src := 0, data; i < nblock; i++ {
		if i == long {
			db++
		}
		rs.ECC(src[:db], check[i*nc:(i+1)*nc])
		src = src[db:]
	}
	interleave(out[:nd], data, nblock)
	interleave(out[nd:], check, nblock)
	return &Codewords{Version: v, Level: l, Bytes: out}, nil
}

// interleave interleaves nblock blocks from src to dst, which must be
// of equal length.  If the blocks differ in length, the last ones are
// one byte longer.
func interleave(dst, src []byte, nblock int) {
	db := len(src) / nblock
	tail := dst[db*nblock:]
	dst = dst[:db*nblock]
	short := nblock - len(tail)
	for i := 0; i < nblock; i++ {
		for j, v := range src[:db] {
			dst[j*nblock+i] = v
		}
		src = src[db:]
		if i >= short {
			tail[i-short] = src[0]
			src = src[1:]
		}
	}
}
