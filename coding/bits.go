// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// Bits is an append-only bit buffer.  Bits are stored most
// significant first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for the data codewords of
// a QR code of the given version and level.
func NewBits(v Version, l Level) *Bits {
	n := 0
	if v.IsValid() && l.IsValid() {
		n = v.DataBytes(l)
	}
	return &Bits{b: make([]byte, 0, n)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written to b.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the contents of b.  The last byte is zero filled if
// the number of bits is not a multiple of 8.
func (b *Bits) Bytes() []byte {
	return b.b
}

// Write appends the nbit low bits of v to b, most significant first.
// nbit must be between 0 and 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit <= 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// writeBytes appends p to b, 8 bits per byte.
func (b *Bits) writeBytes(p string) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, p...)
		b.nbit += len(p) * 8
		return
	}
	for ; len(p) >= 4; p = p[4:] {
		b.Write(uint32(p[0])<<24|uint32(p[1])<<16|
			uint32(p[2])<<8|uint32(p[3]), 32)
	}
	for i := 0; i < len(p); i++ {
		b.Write(uint32(p[i]), 8)
	}
}

// Padding codewords.
const (
	pad0 = 0xec
	pad1 = 0x11
)

// Pad adds the terminator and padding to b, filling the data capacity
// of a QR code with the given version and level: up to 4 zero bits,
// zero bits to the next byte boundary, and alternating padding bytes
// 0xEC and 0x11.  If b holds more bits than the code can store, Pad
// leaves b unchanged and returns a *CapacityError.
func (b *Bits) Pad(v Version, l Level) error {
	if !v.IsValid() {
		return ErrVersion
	}
	if !l.IsValid() {
		return ErrLevel
	}
	nb := v.DataBits(l)
	if b.nbit > nb {
		return &CapacityError{Version: v, Level: l, Bits: b.nbit, Capacity: nb}
	}
	b.padTo(4, nb)
	return nil
}

// padTo adds up to t terminator bits to b and pads it to n bits,
// n being a multiple of 8.
func (b *Bits) padTo(t, n int) {
	b.nbit = min(b.nbit+t, n)
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	for i := 0; len(b.b) < n>>3; i++ {
		b.b = append(b.b, [2]byte{pad0, pad1}[i&1])
	}
	b.nbit = len(b.b) * 8
}

// CapacityError reports data too long for the QR version and level.
type CapacityError struct {
	Version  Version
	Level    Level
	Bits     int // encoded data length
	Capacity int // data capacity in bits
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bits into %d-bit code (version %s-%s)",
		e.Bits, e.Capacity, e.Version, e.Level)
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) *BitStream { return &BitStream{b: b} }

// Len returns the number of unread bits in s.
func (s *BitStream) Len() int { return len(s.b)*8 - s.pos }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}

// Read returns the next nbit bits from s, most significant first.
func (s *BitStream) Read(nbit int) uint32 {
	var v uint32
	for ; nbit > 0; nbit-- {
		v = v<<1 | uint32(s.Next())
	}
	return v
}
