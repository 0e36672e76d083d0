// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/skip2/go-qrcode/bitset"
)

// bitsetOf returns the bits written to b as a bitset.
func bitsetOf(b *Bits) *bitset.Bitset {
	bs := bitset.New()
	s := NewBitStream(b.Bytes())
	for i := 0; i < b.Bits(); i++ {
		bs.AppendBools(s.Next() != 0)
	}
	return bs
}

func TestBitsWrite(t *testing.T) {
	var b Bits
	bs := bitset.New()
	for i, w := range []struct {
		v    uint32
		nbit int
	}{
		{1, 1}, {0x5, 3}, {0, 0}, {0x3ff, 10}, {0xabcd, 16},
		{0x12, 5}, {0xdeadbeef, 32}, {0x7f, 7}, {0x1, 4},
		{0xffffffff, 3}, // only the low bits count
	} {
		b.Write(w.v, w.nbit)
		bs.AppendUint32(w.v&(1<<w.nbit-1), w.nbit)
		if have := bitsetOf(&b); !have.Equals(bs) {
			t.Fatalf("write %d: have %v, want %v", i, have, bs)
		}
	}
	if have, want := b.Bits(), bs.Len(); have != want {
		t.Errorf("Bits: have %d, want %d", have, want)
	}
	if have, want := len(b.Bytes()), (bs.Len()+7)/8; have != want {
		t.Errorf("len(Bytes): have %d, want %d", have, want)
	}
	b.Reset()
	if b.Bits() != 0 || len(b.Bytes()) != 0 {
		t.Errorf("Reset: %d bits, %d bytes left", b.Bits(), len(b.Bytes()))
	}
}

func TestBitsPad(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    Version
		l    Level
		fill int // bits written before padding
		want []byte
	}{
		{
			// 1-H holds 9 data bytes
			name: "empty",
			v:    1, l: H,
			want: []byte{0, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11},
		},
		{
			name: "terminator to boundary",
			v:    1, l: H, fill: 12,
			want: []byte{0xff, 0xf0, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec},
		},
		{
			name: "short terminator",
			v:    1, l: H, fill: 70,
			want: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfc},
		},
		{
			name: "full",
			v:    1, l: H, fill: 72,
			want: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		},
	} {
		var b Bits
		for n := tc.fill; n > 0; n -= min(n, 8) {
			b.Write(0xff, min(n, 8))
		}
		if err := b.Pad(tc.v, tc.l); err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if diff := cmp.Diff(tc.want, b.Bytes()); diff != "" {
			t.Errorf("%s: bytes mismatch (-want +have):\n%s", tc.name, diff)
		}
		if have, want := b.Bits(), tc.v.DataBits(tc.l); have != want {
			t.Errorf("%s: have %d bits, want %d", tc.name, have, want)
		}
	}
}

func TestBitsPadAllVersions(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		for l := L; l <= H; l++ {
			b := NewBits(v, l)
			b.Write(0x12345, 17)
			if err := b.Pad(v, l); err != nil {
				t.Fatalf("%s-%s: %v", v, l, err)
			}
			p := b.Bytes()
			if len(p) != v.DataBytes(l) {
				t.Fatalf("%s-%s: have %d bytes, want %d", v, l,
					len(p), v.DataBytes(l))
			}
			for i, c := range p[3:] {
				if want := [2]byte{pad0, pad1}[i&1]; c != want {
					t.Fatalf("%s-%s: pad byte %d is %#02x, want %#02x",
						v, l, i, c, want)
				}
			}
		}
	}
}

func TestBitsCapacity(t *testing.T) {
	var b Bits
	for i := 0; i < 10; i++ {
		b.Write(0xff, 8)
	}
	b.Write(1, 1)
	if err := b.Pad(1, L); err != nil { // 19 data bytes
		t.Fatalf("Pad(1, L): %v", err)
	}

	b.Reset()
	for i := 0; i < 9; i++ {
		b.Write(0xff, 8)
	}
	b.Write(1, 1)
	before := append([]byte(nil), b.Bytes()...)
	err := b.Pad(1, H) // 9 data bytes
	var ce *CapacityError
	if !errors.As(err, &ce) {
		t.Fatalf("Pad(1, H): have %v, want *CapacityError", err)
	}
	if ce.Bits != 73 || ce.Capacity != 72 || ce.Version != 1 || ce.Level != H {
		t.Errorf("CapacityError: have %+v", *ce)
	}
	if diff := cmp.Diff(before, b.Bytes()); diff != "" || b.Bits() != 73 {
		t.Errorf("Pad modified Bits on error (-before +after):\n%s", diff)
	}
}

func TestBitStreamRead(t *testing.T) {
	s := NewBitStream([]byte{0xa5, 0x3c})
	if have := s.Read(3); have != 5 {
		t.Errorf("Read(3): have %#b, want 101", have)
	}
	if have := s.Read(9); have != 0x053 {
		t.Errorf("Read(9): have %#x, want 0x53", have)
	}
	if have := s.Len(); have != 4 {
		t.Errorf("Len: have %d, want 4", have)
	}
	if have := s.Read(8); have != 0xc0 {
		t.Errorf("Read past end: have %#x, want 0xc0", have)
	}
}
