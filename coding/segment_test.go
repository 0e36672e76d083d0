// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/skip2/go-qrcode/bitset"
)

func TestSegmentBits(t *testing.T) {
	for _, tc := range []struct {
		seg  Segment
		v    Version
		want string
	}{
		{Segment{"1", Numeric}, 1, "0001 0000000001 0001"},
		{Segment{"99", Numeric}, 1, "0001 0000000010 1100011"},
		{Segment{"123456", Numeric}, 1,
			"0001 0000000110 0001111011 0111001000"},
		{Segment{"01234567", Numeric}, 1,
			"0001 0000001000 0000001100 0101011001 1000011"},
		{Segment{"1", Alphanumeric}, 1, "0010 000000001 000001"},
		{Segment{"99", Alphanumeric}, 1, "0010 000000010 00110011110"},
		{Segment{"ABC1::4", Alphanumeric}, 1,
			"0010 000000111 00111001101 01000011101 11111101000 000100"},
		{Segment{"0", Byte}, 1, "0100 00000001 00110000"},
		{Segment{"\xff", Byte}, 9, "0100 00000001 11111111"},
		{Segment{"é", Latin1}, 1, "0100 00000001 11101001"},
		{Segment{"", Numeric}, 1, "0001 0000000000"},
		// count field widths of size classes 1 and 2
		{Segment{"7", Numeric}, 10, "0001 000000000001 0111"},
		{Segment{"7", Numeric}, 27, "0001 00000000000001 0111"},
		{Segment{"A", Alphanumeric}, 26, "0010 00000000001 001010"},
		{Segment{"A", Alphanumeric}, 40, "0010 0000000000001 001010"},
		{Segment{"0", Byte}, 10, "0100 0000000000000001 00110000"},
		{Segment{"0", Byte}, 40, "0100 0000000000000001 00110000"},
	} {
		var b Bits
		if err := tc.seg.Encode(&b, tc.v); err != nil {
			t.Errorf("%+v at %s: %v", tc.seg, tc.v, err)
			continue
		}
		want := bitset.NewFromBase2String(tc.want)
		if have := bitsetOf(&b); !have.Equals(want) {
			t.Errorf("%+v at %s:\nhave %v\nwant %v", tc.seg, tc.v, have, want)
		}
		if have, want := tc.seg.EncodedLength(tc.v), b.Bits(); have != want {
			t.Errorf("%+v at %s: EncodedLength %d, encoded %d bits",
				tc.seg, tc.v, have, want)
		}
	}
}

// decodeSegment reads a segment encoded for version v from s.
func decodeSegment(t *testing.T, s *BitStream, v Version) Segment {
	t.Helper()
	var mode Mode
	switch ind := s.Read(4); ind {
	case 1:
		mode = Numeric
	case 2:
		mode = Alphanumeric
	case 4:
		mode = Byte
	default:
		t.Fatalf("unexpected mode indicator %#04b", ind)
	}
	n := int(s.Read(mode.CountLength(v)))
	var b strings.Builder
	switch mode {
	case Numeric:
		for ; n >= 3; n -= 3 {
			b.WriteString(pad3(s.Read(10), 3))
		}
		if n == 2 {
			b.WriteString(pad3(s.Read(7), 2))
		} else if n == 1 {
			b.WriteString(pad3(s.Read(4), 1))
		}
	case Alphanumeric:
		for ; n >= 2; n -= 2 {
			c := s.Read(11)
			b.WriteByte(AlphanumericChars[c/45])
			b.WriteByte(AlphanumericChars[c%45])
		}
		if n == 1 {
			b.WriteByte(AlphanumericChars[s.Read(6)])
		}
	case Byte:
		for ; n > 0; n-- {
			b.WriteByte(byte(s.Read(8)))
		}
	}
	return Segment{b.String(), mode}
}

// pad3 formats v as n decimal digits.
func pad3(v uint32, n int) string {
	s := []byte{'0' + byte(v/100), '0' + byte(v/10%10), '0' + byte(v%10)}
	return string(s[3-n:])
}

func roundTrip(t *testing.T, seg Segment, v Version) {
	t.Helper()
	var b Bits
	if err := seg.Encode(&b, v); err != nil {
		t.Fatalf("%+v: %v", seg, err)
	}
	s := NewBitStream(b.Bytes())
	if have := decodeSegment(t, s, v); have != seg {
		t.Errorf("round trip at %s:\nhave %+v\nwant %+v", v, have, seg)
	}
	if rest := s.Len(); rest >= 8 {
		t.Errorf("%+v: %d bits left over", seg, rest)
	}
}

func TestNumericRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for n := 0; n < 100; n++ {
		d := make([]byte, n)
		for i := range d {
			d[i] = '0' + byte(r.IntN(10))
		}
		for _, v := range []Version{1, 10, 27} {
			roundTrip(t, Segment{string(d), Numeric}, v)
		}
	}
	roundTrip(t, Segment{"000", Numeric}, 1)
	roundTrip(t, Segment{"999999", Numeric}, 1)
}

func TestAlphanumericRoundTrip(t *testing.T) {
	// the mapping is a bijection on the alphabet
	seen := map[byte]bool{}
	for i := 0; i < len(AlphanumericChars); i++ {
		c := AlphanumericChars[i]
		if have := alpha[c&0x3f]; int(have) != i {
			t.Errorf("value of %q: have %d, want %d", c, have, i)
		}
		if seen[c] {
			t.Errorf("%q repeated", c)
		}
		seen[c] = true
	}
	for c := 0; c < 0x80; c++ {
		if have, want := Is(rune(c), Alphanumeric), seen[byte(c)]; have != want {
			t.Errorf("Is(%q, Alphanumeric): have %v, want %v", c, have, want)
		}
	}
	roundTrip(t, Segment{AlphanumericChars, Alphanumeric}, 1)
	r := rand.New(rand.NewPCG(3, 4))
	for n := 0; n < 60; n++ {
		s := make([]byte, n)
		for i := range s {
			s[i] = AlphanumericChars[r.IntN(len(AlphanumericChars))]
		}
		roundTrip(t, Segment{string(s), Alphanumeric}, 1)
		roundTrip(t, Segment{string(s), Alphanumeric}, 40)
	}
}

func TestByteRoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	for _, v := range []Version{1, 10} {
		// the count field of versions 1-9 is 8 bits wide
		roundTrip(t, Segment{string(all[:255]), Byte}, v)
	}
	roundTrip(t, Segment{string(all), Byte}, 10)
	for i := range all {
		var b Bits
		b.Write(1, 3) // unaligned
		Segment{string(all[i : i+1]), Byte}.Encode(&b, 1)
		if have := b.Bits(); have != 3+4+8+8 {
			t.Fatalf("byte %#02x: %d bits", i, have)
		}
		s := NewBitStream(b.Bytes())
		s.Read(3 + 4 + 8)
		if have := s.Read(8); have != uint32(i) {
			t.Errorf("byte %#02x: have %#02x", i, have)
		}
	}
}

func TestLatin1(t *testing.T) {
	seg := Segment{"Ünïcödé ½", Latin1}
	var b Bits
	if err := seg.Encode(&b, 1); err != nil {
		t.Fatal(err)
	}
	want := Segment{"\xdcn\xefc\xf6d\xe9 \xbd", Byte}
	if have := decodeSegment(t, NewBitStream(b.Bytes()), 1); have != want {
		t.Errorf("have %+v, want %+v", have, want)
	}
	for _, s := range []string{"€", "日本", "\xff"} {
		if (Segment{s, Latin1}).IsValid() {
			t.Errorf("%q is valid latin-1", s)
		}
	}
}

func TestSegmentErrors(t *testing.T) {
	for _, seg := range []Segment{
		{"12a", Numeric},
		{"١", Numeric}, // ARABIC-INDIC DIGIT ONE
		{"abc", Alphanumeric},
		{"A#B", Alphanumeric},
		{"€", Latin1},
	} {
		var b Bits
		b.Write(0x5, 3)
		err := seg.Encode(&b, 1)
		var se SegmentError
		if !errors.As(err, &se) || Segment(se) != seg {
			t.Errorf("%+v: have %v, want SegmentError", seg, err)
		}
		if b.Bits() != 3 {
			t.Errorf("%+v: %d bits written on error", seg, b.Bits()-3)
		}
		if seg.IsValid() {
			t.Errorf("%+v is valid", seg)
		}
		if n := seg.EncodedLength(1); n != 0 {
			t.Errorf("%+v: EncodedLength %d", seg, n)
		}
	}
	var me ModeError
	err := Segment{"x", Mode(9)}.Encode(&Bits{}, 1)
	if !errors.As(err, &me) || me != 9 {
		t.Errorf("mode 9: have %v, want ModeError", err)
	}
	if err := (Segment{"1", Numeric}).Encode(&Bits{}, 41); err != ErrVersion {
		t.Errorf("version 41: have %v, want %v", err, ErrVersion)
	}
}

func TestEncoderWriteValidatesFirst(t *testing.T) {
	e, err := NewEncoder(1, L)
	if err != nil {
		t.Fatal(err)
	}
	err = e.Write(Segment{"123", Numeric}, Segment{"abc", Alphanumeric})
	var se SegmentError
	if !errors.As(err, &se) {
		t.Fatalf("have %v, want SegmentError", err)
	}
	if e.b.Bits() != 0 {
		t.Errorf("%d bits written before failing", e.b.Bits())
	}
}
