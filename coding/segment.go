// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// SegmentError represents a Segment containing characters not
// encodable in its mode.
type SegmentError Segment

func (e SegmentError) Error() string {
	if m := getMode(e.Mode); m != nil {
		return fmt.Sprintf("qr: non-%s string %#q", m.name, e.Text)
	}
	return fmt.Sprintf("qr: invalid mode %d", e.Mode)
}

// ModeError represents an invalid Mode number.
type ModeError Mode

func (e ModeError) Error() string {
	return fmt.Sprintf("qr: invalid mode %s", Mode(e))
}

// isValid reports whether seg is encodable in m.
func (m *modeEncoder) isValid(seg Segment) bool {
	is := m.accepts
	switch {
	case is == nil:
	case seg.Mode == Numeric || seg.Mode == Alphanumeric:
		for i := 0; i < len(seg.Text); i++ {
			if !is(rune(seg.Text[i])) {
				return false
			}
		}
	default:
		for _, r := range seg.Text {
			if !is(r) {
				return false
			}
		}
	}
	return true
}

// IsValid reports whether seg is encodable.
func (seg Segment) IsValid() bool {
	_, _, err := seg.transform()
	return err == nil
}

// transform validates seg and transforms it for encoding.
func (seg Segment) transform() (Segment, *modeEncoder, error) {
	m := getMode(seg.Mode)
	if m == nil {
		return Segment{}, nil, ModeError(seg.Mode)
	}
	if !m.isValid(seg) {
		return Segment{}, nil, SegmentError(seg)
	}
	if m.transform == nil {
		return seg, m, nil
	}
	ts, ok := m.transform(seg.Text)
	if !ok {
		return Segment{}, nil, SegmentError(seg)
	}
	if m = getMode(ts.Mode); m == nil || m.transform != nil {
		return Segment{}, nil, ModeError(seg.Mode)
	}
	return ts, m, nil
}

// EncodedLength returns the encoded length in bits of seg in a QR
// code of version v, including the header.  EncodedLength returns 0
// if seg is not encodable or v is invalid.
func (seg Segment) EncodedLength(v Version) int {
	ts, m, err := seg.transform()
	if err != nil || !v.IsValid() {
		return 0
	}
	n := 4 + m.countLength[v.SizeClass()]
	if f := m.encodedLength; f != nil {
		n += f(len(ts.Text))
	} else {
		n += len(ts.Text) * 8
	}
	return n
}

// Encode writes seg encoded for a QR code of version v to b.
// The segment is validated before anything is written.
func (seg Segment) Encode(b *Bits, v Version) error {
	if !v.IsValid() {
		return ErrVersion
	}
	ts, m, err := seg.transform()
	if err != nil {
		return err
	}
	s := ts.Text
	// header
	b.Write(m.indicator, 4)
	b.Write(uint32(len(s)), m.countLength[v.SizeClass()])
	// payload
	enc3, enc2, enc1 := m.encode3, m.encode2, m.encode1
	if enc3 == nil && enc2 == nil && enc1 == nil {
		b.writeBytes(s)
		return nil
	}
	if enc3 != nil {
		for ; len(s) >= 3; s = s[3:] {
			b.Write(enc3([3]byte{s[0], s[1], s[2]}))
		}
	}
	if enc2 != nil {
		for ; len(s) >= 2; s = s[2:] {
			b.Write(enc2([2]byte{s[0], s[1]}))
		}
	}
	for ; len(s) >= 1; s = s[1:] {
		b.Write(enc1(s[0]))
	}
	return nil
}
