// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: bit streams
// and segment modes, error correction, format and version information,
// module placement and masking.
//
// The version and level of a code are chosen by the caller.  If the
// data does not fit, a *CapacityError is returned, and the caller may
// retry with a larger version.
package coding // import "github.com/subygan/qrust/coding"

// Encoder encodes a QR code.  It is not safe for concurrent use.
type Encoder struct {
	v Version
	l Level
	b *Bits
}

// NewEncoder returns an Encoder for the given version and level.
func NewEncoder(version Version, level Level) (*Encoder, error) {
	if !version.IsValid() {
		return nil, ErrVersion
	}
	if !level.IsValid() {
		return nil, ErrLevel
	}
	return &Encoder{v: version, l: level, b: NewBits(version, level)}, nil
}

// Write adds text to e.  All segments are validated before any is
// written.
func (e *Encoder) Write(text ...Segment) error {
	for _, t := range text {
		if _, _, err := t.transform(); err != nil {
			return err
		}
	}
	for _, t := range text {
		if err := t.Encode(e.b, e.v); err != nil {
			return err
		}
	}
	return nil
}

// Reset discards data written to e.
func (e *Encoder) Reset() { e.b.Reset() }

// Codewords pads the data written to e and returns it with check
// bytes added.  The Encoder must be Reset before it is written to
// again.
func (e *Encoder) Codewords() (*Codewords, error) {
	if err := e.b.Pad(e.v, e.l); err != nil {
		return nil, err
	}
	return NewCodewords(e.b.Bytes(), e.v, e.l)
}

// Matrix returns a QR code containing data written to e, with the
// given mask or, for AutoMask, the best one.  The Encoder must be
// Reset before it is written to again.
func (e *Encoder) Matrix(mask Mask) (*Matrix, error) {
	if !mask.IsValid() && mask != AutoMask {
		return nil, ErrMask
	}
	cw, err := e.Codewords()
	if err != nil {
		return nil, err
	}
	return NewMatrix(cw, mask)
}

// Encode is a wrapper around Write and Matrix.
func (e *Encoder) Encode(mask Mask, text ...Segment) (*Matrix, error) {
	if err := e.Write(text...); err != nil {
		return nil, err
	}
	return e.Matrix(mask)
}

// Encode encodes text using an Encoder with the given version and
// level.
func Encode(version Version, level Level, mask Mask, text ...Segment) (*Matrix, error) {
	e, err := NewEncoder(version, level)
	if err != nil {
		return nil, err
	}
	return e.Encode(mask, text...)
}
