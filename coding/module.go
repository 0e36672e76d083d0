// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Role describes the function of a module in a QR code.
type Role uint8

// Module roles.
const (
	Unset       Role = iota // not placed yet
	Data                    // data, check or remainder bit
	Finder                  // position detection pattern
	Alignment               // alignment pattern
	Timing                  // timing pattern
	Format                  // format information and the dark module
	VersionInfo             // version information
	Separator               // light border around finder patterns
)

var roleNames = [...]string{
	Unset:       "unset",
	Data:        "data",
	Finder:      "finder",
	Alignment:   "alignment",
	Timing:      "timing",
	Format:      "format",
	VersionInfo: "version",
	Separator:   "separator",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return strconv.Itoa(int(r))
}

// A Module is a single cell of a QR code: its role and colour.
// The zero Module is an unset light module.
type Module uint8

const darkBit Module = 1

// NewModule returns a module with the given role and colour.
func NewModule(r Role, dark bool) Module {
	m := Module(r) << 1
	if dark {
		m |= darkBit
	}
	return m
}

// Role returns the role of m.
func (m Module) Role() Role { return Role(m >> 1) }

// Dark reports whether m is dark.
func (m Module) Dark() bool { return m&darkBit != 0 }

// Flip returns m with its colour inverted.
func (m Module) Flip() Module { return m ^ darkBit }

func (m Module) String() string {
	if m.Dark() {
		return m.Role().String() + "/dark"
	}
	return m.Role().String() + "/light"
}
