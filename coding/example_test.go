// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding_test

import (
	"errors"
	"fmt"

	"github.com/subygan/qrust/coding"
)

func ExampleEncode() {
	m, err := coding.Encode(1, coding.M, coding.AutoMask,
		coding.Segment{Text: "01234567", Mode: coding.Numeric})
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Size(), m.Version(), m.Level())
	// Output: 21 1 M
}

func ExampleCapacityError() {
	seg := coding.Segment{Text: "HELLO, WORLD", Mode: coding.Byte}
	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		_, err := coding.Encode(v, coding.H, 0, seg)
		var ce *coding.CapacityError
		if errors.As(err, &ce) {
			fmt.Println(ce)
			continue
		}
		fmt.Println("version", v)
		break
	}
	// Output:
	// qr: cannot encode 108 bits into 72-bit code (version 1-H)
	// version 2
}
