// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrust_test

import (
	"fmt"

	"github.com/subygan/qrust"
	"github.com/subygan/qrust/coding"
)

func ExampleEncode() {
	c, err := qrust.Encode("HELLO WORLD", qrust.Q)
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Size)
	// Output: 21
}

func ExampleGenerate() {
	c, err := qrust.Generate("https://example.com/", &qrust.Options{
		Level:      qrust.H,
		MinVersion: 7,
		Mask:       coding.AutoMask,
		Mode:       qrust.AutoMode,
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Size)
	// Output: 45
}
