// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Total penalty is the sum of penalties for runs and boxes of
// same-colour modules, finder-like patterns and colour balance.
//
//   - RunP: for non-overlapping runs of n modules, n>=5 -> n-2
//   - BoxP: for possibly overlapping 2x2 boxes -> 3
//   - FindP: for possibly overlapping finder-like patterns -> 40.
//     The pattern is 1011101 with 0000 on either side, inside the
//     grid.
//   - BalP: for n% of dark modules -> 10*(ceiling(abs(n-50)/5)-1)
//
// https://www.nayuki.io/page/creating-a-qr-code-step-by-step
const (
	MinRun    = 5             // RunP:  minimum run length
	RunPDelta = -2            // RunP:  add to run length
	BoxPP     = 3             // BoxP:  points per box
	FindPP    = 40            // FindP: points per pattern
	BalPP     = 10            // BalP:  10 points
	BalPMul   = 20            //        for every 5% (1/20),
	BalPMax   = BalPMul/2 - 1 //        up to 9 times

	findLen = 11
	findB   = 0b0000_1011101 // light before
	findA   = 0b1011101_0000 // light after
)

// Penalty returns the penalty of m used for choosing the mask.
func (m *Matrix) Penalty() int {
	siz := m.size
	p := 0
	for i := 0; i < siz; i++ {
		p += m.linePenalty(i*siz, 1) // row i
		p += m.linePenalty(i, siz)   // column i
	}
	p += m.boxPenalty()

	// Exact percentages get less penalty.  E.g., 40% and 60% get
	// 10 points like 41%, not 20 like 39%.  Fold the dark count
	// into 0 <= n < siz²/2 and divide rounding down.
	dark := 0
	for _, v := range m.m {
		if v.Dark() {
			dark++
		}
	}
	sq := siz * siz
	dark = min(dark, sq-dark)
	p += (BalPMax - dark*BalPMul/sq) * BalPP
	return p
}

// linePenalty returns RunP and FindP of the row or column of m
// starting at index off, with consecutive modules step apart.
func (m *Matrix) linePenalty(off, step int) int {
	p := 0
	r := 0        // current run length
	pat := 0      // last findLen modules, 1 is dark
	var last bool // colour of current run
	for i := 0; i < m.size; i++ {
		dark := m.m[off+i*step].Dark()
		if i == 0 || dark != last {
			if r >= MinRun {
				p += r + RunPDelta
			}
			r = 0
			last = dark
		}
		r++
		pat = pat << 1 & (1<<findLen - 1)
		if dark {
			pat |= 1
		}
		if i >= findLen-1 && (pat == findB || pat == findA) {
			p += FindPP
		}
	}
	if r >= MinRun {
		p += r + RunPDelta
	}
	return p
}

// boxPenalty returns BoxP of m.
func (m *Matrix) boxPenalty() int {
	siz := m.size
	p := 0
	for y := 0; y < siz-1; y++ {
		top, bot := m.m[y*siz:(y+1)*siz], m.m[(y+1)*siz:(y+2)*siz]
		for x := 0; x < siz-1; x++ {
			d := top[x].Dark()
			if top[x+1].Dark() == d && bot[x].Dark() == d &&
				bot[x+1].Dark() == d {
				p += BoxPP
			}
		}
	}
	return p
}
