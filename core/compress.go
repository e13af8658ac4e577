// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package core

import "math/bits"

// Compress is the Deterministic Coin Tossing step: it replaces c's value
// with the position and value of the first bit (scanning from the LSB
// upward) at which c and prev's packed values differ. The label is left
// untouched.
func (c *Core) Compress(prev *Core) {
	tBitSize, oBitSize := c.BitSize, prev.BitSize
	index := tBitSize
	if oBitSize < index {
		index = oBitSize
	}
	tBlock := int(tBitSize-1) / BlockBits
	oBlock := int(oBitSize-1) / BlockBits

	for index >= BlockBits && c.Rep[tBlock] == prev.Rep[oBlock] {
		tBlock--
		oBlock--
		index -= BlockBits
	}

	tVal, oVal := c.Rep[tBlock], prev.Rep[oBlock]
	for index > 0 && tVal%2 == oVal%2 {
		tVal /= 2
		oVal /= 2
		index--
	}

	min := tBitSize
	if oBitSize < min {
		min = oBitSize
	}
	newVal := 2*(min-index) + (tVal % 2)

	bitSize := uint32(0)
	if newVal > 0 {
		bitSize = uint32(bits.Len32(newVal))
	}
	if bitSize < 2 {
		bitSize = 2
	}

	c.BitSize = bitSize
	c.Rep = []uint32{newVal}
}

// Compare returns -1, 0, or +1 as a is less than, equal to, or greater than
// b, using bit_size as the primary key and then the block vector in
// lexicographic order — the total order required by the spec's ==, <, >,
// <=, >= operators.
func Compare(a, b *Core) int {
	if a.BitSize != b.BitSize {
		if a.BitSize < b.BitSize {
			return -1
		}
		return 1
	}
	for i := range a.Rep {
		if a.Rep[i] != b.Rep[i] {
			if a.Rep[i] < b.Rep[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal, Greater, and Less are convenience wrappers around Compare.
func Equal(a, b *Core) bool   { return Compare(a, b) == 0 }
func Greater(a, b *Core) bool { return Compare(a, b) > 0 }
func Less(a, b *Core) bool    { return Compare(a, b) < 0 }
