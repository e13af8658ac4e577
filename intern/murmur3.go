// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package intern

import (
	"encoding/binary"
	"math/bits"
)

// Seed is the fixed MurmurHash3-32 seed used throughout label interning.
const Seed uint32 = 42

const (
	c1 = 0xcc9e2d51
	c2 = 0x1b873593
)

// Murmur3_32 computes the 32-bit MurmurHash3 (x86_32 variant) of data with
// the given seed. The input is treated as a little-endian byte stream.
func Murmur3_32(data []byte, seed uint32) uint32 {
	h1 := seed
	n := len(data)
	nblocks := n / 4

	for i := 0; i < nblocks; i++ {
		k1 := binary.LittleEndian.Uint32(data[i*4:])
		k1 *= c1
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2

		h1 ^= k1
		h1 = bits.RotateLeft32(h1, 13)
		h1 = h1*5 + 0xe6546b64
	}

	var k1 uint32
	tail := data[nblocks*4:]
	switch len(tail) {
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		k1 *= c1
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2
		h1 ^= k1
	}

	h1 ^= uint32(n)
	h1 ^= h1 >> 16
	h1 *= 0x85ebca6b
	h1 ^= h1 >> 13
	h1 *= 0xc2b2ae35
	h1 ^= h1 >> 16
	return h1
}

// tupleBytes packs a u32 label array into its little-endian byte
// representation, the form MurmurHash3-32 is applied to.
func tupleBytes(labels []uint32) []byte {
	buf := make([]byte, 4*len(labels))
	for i, v := range labels {
		binary.LittleEndian.PutUint32(buf[4*i:], v)
	}
	return buf
}
