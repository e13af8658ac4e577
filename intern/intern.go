// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package intern assigns 32-bit labels to parsed cores, either by a
// shared, deduplicating map (dense, process-local ids) or by a stateless
// hash (MurmurHash3-32, reproducible across processes and machines).
package intern

// Interner is the label source a parser borrows for the duration of a
// parse. LabelBytes labels a level-1 core from its raw, upper-cased byte
// content; LabelTuple labels a higher-level core from the ordered labels
// of the atoms it was built from.
type Interner interface {
	LabelBytes(b []byte) uint32
	LabelTuple(labels []uint32) uint32
}

// Hash is the stateless interning mode: labels are the MurmurHash3-32 of
// the content, nothing is stored, and the zero value is ready to use.
type Hash struct{}

func (Hash) LabelBytes(b []byte) uint32 {
	return Murmur3_32(upper(b), Seed)
}

func (Hash) LabelTuple(labels []uint32) uint32 {
	return Murmur3_32(tupleBytes(labels), Seed)
}

func upper(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return out
}
