// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package core implements the bit-packed representation of one LCP core:
// its packed value, comparisons, compression against a left neighbor, and
// serialization. A Core never looks at the original string or at any
// interning table itself — callers supply the label and the origin
// interval, keeping this package a pure bit-arithmetic leaf.
package core

import (
	"github.com/akmami/lcptools/internal"
)

// BlockBits is the width of one block of the packed representation.
const BlockBits = 32

// Core is one parsed region: a bit-packed value, a dense label, and
// (optionally meaningful) origin offsets in the source string.
type Core struct {
	BitSize uint32   // number of significant bits in Rep
	Rep     []uint32 // len(Rep) == ceil(BitSize/BlockBits), MSB-first, right-aligned
	Label   uint32
	Start   int64 // meaningful only when the caller tracks stats
	End     int64
}

func numBlocks(bitSize uint32) int {
	return int((bitSize + BlockBits - 1) / BlockBits)
}

// padding is the count of always-zero leading bits in the first block.
func (c *Core) padding() uint32 {
	return uint32(len(c.Rep))*BlockBits - c.BitSize
}

// Get returns the i-th bit counting from the most significant end of the
// value (i == 0 is the MSB).
func (c *Core) Get(i uint32) bool {
	p := c.padding() + i
	block := p / BlockBits
	off := p % BlockBits
	return (c.Rep[block]>>(BlockBits-1-off))&1 == 1
}

// bitWriter packs a known total number of bits, MSB first, right-aligned
// into the minimum number of zero-padded blocks.
type bitWriter struct {
	bitSize uint32
	rep     []uint32
	pos     uint32 // next physical bit position (0 == MSB of rep[0])
}

func newBitWriter(bitSize uint32) *bitWriter {
	n := numBlocks(bitSize)
	return &bitWriter{bitSize: bitSize, rep: make([]uint32, n), pos: uint32(n)*BlockBits - bitSize}
}

func (w *bitWriter) writeBit(b bool) {
	if b {
		block := w.pos / BlockBits
		off := w.pos % BlockBits
		w.rep[block] |= 1 << (BlockBits - 1 - off)
	}
	w.pos++
}

func (w *bitWriter) core(label uint32, start, end int64) Core {
	return Core{BitSize: w.bitSize, Rep: w.rep, Label: label, Start: start, End: end}
}

// NewFromCodes builds a level-1 core from a run of per-byte alphabet codes,
// each contributing w bits, MSB first.
func NewFromCodes(codes []int32, w uint32, label uint32, start, end int64) (Core, error) {
	if len(codes) == 0 {
		return Core{}, &internal.Error{Kind: internal.InvalidArgument, Msg: "empty code range"}
	}
	bw := newBitWriter(w * uint32(len(codes)))
	for _, code := range codes {
		for b := int(w) - 1; b >= 0; b-- {
			bw.writeBit((code>>uint(b))&1 == 1)
		}
	}
	return bw.core(label, start, end), nil
}

// NewFromCores builds a level-(L+1) core by concatenating, in order, the bit
// representations of a run of already-built level-L cores.
func NewFromCores(atoms []Core, label uint32, start, end int64) (Core, error) {
	if len(atoms) == 0 {
		return Core{}, &internal.Error{Kind: internal.InvalidArgument, Msg: "empty core range"}
	}
	var total uint32
	for _, a := range atoms {
		total += a.BitSize
	}
	bw := newBitWriter(total)
	for _, a := range atoms {
		for i := uint32(0); i < a.BitSize; i++ {
			bw.writeBit(a.Get(i))
		}
	}
	return bw.core(label, start, end), nil
}

// MemSize reports the approximate memory footprint of c in bytes.
func (c *Core) MemSize() int {
	return 24 + 4*len(c.Rep) // struct overhead + one word per block
}
