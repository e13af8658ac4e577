// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parser

import (
	"github.com/akmami/lcptools/alphabet"
	"github.com/akmami/lcptools/core"
)

// ByteSource is a level-1 Source: its atoms are the raw input bytes,
// compared by their alphabet codes. A ByteSource with RevComp set reads
// each byte's reverse-complement code instead of its forward code,
// giving the parser a reverse-complement pass over the same bytes
// without reversing their order.
type ByteSource struct {
	Table   *alphabet.Table
	Seq     []byte
	Base    int64 // global offset of Seq[0], for split/merge windows
	RevComp bool
}

func (s *ByteSource) code(i int) int32 {
	if s.RevComp {
		return s.Table.RCCode(s.Seq[i])
	}
	return s.Table.Code(s.Seq[i])
}

func (s *ByteSource) Len() int { return len(s.Seq) }

func (s *ByteSource) Eq(i, j int) bool {
	a, b := s.code(i), s.code(j)
	return a >= 0 && b >= 0 && a == b
}

func (s *ByteSource) Gt(i, j int) bool {
	a, b := s.code(i), s.code(j)
	return a >= 0 && b >= 0 && a > b
}

func (s *ByteSource) Lt(i, j int) bool {
	a, b := s.code(i), s.code(j)
	return a >= 0 && b >= 0 && a < b
}

func (s *ByteSource) start(i int) int64 { return s.Base + int64(i) }
func (s *ByteSource) end(i int) int64   { return s.Base + int64(i) + 1 }

func (s *ByteSource) Label(in Interner, lo, hi int) (uint32, error) {
	return in.LabelBytes(s.Seq[lo:hi]), nil
}

func (s *ByteSource) Build(lo, hi int, label uint32) (core.Core, error) {
	codes := make([]int32, hi-lo)
	for k := range codes {
		codes[k] = s.code(lo + k)
	}
	return core.NewFromCodes(codes, s.Table.BitWidth(), label, s.start(lo), s.end(hi-1))
}
