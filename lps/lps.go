// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lps

import (
	"github.com/akmami/lcptools/core"
	"github.com/akmami/lcptools/parser"
)

// LPS is one level's ordered core sequence. A fresh LPS starts at
// Level 1; Deepen advances it one level at a time. An LPS with an
// empty Cores slice and Level > 1 is a terminal state: it owns no
// cores and further Deepen calls report false and only increment Level.
//
// One LPS is single-writer: the caller must serialize Deepen and any
// other mutating call on a given instance. Distinct LPS instances may
// be driven concurrently from separate goroutines, sharing the same
// Config's Table and Interner.
type LPS struct {
	Level int32
	Cores []core.Core
}

// New builds a level-1 LPS over seq using cfg's alphabet and interner.
// If seq is longer than cfg.Window, it is handled by the split/merge
// driver and deepened to level 1 only (callers that want a deep split
// construction should call NewSplitMerge directly with the target
// level).
func New(cfg Config, seq []byte, revComp bool) (*LPS, error) {
	if cfg.Window > 0 && int64(len(seq)) > cfg.Window {
		return NewSplitMerge(cfg, seq, 1, revComp)
	}
	return newRange(cfg, seq, 0, revComp)
}

func newRange(cfg Config, seq []byte, base int64, revComp bool) (*LPS, error) {
	src := &parser.ByteSource{Table: cfg.Table, Seq: seq, Base: base, RevComp: revComp}
	cores, err := parser.Parse(src, 0, cfg.Interner)
	if err != nil {
		return nil, err
	}
	return &LPS{Level: 1, Cores: cores}, nil
}

// Size reports the number of cores currently held.
func (l *LPS) Size() int { return len(l.Cores) }

// MemSize reports the approximate memory footprint of l in bytes.
func (l *LPS) MemSize() int {
	size := 4 + 24 // Level field plus slice header
	for i := range l.Cores {
		size += l.Cores[i].MemSize()
	}
	return size
}
