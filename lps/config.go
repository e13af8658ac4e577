// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lps implements the hierarchy engine: it owns one level's core
// sequence, drives Deterministic Coin Tossing and re-parsing to deepen
// it, serializes whole levels, and splits very long inputs into
// overlapping windows that are parsed and then spliced back together.
package lps

import (
	"github.com/akmami/lcptools/alphabet"
	"github.com/akmami/lcptools/parser"
)

// DCTIterationCount is the number of DCT passes performed per Deepen
// call, and the resulting extension_size used by the re-parse step.
const DCTIterationCount = 1

// ConstantFactor is the capacity-hint divisor applied per level when a
// caller wants to pre-size a core slice (input_len / factor^L).
const ConstantFactor = 1.5

// Default window and overlap for the split/merge driver.
const (
	MaxStrLength = 1000000
	OverlapMargin = 10000
)

// Default initial reservations for the two map-mode interning tables.
const (
	StrHashTableSize  = 1000
	CoreHashTableSize = 10000
)

// Config bundles the process-wide services an LPS borrows for the
// duration of a parse: the alphabet table every byte is coded against,
// and the interner that assigns labels. Both are read-mostly and safe
// to share across concurrently-parsing LPS instances.
type Config struct {
	Table    *alphabet.Table
	Interner parser.Interner
	Window   int64
	Overlap  int64
}

// NewConfig builds a Config with the spec's default window and overlap
// margin. Callers that need a different window pass construct a Config
// literal directly instead.
func NewConfig(tab *alphabet.Table, in parser.Interner) Config {
	return Config{Table: tab, Interner: in, Window: MaxStrLength, Overlap: OverlapMargin}
}
