// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package alphabet maps input bytes to small integer codes and their
// reverse-complement codes, and reports the per-symbol bit width derived
// from those codes.
package alphabet

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/akmami/lcptools/internal"
)

// Invalid is the sentinel code reported for a byte with no mapping.
const Invalid = -1

// Table is a process-wide byte -> code mapping and its reverse complement.
// Once initialized, a Table is read-only and safe for concurrent use by any
// number of parsers.
type Table struct {
	fwd      [256]int32
	rc       [256]int32
	chars    [256]byte
	bitWidth uint32
}

// Default is the ambient table used by callers that do not construct one of
// their own. It must be initialized (via InitDefault, InitFromMap, or
// InitFromFile) before the first parse.
var Default Table

// BitWidth reports w, the number of bits needed to encode one symbol.
func (t *Table) BitWidth() uint32 { return t.bitWidth }

// Code returns the forward code for b, or Invalid if b has no mapping.
func (t *Table) Code(b byte) int32 { return t.fwd[b] }

// RCCode returns the reverse-complement code for b, or Invalid if b has no
// mapping.
func (t *Table) RCCode(b byte) int32 { return t.rc[b] }

// Char returns the canonical byte for a code, or 0 if code is out of range.
func (t *Table) Char(code int32) byte {
	if code < 0 || int(code) >= len(t.chars) {
		return 0
	}
	return t.chars[code]
}

func resetTable(t *Table) {
	for i := range t.fwd {
		t.fwd[i] = Invalid
		t.rc[i] = Invalid
		t.chars[i] = '~' // 126, matches the original's uninitialized-character marker
	}
}

// InitDefault initializes t with the standard DNA alphabet: A/a=0, C/c=1,
// G/g=2, T/t=3, with reverse-complement A<->T, C<->G, and w=2. It always
// succeeds.
func InitDefault(t *Table, verbose bool) {
	resetTable(t)

	t.fwd['A'], t.fwd['a'] = 0, 0
	t.fwd['C'], t.fwd['c'] = 1, 1
	t.fwd['G'], t.fwd['g'] = 2, 2
	t.fwd['T'], t.fwd['t'] = 3, 3

	t.rc['A'], t.rc['a'] = 3, 3
	t.rc['C'], t.rc['c'] = 2, 2
	t.rc['G'], t.rc['g'] = 1, 1
	t.rc['T'], t.rc['t'] = 0, 0

	t.chars[0] = 'A'
	t.chars[1] = 'C'
	t.chars[2] = 'G'
	t.chars[3] = 'T'

	t.bitWidth = 2

	if verbose {
		summary(t)
	}
}

// InitFromMap initializes t from explicit forward and reverse-complement
// maps. Every value must be non-negative; the bit width is derived from the
// largest code seen in either map.
func InitFromMap(t *Table, fwd, rc map[byte]int32, verbose bool) (err error) {
	defer internal.Recover(&err)
	resetTable(t)

	var max int32
	first := true
	for c, v := range fwd {
		internal.Assert(v >= 0, internal.InvalidArgument, "negative code %d for %q", v, c)
		t.fwd[c] = v
		t.chars[v] = c
		if first || v > max {
			max, first = v, false
		}
	}
	for c, v := range rc {
		internal.Assert(v >= 0, internal.InvalidArgument, "negative reverse-complement code %d for %q", v, c)
		t.rc[c] = v
		t.chars[v] = c
		if first || v > max {
			max, first = v, false
		}
	}

	t.bitWidth = bitWidthFor(max)

	if verbose {
		summary(t)
	}
	return nil
}

// InitFromFile initializes t by reading lines of the form "<char> <fwd>
// <rc>" from the file at path.
func InitFromFile(t *Table, path string, verbose bool) (err error) {
	f, oerr := os.Open(path)
	if oerr != nil {
		return &internal.Error{Kind: internal.IoError, Msg: oerr.Error()}
	}
	defer f.Close()

	fwd := make(map[byte]int32)
	rc := make(map[byte]int32)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 || len(fields[0]) != 1 {
			return &internal.Error{Kind: internal.InvalidArgument, Msg: fmt.Sprintf("malformed encoding line %q", line)}
		}
		fv, ferr := strconv.Atoi(fields[1])
		rv, rerr := strconv.Atoi(fields[2])
		if ferr != nil || rerr != nil {
			return &internal.Error{Kind: internal.InvalidArgument, Msg: fmt.Sprintf("malformed encoding line %q", line)}
		}
		fwd[fields[0][0]] = int32(fv)
		rc[fields[0][0]] = int32(rv)
	}
	if serr := sc.Err(); serr != nil {
		return &internal.Error{Kind: internal.IoError, Msg: serr.Error()}
	}

	return InitFromMap(t, fwd, rc, verbose)
}

func bitWidthFor(max int32) uint32 {
	var w uint32
	for max > 0 {
		w++
		max /= 2
	}
	if w == 0 {
		w = 1
	}
	return w
}

func summary(t *Table) {
	var b strings.Builder
	b.WriteString("# Alphabet encoding summary\n# Coefficients: ")
	for i, v := range t.fwd {
		if v != Invalid {
			fmt.Fprintf(&b, "%c:%d ", byte(i), v)
		}
	}
	fmt.Fprintf(&b, "\n# Alphabet bit size: %d", t.bitWidth)
	log.Print(b.String())
}
