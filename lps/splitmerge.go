// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lps

import "github.com/akmami/lcptools/core"

// overlapMatch is the number of trailing cores that must agree between
// the accumulator and a candidate splice point in the tail.
const overlapMatch = 4

// overlapSearchLimit bounds how far into the tail a splice point is
// searched for; a pathological input can place the true overlap beyond
// this and fall back to a concatenation seam (documented limitation).
const overlapSearchLimit = 50

// NewSplitMerge parses seq in overlapping windows of cfg.Window bytes
// (margin cfg.Overlap), deepens each window to targetLevel, and splices
// the windows together by matching trailing cores against the next
// window's leading cores. It is equivalent to a single-pass parse and
// Deepen to targetLevel whenever a splice point is found within the
// first overlapSearchLimit cores of each tail.
func NewSplitMerge(cfg Config, seq []byte, targetLevel int32, revComp bool) (*LPS, error) {
	n := int64(len(seq))
	w, m := cfg.Window, cfg.Overlap
	if w <= 0 {
		w = MaxStrLength
	}
	if m < 0 {
		m = 0
	}

	if n <= w {
		l, err := newRange(cfg, seq, 0, revComp)
		if err != nil {
			return nil, err
		}
		if err := l.DeepenTo(cfg, targetLevel); err != nil {
			return nil, err
		}
		return l, nil
	}

	acc, err := newRange(cfg, seq[0:min(w, n)], 0, revComp)
	if err != nil {
		return nil, err
	}
	if err := acc.DeepenTo(cfg, targetLevel); err != nil {
		return nil, err
	}

	for i := int64(1); i*w < n; i++ {
		left := i*w - m
		right := min(i*w+w, n)

		tail, err := newRange(cfg, seq[left:right], left, revComp)
		if err != nil {
			return nil, err
		}
		if err := tail.DeepenTo(cfg, targetLevel); err != nil {
			return nil, err
		}

		j := findOverlap(acc.Cores, tail.Cores)
		acc.Cores = append(acc.Cores, tail.Cores[j:]...)
	}
	return acc, nil
}

// findOverlap returns the index into tail at which the tail's own
// content resumes after the part already covered by acc, per the
// spec's fixed-k suffix/prefix match. It returns 0 (no overlap found)
// when acc is too short or no candidate index matches.
func findOverlap(acc, tail []core.Core) int {
	if len(acc) < overlapMatch {
		return 0
	}
	limit := len(tail)
	if limit > overlapSearchLimit {
		limit = overlapSearchLimit
	}
	for j := overlapMatch; j <= limit; j++ {
		matched := true
		for x := 0; x < overlapMatch; x++ {
			a := &acc[len(acc)-1-x]
			b := &tail[j-1-x]
			if !core.Equal(a, b) {
				matched = false
				break
			}
		}
		if matched {
			return j
		}
	}
	return 0
}
