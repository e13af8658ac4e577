// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package parser implements the pattern scanner shared by every LCP
// level: given a range of atoms (bytes at level 1, cores at level >1)
// and a total order on them, it emits the next level's core sequence
// using the RINT, LMIN, LMAX, and SSEQ local patterns.
package parser

import (
	"github.com/akmami/lcptools/core"
)

// Interner assigns a 32-bit label to an emitted core's content. It is
// satisfied by both interning modes in package intern.
type Interner interface {
	LabelBytes(b []byte) uint32
	LabelTuple(labels []uint32) uint32
}

// Source is one level's atom range together with the comparator triple
// the pattern rules need and the machinery to turn a matched span into
// a built, labeled Core.
type Source interface {
	// Len reports the number of atoms in the range.
	Len() int
	// Eq, Gt, Lt compare atoms i and j. All three report false whenever
	// either atom is invalid, so an invalid atom can never participate
	// in a pattern — it simply causes the scanner to move past it.
	Eq(i, j int) bool
	Gt(i, j int) bool
	Lt(i, j int) bool
	// Label computes the interning key for the half-open atom span
	// [lo, hi) and returns its assigned label.
	Label(in Interner, lo, hi int) (uint32, error)
	// Build packs the half-open atom span [lo, hi) into a new Core
	// carrying the given label.
	Build(lo, hi int, label uint32) (core.Core, error)
}

// Parse scans src starting at extensionSize (atoms before that index
// are readable as right-neighbors of the first real origin but are
// never themselves the origin of an emitted core) and returns the
// ordered core sequence for the next level.
func Parse(src Source, extensionSize int, in Interner) ([]core.Core, error) {
	n := src.Len()
	var cores []core.Core
	prevEnd := n // sentinel: "no core emitted yet"

	emit := func(lo, hi int) error {
		label, err := src.Label(in, lo, hi)
		if err != nil {
			return err
		}
		c, err := src.Build(lo, hi, label)
		if err != nil {
			return err
		}
		cores = append(cores, c)
		return nil
	}

	for it1 := extensionSize; it1+2 < n; it1++ {
		if src.Eq(it1, it1+1) {
			continue
		}

		if m := countMiddle(src, it1, n); m > 1 {
			if prevEnd < it1 {
				if err := emit(prevEnd-1, it1+1); err != nil {
					return nil, err
				}
			}
			prevEnd = it1 + 2 + m
			if err := emit(it1, prevEnd); err != nil {
				return nil, err
			}
			continue
		}

		if isLMIN(src, it1) {
			if prevEnd < it1 {
				if err := emit(prevEnd-1, it1+1); err != nil {
					return nil, err
				}
			}
			prevEnd = it1 + 3
			if err := emit(it1, prevEnd); err != nil {
				return nil, err
			}
			continue
		}

		if it1 == 0 {
			continue
		}

		if isLMAX(src, it1, n) {
			if prevEnd < it1 {
				if err := emit(prevEnd-1, it1+1); err != nil {
					return nil, err
				}
			}
			prevEnd = it1 + 3
			if err := emit(it1, prevEnd); err != nil {
				return nil, err
			}
			continue
		}
	}
	return cores, nil
}

// countMiddle returns the largest m >= 1 such that the run of atoms
// equal to src[it1+1] extends to it1+1+m, provided that run is itself
// followed by a distinct atom before n; otherwise it returns 0 (an
// unterminated tail, which never produces a core).
func countMiddle(src Source, it1, n int) int {
	count := 1
	temp := it1 + 2
	for temp < n && src.Eq(temp-1, temp) {
		temp++
		count++
	}
	if temp == n {
		return 0
	}
	return count
}

// isLMIN reports whether src[it1] is a local minimum: a > b < c.
func isLMIN(src Source, it1 int) bool {
	return src.Gt(it1, it1+1) && src.Lt(it1+1, it1+2)
}

// isLMAX reports whether src[it1] is a local maximum eligible to start
// a core: a < b > c, with a's left neighbor not exceeding a and c not
// below its right neighbor, and a fourth atom available to check it.
func isLMAX(src Source, it1, n int) bool {
	return it1+3 < n &&
		src.Lt(it1, it1+1) &&
		src.Gt(it1+1, it1+2) &&
		!src.Gt(it1-1, it1) &&
		!src.Lt(it1+2, it1+3)
}
