// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package parser

import (
	"github.com/akmami/lcptools/core"
)

// CoreSource is a level->1 Source: its atoms are already-built cores
// from the previous level, compared by the total order of package core.
type CoreSource struct {
	Atoms []core.Core
}

func (s *CoreSource) Len() int { return len(s.Atoms) }

func (s *CoreSource) Eq(i, j int) bool { return core.Equal(&s.Atoms[i], &s.Atoms[j]) }
func (s *CoreSource) Gt(i, j int) bool { return core.Greater(&s.Atoms[i], &s.Atoms[j]) }
func (s *CoreSource) Lt(i, j int) bool { return core.Less(&s.Atoms[i], &s.Atoms[j]) }

func (s *CoreSource) Label(in Interner, lo, hi int) (uint32, error) {
	labels := make([]uint32, hi-lo)
	for k := range labels {
		labels[k] = s.Atoms[lo+k].Label
	}
	return in.LabelTuple(labels), nil
}

func (s *CoreSource) Build(lo, hi int, label uint32) (core.Core, error) {
	return core.NewFromCores(s.Atoms[lo:hi], label, s.Atoms[lo].Start, s.Atoms[hi-1].End)
}
