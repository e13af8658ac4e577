// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lps

import "github.com/akmami/lcptools/parser"

// Deepen compresses the current cores against their left neighbors
// (DCT) and re-parses the compressed sequence to produce the next
// level. It reports false, with Cores emptied and Level still
// incremented, when there are too few cores left to compress — a
// terminal state in which each further Deepen call again reports false
// and only increments Level.
func (l *LPS) Deepen(cfg Config) (bool, error) {
	if len(l.Cores) < DCTIterationCount+2 {
		l.Cores = nil
		l.Level++
		return false, nil
	}

	for d := 0; d < DCTIterationCount; d++ {
		for i := len(l.Cores) - 1; i > d; i-- {
			l.Cores[i].Compress(&l.Cores[i-1])
		}
	}

	src := &parser.CoreSource{Atoms: l.Cores}
	next, err := parser.Parse(src, DCTIterationCount, cfg.Interner)
	if err != nil {
		return false, err
	}
	l.Cores = next
	l.Level++
	return true, nil
}

// DeepenTo repeatedly deepens l until it reaches target or hits the
// terminal state, whichever comes first.
func (l *LPS) DeepenTo(cfg Config, target int32) error {
	for l.Level < target {
		ok, err := l.Deepen(cfg)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}
