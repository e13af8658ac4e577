// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lps

import (
	"encoding/binary"
	"io"

	"github.com/akmami/lcptools/core"
	"github.com/akmami/lcptools/internal"
)

// Write serializes l to w: Level, the core count, then each core in
// order via core.Write. stats controls whether per-core start/end
// offsets are included, matching core.Write's own stats flag.
func (l *LPS) Write(w io.Writer, stats bool) (err error) {
	defer internal.Recover(&err)

	mustWrite(w, l.Level)
	mustWrite(w, uint64(len(l.Cores)))
	for i := range l.Cores {
		if werr := l.Cores[i].Write(w, stats); werr != nil {
			internal.Raise(internal.IoError, "core %d: %v", i, werr)
		}
	}
	return nil
}

func mustWrite(w io.Writer, v interface{}) {
	if err := binary.Write(w, binary.LittleEndian, v); err != nil {
		internal.Raise(internal.IoError, "short write: %v", err)
	}
}

// Read deserializes one LPS from r in the layout Write produces.
func Read(r io.Reader, stats bool) (l *LPS, err error) {
	defer internal.Recover(&err)

	l = &LPS{}
	mustRead(r, &l.Level)

	var size uint64
	mustRead(r, &size)

	l.Cores = make([]core.Core, size)
	for i := range l.Cores {
		c, rerr := core.Read(r, stats)
		if rerr != nil {
			internal.Raise(internal.IoError, "core %d: %v", i, rerr)
		}
		l.Cores[i] = c
	}
	return l, nil
}

func mustRead(r io.Reader, v interface{}) {
	if err := binary.Read(r, binary.LittleEndian, v); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		internal.Raise(internal.IoError, "short read: %v", err)
	}
}
