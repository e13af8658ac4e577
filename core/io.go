// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package core

import (
	"encoding/binary"
	"io"

	"github.com/akmami/lcptools/internal"
)

// Write serializes c to w in the layout described by the spec: an optional
// start/end pair (when stats is true), bit_size, the packed blocks, then
// label.
func (c *Core) Write(w io.Writer, stats bool) (err error) {
	defer internal.Recover(&err)

	if stats {
		mustWrite(w, uint64(c.Start))
		mustWrite(w, uint64(c.End))
	}
	mustWrite(w, c.BitSize)
	for _, blk := range c.Rep {
		mustWrite(w, blk)
	}
	mustWrite(w, c.Label)
	return nil
}

func mustWrite(w io.Writer, v interface{}) {
	if err := binary.Write(w, binary.LittleEndian, v); err != nil {
		internal.Raise(internal.IoError, "short write: %v", err)
	}
}

// Read deserializes one Core from r in the layout Write produces.
func Read(r io.Reader, stats bool) (c Core, err error) {
	defer internal.Recover(&err)

	if stats {
		var start, end uint64
		mustRead(r, &start)
		mustRead(r, &end)
		c.Start, c.End = int64(start), int64(end)
	}
	mustRead(r, &c.BitSize)
	internal.Assert(c.BitSize >= 2, internal.IoError, "bit_size %d below minimum of 2", c.BitSize)

	n := numBlocks(c.BitSize)
	c.Rep = make([]uint32, n)
	for i := range c.Rep {
		mustRead(r, &c.Rep[i])
	}
	mustRead(r, &c.Label)
	return c, nil
}

func mustRead(r io.Reader, v interface{}) {
	if err := binary.Read(r, binary.LittleEndian, v); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		internal.Raise(internal.IoError, "short read: %v", err)
	}
}
