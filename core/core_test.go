// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package core

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewFromCodes(t *testing.T) {
	var vectors = []struct {
		desc  string
		codes []int32
		w     uint32
		want  uint32 // expected packed value
		size  uint32
	}{
		{"single A", []int32{0}, 2, 0b00, 2},
		{"ACGT", []int32{0, 1, 2, 3}, 2, 0b00011011, 8},
		{"GGG", []int32{2, 2, 2}, 2, 0b101010, 6},
	}
	for _, v := range vectors {
		t.Run(v.desc, func(t *testing.T) {
			c, err := NewFromCodes(v.codes, v.w, 0, 0, int64(len(v.codes)))
			if err != nil {
				t.Fatalf("NewFromCodes: %v", err)
			}
			if c.BitSize != v.size {
				t.Fatalf("BitSize = %d, want %d", c.BitSize, v.size)
			}
			if len(c.Rep) != 1 {
				t.Fatalf("len(Rep) = %d, want 1", len(c.Rep))
			}
			if c.Rep[0] != v.want {
				t.Fatalf("Rep[0] = %#b, want %#b", c.Rep[0], v.want)
			}
		})
	}
}

func TestCompress(t *testing.T) {
	// S3: a={bit_size=3, value=0b101}, b={bit_size=3, value=0b111}.
	a := Core{BitSize: 3, Rep: []uint32{0b101}}
	b := Core{BitSize: 3, Rep: []uint32{0b111}}
	a.Compress(&b)
	if a.BitSize != 2 {
		t.Fatalf("BitSize = %d, want 2", a.BitSize)
	}
	if a.Rep[0] != 2 {
		t.Fatalf("Rep[0] = %d, want 2", a.Rep[0])
	}
}

func TestCompareOrdering(t *testing.T) {
	// S4: a={bit_size=4, value=0b1010}, b={bit_size=3, value=0b101}.
	a := Core{BitSize: 4, Rep: []uint32{0b1010}}
	b := Core{BitSize: 3, Rep: []uint32{0b101}}
	if !Greater(&a, &b) {
		t.Fatal("want a > b")
	}
	if Equal(&a, &b) {
		t.Fatal("want a != b")
	}
	if !Equal(&a, &a) {
		t.Fatal("want a >= a (via Equal)")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	for _, stats := range []bool{false, true} {
		c := Core{BitSize: 12, Rep: []uint32{0b101010101010}, Label: 0xdeadbeef, Start: 10, End: 22}
		buf := new(bytes.Buffer)
		if err := c.Write(buf, stats); err != nil {
			t.Fatalf("Write: %v", err)
		}
		got, err := Read(buf, stats)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		want := c
		if !stats {
			want.Start, want.End = 0, 0
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("round trip mismatch (stats=%v) (-want +got):\n%s", stats, diff)
		}
	}
}

// FuzzCompress checks that Compress never panics and always leaves a
// valid core behind, regardless of the two input bit_sizes and values.
func FuzzCompress(f *testing.F) {
	f.Add(uint32(3), uint32(5), uint32(3), uint32(7))
	f.Add(uint32(4), uint32(10), uint32(3), uint32(5))
	f.Add(uint32(2), uint32(0), uint32(2), uint32(0))

	f.Fuzz(func(t *testing.T, aSize, aVal, bSize, bVal uint32) {
		aSize = 2 + aSize%30
		bSize = 2 + bSize%30
		a := Core{BitSize: aSize, Rep: []uint32{aVal & (1<<aSize - 1)}}
		b := Core{BitSize: bSize, Rep: []uint32{bVal & (1<<bSize - 1)}}

		a.Compress(&b)

		if a.BitSize < 2 {
			t.Fatalf("bit_size %d < 2", a.BitSize)
		}
		wantBlocks := numBlocks(a.BitSize)
		if len(a.Rep) != wantBlocks {
			t.Fatalf("len(Rep) = %d, want %d", len(a.Rep), wantBlocks)
		}
	})
}

// FuzzWriteRead checks that every core built by NewFromCodes survives a
// Write/Read round trip unchanged.
func FuzzWriteRead(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3}, uint32(2), uint32(99))
	f.Add([]byte{0}, uint32(1), uint32(0))

	f.Fuzz(func(t *testing.T, codes []byte, w, label uint32) {
		if len(codes) == 0 || len(codes) > 64 {
			t.Skip()
		}
		w = 1 + w%4
		ints := make([]int32, len(codes))
		for i, c := range codes {
			ints[i] = int32(c) & (1<<w - 1)
		}
		c, err := NewFromCodes(ints, w, label, 0, int64(len(codes)))
		if err != nil {
			t.Fatalf("NewFromCodes: %v", err)
		}

		buf := new(bytes.Buffer)
		if err := c.Write(buf, true); err != nil {
			t.Fatalf("Write: %v", err)
		}
		got, err := Read(buf, true)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if diff := cmp.Diff(c, got); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestGetBit(t *testing.T) {
	c := Core{BitSize: 6, Rep: []uint32{0b100001}}
	want := []bool{true, false, false, false, false, true}
	for i, w := range want {
		if got := c.Get(uint32(i)); got != w {
			t.Fatalf("Get(%d) = %v, want %v", i, got, w)
		}
	}
}
