// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package alphabet

import "testing"

// TestInitDefault is scenario S1.
func TestInitDefault(t *testing.T) {
	var tab Table
	InitDefault(&tab, false)

	fwd := map[byte]int32{'A': 0, 'C': 1, 'G': 2, 'T': 3}
	rc := map[byte]int32{'A': 3, 'C': 2, 'G': 1, 'T': 0}
	for c, want := range fwd {
		if got := tab.Code(c); got != want {
			t.Errorf("Code(%q) = %d, want %d", c, got, want)
		}
	}
	for c, want := range rc {
		if got := tab.RCCode(c); got != want {
			t.Errorf("RCCode(%q) = %d, want %d", c, got, want)
		}
	}
	if tab.BitWidth() != 2 {
		t.Errorf("BitWidth() = %d, want 2", tab.BitWidth())
	}
	if tab.Code('N') != Invalid {
		t.Errorf("Code('N') = %d, want Invalid", tab.Code('N'))
	}
}

func TestInitFromMap(t *testing.T) {
	var tab Table
	fwd := map[byte]int32{'0': 0, '1': 1, '2': 2, '3': 3, '4': 4}
	rc := map[byte]int32{'0': 4, '1': 3, '2': 2, '3': 1, '4': 0}
	if err := InitFromMap(&tab, fwd, rc, false); err != nil {
		t.Fatalf("InitFromMap: %v", err)
	}
	if tab.BitWidth() != 3 { // ceil(log2(5)) = 3
		t.Errorf("BitWidth() = %d, want 3", tab.BitWidth())
	}
	if tab.Char(4) != '4' && tab.Char(4) != '0' {
		t.Errorf("Char(4) = %q, want '0' or '4'", tab.Char(4))
	}
}

func TestInitFromMapRejectsNegative(t *testing.T) {
	var tab Table
	err := InitFromMap(&tab, map[byte]int32{'A': -1}, nil, false)
	if err == nil {
		t.Fatal("want error for negative code")
	}
}
