// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"strings"
	"testing"
)

func TestReadFASTA(t *testing.T) {
	const data = ">seq1 description\nACGT\nACG\n>seq2\nTTTT\n"
	seqs, err := readFASTA(strings.NewReader(data))
	if err != nil {
		t.Fatalf("readFASTA: %v", err)
	}
	if len(seqs) != 2 {
		t.Fatalf("got %d sequences, want 2", len(seqs))
	}
	if seqs[0].name != "seq1 description" || string(seqs[0].bases) != "ACGTACG" {
		t.Fatalf("seq1 = %+v", seqs[0])
	}
	if seqs[1].name != "seq2" || string(seqs[1].bases) != "TTTT" {
		t.Fatalf("seq2 = %+v", seqs[1])
	}
}

func TestReadFASTQ(t *testing.T) {
	const data = "@read1\nACGT\n+\nIIII\n@read2\nTTAA\n+read2\nIIII\n"
	seqs, err := readFASTQ(strings.NewReader(data))
	if err != nil {
		t.Fatalf("readFASTQ: %v", err)
	}
	if len(seqs) != 2 {
		t.Fatalf("got %d sequences, want 2", len(seqs))
	}
	if seqs[0].name != "read1" || string(seqs[0].bases) != "ACGT" {
		t.Fatalf("read1 = %+v", seqs[0])
	}
	if seqs[1].name != "read2" || string(seqs[1].bases) != "TTAA" {
		t.Fatalf("read2 = %+v", seqs[1])
	}
}

func TestReadFASTQTruncated(t *testing.T) {
	const data = "@read1\nACGT\n"
	if _, err := readFASTQ(strings.NewReader(data)); err == nil {
		t.Fatal("want error on truncated fastq record")
	}
}
