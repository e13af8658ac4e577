// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// sequence is one named record read from a FASTA or FASTQ file.
type sequence struct {
	name  string
	bases []byte
}

// readFASTA reads '>'-delimited records, concatenating wrapped sequence
// lines into one byte slice per record.
func readFASTA(r io.Reader) ([]sequence, error) {
	var out []sequence
	var cur *sequence

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, ">") {
			out = append(out, sequence{name: strings.TrimSpace(line[1:])})
			cur = &out[len(out)-1]
			continue
		}
		if cur == nil {
			continue // leading blank/garbage lines before the first header
		}
		cur.bases = append(cur.bases, []byte(strings.TrimSpace(line))...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("falcpt: reading fasta: %w", err)
	}
	return out, nil
}

// readFASTQ reads 4-line records (header, sequence, separator, quality),
// discarding the separator and quality lines.
func readFASTQ(r io.Reader) ([]sequence, error) {
	var out []sequence

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)
	for {
		if !sc.Scan() {
			break
		}
		header := sc.Text()
		if !strings.HasPrefix(header, "@") {
			return nil, fmt.Errorf("falcpt: fastq: expected '@' header, got %q", header)
		}
		if !sc.Scan() {
			return nil, fmt.Errorf("falcpt: fastq: truncated record after header %q", header)
		}
		seq := sc.Text()
		if !sc.Scan() || !sc.Scan() {
			return nil, fmt.Errorf("falcpt: fastq: truncated record after header %q", header)
		}
		out = append(out, sequence{name: strings.TrimSpace(header[1:]), bases: []byte(seq)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("falcpt: reading fastq: %w", err)
	}
	return out, nil
}
