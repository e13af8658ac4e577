// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command falcpt parses FASTA/FASTQ sequences into hierarchical LCP
// cores and writes one lps record per sequence to <infile>.lcpt.
//
//	falcpt <infile> <lcp-level> [sequence-size]
package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	dgostrconv "github.com/dsnet/golib/strconv"

	"github.com/akmami/lcptools/alphabet"
	"github.com/akmami/lcptools/intern"
	"github.com/akmami/lcptools/lps"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("falcpt: ")

	if len(os.Args) < 3 || len(os.Args) > 4 {
		fmt.Fprintln(os.Stderr, "usage: falcpt <infile> <lcp-level> [sequence-size]")
		os.Exit(2)
	}
	inPath := os.Args[1]
	level, err := strconv.Atoi(os.Args[2])
	if err != nil || level < 1 {
		log.Fatalf("invalid lcp-level %q", os.Args[2])
	}

	var maxSize int
	if len(os.Args) == 4 {
		nf, err := dgostrconv.ParsePrefix(os.Args[3], dgostrconv.AutoParse)
		if err != nil {
			log.Fatalf("invalid sequence-size %q: %v", os.Args[3], err)
		}
		maxSize = int(nf)
	}

	if err := run(inPath, int32(level), maxSize); err != nil {
		log.Fatal(err)
	}
}

func run(inPath string, level int32, maxSize int) error {
	ext := strings.ToLower(filepath.Ext(inPath))
	var reader func(f *os.File) ([]sequence, error)
	switch ext {
	case ".fasta", ".fa":
		reader = func(f *os.File) ([]sequence, error) { return readFASTA(f) }
	case ".fastq", ".fq":
		reader = func(f *os.File) ([]sequence, error) { return readFASTQ(f) }
	default:
		return fmt.Errorf("unsupported input suffix %q", ext)
	}

	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	seqs, err := reader(in)
	if err != nil {
		return err
	}

	var tab alphabet.Table
	alphabet.InitDefault(&tab, true)
	cfg := lps.NewConfig(&tab, intern.NewTable(lps.CoreHashTableSize))

	outPath := inPath + ".lcpt"
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	for _, s := range seqs {
		b := s.bases
		if maxSize > 0 && len(b) > maxSize {
			b = b[:maxSize]
		}
		l, err := lps.NewSplitMerge(cfg, b, level, false)
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		if err := l.Write(out, false); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}

	return binary.Write(out, binary.LittleEndian, true)
}
