// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

/*
Package lzhash implements the hash-chain table of a DEFLATE (LZ77) match finder:
the hash functions that turn the next bytes of input into a bucket, and the
insertion of window positions into per-bucket chains.

Three hash variants share one contract (HashCalc):

  - Standard: multiplicative hash of a 4-byte word, portable.
  - Roll: incremental hash folding one byte per position; the State carries the
    register, so positions must be inserted strictly in order.
  - CRC32: one CRC32C instruction over a 4-byte word. Check CRC32Supported first.

The tables follow the classic zlib layout: head[bucket] holds the newest position
and prev[pos&mask] links each position to the previous one in its bucket. The value
0 means "empty"; a real position 0 is therefore never reported as a candidate.

# Insert

A State owns the window, both tables and the rolling register for one job:

	s, err := lzhash.NewState(&lzhash.Options{Level: 6})
	s.Window().Fill(data)
	head := s.QuickInsertString(pos) // previous head: where a match search starts
	for cand := range s.Chain(head, s.MaxChain()) {
		// compare window bytes at cand and pos
	}
	s.InsertString(pos+1, matchLen-1) // index the bytes a match skipped over

Insertion does not check bounds beyond Go's own: Variant().Lookahead() bytes must
be valid at every inserted position.

# Profile

Profile runs a greedy parse over a whole input and reports hits and collisions per
bucket, which is how the variants are compared:

	report, err := lzhash.Profile(data, &lzhash.Options{HashCalc: lzhash.Roll})
*/
package lzhash
