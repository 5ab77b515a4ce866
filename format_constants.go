// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

package lzhash

// DEFLATE match bounds.
const (
	MinMatch = 3   // shortest match the match finder will emit
	MaxMatch = 258 // longest match the match finder will emit

	// minLookahead is the lookahead kept in the window while input remains,
	// so a full-length match plus the next hash read never runs off the end.
	minLookahead = MaxMatch + MinMatch + 1
)

// Hash table geometry per variant.
const (
	stdHashBits = 15
	stdHashSize = 1 << stdHashBits
	stdHashMask = stdHashSize - 1

	crcHashBits = 16
	crcHashSize = 1 << crcHashBits
	crcHashMask = crcHashSize - 1
)

// Hash function parameters.
const (
	standardHashMul   = 2654435761 // Knuth multiplicative constant (2^32 / phi)
	standardHashSlide = 16
	rollHashSlide     = 5
	rollHashOffset    = MinMatch - 1
)

// Window size bounds, as log2 of the window size.
const (
	MinWindowBits     = 9
	MaxWindowBits     = 15
	DefaultWindowBits = MaxWindowBits
)
