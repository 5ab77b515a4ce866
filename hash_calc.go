// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

package lzhash

import (
	"fmt"
	"strings"
)

// Variant selects the hash function used for a whole compression job.
// The zero value is not a strategy; inside Options it means "pick from the level".
type Variant uint8

const (
	// Standard is the portable multiplicative hash of a 4-byte word.
	Standard Variant = iota + 1
	// Roll is the incremental rolling hash over MinMatch bytes.
	Roll
	// CRC32 is the hardware CRC32C hash of a 4-byte word.
	CRC32
)

// HashCalc is the contract shared by the three hash strategies.
type HashCalc interface {
	// Variant reports which strategy this is.
	Variant() Variant
	// Offset is how many bytes into the match candidate the hashed input starts.
	Offset() int
	// Mask is the bucket mask, table size minus one.
	Mask() uint32
	// Combine folds val into the running hash h.
	Combine(h, val uint32) uint32
	// Update is Combine masked into [0, table size).
	Update(h, val uint32) uint32
}

var (
	_ HashCalc = StandardHashCalc{}
	_ HashCalc = RollHashCalc{}
	_ HashCalc = CRC32HashCalc{}
)

// StandardHashCalc hashes a native-endian 4-byte word with a multiply and shift.
// It ignores the running hash.
type StandardHashCalc struct{}

func (StandardHashCalc) Variant() Variant { return Standard }
func (StandardHashCalc) Offset() int      { return 0 }
func (StandardHashCalc) Mask() uint32     { return stdHashMask }

func (StandardHashCalc) Combine(_, val uint32) uint32 {
	return (val * standardHashMul) >> standardHashSlide
}

func (c StandardHashCalc) Update(h, val uint32) uint32 {
	return c.Combine(h, val) & stdHashMask
}

// RollHashCalc folds one byte at a time into the running hash. With a 15-bit mask
// and a 5-bit shift the register covers exactly the last MinMatch bytes, so it reads
// the byte at MinMatch-1 and relies on the caller to carry the register in stream order.
type RollHashCalc struct{}

func (RollHashCalc) Variant() Variant { return Roll }
func (RollHashCalc) Offset() int      { return rollHashOffset }
func (RollHashCalc) Mask() uint32     { return stdHashMask }

func (RollHashCalc) Combine(h, val uint32) uint32 {
	return (h << rollHashSlide) ^ val
}

func (c RollHashCalc) Update(h, val uint32) uint32 {
	return c.Combine(h, val) & stdHashMask
}

// CRC32HashCalc runs one CRC32C instruction over a native-endian 4-byte word.
// Insertion always passes h = 0. Combine panics when Supported reports false.
type CRC32HashCalc struct{}

func (CRC32HashCalc) Variant() Variant { return CRC32 }
func (CRC32HashCalc) Offset() int      { return 0 }
func (CRC32HashCalc) Mask() uint32     { return crcHashMask }

// Supported reports whether this CPU can run the CRC32 variant.
func (CRC32HashCalc) Supported() bool { return crc32cSupported }

func (CRC32HashCalc) Combine(h, val uint32) uint32 {
	if !crc32cSupported {
		panic("lzhash: CRC32 hash calc used on a CPU without CRC32C support")
	}

	return crc32cWord(h, val)
}

func (c CRC32HashCalc) Update(h, val uint32) uint32 {
	return c.Combine(h, val) & crcHashMask
}

// HashCalc returns the strategy value for v, or nil for an unknown variant.
func (v Variant) HashCalc() HashCalc {
	switch v {
	case Standard:
		return StandardHashCalc{}
	case Roll:
		return RollHashCalc{}
	case CRC32:
		return CRC32HashCalc{}
	}

	return nil
}

// Offset is the byte offset of the hashed input relative to the inserted position.
func (v Variant) Offset() int {
	if v == Roll {
		return rollHashOffset
	}

	return 0
}

// Mask is the bucket mask of the variant.
func (v Variant) Mask() uint32 {
	return uint32(v.TableSize() - 1) //nolint:gosec // G115: table sizes are at most 1<<16
}

// TableSize is the number of head buckets the variant addresses.
func (v Variant) TableSize() int {
	if v == CRC32 {
		return crcHashSize
	}

	return stdHashSize
}

// Lookahead is the number of window bytes that must be available at a position
// before it can be inserted: the hashed word or byte past Offset.
func (v Variant) Lookahead() int {
	if v == Roll {
		return rollHashOffset + 1
	}

	return 4
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case 0:
		return "auto"
	case Standard:
		return "standard"
	case Roll:
		return "roll"
	case CRC32:
		return "crc32"
	}

	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// ParseVariant is the inverse of Variant.String. "auto" and "" give the zero Variant.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return 0, nil
	case "standard", "std":
		return Standard, nil
	case "roll", "rolling":
		return Roll, nil
	case "crc32", "crc32c", "crc":
		return CRC32, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidHashCalc, name)
}
