// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

package lzhash

import "encoding/binary"

// QuickInsertString inserts window position pos into its bucket and returns the
// head the bucket had before, which is where a match search should start.
// 0 means the chain was empty (position 0 is never reported as a candidate).
//
// Variant().Lookahead() bytes must be valid at pos; this is not checked.
// For Roll the register must hold the hash of the two bytes at pos.
func (s *State) QuickInsertString(pos int) uint16 {
	window := s.window.Filled()

	var bucket uint32
	switch s.variant {
	case Roll:
		s.insH = RollHashCalc{}.Update(s.insH, uint32(window[pos+rollHashOffset]))
		bucket = s.insH
	case CRC32:
		bucket = crc32cWord(0, loadWord(window, pos)) & crcHashMask
	default:
		bucket = StandardHashCalc{}.Update(0, loadWord(window, pos))
	}

	return s.link(bucket, pos)
}

// InsertString inserts count consecutive positions starting at pos, with the same
// result as calling QuickInsertString for each of them in order. It is used to
// keep the tables populated across the bytes covered by an accepted match.
//
// Standard and CRC32 need count+3 valid bytes at pos, Roll needs count bytes at
// pos+MinMatch-1.
func (s *State) InsertString(pos, count int) {
	if count <= 0 {
		return
	}

	window := s.window.Filled()

	switch s.variant {
	case Roll:
		var c RollHashCalc
		h := s.insH
		for i, b := range window[pos+rollHashOffset:][:count] {
			h = c.Update(h, uint32(b))
			s.link(h, pos+i)
		}
		s.insH = h

	case CRC32:
		// One slice for the whole run; each step reads the next overlapping word.
		src := window[pos:][:count+3]
		for i := range count {
			s.link(crc32cWord(0, binary.NativeEndian.Uint32(src[i:]))&crcHashMask, pos+i)
		}

	default:
		var c StandardHashCalc
		src := window[pos:][:count+3]
		for i := range count {
			s.link(c.Update(0, binary.NativeEndian.Uint32(src[i:])), pos+i)
		}
	}
}

// link makes pos the head of bucket and threads the previous head behind it.
// Re-inserting the current head is a no-op so a chain never points at itself.
func (s *State) link(bucket uint32, pos int) uint16 {
	idx := uint16(pos) //nolint:gosec // G115: window positions are below 1<<16
	head := s.head[bucket]
	if head != idx {
		s.prev[pos&s.wMask] = head
		s.head[bucket] = idx
	}

	return head
}

// loadWord reads the native-endian 32-bit word at pos.
func loadWord(window []byte, pos int) uint32 {
	return binary.NativeEndian.Uint32(window[pos:])
}
