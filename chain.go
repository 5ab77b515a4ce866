// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

package lzhash

import "iter"

// Chain enumerates a bucket's chain newest first, starting at head (as returned by
// QuickInsertString). It stops at the 0 sentinel, after limit entries (limit <= 0
// means no limit), or at the first link that does not point further back.
// It only follows links; comparing bytes is up to the match finder.
func (s *State) Chain(head uint16, limit int) iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		pos := head
		for n := 0; pos != 0 && (limit <= 0 || n < limit); n++ {
			if !yield(pos) {
				return
			}

			next := s.prev[int(pos)&s.wMask]
			if next >= pos {
				return
			}
			pos = next
		}
	}
}

// ChainLen returns the number of entries Chain(head, limit) yields.
func (s *State) ChainLen(head uint16, limit int) int {
	n := 0
	for range s.Chain(head, limit) {
		n++
	}

	return n
}
