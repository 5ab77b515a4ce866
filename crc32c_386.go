// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

//go:build 386

package lzhash

// No assembly for 386; the table-driven form produces identical buckets.
// It is slower than Standard, so crc32cHardware keeps it out of auto selection.
const (
	crc32cSupported = true
	crc32cHardware  = false
)

func crc32cWord(h, word uint32) uint32 {
	return crc32cWordGeneric(h, word)
}
