// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

//go:build !386 && !amd64 && !arm64

package lzhash

const (
	crc32cSupported = false
	crc32cHardware  = false
)

func crc32cWord(_, _ uint32) uint32 {
	panic("lzhash: no hardware CRC32C on this platform")
}
