// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

//go:build amd64

package lzhash

import "golang.org/x/sys/cpu"

// CRC32 is part of SSE4.2, which GOAMD64=v1 does not guarantee.
var crc32cSupported = cpu.X86.HasSSE42

const crc32cHardware = true

// crc32cWord runs CRC32L over word with h as the running value.
func crc32cWord(h, word uint32) uint32
