// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

//go:build arm64

package lzhash

import "golang.org/x/sys/cpu"

var crc32cSupported = cpu.ARM64.HasCRC32

const crc32cHardware = true

// crc32cWord runs CRC32CW over word with h as the running value.
func crc32cWord(h, word uint32) uint32
