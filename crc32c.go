// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

package lzhash

import (
	"encoding/binary"
	"hash/crc32"
)

// castagnoliTable backs the portable CRC32C word hash.
var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32Supported reports whether the CRC32 variant can run on this CPU.
// Callers must check it before selecting CRC32 explicitly.
//
// On amd64 this is a runtime check for SSE4.2 rather than a constant true:
// GOAMD64=v1 builds may run on CPUs without the CRC32 instruction.
// On 386 it is always true, but the hash runs on a table-driven CRC32C,
// so automatic selection (VariantForMaxChain) prefers Standard there.
func CRC32Supported() bool {
	return crc32cSupported
}

// crc32cWordGeneric matches the CRC32C instruction on one 32-bit word:
// bytes fed least significant first, no pre or post inversion.
func crc32cWordGeneric(h, word uint32) uint32 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], word)
	return ^crc32.Update(^h, castagnoliTable, b[:])
}
