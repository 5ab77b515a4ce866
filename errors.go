// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

package lzhash

import "errors"

// Sentinel errors returned while building hashing state.
// Insertion itself never fails; violated preconditions there are programming errors.
var (
	// ErrInvalidWindowBits is returned when WindowBits is outside 9..15 (8 is promoted to 9, 0 means default).
	ErrInvalidWindowBits = errors.New("invalid window bits")
	// ErrInvalidHashCalc is returned when Options.HashCalc is not one of Standard, Roll or CRC32.
	ErrInvalidHashCalc = errors.New("invalid hash calc variant")
	// ErrUnsupportedHashCalc is returned when the CRC32 variant is requested on a CPU without CRC32C support.
	ErrUnsupportedHashCalc = errors.New("hash calc variant not supported on this CPU")
)
