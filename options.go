// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

package lzhash

import (
	"fmt"

	"go.uber.org/zap"
)

// Options configures a hashing State.
type Options struct {
	// Level is the DEFLATE compression level (0–9, DefaultLevel = 6). Out-of-range values are clamped.
	// It selects the chain walk depth and, when HashCalc is zero, the hash variant.
	Level int
	// WindowBits is log2 of the window size (9–15; 8 is promoted to 9; 0 = DefaultWindowBits).
	WindowBits int
	// HashCalc forces a hash variant. Zero picks one from Level via VariantForLevel.
	HashCalc Variant
	// Logger receives debug events from setup and profiling; nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns options for level 6 with a 32 KiB window and automatic hash selection.
func DefaultOptions() *Options {
	return &Options{Level: DefaultLevel, WindowBits: DefaultWindowBits}
}

// config is the validated form of Options.
type config struct {
	level      int
	windowBits int
	variant    Variant
	params     compressLevelParams
	logger     *zap.Logger
}

// config validates o and resolves defaults. A nil receiver means DefaultOptions.
func (o *Options) config() (config, error) {
	if o == nil {
		o = DefaultOptions()
	}

	level := clampLevel(o.Level)
	bits, err := normalizeWindowBits(o.WindowBits)
	if err != nil {
		return config{}, err
	}

	params := fixedLevels[level]
	variant := o.HashCalc
	switch variant {
	case 0:
		variant = VariantForMaxChain(params.maxChain)
	case Standard, Roll:
	case CRC32:
		if !CRC32Supported() {
			return config{}, ErrUnsupportedHashCalc
		}
	default:
		return config{}, fmt.Errorf("%w: %d", ErrInvalidHashCalc, uint8(variant))
	}

	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return config{
		level:      level,
		windowBits: bits,
		variant:    variant,
		params:     params,
		logger:     logger,
	}, nil
}

// normalizeWindowBits applies the zlib window-bits conventions.
func normalizeWindowBits(bits int) (int, error) {
	switch {
	case bits == 0:
		return DefaultWindowBits, nil
	case bits == 8:
		// A 256-byte window cannot hold minLookahead.
		return MinWindowBits, nil
	case bits < MinWindowBits || bits > MaxWindowBits:
		return 0, fmt.Errorf("%w: got %d, want %d..%d", ErrInvalidWindowBits, bits, MinWindowBits, MaxWindowBits)
	}

	return bits, nil
}
