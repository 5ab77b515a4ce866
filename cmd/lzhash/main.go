// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

// Command lzhash profiles the hash variants of the DEFLATE match finder on input files.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/woozymasta/lzhash"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, profiles every file argument and returns the process exit
// code: 0 on success, 1 if any file failed, 2 on usage errors. Reports go to
// stdout, usage and logs to stderr. Deferred calls, logger.Sync included,
// finish before main exits.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lzhash", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		level      = fs.Int("level", lzhash.DefaultLevel, "Compression level 0-9 (-1 = default 6); sets chain depth")
		windowBits = fs.Int("window-bits", lzhash.DefaultWindowBits, "Window size as log2 (9-15)")
		hashName   = fs.String("hash", "all", "Hash variant: auto, standard, roll, crc32, all")
		logLevel   = fs.String("log-level", "info", "Log level: debug, info, warn, error")
	)

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: lzhash [flags] FILE... (- for stdin; .gz .zst .lz4 are decoded)\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger, err := newLogger(*logLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "lzhash: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	variants, err := selectVariants(*hashName, logger)
	if err != nil {
		logger.Error("invalid -hash", zap.Error(err))
		return 2
	}

	opts := lzhash.Options{Level: *level, WindowBits: *windowBits, Logger: logger}

	failed := false
	for _, path := range fs.Args() {
		if err := profileFile(stdout, path, variants, opts, logger); err != nil {
			logger.Error("profile failed", zap.String("file", path), zap.Error(err))
			failed = true
		}
	}

	if failed {
		return 1
	}

	return 0
}

// newLogger builds a console zap logger writing to w at the given level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	return zap.New(core), nil
}

// selectVariants resolves the -hash flag. "all" skips CRC32 when the CPU lacks it.
func selectVariants(name string, logger *zap.Logger) ([]lzhash.Variant, error) {
	if name == "all" {
		variants := []lzhash.Variant{lzhash.Standard, lzhash.Roll}
		if lzhash.CRC32Supported() {
			variants = append(variants, lzhash.CRC32)
		} else {
			logger.Warn("CRC32C not supported on this CPU, skipping crc32")
		}
		return variants, nil
	}

	v, err := lzhash.ParseVariant(name)
	if err != nil {
		return nil, err
	}

	if v == lzhash.CRC32 && !lzhash.CRC32Supported() {
		return nil, lzhash.ErrUnsupportedHashCalc
	}

	return []lzhash.Variant{v}, nil
}
