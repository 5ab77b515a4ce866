package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/woozymasta/lzhash"
)

var sample = bytes.Repeat([]byte("lzhash cli sample payload "), 400)

func writeInput(t *testing.T, name string, encode func(*bytes.Buffer)) string {
	t.Helper()

	var buf bytes.Buffer
	encode(&buf)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestReadInput_DecodesByExtension(t *testing.T) {
	tests := []struct {
		name   string
		encode func(*bytes.Buffer)
	}{
		{"plain.txt", func(buf *bytes.Buffer) {
			buf.Write(sample)
		}},
		{"sample.gz", func(buf *bytes.Buffer) {
			zw := gzip.NewWriter(buf)
			_, err := zw.Write(sample)
			require.NoError(t, err)
			require.NoError(t, zw.Close())
		}},
		{"sample.zst", func(buf *bytes.Buffer) {
			zw, err := zstd.NewWriter(buf)
			require.NoError(t, err)
			_, err = zw.Write(sample)
			require.NoError(t, err)
			require.NoError(t, zw.Close())
		}},
		{"sample.lz4", func(buf *bytes.Buffer) {
			zw := lz4.NewWriter(buf)
			_, err := zw.Write(sample)
			require.NoError(t, err)
			require.NoError(t, zw.Close())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInput(t, tt.name, tt.encode)

			got, err := readInput(path)
			require.NoError(t, err)
			assert.Equal(t, sample, got)
		})
	}
}

func TestReadInput_Errors(t *testing.T) {
	_, err := readInput(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = decodeInput(strings.NewReader("not gzip"), ".gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gzip")
}

func TestSelectVariants(t *testing.T) {
	logger := zap.NewNop()

	all, err := selectVariants("all", logger)
	require.NoError(t, err)
	assert.Equal(t, []lzhash.Variant{lzhash.Standard, lzhash.Roll}, all[:2])
	assert.Equal(t, lzhash.CRC32Supported(), len(all) == 3)

	auto, err := selectVariants("auto", logger)
	require.NoError(t, err)
	assert.Equal(t, []lzhash.Variant{0}, auto)

	roll, err := selectVariants("roll", logger)
	require.NoError(t, err)
	assert.Equal(t, []lzhash.Variant{lzhash.Roll}, roll)

	_, err = selectVariants("sha1", logger)
	require.ErrorIs(t, err, lzhash.ErrInvalidHashCalc)

	if !lzhash.CRC32Supported() {
		_, err = selectVariants("crc32", logger)
		require.ErrorIs(t, err, lzhash.ErrUnsupportedHashCalc)
	}
}

func TestProfileFile_PrintsOneRowPerVariant(t *testing.T) {
	path := writeInput(t, "plain.bin", func(buf *bytes.Buffer) { buf.Write(sample) })
	variants := []lzhash.Variant{lzhash.Standard, lzhash.Roll}

	var out bytes.Buffer
	err := profileFile(&out, path, variants, lzhash.Options{Level: 6, WindowBits: 10}, zap.NewNop())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], path)
	assert.Contains(t, lines[0], "flate=")
	assert.Contains(t, lines[1], "collisions")
	assert.Contains(t, lines[2], "standard")
	assert.Contains(t, lines[3], "roll")
}

func TestProfileAll_KeepsVariantOrder(t *testing.T) {
	variants := []lzhash.Variant{lzhash.Roll, lzhash.Standard, lzhash.Roll}

	reports, err := profileAll(sample, variants, lzhash.Options{Level: 9, Logger: zap.NewNop()})
	require.NoError(t, err)
	require.Len(t, reports, len(variants))

	for i, r := range reports {
		assert.Equal(t, variants[i], r.Variant)
	}
	assert.Equal(t, reports[0], reports[2])
}

func TestFlateSize(t *testing.T) {
	n, err := flateSize(sample, lzhash.DefaultLevel)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Less(t, n, int64(len(sample)))

	stored, err := flateSize(sample, 0)
	require.NoError(t, err)
	assert.Greater(t, stored, int64(len(sample)))

	assert.Equal(t, 9, flateLevel(42))
	assert.Equal(t, 0, flateLevel(-5))
}

func TestRun_ExitCodes(t *testing.T) {
	good := writeInput(t, "plain.bin", func(buf *bytes.Buffer) { buf.Write(sample) })
	missing := filepath.Join(t.TempDir(), "missing.bin")

	tests := []struct {
		name     string
		args     []string
		want     int
		stdout   string
		stderr   string
		noStdout bool
	}{
		{name: "ok", args: []string{"-hash", "roll", good}, want: 0, stdout: "roll"},
		{name: "no-files", args: []string{"-hash", "roll"}, want: 2, stderr: "usage:", noStdout: true},
		{name: "bad-flag", args: []string{"-nope"}, want: 2, stderr: "-nope", noStdout: true},
		{name: "bad-log-level", args: []string{"-log-level", "loud", good}, want: 2, stderr: "invalid log level", noStdout: true},
		{name: "bad-hash", args: []string{"-hash", "sha1", good}, want: 2, stderr: "invalid -hash", noStdout: true},
		{name: "missing-file", args: []string{"-hash", "roll", missing, good}, want: 1, stdout: good, stderr: "profile failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			assert.Equal(t, tt.want, run(tt.args, &stdout, &stderr))
			assert.Contains(t, stdout.String(), tt.stdout)
			assert.Contains(t, stderr.String(), tt.stderr)
			if tt.noStdout {
				assert.Empty(t, stdout.String())
			}
		})
	}
}
