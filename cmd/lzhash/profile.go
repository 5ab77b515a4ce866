// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/klauspost/compress/flate"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/lzhash"
)

// profileFile reads path and prints one report row per variant.
func profileFile(w io.Writer, path string, variants []lzhash.Variant, opts lzhash.Options, logger *zap.Logger) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}
	logger.Debug("input loaded", zap.String("file", path), zap.Int("size", len(data)))

	reports, err := profileAll(data, variants, opts)
	if err != nil {
		return err
	}

	baseline, err := flateSize(data, opts.Level)
	if err != nil {
		return err
	}

	return printReports(w, path, len(data), baseline, reports)
}

// profileAll runs Profile once per variant. Every run owns its own State, so they
// proceed in parallel.
func profileAll(data []byte, variants []lzhash.Variant, opts lzhash.Options) ([]*lzhash.Report, error) {
	reports := make([]*lzhash.Report, len(variants))

	var g errgroup.Group
	for i, v := range variants {
		o := opts
		o.HashCalc = v
		if o.Logger != nil {
			o.Logger = o.Logger.With(zap.Stringer("hash", v))
		}

		g.Go(func() error {
			r, err := lzhash.Profile(data, &o)
			if err != nil {
				return fmt.Errorf("%s: %w", v, err)
			}
			reports[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// flateSize returns the DEFLATE-compressed size of data as a baseline.
func flateSize(data []byte, level int) (int64, error) {
	var counter byteCounter
	fw, err := flate.NewWriter(&counter, flateLevel(level))
	if err != nil {
		return 0, err
	}

	if _, err := fw.Write(data); err != nil {
		return 0, err
	}
	if err := fw.Close(); err != nil {
		return 0, err
	}

	return counter.n, nil
}

// flateLevel maps our level onto the flate package range.
func flateLevel(level int) int {
	if level == lzhash.DefaultLevel {
		return flate.DefaultCompression
	}

	return min(max(level, flate.NoCompression), flate.BestCompression)
}

// byteCounter is an io.Writer that only counts.
type byteCounter struct {
	n int64
}

func (c *byteCounter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}

// printReports writes a table of reports.
func printReports(w io.Writer, path string, size int, baseline int64, reports []*lzhash.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\tsize=%d\tflate=%d\t\n", path, size, baseline)
	fmt.Fprintln(tw, "hash\tlevel\tpositions\tempty\tcandidates\thits\tcollisions\thit%\tmatches\tmatched\tliterals\tslides\tbuckets\t")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.1f\t%d\t%d\t%d\t%d\t%d\t\n",
			r.Variant, r.Level, r.Positions(), r.EmptyHeads, r.Candidates, r.Hits, r.Collisions,
			100*r.HitRate(), r.Matches, r.MatchedBytes, r.Literals, r.Slides, r.UsedBuckets)
	}

	return tw.Flush()
}
