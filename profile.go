// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

package lzhash

import (
	"encoding/binary"
	"math/bits"

	"go.uber.org/zap"
)

// Report summarizes how one hash variant indexed an input.
type Report struct {
	Variant    Variant // Variant is the hash that was profiled.
	Level      int     // Level is the clamped compression level.
	WindowBits int     // WindowBits is log2 of the window size used.
	InputSize  int     // InputSize is len(src).

	QuickInserts   int // QuickInserts counts single-position insertions.
	BatchedInserts int // BatchedInserts counts positions inserted by InsertString.
	EmptyHeads     int // EmptyHeads counts insertions that found an empty bucket.

	Candidates int // Candidates counts chain entries examined.
	Hits       int // Hits counts candidates sharing at least MinMatch leading bytes.
	Collisions int // Collisions counts candidates that shared only the bucket.

	Literals     int // Literals counts positions not covered by a match.
	Matches      int // Matches counts greedy matches taken.
	MatchedBytes int // MatchedBytes is the total length of those matches.
	Skipped      int // Skipped counts match positions left unindexed (match longer than the level's maxLazy).

	Slides      int // Slides counts window slides.
	UsedBuckets int // UsedBuckets is the number of non-empty heads at the end.
}

// Positions is the total number of positions inserted.
func (r *Report) Positions() int {
	return r.QuickInserts + r.BatchedInserts
}

// HitRate is Hits / Candidates, or 0 when nothing was examined.
func (r *Report) HitRate() float64 {
	if r.Candidates == 0 {
		return 0
	}

	return float64(r.Hits) / float64(r.Candidates)
}

// Profile indexes src the way a greedy DEFLATE match finder drives the hash
// tables: every literal position is quick-inserted and its chain walked up to the
// level's MaxChain, and the positions covered by an accepted match are batch-inserted
// unless the match is longer than the level's maxLazy.
// The result measures bucket quality (hits vs collisions) for the chosen variant.
func Profile(src []byte, opts *Options) (*Report, error) {
	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}

	s := acquireState(cfg)
	defer releaseState(s)

	p := profiler{
		state: s,
		src:   src,
		report: Report{
			Variant:    cfg.variant,
			Level:      cfg.level,
			WindowBits: cfg.windowBits,
			InputSize:  len(src),
		},
	}
	p.run()
	p.report.UsedBuckets = s.usedBuckets()

	cfg.logger.Debug("profile finished",
		zap.Stringer("hash", cfg.variant),
		zap.Int("input_size", len(src)),
		zap.Int("positions", p.report.Positions()),
		zap.Int("matches", p.report.Matches),
		zap.Int("collisions", p.report.Collisions),
		zap.Int("slides", p.report.Slides),
	)

	return &p.report, nil
}

// profiler carries one Profile run.
type profiler struct {
	state  *State
	src    []byte
	next   int // next is the first src byte not yet copied into the window.
	report Report
}

// run parses the whole input.
func (p *profiler) run() {
	s := p.state
	w := s.window
	need := s.variant.Lookahead()
	maxDist := w.Size() - minLookahead
	maxChain := s.MaxChain()

	pos := 0
	seeded := false
	for {
		// Keep minLookahead bytes ahead of pos while input remains.
		if w.Lookahead(pos) < minLookahead && p.next < len(p.src) {
			if pos >= w.Size()+maxDist {
				pos -= w.Slide()
				s.SlideHash()
				p.report.Slides++
				s.logger.Debug("window slid", zap.Int("consumed", p.next), zap.Int("pos", pos))
			}
			p.next += w.Fill(p.src[p.next:])
		}

		lookahead := w.Lookahead(pos)
		if lookahead < need {
			break
		}

		if s.variant == Roll && !seeded {
			s.SeedRollHash(pos)
			seeded = true
		}

		head := s.QuickInsertString(pos)
		p.report.QuickInserts++

		matchLen := 0
		switch {
		case head == 0:
			p.report.EmptyHeads++
		case maxChain > 0:
			matchLen = p.longestHit(pos, head, lookahead, maxDist, maxChain)
		}

		if matchLen < MinMatch {
			p.report.Literals++
			pos++
			continue
		}

		p.report.Matches++
		p.report.MatchedBytes += matchLen

		// Positions inside the match are indexed but not searched from.
		if matchLen <= s.params.maxLazy {
			count := min(matchLen-1, lookahead-need)
			if count > 0 {
				s.InsertString(pos+1, count)
				p.report.BatchedInserts += count
			}
		} else {
			p.report.Skipped += matchLen - 1
			seeded = false
		}
		pos += matchLen
	}
}

// longestHit walks the chain from head and returns the longest common prefix
// found with the bytes at pos, bounded by lookahead and MaxMatch. The walk stops
// early once a match reaches the level's niceLength.
func (p *profiler) longestHit(pos int, head uint16, lookahead, maxDist, maxChain int) int {
	window := p.state.window.Filled()
	limit := max(pos-maxDist, 0)
	cur := window[pos : pos+min(lookahead, MaxMatch)]
	nice := min(p.state.params.niceLength, len(cur))

	best := 0
	for cand := range p.state.Chain(head, maxChain) {
		if int(cand) <= limit || int(cand) >= pos {
			break
		}

		p.report.Candidates++
		n := commonPrefix(window[cand:], cur)
		if n >= MinMatch {
			p.report.Hits++
		} else {
			p.report.Collisions++
		}

		if n > best {
			best = n
			if n >= nice {
				break
			}
		}
	}

	return best
}

// commonPrefix returns the length of the common prefix of a and b, at most len(b).
// a must be at least as long as b.
func commonPrefix(a, b []byte) int {
	n := 0
	for n+8 <= len(b) {
		diff := binary.LittleEndian.Uint64(a[n:]) ^ binary.LittleEndian.Uint64(b[n:])
		if diff != 0 {
			return n + bits.TrailingZeros64(diff)>>3
		}
		n += 8
	}

	for n < len(b) && a[n] == b[n] {
		n++
	}

	return n
}
