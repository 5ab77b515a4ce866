// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

package lzhash

import "go.uber.org/zap"

// State owns all mutable hashing state for one compression job: the window,
// the chain tables and the rolling hash register. It is not safe for concurrent
// use; independent jobs use independent States.
type State struct {
	window *Window // window is the input the positions index into.

	head []uint16 // head is the newest position per bucket; 0 means empty.
	prev []uint16 // prev links position&wMask to the previous position of its bucket.

	wMask   int     // wMask is window size minus one.
	insH    uint32  // insH is the rolling hash register (Roll only).
	variant Variant // variant is fixed for the lifetime of the State.

	level  int                 // level is the clamped compression level.
	params compressLevelParams // params holds the level tuning.
	logger *zap.Logger         // logger is never nil.
}

// NewState allocates hashing state for opts (nil means DefaultOptions).
// It fails with ErrUnsupportedHashCalc if CRC32 is forced on a CPU without it.
func NewState(opts *Options) (*State, error) {
	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}

	s := newState(cfg)
	cfg.logger.Debug("hash state created",
		zap.Stringer("hash", cfg.variant),
		zap.Int("level", cfg.level),
		zap.Int("window_size", s.window.Size()),
		zap.Int("table_size", len(s.head)),
	)
	return s, nil
}

func newState(cfg config) *State {
	window := newWindow(cfg.windowBits)
	s := &State{
		window: window,
		head:   make([]uint16, cfg.variant.TableSize()),
		prev:   make([]uint16, window.Size()),
		wMask:  window.Mask(),
	}
	s.configure(cfg)
	return s
}

// configure applies the non-geometry parts of cfg.
func (s *State) configure(cfg config) {
	s.variant = cfg.variant
	s.level = cfg.level
	s.params = cfg.params
	s.logger = cfg.logger
}

// fits reports whether the table geometry of s matches cfg.
func (s *State) fits(cfg config) bool {
	return len(s.prev) == 1<<cfg.windowBits && len(s.head) == cfg.variant.TableSize()
}

// Reset clears the window, both tables and the rolling register for a new job.
func (s *State) Reset() {
	clear(s.head)
	clear(s.prev)
	s.insH = 0
	s.window.reset()
}

// Variant returns the hash variant the State was built with.
func (s *State) Variant() Variant {
	return s.variant
}

// Level returns the clamped compression level.
func (s *State) Level() int {
	return s.level
}

// MaxChain returns the chain walk depth of the level.
func (s *State) MaxChain() int {
	return s.params.maxChain
}

// Window returns the window the State indexes.
func (s *State) Window() *Window {
	return s.window
}

// Head returns the newest position hashed into bucket, or 0.
func (s *State) Head(bucket int) uint16 {
	return s.head[bucket]
}

// Prev returns the position linked behind pos in its chain, or 0.
func (s *State) Prev(pos int) uint16 {
	return s.prev[pos&s.wMask]
}

// Bucket computes the bucket of pos without touching the tables or the register.
// For Roll the current register is used as the running hash.
func (s *State) Bucket(pos int) int {
	window := s.window.Filled()
	switch s.variant {
	case Roll:
		return int(RollHashCalc{}.Update(s.insH, uint32(window[pos+rollHashOffset])))
	case CRC32:
		return int(crc32cWord(0, loadWord(window, pos)) & crcHashMask)
	default:
		return int(StandardHashCalc{}.Update(0, loadWord(window, pos)))
	}
}

// RollHash returns the rolling hash register.
func (s *State) RollHash() uint32 {
	return s.insH
}

// SetRollHash overwrites the rolling hash register.
func (s *State) SetRollHash(h uint32) {
	s.insH = h
}

// SeedRollHash loads the register with the two bytes at pos and pos+1, so the
// next insertion of pos hashes the MinMatch bytes starting there.
// Two bytes must be available at pos.
func (s *State) SeedRollHash(pos int) {
	window := s.window.Filled()
	var c RollHashCalc
	h := c.Update(0, uint32(window[pos]))
	s.insH = c.Update(h, uint32(window[pos+1]))
}

// SlideHash rebases both tables after Window.Slide. Entries older than the
// slide become 0, the empty-chain sentinel.
func (s *State) SlideHash() {
	size := uint16(s.window.Size()) //nolint:gosec // G115: window size is at most 1<<15
	slideTable(s.head, size)
	slideTable(s.prev, size)
}

func slideTable(table []uint16, size uint16) {
	for i, pos := range table {
		if pos >= size {
			table[i] = pos - size
		} else {
			table[i] = 0
		}
	}
}

// usedBuckets counts non-empty heads.
func (s *State) usedBuckets() int {
	n := 0
	for _, pos := range s.head {
		if pos != 0 {
			n++
		}
	}

	return n
}
