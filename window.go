// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhash

package lzhash

// Window is the sliding input window the hash chains index into. It holds two
// window sizes of bytes; positions are indexes into that buffer and therefore
// always fit 16 bits.
type Window struct {
	buf    []byte // buf is the window storage, 2*size bytes.
	filled int    // filled is the count of valid bytes at the start of buf.
	size   int    // size is the window size (max match distance), a power of two.
}

// NewWindow allocates a window of 1<<bits bytes (with the zlib conventions for bits).
func NewWindow(bits int) (*Window, error) {
	bits, err := normalizeWindowBits(bits)
	if err != nil {
		return nil, err
	}

	return newWindow(bits), nil
}

func newWindow(bits int) *Window {
	size := 1 << bits
	return &Window{
		buf:  make([]byte, 2*size),
		size: size,
	}
}

// Filled returns the valid bytes of the window. The slice aliases the window
// and is invalidated by Fill, Slide and Reset. Its capacity is capped at its
// length so reslicing past the valid bytes panics.
func (w *Window) Filled() []byte {
	return w.buf[:w.filled:w.filled]
}

// Size returns the window size.
func (w *Window) Size() int {
	return w.size
}

// Mask returns Size()-1, the mask applied to positions when indexing chain links.
func (w *Window) Mask() int {
	return w.size - 1
}

// Lookahead returns how many valid bytes start at pos.
func (w *Window) Lookahead(pos int) int {
	return max(w.filled-pos, 0)
}

// Free returns how many bytes Fill can still accept.
func (w *Window) Free() int {
	return len(w.buf) - w.filled
}

// Fill appends as much of src as fits and returns the number of bytes copied.
func (w *Window) Fill(src []byte) int {
	n := copy(w.buf[w.filled:], src)
	w.filled += n
	return n
}

// Slide drops the lower half of the buffer and moves the upper half down.
// It returns the distance positions moved (Size), or 0 when fewer than Size
// bytes are filled and nothing was moved. Hash tables indexing this window
// must be rebased with State.SlideHash afterwards.
func (w *Window) Slide() int {
	if w.filled < w.size {
		return 0
	}

	copy(w.buf, w.buf[w.size:w.filled])
	w.filled -= w.size
	return w.size
}

// reset empties the window for a new job.
func (w *Window) reset() {
	clear(w.buf)
	w.filled = 0
}
