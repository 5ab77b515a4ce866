package lzhash

import "sync"

// statePool recycles States between Profile calls.
var statePool sync.Pool

// acquireState returns a reset State for cfg, reusing a pooled one when its
// table geometry matches.
func acquireState(cfg config) *State {
	if s, ok := statePool.Get().(*State); ok && s.fits(cfg) {
		s.configure(cfg)
		s.Reset()
		return s
	}

	return newState(cfg)
}

// releaseState returns a State to the pool.
func releaseState(s *State) {
	if s == nil {
		return
	}

	s.logger = nil
	statePool.Put(s)
}
