// Package shared holds small pieces used by several use cases.
package shared

import "sync"

// FetchGuard orders the completions of repeated fetches for one logical
// resource. There is no cancellation of in-flight requests, so a user can
// trigger a second fetch before the first resolves; a response is applied
// only if it carries the latest issued sequence, which keeps a slow stale
// response from overwriting newer data.
type FetchGuard struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
}

// Next issues the sequence number for a fetch about to start.
func (g *FetchGuard) Next() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.issued++
	return g.issued
}

// Apply reports whether a completed fetch may be applied. Only the latest
// issued sequence wins; everything else is stale and must be discarded.
func (g *FetchGuard) Apply(seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if seq != g.issued || seq <= g.applied {
		return false
	}
	g.applied = seq
	return true
}
