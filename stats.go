// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package rete

import "iter"

// Stats is a point-in-time snapshot of a network's size, useful for a
// goroutine that monitors a [Rete] shared with a concurrently ingesting one.
type Stats struct {
	// WMEs is the number of facts currently in working memory.
	WMEs int
	// AlphaMemories is the number of distinct constant-test fingerprints
	// with a memory built for them.
	AlphaMemories int
	// Productions is the number of registered productions.
	Productions int
	// ActiveMatches is the number of currently satisfied (production, token)
	// pairs across every registered production.
	ActiveMatches int
}

// Stats returns a snapshot of the network's current size. It takes the same
// mutex as every other exported method, so it reflects a fully-settled state
// rather than one observed mid-activation.
func (re *Rete) Stats() Stats {
	re.mu.Lock()
	defer re.mu.Unlock()

	active := 0
	for _, p := range re.productions {
		active += len(p.matches)
	}

	return Stats{
		WMEs:          len(re.workingMemory),
		AlphaMemories: len(re.alphaIndex),
		Productions:   len(re.productions),
		ActiveMatches: active,
	}
}

// Productions returns a range iterator over every production currently
// registered in the network, in no particular order. The iterator captures
// a point-in-time snapshot: it does not observe productions registered
// after [Rete.Productions] is called, and is safe to range over while the
// network is concurrently mutated from another goroutine.
func (re *Rete) Productions() iter.Seq[Production] {
	re.mu.Lock()
	snapshot := make([]Production, 0, len(re.productions))
	for _, p := range re.productions {
		snapshot = append(snapshot, p.production)
	}
	re.mu.Unlock()

	return func(yield func(Production) bool) {
		for _, p := range snapshot {
			if !yield(p) {
				return
			}
		}
	}
}

// Matches returns a range iterator over every currently active match of
// production id, in emission order. It reports false for ok if id is not a
// registered production. Each yielded Match carries only Production and
// Token; its Seq and ID are zero.
func (re *Rete) Matches(id uint64) (seq iter.Seq[Match], ok bool) {
	re.mu.Lock()
	p, found := re.productions[id]
	var snapshot []*Token
	if found {
		snapshot = make([]*Token, 0, len(p.matches))
		for _, m := range p.matches {
			snapshot = append(snapshot, m.token)
		}
	}
	re.mu.Unlock()

	if !found {
		return nil, false
	}

	return func(yield func(Match) bool) {
		for _, t := range snapshot {
			if !yield(Match{Production: p.production, Token: t}) {
				return
			}
		}
	}, true
}
