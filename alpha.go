package rete

import "slices"

// alphaMemoryItem records that a WME currently satisfies an alpha memory's
// constant test.
type alphaMemoryItem struct {
	wme    *WME
	memory *alphaMemory
}

// alphaMemory holds the WMEs currently satisfying one constant-test
// fingerprint, and the join nodes that consume them.
type alphaMemory struct {
	id         uint64
	test       constantTest
	items      []*alphaMemoryItem
	successors []*joinNode
}

func (a *alphaMemory) addWME(w *WME) *alphaMemoryItem {
	item := &alphaMemoryItem{wme: w, memory: a}
	a.items = append(a.items, item)
	return item
}

func (a *alphaMemory) removeWME(id uint64) {
	for i, item := range a.items {
		if item.wme.ID == id {
			a.items = append(a.items[:i], a.items[i+1:]...)
			return
		}
	}
}

// buildOrShareAlpha returns the alpha memory for cond's fingerprint, creating
// and backfilling one if none exists yet.
func (re *Rete) buildOrShareAlpha(cond Condition) *alphaMemory {
	fp := conditionFingerprint(cond)
	if mem, ok := re.alphaIndex[fp]; ok {
		debugNode(re.cfg.log, "alpha", mem.id, true)
		return mem
	}

	mem := &alphaMemory{id: re.cfg.ids.NextAlphaNode(), test: fp}
	re.alphaIndex[fp] = mem
	debugNode(re.cfg.log, "alpha", mem.id, false)

	// Backfill: any WME already in working memory that matches this
	// fingerprint joins the new memory, and is registered against it, even
	// though no successor join is attached yet (one is always an empty
	// no-op to right-activate at this point; build_or_share_join attaches
	// successors afterward). Working memory is a map, so its iteration order
	// is randomized by Go; WME ids are assigned in strictly increasing order,
	// so sorting by id recovers insertion order and keeps the resulting item
	// order, and hence downstream activation and match order, deterministic
	// across runs.
	ids := make([]uint64, 0, len(re.workingMemory))
	for id := range re.workingMemory {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		w := re.workingMemory[id]
		if !fp.matches(w.Fields) {
			continue
		}
		mem.addWME(w)
		re.registerWMEAlpha(w.ID, mem)
		for _, succ := range mem.successors {
			succ.rightActivate(re, w)
		}
	}

	return mem
}

// registerWMEAlpha appends mem to wme_alphas[id], deduplicated. This must
// always append rather than insert-if-absent, so a WME that already has an
// entry for a different alpha memory still gets this one recorded.
func (re *Rete) registerWMEAlpha(id uint64, mem *alphaMemory) {
	for _, existing := range re.wmeAlphas[id] {
		if existing == mem {
			return
		}
	}
	re.wmeAlphas[id] = append(re.wmeAlphas[id], mem)
}
