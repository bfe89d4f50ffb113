package rete

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFuzzAddRemoveInvariants interleaves random WME insertions and removals
// against a small, fixed set of productions and checks the network's
// structural invariants after every step.
func TestFuzzAddRemoveInvariants(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(300, 300)

	re := New()
	require.NoError(t, re.AddProduction(blockWorldProduction(1)))
	require.NoError(t, re.AddProduction(Production{
		ID: 2,
		Conditions: []Condition{
			{Variable(varX), Constant(on), Variable(varY)},
			{Variable(varY), Constant(color), Constant(red)},
		},
	}))

	var fields []uint64
	f.Fuzz(&fields)

	var live []uint64
	for i := 0; i+2 < len(fields); i += 3 {
		a, b, c := fields[i]%6, fields[i+1]%6, fields[i+2]%6

		if len(live) > 0 && (a+b+c)%3 == 0 {
			idx := int((a + b + c) % uint64(len(live)))
			re.RemoveWME(live[idx])
			live = append(live[:idx], live[idx+1:]...)
		} else {
			live = append(live, re.AddWME([3]uint64{a, b, c}))
		}

		assertInvariants(t, re)
	}
}

// walkNetwork visits every beta and join reachable from the dummy top beta,
// in no particular order, calling visitBeta/visitJoin for each.
func walkNetwork(b *betaMemoryNode, visitBeta func(*betaMemoryNode), visitJoin func(*joinNode)) {
	visitBeta(b)
	for _, j := range b.children {
		visitJoin(j)
		for _, c := range j.children {
			if nb, ok := c.(*betaMemoryNode); ok {
				walkNetwork(nb, visitBeta, visitJoin)
			}
		}
	}
}

// assertInvariants checks re's current state against the structural
// invariants the network is expected to maintain at rest.
func assertInvariants(t *testing.T, re *Rete) {
	t.Helper()

	// WME <-> alpha memory membership agrees both ways.
	for id := range re.workingMemory {
		for _, mem := range re.wmeAlphas[id] {
			count := 0
			for _, item := range mem.items {
				if item.wme.ID == id {
					count++
				}
			}
			assert.Equal(t, 1, count, "wme %d expected exactly one item in its alpha memory", id)
		}
	}
	for _, mem := range re.alphaIndex {
		for _, item := range mem.items {
			w, ok := re.workingMemory[item.wme.ID]
			require.True(t, ok, "alpha item references a WME not in working memory")
			assert.True(t, mem.test.matches(w.Fields))
		}
	}

	walkNetwork(re.dummyTop,
		func(b *betaMemoryNode) {
			// Every beta item is owned by its own beta, its WME is live,
			// and its parent is either the dummy token or a member of its
			// own beta's items. The dummy root token, held in the dummy top
			// beta's items, has no parent and a synthetic WME that is not in
			// working memory, so it is not subject to these checks.
			for _, tok := range b.items {
				if tok.IsDummy() {
					continue
				}
				owner, ok := tok.Owner.(*betaMemoryNode)
				assert.True(t, ok)
				assert.Same(t, b, owner)
				_, live := re.workingMemory[tok.WME.ID]
				assert.True(t, live)

				if !tok.Parent.IsDummy() {
					parentOwner, ok := tok.Parent.Owner.(*betaMemoryNode)
					require.True(t, ok)
					assert.Contains(t, parentOwner.items, tok.Parent)
				}
			}

			// No two sibling joins of this beta share both tests and alpha
			// memory.
			for i, j := range b.children {
				for _, other := range b.children[i+1:] {
					assert.False(t, j.alpha == other.alpha && testsEqual(j.tests, other.tests))
				}
			}
		},
		func(j *joinNode) {
			// Every join is a registered successor of its own alpha memory.
			found := false
			for _, succ := range j.alpha.successors {
				if succ == j {
					found = true
				}
			}
			assert.True(t, found)

			// A join has at most one beta child.
			betaChildren := 0
			for _, c := range j.children {
				if _, ok := c.(*betaMemoryNode); ok {
					betaChildren++
				}
			}
			assert.LessOrEqual(t, betaChildren, 1)
		},
	)
}

// TestRemovalIsInverseOfAddition checks the "removal is inverse of addition"
// law: adding then removing a WME restores the multiset of alpha-memory
// sizes (modulo ids) that existed before.
func TestRemovalIsInverseOfAddition(t *testing.T) {
	re := New()
	require.NoError(t, re.AddProduction(blockWorldProduction(1)))
	re.AddWME([3]uint64{b1, on, b2})
	re.AddWME([3]uint64{b2, leftOf, b3})

	before := alphaItemCounts(re)

	id := re.AddWME([3]uint64{b3, color, red})
	re.RemoveWME(id)

	after := alphaItemCounts(re)
	assert.True(t, sameAlphaSizeMultiset(before, after))
}

func alphaItemCounts(re *Rete) []int {
	counts := make([]int, 0, len(re.alphaIndex))
	for _, mem := range re.alphaIndex {
		counts = append(counts, len(mem.items))
	}
	return counts
}

// sameAlphaSizeMultiset reports whether a and b hold the same alpha-memory
// item counts, regardless of which alpha memory each count came from: after
// an add immediately followed by a remove, alpha memories may be visited in
// a different map order, but the multiset of sizes must be unchanged.
func sameAlphaSizeMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	matched := make([]bool, len(b))
outer:
	for _, x := range a {
		for i, y := range b {
			if !matched[i] && x == y {
				matched[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}
