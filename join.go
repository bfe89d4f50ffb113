package rete

// child is whatever a join node may propagate a left activation to: a beta
// memory or a production leaf. A join node's parent is always a beta memory
// and a production node's parent is always a join, so these two kinds are
// exactly what a join's children may be.
type child interface {
	leftActivate(re *Rete, t *Token, w *WME)
}

// testAtJoinNode is one inter-condition equality test performed by a join
// node: the WME field at argOne must equal the field argTwo of the WME
// bound distanceToWME parent-links up from the current token.
type testAtJoinNode struct {
	argOne        int
	distanceToWME uint32
	argTwo        int
}

func (t testAtJoinNode) equal(o testAtJoinNode) bool {
	return t.argOne == o.argOne && t.distanceToWME == o.distanceToWME && t.argTwo == o.argTwo
}

func testsEqual(a, b []testAtJoinNode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].equal(b[i]) {
			return false
		}
	}
	return true
}

// joinNode tests the inter-condition equalities of one condition against the
// WMEs held in its alpha memory, using the tokens accumulated in its parent
// beta memory.
type joinNode struct {
	id       uint64
	parent   *betaMemoryNode
	alpha    *alphaMemory
	tests    []testAtJoinNode
	children []child
}

func newJoinNode(id uint64, parent *betaMemoryNode, alpha *alphaMemory, tests []testAtJoinNode) *joinNode {
	return &joinNode{id: id, parent: parent, alpha: alpha, tests: tests}
}

func (j *joinNode) addChild(c child) {
	j.children = append(j.children, c)
}

// leftActivate runs joinTest against every item currently in this join's
// alpha memory and, for each that passes, left-activates every child with
// (parentToken, item.wme).
func (j *joinNode) leftActivate(re *Rete, parentToken *Token, _ *WME) {
	for _, item := range j.alpha.items {
		if joinTest(j.tests, parentToken, item.wme) {
			for _, c := range j.children {
				c.leftActivate(re, parentToken, item.wme)
			}
		}
	}
}

// rightActivate runs joinTest against every token currently in this join's
// parent beta memory and, for each that passes, left-activates every child
// with (token, wme).
func (j *joinNode) rightActivate(re *Rete, wme *WME) {
	for _, tok := range j.parent.items {
		if joinTest(j.tests, tok, wme) {
			for _, c := range j.children {
				c.leftActivate(re, tok, wme)
			}
		}
	}
}

// joinTest evaluates every test in tests against (token, wme), short
// circuiting on the first failure. A test whose distanceToWME walk reaches
// the dummy root always passes: the dummy acts as a universal binding.
func joinTest(tests []testAtJoinNode, token *Token, wme *WME) bool {
	for _, test := range tests {
		bound := token.nthParent(test.distanceToWME)
		if bound.IsDummy() {
			continue
		}
		if wme.Field(test.argOne) != bound.WME.Field(test.argTwo) {
			return false
		}
	}
	return true
}

// buildOrShareJoin returns an existing join child of parent whose tests and
// alpha memory match exactly, or builds, attaches and registers a new one as
// a successor of am.
func buildOrShareJoin(re *Rete, parent *betaMemoryNode, am *alphaMemory, tests []testAtJoinNode) *joinNode {
	for _, c := range parent.children {
		if j, ok := c.(*joinNode); ok && j.alpha == am && testsEqual(j.tests, tests) {
			debugNode(re.cfg.log, "join", j.id, true)
			return j
		}
	}

	j := newJoinNode(re.cfg.ids.NextBetaJoinNode(), parent, am, tests)
	am.successors = append(am.successors, j)
	parent.addChild(j)
	debugNode(re.cfg.log, "join", j.id, false)
	return j
}

// getJoinTests derives the inter-condition equality tests for cond, given
// the conditions of the same production seen so far, in production order.
// For each variable in cond, the most recent earlier condition binding the
// same variable wins; only the first (most recent) occurrence is tested,
// since equality is transitive through the token chain.
func getJoinTests(cond Condition, earlier []Condition) []testAtJoinNode {
	var tests []testAtJoinNode
	for pos, test := range cond {
		if !test.isVar {
			continue
		}
		if t, ok := findEarliestBinding(test.value, earlier); ok {
			tests = append(tests, testAtJoinNode{argOne: pos, distanceToWME: t.distanceToWME, argTwo: t.argTwo})
		}
	}
	return tests
}

// findEarliestBinding searches earlier from most-recent to oldest, and
// within each condition in natural position order, for the first test
// binding the variable sym.
func findEarliestBinding(sym uint64, earlier []Condition) (testAtJoinNode, bool) {
	for i := len(earlier) - 1; i >= 0; i-- {
		for pos, test := range earlier[i] {
			if test.isVar && test.value == sym {
				return testAtJoinNode{distanceToWME: uint32(len(earlier) - (i + 1)), argTwo: pos}, true
			}
		}
	}
	return testAtJoinNode{}, false
}

// hasJoinParent is implemented by the two kinds of node a join may parent:
// a beta memory and a production leaf. Both are always built with a join as
// their parent in this network, which is what lets
// [updateNewNodeWithMatchesFromAbove] always take the join-parent branch of
// "update from above" rather than needing a beta-parent branch too.
type hasJoinParent interface {
	joinParent() *joinNode
}

func (b *betaMemoryNode) joinParent() *joinNode { return b.parent }
func (p *productionNode) joinParent() *joinNode { return p.parent }

// updateNewNodeWithMatchesFromAbove backfills a freshly built child of a
// join (a beta memory or production leaf) with the matches that already
// exist above it, without re-delivering them to newNode's existing siblings.
// It does so by temporarily isolating newNode as the join's sole child,
// right-activating the join once per item already in its alpha memory, then
// restoring the original children list; no other mutation of that list may
// interleave while it is isolated.
func updateNewNodeWithMatchesFromAbove(re *Rete, newNode child) {
	hp, ok := newNode.(hasJoinParent)
	if !ok {
		panic("rete: internal error: update-from-above on node without a join parent")
	}
	j := hp.joinParent()

	saved := j.children
	j.children = []child{newNode}
	items := j.alpha.items
	for _, item := range items {
		j.rightActivate(re, item.wme)
	}
	j.children = saved
}
