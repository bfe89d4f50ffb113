package rete

// betaMemoryNode holds the tokens currently satisfying the prefix of
// conditions evaluated by everything above it. Its parent is a join node,
// except for the network's dummy top beta, whose parent is nil.
type betaMemoryNode struct {
	id       uint64
	parent   *joinNode
	children []*joinNode
	items    []*Token
}

func newBetaMemoryNode(id uint64, parent *joinNode) *betaMemoryNode {
	return &betaMemoryNode{id: id, parent: parent}
}

// addChild registers j as a child join of this beta memory, to be
// left-activated whenever this beta memory is.
func (b *betaMemoryNode) addChild(j *joinNode) {
	b.children = append(b.children, j)
}

// addToken stores t as a member of this beta memory's items. Every non-dummy
// token is a member of exactly one beta memory's items, or referenced by a
// production leaf, never both.
func (b *betaMemoryNode) addToken(t *Token) {
	b.items = append(b.items, t)
}

// removeToken implements [tokenOwner]: it unlinks t from this beta memory's
// items when t is deleted.
func (b *betaMemoryNode) removeToken(t *Token) {
	for i, tok := range b.items {
		if tok == t {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return
		}
	}
}

// leftActivate creates a new token for (parentToken, wme), owned by this
// beta memory, and propagates it to every child join.
func (b *betaMemoryNode) leftActivate(re *Rete, parentToken *Token, wme *WME) {
	t := newToken(re.cfg.ids.NextToken(), wme, parentToken, b)
	b.addToken(t)
	for _, child := range b.children {
		child.leftActivate(re, t, wme)
	}
}

// rightActivate is a programmer error: right activation is only meaningful
// on join nodes.
func (b *betaMemoryNode) rightActivate(*Rete, *WME) {
	panic("rete: internal error: right-activate on beta memory node")
}

// buildOrShareBeta returns the first beta child of parent if one exists,
// otherwise builds one, attaches it, and backfills it from above. A join may
// have a production leaf among its children too (it is the final join of a
// shorter, sibling production sharing this prefix), so every existing child
// must be checked rather than assuming a beta sits first.
func buildOrShareBeta(re *Rete, parent *joinNode) *betaMemoryNode {
	for _, c := range parent.children {
		if existing, ok := c.(*betaMemoryNode); ok {
			debugNode(re.cfg.log, "beta", existing.id, true)
			return existing
		}
	}

	b := newBetaMemoryNode(re.cfg.ids.NextBetaJoinNode(), parent)
	parent.addChild(b)
	debugNode(re.cfg.log, "beta", b.id, false)
	updateNewNodeWithMatchesFromAbove(re, b)
	return b
}
