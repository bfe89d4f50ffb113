package rete

// Token is a node in the binding tree: a chain of (WME, parent-token) links
// representing the variable bindings satisfying a prefix of a production's
// conditions. The dummy root token (id 0) seeds every chain and carries a
// synthetic all-zero WME.
//
// A token owns its children strongly; its parent link and its presence in a
// WME's back-reference list are both non-owning — WME removal, not token
// removal, is what reclaims a token (see owner.removeToken).
type Token struct {
	ID     uint64
	WME    *WME
	Parent *Token
	Owner  tokenOwner

	children []*Token
}

// tokenOwner is whatever a token is currently registered against: a beta
// memory's items list, or a production leaf's set of active matches. Both
// need to be told when the token is deleted so they can unlink it.
type tokenOwner interface {
	removeToken(t *Token)
}

func newToken(id uint64, wme *WME, parent *Token, owner tokenOwner) *Token {
	t := &Token{ID: id, WME: wme, Parent: parent, Owner: owner}
	wme.addToken(t)
	if parent != nil {
		parent.children = append(parent.children, t)
	}
	return t
}

// nthParent walks n parent links up from t, returning the ancestor reached.
// A distance of 0 returns t itself.
func (t *Token) nthParent(n uint32) *Token {
	cur := t
	for i := uint32(0); i < n; i++ {
		cur = cur.Parent
	}
	return cur
}

// IsDummy reports whether t is the network's dummy root token.
func (t *Token) IsDummy() bool {
	return t.ID == dummyTokenID
}

// Bindings walks t's parent chain from t up to (excluding) the dummy root,
// returning the WMEs bound along the way in root-to-leaf order: index 0 is
// the WME bound to the earliest condition, the last index the most recent.
func (t *Token) Bindings() []*WME {
	var chain []*WME
	for cur := t; !cur.IsDummy(); cur = cur.Parent {
		chain = append(chain, cur.WME)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// deleteSelfAndDescendants detaches t from the network: it unlinks t from
// its parent's children, recursively deletes every descendant token
// post-order, then removes t from its owner and from its WME's
// back-reference list. It never touches siblings, ancestors or alpha
// memories; alpha-memory cleanup is the caller's responsibility (see
// [Rete.RemoveWME]).
//
// onDelete, if non-nil, is called post-order for every token deleted
// (including t itself) right before it is unlinked from its owner and WME;
// [Rete] uses it to emit an unmatch for every deleted token owned by a
// production leaf.
func deleteSelfAndDescendants(t *Token, onDelete func(*Token)) {
	if t.Parent != nil {
		t.Parent.detachChild(t)
	}
	// Post-order: fully delete every descendant before finishing with t.
	children := t.children
	t.children = nil
	for _, child := range children {
		deleteSelfAndDescendants(child, onDelete)
	}
	if onDelete != nil {
		onDelete(t)
	}
	if t.Owner != nil {
		t.Owner.removeToken(t)
	}
	t.WME.removeToken(t)
}

func (t *Token) detachChild(child *Token) {
	for i, c := range t.children {
		if c == child {
			t.children = append(t.children[:i], t.children[i+1:]...)
			return
		}
	}
}
