package rete

import "github.com/google/uuid"

// productionNode is the terminal node of a production's join chain. It owns
// no children: once a token reaches it, it is a complete match, reported
// through the network's [MatchObserver] rather than propagated further.
type productionNode struct {
	id         uint64
	parent     *joinNode
	production Production
	matches    []*activeMatch
}

// activeMatch pairs a production leaf's terminal token with the correlation
// id assigned at match time, so the eventual unmatch notification can reuse
// the same [Match.ID].
type activeMatch struct {
	token *Token
	id    uuid.UUID
}

func newProductionNode(production Production, parent *joinNode) *productionNode {
	return &productionNode{id: production.ID, parent: parent, production: production}
}

// removeToken implements [tokenOwner]: it unlinks t from this leaf's active
// matches when t is deleted. The observer's unmatch notification happens in
// [Rete.onTokenDeleted] alongside the rest of the cascading retraction, not
// here, but it needs the correlation id recorded here before it is dropped.
func (p *productionNode) removeToken(t *Token) {
	for i, m := range p.matches {
		if m.token == t {
			p.matches = append(p.matches[:i], p.matches[i+1:]...)
			return
		}
	}
}

// matchID returns the correlation id recorded for t, if t is still an active
// match of this leaf.
func (p *productionNode) matchID(t *Token) (uuid.UUID, bool) {
	for _, m := range p.matches {
		if m.token == t {
			return m.id, true
		}
	}
	return uuid.UUID{}, false
}

// leftActivate completes the match: it builds the terminal token binding
// wme (the last condition's WME) as a child of parentToken (the bindings for
// every earlier condition), owned by this leaf rather than a beta memory, and
// notifies the network's [MatchObserver]. Building a real token here, rather
// than reusing parentToken as-is, keeps wme's back-reference list able to
// find and retract this match if wme is later removed, and gives an
// external consumer a single terminal token whose parent chain covers every
// condition.
func (p *productionNode) leftActivate(re *Rete, parentToken *Token, wme *WME) {
	t := newToken(re.cfg.ids.NextToken(), wme, parentToken, p)
	m := &activeMatch{token: t, id: uuid.New()}
	p.matches = append(p.matches, m)
	re.emitMatch(p, t, m.id)
}

// rightActivate is a programmer error: a production leaf has no alpha
// memory and is never a join's parent.
func (p *productionNode) rightActivate(*Rete, *WME) {
	panic("rete: internal error: right-activate on production node")
}
